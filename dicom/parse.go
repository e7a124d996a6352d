// Copyright 2018 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dicom

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"
)

// Parse parses a DICOM file represented as an io.Reader, returning the DataSet defined by applying
// options sequentially in the order given to DataElements in the file. The returned DataSet holds
// the file meta elements and the elements of the data set.
//
// Values are buffered in the types documented on DataElement.ValueField. Pixel data in the
// encapsulated format is returned as [][]byte with the basic offset table as the first fragment.
func Parse(r io.Reader, opts ...ParseOption) (*DataSet, error) {
	dr := newDcmReader(r)
	if err := readDicomSignature(dr); err != nil {
		return nil, err
	}

	meta, err := readMetaGroup(dr)
	if err != nil {
		return nil, fmt.Errorf("reading meta header: %v", err)
	}

	syntaxUID, err := findSyntaxFromDataSet(meta)
	if err != nil {
		return nil, fmt.Errorf("finding transfer syntax: %v", err)
	}

	ds, err := readBody(dr, syntaxUID)
	if err != nil {
		return nil, err
	}
	ds.Merge(meta)

	return ds, applyParseOptions(ds, opts)
}

// ParseDataSet parses a data set without preamble and file meta information encoded in the
// transfer syntax with the given UID
func ParseDataSet(r io.Reader, syntaxUID string, opts ...ParseOption) (*DataSet, error) {
	ds, err := readBody(newDcmReader(r), syntaxUID)
	if err != nil {
		return nil, err
	}
	return ds, applyParseOptions(ds, opts)
}

func readBody(dr *dcmReader, syntaxUID string) (*DataSet, error) {
	syntax := lookupTransferSyntax(syntaxUID)
	if syntax.isDeflated() {
		fr := flate.NewReader(dr.src)
		defer fr.Close()
		dr = newDcmReader(fr)
	}

	ds, err := readDataSet(dr, dicomMetaData{syntax, defaultCharacterRepertoire}, 0)
	if err != nil {
		return nil, fmt.Errorf("reading data set: %v", err)
	}
	return ds, nil
}

func readDicomSignature(r *dcmReader) error {
	if err := r.Skip(128); err != nil {
		return fmt.Errorf("skipping preamble: %v", err)
	}

	magic, err := r.String(4)
	if err != nil {
		return fmt.Errorf("reading DICOM signature: %v", err)
	}

	if magic != "DICM" {
		return fmt.Errorf("wrong DICOM signature: %v", magic)
	}

	return nil
}

// readMetaGroup reads the file meta elements, which are always encoded in explicit VR little
// endian. The FileMetaInformationGroupLength element gives the number of bytes to buffer.
func readMetaGroup(dr *dcmReader) (*DataSet, error) {
	firstElemBytes, err := dr.Bytes(4 /*tag*/ + 2 /*vr*/ + 2 /*len*/ + 4 /*UL=4bytes*/)
	if err != nil {
		return nil, fmt.Errorf("buffering bytes of FileMetaInformationGroupLength: %v", err)
	}
	firstElem, err := readDataElement(newDcmReader(bytes.NewReader(firstElemBytes)), defaultMetaData)
	if err != nil {
		return nil, fmt.Errorf("parsing FileMetaInformationGroupLength element: %v", err)
	}
	if firstElem.Tag != FileMetaInformationGroupLengthTag {
		return nil, fmt.Errorf("expected %v as first meta element, got %v",
			FileMetaInformationGroupLengthTag, firstElem.Tag)
	}
	metaGroupLength, ok := firstElem.ValueField.([]uint32)
	if !ok || len(metaGroupLength) != 1 {
		return nil, fmt.Errorf("wrong value for FileMetaInformationGroupLength. Got %v, want 1 UL value",
			firstElem.ValueField)
	}

	remainderBytes, err := dr.Bytes(int64(metaGroupLength[0]))
	if err != nil {
		return nil, fmt.Errorf("buffering the file meta elements: %v", err)
	}
	meta, err := readDataSet(newDcmReader(bytes.NewReader(remainderBytes)), defaultMetaData, 0)
	if err != nil {
		return nil, fmt.Errorf("parsing file meta elements: %v", err)
	}
	meta.Elements[firstElem.Tag] = firstElem
	return meta, nil
}

func applyParseOptions(ds *DataSet, opts []ParseOption) error {
	if len(opts) == 0 {
		return nil
	}
	return transformPostOrder(ds, opts)
}

// transformPostOrder applies the options to the items of a sequence before the sequence element
func transformPostOrder(ds *DataSet, opts []ParseOption) error {
	for _, tag := range ds.SortedTags() {
		elem := ds.Elements[tag]
		if seq, ok := elem.ValueField.(*Sequence); ok {
			for _, item := range seq.Items {
				if err := transformPostOrder(item, opts); err != nil {
					return err
				}
			}
		}

		var err error
		for i, opt := range opts {
			if elem, err = opt.transform(elem); err != nil {
				return fmt.Errorf("applying option %v to %v: %v", i, tag, err)
			}
			if elem == nil { // option wants to filter this element out
				break
			}
		}
		delete(ds.Elements, tag)
		if elem != nil {
			ds.Elements[elem.Tag] = elem
		}
	}
	return nil
}
