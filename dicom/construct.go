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
	"fmt"
	"io"

	"github.com/valyala/bytebufferpool"
)

// Construct writes the given *DataSet as a DICOM file to the given io.Writer. The desired output
// transfer syntax is specified as a required TransferSyntax DataElement (0002,0010). By default,
// there is no validation against the DICOM standard of any form.
//
// If a *DataElement in the *DataSet is missing VR it will be filled in from the
// DICOM Data Dictionary. The ValueLength of DataElements are ignored and re-calculated, and the
// FileMetaInformationGroupLength is always re-calculated. Elements without a value are skipped.
// The given *DataSet is not modified.
func Construct(w io.Writer, dataSet *DataSet, opts ...ConstructOption) error {
	ds, cfg, err := applyConstructOptions(dataSet, opts)
	if err != nil {
		return err
	}

	syntaxUID, err := findSyntaxFromDataSet(ds)
	if err != nil {
		return fmt.Errorf("getting transfer syntax from data set: %v", err)
	}

	meta, body := splitMetaElements(ds)

	dw := newDcmWriter(w)
	if err := writeDicomSignature(dw); err != nil {
		return err
	}
	if err := writeMetaGroup(dw, meta); err != nil {
		return fmt.Errorf("writing file meta information: %v", err)
	}
	if err := writeBody(w, syntaxUID, body, cfg); err != nil {
		return fmt.Errorf("writing data set: %v", err)
	}
	return nil
}

// WriteDataSet writes the elements of the given *DataSet without preamble and file meta
// information in the transfer syntax with the given UID
func WriteDataSet(w io.Writer, dataSet *DataSet, syntaxUID string, opts ...ConstructOption) error {
	ds, cfg, err := applyConstructOptions(dataSet, opts)
	if err != nil {
		return err
	}
	return writeBody(w, syntaxUID, ds, cfg)
}

func splitMetaElements(ds *DataSet) (*DataSet, *DataSet) {
	meta := &DataSet{Elements: map[DataElementTag]*DataElement{}}
	body := &DataSet{Elements: map[DataElementTag]*DataElement{}}
	for tag, elem := range ds.Elements {
		switch {
		case tag == FileMetaInformationGroupLengthTag:
			// re-calculated by writeMetaGroup
		case tag.IsMetaElement():
			meta.Elements[tag] = elem
		default:
			body.Elements[tag] = elem
		}
	}
	return meta, body
}

// writeMetaGroup writes the file meta elements in explicit VR little endian as specified in the
// standard http://dicom.nema.org/medical/dicom/current/output/html/part10.html#sect_7.1
//
// The FileMetaInformationGroupLength element is a critical component of the Meta Header. It
// stores how long the meta header is, so the meta elements are encoded first to measure them.
func writeMetaGroup(dw *dcmWriter, meta *DataSet) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	md := dicomMetaData{explicitVRLittleEndian, defaultCharacterRepertoire}
	if err := writeDataSet(newDcmWriter(buf), md, meta, writeConfig{}); err != nil {
		return err
	}

	groupLength := &DataElement{
		Tag:        FileMetaInformationGroupLengthTag,
		VR:         ULVR,
		ValueField: []uint32{uint32(buf.Len())},
	}
	if err := writeDataElement(dw, md, groupLength, writeConfig{}); err != nil {
		return fmt.Errorf("writing group length: %v", err)
	}
	return dw.Bytes(buf.B)
}

func findSyntaxFromDataSet(dataSet *DataSet) (string, error) {
	syntaxElement, ok := dataSet.Elements[TransferSyntaxUIDTag]
	if !ok {
		return "", fmt.Errorf("transfer syntax element is missing from data set")
	}

	syntaxUID, err := syntaxElement.StringValue()
	if err != nil {
		return "", fmt.Errorf("transfer syntax element cannot be converted to string: %v", err)
	}

	return syntaxUID, nil
}

func writeDicomSignature(dw *dcmWriter) error {
	if err := dw.Bytes(make([]byte, 128)); err != nil {
		return fmt.Errorf("writing DICOM preamble: %v", err)
	}

	if err := dw.String("DICM"); err != nil {
		return fmt.Errorf("writing DICOM signature: %v", err)
	}

	return nil
}
