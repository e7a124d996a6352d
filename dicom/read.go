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
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strings"
)

// readDataSet reads elements until the reader is exhausted or an item delimitation item is found.
// A Specific Character Set element changes the metadata for the elements that follow it and for
// the items of its sequences.
func readDataSet(dr *dcmReader, md dicomMetaData, length uint32) (*DataSet, error) {
	ds := &DataSet{Elements: map[DataElementTag]*DataElement{}, Length: length}
	for {
		elem, err := readDataElement(dr, md)
		if err == io.EOF {
			return ds, nil
		}
		if err != nil {
			return nil, err
		}
		if elem.Tag == SpecificCharacterSetTag {
			if md, err = md.withCharacterSet(elem); err != nil {
				return nil, fmt.Errorf("reading specific character set: %v", err)
			}
		}
		ds.Elements[elem.Tag] = elem
	}
}

func readDataElement(dr *dcmReader, md dicomMetaData) (*DataElement, error) {
	syntax := md.syntax
	offset := dr.Offset()
	tag, err := dr.Tag(syntax.byteOrder())
	if err == io.EOF {
		return nil, io.EOF
	}
	if err != nil {
		return nil, fmt.Errorf("getting tag at offset %d: %v", offset, err)
	}

	if tag == ItemDelimitationItemTag {
		// handles the case when we are parsing a nested data set within a sequence with undefined
		// length. This code should never run for the top level data set
		length, err := dr.UInt32(syntax.byteOrder())
		if err != nil {
			return nil, fmt.Errorf("reading 32 bit length of item delimitation: %v", err)
		}
		if length != 0 {
			return nil, fmt.Errorf("wrong length for item delimiter. got %v, want %v", length, 0)
		}
		return nil, io.EOF
	}

	vr, err := syntax.readVR(dr, tag)
	if err != nil {
		return nil, fmt.Errorf("getting vr of %v: %v", tag, err)
	}

	length, err := syntax.readValueLength(dr, vr)
	if err != nil {
		return nil, fmt.Errorf("getting length of %v: %v", tag, err)
	}

	value, err := readValue(tag, dr, vr, length, md)
	if err != nil {
		return nil, fmt.Errorf("parsing value of %v at offset %d: %v", tag, offset, err)
	}

	return &DataElement{tag, vr, value, length}, nil
}

func readValue(tag DataElementTag, dr *dcmReader, vr *VR, length uint32, md dicomMetaData) (interface{}, error) {
	if length == UndefinedLength && vr == UNVR {
		// UN with undefined length holds a sequence encoded in implicit VR little endian
		// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_6.2.2
		md.syntax = implicitVRLittleEndian
		return readSequence(dr, length, md)
	}

	switch vr.kind {
	case textVR:
		// only the space character pads text, control characters such as CR, LF and TAB are data
		return readText(dr, length, vr, md, func(r rune) bool {
			return r == ' '
		})
	case numberBinaryVR:
		return readNumberBinary(dr, length, vr, md.syntax.byteOrder())
	case bulkDataVR:
		return readBulkData(dr, tag, vr, length, md.syntax.byteOrder())
	case uniqueIdentifierVR:
		return readText(dr, length, vr, md, func(r rune) bool {
			return r == 0x00 || r == ' '
		})
	case sequenceVR:
		return readSequence(dr, length, md)
	case tagVR:
		return readTag(dr, md.syntax, length)
	default:
		return nil, fmt.Errorf("unknown vr type found: %v", vr.kind)
	}
}

func readTag(dr *dcmReader, syntax transferSyntax, length uint32) ([]uint32, error) {
	ret := make([]uint32, length/4) // 4 bytes per tag

	for i := range ret {
		t, err := dr.Tag(syntax.byteOrder())
		if err != nil {
			return nil, err
		}
		ret[i] = uint32(t)
	}
	return ret, nil
}

func readText(dr *dcmReader, length uint32, vr *VR, md dicomMetaData, isPadding func(rune) bool) ([]string, error) {
	if length == UndefinedLength {
		return nil, fmt.Errorf("undefined length for %v", vr)
	}
	if length == 0 {
		return []string{}, nil
	}

	b, err := dr.Bytes(int64(length))
	if err != nil {
		return nil, fmt.Errorf("reading text field value: %v", err)
	}
	valueField, err := decodeText(md.encoding, vr, b)
	if err != nil {
		return nil, err
	}

	if vr.singleValued {
		// leading spaces are significant in ST, LT and UT
		valueField = strings.TrimRightFunc(valueField, isPadding)
		if vr == URVR {
			valueField = strings.TrimLeftFunc(valueField, isPadding)
		}
		if valueField == "" {
			return []string{}, nil
		}
		return []string{valueField}, nil
	}

	if strings.TrimFunc(valueField, isPadding) == "" {
		return []string{}, nil
	}

	// deal with value multiplicity
	strs := strings.Split(valueField, "\\")
	for i, s := range strs {
		strs[i] = strings.TrimFunc(s, isPadding)
	}
	return strs, nil
}

func readNumberBinary(dr *dcmReader, length uint32, vr *VR, order binary.ByteOrder) (interface{}, error) {
	if length == UndefinedLength {
		return nil, fmt.Errorf("undefined length for %v", vr)
	}
	var data interface{}

	switch vr {
	case SSVR:
		data = make([]int16, length/2)
	case USVR:
		data = make([]uint16, length/2)
	case SLVR:
		data = make([]int32, length/4)
	case ULVR:
		data = make([]uint32, length/4)
	case FLVR:
		data = make([]float32, length/4)
	case FDVR:
		data = make([]float64, length/8)
	default:
		return nil, fmt.Errorf("unknown vr: %v", vr)
	}

	if err := binary.Read(dr.src, order, data); err != nil {
		return nil, fmt.Errorf("binary.Read(_, _, _) => %v", err)
	}

	return data, nil
}

func readBulkData(dr *dcmReader, tag DataElementTag, vr *VR, length uint32, order binary.ByteOrder) (interface{}, error) {
	if length == UndefinedLength {
		if tag == PixelDataTag {
			// Specified in http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_A.4
			// (7FE0,0010) and undefined length means pixel data in encapsulated (compressed) format
			return readFragments(dr, order)
		}

		return nil, errors.New("syntax with undefined length in non-pixel data not supported")
	}

	buff, err := dr.Bytes(int64(length))
	if err != nil {
		return nil, fmt.Errorf("reading bulk data: %v", err)
	}

	var valueField interface{}
	switch vr {
	case OBVR, OWVR, UNVR:
		return buff, nil
	case OLVR:
		valueField = make([]uint32, len(buff)/4)
	case ODVR:
		valueField = make([]float64, len(buff)/8)
	case OFVR:
		valueField = make([]float32, len(buff)/4)
	default:
		return nil, fmt.Errorf("unexpected vr found: %v", vr)
	}

	if err := binary.Read(bytes.NewReader(buff), order, valueField); err != nil {
		return nil, fmt.Errorf("reading to buffer: %v", err)
	}
	return valueField, nil
}

// readFragments reads the items of encapsulated pixel data. The first fragment is the basic
// offset table.
func readFragments(dr *dcmReader, order binary.ByteOrder) ([][]byte, error) {
	fragments := [][]byte{}
	for {
		tag, err := readItemTag(dr, order)
		if err != nil {
			return nil, fmt.Errorf("reading fragment: %v", err)
		}
		length, err := dr.UInt32(order)
		if err != nil {
			return nil, fmt.Errorf("reading fragment length: %v", err)
		}
		if tag == SequenceDelimitationItemTag {
			if length != 0 {
				return nil, fmt.Errorf("expected 0 length on sequence delimiter length")
			}
			return fragments, nil
		}
		if length == UndefinedLength {
			return nil, fmt.Errorf("fragment with undefined length")
		}
		fragment, err := dr.Bytes(int64(length))
		if err != nil {
			return nil, fmt.Errorf("reading fragment bytes: %v", err)
		}
		fragments = append(fragments, fragment)
	}
}

func readSequence(dr *dcmReader, length uint32, md dicomMetaData) (*Sequence, error) {
	seq := &Sequence{Items: []*DataSet{}}
	order := md.syntax.byteOrder()

	if length != UndefinedLength {
		dr = dr.Limit(int64(length))
	}
	for {
		tag, err := readItemTag(dr, order)
		if err == io.EOF && length != UndefinedLength {
			return seq, nil
		}
		if err == io.EOF {
			return nil, fmt.Errorf("unexpected EOF in undefined length sequence")
		}
		if err != nil {
			return nil, err
		}

		itemLength, err := dr.UInt32(order)
		if err != nil {
			return nil, fmt.Errorf("reading sequence item length: %v", err)
		}

		if tag == SequenceDelimitationItemTag {
			if length != UndefinedLength {
				return nil, fmt.Errorf("unexpected sequence delimitation item tag in explicit length sequence")
			}
			if itemLength != 0 {
				return nil, fmt.Errorf("expected 0 length on sequence delimiter length")
			}
			return seq, nil
		}

		itemReader := dr
		if itemLength != UndefinedLength {
			itemReader = dr.Limit(int64(itemLength))
		}
		item, err := readDataSet(itemReader, md, itemLength)
		if err != nil {
			return nil, fmt.Errorf("reading item %d: %v", len(seq.Items)+1, err)
		}
		seq.append(item)
	}
}

func readItemTag(dr *dcmReader, order binary.ByteOrder) (DataElementTag, error) {
	tag, err := dr.Tag(order)
	if err == io.EOF {
		return tag, io.EOF
	}
	if err != nil {
		return tag, fmt.Errorf("unexpected error reading item tag: %v", err)
	}
	if tag != ItemTag && tag != SequenceDelimitationItemTag {
		return tag, fmt.Errorf("invalid item tag in sequence, got %v want %v or %v",
			tag, ItemTag, SequenceDelimitationItemTag)
	}

	return tag, nil
}
