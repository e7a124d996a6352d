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
	"strings"
	"testing"
)

func TestWriteDataElement(t *testing.T) {
	tests := []struct {
		name     string
		element  *DataElement
		metadata dicomMetaData
		cfg      writeConfig
		expected []byte
	}{
		{
			"unsigned short ExplicitVRLittleEndian",
			&DataElement{RowsTag, USVR, []uint16{512}, 0},
			defaultMetaData,
			writeConfig{},
			explicitRowsBytes,
		},
		{
			"unsigned short ImplicitVRLittleEndian",
			&DataElement{RowsTag, USVR, []uint16{512}, 0},
			dicomMetaData{implicitVRLittleEndian, defaultCharacterRepertoire},
			writeConfig{},
			[]byte{0x28, 0x00, 0x10, 0x00, 0x02, 0x00, 0x00, 0x00, 0x00, 0x02},
		},
		{
			"unsigned short ExplicitVRBigEndian",
			&DataElement{ColumnsTag, USVR, []uint16{256}, 0},
			dicomMetaData{explicitVRBigEndian, defaultCharacterRepertoire},
			writeConfig{},
			[]byte{0x00, 0x28, 0x00, 0x11, 'U', 'S', 0x00, 0x02, 0x01, 0x00},
		},
		{
			"text padded with space",
			&DataElement{ModalityTag, CSVR, []string{"ABC"}, 0},
			defaultMetaData,
			writeConfig{},
			[]byte{0x08, 0x00, 0x60, 0x00, 'C', 'S', 0x04, 0x00, 'A', 'B', 'C', ' '},
		},
		{
			"multiple values",
			&DataElement{PixelSpacingTag, DSVR, []string{"1", "2.5"}, 0},
			defaultMetaData,
			writeConfig{},
			[]byte{0x28, 0x00, 0x30, 0x00, 'D', 'S', 0x06, 0x00, '1', '\\', '2', '.', '5', ' '},
		},
		{
			"unique identifier padded with null",
			&DataElement{SOPClassUIDTag, UIVR, []string{"1.2.3"}, 0},
			defaultMetaData,
			writeConfig{},
			[]byte{0x08, 0x00, 0x16, 0x00, 'U', 'I', 0x06, 0x00, '1', '.', '2', '.', '3', 0x00},
		},
		{
			"missing VR from dictionary",
			&DataElement{Tag: ModalityTag, ValueField: []string{"CT"}},
			defaultMetaData,
			writeConfig{},
			[]byte{0x08, 0x00, 0x60, 0x00, 'C', 'S', 0x02, 0x00, 'C', 'T'},
		},
		{
			"null text",
			&DataElement{ModalityTag, CSVR, []string{}, 0},
			defaultMetaData,
			writeConfig{},
			[]byte{0x08, 0x00, 0x60, 0x00, 'C', 'S', 0x00, 0x00},
		},
		{
			"other byte",
			&DataElement{FileMetaInformationVersionTag, OBVR, []byte{0x00, 0x01}, 0},
			defaultMetaData,
			writeConfig{},
			[]byte{0x02, 0x00, 0x01, 0x00, 'O', 'B', 0x00, 0x00, 0x02, 0x00, 0x00, 0x00, 0x00, 0x01},
		},
		{
			"attribute tag",
			&DataElement{privateTag, ATVR, []uint32{0x00181063}, 0},
			defaultMetaData,
			writeConfig{},
			[]byte{0x09, 0x00, 0x01, 0x10, 'A', 'T', 0x04, 0x00, 0x18, 0x00, 0x63, 0x10},
		},
		{
			"latin-1 person name",
			&DataElement{PatientNameTag, PNVR, []string{"José"}, 0},
			defaultMetaData,
			writeConfig{},
			[]byte{0x10, 0x00, 0x10, 0x00, 'P', 'N', 0x04, 0x00, 'J', 'o', 's', 0xE9},
		},
		{
			"explicit length sequence",
			&DataElement{ReferencedImageSequenceTag, SQVR, &Sequence{Items: []*DataSet{rowsItem(0)}}, 0},
			defaultMetaData,
			writeConfig{explicitLengths: true},
			explicitLengthSequenceBytes,
		},
		{
			"undefined length sequence",
			&DataElement{ReferencedImageSequenceTag, SQVR, &Sequence{Items: []*DataSet{rowsItem(0)}}, 0},
			defaultMetaData,
			writeConfig{},
			undefinedLengthSequenceBytes,
		},
		{
			"null sequence",
			&DataElement{ReferencedImageSequenceTag, SQVR, &Sequence{Items: []*DataSet{}}, 0},
			defaultMetaData,
			writeConfig{},
			[]byte{0x08, 0x00, 0x40, 0x11, 'S', 'Q', 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		},
		{
			"encapsulated pixel data",
			&DataElement{PixelDataTag, OBVR, [][]byte{{}, {1, 2, 3, 4}}, UndefinedLength},
			defaultMetaData,
			writeConfig{},
			encapsulatedPixelDataBytes,
		},
		{
			"odd fragment is padded",
			&DataElement{PixelDataTag, OBVR, [][]byte{{}, {1, 2, 3}}, UndefinedLength},
			defaultMetaData,
			writeConfig{},
			concat(
				[]byte{0xE0, 0x7F, 0x10, 0x00, 'O', 'B', 0x00, 0x00, 0xFF, 0xFF, 0xFF, 0xFF},
				[]byte{0xFE, 0xFF, 0x00, 0xE0, 0x00, 0x00, 0x00, 0x00},
				[]byte{0xFE, 0xFF, 0x00, 0xE0, 0x04, 0x00, 0x00, 0x00, 1, 2, 3, 0},
				[]byte{0xFE, 0xFF, 0xDD, 0xE0, 0x00, 0x00, 0x00, 0x00},
			),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := writeDataElement(newDcmWriter(&buf), tc.metadata, tc.element, tc.cfg); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := buf.Bytes(); !bytes.Equal(got, tc.expected) {
				t.Fatalf("got % X, want % X", got, tc.expected)
			}
		})
	}
}

func TestWriteDataElement_Errors(t *testing.T) {
	tests := []struct {
		name    string
		element *DataElement
	}{
		{"value too long for 16 bit length", &DataElement{PatientIDTag, LOVR, []string{strings.Repeat("a", 70000)}, 0}},
		{"text in number VR", &DataElement{RowsTag, USVR, []string{"1"}, 0}},
		{"unsupported value type", &DataElement{RowsTag, USVR, []int{1}, 0}},
		{"text outside of repertoire", &DataElement{PatientNameTag, PNVR, []string{"山田"}, 0}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := writeDataElement(newDcmWriter(&buf), defaultMetaData, tc.element, writeConfig{}); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestWriteDataSet(t *testing.T) {
	ds := &DataSet{Elements: map[DataElementTag]*DataElement{
		RowsTag:           {RowsTag, USVR, []uint16{512}, 0},
		ModalityTag:       {ModalityTag, CSVR, []string{}, 0},
		PatientNameTag:    NewDataElement(PatientNameTag, nil),
		InstanceNumberTag: {Tag: InstanceNumberTag},
	}}
	var buf bytes.Buffer
	if err := writeDataSet(newDcmWriter(&buf), defaultMetaData, ds, writeConfig{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := concat(
		[]byte{0x08, 0x00, 0x60, 0x00, 'C', 'S', 0x00, 0x00},
		explicitRowsBytes,
	)
	if got := buf.Bytes(); !bytes.Equal(got, want) {
		t.Fatalf("expected empty elements to be skipped: got % X, want % X", got, want)
	}
}

func TestWriteDataSet_SpecificCharacterSet(t *testing.T) {
	ds := NewDataSet(map[DataElementTag]interface{}{
		SpecificCharacterSetTag: []string{"ISO_IR 192"},
		PatientNameTag:          []string{"山田"},
	})
	var buf bytes.Buffer
	if err := writeDataSet(newDcmWriter(&buf), defaultMetaData, ds, writeConfig{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := readDataSet(dcmReaderFromBytes(buf.Bytes()), defaultMetaData, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	compareDataSets(t, got, ds)
}
