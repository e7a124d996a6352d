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
	"errors"
	"math"
	"reflect"
	"testing"
)

var (
	privateTag = NewTag(0x0009, 0x1001)
)

func TestDataElement_States(t *testing.T) {
	tests := []struct {
		name      string
		element   *DataElement
		wantEmpty bool
		wantNull  bool
		wantCount int
	}{
		{"absent", NewDataElement(PixelSpacingTag, nil), true, false, 0},
		{"null text", &DataElement{PixelSpacingTag, DSVR, []string{}, 0}, false, true, 0},
		{"text", &DataElement{PixelSpacingTag, DSVR, []string{"1", "1"}, 4}, false, false, 2},
		{"null sequence", &DataElement{ReferencedImageSequenceTag, SQVR, &Sequence{Items: []*DataSet{}}, 0}, false, true, 0},
		{"sequence", &DataElement{ReferencedImageSequenceTag, SQVR, NewSequence(&DataSet{}), 0}, false, false, 1},
		{"null bytes", &DataElement{PixelDataTag, OWVR, []byte{}, 0}, false, true, 0},
		{"bytes", &DataElement{PixelDataTag, OWVR, []byte{1, 2}, 2}, false, false, 1},
		{"fragments", &DataElement{PixelDataTag, OBVR, [][]byte{{}, {1, 2}}, UndefinedLength}, false, false, 2},
		{"numbers", &DataElement{RowsTag, USVR, []uint16{1}, 2}, false, false, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.element.IsEmpty(); got != tc.wantEmpty {
				t.Fatalf("IsEmpty() => got %v, want %v", got, tc.wantEmpty)
			}
			if got := tc.element.IsNull(); got != tc.wantNull {
				t.Fatalf("IsNull() => got %v, want %v", got, tc.wantNull)
			}
			if got := tc.element.Count(); got != tc.wantCount {
				t.Fatalf("Count() => got %v, want %v", got, tc.wantCount)
			}
		})
	}

	var missing *DataElement
	if !missing.IsEmpty() || missing.IsNull() {
		t.Fatalf("expected a nil element to be empty and not null")
	}
}

func TestDataElement_SetNullValue(t *testing.T) {
	tests := []struct {
		name string
		tag  DataElementTag
		want interface{}
	}{
		{"text", PixelSpacingTag, []string{}},
		{"US", RowsTag, []uint16{}},
		{"UL", DimensionIndexValuesTag, []uint32{}},
		{"FD", ExposureTimeInmsTag, []float64{}},
		{"OW", PixelDataTag, []byte{}},
		{"SQ", ReferencedImageSequenceTag, &Sequence{Items: []*DataSet{}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := NewDataElement(tc.tag, nil)
			e.SetNullValue()
			if !reflect.DeepEqual(e.ValueField, tc.want) {
				t.Fatalf("got %#v, want %#v", e.ValueField, tc.want)
			}
			if !e.IsNull() {
				t.Fatalf("expected element to be null")
			}
			e.Clear()
			if !e.IsEmpty() {
				t.Fatalf("expected element to be empty after Clear")
			}
		})
	}
}

func TestDataElement_Setters(t *testing.T) {
	tests := []struct {
		name    string
		element *DataElement
		set     func(e *DataElement) error
		want    interface{}
		wantErr error
	}{
		{
			name:    "DS with 12 significant digits",
			element: NewDataElement(PixelSpacingTag, nil),
			set: func(e *DataElement) error {
				if err := e.SetFloat64At(0, 0.1); err != nil {
					return err
				}
				return e.AppendFloat64(1.0 / 3)
			},
			want: []string{"0.1", "0.333333333333"},
		},
		{
			name:    "DS from integer",
			element: NewDataElement(PixelSpacingTag, nil),
			set:     func(e *DataElement) error { return e.SetInt64At(0, 5) },
			want:    []string{"5"},
		},
		{
			name:    "DS with a negative exponent fits in 16 characters",
			element: NewDataElement(PixelSpacingTag, nil),
			set: func(e *DataElement) error {
				if err := e.SetFloat64At(0, -1.0/3*1e-100); err != nil {
					return err
				}
				return e.AppendFloat64(-0.000123456789123)
			},
			want: []string{"-3.33333333E-101", "-0.0001234567891"},
		},
		{
			name:    "DS from an integer beyond 16 digits",
			element: NewDataElement(PixelSpacingTag, nil),
			set:     func(e *DataElement) error { return e.SetInt64At(0, math.MaxInt64) },
			want:    []string{"9.2233720369E+18"},
		},
		{
			name:    "DS NaN",
			element: NewDataElement(PixelSpacingTag, nil),
			set:     func(e *DataElement) error { return e.SetFloat64At(0, math.NaN()) },
			wantErr: ErrValueOutOfRange,
		},
		{
			name:    "DS not a number",
			element: NewDataElement(PixelSpacingTag, nil),
			set:     func(e *DataElement) error { return e.SetStringAt(0, "1,5") },
			wantErr: ErrIncompatibleVR,
		},
		{
			name:    "IS with fraction",
			element: NewDataElement(InstanceNumberTag, nil),
			set:     func(e *DataElement) error { return e.SetFloat64At(0, 1.5) },
			wantErr: ErrValueOutOfRange,
		},
		{
			name:    "IS from integral float",
			element: NewDataElement(InstanceNumberTag, nil),
			set:     func(e *DataElement) error { return e.SetFloat64At(0, 3) },
			want:    []string{"3"},
		},
		{
			name:    "IS beyond 32 bits",
			element: NewDataElement(InstanceNumberTag, nil),
			set:     func(e *DataElement) error { return e.SetInt64At(0, math.MaxInt32+1) },
			wantErr: ErrValueOutOfRange,
		},
		{
			name:    "IS not an integer",
			element: NewDataElement(InstanceNumberTag, nil),
			set:     func(e *DataElement) error { return e.SetStringAt(0, "12a") },
			wantErr: ErrIncompatibleVR,
		},
		{
			name:    "US overflow",
			element: NewDataElement(RowsTag, nil),
			set:     func(e *DataElement) error { return e.SetInt64At(0, 70000) },
			wantErr: ErrValueOutOfRange,
		},
		{
			name:    "US negative",
			element: NewDataElement(RowsTag, nil),
			set:     func(e *DataElement) error { return e.SetInt64At(0, -1) },
			wantErr: ErrValueOutOfRange,
		},
		{
			name:    "US with fraction",
			element: NewDataElement(RowsTag, nil),
			set:     func(e *DataElement) error { return e.SetFloat64At(0, 2.5) },
			wantErr: ErrValueOutOfRange,
		},
		{
			name:    "US from string",
			element: NewDataElement(RowsTag, nil),
			set:     func(e *DataElement) error { return e.SetStringAt(0, "512") },
			want:    []uint16{512},
		},
		{
			name:    "US from text",
			element: NewDataElement(RowsTag, nil),
			set:     func(e *DataElement) error { return e.SetStringAt(0, "abc") },
			wantErr: ErrIncompatibleVR,
		},
		{
			name:    "SS negative",
			element: NewDataElement(privateTag, SSVR),
			set:     func(e *DataElement) error { return e.SetInt64At(0, -5) },
			want:    []int16{-5},
		},
		{
			name:    "UL max",
			element: NewDataElement(DimensionIndexValuesTag, nil),
			set:     func(e *DataElement) error { return e.SetUint64At(0, math.MaxUint32) },
			want:    []uint32{math.MaxUint32},
		},
		{
			name:    "UL overflow",
			element: NewDataElement(DimensionIndexValuesTag, nil),
			set:     func(e *DataElement) error { return e.SetUint64At(0, math.MaxUint32+1) },
			wantErr: ErrValueOutOfRange,
		},
		{
			name:    "uint64 beyond int64",
			element: NewDataElement(DimensionIndexValuesTag, nil),
			set:     func(e *DataElement) error { return e.SetUint64At(0, math.MaxUint64) },
			wantErr: ErrValueOutOfRange,
		},
		{
			name:    "FL",
			element: NewDataElement(privateTag, FLVR),
			set:     func(e *DataElement) error { return e.SetFloat64At(0, 0.5) },
			want:    []float32{0.5},
		},
		{
			name:    "FL overflow",
			element: NewDataElement(privateTag, FLVR),
			set:     func(e *DataElement) error { return e.SetFloat64At(0, 1e39) },
			wantErr: ErrValueOutOfRange,
		},
		{
			name:    "FD from integer",
			element: NewDataElement(ExposureTimeInmsTag, nil),
			set:     func(e *DataElement) error { return e.SetInt64At(0, 3) },
			want:    []float64{3},
		},
		{
			name:    "AT",
			element: NewDataElement(privateTag, ATVR),
			set:     func(e *DataElement) error { return e.SetStringAt(0, "(0028,0030)") },
			want:    []uint32{0x00280030},
		},
		{
			name:    "AT invalid",
			element: NewDataElement(privateTag, ATVR),
			set:     func(e *DataElement) error { return e.SetStringAt(0, "0028") },
			wantErr: ErrIncompatibleVR,
		},
		{
			name:    "UI number",
			element: NewDataElement(SOPClassUIDTag, nil),
			set:     func(e *DataElement) error { return e.SetInt64At(0, 1) },
			wantErr: ErrIncompatibleVR,
		},
		{
			name:    "CS with value delimiter",
			element: NewDataElement(ModalityTag, nil),
			set:     func(e *DataElement) error { return e.SetStringAt(0, "A\\B") },
			wantErr: ErrIncompatibleVR,
		},
		{
			name:    "LT with backslash",
			element: NewDataElement(privateTag, LTVR),
			set:     func(e *DataElement) error { return e.SetStringAt(0, "A\\B") },
			want:    []string{"A\\B"},
		},
		{
			name:    "LO from float",
			element: NewDataElement(PatientIDTag, nil),
			set:     func(e *DataElement) error { return e.SetFloat64At(0, 2.5) },
			want:    []string{"2.5"},
		},
		{
			name:    "index out of range",
			element: NewDataElement(PixelSpacingTag, nil),
			set:     func(e *DataElement) error { return e.SetFloat64At(1, 0.5) },
			wantErr: ErrIndexOutOfRange,
		},
		{
			name:    "replace value",
			element: &DataElement{PixelSpacingTag, DSVR, []string{"1", "2"}, 4},
			set:     func(e *DataElement) error { return e.SetFloat64At(1, 0.5) },
			want:    []string{"1", "0.5"},
		},
		{
			name:    "failed set keeps values",
			element: &DataElement{RowsTag, USVR, []uint16{1}, 2},
			set:     func(e *DataElement) error { return e.SetInt64At(0, -1) },
			want:    []uint16{1},
			wantErr: ErrValueOutOfRange,
		},
		{
			name:    "append to null",
			element: &DataElement{ModalityTag, CSVR, []string{}, 0},
			set:     func(e *DataElement) error { return e.AppendString("CT") },
			want:    []string{"CT"},
		},
		{
			name:    "string in sequence",
			element: NewDataElement(ReferencedImageSequenceTag, nil),
			set:     func(e *DataElement) error { return e.SetStringAt(0, "x") },
			wantErr: ErrIncompatibleVR,
		},
		{
			name:    "bytes",
			element: NewDataElement(FileMetaInformationVersionTag, nil),
			set:     func(e *DataElement) error { return e.SetBytes([]byte{0, 1}) },
			want:    []byte{0, 1},
		},
		{
			name:    "bytes in US",
			element: NewDataElement(RowsTag, nil),
			set:     func(e *DataElement) error { return e.SetBytes([]byte{0, 1}) },
			wantErr: ErrIncompatibleVR,
		},
		{
			name:    "item in US",
			element: NewDataElement(RowsTag, nil),
			set:     func(e *DataElement) error { return e.AddSequenceItem(&DataSet{}) },
			wantErr: ErrIncompatibleVR,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.set(tc.element)
			if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected error %v, got %v", tc.wantErr, err)
			}
			if tc.wantErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.want == nil {
				if !tc.element.IsEmpty() {
					t.Fatalf("expected element to stay empty, got %#v", tc.element.ValueField)
				}
				return
			}
			if !reflect.DeepEqual(tc.element.ValueField, tc.want) {
				t.Fatalf("got %#v, want %#v", tc.element.ValueField, tc.want)
			}
		})
	}
}

func TestDataElement_Float64At(t *testing.T) {
	tests := []struct {
		name    string
		element *DataElement
		index   int
		want    float64
		wantOK  bool
	}{
		{"DS", &DataElement{PixelSpacingTag, DSVR, []string{"0.5", "2"}, 6}, 0, 0.5, true},
		{"IS with spaces", &DataElement{InstanceNumberTag, ISVR, []string{" 42"}, 4}, 0, 42, true},
		{"US", &DataElement{RowsTag, USVR, []uint16{512}, 2}, 0, 512, true},
		{"FL", &DataElement{privateTag, FLVR, []float32{0.25}, 4}, 0, 0.25, true},
		{"text", &DataElement{ModalityTag, CSVR, []string{"CT"}, 2}, 0, 0, false},
		{"index out of range", &DataElement{PixelSpacingTag, DSVR, []string{"0.5", "2"}, 6}, 2, 0, false},
		{"sequence", &DataElement{ReferencedImageSequenceTag, SQVR, NewSequence(), 0}, 0, 0, false},
		{"absent", NewDataElement(PixelSpacingTag, nil), 0, 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tc.element.Float64At(tc.index)
			if ok != tc.wantOK || got != tc.want {
				t.Fatalf("got (%v, %v), want (%v, %v)", got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestDataElement_Int64At(t *testing.T) {
	tests := []struct {
		name    string
		element *DataElement
		want    int64
		wantOK  bool
	}{
		{"integral DS", &DataElement{PixelSpacingTag, DSVR, []string{"2.0"}, 4}, 2, true},
		{"fractional DS", &DataElement{PixelSpacingTag, DSVR, []string{"2.5"}, 4}, 0, false},
		{"SL", &DataElement{privateTag, SLVR, []int32{-7}, 4}, -7, true},
		{"UL", &DataElement{DimensionIndexValuesTag, ULVR, []uint32{math.MaxUint32}, 4}, math.MaxUint32, true},
		{"FD", &DataElement{ExposureTimeInmsTag, FDVR, []float64{3}, 8}, 3, true},
		{"FD NaN", &DataElement{ExposureTimeInmsTag, FDVR, []float64{math.NaN()}, 8}, 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tc.element.Int64At(0)
			if ok != tc.wantOK || got != tc.want {
				t.Fatalf("got (%v, %v), want (%v, %v)", got, ok, tc.want, tc.wantOK)
			}
		})
	}

	if _, ok := (&DataElement{privateTag, SSVR, []int16{-1}, 2}).Uint64At(0); ok {
		t.Fatalf("expected negative value not to convert to uint64")
	}
}

func TestDataElement_StringAt(t *testing.T) {
	tests := []struct {
		name    string
		element *DataElement
		want    string
		wantOK  bool
	}{
		{"text", &DataElement{ModalityTag, CSVR, []string{"CT"}, 2}, "CT", true},
		{"US", &DataElement{RowsTag, USVR, []uint16{512}, 2}, "512", true},
		{"AT", &DataElement{privateTag, ATVR, []uint32{0x00280030}, 4}, "(0028,0030)", true},
		{"UL", &DataElement{DimensionIndexValuesTag, ULVR, []uint32{1}, 4}, "1", true},
		{"FD", &DataElement{ExposureTimeInmsTag, FDVR, []float64{0.5}, 8}, "0.5", true},
		{"FL", &DataElement{privateTag, FLVR, []float32{0.1}, 4}, "0.1", true},
		{"OB", &DataElement{FileMetaInformationVersionTag, OBVR, []byte{0, 1}, 2}, "", false},
		{"null", &DataElement{ModalityTag, CSVR, []string{}, 0}, "", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tc.element.StringAt(0)
			if ok != tc.wantOK || got != tc.want {
				t.Fatalf("got (%q, %v), want (%q, %v)", got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestDataElement_Strings(t *testing.T) {
	e := &DataElement{DimensionIndexValuesTag, ULVR, []uint32{1, 2}, 8}
	if got, want := e.Strings(), []string{"1", "2"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	if got := NewDataElement(DimensionIndexValuesTag, nil).Strings(); got != nil {
		t.Fatalf("expected no strings for an empty element, got %v", got)
	}
}

func TestDataElement_ValueErrors(t *testing.T) {
	null := &DataElement{ModalityTag, CSVR, []string{}, 0}
	if _, err := null.StringValue(); !errors.Is(err, ErrNoValue) {
		t.Fatalf("expected %v, got %v", ErrNoValue, err)
	}
	text := &DataElement{ModalityTag, CSVR, []string{"CT"}, 2}
	if _, err := text.IntValue(); !errors.Is(err, ErrNoValue) {
		t.Fatalf("expected %v, got %v", ErrNoValue, err)
	}
	number := &DataElement{InstanceNumberTag, ISVR, []string{"7"}, 2}
	if got, err := number.IntValue(); err != nil || got != 7 {
		t.Fatalf("got (%v, %v), want (7, nil)", got, err)
	}
}

func TestDataElement_AddSequenceItem(t *testing.T) {
	e := NewDataElement(ReferencedImageSequenceTag, nil)
	if err := e.AddSequenceItem(nil); err == nil {
		t.Fatalf("expected error adding a nil item")
	}
	if !e.IsEmpty() {
		t.Fatalf("expected sequence to stay empty")
	}

	first, second := &DataSet{}, NewDataSet(map[DataElementTag]interface{}{RowsTag: []uint16{1}})
	for _, item := range []*DataSet{first, second} {
		if err := e.AddSequenceItem(item); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if got := e.Count(); got != 2 {
		t.Fatalf("got %v items, want 2", got)
	}
	if first.Elements == nil {
		t.Fatalf("expected elements of the added item to be initialized")
	}
	if got, ok := e.SequenceItem(1); !ok || got != second {
		t.Fatalf("expected second item to be kept in order")
	}
	if _, ok := e.SequenceItem(2); ok {
		t.Fatalf("expected no item at index 2")
	}
}
