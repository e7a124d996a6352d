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
	"math"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Count returns the number of values of the element. OB, OW and UN values count as a single
// value, encapsulated pixel data counts its fragments.
func (e *DataElement) Count() int {
	switch v := e.ValueField.(type) {
	case []string:
		return len(v)
	case []byte:
		if len(v) == 0 {
			return 0
		}
		return 1
	case [][]byte:
		return len(v)
	case []int16:
		return len(v)
	case []uint16:
		return len(v)
	case []int32:
		return len(v)
	case []uint32:
		return len(v)
	case []float32:
		return len(v)
	case []float64:
		return len(v)
	case *Sequence:
		if v == nil {
			return 0
		}
		return len(v.Items)
	}
	return 0
}

// IsEmpty is true when no value was ever assigned to the element
func (e *DataElement) IsEmpty() bool {
	return e == nil || e.ValueField == nil
}

// IsNull is true when the element is present with zero values
func (e *DataElement) IsNull() bool {
	return !e.IsEmpty() && e.Count() == 0
}

// SetNullValue removes all values, leaving the element present with zero length
func (e *DataElement) SetNullValue() {
	e.ValueField = emptyValueField(e.vr())
	e.ValueLength = 0
}

// Clear removes all values, leaving the element absent
func (e *DataElement) Clear() {
	e.ValueField = nil
	e.ValueLength = 0
}

func (e *DataElement) vr() *VR {
	if e.VR == nil {
		e.VR = e.Tag.DictionaryVR()
	}
	return e.VR
}

func emptyValueField(vr *VR) interface{} {
	switch vr {
	case SSVR:
		return []int16{}
	case USVR:
		return []uint16{}
	case SLVR:
		return []int32{}
	case ULVR, OLVR, ATVR:
		return []uint32{}
	case FLVR, OFVR:
		return []float32{}
	case FDVR, ODVR:
		return []float64{}
	case OBVR, OWVR, UNVR:
		return []byte{}
	case SQVR:
		return &Sequence{Items: []*DataSet{}}
	}
	return []string{}
}

// update runs f against a value field that is initialized when the element is empty. An empty
// element stays empty when f fails.
func (e *DataElement) update(f func() error) error {
	empty := e.ValueField == nil
	if empty {
		e.ValueField = emptyValueField(e.vr())
	}
	if err := f(); err != nil {
		if empty {
			e.ValueField = nil
		}
		return fmt.Errorf("setting %v: %w", e.Tag, err)
	}
	return nil
}

// StringValue returns the first value of the element as a string
func (e *DataElement) StringValue() (string, error) {
	s, ok := e.StringAt(0)
	if !ok {
		return "", fmt.Errorf("%v: %w", e.Tag, ErrNoValue)
	}
	return s, nil
}

// IntValue returns the first value of the element as an integer
func (e *DataElement) IntValue() (int64, error) {
	i, ok := e.Int64At(0)
	if !ok {
		return 0, fmt.Errorf("%v: %w", e.Tag, ErrNoValue)
	}
	return i, nil
}

// StringAt returns the value at index i as a string. Binary numbers are formatted in decimal and
// AT values as (gggg,eeee).
func (e *DataElement) StringAt(i int) (string, bool) {
	switch v := e.ValueField.(type) {
	case []string:
		return valueAt(v, i)
	case []int16:
		return formatIntAt(v, i)
	case []uint16:
		return formatIntAt(v, i)
	case []int32:
		return formatIntAt(v, i)
	case []uint32:
		if e.vr() == ATVR {
			t, ok := valueAt(v, i)
			return DataElementTag(t).String(), ok
		}
		return formatIntAt(v, i)
	case []float32:
		f, ok := valueAt(v, i)
		return strconv.FormatFloat(float64(f), 'G', -1, 32), ok
	case []float64:
		f, ok := valueAt(v, i)
		return strconv.FormatFloat(f, 'G', -1, 64), ok
	}
	return "", false
}

// Strings returns all values of the element formatted as by StringAt
func (e *DataElement) Strings() []string {
	if v, ok := e.ValueField.([]string); ok {
		return v
	}
	var strs []string
	for i := 0; i < e.Count(); i++ {
		s, ok := e.StringAt(i)
		if !ok {
			return nil
		}
		strs = append(strs, s)
	}
	return strs
}

// Float64At returns the value at index i as a float64. Text values are parsed as decimal numbers.
func (e *DataElement) Float64At(i int) (float64, bool) {
	n, ok := e.numberAt(i)
	return n.float64(), ok
}

// Int64At returns the value at index i as an int64. It fails for values with a fractional part.
func (e *DataElement) Int64At(i int) (int64, bool) {
	n, ok := e.numberAt(i)
	if !ok {
		return 0, false
	}
	v, err := n.int64()
	return v, err == nil
}

// Uint64At returns the value at index i as an uint64. It fails for negative values.
func (e *DataElement) Uint64At(i int) (uint64, bool) {
	v, ok := e.Int64At(i)
	if !ok || v < 0 {
		return 0, false
	}
	return uint64(v), true
}

// Bytes returns the value of an OB, OW or UN element
func (e *DataElement) Bytes() ([]byte, bool) {
	b, ok := e.ValueField.([]byte)
	return b, ok
}

// SetBytes sets the value of an OB, OW or UN element
func (e *DataElement) SetBytes(b []byte) error {
	if vr := e.vr(); vr != OBVR && vr != OWVR && vr != UNVR {
		return fmt.Errorf("setting %v: bytes in %v: %w", e.Tag, vr, ErrIncompatibleVR)
	}
	e.ValueField = append([]byte{}, b...)
	return nil
}

// SetStringAt sets the value at index i. Setting index Count() appends a value. Strings written
// to binary number VRs are parsed as decimal numbers.
func (e *DataElement) SetStringAt(i int, s string) error {
	return e.update(func() error {
		vr := e.vr()
		switch v := e.ValueField.(type) {
		case []string:
			if err := validateText(vr, s); err != nil {
				return err
			}
			var err error
			e.ValueField, err = setAt(v, i, s)
			return err
		case []uint32:
			if vr == ATVR {
				t, err := parseTag(s)
				if err != nil {
					return err
				}
				e.ValueField, err = setAt(v, i, uint32(t))
				return err
			}
		case *Sequence, []byte, [][]byte:
			return fmt.Errorf("string in %v: %w", vr, ErrIncompatibleVR)
		}
		n, ok := parseNumber(s)
		if !ok {
			return fmt.Errorf("%q is not a number: %w", s, ErrIncompatibleVR)
		}
		return e.setNumberAt(i, n)
	})
}

// AppendString adds a value after the last value of the element
func (e *DataElement) AppendString(s string) error {
	return e.SetStringAt(e.Count(), s)
}

// SetFloat64At sets the value at index i. DS values are formatted with 12 significant digits.
func (e *DataElement) SetFloat64At(i int, v float64) error {
	return e.update(func() error {
		return e.setNumberAt(i, floatNumber(v))
	})
}

// AppendFloat64 adds a value after the last value of the element
func (e *DataElement) AppendFloat64(v float64) error {
	return e.SetFloat64At(e.Count(), v)
}

// SetInt64At sets the value at index i
func (e *DataElement) SetInt64At(i int, v int64) error {
	return e.update(func() error {
		return e.setNumberAt(i, intNumber(v))
	})
}

// AppendInt64 adds a value after the last value of the element
func (e *DataElement) AppendInt64(v int64) error {
	return e.SetInt64At(e.Count(), v)
}

// SetUint64At sets the value at index i
func (e *DataElement) SetUint64At(i int, v uint64) error {
	if v > math.MaxInt64 {
		return fmt.Errorf("setting %v: %d: %w", e.Tag, v, ErrValueOutOfRange)
	}
	return e.SetInt64At(i, int64(v))
}

// Items returns the items of a sequence element
func (e *DataElement) Items() []*DataSet {
	if seq, ok := e.ValueField.(*Sequence); ok && seq != nil {
		return seq.Items
	}
	return nil
}

// SequenceItem returns the item at index i of a sequence element
func (e *DataElement) SequenceItem(i int) (*DataSet, bool) {
	return valueAt(e.Items(), i)
}

// AddSequenceItem appends item to the items of a sequence element
func (e *DataElement) AddSequenceItem(item *DataSet) error {
	if e.vr() != SQVR {
		return fmt.Errorf("adding item to %v: %v is not a sequence: %w", e.Tag, e.vr(), ErrIncompatibleVR)
	}
	if item == nil {
		return fmt.Errorf("adding item to %v: nil item", e.Tag)
	}
	seq, ok := e.ValueField.(*Sequence)
	if !ok || seq == nil {
		seq = &Sequence{Items: []*DataSet{}}
		e.ValueField = seq
	}
	if item.Elements == nil {
		item.Elements = map[DataElementTag]*DataElement{}
	}
	seq.append(item)
	return nil
}

func (e *DataElement) numberAt(i int) (number, bool) {
	switch v := e.ValueField.(type) {
	case []string:
		s, ok := valueAt(v, i)
		if !ok {
			return number{}, false
		}
		return parseNumber(s)
	case []int16:
		return integerAt(v, i)
	case []uint16:
		return integerAt(v, i)
	case []int32:
		return integerAt(v, i)
	case []uint32:
		return integerAt(v, i)
	case []float32:
		f, ok := valueAt(v, i)
		return floatNumber(float64(f)), ok
	case []float64:
		f, ok := valueAt(v, i)
		return floatNumber(f), ok
	}
	return number{}, false
}

func (e *DataElement) setNumberAt(i int, n number) error {
	vr := e.vr()
	var err error
	switch v := e.ValueField.(type) {
	case []string:
		var s string
		if s, err = formatNumber(vr, n); err == nil {
			e.ValueField, err = setAt(v, i, s)
		}
	case []int16:
		e.ValueField, err = setInteger(v, i, n)
	case []uint16:
		e.ValueField, err = setInteger(v, i, n)
	case []int32:
		e.ValueField, err = setInteger(v, i, n)
	case []uint32:
		e.ValueField, err = setInteger(v, i, n)
	case []float32:
		f := n.float64()
		if math.Abs(f) > math.MaxFloat32 && !math.IsInf(f, 0) {
			return fmt.Errorf("%v: %w", f, ErrValueOutOfRange)
		}
		e.ValueField, err = setAt(v, i, float32(f))
	case []float64:
		e.ValueField, err = setAt(v, i, n.float64())
	default:
		return fmt.Errorf("number in %v: %w", vr, ErrIncompatibleVR)
	}
	return err
}

// number is a value being converted between VRs. The integer form is used unless isFloat is set.
type number struct {
	i       int64
	f       float64
	isFloat bool
}

func intNumber(i int64) number {
	return number{i: i}
}

func floatNumber(f float64) number {
	return number{f: f, isFloat: true}
}

func (n number) float64() float64 {
	if n.isFloat {
		return n.f
	}
	return float64(n.i)
}

func (n number) int64() (int64, error) {
	if !n.isFloat {
		return n.i, nil
	}
	if math.IsNaN(n.f) || math.IsInf(n.f, 0) || n.f != math.Trunc(n.f) ||
		n.f < math.MinInt64 || n.f >= math.MaxInt64 {
		return 0, fmt.Errorf("%v is not an integer: %w", n.f, ErrValueOutOfRange)
	}
	return int64(n.f), nil
}

func parseNumber(s string) (number, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return number{}, false
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return intNumber(i), true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return floatNumber(f), true
	}
	return number{}, false
}

// formatDS formats a Decimal String with up to 12 significant digits, fewer when the value would
// not fit in the 16 characters of DS
func formatDS(v float64) string {
	s := strconv.FormatFloat(v, 'G', 12, 64)
	for prec := 11; prec > 0 && len(s) > int(DSVR.maxLength); prec-- {
		s = strconv.FormatFloat(v, 'G', prec, 64)
	}
	return s
}

func formatNumber(vr *VR, n number) (string, error) {
	switch vr {
	case UIVR:
		return "", fmt.Errorf("number in %v: %w", vr, ErrIncompatibleVR)
	case ISVR:
		v, err := n.int64()
		if err != nil {
			return "", err
		}
		// IS values are restricted to the range of a signed 32 bit integer
		if v < math.MinInt32 || v > math.MaxInt32 {
			return "", fmt.Errorf("%d: %w", v, ErrValueOutOfRange)
		}
		return strconv.FormatInt(v, 10), nil
	}
	if !n.isFloat {
		if s := strconv.FormatInt(n.i, 10); vr != DSVR || len(s) <= int(DSVR.maxLength) {
			return s, nil
		}
		return formatDS(float64(n.i)), nil
	}
	if vr == DSVR && (math.IsNaN(n.f) || math.IsInf(n.f, 0)) {
		return "", fmt.Errorf("%v: %w", n.f, ErrValueOutOfRange)
	}
	return formatDS(n.f), nil
}

func validateText(vr *VR, s string) error {
	if !vr.singleValued && strings.Contains(s, "\\") {
		return fmt.Errorf("%q contains the value delimiter: %w", s, ErrIncompatibleVR)
	}
	switch vr {
	case DSVR:
		if _, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
			return fmt.Errorf("%q is not a decimal string: %w", s, ErrIncompatibleVR)
		}
	case ISVR:
		if _, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32); err != nil {
			return fmt.Errorf("%q is not an integer string: %w", s, ErrIncompatibleVR)
		}
	}
	return nil
}

// parseTag accepts the forms "(gggg,eeee)", "gggg,eeee" and "ggggeeee"
func parseTag(s string) (DataElementTag, error) {
	hex := strings.NewReplacer("(", "", ")", "", ",", "").Replace(strings.TrimSpace(s))
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil || len(hex) != 8 {
		return 0, fmt.Errorf("%q is not a tag: %w", s, ErrIncompatibleVR)
	}
	return DataElementTag(v), nil
}

func valueAt[T any](values []T, i int) (T, bool) {
	var zero T
	if i < 0 || i >= len(values) {
		return zero, false
	}
	return values[i], true
}

func setAt[T any](values []T, i int, v T) ([]T, error) {
	switch {
	case i >= 0 && i < len(values):
		values[i] = v
		return values, nil
	case i == len(values):
		return append(values, v), nil
	}
	return values, fmt.Errorf("index %d of %d values: %w", i, len(values), ErrIndexOutOfRange)
}

func integerAt[T constraints.Integer](values []T, i int) (number, bool) {
	v, ok := valueAt(values, i)
	return intNumber(int64(v)), ok
}

func formatIntAt[T constraints.Integer](values []T, i int) (string, bool) {
	v, ok := valueAt(values, i)
	return strconv.FormatInt(int64(v), 10), ok
}

func toInteger[T constraints.Integer](v int64) (T, error) {
	t := T(v)
	if int64(t) != v || (v < 0) != (t < 0) {
		return 0, fmt.Errorf("%d: %w", v, ErrValueOutOfRange)
	}
	return t, nil
}

func setInteger[T constraints.Integer](values []T, i int, n number) ([]T, error) {
	v, err := n.int64()
	if err != nil {
		return values, err
	}
	t, err := toInteger[T](v)
	if err != nil {
		return values, err
	}
	return setAt(values, i, t)
}
