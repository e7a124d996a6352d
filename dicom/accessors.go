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
)

// Element returns the element of the tag, nil when the tag is not in the data set
func (ds *DataSet) Element(tag DataElementTag) *DataElement {
	return ds.Elements[tag]
}

// Attribute returns the element of the tag. When the tag is not in the data set an empty element
// with the VR of the data dictionary is added.
func (ds *DataSet) Attribute(tag DataElementTag) *DataElement {
	if ds.Elements == nil {
		ds.Elements = map[DataElementTag]*DataElement{}
	}
	e, ok := ds.Elements[tag]
	if !ok {
		e = NewDataElement(tag, nil)
		ds.Elements[tag] = e
	}
	return e
}

// Put adds the element to the data set, replacing any element with the same tag
func (ds *DataSet) Put(e *DataElement) {
	if ds.Elements == nil {
		ds.Elements = map[DataElementTag]*DataElement{}
	}
	ds.Elements[e.Tag] = e
}

// Contains is true when the tag is present in the data set, null or with values
func (ds *DataSet) Contains(tag DataElementTag) bool {
	return !ds.Elements[tag].IsEmpty()
}

// IsNull is true when the tag is present in the data set with zero values
func (ds *DataSet) IsNull(tag DataElementTag) bool {
	return ds.Elements[tag].IsNull()
}

// Count returns the number of values of the tag
func (ds *DataSet) Count(tag DataElementTag) int {
	if e := ds.Elements[tag]; e != nil {
		return e.Count()
	}
	return 0
}

// Remove deletes the tag from the data set
func (ds *DataSet) Remove(tag DataElementTag) {
	delete(ds.Elements, tag)
}

// SetNull makes the tag present with zero values
func (ds *DataSet) SetNull(tag DataElementTag) {
	ds.Attribute(tag).SetNullValue()
}

// set applies f to the element of the tag. A tag added for f is removed again when f fails.
func (ds *DataSet) set(tag DataElementTag, f func(*DataElement) error) error {
	_, existed := ds.Elements[tag]
	if err := f(ds.Attribute(tag)); err != nil {
		if !existed {
			delete(ds.Elements, tag)
		}
		return err
	}
	return nil
}

// replace sets all values of the element of the tag with set(e, i) for i in [0, n). Zero values
// make the element null. The element keeps its previous values when set fails.
func (ds *DataSet) replace(tag DataElementTag, n int, set func(e *DataElement, i int) error) error {
	return ds.set(tag, func(e *DataElement) error {
		prev, prevLength := e.ValueField, e.ValueLength
		e.SetNullValue()
		for i := 0; i < n; i++ {
			if err := set(e, i); err != nil {
				e.ValueField, e.ValueLength = prev, prevLength
				return err
			}
		}
		return nil
	})
}

// TryGetString returns the value at index i of the tag as a string
func (ds *DataSet) TryGetString(tag DataElementTag, i int) (string, bool) {
	if e := ds.Elements[tag]; e != nil {
		return e.StringAt(i)
	}
	return "", false
}

// GetString returns the value at index i of the tag as a string, or def
func (ds *DataSet) GetString(tag DataElementTag, i int, def string) string {
	if s, ok := ds.TryGetString(tag, i); ok {
		return s
	}
	return def
}

// SetString sets the value at index i of the tag
func (ds *DataSet) SetString(tag DataElementTag, i int, v string) error {
	return ds.set(tag, func(e *DataElement) error {
		return e.SetStringAt(i, v)
	})
}

// Strings returns all values of the tag as strings
func (ds *DataSet) Strings(tag DataElementTag) []string {
	if e := ds.Elements[tag]; e != nil {
		return e.Strings()
	}
	return nil
}

// SetStrings replaces all values of the tag
func (ds *DataSet) SetStrings(tag DataElementTag, values []string) error {
	return ds.replace(tag, len(values), func(e *DataElement, i int) error {
		return e.SetStringAt(i, values[i])
	})
}

// TryGetFloat64 returns the value at index i of the tag as a float64
func (ds *DataSet) TryGetFloat64(tag DataElementTag, i int) (float64, bool) {
	if e := ds.Elements[tag]; e != nil {
		return e.Float64At(i)
	}
	return 0, false
}

// GetFloat64 returns the value at index i of the tag as a float64, or def
func (ds *DataSet) GetFloat64(tag DataElementTag, i int, def float64) float64 {
	if v, ok := ds.TryGetFloat64(tag, i); ok {
		return v
	}
	return def
}

// SetFloat64 sets the value at index i of the tag
func (ds *DataSet) SetFloat64(tag DataElementTag, i int, v float64) error {
	return ds.set(tag, func(e *DataElement) error {
		return e.SetFloat64At(i, v)
	})
}

// AppendFloat64 adds a value after the last value of the tag
func (ds *DataSet) AppendFloat64(tag DataElementTag, v float64) error {
	return ds.set(tag, func(e *DataElement) error {
		return e.AppendFloat64(v)
	})
}

// Float64s returns all values of the tag. It fails when the tag has no values or any value is
// not a number.
func (ds *DataSet) Float64s(tag DataElementTag) ([]float64, bool) {
	e := ds.Elements[tag]
	if e == nil || e.Count() == 0 {
		return nil, false
	}
	values := make([]float64, e.Count())
	for i := range values {
		v, ok := e.Float64At(i)
		if !ok {
			return nil, false
		}
		values[i] = v
	}
	return values, true
}

// SetFloat64s replaces all values of the tag
func (ds *DataSet) SetFloat64s(tag DataElementTag, values []float64) error {
	return ds.replace(tag, len(values), func(e *DataElement, i int) error {
		return e.SetFloat64At(i, values[i])
	})
}

// TryGetInt64 returns the value at index i of the tag as an int64
func (ds *DataSet) TryGetInt64(tag DataElementTag, i int) (int64, bool) {
	if e := ds.Elements[tag]; e != nil {
		return e.Int64At(i)
	}
	return 0, false
}

// SetInt64 sets the value at index i of the tag
func (ds *DataSet) SetInt64(tag DataElementTag, i int, v int64) error {
	return ds.set(tag, func(e *DataElement) error {
		return e.SetInt64At(i, v)
	})
}

// Int64s returns all values of the tag. It fails when the tag has no values or any value is not
// an integer.
func (ds *DataSet) Int64s(tag DataElementTag) ([]int64, bool) {
	e := ds.Elements[tag]
	if e == nil || e.Count() == 0 {
		return nil, false
	}
	values := make([]int64, e.Count())
	for i := range values {
		v, ok := e.Int64At(i)
		if !ok {
			return nil, false
		}
		values[i] = v
	}
	return values, true
}

// SetInt64s replaces all values of the tag
func (ds *DataSet) SetInt64s(tag DataElementTag, values []int64) error {
	return ds.replace(tag, len(values), func(e *DataElement, i int) error {
		return e.SetInt64At(i, values[i])
	})
}

// TryGetInt32 returns the value at index i of the tag as an int32
func (ds *DataSet) TryGetInt32(tag DataElementTag, i int) (int32, bool) {
	v, ok := ds.TryGetInt64(tag, i)
	if !ok || v < math.MinInt32 || v > math.MaxInt32 {
		return 0, false
	}
	return int32(v), true
}

// GetInt32 returns the value at index i of the tag as an int32, or def
func (ds *DataSet) GetInt32(tag DataElementTag, i int, def int32) int32 {
	if v, ok := ds.TryGetInt32(tag, i); ok {
		return v
	}
	return def
}

// SetInt32 sets the value at index i of the tag
func (ds *DataSet) SetInt32(tag DataElementTag, i int, v int32) error {
	return ds.SetInt64(tag, i, int64(v))
}

// TryGetUint16 returns the value at index i of the tag as an uint16
func (ds *DataSet) TryGetUint16(tag DataElementTag, i int) (uint16, bool) {
	v, ok := ds.TryGetInt64(tag, i)
	if !ok || v < 0 || v > math.MaxUint16 {
		return 0, false
	}
	return uint16(v), true
}

// SetUint16 sets the value at index i of the tag
func (ds *DataSet) SetUint16(tag DataElementTag, i int, v uint16) error {
	return ds.SetInt64(tag, i, int64(v))
}

// TryGetUint32 returns the value at index i of the tag as an uint32
func (ds *DataSet) TryGetUint32(tag DataElementTag, i int) (uint32, bool) {
	v, ok := ds.TryGetInt64(tag, i)
	if !ok || v < 0 || v > math.MaxUint32 {
		return 0, false
	}
	return uint32(v), true
}

// SetUint32 sets the value at index i of the tag
func (ds *DataSet) SetUint32(tag DataElementTag, i int, v uint32) error {
	return ds.SetInt64(tag, i, int64(v))
}

// SequenceItems returns the items of the sequence of the tag
func (ds *DataSet) SequenceItems(tag DataElementTag) []*DataSet {
	if e := ds.Elements[tag]; e != nil {
		return e.Items()
	}
	return nil
}

// SetSequenceItems replaces the items of the sequence of the tag. Zero items make the sequence
// null.
func (ds *DataSet) SetSequenceItems(tag DataElementTag, items []*DataSet) error {
	return ds.replace(tag, len(items), func(e *DataElement, i int) error {
		return e.AddSequenceItem(items[i])
	})
}

// AddSequenceItem appends item to the sequence of the tag, adding the sequence when missing
func (ds *DataSet) AddSequenceItem(tag DataElementTag, item *DataSet) error {
	return ds.set(tag, func(e *DataElement) error {
		return e.AddSequenceItem(item)
	})
}

// NewSequenceItem appends an empty item to the sequence of the tag and returns it
func (ds *DataSet) NewSequenceItem(tag DataElementTag) (*DataSet, error) {
	item := &DataSet{Elements: map[DataElementTag]*DataElement{}}
	if err := ds.AddSequenceItem(tag, item); err != nil {
		return nil, fmt.Errorf("adding item: %v", err)
	}
	return item, nil
}
