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

package iod

import (
	"fmt"

	"github.com/GoogleCloudPlatform/go-dicom-iod/dicom"
)

// clearAttribute applies a null assignment to the attribute according to its type
func clearAttribute(ds *dicom.DataSet, def AttributeDef) error {
	switch def.Type {
	case Type1:
		return &RequiredAttributeError{Keyword: def.Keyword}
	case Type2, Type2C:
		ds.SetNull(def.Tag)
	default:
		ds.Remove(def.Tag)
	}
	return nil
}

// fitsVM reports whether n values can be written to the attribute. A wrong number of values is
// an error for Type 1 attributes and clears the others.
func fitsVM(ds *dicom.DataSet, def AttributeDef, n int) (bool, error) {
	if !def.hasFixedVM() || n == def.VM {
		return true, nil
	}
	if def.Type == Type1 {
		return false, &MultiplicityError{Keyword: def.Keyword, Want: def.VM, Got: n}
	}
	return false, clearAttribute(ds, def)
}

func setError(def AttributeDef, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%v: %w", def.Keyword, err)
}

// GetString returns the first value of the attribute
func GetString(ds *dicom.DataSet, def AttributeDef) (string, bool) {
	return ds.TryGetString(def.Tag, 0)
}

// SetString sets the attribute to the single value v. An empty string is a null assignment.
func SetString(ds *dicom.DataSet, def AttributeDef, v string) error {
	if v == "" {
		return clearAttribute(ds, def)
	}
	if ok, err := fitsVM(ds, def, 1); !ok {
		return err
	}
	return setError(def, ds.SetStrings(def.Tag, []string{v}))
}

// GetStrings returns all values of the attribute
func GetStrings(ds *dicom.DataSet, def AttributeDef) ([]string, bool) {
	values := ds.Strings(def.Tag)
	if len(values) == 0 || (def.hasFixedVM() && len(values) != def.VM) {
		return nil, false
	}
	return values, true
}

// SetStrings replaces the values of the attribute. No values is a null assignment.
func SetStrings(ds *dicom.DataSet, def AttributeDef, v []string) error {
	if len(v) == 0 {
		return clearAttribute(ds, def)
	}
	if ok, err := fitsVM(ds, def, len(v)); !ok {
		return err
	}
	return setError(def, ds.SetStrings(def.Tag, v))
}

// GetInt32 returns the first value of the attribute
func GetInt32(ds *dicom.DataSet, def AttributeDef) (int32, bool) {
	return ds.TryGetInt32(def.Tag, 0)
}

// SetInt32 sets the attribute to the single value *v. A nil v is a null assignment.
func SetInt32(ds *dicom.DataSet, def AttributeDef, v *int32) error {
	if v == nil {
		return clearAttribute(ds, def)
	}
	if ok, err := fitsVM(ds, def, 1); !ok {
		return err
	}
	return setError(def, ds.SetInt64s(def.Tag, []int64{int64(*v)}))
}

// GetInt64s returns all values of the attribute
func GetInt64s(ds *dicom.DataSet, def AttributeDef) ([]int64, bool) {
	values, ok := ds.Int64s(def.Tag)
	if !ok || (def.hasFixedVM() && len(values) != def.VM) {
		return nil, false
	}
	return values, true
}

// SetInt64s replaces the values of the attribute. No values is a null assignment.
func SetInt64s(ds *dicom.DataSet, def AttributeDef, v []int64) error {
	if len(v) == 0 {
		return clearAttribute(ds, def)
	}
	if ok, err := fitsVM(ds, def, len(v)); !ok {
		return err
	}
	return setError(def, ds.SetInt64s(def.Tag, v))
}

// GetFloat64 returns the first value of the attribute
func GetFloat64(ds *dicom.DataSet, def AttributeDef) (float64, bool) {
	return ds.TryGetFloat64(def.Tag, 0)
}

// SetFloat64 sets the attribute to the single value *v. A nil v is a null assignment.
func SetFloat64(ds *dicom.DataSet, def AttributeDef, v *float64) error {
	if v == nil {
		return clearAttribute(ds, def)
	}
	if ok, err := fitsVM(ds, def, 1); !ok {
		return err
	}
	return setError(def, ds.SetFloat64s(def.Tag, []float64{*v}))
}

// GetFloat64s returns all values of the attribute. Attributes with a fixed multiplicity are
// only returned with exactly that number of values.
func GetFloat64s(ds *dicom.DataSet, def AttributeDef) ([]float64, bool) {
	values, ok := ds.Float64s(def.Tag)
	if !ok || (def.hasFixedVM() && len(values) != def.VM) {
		return nil, false
	}
	return values, true
}

// SetFloat64s replaces the values of the attribute. No values is a null assignment.
func SetFloat64s(ds *dicom.DataSet, def AttributeDef, v []float64) error {
	if len(v) == 0 {
		return clearAttribute(ds, def)
	}
	if ok, err := fitsVM(ds, def, len(v)); !ok {
		return err
	}
	return setError(def, ds.SetFloat64s(def.Tag, v))
}

// GetItems returns the items of the sequence attribute
func GetItems(ds *dicom.DataSet, def AttributeDef) []*dicom.DataSet {
	return ds.SequenceItems(def.Tag)
}

// SetItems replaces the items of the sequence attribute, keeping their order. No items is a
// null assignment.
func SetItems(ds *dicom.DataSet, def AttributeDef, items []*dicom.DataSet) error {
	if !def.Sequence {
		return fmt.Errorf("setting %v: %w", def.Keyword, dicom.ErrIncompatibleVR)
	}
	if len(items) == 0 {
		return clearAttribute(ds, def)
	}
	return setError(def, ds.SetSequenceItems(def.Tag, items))
}
