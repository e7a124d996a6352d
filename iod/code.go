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
	"github.com/GoogleCloudPlatform/go-dicom-iod/dicom"
)

// Code is a coded entry of a code sequence item (PS3.3 Table 8.8-1)
type Code struct {
	Value   string
	Scheme  string
	Meaning string
}

// NewCodeItem returns a code sequence item holding the non-empty fields of c
func NewCodeItem(c Code) (*dicom.DataSet, error) {
	item := &dicom.DataSet{Elements: map[dicom.DataElementTag]*dicom.DataElement{}}
	for _, v := range []struct {
		tag   dicom.DataElementTag
		value string
	}{
		{dicom.CodeValueTag, c.Value},
		{dicom.CodingSchemeDesignatorTag, c.Scheme},
		{dicom.CodeMeaningTag, c.Meaning},
	} {
		if v.value == "" {
			continue
		}
		if err := item.SetString(v.tag, 0, v.value); err != nil {
			return nil, err
		}
	}
	return item, nil
}

// CodeFromItem reads the coded entry of a code sequence item
func CodeFromItem(item *dicom.DataSet) (Code, bool) {
	value, ok := item.TryGetString(dicom.CodeValueTag, 0)
	if !ok {
		return Code{}, false
	}
	return Code{
		Value:   value,
		Scheme:  item.GetString(dicom.CodingSchemeDesignatorTag, 0, ""),
		Meaning: item.GetString(dicom.CodeMeaningTag, 0, ""),
	}, true
}

func codesFromItems(items []*dicom.DataSet) []Code {
	var codes []Code
	for _, item := range items {
		if c, ok := CodeFromItem(item); ok {
			codes = append(codes, c)
		}
	}
	return codes
}

func codeItems(codes []Code) ([]*dicom.DataSet, error) {
	items := make([]*dicom.DataSet, len(codes))
	for i, c := range codes {
		item, err := NewCodeItem(c)
		if err != nil {
			return nil, err
		}
		items[i] = item
	}
	return items, nil
}
