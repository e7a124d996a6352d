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
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// DataElementTag is a unique identifier for a Data Element composed of an unordered pair
// of numbers called the group number and the element number as specified in
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_3.10.
//
// The least significant 16 bits is the element number. The most significant 16 bits is the group
// number.
type DataElementTag uint32

// NewTag returns the DataElementTag with the given group and element numbers
func NewTag(group, element uint16) DataElementTag {
	return DataElementTag(uint32(group)<<16 | uint32(element))
}

// GroupNumber returns the group number component of the DataElementTag
func (t DataElementTag) GroupNumber() uint16 {
	return uint16(t >> 16)
}

// ElementNumber returns the element number component of the DataElementTag
func (t DataElementTag) ElementNumber() uint16 {
	return uint16(t & 0xFFFF)
}

// IsMetaElement is true if and only if the Data Element is a file meta element (group 0002)
func (t DataElementTag) IsMetaElement() bool {
	return t.GroupNumber() == uint16(0x0002)
}

// IsPrivate is true if and only if the tag belongs to a private group (odd group number)
func (t DataElementTag) IsPrivate() bool {
	return t.GroupNumber()%2 == 1
}

// IsGroupLength is true for group length elements (gggg,0000)
func (t DataElementTag) IsGroupLength() bool {
	return t.ElementNumber() == 0
}

func (t DataElementTag) String() string {
	return fmt.Sprintf("(%04X,%04X)", t.GroupNumber(), t.ElementNumber())
}

// DataElement models a DICOM Data Element as defined in
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_3.10
type DataElement struct {
	Tag DataElementTag

	// Value Representation
	VR *VR

	// ValueField represents the field within a Data Element that contains its value(s)
	// Can be any of of the following types:
	// []string for text VRs and UI,
	// []byte for OB, OW, UN,
	// [][]byte for encapsulated pixel data fragments,
	// []int16 for SS,
	// []uint16 for US,
	// []int32 for SL,
	// []uint32 for UL, OL, AT,
	// []float32 for FL, OF,
	// []float64 for FD, OD,
	// *Sequence for SQ.
	//
	// A nil ValueField means no value was ever assigned. The element is then treated as absent
	// and it is not written by Construct.
	ValueField interface{}

	// ValueLength is equal to the length of the ValueField in bytes.
	// Can be equal to 0xFFFFFFFF to represent an undefined length:
	// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.1.1
	ValueLength uint32
}

// NewDataElement returns an element without value for the given tag. A nil vr is replaced by
// the VR found in the data dictionary.
func NewDataElement(tag DataElementTag, vr *VR) *DataElement {
	if vr == nil {
		vr = tag.DictionaryVR()
	}
	return &DataElement{Tag: tag, VR: vr}
}

func (e *DataElement) String() string {
	vr := "??"
	if e.VR != nil {
		vr = e.VR.Name
	}
	head := fmt.Sprintf("%v %v %v", e.Tag, vr, e.Tag.Keyword())
	switch v := e.ValueField.(type) {
	case nil:
		return head + " <empty>"
	case *Sequence:
		return fmt.Sprintf("%v (%d items)", head, len(v.Items))
	case []byte:
		return fmt.Sprintf("%v <%d bytes>", head, len(v))
	case [][]byte:
		return fmt.Sprintf("%v <%d fragments>", head, len(v))
	}
	return fmt.Sprintf("%v [%v]", head, strings.Join(e.Strings(), "\\"))
}

// DataSet models a DICOM Data Set as defined
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_3.10
type DataSet struct {
	// Elements is a map of DataElement tags to *DataElement
	Elements map[DataElementTag]*DataElement

	// Length is the length of the data set when it is a sequence item, UndefinedLength when
	// the item was delimited.
	Length uint32
}

// NewDataSet creates a DataSet from a map of tags to value fields. The VR of each DataElement is
// looked up in the data dictionary.
func NewDataSet(elements map[DataElementTag]interface{}) *DataSet {
	ds := &DataSet{Elements: make(map[DataElementTag]*DataElement, len(elements))}
	for tag, value := range elements {
		ds.Elements[tag] = &DataElement{Tag: tag, VR: tag.DictionaryVR(), ValueField: value}
	}
	return ds
}

// SortedTags returns the tags of the data set in ascending order
func (ds *DataSet) SortedTags() []DataElementTag {
	tags := maps.Keys(ds.Elements)
	slices.Sort(tags)
	return tags
}

// SortedElements returns the elements of the data set in ascending tag order
func (ds *DataSet) SortedElements() []*DataElement {
	tags := ds.SortedTags()
	elements := make([]*DataElement, len(tags))
	for i, tag := range tags {
		elements[i] = ds.Elements[tag]
	}
	return elements
}

// MetaElements returns a DataSet sharing the file meta elements (group 0002) of ds
func (ds *DataSet) MetaElements() *DataSet {
	meta := &DataSet{Elements: map[DataElementTag]*DataElement{}}
	for tag, elem := range ds.Elements {
		if tag.IsMetaElement() {
			meta.Elements[tag] = elem
		}
	}
	return meta
}

// Merge adds all elements of other into ds. Elements of other replace elements of ds with the
// same tag.
func (ds *DataSet) Merge(other *DataSet) {
	if ds.Elements == nil {
		ds.Elements = map[DataElementTag]*DataElement{}
	}
	for tag, elem := range other.Elements {
		ds.Elements[tag] = elem
	}
}

// Copy returns a deep copy of the data set
func (ds *DataSet) Copy() *DataSet {
	cp := &DataSet{Elements: make(map[DataElementTag]*DataElement, len(ds.Elements)), Length: ds.Length}
	for tag, elem := range ds.Elements {
		cp.Elements[tag] = elem.Copy()
	}
	return cp
}

// Copy returns a deep copy of the element
func (e *DataElement) Copy() *DataElement {
	return &DataElement{e.Tag, e.VR, copyValueField(e.ValueField), e.ValueLength}
}

func copyValueField(v interface{}) interface{} {
	switch field := v.(type) {
	case []string:
		return slices.Clone(field)
	case []byte:
		return slices.Clone(field)
	case [][]byte:
		fragments := make([][]byte, len(field))
		for i, f := range field {
			fragments[i] = slices.Clone(f)
		}
		return fragments
	case []int16:
		return slices.Clone(field)
	case []uint16:
		return slices.Clone(field)
	case []int32:
		return slices.Clone(field)
	case []uint32:
		return slices.Clone(field)
	case []float32:
		return slices.Clone(field)
	case []float64:
		return slices.Clone(field)
	case *Sequence:
		return field.Copy()
	}
	return v
}

func (ds *DataSet) String() string {
	return ds.string(0)
}

func (ds *DataSet) string(depth int) string {
	lines := make([]string, 0, len(ds.Elements))
	prefix := strings.Repeat(">", depth)
	for _, elem := range ds.SortedElements() {
		lines = append(lines, prefix+elem.String())
		if seq, ok := elem.ValueField.(*Sequence); ok && len(seq.Items) > 0 {
			lines = append(lines, seq.string(depth+1))
		}
	}
	return strings.Join(lines, "\n")
}
