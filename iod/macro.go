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

// GroupItem is one item of a functional group sequence. Its accessors look up attributes by
// keyword in the group and follow the semantics of their type.
type GroupItem struct {
	Group   *FunctionalGroup
	DataSet *dicom.DataSet
}

func (i GroupItem) def(keyword string) (AttributeDef, bool) {
	if i.DataSet == nil {
		return AttributeDef{}, false
	}
	def, err := i.Group.Attribute(keyword)
	return def, err == nil
}

// GetString returns the first value of the attribute
func (i GroupItem) GetString(keyword string) (string, bool) {
	if def, ok := i.def(keyword); ok {
		return GetString(i.DataSet, def)
	}
	return "", false
}

// GetStrings returns the values of the attribute
func (i GroupItem) GetStrings(keyword string) ([]string, bool) {
	if def, ok := i.def(keyword); ok {
		return GetStrings(i.DataSet, def)
	}
	return nil, false
}

// GetInt32 returns the first value of the attribute
func (i GroupItem) GetInt32(keyword string) (int32, bool) {
	if def, ok := i.def(keyword); ok {
		return GetInt32(i.DataSet, def)
	}
	return 0, false
}

// GetInt64s returns the values of the attribute
func (i GroupItem) GetInt64s(keyword string) ([]int64, bool) {
	if def, ok := i.def(keyword); ok {
		return GetInt64s(i.DataSet, def)
	}
	return nil, false
}

// GetFloat64 returns the first value of the attribute
func (i GroupItem) GetFloat64(keyword string) (float64, bool) {
	if def, ok := i.def(keyword); ok {
		return GetFloat64(i.DataSet, def)
	}
	return 0, false
}

// GetFloat64s returns the values of the attribute
func (i GroupItem) GetFloat64s(keyword string) ([]float64, bool) {
	if def, ok := i.def(keyword); ok {
		return GetFloat64s(i.DataSet, def)
	}
	return nil, false
}

// GetItems returns the items of the sequence attribute
func (i GroupItem) GetItems(keyword string) []*dicom.DataSet {
	if def, ok := i.def(keyword); ok {
		return GetItems(i.DataSet, def)
	}
	return nil
}

func (i GroupItem) update(keyword string, f func(*dicom.DataSet, AttributeDef) error) error {
	def, err := i.Group.Attribute(keyword)
	if err != nil {
		return err
	}
	if i.DataSet == nil {
		return fmt.Errorf("setting %v: no %v item", keyword, i.Group.Name)
	}
	return f(i.DataSet, def)
}

// SetString sets the attribute to a single value
func (i GroupItem) SetString(keyword, v string) error {
	return i.update(keyword, func(ds *dicom.DataSet, def AttributeDef) error {
		return SetString(ds, def, v)
	})
}

// SetStrings replaces the values of the attribute
func (i GroupItem) SetStrings(keyword string, v []string) error {
	return i.update(keyword, func(ds *dicom.DataSet, def AttributeDef) error {
		return SetStrings(ds, def, v)
	})
}

// SetInt32 sets the attribute to a single value
func (i GroupItem) SetInt32(keyword string, v *int32) error {
	return i.update(keyword, func(ds *dicom.DataSet, def AttributeDef) error {
		return SetInt32(ds, def, v)
	})
}

// SetInt64s replaces the values of the attribute
func (i GroupItem) SetInt64s(keyword string, v []int64) error {
	return i.update(keyword, func(ds *dicom.DataSet, def AttributeDef) error {
		return SetInt64s(ds, def, v)
	})
}

// SetFloat64 sets the attribute to a single value
func (i GroupItem) SetFloat64(keyword string, v *float64) error {
	return i.update(keyword, func(ds *dicom.DataSet, def AttributeDef) error {
		return SetFloat64(ds, def, v)
	})
}

// SetFloat64s replaces the values of the attribute
func (i GroupItem) SetFloat64s(keyword string, v []float64) error {
	return i.update(keyword, func(ds *dicom.DataSet, def AttributeDef) error {
		return SetFloat64s(ds, def, v)
	})
}

// SetItems replaces the items of the sequence attribute
func (i GroupItem) SetItems(keyword string, items []*dicom.DataSet) error {
	return i.update(keyword, func(ds *dicom.DataSet, def AttributeDef) error {
		return SetItems(ds, def, items)
	})
}

// Macro is a functional group in one item of the Shared or Per-frame Functional Groups Sequence.
// It holds no state besides the references, so views can be created freely.
//
// The keyword accessors of Macro read and write the first item of the group sequence. Setters
// add the item when the group has none.
type Macro struct {
	Group *FunctionalGroup

	// Parent is the functional groups sequence item holding the group sequence
	Parent *dicom.DataSet
}

// HasValues is true when the group sequence has at least one item
func (m Macro) HasValues() bool {
	return m.Parent != nil && len(m.Items()) > 0
}

// Items returns the items of the group sequence
func (m Macro) Items() []*dicom.DataSet {
	if m.Parent == nil {
		return nil
	}
	return m.Parent.SequenceItems(m.Group.SequenceTag)
}

// GroupItems returns the items of the group sequence as group items
func (m Macro) GroupItems() []GroupItem {
	items := m.Items()
	views := make([]GroupItem, len(items))
	for i, item := range items {
		views[i] = GroupItem{Group: m.Group, DataSet: item}
	}
	return views
}

// Item returns the first item of the group sequence
func (m Macro) Item() (*dicom.DataSet, bool) {
	items := m.Items()
	if len(items) == 0 {
		return nil, false
	}
	return items[0], true
}

// CreateItem returns the first item of the group sequence, adding it when the sequence has none
func (m Macro) CreateItem() (*dicom.DataSet, error) {
	if item, ok := m.Item(); ok {
		return item, nil
	}
	return m.AddItem()
}

// AddItem appends an empty item to the group sequence
func (m Macro) AddItem() (*dicom.DataSet, error) {
	if m.Parent == nil {
		return nil, fmt.Errorf("%v: no functional groups item", m.Group.Name)
	}
	if !m.Group.Multiple && m.HasValues() {
		return nil, fmt.Errorf("%v: %w", m.Group.Name, ErrSingleItem)
	}
	return m.Parent.NewSequenceItem(m.Group.SequenceTag)
}

// SetItems replaces the items of the group sequence. No items removes the group.
func (m Macro) SetItems(items []*dicom.DataSet) error {
	if m.Parent == nil {
		return fmt.Errorf("%v: no functional groups item", m.Group.Name)
	}
	if len(items) == 0 {
		m.Parent.Remove(m.Group.SequenceTag)
		return nil
	}
	if !m.Group.Multiple && len(items) > 1 {
		return fmt.Errorf("%v: %d items: %w", m.Group.Name, len(items), ErrSingleItem)
	}
	return m.Parent.SetSequenceItems(m.Group.SequenceTag, items)
}

func (m Macro) first() GroupItem {
	item, _ := m.Item()
	return GroupItem{Group: m.Group, DataSet: item}
}

// update applies f to the first item. Without an item f runs on a new one, which is added only
// when f succeeds and leaves attributes in it.
func (m Macro) update(f func(GroupItem) error) error {
	if item, ok := m.Item(); ok {
		return f(GroupItem{Group: m.Group, DataSet: item})
	}
	if m.Parent == nil {
		return fmt.Errorf("%v: no functional groups item", m.Group.Name)
	}
	item := &dicom.DataSet{Elements: map[dicom.DataElementTag]*dicom.DataElement{}}
	if err := f(GroupItem{Group: m.Group, DataSet: item}); err != nil {
		return err
	}
	if len(item.Elements) == 0 {
		return nil
	}
	return m.Parent.AddSequenceItem(m.Group.SequenceTag, item)
}

// GetString returns the first value of the attribute
func (m Macro) GetString(keyword string) (string, bool) {
	return m.first().GetString(keyword)
}

// GetStrings returns the values of the attribute
func (m Macro) GetStrings(keyword string) ([]string, bool) {
	return m.first().GetStrings(keyword)
}

// GetInt32 returns the first value of the attribute
func (m Macro) GetInt32(keyword string) (int32, bool) {
	return m.first().GetInt32(keyword)
}

// GetInt64s returns the values of the attribute
func (m Macro) GetInt64s(keyword string) ([]int64, bool) {
	return m.first().GetInt64s(keyword)
}

// GetFloat64 returns the first value of the attribute
func (m Macro) GetFloat64(keyword string) (float64, bool) {
	return m.first().GetFloat64(keyword)
}

// GetFloat64s returns the values of the attribute
func (m Macro) GetFloat64s(keyword string) ([]float64, bool) {
	return m.first().GetFloat64s(keyword)
}

// GetItems returns the items of the sequence attribute
func (m Macro) GetItems(keyword string) []*dicom.DataSet {
	return m.first().GetItems(keyword)
}

// SetString sets the attribute to a single value
func (m Macro) SetString(keyword, v string) error {
	return m.update(func(i GroupItem) error { return i.SetString(keyword, v) })
}

// SetStrings replaces the values of the attribute
func (m Macro) SetStrings(keyword string, v []string) error {
	return m.update(func(i GroupItem) error { return i.SetStrings(keyword, v) })
}

// SetInt32 sets the attribute to a single value
func (m Macro) SetInt32(keyword string, v *int32) error {
	return m.update(func(i GroupItem) error { return i.SetInt32(keyword, v) })
}

// SetInt64s replaces the values of the attribute
func (m Macro) SetInt64s(keyword string, v []int64) error {
	return m.update(func(i GroupItem) error { return i.SetInt64s(keyword, v) })
}

// SetFloat64 sets the attribute to a single value
func (m Macro) SetFloat64(keyword string, v *float64) error {
	return m.update(func(i GroupItem) error { return i.SetFloat64(keyword, v) })
}

// SetFloat64s replaces the values of the attribute
func (m Macro) SetFloat64s(keyword string, v []float64) error {
	return m.update(func(i GroupItem) error { return i.SetFloat64s(keyword, v) })
}

// SetAttributeItems replaces the items of the sequence attribute
func (m Macro) SetAttributeItems(keyword string, items []*dicom.DataSet) error {
	return m.update(func(i GroupItem) error { return i.SetItems(keyword, items) })
}
