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
	"time"

	"github.com/GoogleCloudPlatform/go-dicom-iod/dicom"
)

func defaultModule(name string) *Module {
	m, ok := DefaultSchema().Module(name)
	if !ok {
		panic(fmt.Sprintf("module %v is not in the default schema", name))
	}
	return m
}

func mustAttribute(m *Module, keyword string) AttributeDef {
	def, err := m.Attribute(keyword)
	if err != nil {
		panic(err)
	}
	return def
}

var (
	multiFrameModule = defaultModule("MultiFrameFunctionalGroups")

	sharedFunctionalGroupsDef   = mustAttribute(multiFrameModule, "SharedFunctionalGroupsSequence")
	perFrameFunctionalGroupsDef = mustAttribute(multiFrameModule, "PerFrameFunctionalGroupsSequence")
	instanceNumberDef           = mustAttribute(multiFrameModule, "InstanceNumber")
	contentDateDef              = mustAttribute(multiFrameModule, "ContentDate")
	contentTimeDef              = mustAttribute(multiFrameModule, "ContentTime")
	numberOfFramesDef           = mustAttribute(multiFrameModule, "NumberOfFrames")
	concatenationFrameOffsetDef = mustAttribute(multiFrameModule, "ConcatenationFrameOffsetNumber")
	representativeFrameDef      = mustAttribute(multiFrameModule, "RepresentativeFrameNumber")
	concatenationUIDDef         = mustAttribute(multiFrameModule, "ConcatenationUID")
	concatenationSourceDef      = mustAttribute(multiFrameModule, "SOPInstanceUIDOfConcatenationSource")
	inConcatenationNumberDef    = mustAttribute(multiFrameModule, "InConcatenationNumber")
	inConcatenationTotalDef     = mustAttribute(multiFrameModule, "InConcatenationTotalNumber")
)

// MultiFrameFunctionalGroupsModule is the Multi-frame Functional Groups module of a data set
type MultiFrameFunctionalGroupsModule struct {
	DataSet *dicom.DataSet
}

// NewMultiFrameFunctionalGroupsModule returns the module of ds
func NewMultiFrameFunctionalGroupsModule(ds *dicom.DataSet) *MultiFrameFunctionalGroupsModule {
	return &MultiFrameFunctionalGroupsModule{DataSet: ds}
}

// DefinedTags returns the tags of the module
func (m *MultiFrameFunctionalGroupsModule) DefinedTags() []dicom.DataElementTag {
	return multiFrameModule.Tags()
}

// HasValues is true when the Shared or the Per-frame Functional Groups Sequence has an item.
// Attributes like Instance Number belong to single frame IODs as well and do not count.
func (m *MultiFrameFunctionalGroupsModule) HasValues() bool {
	return m.DataSet.Count(sharedFunctionalGroupsDef.Tag) > 0 ||
		m.DataSet.Count(perFrameFunctionalGroupsDef.Tag) > 0
}

// SharedFunctionalGroups returns the item of the Shared Functional Groups Sequence
func (m *MultiFrameFunctionalGroupsModule) SharedFunctionalGroups() (*dicom.DataSet, bool) {
	items := GetItems(m.DataSet, sharedFunctionalGroupsDef)
	if len(items) == 0 {
		return nil, false
	}
	return items[0], true
}

// SetSharedFunctionalGroups replaces the item of the Shared Functional Groups Sequence. A nil item
// leaves the sequence empty.
func (m *MultiFrameFunctionalGroupsModule) SetSharedFunctionalGroups(item *dicom.DataSet) error {
	if item == nil {
		return SetItems(m.DataSet, sharedFunctionalGroupsDef, nil)
	}
	return SetItems(m.DataSet, sharedFunctionalGroupsDef, []*dicom.DataSet{item})
}

// CreateSharedFunctionalGroups returns the item of the Shared Functional Groups Sequence, adding
// it when missing
func (m *MultiFrameFunctionalGroupsModule) CreateSharedFunctionalGroups() (*dicom.DataSet, error) {
	if item, ok := m.SharedFunctionalGroups(); ok {
		return item, nil
	}
	item := &dicom.DataSet{Elements: map[dicom.DataElementTag]*dicom.DataElement{}}
	if err := m.SetSharedFunctionalGroups(item); err != nil {
		return nil, err
	}
	return item, nil
}

// PerFrameFunctionalGroups returns the items of the Per-frame Functional Groups Sequence, one per
// frame
func (m *MultiFrameFunctionalGroupsModule) PerFrameFunctionalGroups() []*dicom.DataSet {
	return GetItems(m.DataSet, perFrameFunctionalGroupsDef)
}

// SetPerFrameFunctionalGroups replaces the items of the Per-frame Functional Groups Sequence
func (m *MultiFrameFunctionalGroupsModule) SetPerFrameFunctionalGroups(items []*dicom.DataSet) error {
	return SetItems(m.DataSet, perFrameFunctionalGroupsDef, items)
}

// NewFunctionalGroupsItem appends an item for the next frame to the Per-frame Functional Groups
// Sequence
func (m *MultiFrameFunctionalGroupsModule) NewFunctionalGroupsItem() (*dicom.DataSet, error) {
	return m.DataSet.NewSequenceItem(perFrameFunctionalGroupsDef.Tag)
}

// InstanceNumber returns the number of the instance
func (m *MultiFrameFunctionalGroupsModule) InstanceNumber() (int32, bool) {
	return GetInt32(m.DataSet, instanceNumberDef)
}

// SetInstanceNumber sets the number of the instance
func (m *MultiFrameFunctionalGroupsModule) SetInstanceNumber(v *int32) error {
	return SetInt32(m.DataSet, instanceNumberDef, v)
}

// NumberOfFrames returns the number of frames of the instance
func (m *MultiFrameFunctionalGroupsModule) NumberOfFrames() (int32, bool) {
	return GetInt32(m.DataSet, numberOfFramesDef)
}

// SetNumberOfFrames sets the number of frames of the instance
func (m *MultiFrameFunctionalGroupsModule) SetNumberOfFrames(v *int32) error {
	return SetInt32(m.DataSet, numberOfFramesDef, v)
}

// ContentDateTime returns Content Date and Content Time as one instant in UTC
func (m *MultiFrameFunctionalGroupsModule) ContentDateTime() (time.Time, bool) {
	da, ok := GetString(m.DataSet, contentDateDef)
	if !ok {
		return time.Time{}, false
	}
	tm, ok := GetString(m.DataSet, contentTimeDef)
	if !ok {
		return time.Time{}, false
	}
	t, err := combineDateTime(da, tm)
	return t, err == nil
}

// SetContentDateTime sets Content Date and Content Time. Both are required, so nil fails.
func (m *MultiFrameFunctionalGroupsModule) SetContentDateTime(t *time.Time) error {
	if t == nil {
		return SetString(m.DataSet, contentDateDef, "")
	}
	if err := SetString(m.DataSet, contentDateDef, formatDate(*t)); err != nil {
		return err
	}
	return SetString(m.DataSet, contentTimeDef, formatTime(*t))
}

// ConcatenationFrameOffsetNumber returns the offset of the first frame of the instance in the
// concatenation
func (m *MultiFrameFunctionalGroupsModule) ConcatenationFrameOffsetNumber() (int32, bool) {
	return GetInt32(m.DataSet, concatenationFrameOffsetDef)
}

// SetConcatenationFrameOffsetNumber sets the offset of the first frame of the instance
func (m *MultiFrameFunctionalGroupsModule) SetConcatenationFrameOffsetNumber(v *int32) error {
	return SetInt32(m.DataSet, concatenationFrameOffsetDef, v)
}

// RepresentativeFrameNumber returns the frame that best represents the instance
func (m *MultiFrameFunctionalGroupsModule) RepresentativeFrameNumber() (int32, bool) {
	return GetInt32(m.DataSet, representativeFrameDef)
}

// SetRepresentativeFrameNumber sets the frame that best represents the instance
func (m *MultiFrameFunctionalGroupsModule) SetRepresentativeFrameNumber(v *int32) error {
	return SetInt32(m.DataSet, representativeFrameDef, v)
}

// ConcatenationUID returns the UID shared by the instances of a concatenation
func (m *MultiFrameFunctionalGroupsModule) ConcatenationUID() (string, bool) {
	return GetString(m.DataSet, concatenationUIDDef)
}

// SetConcatenationUID sets the UID shared by the instances of a concatenation
func (m *MultiFrameFunctionalGroupsModule) SetConcatenationUID(v string) error {
	return SetString(m.DataSet, concatenationUIDDef, v)
}

// NewConcatenationUID sets a new Concatenation UID and returns it
func (m *MultiFrameFunctionalGroupsModule) NewConcatenationUID() (string, error) {
	uid := dicom.NewUID()
	if err := m.SetConcatenationUID(uid); err != nil {
		return "", err
	}
	return uid, nil
}

// SOPInstanceUIDOfConcatenationSource returns the instance that was split into the
// concatenation
func (m *MultiFrameFunctionalGroupsModule) SOPInstanceUIDOfConcatenationSource() (string, bool) {
	return GetString(m.DataSet, concatenationSourceDef)
}

// SetSOPInstanceUIDOfConcatenationSource sets the instance that was split into the
// concatenation
func (m *MultiFrameFunctionalGroupsModule) SetSOPInstanceUIDOfConcatenationSource(v string) error {
	return SetString(m.DataSet, concatenationSourceDef, v)
}

// InConcatenationNumber returns the position of the instance in the concatenation, starting at 1
func (m *MultiFrameFunctionalGroupsModule) InConcatenationNumber() (int32, bool) {
	return GetInt32(m.DataSet, inConcatenationNumberDef)
}

// SetInConcatenationNumber sets the position of the instance in the concatenation, starting at 1
func (m *MultiFrameFunctionalGroupsModule) SetInConcatenationNumber(v *int32) error {
	return SetInt32(m.DataSet, inConcatenationNumberDef, v)
}

// InConcatenationTotalNumber returns the number of instances in the concatenation
func (m *MultiFrameFunctionalGroupsModule) InConcatenationTotalNumber() (int32, bool) {
	return GetInt32(m.DataSet, inConcatenationTotalDef)
}

// SetInConcatenationTotalNumber sets the number of instances in the concatenation
func (m *MultiFrameFunctionalGroupsModule) SetInConcatenationTotalNumber(v *int32) error {
	return SetInt32(m.DataSet, inConcatenationTotalDef, v)
}

// FunctionalGroup returns the group for a frame, numbered from 1. The per-frame item of the
// frame is used when it has the group, the shared item otherwise. frameSpecific tells which one.
// The returned macro has no values when neither item has the group.
func (m *MultiFrameFunctionalGroupsModule) FunctionalGroup(group *FunctionalGroup, frameNumber int) (macro Macro, frameSpecific bool, err error) {
	if frameNumber < 1 {
		return Macro{Group: group}, false, fmt.Errorf("frame %d: %w", frameNumber, ErrInvalidFrameNumber)
	}
	if perFrame := m.PerFrameFunctionalGroups(); frameNumber <= len(perFrame) {
		if g := group.View(perFrame[frameNumber-1]); g.HasValues() {
			return g, true, nil
		}
	}
	if shared, ok := m.SharedFunctionalGroups(); ok {
		if g := group.View(shared); g.HasValues() {
			return g, false, nil
		}
	}
	return Macro{Group: group}, false, nil
}
