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

// FrameDataSet returns the attributes of one frame, numbered from 1, as a single data set: the
// top level attributes, then the attributes of the shared functional groups, then those of the
// frame's functional groups. Later attributes replace earlier ones with the same tag. Groups
// with several items are kept as sequences.
//
// The frame data set shares its elements with ds.
func (r *Registry) FrameDataSet(ds *dicom.DataSet, frameNumber int) (*dicom.DataSet, error) {
	mf := NewMultiFrameFunctionalGroupsModule(ds)
	perFrame := mf.PerFrameFunctionalGroups()
	if err := checkFrameNumber(frameNumber, len(perFrame)); err != nil {
		return nil, err
	}

	sopClassUID := ds.GetString(dicom.SOPClassUIDTag, 0, "")
	frame := &dicom.DataSet{Elements: map[dicom.DataElementTag]*dicom.DataElement{}}
	for tag, e := range ds.Elements {
		if tag == dicom.SharedFunctionalGroupsSequenceTag || tag == dicom.PerFrameFunctionalGroupsSequenceTag {
			continue
		}
		frame.Elements[tag] = e
	}
	if shared, ok := mf.SharedFunctionalGroups(); ok {
		r.flatten(frame, shared, sopClassUID)
	}
	if frameNumber <= len(perFrame) {
		r.flatten(frame, perFrame[frameNumber-1], sopClassUID)
	}
	return frame, nil
}

func checkFrameNumber(frameNumber, frames int) error {
	if frameNumber < 1 || (frames > 0 && frameNumber > frames) {
		return fmt.Errorf("frame %d of %d: %w", frameNumber, frames, ErrInvalidFrameNumber)
	}
	return nil
}

// flatten copies the attributes of the functional groups in item to frame
func (r *Registry) flatten(frame, item *dicom.DataSet, sopClassUID string) {
	for tag, e := range item.Elements {
		g, ok := r.groupBySequence(sopClassUID, tag)
		items := e.Items()
		if !ok || g.CanHaveMultipleItems() || len(items) != 1 {
			frame.Elements[tag] = e
			continue
		}
		for nestedTag, nested := range items[0].Elements {
			frame.Elements[nestedTag] = nested
		}
	}
}

// MultiFrameAttribute returns the element with the tag for one frame, numbered from 1. The tag is
// read from the single item of the functional group defining it for the SOP class of ds, taken
// from the frame's per-frame item when it has the group and from the shared item otherwise.
// found is false when no applicable single item group defines the tag, or when the group item
// does not have it.
func (r *Registry) MultiFrameAttribute(ds *dicom.DataSet, frameNumber int, tag dicom.DataElementTag) (e *dicom.DataElement, found bool, err error) {
	mf := NewMultiFrameFunctionalGroupsModule(ds)
	if err := checkFrameNumber(frameNumber, len(mf.PerFrameFunctionalGroups())); err != nil {
		return nil, false, err
	}
	g, ok := r.GroupForTag(ds.GetString(dicom.SOPClassUIDTag, 0, ""), tag)
	if !ok {
		return nil, false, nil
	}
	macro, _, err := mf.FunctionalGroup(g, frameNumber)
	if err != nil {
		return nil, false, err
	}
	item, ok := macro.Item()
	if !ok {
		return nil, false, nil
	}
	e, ok = item.Elements[tag]
	return e, ok, nil
}

// FrameDataSet returns the attributes of one frame using the default registry
func FrameDataSet(ds *dicom.DataSet, frameNumber int) (*dicom.DataSet, error) {
	return defaultRegistry.FrameDataSet(ds, frameNumber)
}

// MultiFrameAttribute returns the element of one frame using the default registry
func MultiFrameAttribute(ds *dicom.DataSet, frameNumber int, tag dicom.DataElementTag) (*dicom.DataElement, bool, error) {
	return defaultRegistry.MultiFrameAttribute(ds, frameNumber, tag)
}
