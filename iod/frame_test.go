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
	"errors"
	"fmt"
	"testing"

	"github.com/GoogleCloudPlatform/go-dicom-iod/dicom"
	"github.com/google/go-cmp/cmp"
)

func TestFrameDataSet(t *testing.T) {
	ds := enhancedCT()
	shared, _ := NewMultiFrameFunctionalGroupsModule(ds).SharedFunctionalGroups()
	if err := NewPlanePositionPatient(shared).SetImagePositionPatient([]float64{9, 9, 9}); err != nil {
		t.Fatalf("SetImagePositionPatient: %v", err)
	}
	if err := NewReferencedImage(shared).AddReference("1.2.840.10008.5.1.4.1.1.2", "1.2.3.1", Code{Value: "121311", Scheme: "DCM"}); err != nil {
		t.Fatalf("AddReference: %v", err)
	}

	tests := []struct {
		frame        int
		wantPosition []float64
		wantIndex    []int64
	}{
		{1, []float64{0, 0, 0}, []int64{1, 1}},
		{2, []float64{0, 0, 1.25}, []int64{1, 2}},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("frame %d", tc.frame), func(t *testing.T) {
			frame, err := FrameDataSet(ds, tc.frame)
			if err != nil {
				t.Fatalf("FrameDataSet: %v", err)
			}
			for _, tag := range []dicom.DataElementTag{
				dicom.SharedFunctionalGroupsSequenceTag,
				dicom.PerFrameFunctionalGroupsSequenceTag,
				dicom.PixelMeasuresSequenceTag,
				dicom.PlanePositionSequenceTag,
				dicom.FrameContentSequenceTag,
			} {
				if frame.Contains(tag) {
					t.Fatalf("frame contains %v", tag)
				}
			}
			if got := frame.GetString(dicom.PatientNameTag, 0, ""); got != "Doe^John" {
				t.Fatalf("got PatientName %q, want \"Doe^John\"", got)
			}
			spacing, _ := frame.Float64s(dicom.PixelSpacingTag)
			if diff := cmp.Diff([]float64{0.5, 0.5}, spacing); diff != "" {
				t.Fatalf("unexpected spacing (-want +got):\n%s", diff)
			}
			position, _ := frame.Float64s(dicom.ImagePositionPatientTag)
			if diff := cmp.Diff(tc.wantPosition, position); diff != "" {
				t.Fatalf("unexpected position (-want +got):\n%s", diff)
			}
			index, _ := frame.Int64s(dicom.DimensionIndexValuesTag)
			if diff := cmp.Diff(tc.wantIndex, index); diff != "" {
				t.Fatalf("unexpected index (-want +got):\n%s", diff)
			}
			if n := len(frame.SequenceItems(dicom.ReferencedImageSequenceTag)); n != 1 {
				t.Fatalf("got %d referenced images, want 1", n)
			}
		})
	}
}

func TestFrameDataSet_InvalidFrame(t *testing.T) {
	ds := enhancedCT()
	for _, frame := range []int{0, 3} {
		if _, err := FrameDataSet(ds, frame); !errors.Is(err, ErrInvalidFrameNumber) {
			t.Fatalf("frame %d: got %v, want %v", frame, err, ErrInvalidFrameNumber)
		}
	}
}

func TestFrameDataSet_SharedOnly(t *testing.T) {
	ds := enhancedCT()
	ds.Remove(dicom.PerFrameFunctionalGroupsSequenceTag)
	frame, err := FrameDataSet(ds, 4)
	if err != nil {
		t.Fatalf("FrameDataSet: %v", err)
	}
	if got, ok := frame.TryGetFloat64(dicom.SliceThicknessTag, 0); !ok || got != 1.25 {
		t.Fatalf("got %v, %v, want 1.25", got, ok)
	}
}

// enhancedXA returns a two frame Enhanced XA data set. The table rotation is defined by both
// X-Ray Table Position and X-Ray Isocenter Reference System; the first is listed first for the
// SOP class.
func enhancedXA() *dicom.DataSet {
	rotation := func(angle float32) *dicom.Sequence {
		return dicom.NewSequence(dicom.NewDataSet(map[dicom.DataElementTag]interface{}{
			dicom.TableHorizontalRotationAngleTag: []float32{angle},
		}))
	}
	shared := dicom.NewDataSet(map[dicom.DataElementTag]interface{}{
		dicom.TablePositionSequenceTag: rotation(10),
	})
	first := dicom.NewDataSet(map[dicom.DataElementTag]interface{}{
		dicom.IsocenterReferenceSystemSequenceTag: rotation(5),
	})
	second := dicom.NewDataSet(map[dicom.DataElementTag]interface{}{
		dicom.TablePositionSequenceTag: rotation(20),
	})
	return dicom.NewDataSet(map[dicom.DataElementTag]interface{}{
		dicom.SOPClassUIDTag:                      []string{enhancedXAUID},
		dicom.NumberOfFramesTag:                   []string{"2"},
		dicom.SharedFunctionalGroupsSequenceTag:   dicom.NewSequence(shared),
		dicom.PerFrameFunctionalGroupsSequenceTag: dicom.NewSequence(first, second),
	})
}

func TestMultiFrameAttribute(t *testing.T) {
	tests := []struct {
		name  string
		ds    *dicom.DataSet
		frame int
		tag   dicom.DataElementTag
		want  float64
		found bool
	}{
		{"shared group", enhancedCT(), 2, dicom.PixelSpacingTag, 0.5, true},
		{"per-frame group", enhancedCT(), 2, dicom.ImagePositionPatientTag, 0, true},
		{"first applicable group from shared item", enhancedXA(), 1, dicom.TableHorizontalRotationAngleTag, 10, true},
		{"first applicable group from per-frame item", enhancedXA(), 2, dicom.TableHorizontalRotationAngleTag, 20, true},
		{"group without the attribute", enhancedCT(), 1, dicom.SpacingBetweenSlicesTag, 0, false},
		{"group not present", enhancedCT(), 1, dicom.WindowCenterTag, 0, false},
		{"top level attribute", enhancedCT(), 1, dicom.PatientNameTag, 0, false},
		{"multiple item group", enhancedCT(), 1, dicom.ReferencedSOPInstanceUIDTag, 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e, found, err := MultiFrameAttribute(tc.ds, tc.frame, tc.tag)
			if err != nil {
				t.Fatalf("MultiFrameAttribute: %v", err)
			}
			if found != tc.found {
				t.Fatalf("got found %v, want %v", found, tc.found)
			}
			if !found {
				return
			}
			if e.Tag != tc.tag {
				t.Fatalf("got tag %v, want %v", e.Tag, tc.tag)
			}
			if got, ok := e.Float64At(0); !ok || got != tc.want {
				t.Fatalf("got %v, %v, want %v", got, ok, tc.want)
			}
		})
	}
}

func TestMultiFrameAttribute_InvalidFrame(t *testing.T) {
	for _, frame := range []int{0, 3} {
		if _, _, err := MultiFrameAttribute(enhancedXA(), frame, dicom.TableHorizontalRotationAngleTag); !errors.Is(err, ErrInvalidFrameNumber) {
			t.Fatalf("frame %d: got %v, want %v", frame, err, ErrInvalidFrameNumber)
		}
	}
}

func TestFrameDataSet_SharedSequenceVariant(t *testing.T) {
	ds := enhancedCT()
	shared, _ := NewMultiFrameFunctionalGroupsModule(ds).SharedFunctionalGroups()
	ctGroup, _ := DefaultSchema().Group("CTPixelValueTransformation")
	if err := ctGroup.View(shared).SetString("RescaleType", "HU"); err != nil {
		t.Fatalf("SetString: %v", err)
	}
	frame, err := FrameDataSet(ds, 1)
	if err != nil {
		t.Fatalf("FrameDataSet: %v", err)
	}
	if got := frame.GetString(dicom.RescaleTypeTag, 0, ""); got != "HU" {
		t.Fatalf("got RescaleType %q, want \"HU\"", got)
	}
	if frame.Contains(dicom.PixelValueTransformationSequenceTag) {
		t.Fatalf("frame contains PixelValueTransformationSequence")
	}
}
