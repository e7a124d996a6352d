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
	"testing"

	"github.com/GoogleCloudPlatform/go-dicom-iod/dicom"
)

const (
	enhancedCTUID     = "1.2.840.10008.5.1.4.1.1.2.1"
	enhancedMRUID     = "1.2.840.10008.5.1.4.1.1.4.1"
	mrSpectroscopyUID = "1.2.840.10008.5.1.4.1.1.4.2"
	enhancedXAUID     = "1.2.840.10008.5.1.4.1.1.12.1.1"
	enhancedPETUID    = "1.2.840.10008.5.1.4.1.1.130"
)

func attributeDef(t *testing.T, group, keyword string) AttributeDef {
	t.Helper()
	g, ok := DefaultSchema().Group(group)
	if !ok {
		t.Fatalf("no functional group %v", group)
	}
	def, err := g.Attribute(keyword)
	if err != nil {
		t.Fatalf("Attribute(%v): %v", keyword, err)
	}
	return def
}

func emptyDataSet() *dicom.DataSet {
	return &dicom.DataSet{Elements: map[dicom.DataElementTag]*dicom.DataElement{}}
}

// enhancedCT returns a valid two frame Enhanced CT data set. The shared item holds Pixel
// Measures, the per-frame items hold Plane Position (Patient) and Frame Content.
func enhancedCT() *dicom.DataSet {
	perFrame := func(position string, index uint32) *dicom.DataSet {
		return dicom.NewDataSet(map[dicom.DataElementTag]interface{}{
			dicom.PlanePositionSequenceTag: dicom.NewSequence(dicom.NewDataSet(map[dicom.DataElementTag]interface{}{
				dicom.ImagePositionPatientTag: []string{"0", "0", position},
			})),
			dicom.FrameContentSequenceTag: dicom.NewSequence(dicom.NewDataSet(map[dicom.DataElementTag]interface{}{
				dicom.DimensionIndexValuesTag:     []uint32{1, index},
				dicom.FrameAcquisitionDateTimeTag: []string{"20181105120000"},
			})),
		})
	}
	shared := dicom.NewDataSet(map[dicom.DataElementTag]interface{}{
		dicom.PixelMeasuresSequenceTag: dicom.NewSequence(dicom.NewDataSet(map[dicom.DataElementTag]interface{}{
			dicom.PixelSpacingTag:   []string{"0.5", "0.5"},
			dicom.SliceThicknessTag: []string{"1.25"},
		})),
	})
	return dicom.NewDataSet(map[dicom.DataElementTag]interface{}{
		dicom.MediaStorageSOPClassUIDTag:          []string{enhancedCTUID},
		dicom.MediaStorageSOPInstanceUIDTag:       []string{"1.2.3.4.5"},
		dicom.TransferSyntaxUIDTag:                []string{dicom.ExplicitVRLittleEndianUID},
		dicom.SOPClassUIDTag:                      []string{enhancedCTUID},
		dicom.SOPInstanceUIDTag:                   []string{"1.2.3.4.5"},
		dicom.PatientNameTag:                      []string{"Doe^John"},
		dicom.InstanceNumberTag:                   []string{"1"},
		dicom.NumberOfFramesTag:                   []string{"2"},
		dicom.ContentDateTag:                      []string{"20181105"},
		dicom.ContentTimeTag:                      []string{"120000"},
		dicom.SharedFunctionalGroupsSequenceTag:   dicom.NewSequence(shared),
		dicom.PerFrameFunctionalGroupsSequenceTag: dicom.NewSequence(perFrame("0", 1), perFrame("1.25", 2)),
	})
}
