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
	"bytes"
	"reflect"
	"testing"
)

func dcmReaderFromBytes(data []byte) *dcmReader {
	return newDcmReader(bytes.NewBuffer(data))
}

// compareDataSets fails the test when the data sets differ in tags, VRs or values. Item and
// element lengths are ignored since they depend on how the data set was encoded.
func compareDataSets(t *testing.T, got *DataSet, want *DataSet) {
	t.Helper()
	gotTags, wantTags := got.SortedTags(), want.SortedTags()
	if !reflect.DeepEqual(gotTags, wantTags) {
		t.Fatalf("expected data sets to have same tags: got %v, want %v", gotTags, wantTags)
	}
	for _, tag := range gotTags {
		compareDataElements(t, got.Elements[tag], want.Elements[tag])
	}
}

func compareDataElements(t *testing.T, got *DataElement, want *DataElement) {
	t.Helper()
	gotVR, wantVR := got.VR, want.VR
	if gotVR == nil {
		gotVR = got.Tag.DictionaryVR()
	}
	if wantVR == nil {
		wantVR = want.Tag.DictionaryVR()
	}
	if gotVR != wantVR {
		t.Fatalf("expected VRs of %v to be equal: got %v, want %v", want.Tag, gotVR, wantVR)
	}

	gotSeq, gotIsSeq := got.ValueField.(*Sequence)
	wantSeq, wantIsSeq := want.ValueField.(*Sequence)
	if gotIsSeq && wantIsSeq {
		if len(gotSeq.Items) != len(wantSeq.Items) {
			t.Fatalf("expected sequences %v to have same length: got %v, want %v",
				want.Tag, len(gotSeq.Items), len(wantSeq.Items))
		}
		for i := range gotSeq.Items {
			compareDataSets(t, gotSeq.Items[i], wantSeq.Items[i])
		}
		return
	}

	if !reflect.DeepEqual(got.ValueField, want.ValueField) {
		t.Fatalf("expected ValueFields of %v to be equal: got %#v, want %#v",
			want.Tag, got.ValueField, want.ValueField)
	}
}

func createSingletonSequence(elements ...*DataElement) *Sequence {
	ds := &DataSet{Elements: map[DataElementTag]*DataElement{}}
	for _, elem := range elements {
		ds.Elements[elem.Tag] = elem
	}
	return &Sequence{Items: []*DataSet{ds}}
}

// enhancedCTDataSet returns a data set of a two frame image with shared and per-frame functional
// groups as produced by the readers of this package
func enhancedCTDataSet(syntaxUID string) *DataSet {
	perFrame := func(position string) *DataSet {
		return NewDataSet(map[DataElementTag]interface{}{
			PlanePositionSequenceTag: NewSequence(NewDataSet(map[DataElementTag]interface{}{
				ImagePositionPatientTag: []string{"0", "0", position},
			})),
			FrameContentSequenceTag: NewSequence(NewDataSet(map[DataElementTag]interface{}{
				DimensionIndexValuesTag:     []uint32{1, 2},
				FrameAcquisitionDateTimeTag: []string{"20181105120000"},
			})),
		})
	}
	shared := NewDataSet(map[DataElementTag]interface{}{
		PixelMeasuresSequenceTag: NewSequence(NewDataSet(map[DataElementTag]interface{}{
			PixelSpacingTag:   []string{"0.5", "0.5"},
			SliceThicknessTag: []string{"1.25"},
		})),
		CTExposureSequenceTag: NewSequence(NewDataSet(map[DataElementTag]interface{}{
			ExposureTimeInmsTag: []float64{12.5},
		})),
	})

	return NewDataSet(map[DataElementTag]interface{}{
		FileMetaInformationVersionTag:       []byte{0x00, 0x01},
		MediaStorageSOPClassUIDTag:          []string{"1.2.840.10008.5.1.4.1.1.2.1"},
		MediaStorageSOPInstanceUIDTag:       []string{"1.2.3.4.5"},
		TransferSyntaxUIDTag:                []string{syntaxUID},
		SOPClassUIDTag:                      []string{"1.2.840.10008.5.1.4.1.1.2.1"},
		SOPInstanceUIDTag:                   []string{"1.2.3.4.5"},
		ModalityTag:                         []string{"CT"},
		PatientNameTag:                      []string{"Doe^John"},
		InstanceNumberTag:                   []string{"1"},
		NumberOfFramesTag:                   []string{"2"},
		RowsTag:                             []uint16{2},
		ColumnsTag:                          []uint16{2},
		BitsAllocatedTag:                    []uint16{16},
		ContentDateTag:                      []string{"20181105"},
		ContentTimeTag:                      []string{"120000"},
		SharedFunctionalGroupsSequenceTag:   NewSequence(shared),
		PerFrameFunctionalGroupsSequenceTag: NewSequence(perFrame("0"), perFrame("1.25")),
		ImageTypeTag:                        []string{"ORIGINAL", "PRIMARY", "AXIAL"},
		PixelDataTag:                        []byte{1, 0, 2, 0, 3, 0, 4, 0, 5, 0, 6, 0, 7, 0, 8, 0},
	})
}
