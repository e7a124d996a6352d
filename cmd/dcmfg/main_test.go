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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/GoogleCloudPlatform/go-dicom-iod/dicom"
)

const enhancedCTUID = "1.2.840.10008.5.1.4.1.1.2"

func enhancedCT() *dicom.DataSet {
	perFrame := func(position string, index uint32) *dicom.DataSet {
		return dicom.NewDataSet(map[dicom.DataElementTag]interface{}{
			dicom.PlanePositionSequenceTag: dicom.NewSequence(dicom.NewDataSet(map[dicom.DataElementTag]interface{}{
				dicom.ImagePositionPatientTag: []string{"0", "0", position},
			})),
			dicom.FrameContentSequenceTag: dicom.NewSequence(dicom.NewDataSet(map[dicom.DataElementTag]interface{}{
				dicom.DimensionIndexValuesTag: []uint32{1, index},
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

func writeDataSet(t *testing.T, ds *dicom.DataSet) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "image.dcm")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, dicom.Construct(f, ds))
	return path
}

func run(args ...string) (string, error) {
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestDump(t *testing.T) {
	require := require.New(t)
	out, err := run("dump", writeDataSet(t, enhancedCT()))
	require.NoError(err)
	require.Contains(out, "PatientName [Doe^John]")
	require.Contains(out, "PerFrameFunctionalGroupsSequence (2 items)")
}

func TestDumpPrivateElements(t *testing.T) {
	require := require.New(t)
	ds := enhancedCT()
	ds.Put(&dicom.DataElement{Tag: dicom.NewTag(0x0009, 0x0010), VR: dicom.LOVR, ValueField: []string{"CREATOR"}})
	ds.Put(&dicom.DataElement{Tag: dicom.NewTag(0x0009, 0x1001), VR: dicom.LOVR, ValueField: []string{"secret"}})
	path := writeDataSet(t, ds)

	out, err := run("dump", path)
	require.NoError(err)
	require.Contains(out, "[secret]")

	out, err = run("dump", "--drop-private", path)
	require.NoError(err)
	require.NotContains(out, "secret")
	require.NotContains(out, "CREATOR")
	require.Contains(out, "PatientName [Doe^John]")
}

func TestDumpMissingFile(t *testing.T) {
	_, err := run("dump", filepath.Join(t.TempDir(), "missing.dcm"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestFrame(t *testing.T) {
	path := writeDataSet(t, enhancedCT())
	tests := []struct {
		name     string
		args     []string
		contains []string
	}{
		{"first frame by default", []string{"frame", path}, []string{"ImagePositionPatient [0\\0\\0]", "PixelSpacing [0.5\\0.5]"}},
		{"second frame", []string{"frame", path, "--frame", "2"}, []string{"ImagePositionPatient [0\\0\\1.25]", "DimensionIndexValues [1\\2]"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := run(tc.args...)
			require.NoError(t, err)
			for _, s := range tc.contains {
				require.Contains(t, out, s)
			}
			require.NotContains(t, out, "PerFrameFunctionalGroupsSequence")
			require.NotContains(t, out, "PlanePositionSequence")
		})
	}
}

func TestFrameTag(t *testing.T) {
	path := writeDataSet(t, enhancedCT())
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"keyword from per-frame item", []string{"frame", path, "-f", "2", "--tag", "ImagePositionPatient"}, "ImagePositionPatient [0\\0\\1.25]"},
		{"tag from shared item", []string{"frame", path, "--tag", "(0028,0030)"}, "PixelSpacing [0.5\\0.5]"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := run(tc.args...)
			require.NoError(t, err)
			require.Contains(t, out, tc.want)
			require.NotContains(t, out, "PatientName")
		})
	}

	for _, tag := range []string{"PatientName", "NotAKeyword"} {
		t.Run(tag, func(t *testing.T) {
			_, err := run("frame", path, "--tag", tag)
			require.Error(t, err)
		})
	}
}

func TestFrameOutOfRange(t *testing.T) {
	path := writeDataSet(t, enhancedCT())
	for _, frame := range []string{"0", "3"} {
		t.Run(frame, func(t *testing.T) {
			_, err := run("frame", path, "--frame", frame)
			require.Error(t, err)
		})
	}
}

func TestGroups(t *testing.T) {
	require := require.New(t)
	path := writeDataSet(t, enhancedCT())

	out, err := run("groups", path)
	require.NoError(err)
	require.Contains(out, "SOP class: Enhanced CT Image Storage ("+enhancedCTUID+")")
	require.Regexp(`PixelMeasures\s+PixelMeasuresSequence\s+shared\n`, out)
	require.Regexp(`PlanePositionPatient\s+PlanePositionSequence\s+per-frame \(2 frames\)\n`, out)
	require.Regexp(`FrameContent\s+FrameContentSequence\s+per-frame \(2 frames\)\n`, out)
	require.NotContains(out, "CardiacSynchronization")

	out, err = run("groups", "--all", path)
	require.NoError(err)
	require.Regexp(`CardiacSynchronization\s+CardiacSynchronizationSequence\s+absent\n`, out)
}

func TestValidate(t *testing.T) {
	require := require.New(t)

	out, err := run("validate", writeDataSet(t, enhancedCT()))
	require.NoError(err)
	require.Contains(out, "OK")

	ds := enhancedCT()
	ds.Remove(dicom.NumberOfFramesTag)
	out, err = run("validate", writeDataSet(t, ds))
	require.ErrorIs(err, errInvalid)
	require.Contains(out, "critical: MultiFrameFunctionalGroups.NumberOfFrames: Type 1 attribute is absent")
}

func TestValidateWarnings(t *testing.T) {
	require := require.New(t)
	ds := enhancedCT()
	shared := ds.SequenceItems(dicom.SharedFunctionalGroupsSequenceTag)[0]
	require.NoError(shared.SetStrings(dicom.PatientNameTag, []string{"Doe^Jane"}))
	path := writeDataSet(t, ds)

	out, err := run("validate", path)
	require.NoError(err)
	require.Contains(out, "warning: PatientName: not a functional group")

	out, err = run("validate", "--quiet", path)
	require.NoError(err)
	require.NotContains(out, "warning")
}

func TestSchema(t *testing.T) {
	require := require.New(t)

	out, err := run("schema")
	require.NoError(err)
	require.Contains(out, "- Default\n")
	require.Contains(out, enhancedCTUID+" Enhanced CT Image Storage\n")

	out, err = run("schema", "PixelMeasures")
	require.NoError(err)
	require.Contains(out, "PixelMeasures (C.7.6.16-2)\n")
	require.Contains(out, "(0028,0030) PixelSpacing Type 1C\n")

	_, err = run("schema", "NoSuchGroup")
	require.Error(err)
}

func TestCustomSchema(t *testing.T) {
	require := require.New(t)
	schema := `
modules:
  - name: MultiFrameFunctionalGroups
    attributes:
      - {keyword: SharedFunctionalGroupsSequence, type: "2"}
      - {keyword: PerFrameFunctionalGroupsSequence, type: "1"}
      - {keyword: NumberOfFrames, type: "1"}
groups:
  - name: PixelMeasures
    sequence: PixelMeasuresSequence
    attributes:
      - {keyword: PixelSpacing, type: "1", vm: 2}
sopClasses:
  - uid: ""
    name: Default
    groups: [PixelMeasures]
`
	schemaPath := filepath.Join(t.TempDir(), "schema.yaml")
	require.NoError(os.WriteFile(schemaPath, []byte(schema), 0o600))

	out, err := run("--schema", schemaPath, "schema", "--groups")
	require.NoError(err)
	require.Equal("- Default\n  PixelMeasures\n", out)

	require.NoError(os.WriteFile(schemaPath, []byte("groups: [\n"), 0o600))
	_, err = run("--schema", schemaPath, "schema")
	require.Error(err)
}

func TestArgs(t *testing.T) {
	for _, cmd := range []string{"dump", "frame", "groups", "validate"} {
		t.Run(cmd, func(t *testing.T) {
			_, err := run(cmd)
			require.Error(t, err)
		})
	}
}
