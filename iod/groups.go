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

func defaultGroup(name string) *FunctionalGroup {
	g, ok := DefaultSchema().Group(name)
	if !ok {
		panic(fmt.Sprintf("functional group %v is not in the default schema", name))
	}
	return g
}

var (
	pixelMeasuresGroup            = defaultGroup("PixelMeasures")
	planePositionPatientGroup     = defaultGroup("PlanePositionPatient")
	planeOrientationPatientGroup  = defaultGroup("PlaneOrientationPatient")
	frameContentGroup             = defaultGroup("FrameContent")
	pixelValueTransformationGroup = defaultGroup("PixelValueTransformation")
	frameVOILUTGroup              = defaultGroup("FrameVOILUT")
	cardiacSynchronizationGroup   = defaultGroup("CardiacSynchronization")
	frameAnatomyGroup             = defaultGroup("FrameAnatomy")
	referencedImageGroup          = defaultGroup("ReferencedImage")
	derivationImageGroup          = defaultGroup("DerivationImage")
	mrEchoGroup                   = defaultGroup("MREcho")
	planePositionVolumeGroup      = defaultGroup("PlanePositionVolume")
	planeOrientationVolumeGroup   = defaultGroup("PlaneOrientationVolume")
	temporalPositionGroup         = defaultGroup("TemporalPosition")
)

// PixelMeasures is the Pixel Measures functional group
type PixelMeasures struct{ Macro }

// NewPixelMeasures returns the group in a functional groups sequence item
func NewPixelMeasures(parent *dicom.DataSet) PixelMeasures {
	return PixelMeasures{pixelMeasuresGroup.View(parent)}
}

// PixelSpacing returns the row and column spacing in mm
func (g PixelMeasures) PixelSpacing() ([]float64, bool) { return g.GetFloat64s("PixelSpacing") }

// SetPixelSpacing sets the row and column spacing in mm
func (g PixelMeasures) SetPixelSpacing(v []float64) error { return g.SetFloat64s("PixelSpacing", v) }

// SliceThickness returns the nominal slice thickness in mm
func (g PixelMeasures) SliceThickness() (float64, bool) { return g.GetFloat64("SliceThickness") }

// SetSliceThickness sets the nominal slice thickness in mm
func (g PixelMeasures) SetSliceThickness(v *float64) error {
	return g.SetFloat64("SliceThickness", v)
}

// SpacingBetweenSlices returns the Spacing Between Slices
func (g PixelMeasures) SpacingBetweenSlices() (float64, bool) {
	return g.GetFloat64("SpacingBetweenSlices")
}

// SetSpacingBetweenSlices sets the Spacing Between Slices
func (g PixelMeasures) SetSpacingBetweenSlices(v *float64) error {
	return g.SetFloat64("SpacingBetweenSlices", v)
}

// PlanePositionPatient is the Plane Position (Patient) functional group
type PlanePositionPatient struct{ Macro }

// NewPlanePositionPatient returns the group in a functional groups sequence item
func NewPlanePositionPatient(parent *dicom.DataSet) PlanePositionPatient {
	return PlanePositionPatient{planePositionPatientGroup.View(parent)}
}

// ImagePositionPatient returns the x, y and z coordinates of the upper left pixel in mm
func (g PlanePositionPatient) ImagePositionPatient() ([]float64, bool) {
	return g.GetFloat64s("ImagePositionPatient")
}

// SetImagePositionPatient sets the Image Position Patient
func (g PlanePositionPatient) SetImagePositionPatient(v []float64) error {
	return g.SetFloat64s("ImagePositionPatient", v)
}

// PlaneOrientationPatient is the Plane Orientation (Patient) functional group
type PlaneOrientationPatient struct{ Macro }

// NewPlaneOrientationPatient returns the group in a functional groups sequence item
func NewPlaneOrientationPatient(parent *dicom.DataSet) PlaneOrientationPatient {
	return PlaneOrientationPatient{planeOrientationPatientGroup.View(parent)}
}

// ImageOrientationPatient returns the direction cosines of the first row and the first column
func (g PlaneOrientationPatient) ImageOrientationPatient() ([]float64, bool) {
	return g.GetFloat64s("ImageOrientationPatient")
}

// SetImageOrientationPatient sets the Image Orientation Patient
func (g PlaneOrientationPatient) SetImageOrientationPatient(v []float64) error {
	return g.SetFloat64s("ImageOrientationPatient", v)
}

// FrameContent is the Frame Content functional group. It is always frame specific.
type FrameContent struct{ Macro }

// NewFrameContent returns the group in a functional groups sequence item
func NewFrameContent(parent *dicom.DataSet) FrameContent {
	return FrameContent{frameContentGroup.View(parent)}
}

// FrameAcquisitionNumber returns the acquisition number of the frame
func (g FrameContent) FrameAcquisitionNumber() (int32, bool) {
	return g.GetInt32("FrameAcquisitionNumber")
}

// SetFrameAcquisitionNumber sets the acquisition number of the frame
func (g FrameContent) SetFrameAcquisitionNumber(v *int32) error {
	return g.SetInt32("FrameAcquisitionNumber", v)
}

// FrameReferenceDateTime returns the date and time the frame refers to
func (g FrameContent) FrameReferenceDateTime() (string, bool) {
	return g.GetString("FrameReferenceDateTime")
}

// SetFrameReferenceDateTime sets the date and time the frame refers to
func (g FrameContent) SetFrameReferenceDateTime(v string) error {
	return g.SetString("FrameReferenceDateTime", v)
}

// FrameAcquisitionDateTime returns the date and time the acquisition of the frame started
func (g FrameContent) FrameAcquisitionDateTime() (string, bool) {
	return g.GetString("FrameAcquisitionDateTime")
}

// SetFrameAcquisitionDateTime sets the date and time the acquisition of the frame started
func (g FrameContent) SetFrameAcquisitionDateTime(v string) error {
	return g.SetString("FrameAcquisitionDateTime", v)
}

// FrameAcquisitionDuration returns the acquisition time of the frame in ms
func (g FrameContent) FrameAcquisitionDuration() (float64, bool) {
	return g.GetFloat64("FrameAcquisitionDuration")
}

// SetFrameAcquisitionDuration sets the Frame Acquisition Duration
func (g FrameContent) SetFrameAcquisitionDuration(v *float64) error {
	return g.SetFloat64("FrameAcquisitionDuration", v)
}

// DimensionIndexValues returns the index of the frame in each dimension of the Dimension Index
// Sequence
func (g FrameContent) DimensionIndexValues() ([]int64, bool) {
	return g.GetInt64s("DimensionIndexValues")
}

// SetDimensionIndexValues sets the Dimension Index Values
func (g FrameContent) SetDimensionIndexValues(v []int64) error {
	return g.SetInt64s("DimensionIndexValues", v)
}

// TemporalPositionIndex returns the position of the frame in time, starting at 1
func (g FrameContent) TemporalPositionIndex() (int32, bool) {
	return g.GetInt32("TemporalPositionIndex")
}

// SetTemporalPositionIndex sets the position of the frame in time, starting at 1
func (g FrameContent) SetTemporalPositionIndex(v *int32) error {
	return g.SetInt32("TemporalPositionIndex", v)
}

// StackID returns the identifier of the stack the frame belongs to
func (g FrameContent) StackID() (string, bool) { return g.GetString("StackID") }

// SetStackID sets the identifier of the stack the frame belongs to
func (g FrameContent) SetStackID(v string) error { return g.SetString("StackID", v) }

// InStackPositionNumber returns the position of the frame in its stack, starting at 1
func (g FrameContent) InStackPositionNumber() (int32, bool) {
	return g.GetInt32("InStackPositionNumber")
}

// SetInStackPositionNumber sets the position of the frame in its stack, starting at 1
func (g FrameContent) SetInStackPositionNumber(v *int32) error {
	return g.SetInt32("InStackPositionNumber", v)
}

// FrameComments returns the Frame Comments
func (g FrameContent) FrameComments() (string, bool) { return g.GetString("FrameComments") }

// SetFrameComments sets the Frame Comments
func (g FrameContent) SetFrameComments(v string) error { return g.SetString("FrameComments", v) }

// FrameLabel returns the Frame Label
func (g FrameContent) FrameLabel() (string, bool) { return g.GetString("FrameLabel") }

// SetFrameLabel sets the Frame Label
func (g FrameContent) SetFrameLabel(v string) error { return g.SetString("FrameLabel", v) }

// PixelValueTransformation is the Pixel Value Transformation functional group
type PixelValueTransformation struct{ Macro }

// NewPixelValueTransformation returns the group in a functional groups sequence item
func NewPixelValueTransformation(parent *dicom.DataSet) PixelValueTransformation {
	return PixelValueTransformation{pixelValueTransformationGroup.View(parent)}
}

// RescaleIntercept returns b in output = m*SV + b
func (g PixelValueTransformation) RescaleIntercept() (float64, bool) {
	return g.GetFloat64("RescaleIntercept")
}

// SetRescaleIntercept sets the Rescale Intercept
func (g PixelValueTransformation) SetRescaleIntercept(v *float64) error {
	return g.SetFloat64("RescaleIntercept", v)
}

// RescaleSlope returns m in output = m*SV + b
func (g PixelValueTransformation) RescaleSlope() (float64, bool) {
	return g.GetFloat64("RescaleSlope")
}

// SetRescaleSlope sets the Rescale Slope
func (g PixelValueTransformation) SetRescaleSlope(v *float64) error {
	return g.SetFloat64("RescaleSlope", v)
}

// RescaleType returns the units of the rescaled values
func (g PixelValueTransformation) RescaleType() (string, bool) {
	return g.GetString("RescaleType")
}

// SetRescaleType sets the units of the rescaled values
func (g PixelValueTransformation) SetRescaleType(v string) error {
	return g.SetString("RescaleType", v)
}

// Rescale maps a stored pixel value to its output value. It fails when the slope or the intercept
// is missing.
func (g PixelValueTransformation) Rescale(stored float64) (float64, bool) {
	slope, ok := g.RescaleSlope()
	if !ok {
		return 0, false
	}
	intercept, ok := g.RescaleIntercept()
	if !ok {
		return 0, false
	}
	return stored*slope + intercept, true
}

// FrameVOILUT is the Frame VOI LUT functional group
type FrameVOILUT struct{ Macro }

// NewFrameVOILUT returns the group in a functional groups sequence item
func NewFrameVOILUT(parent *dicom.DataSet) FrameVOILUT {
	return FrameVOILUT{frameVOILUTGroup.View(parent)}
}

// WindowCenter returns the window centers for display
func (g FrameVOILUT) WindowCenter() ([]float64, bool) { return g.GetFloat64s("WindowCenter") }

// SetWindowCenter sets the window centers for display
func (g FrameVOILUT) SetWindowCenter(v []float64) error { return g.SetFloat64s("WindowCenter", v) }

// WindowWidth returns the window widths for display
func (g FrameVOILUT) WindowWidth() ([]float64, bool) { return g.GetFloat64s("WindowWidth") }

// SetWindowWidth sets the window widths for display
func (g FrameVOILUT) SetWindowWidth(v []float64) error { return g.SetFloat64s("WindowWidth", v) }

// WindowCenterWidthExplanation returns the Window Center Width Explanation
func (g FrameVOILUT) WindowCenterWidthExplanation() ([]string, bool) {
	return g.GetStrings("WindowCenterWidthExplanation")
}

// SetWindowCenterWidthExplanation sets the Window Center Width Explanation
func (g FrameVOILUT) SetWindowCenterWidthExplanation(v []string) error {
	return g.SetStrings("WindowCenterWidthExplanation", v)
}

// VOILUTFunction returns LINEAR, LINEAR_EXACT or SIGMOID
func (g FrameVOILUT) VOILUTFunction() (string, bool) { return g.GetString("VOILUTFunction") }

// SetVOILUTFunction sets the VOI LUT Function
func (g FrameVOILUT) SetVOILUTFunction(v string) error { return g.SetString("VOILUTFunction", v) }

// CardiacSynchronization is the Cardiac Synchronization functional group
type CardiacSynchronization struct{ Macro }

// NewCardiacSynchronization returns the group in a functional groups sequence item
func NewCardiacSynchronization(parent *dicom.DataSet) CardiacSynchronization {
	return CardiacSynchronization{cardiacSynchronizationGroup.View(parent)}
}

// NominalPercentageOfCardiacPhase returns the position of the frame in the cardiac cycle in percent
func (g CardiacSynchronization) NominalPercentageOfCardiacPhase() (float64, bool) {
	return g.GetFloat64("NominalPercentageOfCardiacPhase")
}

// SetNominalPercentageOfCardiacPhase sets the position of the frame in the cardiac cycle in percent
func (g CardiacSynchronization) SetNominalPercentageOfCardiacPhase(v *float64) error {
	return g.SetFloat64("NominalPercentageOfCardiacPhase", v)
}

// NominalCardiacTriggerDelayTime returns the delay from the R-wave in ms
func (g CardiacSynchronization) NominalCardiacTriggerDelayTime() (float64, bool) {
	return g.GetFloat64("NominalCardiacTriggerDelayTime")
}

// SetNominalCardiacTriggerDelayTime sets the Nominal Cardiac Trigger Delay Time
func (g CardiacSynchronization) SetNominalCardiacTriggerDelayTime(v *float64) error {
	return g.SetFloat64("NominalCardiacTriggerDelayTime", v)
}

// ActualCardiacTriggerDelayTime returns the measured delay from the R-wave in ms
func (g CardiacSynchronization) ActualCardiacTriggerDelayTime() (float64, bool) {
	return g.GetFloat64("ActualCardiacTriggerDelayTime")
}

// SetActualCardiacTriggerDelayTime sets the measured delay from the R-wave in ms
func (g CardiacSynchronization) SetActualCardiacTriggerDelayTime(v *float64) error {
	return g.SetFloat64("ActualCardiacTriggerDelayTime", v)
}

// IntervalsAcquired returns the Intervals Acquired
func (g CardiacSynchronization) IntervalsAcquired() (int32, bool) {
	return g.GetInt32("IntervalsAcquired")
}

// SetIntervalsAcquired sets the Intervals Acquired
func (g CardiacSynchronization) SetIntervalsAcquired(v *int32) error {
	return g.SetInt32("IntervalsAcquired", v)
}

// IntervalsRejected returns the Intervals Rejected
func (g CardiacSynchronization) IntervalsRejected() (int32, bool) {
	return g.GetInt32("IntervalsRejected")
}

// SetIntervalsRejected sets the Intervals Rejected
func (g CardiacSynchronization) SetIntervalsRejected(v *int32) error {
	return g.SetInt32("IntervalsRejected", v)
}

// HeartRate returns the beats per minute
func (g CardiacSynchronization) HeartRate() (int32, bool) { return g.GetInt32("HeartRate") }

// SetHeartRate sets the Heart Rate
func (g CardiacSynchronization) SetHeartRate(v *int32) error { return g.SetInt32("HeartRate", v) }

// RRIntervalTimeNominal returns the nominal R-R interval in ms
func (g CardiacSynchronization) RRIntervalTimeNominal() (float64, bool) {
	return g.GetFloat64("RRIntervalTimeNominal")
}

// SetRRIntervalTimeNominal sets the nominal R-R interval in ms
func (g CardiacSynchronization) SetRRIntervalTimeNominal(v *float64) error {
	return g.SetFloat64("RRIntervalTimeNominal", v)
}

// LowRRValue returns the Low RR Value
func (g CardiacSynchronization) LowRRValue() (int32, bool) { return g.GetInt32("LowRRValue") }

// SetLowRRValue sets the Low RR Value
func (g CardiacSynchronization) SetLowRRValue(v *int32) error { return g.SetInt32("LowRRValue", v) }

// HighRRValue returns the High RR Value
func (g CardiacSynchronization) HighRRValue() (int32, bool) { return g.GetInt32("HighRRValue") }

// SetHighRRValue sets the High RR Value
func (g CardiacSynchronization) SetHighRRValue(v *int32) error {
	return g.SetInt32("HighRRValue", v)
}

// FrameAnatomy is the Frame Anatomy functional group
type FrameAnatomy struct{ Macro }

// NewFrameAnatomy returns the group in a functional groups sequence item
func NewFrameAnatomy(parent *dicom.DataSet) FrameAnatomy {
	return FrameAnatomy{frameAnatomyGroup.View(parent)}
}

// FrameLaterality returns R, L, U (unpaired) or B (both)
func (g FrameAnatomy) FrameLaterality() (string, bool) { return g.GetString("FrameLaterality") }

// SetFrameLaterality sets the Frame Laterality
func (g FrameAnatomy) SetFrameLaterality(v string) error {
	return g.SetString("FrameLaterality", v)
}

// AnatomicRegion returns the coded anatomic region of the frame
func (g FrameAnatomy) AnatomicRegion() (Code, bool) {
	items := g.GetItems("AnatomicRegionSequence")
	if len(items) == 0 {
		return Code{}, false
	}
	return CodeFromItem(items[0])
}

// SetAnatomicRegion replaces the coded anatomic region
func (g FrameAnatomy) SetAnatomicRegion(c Code) error {
	item, err := NewCodeItem(c)
	if err != nil {
		return err
	}
	return g.SetAttributeItems("AnatomicRegionSequence", []*dicom.DataSet{item})
}

// ReferencedImage is the Referenced Image functional group. It may hold several references.
type ReferencedImage struct{ Macro }

// NewReferencedImage returns the group in a functional groups sequence item
func NewReferencedImage(parent *dicom.DataSet) ReferencedImage {
	return ReferencedImage{referencedImageGroup.View(parent)}
}

// ImageReference is one item of the Referenced Image Sequence
type ImageReference struct{ GroupItem }

// ReferencedSOPClassUID returns the Referenced SOP Class UID
func (r ImageReference) ReferencedSOPClassUID() (string, bool) {
	return r.GetString("ReferencedSOPClassUID")
}

// ReferencedSOPInstanceUID returns the Referenced SOP Instance UID
func (r ImageReference) ReferencedSOPInstanceUID() (string, bool) {
	return r.GetString("ReferencedSOPInstanceUID")
}

// ReferencedFrameNumbers returns the referenced frames, all frames when absent
func (r ImageReference) ReferencedFrameNumbers() ([]int64, bool) {
	return r.GetInt64s("ReferencedFrameNumber")
}

// PurposeOfReference returns the coded purpose of the reference
func (r ImageReference) PurposeOfReference() (Code, bool) {
	items := r.GetItems("PurposeOfReferenceCodeSequence")
	if len(items) == 0 {
		return Code{}, false
	}
	return CodeFromItem(items[0])
}

// References returns the image references in order
func (g ReferencedImage) References() []ImageReference {
	items := g.GroupItems()
	refs := make([]ImageReference, len(items))
	for i, item := range items {
		refs[i] = ImageReference{item}
	}
	return refs
}

// AddReference appends a reference to an image. Without frames the reference is to all frames.
func (g ReferencedImage) AddReference(classUID, instanceUID string, purpose Code, frames ...int64) error {
	item := &dicom.DataSet{}
	ref := GroupItem{Group: g.Group, DataSet: item}
	if err := ref.SetString("ReferencedSOPClassUID", classUID); err != nil {
		return err
	}
	if err := ref.SetString("ReferencedSOPInstanceUID", instanceUID); err != nil {
		return err
	}
	if err := ref.SetInt64s("ReferencedFrameNumber", frames); err != nil {
		return err
	}
	var purposeItems []*dicom.DataSet
	if purpose != (Code{}) {
		codeItem, err := NewCodeItem(purpose)
		if err != nil {
			return err
		}
		purposeItems = append(purposeItems, codeItem)
	}
	if err := ref.SetItems("PurposeOfReferenceCodeSequence", purposeItems); err != nil {
		return err
	}
	if g.Parent == nil {
		return fmt.Errorf("%v: no functional groups item", g.Group.Name)
	}
	return g.Parent.AddSequenceItem(g.Group.SequenceTag, item)
}

// DerivationImage is the Derivation Image functional group. It may hold several derivations.
type DerivationImage struct{ Macro }

// NewDerivationImage returns the group in a functional groups sequence item
func NewDerivationImage(parent *dicom.DataSet) DerivationImage {
	return DerivationImage{derivationImageGroup.View(parent)}
}

// Derivation is one item of the Derivation Image Sequence
type Derivation struct{ GroupItem }

// DerivationDescription returns the Derivation Description
func (d Derivation) DerivationDescription() (string, bool) {
	return d.GetString("DerivationDescription")
}

// DerivationCodes returns the coded methods used to derive the frame
func (d Derivation) DerivationCodes() []Code {
	return codesFromItems(d.GetItems("DerivationCodeSequence"))
}

// SourceImages returns the items of the Source Image Sequence
func (d Derivation) SourceImages() []*dicom.DataSet {
	return d.GetItems("SourceImageSequence")
}

// Derivations returns the derivations in order
func (g DerivationImage) Derivations() []Derivation {
	items := g.GroupItems()
	derivations := make([]Derivation, len(items))
	for i, item := range items {
		derivations[i] = Derivation{item}
	}
	return derivations
}

// AddDerivation appends a derivation. Without sources the Source Image Sequence is empty.
func (g DerivationImage) AddDerivation(description string, codes []Code, sources ...*dicom.DataSet) error {
	item := &dicom.DataSet{}
	d := GroupItem{Group: g.Group, DataSet: item}
	if err := d.SetString("DerivationDescription", description); err != nil {
		return err
	}
	items, err := codeItems(codes)
	if err != nil {
		return err
	}
	if err := d.SetItems("DerivationCodeSequence", items); err != nil {
		return err
	}
	if err := d.SetItems("SourceImageSequence", sources); err != nil {
		return err
	}
	if g.Parent == nil {
		return fmt.Errorf("%v: no functional groups item", g.Group.Name)
	}
	return g.Parent.AddSequenceItem(g.Group.SequenceTag, item)
}

// MREcho is the MR Echo functional group
type MREcho struct{ Macro }

// NewMREcho returns the group in a functional groups sequence item
func NewMREcho(parent *dicom.DataSet) MREcho {
	return MREcho{mrEchoGroup.View(parent)}
}

// EffectiveEchoTime returns the echo time in ms
func (g MREcho) EffectiveEchoTime() (float64, bool) { return g.GetFloat64("EffectiveEchoTime") }

// SetEffectiveEchoTime sets the Effective Echo Time
func (g MREcho) SetEffectiveEchoTime(v *float64) error {
	return g.SetFloat64("EffectiveEchoTime", v)
}

// PlanePositionVolume is the Plane Position (Volume) functional group
type PlanePositionVolume struct{ Macro }

// NewPlanePositionVolume returns the group in a functional groups sequence item
func NewPlanePositionVolume(parent *dicom.DataSet) PlanePositionVolume {
	return PlanePositionVolume{planePositionVolumeGroup.View(parent)}
}

// ImagePositionVolume returns the position of the upper left pixel in the volume in mm
func (g PlanePositionVolume) ImagePositionVolume() ([]float64, bool) {
	return g.GetFloat64s("ImagePositionVolume")
}

// SetImagePositionVolume sets the position of the upper left pixel in the volume in mm
func (g PlanePositionVolume) SetImagePositionVolume(v []float64) error {
	return g.SetFloat64s("ImagePositionVolume", v)
}

// PlaneOrientationVolume is the Plane Orientation (Volume) functional group
type PlaneOrientationVolume struct{ Macro }

// NewPlaneOrientationVolume returns the group in a functional groups sequence item
func NewPlaneOrientationVolume(parent *dicom.DataSet) PlaneOrientationVolume {
	return PlaneOrientationVolume{planeOrientationVolumeGroup.View(parent)}
}

// ImageOrientationVolume returns the direction cosines of the first row and column in the volume
func (g PlaneOrientationVolume) ImageOrientationVolume() ([]float64, bool) {
	return g.GetFloat64s("ImageOrientationVolume")
}

// SetImageOrientationVolume sets the direction cosines of the first row and column in the volume
func (g PlaneOrientationVolume) SetImageOrientationVolume(v []float64) error {
	return g.SetFloat64s("ImageOrientationVolume", v)
}

// TemporalPosition is the Temporal Position functional group
type TemporalPosition struct{ Macro }

// NewTemporalPosition returns the group in a functional groups sequence item
func NewTemporalPosition(parent *dicom.DataSet) TemporalPosition {
	return TemporalPosition{temporalPositionGroup.View(parent)}
}

// TemporalPositionTimeOffset returns the time offset of the frame in s
func (g TemporalPosition) TemporalPositionTimeOffset() (float64, bool) {
	return g.GetFloat64("TemporalPositionTimeOffset")
}

// SetTemporalPositionTimeOffset sets the Temporal Position Time Offset
func (g TemporalPosition) SetTemporalPositionTimeOffset(v *float64) error {
	return g.SetFloat64("TemporalPositionTimeOffset", v)
}
