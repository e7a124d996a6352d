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

import "strings"

// Tags of the data dictionary
// http://dicom.nema.org/medical/dicom/current/output/html/part06.html#chapter_6
//
// Repeating group tags (50xx,eeee) and (60xx,eeee) are defined with xx set to 00.
const (
	FileMetaInformationGroupLengthTag DataElementTag = 0x00020000
	FileMetaInformationVersionTag     DataElementTag = 0x00020001
	MediaStorageSOPClassUIDTag        DataElementTag = 0x00020002
	MediaStorageSOPInstanceUIDTag     DataElementTag = 0x00020003
	TransferSyntaxUIDTag              DataElementTag = 0x00020010
	ImplementationClassUIDTag         DataElementTag = 0x00020012
	ImplementationVersionNameTag      DataElementTag = 0x00020013
	SourceApplicationEntityTitleTag   DataElementTag = 0x00020016

	SpecificCharacterSetTag            DataElementTag = 0x00080005
	ImageTypeTag                       DataElementTag = 0x00080008
	InstanceCreationDateTag            DataElementTag = 0x00080012
	InstanceCreationTimeTag            DataElementTag = 0x00080013
	SOPClassUIDTag                     DataElementTag = 0x00080016
	SOPInstanceUIDTag                  DataElementTag = 0x00080018
	StudyDateTag                       DataElementTag = 0x00080020
	SeriesDateTag                      DataElementTag = 0x00080021
	ContentDateTag                     DataElementTag = 0x00080023
	AcquisitionDateTimeTag             DataElementTag = 0x0008002A
	StudyTimeTag                       DataElementTag = 0x00080030
	SeriesTimeTag                      DataElementTag = 0x00080031
	ContentTimeTag                     DataElementTag = 0x00080033
	AccessionNumberTag                 DataElementTag = 0x00080050
	ModalityTag                        DataElementTag = 0x00080060
	ManufacturerTag                    DataElementTag = 0x00080070
	ReferringPhysicianNameTag          DataElementTag = 0x00080090
	CodeValueTag                       DataElementTag = 0x00080100
	CodingSchemeDesignatorTag          DataElementTag = 0x00080102
	CodingSchemeVersionTag             DataElementTag = 0x00080103
	CodeMeaningTag                     DataElementTag = 0x00080104
	StudyDescriptionTag                DataElementTag = 0x00081030
	SeriesDescriptionTag               DataElementTag = 0x0008103E
	ReferencedStudySequenceTag         DataElementTag = 0x00081110
	ReferencedImageSequenceTag         DataElementTag = 0x00081140
	ReferencedSOPClassUIDTag           DataElementTag = 0x00081150
	ReferencedSOPInstanceUIDTag        DataElementTag = 0x00081155
	ReferencedFrameNumberTag           DataElementTag = 0x00081160
	DerivationDescriptionTag           DataElementTag = 0x00082111
	SourceImageSequenceTag             DataElementTag = 0x00082112
	AnatomicRegionSequenceTag          DataElementTag = 0x00082218
	IrradiationEventUIDTag             DataElementTag = 0x00083010
	FrameTypeTag                       DataElementTag = 0x00089007
	DerivationImageSequenceTag         DataElementTag = 0x00089124
	PixelPresentationTag               DataElementTag = 0x00089205
	VolumetricPropertiesTag            DataElementTag = 0x00089206
	VolumeBasedCalculationTechniqueTag DataElementTag = 0x00089207
	ComplexImageComponentTag           DataElementTag = 0x00089208
	AcquisitionContrastTag             DataElementTag = 0x00089209
	DerivationCodeSequenceTag          DataElementTag = 0x00089215

	PatientNameTag      DataElementTag = 0x00100010
	PatientIDTag        DataElementTag = 0x00100020
	PatientBirthDateTag DataElementTag = 0x00100030
	PatientSexTag       DataElementTag = 0x00100040

	SliceThicknessTag                                  DataElementTag = 0x00180050
	KVPTag                                             DataElementTag = 0x00180060
	RepetitionTimeTag                                  DataElementTag = 0x00180080
	NumberOfAveragesTag                                DataElementTag = 0x00180083
	SpacingBetweenSlicesTag                            DataElementTag = 0x00180088
	DataCollectionDiameterTag                          DataElementTag = 0x00180090
	EchoTrainLengthTag                                 DataElementTag = 0x00180091
	PercentSamplingTag                                 DataElementTag = 0x00180093
	PercentPhaseFieldOfViewTag                         DataElementTag = 0x00180094
	PixelBandwidthTag                                  DataElementTag = 0x00180095
	LowRRValueTag                                      DataElementTag = 0x00181081
	HighRRValueTag                                     DataElementTag = 0x00181082
	IntervalsAcquiredTag                               DataElementTag = 0x00181083
	IntervalsRejectedTag                               DataElementTag = 0x00181084
	HeartRateTag                                       DataElementTag = 0x00181088
	ReconstructionDiameterTag                          DataElementTag = 0x00181100
	DistanceSourceToDetectorTag                        DataElementTag = 0x00181110
	GantryDetectorTiltTag                              DataElementTag = 0x00181120
	TableHeightTag                                     DataElementTag = 0x00181130
	RotationDirectionTag                               DataElementTag = 0x00181140
	FieldOfViewShapeTag                                DataElementTag = 0x00181147
	FieldOfViewDimensionsTag                           DataElementTag = 0x00181149
	FilterTypeTag                                      DataElementTag = 0x00181160
	ImagerPixelSpacingTag                              DataElementTag = 0x00181164
	FocalSpotsTag                                      DataElementTag = 0x00181190
	ConvolutionKernelTag                               DataElementTag = 0x00181210
	ActualFrameDurationTag                             DataElementTag = 0x00181242
	ReceiveCoilNameTag                                 DataElementTag = 0x00181250
	TransmitCoilNameTag                                DataElementTag = 0x00181251
	InPlanePhaseEncodingDirectionTag                   DataElementTag = 0x00181312
	FlipAngleTag                                       DataElementTag = 0x00181314
	AcquisitionDeviceProcessingDescriptionTag          DataElementTag = 0x00181400
	AcquisitionDeviceProcessingCodeTag                 DataElementTag = 0x00181401
	RelativeXRayExposureTag                            DataElementTag = 0x00181405
	PositionerPrimaryAngleTag                          DataElementTag = 0x00181510
	PositionerSecondaryAngleTag                        DataElementTag = 0x00181511
	ShutterShapeTag                                    DataElementTag = 0x00181600
	ShutterLeftVerticalEdgeTag                         DataElementTag = 0x00181602
	ShutterRightVerticalEdgeTag                        DataElementTag = 0x00181604
	ShutterUpperHorizontalEdgeTag                      DataElementTag = 0x00181606
	ShutterLowerHorizontalEdgeTag                      DataElementTag = 0x00181608
	CenterOfCircularShutterTag                         DataElementTag = 0x00181610
	RadiusOfCircularShutterTag                         DataElementTag = 0x00181612
	VerticesOfThePolygonalShutterTag                   DataElementTag = 0x00181620
	ShutterPresentationValueTag                        DataElementTag = 0x00181622
	CollimatorShapeTag                                 DataElementTag = 0x00181700
	CollimatorLeftVerticalEdgeTag                      DataElementTag = 0x00181702
	CollimatorRightVerticalEdgeTag                     DataElementTag = 0x00181704
	CollimatorUpperHorizontalEdgeTag                   DataElementTag = 0x00181706
	CollimatorLowerHorizontalEdgeTag                   DataElementTag = 0x00181708
	DetectorActiveTimeTag                              DataElementTag = 0x00187014
	DetectorActivationOffsetFromExposureTag            DataElementTag = 0x00187016
	FieldOfViewOriginTag                               DataElementTag = 0x00187030
	FieldOfViewRotationTag                             DataElementTag = 0x00187032
	FieldOfViewHorizontalFlipTag                       DataElementTag = 0x00187034
	FilterMaterialTag                                  DataElementTag = 0x00187050
	MRImagingModifierSequenceTag                       DataElementTag = 0x00189006
	InversionRecoveryTag                               DataElementTag = 0x00189009
	FlowCompensationTag                                DataElementTag = 0x00189010
	MagnetizationTransferTag                           DataElementTag = 0x00189020
	T2PreparationTag                                   DataElementTag = 0x00189021
	BloodSignalNullingTag                              DataElementTag = 0x00189022
	SpectrallySelectedExcitationTag                    DataElementTag = 0x00189026
	SpatialPresaturationTag                            DataElementTag = 0x00189027
	TaggingTag                                         DataElementTag = 0x00189028
	ReceiveCoilManufacturerNameTag                     DataElementTag = 0x00189041
	MRReceiveCoilSequenceTag                           DataElementTag = 0x00189042
	ReceiveCoilTypeTag                                 DataElementTag = 0x00189043
	QuadratureReceiveCoilTag                           DataElementTag = 0x00189044
	MRTransmitCoilSequenceTag                          DataElementTag = 0x00189049
	TransmitCoilManufacturerNameTag                    DataElementTag = 0x00189050
	TransmitCoilTypeTag                                DataElementTag = 0x00189051
	MRAcquisitionFrequencyEncodingStepsTag             DataElementTag = 0x00189058
	FrameAcquisitionDateTimeTag                        DataElementTag = 0x00189074
	DiffusionDirectionalityTag                         DataElementTag = 0x00189075
	DiffusionGradientDirectionSequenceTag              DataElementTag = 0x00189076
	ParallelAcquisitionTag                             DataElementTag = 0x00189077
	InversionTimesTag                                  DataElementTag = 0x00189079
	MetaboliteMapDescriptionTag                        DataElementTag = 0x00189080
	PartialFourierTag                                  DataElementTag = 0x00189081
	EffectiveEchoTimeTag                               DataElementTag = 0x00189082
	MetaboliteMapCodeSequenceTag                       DataElementTag = 0x00189083
	ChemicalShiftSequenceTag                           DataElementTag = 0x00189084
	DiffusionBValueTag                                 DataElementTag = 0x00189087
	VelocityEncodingDirectionTag                       DataElementTag = 0x00189090
	VelocityEncodingMinimumValueTag                    DataElementTag = 0x00189091
	SpectroscopyAcquisitionPhaseRowsTag                DataElementTag = 0x00189095
	TransmitterFrequencyTag                            DataElementTag = 0x00189098
	MRSpectroscopyFOVGeometrySequenceTag               DataElementTag = 0x00189103
	SlabThicknessTag                                   DataElementTag = 0x00189104
	SlabOrientationTag                                 DataElementTag = 0x00189105
	MidSlabPositionTag                                 DataElementTag = 0x00189106
	MRSpatialSaturationSequenceTag                     DataElementTag = 0x00189107
	MRTimingAndRelatedParametersSequenceTag            DataElementTag = 0x00189112
	MREchoSequenceTag                                  DataElementTag = 0x00189114
	MRModifierSequenceTag                              DataElementTag = 0x00189115
	MRDiffusionSequenceTag                             DataElementTag = 0x00189117
	CardiacSynchronizationSequenceTag                  DataElementTag = 0x00189118
	MRAveragesSequenceTag                              DataElementTag = 0x00189119
	MRFOVGeometrySequenceTag                           DataElementTag = 0x00189125
	SpectroscopyAcquisitionDataColumnsTag              DataElementTag = 0x00189127
	FrameReferenceDateTimeTag                          DataElementTag = 0x00189151
	MRMetaboliteMapSequenceTag                         DataElementTag = 0x00189152
	SpectroscopyAcquisitionOutOfPlanePhaseStepsTag     DataElementTag = 0x00189159
	MRVelocityEncodingSequenceTag                      DataElementTag = 0x00189197
	RespiratoryCyclePositionTag                        DataElementTag = 0x00189214
	VelocityEncodingMaximumValueTag                    DataElementTag = 0x00189217
	FrameAcquisitionDurationTag                        DataElementTag = 0x00189220
	MRImageFrameTypeSequenceTag                        DataElementTag = 0x00189226
	MRSpectroscopyFrameTypeSequenceTag                 DataElementTag = 0x00189227
	MRAcquisitionPhaseEncodingStepsInPlaneTag          DataElementTag = 0x00189231
	MRAcquisitionPhaseEncodingStepsOutOfPlaneTag       DataElementTag = 0x00189232
	SpectroscopyAcquisitionPhaseColumnsTag             DataElementTag = 0x00189234
	CardiacCyclePositionTag                            DataElementTag = 0x00189236
	MRArterialSpinLabelingSequenceTag                  DataElementTag = 0x00189251
	ASLTechniqueDescriptionTag                         DataElementTag = 0x00189252
	ASLContextTag                                      DataElementTag = 0x00189257
	ASLSlabSequenceTag                                 DataElementTag = 0x00189260
	CTAcquisitionTypeSequenceTag                       DataElementTag = 0x00189301
	AcquisitionTypeTag                                 DataElementTag = 0x00189302
	TubeAngleTag                                       DataElementTag = 0x00189303
	CTAcquisitionDetailsSequenceTag                    DataElementTag = 0x00189304
	RevolutionTimeTag                                  DataElementTag = 0x00189305
	SingleCollimationWidthTag                          DataElementTag = 0x00189306
	TotalCollimationWidthTag                           DataElementTag = 0x00189307
	CTTableDynamicsSequenceTag                         DataElementTag = 0x00189308
	TableSpeedTag                                      DataElementTag = 0x00189309
	TableFeedPerRotationTag                            DataElementTag = 0x00189310
	SpiralPitchFactorTag                               DataElementTag = 0x00189311
	CTGeometrySequenceTag                              DataElementTag = 0x00189312
	DataCollectionCenterPatientTag                     DataElementTag = 0x00189313
	CTReconstructionSequenceTag                        DataElementTag = 0x00189314
	ReconstructionAlgorithmTag                         DataElementTag = 0x00189315
	ReconstructionFieldOfViewTag                       DataElementTag = 0x00189317
	ReconstructionTargetCenterPatientTag               DataElementTag = 0x00189318
	CTExposureSequenceTag                              DataElementTag = 0x00189321
	ReconstructionPixelSpacingTag                      DataElementTag = 0x00189322
	CTXRayDetailsSequenceTag                           DataElementTag = 0x00189325
	CTPositionSequenceTag                              DataElementTag = 0x00189326
	TablePositionTag                                   DataElementTag = 0x00189327
	ExposureTimeInmsTag                                DataElementTag = 0x00189328
	CTImageFrameTypeSequenceTag                        DataElementTag = 0x00189329
	XRayTubeCurrentInmATag                             DataElementTag = 0x00189330
	ExposureInmAsTag                                   DataElementTag = 0x00189332
	DistanceSourceToDataCollectionCenterTag            DataElementTag = 0x00189335
	ContrastBolusAgentNumberTag                        DataElementTag = 0x00189337
	ContrastBolusUsageSequenceTag                      DataElementTag = 0x00189341
	ContrastBolusAgentAdministeredTag                  DataElementTag = 0x00189342
	ContrastBolusAgentDetectedTag                      DataElementTag = 0x00189343
	ContrastBolusAgentPhaseTag                         DataElementTag = 0x00189344
	CalciumScoringMassFactorPatientTag                 DataElementTag = 0x00189351
	CTAdditionalXRaySourceSequenceTag                  DataElementTag = 0x00189360
	ProjectionPixelCalibrationSequenceTag              DataElementTag = 0x00189401
	DistanceSourceToIsocenterTag                       DataElementTag = 0x00189402
	DistanceObjectToTableTopTag                        DataElementTag = 0x00189403
	ObjectPixelSpacingInCenterOfBeamTag                DataElementTag = 0x00189404
	PositionerPositionSequenceTag                      DataElementTag = 0x00189405
	TablePositionSequenceTag                           DataElementTag = 0x00189406
	CollimatorShapeSequenceTag                         DataElementTag = 0x00189407
	XAXRFFrameCharacteristicsSequenceTag               DataElementTag = 0x00189412
	FrameAcquisitionSequenceTag                        DataElementTag = 0x00189417
	FieldOfViewSequenceTag                             DataElementTag = 0x00189432
	ExposureControlSensingRegionsSequenceTag           DataElementTag = 0x00189434
	ExposureControlSensingRegionShapeTag               DataElementTag = 0x00189435
	ExposureControlSensingRegionLeftVerticalEdgeTag    DataElementTag = 0x00189436
	ExposureControlSensingRegionRightVerticalEdgeTag   DataElementTag = 0x00189437
	ExposureControlSensingRegionUpperHorizontalEdgeTag DataElementTag = 0x00189438
	ExposureControlSensingRegionLowerHorizontalEdgeTag DataElementTag = 0x00189439
	BeamAngleTag                                       DataElementTag = 0x00189449
	FrameDetectorParametersSequenceTag                 DataElementTag = 0x00189451
	CalculatedAnatomyThicknessTag                      DataElementTag = 0x00189452
	CalibrationSequenceTag                             DataElementTag = 0x00189455
	ObjectThicknessSequenceTag                         DataElementTag = 0x00189456
	IsocenterReferenceSystemSequenceTag                DataElementTag = 0x00189462
	PositionerIsocenterPrimaryAngleTag                 DataElementTag = 0x00189463
	PositionerIsocenterSecondaryAngleTag               DataElementTag = 0x00189464
	PositionerIsocenterDetectorRotationAngleTag        DataElementTag = 0x00189465
	TableXPositionToIsocenterTag                       DataElementTag = 0x00189466
	TableYPositionToIsocenterTag                       DataElementTag = 0x00189467
	TableZPositionToIsocenterTag                       DataElementTag = 0x00189468
	TableHorizontalRotationAngleTag                    DataElementTag = 0x00189469
	TableHeadTiltAngleTag                              DataElementTag = 0x00189470
	TableCradleTiltAngleTag                            DataElementTag = 0x00189471
	FrameDisplayShutterSequenceTag                     DataElementTag = 0x00189472
	XRayGeometrySequenceTag                            DataElementTag = 0x00189476
	IrradiationEventIdentificationSequenceTag          DataElementTag = 0x00189477
	XRay3DFrameTypeSequenceTag                         DataElementTag = 0x00189504
	RadiopharmaceuticalAgentNumberTag                  DataElementTag = 0x00189729
	PETFrameAcquisitionSequenceTag                     DataElementTag = 0x00189732
	PETDetectorMotionDetailsSequenceTag                DataElementTag = 0x00189733
	PETTableDynamicsSequenceTag                        DataElementTag = 0x00189734
	PETPositionSequenceTag                             DataElementTag = 0x00189735
	PETFrameCorrectionFactorsSequenceTag               DataElementTag = 0x00189736
	RadiopharmaceuticalUsageSequenceTag                DataElementTag = 0x00189737
	NumberOfIterationsTag                              DataElementTag = 0x00189739
	NumberOfSubsetsTag                                 DataElementTag = 0x00189740
	PETReconstructionSequenceTag                       DataElementTag = 0x00189749
	PETFrameTypeSequenceTag                            DataElementTag = 0x00189751
	ReconstructionTypeTag                              DataElementTag = 0x00189756
	IterativeReconstructionMethodTag                   DataElementTag = 0x00189769
	PatientPhysiologicalStateSequenceTag               DataElementTag = 0x00189771
	PatientPhysiologicalStateCodeSequenceTag           DataElementTag = 0x00189772
	USImageDescriptionSequenceTag                      DataElementTag = 0x00189806
	ImageDataTypeSequenceTag                           DataElementTag = 0x00189807
	DataTypeTag                                        DataElementTag = 0x00189808
	AliasedDataTypeTag                                 DataElementTag = 0x0018980B

	StudyInstanceUIDTag                    DataElementTag = 0x0020000D
	SeriesInstanceUIDTag                   DataElementTag = 0x0020000E
	StudyIDTag                             DataElementTag = 0x00200010
	SeriesNumberTag                        DataElementTag = 0x00200011
	InstanceNumberTag                      DataElementTag = 0x00200013
	PatientOrientationTag                  DataElementTag = 0x00200020
	ImagePositionPatientTag                DataElementTag = 0x00200032
	ImageOrientationPatientTag             DataElementTag = 0x00200037
	FrameOfReferenceUIDTag                 DataElementTag = 0x00200052
	SOPInstanceUIDOfConcatenationSourceTag DataElementTag = 0x00200242
	SliceLocationTag                       DataElementTag = 0x00201041
	StackIDTag                             DataElementTag = 0x00209056
	InStackPositionNumberTag               DataElementTag = 0x00209057
	FrameAnatomySequenceTag                DataElementTag = 0x00209071
	FrameLateralityTag                     DataElementTag = 0x00209072
	FrameContentSequenceTag                DataElementTag = 0x00209111
	PlanePositionSequenceTag               DataElementTag = 0x00209113
	PlaneOrientationSequenceTag            DataElementTag = 0x00209116
	TemporalPositionIndexTag               DataElementTag = 0x00209128
	NominalCardiacTriggerDelayTimeTag      DataElementTag = 0x00209153
	FrameAcquisitionNumberTag              DataElementTag = 0x00209156
	DimensionIndexValuesTag                DataElementTag = 0x00209157
	FrameCommentsTag                       DataElementTag = 0x00209158
	ConcatenationUIDTag                    DataElementTag = 0x00209161
	InConcatenationNumberTag               DataElementTag = 0x00209162
	InConcatenationTotalNumberTag          DataElementTag = 0x00209163
	DimensionOrganizationUIDTag            DataElementTag = 0x00209164
	ConcatenationFrameOffsetNumberTag      DataElementTag = 0x00209228
	NominalPercentageOfCardiacPhaseTag     DataElementTag = 0x00209241
	NominalPercentageOfRespiratoryPhaseTag DataElementTag = 0x00209245
	StartingRespiratoryAmplitudeTag        DataElementTag = 0x00209246
	RRIntervalTimeNominalTag               DataElementTag = 0x00209251
	ActualCardiacTriggerDelayTimeTag       DataElementTag = 0x00209252
	RespiratorySynchronizationSequenceTag  DataElementTag = 0x00209253
	RespiratoryIntervalTimeTag             DataElementTag = 0x00209254
	NominalRespiratoryTriggerDelayTimeTag  DataElementTag = 0x00209255
	ActualRespiratoryTriggerDelayTimeTag   DataElementTag = 0x00209257
	ImagePositionVolumeTag                 DataElementTag = 0x00209301
	ImageOrientationVolumeTag              DataElementTag = 0x00209302
	TemporalPositionTimeOffsetTag          DataElementTag = 0x0020930D
	PlanePositionVolumeSequenceTag         DataElementTag = 0x0020930E
	PlaneOrientationVolumeSequenceTag      DataElementTag = 0x0020930F
	TemporalPositionSequenceTag            DataElementTag = 0x00209310
	PatientOrientationInFrameSequenceTag   DataElementTag = 0x00209450
	FrameLabelTag                          DataElementTag = 0x00209453

	OphthalmicFrameLocationSequenceTag DataElementTag = 0x00220031
	ReferencedCoordinatesTag           DataElementTag = 0x00220032
	DepthOfTransverseImageTag          DataElementTag = 0x00220035
	OphthalmicImageOrientationTag      DataElementTag = 0x00220039

	SamplesPerPixelTag                       DataElementTag = 0x00280002
	PhotometricInterpretationTag             DataElementTag = 0x00280004
	NumberOfFramesTag                        DataElementTag = 0x00280008
	RowsTag                                  DataElementTag = 0x00280010
	ColumnsTag                               DataElementTag = 0x00280011
	PixelSpacingTag                          DataElementTag = 0x00280030
	BitsAllocatedTag                         DataElementTag = 0x00280100
	BitsStoredTag                            DataElementTag = 0x00280101
	HighBitTag                               DataElementTag = 0x00280102
	PixelRepresentationTag                   DataElementTag = 0x00280103
	WindowCenterTag                          DataElementTag = 0x00281050
	WindowWidthTag                           DataElementTag = 0x00281051
	RescaleInterceptTag                      DataElementTag = 0x00281052
	RescaleSlopeTag                          DataElementTag = 0x00281053
	RescaleTypeTag                           DataElementTag = 0x00281054
	WindowCenterWidthExplanationTag          DataElementTag = 0x00281055
	VOILUTFunctionTag                        DataElementTag = 0x00281056
	LUTDescriptorTag                         DataElementTag = 0x00283002
	LUTExplanationTag                        DataElementTag = 0x00283003
	LUTDataTag                               DataElementTag = 0x00283006
	VOILUTSequenceTag                        DataElementTag = 0x00283010
	RepresentativeFrameNumberTag             DataElementTag = 0x00286010
	MaskSubPixelShiftTag                     DataElementTag = 0x00286114
	PixelMeasuresSequenceTag                 DataElementTag = 0x00289110
	FrameVOILUTSequenceTag                   DataElementTag = 0x00289132
	PixelValueTransformationSequenceTag      DataElementTag = 0x00289145
	FramePixelShiftSequenceTag               DataElementTag = 0x00289415
	SubtractionItemIDTag                     DataElementTag = 0x00289416
	PixelIntensityRelationshipLUTSequenceTag DataElementTag = 0x00289422
	FramePixelDataPropertiesSequenceTag      DataElementTag = 0x00289443
	GeometricalPropertiesTag                 DataElementTag = 0x00289444
	GeometricMaximumDistortionTag            DataElementTag = 0x00289445
	ImageProcessingAppliedTag                DataElementTag = 0x00289446
	LUTFunctionTag                           DataElementTag = 0x00289474

	SpecimenUIDTag                    DataElementTag = 0x00400554
	XOffsetInSlideCoordinateSystemTag DataElementTag = 0x0040072A
	YOffsetInSlideCoordinateSystemTag DataElementTag = 0x0040073A
	ZOffsetInSlideCoordinateSystemTag DataElementTag = 0x0040074A
	MeasurementUnitsCodeSequenceTag   DataElementTag = 0x004008EA
	RealWorldValueMappingSequenceTag  DataElementTag = 0x00409096
	LUTLabelTag                       DataElementTag = 0x00409210
	RealWorldValueLastValueMappedTag  DataElementTag = 0x00409211
	RealWorldValueFirstValueMappedTag DataElementTag = 0x00409216
	RealWorldValueInterceptTag        DataElementTag = 0x00409224
	RealWorldValueSlopeTag            DataElementTag = 0x00409225
	PurposeOfReferenceCodeSequenceTag DataElementTag = 0x0040A170

	OpticalPathIdentifierTag                 DataElementTag = 0x00480106
	SpecimenReferenceSequenceTag             DataElementTag = 0x00480110
	OpticalPathIdentificationSequenceTag     DataElementTag = 0x00480207
	PlanePositionSlideSequenceTag            DataElementTag = 0x0048021A
	ColumnPositionInTotalImagePixelMatrixTag DataElementTag = 0x0048021E
	RowPositionInTotalImagePixelMatrixTag    DataElementTag = 0x0048021F

	CalibrationImageTag DataElementTag = 0x00500004

	IntravascularOCTFrameTypeSequenceTag    DataElementTag = 0x00520025
	IntravascularFrameContentSequenceTag    DataElementTag = 0x00520027
	IntravascularLongitudinalDistanceTag    DataElementTag = 0x00520028
	IntravascularOCTFrameContentSequenceTag DataElementTag = 0x00520029
	OCTZOffsetCorrectionTag                 DataElementTag = 0x00520030
	SeamLineLocationTag                     DataElementTag = 0x00520033
	SeamLineIndexTag                        DataElementTag = 0x00520036

	PrimaryPromptsCountsAccumulatedTag DataElementTag = 0x00541310
	SliceSensitivityFactorTag          DataElementTag = 0x00541320
	DecayFactorTag                     DataElementTag = 0x00541321
	DoseCalibrationFactorTag           DataElementTag = 0x00541322
	ScatterFractionFactorTag           DataElementTag = 0x00541323
	DeadTimeFactorTag                  DataElementTag = 0x00541324

	SegmentIdentificationSequenceTag DataElementTag = 0x0062000A
	ReferencedSegmentNumberTag       DataElementTag = 0x0062000B

	TableTopVerticalPositionTag     DataElementTag = 0x300A0128
	TableTopLongitudinalPositionTag DataElementTag = 0x300A0129
	TableTopLateralPositionTag      DataElementTag = 0x300A012A

	CurveDataTag DataElementTag = 0x50003000

	SharedFunctionalGroupsSequenceTag   DataElementTag = 0x52009229
	PerFrameFunctionalGroupsSequenceTag DataElementTag = 0x52009230

	OverlayRowsTag    DataElementTag = 0x60000010
	OverlayColumnsTag DataElementTag = 0x60000011
	OverlayTypeTag    DataElementTag = 0x60000040
	OverlayOriginTag  DataElementTag = 0x60000050
	OverlayDataTag    DataElementTag = 0x60003000

	FloatPixelDataTag       DataElementTag = 0x7FE00008
	DoubleFloatPixelDataTag DataElementTag = 0x7FE00009
	PixelDataTag            DataElementTag = 0x7FE00010

	ItemTag                     DataElementTag = 0xFFFEE000
	ItemDelimitationItemTag     DataElementTag = 0xFFFEE00D
	SequenceDelimitationItemTag DataElementTag = 0xFFFEE0DD
)

// TagInfo is an entry of the data dictionary
type TagInfo struct {
	Tag     DataElementTag
	Keyword string
	VR      *VR

	// VM is the value multiplicity as written in the standard, e.g. "1", "3", "1-n", "2-2n"
	VM string
}

var dictionaryEntries = []TagInfo{
	{FileMetaInformationGroupLengthTag, "FileMetaInformationGroupLength", ULVR, "1"},
	{FileMetaInformationVersionTag, "FileMetaInformationVersion", OBVR, "1"},
	{MediaStorageSOPClassUIDTag, "MediaStorageSOPClassUID", UIVR, "1"},
	{MediaStorageSOPInstanceUIDTag, "MediaStorageSOPInstanceUID", UIVR, "1"},
	{TransferSyntaxUIDTag, "TransferSyntaxUID", UIVR, "1"},
	{ImplementationClassUIDTag, "ImplementationClassUID", UIVR, "1"},
	{ImplementationVersionNameTag, "ImplementationVersionName", SHVR, "1"},
	{SourceApplicationEntityTitleTag, "SourceApplicationEntityTitle", AEVR, "1"},

	{SpecificCharacterSetTag, "SpecificCharacterSet", CSVR, "1-n"},
	{ImageTypeTag, "ImageType", CSVR, "2-n"},
	{InstanceCreationDateTag, "InstanceCreationDate", DAVR, "1"},
	{InstanceCreationTimeTag, "InstanceCreationTime", TMVR, "1"},
	{SOPClassUIDTag, "SOPClassUID", UIVR, "1"},
	{SOPInstanceUIDTag, "SOPInstanceUID", UIVR, "1"},
	{StudyDateTag, "StudyDate", DAVR, "1"},
	{SeriesDateTag, "SeriesDate", DAVR, "1"},
	{ContentDateTag, "ContentDate", DAVR, "1"},
	{AcquisitionDateTimeTag, "AcquisitionDateTime", DTVR, "1"},
	{StudyTimeTag, "StudyTime", TMVR, "1"},
	{SeriesTimeTag, "SeriesTime", TMVR, "1"},
	{ContentTimeTag, "ContentTime", TMVR, "1"},
	{AccessionNumberTag, "AccessionNumber", SHVR, "1"},
	{ModalityTag, "Modality", CSVR, "1"},
	{ManufacturerTag, "Manufacturer", LOVR, "1"},
	{ReferringPhysicianNameTag, "ReferringPhysicianName", PNVR, "1"},
	{CodeValueTag, "CodeValue", SHVR, "1"},
	{CodingSchemeDesignatorTag, "CodingSchemeDesignator", SHVR, "1"},
	{CodingSchemeVersionTag, "CodingSchemeVersion", SHVR, "1"},
	{CodeMeaningTag, "CodeMeaning", LOVR, "1"},
	{StudyDescriptionTag, "StudyDescription", LOVR, "1"},
	{SeriesDescriptionTag, "SeriesDescription", LOVR, "1"},
	{ReferencedStudySequenceTag, "ReferencedStudySequence", SQVR, "1"},
	{ReferencedImageSequenceTag, "ReferencedImageSequence", SQVR, "1"},
	{ReferencedSOPClassUIDTag, "ReferencedSOPClassUID", UIVR, "1"},
	{ReferencedSOPInstanceUIDTag, "ReferencedSOPInstanceUID", UIVR, "1"},
	{ReferencedFrameNumberTag, "ReferencedFrameNumber", ISVR, "1-n"},
	{DerivationDescriptionTag, "DerivationDescription", STVR, "1"},
	{SourceImageSequenceTag, "SourceImageSequence", SQVR, "1"},
	{AnatomicRegionSequenceTag, "AnatomicRegionSequence", SQVR, "1"},
	{IrradiationEventUIDTag, "IrradiationEventUID", UIVR, "1-n"},
	{FrameTypeTag, "FrameType", CSVR, "4"},
	{DerivationImageSequenceTag, "DerivationImageSequence", SQVR, "1"},
	{PixelPresentationTag, "PixelPresentation", CSVR, "1"},
	{VolumetricPropertiesTag, "VolumetricProperties", CSVR, "1"},
	{VolumeBasedCalculationTechniqueTag, "VolumeBasedCalculationTechnique", CSVR, "1"},
	{ComplexImageComponentTag, "ComplexImageComponent", CSVR, "1"},
	{AcquisitionContrastTag, "AcquisitionContrast", CSVR, "1"},
	{DerivationCodeSequenceTag, "DerivationCodeSequence", SQVR, "1"},

	{PatientNameTag, "PatientName", PNVR, "1"},
	{PatientIDTag, "PatientID", LOVR, "1"},
	{PatientBirthDateTag, "PatientBirthDate", DAVR, "1"},
	{PatientSexTag, "PatientSex", CSVR, "1"},

	{SliceThicknessTag, "SliceThickness", DSVR, "1"},
	{KVPTag, "KVP", DSVR, "1"},
	{RepetitionTimeTag, "RepetitionTime", DSVR, "1"},
	{NumberOfAveragesTag, "NumberOfAverages", DSVR, "1"},
	{SpacingBetweenSlicesTag, "SpacingBetweenSlices", DSVR, "1"},
	{DataCollectionDiameterTag, "DataCollectionDiameter", DSVR, "1"},
	{EchoTrainLengthTag, "EchoTrainLength", ISVR, "1"},
	{PercentSamplingTag, "PercentSampling", DSVR, "1"},
	{PercentPhaseFieldOfViewTag, "PercentPhaseFieldOfView", DSVR, "1"},
	{PixelBandwidthTag, "PixelBandwidth", DSVR, "1"},
	{LowRRValueTag, "LowRRValue", ISVR, "1"},
	{HighRRValueTag, "HighRRValue", ISVR, "1"},
	{IntervalsAcquiredTag, "IntervalsAcquired", ISVR, "1"},
	{IntervalsRejectedTag, "IntervalsRejected", ISVR, "1"},
	{HeartRateTag, "HeartRate", ISVR, "1"},
	{ReconstructionDiameterTag, "ReconstructionDiameter", DSVR, "1"},
	{DistanceSourceToDetectorTag, "DistanceSourceToDetector", DSVR, "1"},
	{GantryDetectorTiltTag, "GantryDetectorTilt", DSVR, "1"},
	{TableHeightTag, "TableHeight", DSVR, "1"},
	{RotationDirectionTag, "RotationDirection", CSVR, "1"},
	{FieldOfViewShapeTag, "FieldOfViewShape", CSVR, "1"},
	{FieldOfViewDimensionsTag, "FieldOfViewDimensions", ISVR, "1-2"},
	{FilterTypeTag, "FilterType", SHVR, "1"},
	{ImagerPixelSpacingTag, "ImagerPixelSpacing", DSVR, "2"},
	{FocalSpotsTag, "FocalSpots", DSVR, "1-n"},
	{ConvolutionKernelTag, "ConvolutionKernel", SHVR, "1-n"},
	{ActualFrameDurationTag, "ActualFrameDuration", ISVR, "1"},
	{ReceiveCoilNameTag, "ReceiveCoilName", SHVR, "1"},
	{TransmitCoilNameTag, "TransmitCoilName", SHVR, "1"},
	{InPlanePhaseEncodingDirectionTag, "InPlanePhaseEncodingDirection", CSVR, "1"},
	{FlipAngleTag, "FlipAngle", DSVR, "1"},
	{AcquisitionDeviceProcessingDescriptionTag, "AcquisitionDeviceProcessingDescription", LOVR, "1"},
	{AcquisitionDeviceProcessingCodeTag, "AcquisitionDeviceProcessingCode", LOVR, "1"},
	{RelativeXRayExposureTag, "RelativeXRayExposure", ISVR, "1"},
	{PositionerPrimaryAngleTag, "PositionerPrimaryAngle", DSVR, "1"},
	{PositionerSecondaryAngleTag, "PositionerSecondaryAngle", DSVR, "1"},
	{ShutterShapeTag, "ShutterShape", CSVR, "1-3"},
	{ShutterLeftVerticalEdgeTag, "ShutterLeftVerticalEdge", ISVR, "1"},
	{ShutterRightVerticalEdgeTag, "ShutterRightVerticalEdge", ISVR, "1"},
	{ShutterUpperHorizontalEdgeTag, "ShutterUpperHorizontalEdge", ISVR, "1"},
	{ShutterLowerHorizontalEdgeTag, "ShutterLowerHorizontalEdge", ISVR, "1"},
	{CenterOfCircularShutterTag, "CenterOfCircularShutter", ISVR, "2"},
	{RadiusOfCircularShutterTag, "RadiusOfCircularShutter", ISVR, "1"},
	{VerticesOfThePolygonalShutterTag, "VerticesOfThePolygonalShutter", ISVR, "2-2n"},
	{ShutterPresentationValueTag, "ShutterPresentationValue", USVR, "1"},
	{CollimatorShapeTag, "CollimatorShape", CSVR, "1-3"},
	{CollimatorLeftVerticalEdgeTag, "CollimatorLeftVerticalEdge", ISVR, "1"},
	{CollimatorRightVerticalEdgeTag, "CollimatorRightVerticalEdge", ISVR, "1"},
	{CollimatorUpperHorizontalEdgeTag, "CollimatorUpperHorizontalEdge", ISVR, "1"},
	{CollimatorLowerHorizontalEdgeTag, "CollimatorLowerHorizontalEdge", ISVR, "1"},
	{DetectorActiveTimeTag, "DetectorActiveTime", DSVR, "1"},
	{DetectorActivationOffsetFromExposureTag, "DetectorActivationOffsetFromExposure", DSVR, "1"},
	{FieldOfViewOriginTag, "FieldOfViewOrigin", DSVR, "2"},
	{FieldOfViewRotationTag, "FieldOfViewRotation", DSVR, "1"},
	{FieldOfViewHorizontalFlipTag, "FieldOfViewHorizontalFlip", CSVR, "1"},
	{FilterMaterialTag, "FilterMaterial", CSVR, "1-n"},
	{MRImagingModifierSequenceTag, "MRImagingModifierSequence", SQVR, "1"},
	{InversionRecoveryTag, "InversionRecovery", CSVR, "1"},
	{FlowCompensationTag, "FlowCompensation", CSVR, "1"},
	{MagnetizationTransferTag, "MagnetizationTransfer", CSVR, "1"},
	{T2PreparationTag, "T2Preparation", CSVR, "1"},
	{BloodSignalNullingTag, "BloodSignalNulling", CSVR, "1"},
	{SpectrallySelectedExcitationTag, "SpectrallySelectedExcitation", CSVR, "1"},
	{SpatialPresaturationTag, "SpatialPresaturation", CSVR, "1"},
	{TaggingTag, "Tagging", CSVR, "1"},
	{ReceiveCoilManufacturerNameTag, "ReceiveCoilManufacturerName", LOVR, "1"},
	{MRReceiveCoilSequenceTag, "MRReceiveCoilSequence", SQVR, "1"},
	{ReceiveCoilTypeTag, "ReceiveCoilType", CSVR, "1"},
	{QuadratureReceiveCoilTag, "QuadratureReceiveCoil", CSVR, "1"},
	{MRTransmitCoilSequenceTag, "MRTransmitCoilSequence", SQVR, "1"},
	{TransmitCoilManufacturerNameTag, "TransmitCoilManufacturerName", LOVR, "1"},
	{TransmitCoilTypeTag, "TransmitCoilType", CSVR, "1"},
	{MRAcquisitionFrequencyEncodingStepsTag, "MRAcquisitionFrequencyEncodingSteps", USVR, "1"},
	{FrameAcquisitionDateTimeTag, "FrameAcquisitionDateTime", DTVR, "1"},
	{DiffusionDirectionalityTag, "DiffusionDirectionality", CSVR, "1"},
	{DiffusionGradientDirectionSequenceTag, "DiffusionGradientDirectionSequence", SQVR, "1"},
	{ParallelAcquisitionTag, "ParallelAcquisition", CSVR, "1"},
	{InversionTimesTag, "InversionTimes", FDVR, "1-n"},
	{MetaboliteMapDescriptionTag, "MetaboliteMapDescription", STVR, "1"},
	{PartialFourierTag, "PartialFourier", CSVR, "1"},
	{EffectiveEchoTimeTag, "EffectiveEchoTime", FDVR, "1"},
	{MetaboliteMapCodeSequenceTag, "MetaboliteMapCodeSequence", SQVR, "1"},
	{ChemicalShiftSequenceTag, "ChemicalShiftSequence", SQVR, "1"},
	{DiffusionBValueTag, "DiffusionBValue", FDVR, "1"},
	{VelocityEncodingDirectionTag, "VelocityEncodingDirection", FDVR, "3"},
	{VelocityEncodingMinimumValueTag, "VelocityEncodingMinimumValue", FDVR, "1"},
	{SpectroscopyAcquisitionPhaseRowsTag, "SpectroscopyAcquisitionPhaseRows", ULVR, "1"},
	{TransmitterFrequencyTag, "TransmitterFrequency", FDVR, "1-2"},
	{MRSpectroscopyFOVGeometrySequenceTag, "MRSpectroscopyFOVGeometrySequence", SQVR, "1"},
	{SlabThicknessTag, "SlabThickness", FDVR, "1"},
	{SlabOrientationTag, "SlabOrientation", FDVR, "3"},
	{MidSlabPositionTag, "MidSlabPosition", FDVR, "3"},
	{MRSpatialSaturationSequenceTag, "MRSpatialSaturationSequence", SQVR, "1"},
	{MRTimingAndRelatedParametersSequenceTag, "MRTimingAndRelatedParametersSequence", SQVR, "1"},
	{MREchoSequenceTag, "MREchoSequence", SQVR, "1"},
	{MRModifierSequenceTag, "MRModifierSequence", SQVR, "1"},
	{MRDiffusionSequenceTag, "MRDiffusionSequence", SQVR, "1"},
	{CardiacSynchronizationSequenceTag, "CardiacSynchronizationSequence", SQVR, "1"},
	{MRAveragesSequenceTag, "MRAveragesSequence", SQVR, "1"},
	{MRFOVGeometrySequenceTag, "MRFOVGeometrySequence", SQVR, "1"},
	{SpectroscopyAcquisitionDataColumnsTag, "SpectroscopyAcquisitionDataColumns", ULVR, "1"},
	{FrameReferenceDateTimeTag, "FrameReferenceDateTime", DTVR, "1"},
	{MRMetaboliteMapSequenceTag, "MRMetaboliteMapSequence", SQVR, "1"},
	{SpectroscopyAcquisitionOutOfPlanePhaseStepsTag, "SpectroscopyAcquisitionOutOfPlanePhaseSteps", ULVR, "1"},
	{MRVelocityEncodingSequenceTag, "MRVelocityEncodingSequence", SQVR, "1"},
	{RespiratoryCyclePositionTag, "RespiratoryCyclePosition", CSVR, "1"},
	{VelocityEncodingMaximumValueTag, "VelocityEncodingMaximumValue", FDVR, "1"},
	{FrameAcquisitionDurationTag, "FrameAcquisitionDuration", FDVR, "1"},
	{MRImageFrameTypeSequenceTag, "MRImageFrameTypeSequence", SQVR, "1"},
	{MRSpectroscopyFrameTypeSequenceTag, "MRSpectroscopyFrameTypeSequence", SQVR, "1"},
	{MRAcquisitionPhaseEncodingStepsInPlaneTag, "MRAcquisitionPhaseEncodingStepsInPlane", USVR, "1"},
	{MRAcquisitionPhaseEncodingStepsOutOfPlaneTag, "MRAcquisitionPhaseEncodingStepsOutOfPlane", USVR, "1"},
	{SpectroscopyAcquisitionPhaseColumnsTag, "SpectroscopyAcquisitionPhaseColumns", ULVR, "1"},
	{CardiacCyclePositionTag, "CardiacCyclePosition", CSVR, "1"},
	{MRArterialSpinLabelingSequenceTag, "MRArterialSpinLabelingSequence", SQVR, "1"},
	{ASLTechniqueDescriptionTag, "ASLTechniqueDescription", LOVR, "1"},
	{ASLContextTag, "ASLContext", CSVR, "1"},
	{ASLSlabSequenceTag, "ASLSlabSequence", SQVR, "1"},
	{CTAcquisitionTypeSequenceTag, "CTAcquisitionTypeSequence", SQVR, "1"},
	{AcquisitionTypeTag, "AcquisitionType", CSVR, "1"},
	{TubeAngleTag, "TubeAngle", FDVR, "1"},
	{CTAcquisitionDetailsSequenceTag, "CTAcquisitionDetailsSequence", SQVR, "1"},
	{RevolutionTimeTag, "RevolutionTime", FDVR, "1"},
	{SingleCollimationWidthTag, "SingleCollimationWidth", FDVR, "1"},
	{TotalCollimationWidthTag, "TotalCollimationWidth", FDVR, "1"},
	{CTTableDynamicsSequenceTag, "CTTableDynamicsSequence", SQVR, "1"},
	{TableSpeedTag, "TableSpeed", FDVR, "1"},
	{TableFeedPerRotationTag, "TableFeedPerRotation", FDVR, "1"},
	{SpiralPitchFactorTag, "SpiralPitchFactor", FDVR, "1"},
	{CTGeometrySequenceTag, "CTGeometrySequence", SQVR, "1"},
	{DataCollectionCenterPatientTag, "DataCollectionCenterPatient", FDVR, "3"},
	{CTReconstructionSequenceTag, "CTReconstructionSequence", SQVR, "1"},
	{ReconstructionAlgorithmTag, "ReconstructionAlgorithm", CSVR, "1"},
	{ReconstructionFieldOfViewTag, "ReconstructionFieldOfView", FDVR, "2"},
	{ReconstructionTargetCenterPatientTag, "ReconstructionTargetCenterPatient", FDVR, "3"},
	{CTExposureSequenceTag, "CTExposureSequence", SQVR, "1"},
	{ReconstructionPixelSpacingTag, "ReconstructionPixelSpacing", FDVR, "2"},
	{CTXRayDetailsSequenceTag, "CTXRayDetailsSequence", SQVR, "1"},
	{CTPositionSequenceTag, "CTPositionSequence", SQVR, "1"},
	{TablePositionTag, "TablePosition", FDVR, "1"},
	{ExposureTimeInmsTag, "ExposureTimeInms", FDVR, "1"},
	{CTImageFrameTypeSequenceTag, "CTImageFrameTypeSequence", SQVR, "1"},
	{XRayTubeCurrentInmATag, "XRayTubeCurrentInmA", FDVR, "1"},
	{ExposureInmAsTag, "ExposureInmAs", FDVR, "1"},
	{DistanceSourceToDataCollectionCenterTag, "DistanceSourceToDataCollectionCenter", FDVR, "1"},
	{ContrastBolusAgentNumberTag, "ContrastBolusAgentNumber", USVR, "1"},
	{ContrastBolusUsageSequenceTag, "ContrastBolusUsageSequence", SQVR, "1"},
	{ContrastBolusAgentAdministeredTag, "ContrastBolusAgentAdministered", CSVR, "1"},
	{ContrastBolusAgentDetectedTag, "ContrastBolusAgentDetected", CSVR, "1"},
	{ContrastBolusAgentPhaseTag, "ContrastBolusAgentPhase", CSVR, "1"},
	{CalciumScoringMassFactorPatientTag, "CalciumScoringMassFactorPatient", FLVR, "1"},
	{CTAdditionalXRaySourceSequenceTag, "CTAdditionalXRaySourceSequence", SQVR, "1"},
	{ProjectionPixelCalibrationSequenceTag, "ProjectionPixelCalibrationSequence", SQVR, "1"},
	{DistanceSourceToIsocenterTag, "DistanceSourceToIsocenter", FLVR, "1"},
	{DistanceObjectToTableTopTag, "DistanceObjectToTableTop", FLVR, "1"},
	{ObjectPixelSpacingInCenterOfBeamTag, "ObjectPixelSpacingInCenterOfBeam", FLVR, "2"},
	{PositionerPositionSequenceTag, "PositionerPositionSequence", SQVR, "1"},
	{TablePositionSequenceTag, "TablePositionSequence", SQVR, "1"},
	{CollimatorShapeSequenceTag, "CollimatorShapeSequence", SQVR, "1"},
	{XAXRFFrameCharacteristicsSequenceTag, "XAXRFFrameCharacteristicsSequence", SQVR, "1"},
	{FrameAcquisitionSequenceTag, "FrameAcquisitionSequence", SQVR, "1"},
	{FieldOfViewSequenceTag, "FieldOfViewSequence", SQVR, "1"},
	{ExposureControlSensingRegionsSequenceTag, "ExposureControlSensingRegionsSequence", SQVR, "1"},
	{ExposureControlSensingRegionShapeTag, "ExposureControlSensingRegionShape", CSVR, "1"},
	{ExposureControlSensingRegionLeftVerticalEdgeTag, "ExposureControlSensingRegionLeftVerticalEdge", SSVR, "1"},
	{ExposureControlSensingRegionRightVerticalEdgeTag, "ExposureControlSensingRegionRightVerticalEdge", SSVR, "1"},
	{ExposureControlSensingRegionUpperHorizontalEdgeTag, "ExposureControlSensingRegionUpperHorizontalEdge", SSVR, "1"},
	{ExposureControlSensingRegionLowerHorizontalEdgeTag, "ExposureControlSensingRegionLowerHorizontalEdge", SSVR, "1"},
	{BeamAngleTag, "BeamAngle", FLVR, "1"},
	{FrameDetectorParametersSequenceTag, "FrameDetectorParametersSequence", SQVR, "1"},
	{CalculatedAnatomyThicknessTag, "CalculatedAnatomyThickness", FLVR, "1"},
	{CalibrationSequenceTag, "CalibrationSequence", SQVR, "1"},
	{ObjectThicknessSequenceTag, "ObjectThicknessSequence", SQVR, "1"},
	{IsocenterReferenceSystemSequenceTag, "IsocenterReferenceSystemSequence", SQVR, "1"},
	{PositionerIsocenterPrimaryAngleTag, "PositionerIsocenterPrimaryAngle", FLVR, "1"},
	{PositionerIsocenterSecondaryAngleTag, "PositionerIsocenterSecondaryAngle", FLVR, "1"},
	{PositionerIsocenterDetectorRotationAngleTag, "PositionerIsocenterDetectorRotationAngle", FLVR, "1"},
	{TableXPositionToIsocenterTag, "TableXPositionToIsocenter", FLVR, "1"},
	{TableYPositionToIsocenterTag, "TableYPositionToIsocenter", FLVR, "1"},
	{TableZPositionToIsocenterTag, "TableZPositionToIsocenter", FLVR, "1"},
	{TableHorizontalRotationAngleTag, "TableHorizontalRotationAngle", FLVR, "1"},
	{TableHeadTiltAngleTag, "TableHeadTiltAngle", FLVR, "1"},
	{TableCradleTiltAngleTag, "TableCradleTiltAngle", FLVR, "1"},
	{FrameDisplayShutterSequenceTag, "FrameDisplayShutterSequence", SQVR, "1"},
	{XRayGeometrySequenceTag, "XRayGeometrySequence", SQVR, "1"},
	{IrradiationEventIdentificationSequenceTag, "IrradiationEventIdentificationSequence", SQVR, "1"},
	{XRay3DFrameTypeSequenceTag, "XRay3DFrameTypeSequence", SQVR, "1"},
	{RadiopharmaceuticalAgentNumberTag, "RadiopharmaceuticalAgentNumber", USVR, "1"},
	{PETFrameAcquisitionSequenceTag, "PETFrameAcquisitionSequence", SQVR, "1"},
	{PETDetectorMotionDetailsSequenceTag, "PETDetectorMotionDetailsSequence", SQVR, "1"},
	{PETTableDynamicsSequenceTag, "PETTableDynamicsSequence", SQVR, "1"},
	{PETPositionSequenceTag, "PETPositionSequence", SQVR, "1"},
	{PETFrameCorrectionFactorsSequenceTag, "PETFrameCorrectionFactorsSequence", SQVR, "1"},
	{RadiopharmaceuticalUsageSequenceTag, "RadiopharmaceuticalUsageSequence", SQVR, "1"},
	{NumberOfIterationsTag, "NumberOfIterations", USVR, "1"},
	{NumberOfSubsetsTag, "NumberOfSubsets", USVR, "1"},
	{PETReconstructionSequenceTag, "PETReconstructionSequence", SQVR, "1"},
	{PETFrameTypeSequenceTag, "PETFrameTypeSequence", SQVR, "1"},
	{ReconstructionTypeTag, "ReconstructionType", CSVR, "1"},
	{IterativeReconstructionMethodTag, "IterativeReconstructionMethod", CSVR, "1"},
	{PatientPhysiologicalStateSequenceTag, "PatientPhysiologicalStateSequence", SQVR, "1"},
	{PatientPhysiologicalStateCodeSequenceTag, "PatientPhysiologicalStateCodeSequence", SQVR, "1"},
	{USImageDescriptionSequenceTag, "USImageDescriptionSequence", SQVR, "1"},
	{ImageDataTypeSequenceTag, "ImageDataTypeSequence", SQVR, "1"},
	{DataTypeTag, "DataType", CSVR, "1"},
	{AliasedDataTypeTag, "AliasedDataType", CSVR, "1"},

	{StudyInstanceUIDTag, "StudyInstanceUID", UIVR, "1"},
	{SeriesInstanceUIDTag, "SeriesInstanceUID", UIVR, "1"},
	{StudyIDTag, "StudyID", SHVR, "1"},
	{SeriesNumberTag, "SeriesNumber", ISVR, "1"},
	{InstanceNumberTag, "InstanceNumber", ISVR, "1"},
	{PatientOrientationTag, "PatientOrientation", CSVR, "2"},
	{ImagePositionPatientTag, "ImagePositionPatient", DSVR, "3"},
	{ImageOrientationPatientTag, "ImageOrientationPatient", DSVR, "6"},
	{FrameOfReferenceUIDTag, "FrameOfReferenceUID", UIVR, "1"},
	{SOPInstanceUIDOfConcatenationSourceTag, "SOPInstanceUIDOfConcatenationSource", UIVR, "1"},
	{SliceLocationTag, "SliceLocation", DSVR, "1"},
	{StackIDTag, "StackID", SHVR, "1"},
	{InStackPositionNumberTag, "InStackPositionNumber", ULVR, "1"},
	{FrameAnatomySequenceTag, "FrameAnatomySequence", SQVR, "1"},
	{FrameLateralityTag, "FrameLaterality", CSVR, "1"},
	{FrameContentSequenceTag, "FrameContentSequence", SQVR, "1"},
	{PlanePositionSequenceTag, "PlanePositionSequence", SQVR, "1"},
	{PlaneOrientationSequenceTag, "PlaneOrientationSequence", SQVR, "1"},
	{TemporalPositionIndexTag, "TemporalPositionIndex", ULVR, "1"},
	{NominalCardiacTriggerDelayTimeTag, "NominalCardiacTriggerDelayTime", FDVR, "1"},
	{FrameAcquisitionNumberTag, "FrameAcquisitionNumber", USVR, "1"},
	{DimensionIndexValuesTag, "DimensionIndexValues", ULVR, "1-n"},
	{FrameCommentsTag, "FrameComments", LTVR, "1"},
	{ConcatenationUIDTag, "ConcatenationUID", UIVR, "1"},
	{InConcatenationNumberTag, "InConcatenationNumber", USVR, "1"},
	{InConcatenationTotalNumberTag, "InConcatenationTotalNumber", USVR, "1"},
	{DimensionOrganizationUIDTag, "DimensionOrganizationUID", UIVR, "1"},
	{ConcatenationFrameOffsetNumberTag, "ConcatenationFrameOffsetNumber", ULVR, "1"},
	{NominalPercentageOfCardiacPhaseTag, "NominalPercentageOfCardiacPhase", FLVR, "1"},
	{NominalPercentageOfRespiratoryPhaseTag, "NominalPercentageOfRespiratoryPhase", FLVR, "1"},
	{StartingRespiratoryAmplitudeTag, "StartingRespiratoryAmplitude", FLVR, "1"},
	{RRIntervalTimeNominalTag, "RRIntervalTimeNominal", FDVR, "1"},
	{ActualCardiacTriggerDelayTimeTag, "ActualCardiacTriggerDelayTime", FDVR, "1"},
	{RespiratorySynchronizationSequenceTag, "RespiratorySynchronizationSequence", SQVR, "1"},
	{RespiratoryIntervalTimeTag, "RespiratoryIntervalTime", FDVR, "1"},
	{NominalRespiratoryTriggerDelayTimeTag, "NominalRespiratoryTriggerDelayTime", FDVR, "1"},
	{ActualRespiratoryTriggerDelayTimeTag, "ActualRespiratoryTriggerDelayTime", FDVR, "1"},
	{ImagePositionVolumeTag, "ImagePositionVolume", FDVR, "3"},
	{ImageOrientationVolumeTag, "ImageOrientationVolume", FDVR, "6"},
	{TemporalPositionTimeOffsetTag, "TemporalPositionTimeOffset", FDVR, "1"},
	{PlanePositionVolumeSequenceTag, "PlanePositionVolumeSequence", SQVR, "1"},
	{PlaneOrientationVolumeSequenceTag, "PlaneOrientationVolumeSequence", SQVR, "1"},
	{TemporalPositionSequenceTag, "TemporalPositionSequence", SQVR, "1"},
	{PatientOrientationInFrameSequenceTag, "PatientOrientationInFrameSequence", SQVR, "1"},
	{FrameLabelTag, "FrameLabel", LOVR, "1"},

	{OphthalmicFrameLocationSequenceTag, "OphthalmicFrameLocationSequence", SQVR, "1"},
	{ReferencedCoordinatesTag, "ReferencedCoordinates", FLVR, "2-2n"},
	{DepthOfTransverseImageTag, "DepthOfTransverseImage", FLVR, "1"},
	{OphthalmicImageOrientationTag, "OphthalmicImageOrientation", CSVR, "1"},

	{SamplesPerPixelTag, "SamplesPerPixel", USVR, "1"},
	{PhotometricInterpretationTag, "PhotometricInterpretation", CSVR, "1"},
	{NumberOfFramesTag, "NumberOfFrames", ISVR, "1"},
	{RowsTag, "Rows", USVR, "1"},
	{ColumnsTag, "Columns", USVR, "1"},
	{PixelSpacingTag, "PixelSpacing", DSVR, "2"},
	{BitsAllocatedTag, "BitsAllocated", USVR, "1"},
	{BitsStoredTag, "BitsStored", USVR, "1"},
	{HighBitTag, "HighBit", USVR, "1"},
	{PixelRepresentationTag, "PixelRepresentation", USVR, "1"},
	{WindowCenterTag, "WindowCenter", DSVR, "1-n"},
	{WindowWidthTag, "WindowWidth", DSVR, "1-n"},
	{RescaleInterceptTag, "RescaleIntercept", DSVR, "1"},
	{RescaleSlopeTag, "RescaleSlope", DSVR, "1"},
	{RescaleTypeTag, "RescaleType", LOVR, "1"},
	{WindowCenterWidthExplanationTag, "WindowCenterWidthExplanation", LOVR, "1-n"},
	{VOILUTFunctionTag, "VOILUTFunction", CSVR, "1"},
	// (0028,3002) is US or SS and (0028,3006) is US or OW, US is used for both
	{LUTDescriptorTag, "LUTDescriptor", USVR, "3"},
	{LUTExplanationTag, "LUTExplanation", LOVR, "1"},
	{LUTDataTag, "LUTData", USVR, "1-n"},
	{VOILUTSequenceTag, "VOILUTSequence", SQVR, "1"},
	{RepresentativeFrameNumberTag, "RepresentativeFrameNumber", USVR, "1"},
	{MaskSubPixelShiftTag, "MaskSubPixelShift", FLVR, "2"},
	{PixelMeasuresSequenceTag, "PixelMeasuresSequence", SQVR, "1"},
	{FrameVOILUTSequenceTag, "FrameVOILUTSequence", SQVR, "1"},
	{PixelValueTransformationSequenceTag, "PixelValueTransformationSequence", SQVR, "1"},
	{FramePixelShiftSequenceTag, "FramePixelShiftSequence", SQVR, "1"},
	{SubtractionItemIDTag, "SubtractionItemID", USVR, "1"},
	{PixelIntensityRelationshipLUTSequenceTag, "PixelIntensityRelationshipLUTSequence", SQVR, "1"},
	{FramePixelDataPropertiesSequenceTag, "FramePixelDataPropertiesSequence", SQVR, "1"},
	{GeometricalPropertiesTag, "GeometricalProperties", CSVR, "1"},
	{GeometricMaximumDistortionTag, "GeometricMaximumDistortion", FLVR, "1"},
	{ImageProcessingAppliedTag, "ImageProcessingApplied", CSVR, "1-n"},
	{LUTFunctionTag, "LUTFunction", CSVR, "1"},

	{SpecimenUIDTag, "SpecimenUID", UIVR, "1"},
	{XOffsetInSlideCoordinateSystemTag, "XOffsetInSlideCoordinateSystem", DSVR, "1"},
	{YOffsetInSlideCoordinateSystemTag, "YOffsetInSlideCoordinateSystem", DSVR, "1"},
	{ZOffsetInSlideCoordinateSystemTag, "ZOffsetInSlideCoordinateSystem", DSVR, "1"},
	{MeasurementUnitsCodeSequenceTag, "MeasurementUnitsCodeSequence", SQVR, "1"},
	{RealWorldValueMappingSequenceTag, "RealWorldValueMappingSequence", SQVR, "1"},
	{LUTLabelTag, "LUTLabel", SHVR, "1"},
	// (0040,9211) and (0040,9216) are US or SS, US is used unless the element says otherwise
	{RealWorldValueLastValueMappedTag, "RealWorldValueLastValueMapped", USVR, "1"},
	{RealWorldValueFirstValueMappedTag, "RealWorldValueFirstValueMapped", USVR, "1"},
	{RealWorldValueInterceptTag, "RealWorldValueIntercept", FDVR, "1"},
	{RealWorldValueSlopeTag, "RealWorldValueSlope", FDVR, "1"},
	{PurposeOfReferenceCodeSequenceTag, "PurposeOfReferenceCodeSequence", SQVR, "1"},

	{OpticalPathIdentifierTag, "OpticalPathIdentifier", SHVR, "1"},
	{SpecimenReferenceSequenceTag, "SpecimenReferenceSequence", SQVR, "1"},
	{OpticalPathIdentificationSequenceTag, "OpticalPathIdentificationSequence", SQVR, "1"},
	{PlanePositionSlideSequenceTag, "PlanePositionSlideSequence", SQVR, "1"},
	{ColumnPositionInTotalImagePixelMatrixTag, "ColumnPositionInTotalImagePixelMatrix", SLVR, "1"},
	{RowPositionInTotalImagePixelMatrixTag, "RowPositionInTotalImagePixelMatrix", SLVR, "1"},

	{CalibrationImageTag, "CalibrationImage", CSVR, "1"},

	{IntravascularOCTFrameTypeSequenceTag, "IntravascularOCTFrameTypeSequence", SQVR, "1"},
	{IntravascularFrameContentSequenceTag, "IntravascularFrameContentSequence", SQVR, "1"},
	{IntravascularLongitudinalDistanceTag, "IntravascularLongitudinalDistance", FDVR, "1"},
	{IntravascularOCTFrameContentSequenceTag, "IntravascularOCTFrameContentSequence", SQVR, "1"},
	{OCTZOffsetCorrectionTag, "OCTZOffsetCorrection", SSVR, "1"},
	{SeamLineLocationTag, "SeamLineLocation", FDVR, "1"},
	{SeamLineIndexTag, "SeamLineIndex", USVR, "1"},

	{PrimaryPromptsCountsAccumulatedTag, "PrimaryPromptsCountsAccumulated", ISVR, "1"},
	{SliceSensitivityFactorTag, "SliceSensitivityFactor", DSVR, "1"},
	{DecayFactorTag, "DecayFactor", DSVR, "1"},
	{DoseCalibrationFactorTag, "DoseCalibrationFactor", DSVR, "1"},
	{ScatterFractionFactorTag, "ScatterFractionFactor", DSVR, "1"},
	{DeadTimeFactorTag, "DeadTimeFactor", DSVR, "1"},

	{SegmentIdentificationSequenceTag, "SegmentIdentificationSequence", SQVR, "1"},
	{ReferencedSegmentNumberTag, "ReferencedSegmentNumber", USVR, "1-n"},

	{TableTopVerticalPositionTag, "TableTopVerticalPosition", DSVR, "1"},
	{TableTopLongitudinalPositionTag, "TableTopLongitudinalPosition", DSVR, "1"},
	{TableTopLateralPositionTag, "TableTopLateralPosition", DSVR, "1"},

	{CurveDataTag, "CurveData", OBVR, "1"},

	{SharedFunctionalGroupsSequenceTag, "SharedFunctionalGroupsSequence", SQVR, "1"},
	{PerFrameFunctionalGroupsSequenceTag, "PerFrameFunctionalGroupsSequence", SQVR, "1"},

	{OverlayRowsTag, "OverlayRows", USVR, "1"},
	{OverlayColumnsTag, "OverlayColumns", USVR, "1"},
	{OverlayTypeTag, "OverlayType", CSVR, "1"},
	{OverlayOriginTag, "OverlayOrigin", SSVR, "2"},
	{OverlayDataTag, "OverlayData", OWVR, "1"},

	{FloatPixelDataTag, "FloatPixelData", OFVR, "1"},
	{DoubleFloatPixelDataTag, "DoubleFloatPixelData", ODVR, "1"},
	// (7FE0,0010) is OB or OW, OW is chosen as the last VR of the dictionary row
	{PixelDataTag, "PixelData", OWVR, "1"},

	{ItemTag, "Item", nil, "1"},
	{ItemDelimitationItemTag, "ItemDelimitationItem", nil, "1"},
	{SequenceDelimitationItemTag, "SequenceDelimitationItem", nil, "1"},
}

var dictionary = indexByTag(dictionaryEntries)

var tagsByKeyword = indexByKeyword(dictionaryEntries)

func indexByTag(entries []TagInfo) map[DataElementTag]TagInfo {
	m := make(map[DataElementTag]TagInfo, len(entries))
	for _, e := range entries {
		m[e.Tag] = e
	}
	return m
}

func indexByKeyword(entries []TagInfo) map[string]DataElementTag {
	m := make(map[string]DataElementTag, len(entries))
	for _, e := range entries {
		m[e.Keyword] = e.Tag
	}
	return m
}

// repeatingGroupMask clears the xx part of the repeating groups (50xx,eeee) and (60xx,eeee)
const repeatingGroupMask = 0xFF00FFFF

// LookupTag returns the data dictionary entry of the tag. Tags of the repeating groups 50xx and
// 60xx resolve to the entry of their base tag, with the Tag field set to the given tag.
func LookupTag(t DataElementTag) (TagInfo, bool) {
	if info, ok := dictionary[t]; ok {
		return info, true
	}
	if g := t.GroupNumber() & 0xFF00; !t.IsPrivate() && (g == 0x5000 || g == 0x6000) {
		if info, ok := dictionary[t&repeatingGroupMask]; ok {
			info.Tag = t
			return info, true
		}
	}
	return TagInfo{}, false
}

// LookupTagByKeyword returns the tag whose data dictionary keyword is kw
func LookupTagByKeyword(kw string) (DataElementTag, bool) {
	t, ok := tagsByKeyword[kw]
	return t, ok
}

// ParseTag reads a tag written as a data dictionary keyword, "(gggg,eeee)", "gggg,eeee" or
// "ggggeeee"
func ParseTag(s string) (DataElementTag, error) {
	if t, ok := LookupTagByKeyword(strings.TrimSpace(s)); ok {
		return t, nil
	}
	return parseTag(s)
}

// DictionaryVR returns the VR of the tag in the data dictionary. Group length elements
// (gggg,0000) are UL, private creator elements (gggg,0010-00FF) with an odd group are LO, and any
// other tag missing from the dictionary is UN.
func (t DataElementTag) DictionaryVR() *VR {
	if info, ok := LookupTag(t); ok && info.VR != nil {
		return info.VR
	}
	if t.IsGroupLength() {
		return ULVR
	}
	if t.IsPrivate() && t.ElementNumber() >= 0x0010 && t.ElementNumber() <= 0x00FF {
		return LOVR
	}
	return UNVR
}

// Keyword returns the data dictionary keyword of the tag, or the empty string for tags missing
// from the dictionary
func (t DataElementTag) Keyword() string {
	if info, ok := LookupTag(t); ok {
		return info.Keyword
	}
	if t.IsGroupLength() {
		return "GroupLength"
	}
	if t.IsPrivate() && t.ElementNumber() >= 0x0010 && t.ElementNumber() <= 0x00FF {
		return "PrivateCreator"
	}
	return ""
}
