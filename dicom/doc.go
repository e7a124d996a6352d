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

// Package dicom is the core package of the go-dicom-iod library. It provides the data structures
// for the DICOM data model specified in
// [http://dicom.nema.org/medical/dicom/current/output/pdf/part05.pdf] and functions to read and
// write them in the DICOM file format specified in
// [http://dicom.nema.org/medical/dicom/current/output/pdf/part10.pdf].
//
// A DataSet is a collection of DataElements keyed by tag. Every DataElement is in one of three
// states: absent (no value was ever assigned), null (present with zero values, the marker written
// for Type 2 attributes) or valued. The typed accessors on DataElement and DataSet convert between
// the stored representation of a value representation (VR) and native Go types, so a Decimal
// String (DS) can be read with Float64At and an Unsigned Short (US) can be written with SetInt64At.
//
// Parse and Construct translate DataSets from and to the DICOM file format. ParseDataSet and
// WriteDataSet do the same for a bare data set encoded in a given transfer syntax.
package dicom
