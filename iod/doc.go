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

// Package iod binds DICOM information object definitions to data sets.
//
// Functional groups and modules are described by a declarative schema (schema.yaml) listing for
// each attribute its keyword, its obligation (Type 1, 1C, 2, 2C or 3) and its value multiplicity.
// One accessor engine interprets the schema:
//
//   - assigning a null value to a Type 1 attribute fails with a *RequiredAttributeError and leaves
//     the data set unchanged,
//   - assigning a null value to a Type 2 or 2C attribute keeps the attribute with zero length,
//   - assigning a null value to a Type 1C or 3 attribute removes it.
//
// Attributes with a fixed multiplicity (e.g. ImagePositionPatient with 3 values) read as absent
// when the number of values differs, and writes with the wrong number of values are rejected for
// Type 1 attributes and clear the attribute otherwise.
//
// Macro is a view over the functional group sequence of one item of the Shared or Per-frame
// Functional Groups Sequence. The Registry answers which functional groups apply to a SOP class
// and which group defines a given tag.
package iod
