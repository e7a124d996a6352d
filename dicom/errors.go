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

import "errors"

var (
	// ErrNoValue is returned when reading a value that is absent or null
	ErrNoValue = errors.New("no value")

	// ErrValueOutOfRange is returned when a value cannot be represented by the VR of an element
	// without loss, e.g. 70000 written to an US element or 1.5 written to an IS element
	ErrValueOutOfRange = errors.New("value out of range")

	// ErrIndexOutOfRange is returned when a value is written past the end of the values of an
	// element. Writing at index Count() appends.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrIncompatibleVR is returned when the type of a value does not fit the VR of an element,
	// e.g. a number written to a sequence
	ErrIncompatibleVR = errors.New("incompatible vr")
)
