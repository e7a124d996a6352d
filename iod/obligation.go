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

	"gopkg.in/yaml.v3"
)

// Obligation is the type of an attribute as defined in
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.4
type Obligation int

const (
	// Type1 attributes are required and shall have a value
	Type1 Obligation = iota
	// Type1C attributes are required with a value under a condition
	Type1C
	// Type2 attributes are required but may be empty
	Type2
	// Type2C attributes are required under a condition but may be empty
	Type2C
	// Type3 attributes are optional
	Type3
)

var obligationNames = []string{"1", "1C", "2", "2C", "3"}

// ParseObligation parses the notation used in the standard, e.g. "1C"
func ParseObligation(s string) (Obligation, error) {
	for i, name := range obligationNames {
		if name == s {
			return Obligation(i), nil
		}
	}
	return 0, fmt.Errorf("unknown attribute type %q", s)
}

func (o Obligation) String() string {
	if o < 0 || int(o) >= len(obligationNames) {
		return fmt.Sprintf("Obligation(%d)", int(o))
	}
	return "Type " + obligationNames[o]
}

// IsRequired is true for Type 1 and Type 2 attributes
func (o Obligation) IsRequired() bool {
	return o == Type1 || o == Type2
}

// UnmarshalYAML decodes the notation used in the standard
func (o *Obligation) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseObligation(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %v", value.Line, err)
	}
	*o = parsed
	return nil
}

var (
	// ErrUnknownKeyword is returned for a keyword that is not defined by a functional group or
	// module
	ErrUnknownKeyword = errors.New("unknown keyword")

	// ErrInvalidFrameNumber is returned for frame numbers below 1 or beyond the number of frames
	ErrInvalidFrameNumber = errors.New("invalid frame number")

	// ErrSingleItem is returned when adding a second item to a functional group that allows a
	// single item
	ErrSingleItem = errors.New("functional group allows a single item")
)

// RequiredAttributeError is returned when a null value is assigned to a Type 1 attribute
type RequiredAttributeError struct {
	Keyword string
}

func (e *RequiredAttributeError) Error() string {
	return e.Keyword + " is Type 1 Required."
}

// MultiplicityError is returned when the number of values written to a Type 1 attribute differs
// from its fixed multiplicity
type MultiplicityError struct {
	Keyword string
	Want    int
	Got     int
}

func (e *MultiplicityError) Error() string {
	return fmt.Sprintf("%v requires %d values, got %d", e.Keyword, e.Want, e.Got)
}
