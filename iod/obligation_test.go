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
)

func TestParseObligation(t *testing.T) {
	tests := []struct {
		in   string
		want Obligation
	}{
		{"1", Type1},
		{"1C", Type1C},
		{"2", Type2},
		{"2C", Type2C},
		{"3", Type3},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseObligation(tc.in)
			if err != nil {
				t.Fatalf("ParseObligation(%q): %v", tc.in, err)
			}
			if got != tc.want {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
			if got.String() != "Type "+tc.in {
				t.Fatalf("got %q, want %q", got.String(), "Type "+tc.in)
			}
		})
	}
}

func TestParseObligation_Errors(t *testing.T) {
	for _, in := range []string{"", "1c", "4", "U"} {
		if _, err := ParseObligation(in); err == nil {
			t.Fatalf("ParseObligation(%q): expected error", in)
		}
	}
}

func TestObligation_IsRequired(t *testing.T) {
	want := map[Obligation]bool{Type1: true, Type1C: false, Type2: true, Type2C: false, Type3: false}
	for o, required := range want {
		if got := o.IsRequired(); got != required {
			t.Fatalf("%v.IsRequired() = %v, want %v", o, got, required)
		}
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"required", &RequiredAttributeError{Keyword: "PerFrameFunctionalGroupsSequence"}, "PerFrameFunctionalGroupsSequence is Type 1 Required."},
		{"multiplicity", &MultiplicityError{Keyword: "ImagePositionVolume", Want: 3, Got: 2}, "ImagePositionVolume requires 3 values, got 2"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.err.Error(); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}
