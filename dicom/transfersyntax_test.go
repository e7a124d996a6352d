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
	"io"
	"testing"
)

func TestLookupTransferSyntax(t *testing.T) {
	tests := []struct {
		uid      string
		implicit bool
		bigEnd   bool
		deflated bool
	}{
		{ImplicitVRLittleEndianUID, true, false, false},
		{ExplicitVRLittleEndianUID, false, false, false},
		{ExplicitVRBigEndianUID, false, true, false},
		{DeflatedExplicitVRLittleEndianUID, false, false, true},
		{JPEGBaselineUID, false, false, false},
		{RLELosslessUID, false, false, false},
		{"1.2.3", false, false, false},
	}
	for _, tc := range tests {
		t.Run(tc.uid, func(t *testing.T) {
			syntax := lookupTransferSyntax(tc.uid)
			if got := syntax.isImplicit(); got != tc.implicit {
				t.Fatalf("isImplicit() => got %v, want %v", got, tc.implicit)
			}
			if got := syntax.byteOrder().String() == "BigEndian"; got != tc.bigEnd {
				t.Fatalf("byte order %v, want big endian %v", syntax.byteOrder(), tc.bigEnd)
			}
			if got := syntax.isDeflated(); got != tc.deflated {
				t.Fatalf("isDeflated() => got %v, want %v", got, tc.deflated)
			}
		})
	}
}

func TestIsEncapsulatedTransferSyntax(t *testing.T) {
	tests := []struct {
		uid  string
		want bool
	}{
		{ImplicitVRLittleEndianUID, false},
		{ExplicitVRLittleEndianUID, false},
		{ExplicitVRBigEndianUID, false},
		{DeflatedExplicitVRLittleEndianUID, false},
		{JPEGBaselineUID, true},
		{RLELosslessUID, true},
	}
	for _, tc := range tests {
		t.Run(tc.uid, func(t *testing.T) {
			if got := IsEncapsulatedTransferSyntax(tc.uid); got != tc.want {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestExplicitSyntax_WriteValueLength(t *testing.T) {
	dw := newDcmWriter(io.Discard)
	if err := explicitVRLittleEndian.writeValueLength(dw, LOVR, 0x10000); err == nil {
		t.Fatalf("expected error for a length beyond 16 bits")
	}
	if err := explicitVRLittleEndian.writeValueLength(dw, UTVR, 0x10000); err != nil {
		t.Fatalf("unexpected error for a 32 bit length VR: %v", err)
	}
}
