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
	"testing"

	"golang.org/x/text/encoding/charmap"
)

func TestEncodingForTerms(t *testing.T) {
	tests := []struct {
		name    string
		terms   []string
		want    string
		wantErr bool
	}{
		{"no terms", nil, "José", false},
		{"empty first term", []string{"", "ISO 2022 IR 100"}, "José", false},
		{"utf-8", []string{"ISO_IR 192"}, "José", false},
		{"unknown", []string{"ISO_IR 999"}, "", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			enc, err := encodingForTerms(tc.terms)
			if (err != nil) != tc.wantErr {
				t.Fatalf("got error %v, want error %v", err, tc.wantErr)
			}
			if tc.wantErr {
				return
			}
			b, err := encodeText(enc, PNVR, tc.want)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got, err := decodeText(enc, PNVR, b)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestLookupEncoding(t *testing.T) {
	tests := []struct {
		term string
		raw  []byte
		want string
	}{
		{"ISO_IR 100", []byte{0xC4, 0xE9}, "Äé"},
		{"ISO_IR 192", []byte{0xC3, 0x84}, "Ä"},
		{"ISO_IR 144", []byte{0xB0}, "А"},
	}
	for _, tc := range tests {
		t.Run(tc.term, func(t *testing.T) {
			enc, err := lookupEncoding(tc.term)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got, err := decodeText(enc, LOVR, tc.raw)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestDecodeText_NotAffectedVR(t *testing.T) {
	raw := []byte{'1', '.', '2', 0xE9}
	got, err := decodeText(charmap.Windows1252, UIVR, raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != string(raw) {
		t.Fatalf("expected %v values to be kept as is: got %q, want %q", UIVR, got, string(raw))
	}
	if got, _ := decodeText(nil, LOVR, raw); got != string(raw) {
		t.Fatalf("expected text without encoding to be kept as is: got %q", got)
	}
}
