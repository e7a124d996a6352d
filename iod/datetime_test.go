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
	"time"
)

func TestCombineDateTime(t *testing.T) {
	tests := []struct {
		name string
		da   string
		tm   string
		want time.Time
	}{
		{"hours", "20181105", "07", time.Date(2018, 11, 5, 7, 0, 0, 0, time.UTC)},
		{"minutes", "20181105", "0715", time.Date(2018, 11, 5, 7, 15, 0, 0, time.UTC)},
		{"seconds", "20181105", "071530", time.Date(2018, 11, 5, 7, 15, 30, 0, time.UTC)},
		{"fraction", "20181105", "071530.125", time.Date(2018, 11, 5, 7, 15, 30, 125000000, time.UTC)},
		{"microseconds", "20181105", "071530.000001", time.Date(2018, 11, 5, 7, 15, 30, 1000, time.UTC)},
		{"padded", "20181105 ", "071530 ", time.Date(2018, 11, 5, 7, 15, 30, 0, time.UTC)},
		{"ACR-NEMA", "2018.11.05", "07:15:30", time.Date(2018, 11, 5, 7, 15, 30, 0, time.UTC)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := combineDateTime(tc.da, tc.tm)
			if err != nil {
				t.Fatalf("combineDateTime(%q, %q): %v", tc.da, tc.tm, err)
			}
			if !got.Equal(tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCombineDateTime_Errors(t *testing.T) {
	tests := []struct {
		name string
		da   string
		tm   string
	}{
		{"empty date", "", "120000"},
		{"short date", "201811", "120000"},
		{"invalid month", "20181305", "120000"},
		{"empty time", "20181105", ""},
		{"odd length", "20181105", "1200000"},
		{"invalid hour", "20181105", "24"},
		{"invalid minute", "20181105", "1260"},
		{"fraction without seconds", "20181105", "1200.5"},
		{"long fraction", "20181105", "120000.1234567"},
		{"empty fraction", "20181105", "120000."},
		{"not a number", "20181105", "12ab"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := combineDateTime(tc.da, tc.tm); err == nil {
				t.Fatalf("combineDateTime(%q, %q): expected error", tc.da, tc.tm)
			}
		})
	}
}

func TestFormatTime(t *testing.T) {
	tests := []struct {
		in   time.Time
		want string
	}{
		{time.Date(2018, 11, 5, 7, 15, 30, 0, time.UTC), "071530"},
		{time.Date(2018, 11, 5, 7, 15, 30, 500000000, time.UTC), "071530.5"},
		{time.Date(2018, 11, 5, 7, 15, 30, 123456789, time.UTC), "071530.123456"},
	}
	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			if got := formatTime(tc.in); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}
