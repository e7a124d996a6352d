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
	"math/big"
	"strings"

	"github.com/google/uuid"
)

// uuidRoot is the UID root for UIDs derived from UUIDs
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_B.2
const uuidRoot = "2.25."

// maxUIDLength is the maximum length of a UI value
const maxUIDLength = 64

// NewUID returns a new globally unique UID of the form 2.25.<UUID as a decimal integer>
func NewUID() string {
	u := uuid.New()
	return uuidRoot + new(big.Int).SetBytes(u[:]).String()
}

// IsValidUID reports whether s is a syntactically valid UID: at most 64 characters of dot
// separated numeric components without leading zeros
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#chapter_9
func IsValidUID(s string) bool {
	if s == "" || len(s) > maxUIDLength {
		return false
	}
	for _, component := range strings.Split(s, ".") {
		if component == "" || (len(component) > 1 && component[0] == '0') {
			return false
		}
		for _, r := range component {
			if r < '0' || r > '9' {
				return false
			}
		}
	}
	return true
}
