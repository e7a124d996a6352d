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
	"fmt"
)

// vrType is to group common encodings together
type vrType int

const (
	// textVR is for value fields that will be interpreted as simple text with space padding
	textVR vrType = iota

	// numberBinaryVR is for value fields that are parsed as binary numbers
	numberBinaryVR

	// bulkDataVR groups sequences of bytes or binary numbers (OB, OD, OF, OL, OW, UN)
	bulkDataVR

	// uniqueIdentifierVR is for VR: UI. It has null padding
	uniqueIdentifierVR

	// sequenceVR is for VR: SQ
	sequenceVR

	// tagVR is for tags. Distinct from numberBinaryVR due to little endian byte ordering
	tagVR
)

// UndefinedLength as specified
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.1.1
const UndefinedLength = 0xffffffff

// VR models the DICOM Value representations (VR)
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_6.2
type VR struct {
	// Name represents the 2-character VR Code
	Name string

	kind vrType

	// maxLength is the maximum length in bytes (or characters for text) of a single value.
	// 0 means the length is only bounded by the length field.
	maxLength uint32

	// singleValued VRs do not use the backslash as a value delimiter
	singleValued bool
}

func (vr *VR) String() string {
	return vr.Name
}

// MaxLength returns the maximum length of a single value, 0 when unbounded
func (vr *VR) MaxLength() uint32 {
	return vr.maxLength
}

// IsText is true for VRs whose values are stored as []string
func (vr *VR) IsText() bool {
	return vr.kind == textVR || vr.kind == uniqueIdentifierVR
}

// has32BitLength reports whether the explicit VR encoding of the VR uses a 32-bit length field.
// The 2 cases are defined at the link:
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.1.2
func (vr *VR) has32BitLength() bool {
	switch vr {
	case OBVR, ODVR, OFVR, OLVR, OWVR, SQVR, UCVR, URVR, UTVR, UNVR:
		return true
	default:
		return false
	}
}

// paddingByte is appended to values of odd length
func (vr *VR) paddingByte() byte {
	if vr.kind == textVR {
		return ' '
	}
	return 0x00
}

var vrLookupMap = map[string]*VR{}

func newVR(text string, vrType vrType, maxLength uint32, singleValued bool) *VR {
	vr := &VR{text, vrType, maxLength, singleValued}
	vrLookupMap[vr.Name] = vr

	return vr
}

// LookupVR returns the VR with the given 2-character code
func LookupVR(name string) (*VR, error) {
	r, ok := vrLookupMap[name]
	if !ok {
		return nil, fmt.Errorf("unknown vr name: %q", name)
	}
	return r, nil
}

// VR list obtained from
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_6.2
var (
	// textual VRs
	CSVR = newVR("CS", textVR, 16, false)
	SHVR = newVR("SH", textVR, 16, false)
	LOVR = newVR("LO", textVR, 64, false)
	STVR = newVR("ST", textVR, 1024, true)
	LTVR = newVR("LT", textVR, 10240, true)
	ASVR = newVR("AS", textVR, 4, false)

	// person name
	PNVR = newVR("PN", textVR, 64*5, false)

	// application entity
	AEVR = newVR("AE", textVR, 16, false)

	// dates/time VR
	DAVR = newVR("DA", textVR, 8, false)
	TMVR = newVR("TM", textVR, 14, false)
	DTVR = newVR("DT", textVR, 26, false)

	// textual numbers
	ISVR = newVR("IS", textVR, 12, false)
	DSVR = newVR("DS", textVR, 16, false)

	// unlimited char
	UCVR = newVR("UC", textVR, 0, false)

	// URL
	URVR = newVR("UR", textVR, 0, true)

	// unlimited text
	UTVR = newVR("UT", textVR, 0, true)

	// binary numbers
	SSVR = newVR("SS", numberBinaryVR, 2, false)
	USVR = newVR("US", numberBinaryVR, 2, false)
	SLVR = newVR("SL", numberBinaryVR, 4, false)
	ULVR = newVR("UL", numberBinaryVR, 4, false)
	FLVR = newVR("FL", numberBinaryVR, 4, false)
	FDVR = newVR("FD", numberBinaryVR, 8, false)

	// large binary sequences
	OBVR = newVR("OB", bulkDataVR, 0, true)
	ODVR = newVR("OD", bulkDataVR, 0, false)
	OLVR = newVR("OL", bulkDataVR, 0, false)
	OWVR = newVR("OW", bulkDataVR, 0, true)
	OFVR = newVR("OF", bulkDataVR, 0, false)

	// unknown
	UNVR = newVR("UN", bulkDataVR, 0, true)

	// attribute tag
	ATVR = newVR("AT", tagVR, 4, false)

	// unique identifier
	UIVR = newVR("UI", uniqueIdentifierVR, 64, false)

	// sequence
	SQVR = newVR("SQ", sequenceVR, 0, false)
)
