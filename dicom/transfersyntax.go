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
	"encoding/binary"
	"fmt"
	"math"
)

// Transfer syntax UIDs of PS3.6 Annex A
const (
	// ImplicitVRLittleEndianUID is the Implicit VR Little Endian UID
	ImplicitVRLittleEndianUID = "1.2.840.10008.1.2"
	// ExplicitVRLittleEndianUID is the Explicit VR Little Endian UID
	ExplicitVRLittleEndianUID = "1.2.840.10008.1.2.1"
	// ExplicitVRBigEndianUID is the Explicit VR Big Endian UID
	ExplicitVRBigEndianUID = "1.2.840.10008.1.2.2"
	// DeflatedExplicitVRLittleEndianUID is the Deflated Explicit VR Little Endian UID
	DeflatedExplicitVRLittleEndianUID = "1.2.840.10008.1.2.1.99"
	// JPEGBaselineUID is the JPEG Baseline (Process 1) transfer syntax UID
	JPEGBaselineUID = "1.2.840.10008.1.2.4.50"
	// RLELosslessUID is the RLE Lossless transfer syntax UID
	RLELosslessUID = "1.2.840.10008.1.2.5"
)

// transferSyntax is the encoding of a data set: byte order, whether VRs are written, and
// whether the data set is deflated or carries encapsulated pixel data
type transferSyntax struct {
	name         string
	order        binary.ByteOrder
	implicit     bool
	deflated     bool
	encapsulated bool
}

var (
	implicitVRLittleEndian         = transferSyntax{name: "Implicit VR Little Endian", order: binary.LittleEndian, implicit: true}
	explicitVRLittleEndian         = transferSyntax{name: "Explicit VR Little Endian", order: binary.LittleEndian}
	explicitVRBigEndian            = transferSyntax{name: "Explicit VR Big Endian", order: binary.BigEndian}
	deflatedExplicitVRLittleEndian = transferSyntax{name: "Deflated Explicit VR Little Endian", order: binary.LittleEndian, deflated: true}
)

var transferSyntaxes = map[string]transferSyntax{
	ImplicitVRLittleEndianUID:         implicitVRLittleEndian,
	ExplicitVRLittleEndianUID:         explicitVRLittleEndian,
	ExplicitVRBigEndianUID:            explicitVRBigEndian,
	DeflatedExplicitVRLittleEndianUID: deflatedExplicitVRLittleEndian,
	JPEGBaselineUID:                   {name: "JPEG Baseline", order: binary.LittleEndian, encapsulated: true},
	RLELosslessUID:                    {name: "RLE Lossless", order: binary.LittleEndian, encapsulated: true},
}

// lookupTransferSyntax returns the syntax of the UID. Syntaxes not in the table are read as
// explicit VR little endian (PS3.5 A.4).
func lookupTransferSyntax(uid string) transferSyntax {
	if s, ok := transferSyntaxes[uid]; ok {
		return s
	}
	return explicitVRLittleEndian
}

// IsEncapsulatedTransferSyntax is true for transfer syntaxes that carry compressed pixel data
// in fragments. Unknown syntaxes are assumed to be compressed.
func IsEncapsulatedTransferSyntax(uid string) bool {
	s, ok := transferSyntaxes[uid]
	return !ok || s.encapsulated
}

func (s transferSyntax) String() string {
	return s.name
}

func (s transferSyntax) byteOrder() binary.ByteOrder {
	return s.order
}

func (s transferSyntax) isDeflated() bool {
	return s.deflated
}

func (s transferSyntax) isImplicit() bool {
	return s.implicit
}

// readVR reads the two character VR of explicit syntaxes. Implicit syntaxes use the data
// dictionary.
func (s transferSyntax) readVR(dr *dcmReader, tag DataElementTag) (*VR, error) {
	if s.implicit {
		return tag.DictionaryVR(), nil
	}
	name, err := dr.String(2)
	if err != nil {
		return nil, fmt.Errorf("reading vr of %v: %v", tag, err)
	}
	return LookupVR(name)
}

// readValueLength reads the value length following the VR. Explicit VRs with 32-bit lengths have
// two reserved bytes first.
func (s transferSyntax) readValueLength(dr *dcmReader, vr *VR) (uint32, error) {
	if s.implicit {
		return dr.UInt32(s.order)
	}
	if !vr.has32BitLength() {
		length, err := dr.UInt16(s.order)
		if err != nil {
			return 0, fmt.Errorf("reading 16 bit length: %v", err)
		}
		return uint32(length), nil
	}
	if err := dr.Skip(2); err != nil {
		return 0, fmt.Errorf("reading reserved field: %v", err)
	}
	length, err := dr.UInt32(s.order)
	if err != nil {
		return 0, fmt.Errorf("reading 32 bit length: %v", err)
	}
	return length, nil
}

func (s transferSyntax) writeVR(dw *dcmWriter, vr *VR) error {
	if s.implicit {
		return nil
	}
	return dw.String(vr.Name)
}

func (s transferSyntax) writeValueLength(dw *dcmWriter, vr *VR, length uint32) error {
	switch {
	case s.implicit:
		return dw.UInt32(s.order, length)
	case vr.has32BitLength():
		if err := dw.UInt16(s.order, 0); err != nil {
			return fmt.Errorf("writing reserved field: %v", err)
		}
		return dw.UInt32(s.order, length)
	case length > math.MaxUint16:
		return fmt.Errorf("%v value length %d exceeds 16 bits", vr.Name, length)
	}
	return dw.UInt16(s.order, uint16(length))
}
