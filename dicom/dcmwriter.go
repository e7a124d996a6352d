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
	"io"
)

// dcmWriter encodes the primitive parts of a data set
type dcmWriter struct {
	io.Writer
	scratch [4]byte
}

func newDcmWriter(w io.Writer) *dcmWriter {
	return &dcmWriter{Writer: w}
}

func (dw *dcmWriter) Tag(order binary.ByteOrder, tag DataElementTag) error {
	b := dw.scratch[:4]
	order.PutUint16(b, tag.GroupNumber())
	order.PutUint16(b[2:], tag.ElementNumber())
	return dw.Bytes(b)
}

// Item writes the item tag and the item length
func (dw *dcmWriter) Item(order binary.ByteOrder, length uint32) error {
	if err := dw.Tag(order, ItemTag); err != nil {
		return fmt.Errorf("writing item tag: %v", err)
	}
	if err := dw.UInt32(order, length); err != nil {
		return fmt.Errorf("writing item length: %v", err)
	}
	return nil
}

// Delimiter writes an item or sequence delimitation item
func (dw *dcmWriter) Delimiter(order binary.ByteOrder, tag DataElementTag) error {
	if err := dw.Tag(order, tag); err != nil {
		return fmt.Errorf("writing %v: %v", tag, err)
	}
	return dw.UInt32(order, 0)
}

func (dw *dcmWriter) UInt16(order binary.ByteOrder, v uint16) error {
	b := dw.scratch[:2]
	order.PutUint16(b, v)
	return dw.Bytes(b)
}

func (dw *dcmWriter) UInt32(order binary.ByteOrder, v uint32) error {
	b := dw.scratch[:4]
	order.PutUint32(b, v)
	return dw.Bytes(b)
}

func (dw *dcmWriter) String(s string) error {
	_, err := io.WriteString(dw.Writer, s)
	return err
}

func (dw *dcmWriter) Bytes(b []byte) error {
	_, err := dw.Write(b)
	return err
}
