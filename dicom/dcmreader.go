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

// dcmReader decodes the primitive parts of an encoded data set: tags, lengths, and raw values.
// Readers created by Limit share the offset of their parent.
type dcmReader struct {
	src     *offsetReader
	scratch [4]byte
}

func newDcmReader(r io.Reader) *dcmReader {
	return &dcmReader{src: &offsetReader{r: r}}
}

// Limit returns a reader of the next n bytes
func (dr *dcmReader) Limit(n int64) *dcmReader {
	return &dcmReader{src: &offsetReader{r: io.LimitReader(dr.src, n), offset: dr.src.offset}}
}

// Offset returns the number of bytes consumed from the start of the stream
func (dr *dcmReader) Offset() int64 {
	return dr.src.offset
}

func (dr *dcmReader) fill(n int) ([]byte, error) {
	b := dr.scratch[:n]
	if _, err := io.ReadFull(dr.src, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (dr *dcmReader) Tag(order binary.ByteOrder) (DataElementTag, error) {
	b, err := dr.fill(4)
	if err != nil {
		return 0, err
	}
	return NewTag(order.Uint16(b), order.Uint16(b[2:])), nil
}

func (dr *dcmReader) UInt16(order binary.ByteOrder) (uint16, error) {
	b, err := dr.fill(2)
	if err != nil {
		return 0, err
	}
	return order.Uint16(b), nil
}

func (dr *dcmReader) UInt32(order binary.ByteOrder) (uint32, error) {
	b, err := dr.fill(4)
	if err != nil {
		return 0, err
	}
	return order.Uint32(b), nil
}

// Skip discards n bytes
func (dr *dcmReader) Skip(n int64) error {
	_, err := io.CopyN(io.Discard, dr.src, n)
	return err
}

func (dr *dcmReader) String(n int64) (string, error) {
	b, err := dr.Bytes(n)
	return string(b), err
}

// Bytes reads the next n bytes. A stream ending early fails with io.ErrUnexpectedEOF.
func (dr *dcmReader) Bytes(n int64) ([]byte, error) {
	b := make([]byte, n)
	got, err := io.ReadFull(dr.src, b)
	if err != nil {
		return nil, fmt.Errorf("reading %d bytes at offset %d, got %d: %w", n, dr.src.offset-int64(got), got, err)
	}
	return b, nil
}

// offsetReader tracks the position in the stream
type offsetReader struct {
	r      io.Reader
	offset int64
}

func (o *offsetReader) Read(p []byte) (int, error) {
	n, err := o.r.Read(p)
	o.offset += int64(n)
	return n, err
}
