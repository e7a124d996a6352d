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
	"strings"

	"github.com/klauspost/compress/flate"
	"github.com/valyala/bytebufferpool"
)

// writeConfig holds the settings of ConstructOptions that affect encoding
type writeConfig struct {
	// explicitLengths writes sequences and items with explicit lengths instead of delimiters
	explicitLengths bool
}

// writeBody writes ds in the transfer syntax with the given UID, compressing the output for the
// deflated syntax
func writeBody(w io.Writer, syntaxUID string, ds *DataSet, cfg writeConfig) error {
	syntax := lookupTransferSyntax(syntaxUID)
	md := dicomMetaData{syntax, defaultCharacterRepertoire}
	if !syntax.isDeflated() {
		return writeDataSet(newDcmWriter(w), md, ds, cfg)
	}

	fw, err := flate.NewWriter(w, flate.DefaultCompression)
	if err != nil {
		return fmt.Errorf("creating deflate writer: %v", err)
	}
	if err := writeDataSet(newDcmWriter(fw), md, ds, cfg); err != nil {
		return err
	}
	if err := fw.Close(); err != nil {
		return fmt.Errorf("flushing deflate writer: %v", err)
	}
	return nil
}

// writeDataSet writes the elements of ds in ascending tag order. Empty elements are skipped.
func writeDataSet(dw *dcmWriter, md dicomMetaData, ds *DataSet, cfg writeConfig) error {
	md, err := metaDataForDataSet(md, ds)
	if err != nil {
		return fmt.Errorf("selecting character set: %v", err)
	}
	for _, element := range ds.SortedElements() {
		if element.IsEmpty() {
			continue
		}
		if err := writeDataElement(dw, md, element, cfg); err != nil {
			return fmt.Errorf("writing data element %v: %v", element.Tag, err)
		}
	}
	return nil
}

func writeDataElement(dw *dcmWriter, md dicomMetaData, element *DataElement, cfg writeConfig) error {
	vr := element.VR
	if vr == nil {
		vr = element.Tag.DictionaryVR()
	}

	switch v := element.ValueField.(type) {
	case *Sequence:
		return writeSequence(dw, md, element.Tag, v, cfg)
	case [][]byte:
		return writeEncapsulated(dw, md.syntax, element.Tag, v)
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := encodeValue(buf, md, vr, element.ValueField); err != nil {
		return fmt.Errorf("encoding value: %v", err)
	}
	if buf.Len()%2 != 0 {
		if err := buf.WriteByte(vr.paddingByte()); err != nil {
			return err
		}
	}

	if err := writeElementHeader(dw, md.syntax, element.Tag, vr, uint32(buf.Len())); err != nil {
		return err
	}
	return dw.Bytes(buf.B)
}

func writeElementHeader(dw *dcmWriter, syntax transferSyntax, tag DataElementTag, vr *VR, length uint32) error {
	if err := dw.Tag(syntax.byteOrder(), tag); err != nil {
		return fmt.Errorf("writing tag: %v", err)
	}
	if err := syntax.writeVR(dw, vr); err != nil {
		return fmt.Errorf("writing VR: %v", err)
	}
	if err := syntax.writeValueLength(dw, vr, length); err != nil {
		return fmt.Errorf("writing length: %v", err)
	}
	return nil
}

func encodeValue(w io.Writer, md dicomMetaData, vr *VR, valueField interface{}) error {
	order := md.syntax.byteOrder()
	switch v := valueField.(type) {
	case []string:
		if !vr.IsText() {
			return fmt.Errorf("unexpected type []string for vr %v", vr)
		}
		b, err := encodeText(md.encoding, vr, strings.Join(v, "\\"))
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	case []byte:
		_, err := w.Write(v)
		return err
	case []uint32:
		if vr == ATVR {
			tw := newDcmWriter(w)
			for _, t := range v {
				if err := tw.Tag(order, DataElementTag(t)); err != nil {
					return err
				}
			}
			return nil
		}
		return binary.Write(w, order, v)
	case []int16, []uint16, []int32, []float32, []float64:
		return binary.Write(w, order, v)
	}
	return fmt.Errorf("unexpected ValueField type %T", valueField)
}

func writeSequence(dw *dcmWriter, md dicomMetaData, tag DataElementTag, seq *Sequence, cfg writeConfig) error {
	syntax := md.syntax
	order := syntax.byteOrder()

	if len(seq.Items) == 0 {
		return writeElementHeader(dw, syntax, tag, SQVR, 0)
	}

	if cfg.explicitLengths {
		buf := bytebufferpool.Get()
		defer bytebufferpool.Put(buf)
		if err := writeItemsExplicit(newDcmWriter(buf), md, seq, cfg); err != nil {
			return err
		}
		if err := writeElementHeader(dw, syntax, tag, SQVR, uint32(buf.Len())); err != nil {
			return err
		}
		return dw.Bytes(buf.B)
	}

	if err := writeElementHeader(dw, syntax, tag, SQVR, UndefinedLength); err != nil {
		return err
	}
	for i, item := range seq.Items {
		if err := dw.Item(order, UndefinedLength); err != nil {
			return err
		}
		if err := writeDataSet(dw, md, item, cfg); err != nil {
			return fmt.Errorf("writing sequence item %d: %v", i+1, err)
		}
		if err := dw.Delimiter(order, ItemDelimitationItemTag); err != nil {
			return fmt.Errorf("writing item delimitation item: %v", err)
		}
	}
	if err := dw.Delimiter(order, SequenceDelimitationItemTag); err != nil {
		return fmt.Errorf("writing sequence delimitation item: %v", err)
	}
	return nil
}

// writeItemsExplicit encodes each item in a pooled buffer to learn its length before writing it
func writeItemsExplicit(dw *dcmWriter, md dicomMetaData, seq *Sequence, cfg writeConfig) error {
	order := md.syntax.byteOrder()
	for i, item := range seq.Items {
		buf := bytebufferpool.Get()
		err := writeDataSet(newDcmWriter(buf), md, item, cfg)
		if err == nil {
			err = dw.Item(order, uint32(buf.Len()))
		}
		if err == nil {
			err = dw.Bytes(buf.B)
		}
		bytebufferpool.Put(buf)
		if err != nil {
			return fmt.Errorf("writing sequence item %d: %v", i+1, err)
		}
	}
	return nil
}

// writeEncapsulated writes pixel data fragments in the encapsulated format
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_A.4
func writeEncapsulated(dw *dcmWriter, syntax transferSyntax, tag DataElementTag, fragments [][]byte) error {
	order := syntax.byteOrder()
	if err := writeElementHeader(dw, syntax, tag, OBVR, UndefinedLength); err != nil {
		return err
	}
	for _, fragment := range fragments {
		length := uint32(len(fragment))
		if length%2 != 0 {
			length++
		}
		if err := dw.Item(order, length); err != nil {
			return fmt.Errorf("writing fragment: %v", err)
		}
		if err := dw.Bytes(fragment); err != nil {
			return fmt.Errorf("writing fragment: %v", err)
		}
		if uint32(len(fragment)) != length {
			if err := dw.Bytes([]byte{0}); err != nil {
				return fmt.Errorf("padding fragment: %v", err)
			}
		}
	}
	return dw.Delimiter(order, SequenceDelimitationItemTag)
}
