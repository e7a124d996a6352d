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

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

var defaultCharacterRepertoire encoding.Encoding = charmap.Windows1252

// charsetLabels maps the single-byte defined terms of Specific Character Set to x/net charset
// labels. Each term is also valid with ISO 2022 code extensions ("ISO 2022 IR 100"); extensions
// are not switched within a value.
// http://dicom.nema.org/medical/dicom/current/output/chtml/part02/sect_D.6.2.html
var charsetLabels = map[string]string{
	"100": "iso-ir-100", // Latin-1
	"101": "iso-ir-101", // Latin-2
	"109": "iso-ir-109", // Latin-3
	"110": "iso-ir-110", // Latin-4
	"144": "iso-ir-144", // Cyrillic
	"127": "iso-ir-127", // Arabic
	"126": "iso-ir-126", // Greek
	"138": "iso-ir-138", // Hebrew
	"148": "iso-ir-148", // Latin-5
	"13":  "shift-jis",
	"166": "tis-620",
}

// lookupLabelByTerm maps every defined term to its charset label
var lookupLabelByTerm = func() map[string]string {
	m := map[string]string{
		"ISO_IR 192":      "utf-8",
		"GB18030":         "gb18030",
		"GBK":             "gbk",
		"ISO 2022 IR 6":   "us-ascii",
		"ISO 2022 IR 87":  "iso-2022-jp",
		"ISO 2022 IR 159": "iso-2022-jp",
		"ISO 2022 IR 149": "iso-ir-149",
	}
	for ir, label := range charsetLabels {
		m["ISO_IR "+ir] = label
		m["ISO 2022 IR "+ir] = label
	}
	return m
}()

func lookupEncoding(term string) (encoding.Encoding, error) {
	label, ok := lookupLabelByTerm[term]
	if !ok {
		return nil, fmt.Errorf("specific character set defined term not found: %v", term)
	}

	coding, _ := charset.Lookup(label)
	if coding == nil {
		return nil, fmt.Errorf("missing encoding for label %q", label)
	}
	return coding, nil
}

// encodingForTerms selects the encoding of the first non-empty defined term. An empty first value
// stands for the default repertoire.
func encodingForTerms(terms []string) (encoding.Encoding, error) {
	for _, term := range terms {
		if term != "" {
			return lookupEncoding(term)
		}
	}
	return defaultCharacterRepertoire, nil
}

// isCharacterSetVR is true for the VRs affected by the Specific Character Set
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_6.1.2.3
func isCharacterSetVR(vr *VR) bool {
	switch vr {
	case SHVR, LOVR, STVR, LTVR, PNVR, UCVR, UTVR:
		return true
	}
	return false
}

func decodeText(enc encoding.Encoding, vr *VR, b []byte) (string, error) {
	if enc == nil || !isCharacterSetVR(vr) {
		return string(b), nil
	}
	decoded, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("decoding %v text: %v", vr, err)
	}
	return string(decoded), nil
}

func encodeText(enc encoding.Encoding, vr *VR, s string) ([]byte, error) {
	if enc == nil || !isCharacterSetVR(vr) {
		return []byte(s), nil
	}
	encoded, err := enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("encoding %v text %q: %v", vr, s, err)
	}
	return encoded, nil
}
