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
	"strings"
)

// Sequence models a DICOM sequence
type Sequence struct {
	Items []*DataSet
}

// NewSequence returns a sequence holding the given items in order
func NewSequence(items ...*DataSet) *Sequence {
	return &Sequence{Items: append([]*DataSet{}, items...)}
}

func (seq *Sequence) String() string {
	return seq.string(0)
}

func (seq *Sequence) string(depth int) string {
	lines := make([]string, 0, len(seq.Items))
	prefix := strings.Repeat(">", depth)
	for i, item := range seq.Items {
		lines = append(lines, fmt.Sprintf("%v%v Item #%d", prefix, ItemTag, i+1))
		if len(item.Elements) > 0 {
			lines = append(lines, item.string(depth))
		}
	}
	return strings.Join(lines, "\n")
}

func (seq *Sequence) append(dataSet *DataSet) {
	seq.Items = append(seq.Items, dataSet)
}

// Copy returns a deep copy of the sequence and its items
func (seq *Sequence) Copy() *Sequence {
	cp := &Sequence{Items: make([]*DataSet, len(seq.Items))}
	for i, item := range seq.Items {
		cp.Items[i] = item.Copy()
	}
	return cp
}
