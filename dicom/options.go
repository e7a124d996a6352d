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

// Transform describes a transformation applied to a DataElement
type Transform func(*DataElement) (*DataElement, error)

// ParseOption configures the behavior of the Parse function.
type ParseOption struct {
	transform Transform
}

// WithTransform returns a ParseOption applying t to every element read. Elements nested in a
// sequence are transformed before the sequence (post-order). A nil element returned by t is left
// out of the data set; an error stops the parse.
func WithTransform(t Transform) ParseOption {
	return ParseOption{t}
}

// dropIf returns a ParseOption leaving out the elements matching drop
func dropIf(drop func(*DataElement) bool) ParseOption {
	return WithTransform(func(element *DataElement) (*DataElement, error) {
		if drop(element) {
			return nil, nil
		}
		return element, nil
	})
}

// DropGroupLengths leaves out group length elements (gggg,0000)
var DropGroupLengths = dropIf(func(e *DataElement) bool { return e.Tag.IsGroupLength() })

// SkipPixelData leaves out (7FE0,0008), (7FE0,0009) and (7FE0,0010)
var SkipPixelData = dropIf(func(e *DataElement) bool {
	switch e.Tag {
	case PixelDataTag, FloatPixelDataTag, DoubleFloatPixelDataTag:
		return true
	}
	return false
})

// DropPrivateElements leaves out the elements of odd groups
var DropPrivateElements = dropIf(func(e *DataElement) bool { return e.Tag.IsPrivate() })

// DropElements leaves out the elements with the given tags at any nesting level
func DropElements(tags ...DataElementTag) ParseOption {
	drop := make(map[DataElementTag]bool, len(tags))
	for _, t := range tags {
		drop[t] = true
	}
	return dropIf(func(e *DataElement) bool { return drop[e.Tag] })
}

// DropBasicOffsetTable removes the first fragment of encapsulated pixel data, which holds the
// offsets of the frames (PS3.5 A.4)
var DropBasicOffsetTable = WithTransform(func(element *DataElement) (*DataElement, error) {
	if fragments, ok := element.ValueField.([][]byte); ok && element.Tag == PixelDataTag && len(fragments) > 0 {
		element.ValueField = fragments[1:]
	}
	return element, nil
})
