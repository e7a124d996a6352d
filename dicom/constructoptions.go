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

import "fmt"

type lengthMode int

const (
	keepLengthMode lengthMode = iota
	explicitLengthMode
	undefinedLengthMode
)

// ConstructOption configures how the Construct function behaves
type ConstructOption struct {
	transform Transform
	lengths   lengthMode
}

// ConstructOptionWithTransform returns a construct option that applies the given transformation to
// each DataElement before it is written to the DICOM file. For sequence DataElements, the transform
// is applied to the parent DataElement first before being applied to its children
// (i.e. the transform is applied to DataElements in pre-order). Returning a nil DataElement
// excludes the DataElement from the output.
//
// Transforms receive a copy of the DataSet given to Construct.
func ConstructOptionWithTransform(transform Transform) ConstructOption {
	return ConstructOption{transform: transform}
}

// ExplicitLengths ensures all sequences and sequence items are written with explicit length. The
// last of ExplicitLengths and UndefinedLengths given wins.
var ExplicitLengths = ConstructOption{lengths: explicitLengthMode}

// UndefinedLengths ensures all sequences and sequence items are written with undefined length.
// This is the default.
var UndefinedLengths = ConstructOption{lengths: undefinedLengthMode}

func applyConstructOptions(dataSet *DataSet, opts []ConstructOption) (*DataSet, writeConfig, error) {
	var cfg writeConfig
	var transforms []Transform
	for _, opt := range opts {
		switch opt.lengths {
		case explicitLengthMode:
			cfg.explicitLengths = true
		case undefinedLengthMode:
			cfg.explicitLengths = false
		}
		if opt.transform != nil {
			transforms = append(transforms, opt.transform)
		}
	}

	ds := dataSet
	if len(transforms) > 0 {
		ds = dataSet.Copy()
		if err := transformPreOrder(ds, transforms); err != nil {
			return nil, cfg, err
		}
	}
	return ds, cfg, nil
}

func transformPreOrder(ds *DataSet, transforms []Transform) error {
	for _, tag := range ds.SortedTags() {
		elem := ds.Elements[tag]
		var err error
		for i, t := range transforms {
			if elem, err = t(elem); err != nil {
				return fmt.Errorf("applying option %v to %v: %v", i, tag, err)
			}
			if elem == nil {
				break
			}
		}
		delete(ds.Elements, tag)
		if elem == nil {
			continue
		}
		ds.Elements[elem.Tag] = elem

		if seq, ok := elem.ValueField.(*Sequence); ok {
			for _, item := range seq.Items {
				if err := transformPreOrder(item, transforms); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
