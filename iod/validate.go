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

package iod

import (
	"fmt"
	"strings"

	"github.com/GoogleCloudPlatform/go-dicom-iod/dicom"
)

// Issue is a problem found by Validate
type Issue struct {
	// Frame is the frame of the per-frame item with the problem, 0 for the shared item and the top
	// level
	Frame int

	// Group is the functional group or module with the problem
	Group string

	// Keyword is the attribute with the problem, empty for problems of the group
	Keyword string

	Message string

	// Critical issues make the data set unusable
	Critical bool
}

func (i Issue) String() string {
	var b strings.Builder
	if i.Frame > 0 {
		fmt.Fprintf(&b, "frame %d: ", i.Frame)
	}
	b.WriteString(i.Group)
	if i.Keyword != "" {
		b.WriteString(".")
		b.WriteString(i.Keyword)
	}
	b.WriteString(": ")
	b.WriteString(i.Message)
	return b.String()
}

// ValidationResult holds the issues found by Validate
type ValidationResult struct {
	Errors   []Issue
	Warnings []Issue
}

// Valid is true when no errors were found
func (r ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasCriticalErrors is true when an error is critical
func (r ValidationResult) HasCriticalErrors() bool {
	for _, e := range r.Errors {
		if e.Critical {
			return true
		}
	}
	return false
}

func (r *ValidationResult) addError(i Issue) {
	r.Errors = append(r.Errors, i)
}

func (r *ValidationResult) addWarning(i Issue) {
	r.Warnings = append(r.Warnings, i)
}

// checkAttribute adds the issues of one attribute: absent or empty Type 1 and wrong multiplicity
// of Type 1 attributes are critical, absent Type 2 and wrong multiplicity of Type 2 attributes are
// errors, and wrong multiplicity of conditional or optional attributes is a warning.
func (r *ValidationResult) checkAttribute(ds *dicom.DataSet, def AttributeDef, at Issue) {
	at.Keyword = def.Keyword
	e := ds.Element(def.Tag)
	switch {
	case e.IsEmpty():
		switch def.Type {
		case Type1:
			at.Message, at.Critical = "Type 1 attribute is absent", true
			r.addError(at)
		case Type2:
			at.Message = "Type 2 attribute is absent"
			r.addError(at)
		}
	case e.Count() == 0:
		if def.Type == Type1 {
			at.Message, at.Critical = "Type 1 attribute has no value", true
			r.addError(at)
		}
	case def.hasFixedVM() && !def.Sequence && e.Count() != def.VM:
		at.Message = fmt.Sprintf("%d values, want %d", e.Count(), def.VM)
		switch def.Type {
		case Type1:
			at.Critical = true
			r.addError(at)
		case Type2:
			r.addError(at)
		default:
			r.addWarning(at)
		}
	}
}

// Validate checks the Multi-frame Functional Groups module of ds and the functional groups in its
// shared and per-frame items against the groups of the SOP class. An empty sopClassUID uses the
// SOP Class UID of ds.
func (r *Registry) Validate(ds *dicom.DataSet, sopClassUID string) ValidationResult {
	if sopClassUID == "" {
		sopClassUID = ds.GetString(dicom.SOPClassUIDTag, 0, "")
	}
	var result ValidationResult

	at := Issue{Group: multiFrameModule.Name}
	for _, def := range multiFrameModule.Attributes {
		result.checkAttribute(ds, def, at)
	}
	mf := NewMultiFrameFunctionalGroupsModule(ds)
	perFrame := mf.PerFrameFunctionalGroups()
	if n, ok := mf.NumberOfFrames(); ok && len(perFrame) > 0 && int(n) != len(perFrame) {
		at.Keyword = perFrameFunctionalGroupsDef.Keyword
		at.Message = fmt.Sprintf("%d items for %d frames", len(perFrame), n)
		result.addError(at)
	}
	if n := ds.Count(sharedFunctionalGroupsDef.Tag); n > 1 {
		at.Keyword = sharedFunctionalGroupsDef.Keyword
		at.Message = fmt.Sprintf("%d items, want 1", n)
		result.addError(at)
	}

	applicable := map[*FunctionalGroup]bool{}
	for _, g := range r.ApplicableGroups(sopClassUID) {
		applicable[g] = true
	}
	if shared, ok := mf.SharedFunctionalGroups(); ok {
		r.validateItem(&result, shared, 0, sopClassUID, applicable)
	}
	for i, item := range perFrame {
		r.validateItem(&result, item, i+1, sopClassUID, applicable)
	}
	return result
}

func (r *Registry) validateItem(result *ValidationResult, item *dicom.DataSet, frame int, sopClassUID string, applicable map[*FunctionalGroup]bool) {
	for _, tag := range item.SortedTags() {
		g, ok := r.groupBySequence(sopClassUID, tag)
		if !ok {
			if !tag.IsPrivate() {
				name := tag.Keyword()
				if name == "" {
					name = tag.String()
				}
				result.addWarning(Issue{Frame: frame, Group: name, Message: "not a functional group"})
			}
			continue
		}
		at := Issue{Frame: frame, Group: g.Name}
		if !applicable[g] {
			at.Message = "not used by the SOP class"
			result.addWarning(at)
		}
		items := g.View(item).Items()
		if len(items) > 1 && !g.CanHaveMultipleItems() {
			at.Message = fmt.Sprintf("%d items, want 1", len(items))
			result.addError(at)
		}
		for _, groupItem := range items {
			for _, def := range g.Attributes {
				result.checkAttribute(groupItem, def, at)
			}
		}
	}
}

// Validate checks ds with the default registry
func Validate(ds *dicom.DataSet, sopClassUID string) ValidationResult {
	return defaultRegistry.Validate(ds, sopClassUID)
}
