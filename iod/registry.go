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

	"github.com/GoogleCloudPlatform/go-dicom-iod/dicom"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/exp/maps"
)

// DefaultCacheSize is the number of SOP classes whose tag maps are kept by DefaultRegistry
const DefaultCacheSize = 32

// Registry answers which functional groups apply to a SOP class and which group defines a tag.
// It is safe for concurrent use.
type Registry struct {
	schema *Schema
	maps   *lru.Cache[string, map[dicom.DataElementTag]*FunctionalGroup]
}

// NewRegistry returns a registry of the schema caching the tag maps of cacheSize SOP classes
func NewRegistry(schema *Schema, cacheSize int) (*Registry, error) {
	cache, err := lru.New[string, map[dicom.DataElementTag]*FunctionalGroup](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("creating tag map cache: %v", err)
	}
	return &Registry{schema: schema, maps: cache}, nil
}

var defaultRegistry = mustRegistry(NewRegistry(DefaultSchema(), DefaultCacheSize))

func mustRegistry(r *Registry, err error) *Registry {
	if err != nil {
		panic(err)
	}
	return r
}

// DefaultRegistry returns the registry of DefaultSchema
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Schema returns the schema of the registry
func (r *Registry) Schema() *Schema {
	return r.schema
}

// sopClass returns the usage of the SOP class, the default usage for unknown classes
func (r *Registry) sopClass(uid string) *SOPClass {
	if c, ok := r.schema.SOPClass(uid); ok {
		return c
	}
	c, _ := r.schema.SOPClass("")
	return c
}

// ApplicableGroups returns the functional groups of the SOP class, most specific first
func (r *Registry) ApplicableGroups(sopClassUID string) []*FunctionalGroup {
	return r.sopClass(sopClassUID).Groups
}

func (r *Registry) groupMap(sopClassUID string) map[dicom.DataElementTag]*FunctionalGroup {
	c := r.sopClass(sopClassUID)
	if m, ok := r.maps.Get(c.UID); ok {
		return m
	}
	m := map[dicom.DataElementTag]*FunctionalGroup{}
	for _, g := range c.Groups {
		// Attributes of groups with several items cannot be mapped to a single value.
		if g.CanHaveMultipleItems() {
			continue
		}
		for _, tag := range g.NestedTags() {
			if _, ok := m[tag]; !ok {
				m[tag] = g
			}
		}
	}
	r.maps.Add(c.UID, m)
	return m
}

// GroupMap returns the functional group defining each tag that can be nested in a single item
// group of the SOP class. When several groups define a tag, the first applicable group wins.
func (r *Registry) GroupMap(sopClassUID string) map[dicom.DataElementTag]*FunctionalGroup {
	return maps.Clone(r.groupMap(sopClassUID))
}

// GroupForTag returns the functional group defining the tag for the SOP class
func (r *Registry) GroupForTag(sopClassUID string, tag dicom.DataElementTag) (*FunctionalGroup, bool) {
	g, ok := r.groupMap(sopClassUID)[tag]
	return g, ok
}

// groupBySequence returns the group with the sequence tag, preferring the groups of the SOP class
func (r *Registry) groupBySequence(sopClassUID string, tag dicom.DataElementTag) (*FunctionalGroup, bool) {
	if g, ok := r.sopClass(sopClassUID).GroupBySequence(tag); ok {
		return g, true
	}
	return r.schema.GroupBySequence(tag)
}

// ApplicableGroups returns the functional groups of the SOP class in the default registry
func ApplicableGroups(sopClassUID string) []*FunctionalGroup {
	return defaultRegistry.ApplicableGroups(sopClassUID)
}

// GroupMap returns the tag map of the SOP class in the default registry
func GroupMap(sopClassUID string) map[dicom.DataElementTag]*FunctionalGroup {
	return defaultRegistry.GroupMap(sopClassUID)
}

// GroupForTag returns the functional group defining the tag in the default registry
func GroupForTag(sopClassUID string, tag dicom.DataElementTag) (*FunctionalGroup, bool) {
	return defaultRegistry.GroupForTag(sopClassUID, tag)
}
