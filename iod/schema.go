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
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/GoogleCloudPlatform/go-dicom-iod/dicom"
	"gopkg.in/yaml.v3"
)

//go:embed schema.yaml
var defaultSchemaYAML []byte

var defaultSchema = mustLoadSchema(defaultSchemaYAML)

// DefaultSchema returns the functional groups and modules of the standard
func DefaultSchema() *Schema {
	return defaultSchema
}

func mustLoadSchema(b []byte) *Schema {
	s, err := LoadSchema(bytes.NewReader(b))
	if err != nil {
		panic(fmt.Sprintf("loading embedded schema: %v", err))
	}
	return s
}

// AttributeDef describes one attribute of a module or functional group
type AttributeDef struct {
	Tag     dicom.DataElementTag
	Keyword string
	Type    Obligation

	// VM is the fixed number of values of the attribute, 0 when the number of values may vary
	VM int

	// Sequence is true for attributes with VR SQ
	Sequence bool
}

func (a AttributeDef) hasFixedVM() bool {
	return a.VM > 0
}

// Module is a named list of attributes
type Module struct {
	Name string

	// Table is the table of PS3.3 defining the attributes
	Table string

	Attributes []AttributeDef
	byKeyword  map[string]int
}

// Attribute returns the definition of the attribute with the keyword
func (m *Module) Attribute(keyword string) (AttributeDef, error) {
	i, ok := m.byKeyword[keyword]
	if !ok {
		return AttributeDef{}, fmt.Errorf("%v in %v: %w", keyword, m.Name, ErrUnknownKeyword)
	}
	return m.Attributes[i], nil
}

// Tags returns the tags of the attributes in the order of their definition
func (m *Module) Tags() []dicom.DataElementTag {
	tags := make([]dicom.DataElementTag, len(m.Attributes))
	for i, a := range m.Attributes {
		tags[i] = a.Tag
	}
	return tags
}

// FunctionalGroup is a functional group macro: a sequence whose items hold the attributes of
// the group
type FunctionalGroup struct {
	Module
	SequenceTag dicom.DataElementTag

	// Multiple is true when the sequence may contain more than one item
	Multiple bool
}

// DefinedTags returns the tags the group adds to a functional groups sequence item
func (g *FunctionalGroup) DefinedTags() []dicom.DataElementTag {
	return []dicom.DataElementTag{g.SequenceTag}
}

// NestedTags returns the tags allowed in the items of the group sequence
func (g *FunctionalGroup) NestedTags() []dicom.DataElementTag {
	return g.Tags()
}

// CanHaveMultipleItems is true when the group sequence may contain more than one item
func (g *FunctionalGroup) CanHaveMultipleItems() bool {
	return g.Multiple
}

func (g *FunctionalGroup) String() string {
	return g.Name
}

// View returns the group in a functional groups sequence item
func (g *FunctionalGroup) View(parent *dicom.DataSet) Macro {
	return Macro{Group: g, Parent: parent}
}

// SOPClass lists the functional groups used by the SOP class
type SOPClass struct {
	UID    string
	Name   string
	Groups []*FunctionalGroup
}

// GroupBySequence returns the group of the SOP class with the sequence tag
func (c *SOPClass) GroupBySequence(tag dicom.DataElementTag) (*FunctionalGroup, bool) {
	for _, g := range c.Groups {
		if g.SequenceTag == tag {
			return g, true
		}
	}
	return nil, false
}

// Schema is a set of modules, functional groups and their usage by SOP class
type Schema struct {
	Modules []*Module
	Groups  []*FunctionalGroup

	modules    map[string]*Module
	groups     map[string]*FunctionalGroup
	sequences  map[dicom.DataElementTag]*FunctionalGroup
	sopClasses map[string]*SOPClass
}

// Module returns the module with the name
func (s *Schema) Module(name string) (*Module, bool) {
	m, ok := s.modules[name]
	return m, ok
}

// Group returns the functional group with the name
func (s *Schema) Group(name string) (*FunctionalGroup, bool) {
	g, ok := s.groups[name]
	return g, ok
}

// GroupBySequence returns the functional group with the sequence tag. Variants of a macro share
// their sequence, the first one defined is returned.
func (s *Schema) GroupBySequence(tag dicom.DataElementTag) (*FunctionalGroup, bool) {
	g, ok := s.sequences[tag]
	return g, ok
}

// SOPClass returns the functional group usage of the SOP class. An empty UID returns the usage
// applying to SOP classes without their own.
func (s *Schema) SOPClass(uid string) (*SOPClass, bool) {
	c, ok := s.sopClasses[uid]
	return c, ok
}

// SOPClasses returns the SOP classes of the schema sorted by UID, the default usage first
func (s *Schema) SOPClasses() []*SOPClass {
	classes := make([]*SOPClass, 0, len(s.sopClasses))
	for _, c := range s.sopClasses {
		classes = append(classes, c)
	}
	sort.Slice(classes, func(i, j int) bool {
		return classes[i].UID < classes[j].UID
	})
	return classes
}

type attributeEntry struct {
	Keyword string      `yaml:"keyword"`
	Type    *Obligation `yaml:"type"`
	VM      *int        `yaml:"vm"`
}

type moduleEntry struct {
	Name       string           `yaml:"name"`
	Table      string           `yaml:"table"`
	Attributes []attributeEntry `yaml:"attributes"`
}

type groupEntry struct {
	moduleEntry `yaml:",inline"`
	Sequence    string `yaml:"sequence"`
	Multiple    bool   `yaml:"multiple"`
}

type sopClassEntry struct {
	UID    string   `yaml:"uid"`
	Name   string   `yaml:"name"`
	Groups []string `yaml:"groups"`
}

type schemaFile struct {
	Modules    []moduleEntry   `yaml:"modules"`
	Groups     []groupEntry    `yaml:"groups"`
	SOPClasses []sopClassEntry `yaml:"sopClasses"`
}

// LoadSchema reads a schema in YAML. Keywords are resolved with the data dictionary and every
// schema must define the usage of the empty SOP class UID.
func LoadSchema(r io.Reader) (*Schema, error) {
	var f schemaFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decoding schema: %v", err)
	}

	s := &Schema{
		modules:    map[string]*Module{},
		groups:     map[string]*FunctionalGroup{},
		sequences:  map[dicom.DataElementTag]*FunctionalGroup{},
		sopClasses: map[string]*SOPClass{},
	}
	for _, e := range f.Modules {
		m, err := newModule(e)
		if err != nil {
			return nil, err
		}
		if _, ok := s.modules[m.Name]; ok {
			return nil, fmt.Errorf("module %v defined twice", m.Name)
		}
		s.modules[m.Name] = m
		s.Modules = append(s.Modules, m)
	}
	for _, e := range f.Groups {
		g, err := newGroup(e)
		if err != nil {
			return nil, err
		}
		if _, ok := s.groups[g.Name]; ok {
			return nil, fmt.Errorf("functional group %v defined twice", g.Name)
		}
		s.groups[g.Name] = g
		if _, ok := s.sequences[g.SequenceTag]; !ok {
			s.sequences[g.SequenceTag] = g
		}
		s.Groups = append(s.Groups, g)
	}
	for _, e := range f.SOPClasses {
		if e.UID != "" && !dicom.IsValidUID(e.UID) {
			return nil, fmt.Errorf("SOP class %q: invalid UID", e.UID)
		}
		if _, ok := s.sopClasses[e.UID]; ok {
			return nil, fmt.Errorf("SOP class %q listed twice", e.UID)
		}
		c := &SOPClass{UID: e.UID, Name: e.Name}
		seen := map[dicom.DataElementTag]*FunctionalGroup{}
		for _, name := range e.Groups {
			g, ok := s.groups[name]
			if !ok {
				return nil, fmt.Errorf("SOP class %q: unknown functional group %v", e.UID, name)
			}
			if other, ok := seen[g.SequenceTag]; ok {
				return nil, fmt.Errorf("SOP class %q: functional groups %v and %v share %v", e.UID, other.Name, g.Name, g.SequenceTag)
			}
			seen[g.SequenceTag] = g
			c.Groups = append(c.Groups, g)
		}
		s.sopClasses[e.UID] = c
	}
	if _, ok := s.sopClasses[""]; !ok {
		return nil, fmt.Errorf("schema has no default functional group usage")
	}
	return s, nil
}

func newModule(e moduleEntry) (*Module, error) {
	if e.Name == "" {
		return nil, fmt.Errorf("module without name")
	}
	m := &Module{Name: e.Name, Table: e.Table, byKeyword: map[string]int{}}
	for _, a := range e.Attributes {
		def, err := newAttributeDef(a)
		if err != nil {
			return nil, fmt.Errorf("%v: %v", e.Name, err)
		}
		if _, ok := m.byKeyword[def.Keyword]; ok {
			return nil, fmt.Errorf("%v: %v listed twice", e.Name, def.Keyword)
		}
		m.byKeyword[def.Keyword] = len(m.Attributes)
		m.Attributes = append(m.Attributes, def)
	}
	return m, nil
}

func newGroup(e groupEntry) (*FunctionalGroup, error) {
	m, err := newModule(e.moduleEntry)
	if err != nil {
		return nil, err
	}
	tag, ok := dicom.LookupTagByKeyword(e.Sequence)
	if !ok {
		return nil, fmt.Errorf("%v: sequence %v: %w", e.Name, e.Sequence, ErrUnknownKeyword)
	}
	if tag.DictionaryVR() != dicom.SQVR {
		return nil, fmt.Errorf("%v: %v is not a sequence", e.Name, e.Sequence)
	}
	return &FunctionalGroup{Module: *m, SequenceTag: tag, Multiple: e.Multiple}, nil
}

func newAttributeDef(e attributeEntry) (AttributeDef, error) {
	tag, ok := dicom.LookupTagByKeyword(e.Keyword)
	if !ok {
		return AttributeDef{}, fmt.Errorf("%q: %w", e.Keyword, ErrUnknownKeyword)
	}
	if e.Type == nil {
		return AttributeDef{}, fmt.Errorf("%v: missing type", e.Keyword)
	}
	info, _ := dicom.LookupTag(tag)
	def := AttributeDef{
		Tag:      tag,
		Keyword:  e.Keyword,
		Type:     *e.Type,
		VM:       fixedVM(info.VM),
		Sequence: info.VR == dicom.SQVR,
	}
	if e.VM != nil {
		if *e.VM < 0 {
			return AttributeDef{}, fmt.Errorf("%v: negative vm", e.Keyword)
		}
		def.VM = *e.VM
	}
	return def, nil
}

// fixedVM returns the number of values of a multiplicity like "3", or 0 for ranges like "1-n"
func fixedVM(vm string) int {
	n, err := strconv.Atoi(vm)
	if err != nil {
		return 0
	}
	return n
}
