// Copyright (c) 2026, Atelier Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curves

import (
	"fmt"
	"slices"
	"strings"
)

// DataType is the value type of a geometry attribute.
type DataType int32

const (
	Float DataType = iota
	FloatVector
	FloatColor
	Int
	Bool
	ByteColor
)

var dataTypeNames = map[DataType]string{
	Float:       "Float",
	FloatVector: "Vector",
	FloatColor:  "Color",
	Int:         "Integer",
	Bool:        "Boolean",
	ByteColor:   "Byte Color",
}

func (dt DataType) String() string { return dataTypeNames[dt] }

// Domain is the geometry element an attribute is stored on.
type Domain int32

const (
	Point Domain = iota
	Curve
)

var domainNames = map[Domain]string{
	Point: "Point",
	Curve: "Curve",
}

func (d Domain) String() string { return domainNames[d] }

// Attribute is a named data layer on a curves object. Attributes whose
// name starts with "." are system-managed and never shown in the
// attribute list.
type Attribute struct {

	// DataType is the value type stored per element.
	DataType DataType

	// Domain is the element domain the values are stored on.
	Domain Domain

	name string
}

// Label returns the user-visible attribute name.
func (at *Attribute) Label() string { return at.name }

// IsInternal reports whether the attribute is a system-managed layer
// hidden from the attribute list.
func (at *Attribute) IsInternal() bool { return strings.HasPrefix(at.name, ".") }

// StandardAttribute describes a well-known attribute that can be added
// from the add-attribute menu, at most once per object.
type StandardAttribute struct {
	Name     string
	DataType DataType
	Domain   Domain
}

// StandardAttributes are the well-known attributes offered by the
// add-attribute menu for curves.
var StandardAttributes = []StandardAttribute{
	{"radius", Float, Point},
	{"color", FloatColor, Point},
}

// Attributes is the ordered collection of attributes on a curves
// object, with the active attribute the list widget operates on.
type Attributes struct {

	// ActiveIndex is the index of the active attribute, -1 when empty.
	ActiveIndex int

	attrs []*Attribute
}

// NewAttributes returns an empty collection with no active attribute.
func NewAttributes() *Attributes {
	return &Attributes{ActiveIndex: -1}
}

// Len returns the number of attributes.
func (ats *Attributes) Len() int { return len(ats.attrs) }

// All returns the attributes in source order. The slice is owned by the
// collection and must not be modified.
func (ats *Attributes) All() []*Attribute { return ats.attrs }

// At returns the attribute at the given index, or nil if out of range.
func (ats *Attributes) At(i int) *Attribute {
	if i < 0 || i >= len(ats.attrs) {
		return nil
	}
	return ats.attrs[i]
}

// Active returns the active attribute, or nil if there is none.
func (ats *Attributes) Active() *Attribute { return ats.At(ats.ActiveIndex) }

// Get returns the attribute with the given name, or nil.
func (ats *Attributes) Get(name string) *Attribute {
	i := slices.IndexFunc(ats.attrs, func(at *Attribute) bool { return at.name == name })
	if i < 0 {
		return nil
	}
	return ats.attrs[i]
}

// Add appends a new attribute with the given name, type, and domain,
// making it active. It returns an error if the name is empty or an
// attribute with that name already exists.
func (ats *Attributes) Add(name string, dt DataType, dom Domain) (*Attribute, error) {
	if name == "" {
		return nil, fmt.Errorf("attribute name cannot be empty")
	}
	if ats.Get(name) != nil {
		return nil, fmt.Errorf("attribute %q already exists", name)
	}
	at := &Attribute{name: name, DataType: dt, Domain: dom}
	ats.attrs = append(ats.attrs, at)
	ats.ActiveIndex = len(ats.attrs) - 1
	return at, nil
}

// AddStandard adds the standard attribute with the given name. It
// returns an error if the name is not a standard attribute or it has
// already been added.
func (ats *Attributes) AddStandard(name string) (*Attribute, error) {
	for _, sa := range StandardAttributes {
		if sa.Name == name {
			return ats.Add(sa.Name, sa.DataType, sa.Domain)
		}
	}
	return nil, fmt.Errorf("%q is not a standard attribute", name)
}

// Remove deletes the attribute at the given index. System-managed
// attributes cannot be removed.
func (ats *Attributes) Remove(i int) error {
	at := ats.At(i)
	if at == nil {
		return fmt.Errorf("no attribute at index %d", i)
	}
	if at.IsInternal() {
		return fmt.Errorf("cannot remove internal attribute %q", at.name)
	}
	ats.attrs = slices.Delete(ats.attrs, i, i+1)
	if len(ats.attrs) == 0 {
		ats.ActiveIndex = -1
	} else if ats.ActiveIndex >= len(ats.attrs) {
		ats.ActiveIndex = len(ats.attrs) - 1
	}
	return nil
}

// RemoveActive deletes the active attribute.
func (ats *Attributes) RemoveActive() error { return ats.Remove(ats.ActiveIndex) }

// Convert changes the data type and domain of the attribute at the
// given index, preserving its name.
func (ats *Attributes) Convert(i int, dt DataType, dom Domain) error {
	at := ats.At(i)
	if at == nil {
		return fmt.Errorf("no attribute at index %d", i)
	}
	at.DataType = dt
	at.Domain = dom
	return nil
}

// addInternal appends a system-managed attribute, used by the host for
// selection and similar bookkeeping layers.
func (ats *Attributes) addInternal(name string, dt DataType, dom Domain) *Attribute {
	at := &Attribute{name: name, DataType: dt, Domain: dom}
	ats.attrs = append(ats.attrs, at)
	return at
}
