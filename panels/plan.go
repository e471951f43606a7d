// Copyright (c) 2026, Atelier Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package panels implements the property-editor panels for curves
// object data: the declarative widget plans the host toolkit renders,
// and the shell that owns panel construction and teardown. Panels have
// no registration side effects; the application shell constructs them
// explicitly and tears them down when done.
package panels

import "strconv"

// Kind is the widget kind of a [Plan] node, interpreted by the host
// renderer.
type Kind int32

const (
	Root Kind = iota
	Row
	Column
	Label
	Field
	Button
	Menu
	List
	ListRow
	Separator
)

var kindNames = map[Kind]string{
	Root:      "root",
	Row:       "row",
	Column:    "column",
	Label:     "label",
	Field:     "field",
	Button:    "button",
	Menu:      "menu",
	List:      "list",
	ListRow:   "list-row",
	Separator: "separator",
}

func (k Kind) String() string { return kindNames[k] }

// Plan represents how one node of a panel's widget tree should be
// configured for the current draw. A fresh plan is produced per draw;
// the host renderer diffs it against its widgets by node name.
type Plan struct {

	// Name identifies the node for diffing. Nodes added without an
	// explicit name get one derived from their kind and position.
	Name string

	// Kind is the widget kind of this node.
	Kind Kind

	// Text is the label or button text, when the kind has one.
	Text string

	// Disabled renders the node grayed out and inert.
	Disabled bool

	// Emphasized renders the node active, used for the active list
	// row.
	Emphasized bool

	// Op is the operator identifier a Button invokes.
	Op string

	// Props are the operator properties passed along with Op.
	Props map[string]any

	// Owner and Prop identify the data property a Field edits.
	Owner any
	Prop  string

	// Children are the nested nodes in draw order.
	Children []*Plan
}

// Add appends a child node of the given kind and returns it, naming it
// from its kind and position.
func (p *Plan) Add(k Kind) *Plan {
	c := &Plan{Kind: k}
	p.Children = append(p.Children, c)
	c.Name = c.Kind.String() + "-" + strconv.Itoa(len(p.Children)-1)
	return c
}

// AddAt appends a child node of the given kind with an explicit name
// and returns it.
func (p *Plan) AddAt(k Kind, name string) *Plan {
	c := p.Add(k)
	c.Name = name
	return c
}

// AddRow appends a row container.
func (p *Plan) AddRow() *Plan { return p.Add(Row) }

// AddColumn appends a column container.
func (p *Plan) AddColumn() *Plan { return p.Add(Column) }

// AddLabel appends a text label.
func (p *Plan) AddLabel(text string) *Plan {
	c := p.Add(Label)
	c.Text = text
	return c
}

// AddField appends an editor for the given property of the given
// owner.
func (p *Plan) AddField(owner any, prop, text string) *Plan {
	c := p.AddAt(Field, prop)
	c.Owner = owner
	c.Prop = prop
	c.Text = text
	return c
}

// AddButton appends an operator button with the given operator
// identifier and text.
func (p *Plan) AddButton(op, text string) *Plan {
	c := p.AddAt(Button, op)
	c.Op = op
	c.Text = text
	return c
}

// SetProp sets an operator property on a button node and returns the
// node, for chaining.
func (p *Plan) SetProp(name string, value any) *Plan {
	if p.Props == nil {
		p.Props = map[string]any{}
	}
	p.Props[name] = value
	return p
}

// AddMenu appends a reference to the named menu.
func (p *Plan) AddMenu(name string) *Plan {
	c := p.AddAt(Menu, name)
	c.Text = name
	return c
}

// AddSeparator appends a separator.
func (p *Plan) AddSeparator() *Plan { return p.Add(Separator) }

// Find returns the first node with the given name in a depth-first
// walk of the plan, or nil.
func (p *Plan) Find(name string) *Plan {
	if p.Name == name {
		return p
	}
	for _, c := range p.Children {
		if f := c.Find(name); f != nil {
			return f
		}
	}
	return nil
}
