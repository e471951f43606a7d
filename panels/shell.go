// Copyright (c) 2026, Atelier Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package panels

import (
	"slices"

	"github.com/atelier3d/sceneui/curves"
	"github.com/atelier3d/sceneui/palette"
	"github.com/atelier3d/sceneui/uilist"
)

// Context is the host state a panel draw reads: the active object, the
// render engine, the tool settings, and the per-list filter state the
// host widget persists between redraws.
type Context struct {

	// Object is the active object, or nil.
	Object *curves.Object

	// Pinned is a pinned curves data-block shown instead of the
	// active object's data, or nil.
	Pinned *curves.Curves

	// Engine is the active render engine identifier.
	Engine string

	// ToolSettings are the scene's weight-paint tool settings.
	ToolSettings *curves.ToolSettings

	// Paint is the paint-mode state read by the palette panel.
	Paint *palette.Context

	// listFilters is the persisted filter state per list name.
	listFilters map[string]*uilist.Filter
}

// Curves returns the curves data the panels operate on: the pinned
// data-block if set, the active object's data otherwise, or nil.
func (ctx *Context) Curves() *curves.Curves {
	if ctx.Pinned != nil {
		return ctx.Pinned
	}
	if ctx.Object != nil {
		return ctx.Object.Data
	}
	return nil
}

// ListFilter returns the persisted filter state for the named list,
// creating it on first use.
func (ctx *Context) ListFilter(name string) *uilist.Filter {
	if ctx.listFilters == nil {
		ctx.listFilters = map[string]*uilist.Filter{}
	}
	f, ok := ctx.listFilters[name]
	if !ok {
		f = &uilist.Filter{}
		ctx.listFilters[name] = f
	}
	return f
}

// Panel is one property-editor panel: a name, an availability
// predicate, and a draw function producing the panel's widget plan.
type Panel struct {

	// Name is the unique panel identifier.
	Name string

	// Label is the panel header text; empty hides the header.
	Label string

	// Engines are the render engines the panel is compatible with.
	// Empty means every engine.
	Engines []string

	// Available reports whether the panel applies to the given
	// context, beyond the engine compatibility check.
	Available func(ctx *Context) bool

	// Draw builds the panel's widget plan for the current state.
	Draw func(ctx *Context, p *Plan)
}

// available combines the engine compatibility check with the panel's
// own predicate.
func (pn *Panel) available(ctx *Context) bool {
	if len(pn.Engines) > 0 && !slices.Contains(pn.Engines, ctx.Engine) {
		return false
	}
	if pn.Available != nil {
		return pn.Available(ctx)
	}
	return true
}

// Shell owns a set of constructed panels. Panels are added explicitly
// and removed by [Shell.Teardown]; there is no global registry.
type Shell struct {
	panels []*Panel
}

// NewShell returns an empty shell.
func NewShell() *Shell { return &Shell{} }

// AddPanels adds the given panels to the shell, in draw order.
func (sh *Shell) AddPanels(pns ...*Panel) {
	sh.panels = append(sh.panels, pns...)
}

// Panel returns the panel with the given name, or nil.
func (sh *Shell) Panel(name string) *Panel {
	i := slices.IndexFunc(sh.panels, func(pn *Panel) bool { return pn.Name == name })
	if i < 0 {
		return nil
	}
	return sh.panels[i]
}

// Len returns the number of constructed panels.
func (sh *Shell) Len() int { return len(sh.panels) }

// Draw produces the plans of every available panel for the given
// context, in the order the panels were added.
func (sh *Shell) Draw(ctx *Context) []*Plan {
	plans := make([]*Plan, 0, len(sh.panels))
	for _, pn := range sh.panels {
		if !pn.available(ctx) {
			continue
		}
		p := &Plan{Name: pn.Name, Kind: Root, Text: pn.Label}
		pn.Draw(ctx, p)
		plans = append(plans, p)
	}
	return plans
}

// Teardown releases every panel. The shell can be reused by adding
// panels again.
func (sh *Shell) Teardown() {
	sh.panels = nil
}
