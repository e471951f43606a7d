// Copyright (c) 2026, Atelier Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package assets implements the data model behind the asset catalog
// image browser: catalogs of image assets discovered on disk, grid
// paging over the filtered assets, and thumbnail generation. The host
// widget renders the grid; this package only decides what it contains.
package assets

import (
	"path"
	"slices"
	"strings"
)

// Catalog is a named grouping of assets, identified by a slash
// separated path such as "materials/fabric". Catalogs nest by path
// only; there is no separate tree structure.
type Catalog struct {

	// Path is the full catalog path, using / separators.
	Path string
}

// Label returns the last path element, the catalog's display name.
func (ct *Catalog) Label() string { return path.Base(ct.Path) }

// Parent returns the parent catalog path, or "" for a top-level
// catalog.
func (ct *Catalog) Parent() string {
	p := path.Dir(ct.Path)
	if p == "." || p == "/" {
		return ""
	}
	return p
}

// Contains reports whether the catalog contains the given catalog path,
// itself included.
func (ct *Catalog) Contains(catalogPath string) bool {
	return ct.Path == catalogPath || strings.HasPrefix(catalogPath, ct.Path+"/")
}

// Catalogs is the ordered set of catalogs known to a browser.
type Catalogs struct {
	list []*Catalog
}

// All returns the catalogs sorted by path.
func (cts *Catalogs) All() []*Catalog { return cts.list }

// Get returns the catalog with the given path, or nil.
func (cts *Catalogs) Get(catalogPath string) *Catalog {
	i := slices.IndexFunc(cts.list, func(ct *Catalog) bool { return ct.Path == catalogPath })
	if i < 0 {
		return nil
	}
	return cts.list[i]
}

// Ensure returns the catalog with the given path, creating it and any
// missing parents first. Empty and "." paths return nil.
func (cts *Catalogs) Ensure(catalogPath string) *Catalog {
	catalogPath = strings.Trim(path.Clean("/"+catalogPath), "/")
	if catalogPath == "" || catalogPath == "." {
		return nil
	}
	if ct := cts.Get(catalogPath); ct != nil {
		return ct
	}
	if parent := path.Dir(catalogPath); parent != "." {
		cts.Ensure(parent)
	}
	ct := &Catalog{Path: catalogPath}
	i, _ := slices.BinarySearchFunc(cts.list, ct, func(a, b *Catalog) int {
		return strings.Compare(a.Path, b.Path)
	})
	cts.list = slices.Insert(cts.list, i, ct)
	return ct
}

// Len returns the number of catalogs.
func (cts *Catalogs) Len() int { return len(cts.list) }
