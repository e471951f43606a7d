// Copyright (c) 2026, Atelier Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assets

import (
	"slices"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"

	"github.com/atelier3d/sceneui/uilist"
)

// Browser is the state of the catalog image browser: the assets it
// browses, the grid dimensions, and the current catalog, filter, and
// selection. The host widget reads the visible page each redraw.
type Browser struct {

	// Assets are all known image assets, in discovery order.
	Assets []*ImageAsset

	// Catalogs are the known catalogs.
	Catalogs *Catalogs

	// Rows and Cols are the grid dimensions of one page.
	Rows int
	Cols int

	// Page is the current zero-based page of the grid.
	Page int

	// CatalogPath restricts the browser to one catalog subtree;
	// empty shows every catalog.
	CatalogPath string

	// Filter is the name filter state of the browser's list widget.
	Filter uilist.Filter

	// ShowUnmarked also shows images that have not been converted to
	// assets yet.
	ShowUnmarked bool

	// ActiveIndex is the index of the selected asset in [Browser.Assets],
	// or -1.
	ActiveIndex int

	// Thumbnails caches the preview images of the visible assets.
	Thumbnails *Thumbnails
}

// NewBrowser returns a browser over the given root directory with the
// given grid size, scanning it immediately.
func NewBrowser(root string, rows, cols int, opts ScanOptions) (*Browser, error) {
	found, cats, err := Scan(root, opts)
	if err != nil {
		return nil, err
	}
	return &Browser{
		Assets:      found,
		Catalogs:    cats,
		Rows:        rows,
		Cols:        cols,
		ActiveIndex: -1,
		Thumbnails:  NewThumbnails(),
	}, nil
}

// PageSize returns the number of grid cells per page, at least 1.
func (br *Browser) PageSize() int {
	n := br.Rows * br.Cols
	if n < 1 {
		return 1
	}
	return n
}

// visible returns the positions of the assets shown by the current
// catalog, marking, and filter state, in display order.
func (br *Browser) visible() []int {
	vis := uilist.Visible(br.Assets, br.Filter)
	return slices.DeleteFunc(vis, func(i int) bool {
		as := br.Assets[i]
		if !as.Marked && !br.ShowUnmarked {
			return true
		}
		if br.CatalogPath == "" {
			return false
		}
		ct := br.Catalogs.Get(br.CatalogPath)
		return ct == nil || !ct.Contains(as.CatalogPath)
	})
}

// PageCount returns the number of pages of the current view, at
// least 1.
func (br *Browser) PageCount() int {
	n := len(br.visible())
	if n == 0 {
		return 1
	}
	return (n + br.PageSize() - 1) / br.PageSize()
}

// VisiblePage returns the assets of the current page in display order.
// The page is clamped to the available pages first.
func (br *Browser) VisiblePage() []*ImageAsset {
	vis := br.visible()
	if br.Page < 0 {
		br.Page = 0
	}
	if last := br.PageCount() - 1; br.Page > last {
		br.Page = last
	}
	start := br.Page * br.PageSize()
	if start >= len(vis) {
		return nil
	}
	end := min(start+br.PageSize(), len(vis))
	page := make([]*ImageAsset, 0, end-start)
	for _, i := range vis[start:end] {
		page = append(page, br.Assets[i])
	}
	return page
}

// Select makes the given asset active, reporting whether it is one of
// the browser's assets.
func (br *Browser) Select(as *ImageAsset) bool {
	i := slices.Index(br.Assets, as)
	if i < 0 {
		return false
	}
	br.ActiveIndex = i
	return true
}

// Active returns the selected asset, or nil.
func (br *Browser) Active() *ImageAsset {
	if br.ActiveIndex < 0 || br.ActiveIndex >= len(br.Assets) {
		return nil
	}
	return br.Assets[br.ActiveIndex]
}

// MarkAll converts every currently visible image to an asset.
func (br *Browser) MarkAll() {
	for _, i := range br.visible() {
		br.Assets[i].Marked = true
	}
}

// SearchRank orders the browser's assets by name similarity to the
// given query, best match first, using Jaro-Winkler similarity. Unlike
// the name filter, ranking never excludes anything: it is used by the
// browser's search field to bring the closest names to the front.
func (br *Browser) SearchRank(query string) []*ImageAsset {
	jw := metrics.NewJaroWinkler()
	ranked := slices.Clone(br.Assets)
	slices.SortStableFunc(ranked, func(a, b *ImageAsset) int {
		sa := strutil.Similarity(a.Label(), query, jw)
		sb := strutil.Similarity(b.Label(), query, jw)
		switch {
		case sa > sb:
			return -1
		case sa < sb:
			return 1
		}
		return 0
	})
	return ranked
}
