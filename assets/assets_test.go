// Copyright (c) 2026, Atelier Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assets

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writePNG writes a w x h PNG image at the given path, creating parent
// directories as needed.
func writePNG(t *testing.T, filename string, w, h int) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(filename), 0750))
	f, err := os.Create(filename)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, image.NewRGBA(image.Rect(0, 0, w, h))))
}

// scanRoot builds a small asset directory and returns its path.
func scanRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writePNG(t, filepath.Join(root, "brick.png"), 4, 4)
	writePNG(t, filepath.Join(root, "materials", "fabric", "wool.png"), 4, 4)
	writePNG(t, filepath.Join(root, "materials", "stone.png"), 4, 4)
	writePNG(t, filepath.Join(root, ".hidden.png"), 4, 4)
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("not an image"), 0640))
	return root
}

func TestCatalogs(t *testing.T) {
	cts := &Catalogs{}
	assert.Nil(t, cts.Ensure(""))

	ct := cts.Ensure("materials/fabric")
	assert.Equal(t, "materials/fabric", ct.Path)
	assert.Equal(t, "fabric", ct.Label())
	assert.Equal(t, "materials", ct.Parent())
	// parents are created implicitly and the set stays sorted
	assert.Equal(t, 2, cts.Len())
	assert.Equal(t, "materials", cts.All()[0].Path)
	assert.Equal(t, "", cts.All()[0].Parent())

	// Ensure is idempotent
	assert.Same(t, ct, cts.Ensure("materials/fabric"))
	assert.Equal(t, 2, cts.Len())

	assert.True(t, ct.Contains("materials/fabric"))
	assert.True(t, cts.Get("materials").Contains("materials/fabric"))
	assert.False(t, ct.Contains("materials"))
	assert.False(t, cts.Get("materials").Contains("materialsx"))
}

func TestDetectFormat(t *testing.T) {
	root := t.TempDir()
	fn := filepath.Join(root, "img.dat") // wrong extension, sniffed by content
	writePNG(t, fn, 2, 2)
	fm, err := DetectFormat(fn)
	assert.NoError(t, err)
	assert.Equal(t, PNG, fm)

	txt := filepath.Join(root, "notes.txt")
	require.NoError(t, os.WriteFile(txt, []byte("hello"), 0640))
	fm, err = DetectFormat(txt)
	assert.NoError(t, err)
	assert.Equal(t, Unknown, fm)

	// extension fallback for unreadable content
	empty := filepath.Join(root, "empty.jpg")
	require.NoError(t, os.WriteFile(empty, nil, 0640))
	fm, err = DetectFormat(empty)
	assert.NoError(t, err)
	assert.Equal(t, JPEG, fm)

	_, err = DetectFormat(filepath.Join(root, "missing.png"))
	assert.Error(t, err)
}

func TestExtToFormat(t *testing.T) {
	fm, err := ExtToFormat(".PNG")
	assert.NoError(t, err)
	assert.Equal(t, PNG, fm)
	fm, err = ExtToFormat("jpeg")
	assert.NoError(t, err)
	assert.Equal(t, JPEG, fm)
	_, err = ExtToFormat("")
	assert.Error(t, err)
	_, err = ExtToFormat(".blend")
	assert.Error(t, err)
}

func TestScan(t *testing.T) {
	root := scanRoot(t)
	found, cats, err := Scan(root, ScanOptions{AutoConvert: true})
	require.NoError(t, err)

	names := map[string]string{}
	for _, as := range found {
		names[as.Label()] = as.CatalogPath
		assert.True(t, as.Marked)
		assert.Equal(t, PNG, as.Format)
	}
	assert.Equal(t, map[string]string{
		"brick":   "",
		"wool":    "materials/fabric",
		"stone":   "materials",
		".hidden": "",
	}, names)

	assert.NotNil(t, cats.Get("materials"))
	assert.NotNil(t, cats.Get("materials/fabric"))
	assert.Equal(t, 2, cats.Len())
}

func TestBrowserPaging(t *testing.T) {
	root := scanRoot(t)
	br, err := NewBrowser(root, 1, 2, ScanOptions{AutoConvert: true})
	require.NoError(t, err)
	assert.Equal(t, 2, br.PageSize())

	// hidden file excluded: 3 visible assets over 2 pages
	assert.Equal(t, 2, br.PageCount())
	page := br.VisiblePage()
	assert.Len(t, page, 2)

	br.Page = 1
	page = br.VisiblePage()
	assert.Len(t, page, 1)

	// page index is clamped
	br.Page = 9
	assert.Len(t, br.VisiblePage(), 1)
	assert.Equal(t, 1, br.Page)
}

func TestBrowserCatalogAndFilter(t *testing.T) {
	root := scanRoot(t)
	br, err := NewBrowser(root, 2, 2, ScanOptions{AutoConvert: true})
	require.NoError(t, err)

	br.CatalogPath = "materials"
	names := []string{}
	for _, as := range br.VisiblePage() {
		names = append(names, as.Label())
	}
	assert.ElementsMatch(t, []string{"wool", "stone"}, names)

	br.Filter.Text = "woo"
	page := br.VisiblePage()
	require.Len(t, page, 1)
	assert.Equal(t, "wool", page[0].Label())

	// unknown catalog shows nothing
	br.Filter.Text = ""
	br.CatalogPath = "props"
	assert.Empty(t, br.VisiblePage())
}

func TestBrowserUnmarked(t *testing.T) {
	root := scanRoot(t)
	br, err := NewBrowser(root, 2, 2, ScanOptions{})
	require.NoError(t, err)

	assert.Empty(t, br.VisiblePage())
	br.ShowUnmarked = true
	assert.Len(t, br.VisiblePage(), 3)

	br.MarkAll()
	br.ShowUnmarked = false
	assert.Len(t, br.VisiblePage(), 3)
}

func TestBrowserSelect(t *testing.T) {
	root := scanRoot(t)
	br, err := NewBrowser(root, 2, 2, ScanOptions{AutoConvert: true})
	require.NoError(t, err)
	assert.Nil(t, br.Active())

	as := br.VisiblePage()[0]
	assert.True(t, br.Select(as))
	assert.Same(t, as, br.Active())

	assert.False(t, br.Select(&ImageAsset{name: "stranger"}))
}

func TestBrowserSearchRank(t *testing.T) {
	br := &Browser{Assets: []*ImageAsset{
		{name: "stone"},
		{name: "wool"},
		{name: "wood"},
	}}
	ranked := br.SearchRank("wood")
	assert.Equal(t, "wood", ranked[0].Label())
	assert.Len(t, ranked, 3)
}

func TestWatchSubdirectory(t *testing.T) {
	root := t.TempDir()
	writePNG(t, filepath.Join(root, "materials", "stone.png"), 2, 2)

	updates := make(chan []*ImageAsset, 16)
	w, err := Watch(root, ScanOptions{AutoConvert: true}, func(found []*ImageAsset, cats *Catalogs) {
		updates <- found
	})
	require.NoError(t, err)
	defer w.Close()

	// a file appearing inside a catalog directory triggers a rescan
	writePNG(t, filepath.Join(root, "materials", "brick.png"), 2, 2)
	deadline := time.After(10 * time.Second)
	for {
		select {
		case found := <-updates:
			if len(found) >= 2 {
				names := []string{}
				for _, as := range found {
					names = append(names, as.Label())
				}
				assert.ElementsMatch(t, []string{"stone", "brick"}, names)
				return
			}
		case <-deadline:
			t.Fatal("no rescan after creating a file in a subdirectory")
		}
	}
}

func TestThumbnails(t *testing.T) {
	root := t.TempDir()
	fn := filepath.Join(root, "big.png")
	writePNG(t, fn, 512, 256)

	th := NewThumbnails()
	img, err := th.Get(fn)
	require.NoError(t, err)
	assert.Equal(t, 128, img.Bounds().Dx())
	assert.Equal(t, 64, img.Bounds().Dy())

	// cached result is returned as-is
	again, err := th.Get(fn)
	require.NoError(t, err)
	assert.Same(t, img.(*image.RGBA), again.(*image.RGBA))

	small := filepath.Join(root, "small.png")
	writePNG(t, small, 16, 16)
	simg, err := th.Get(small)
	require.NoError(t, err)
	assert.Equal(t, 16, simg.Bounds().Dx())

	th.Invalidate(fn)
	_, err = th.Get(filepath.Join(root, "missing.png"))
	assert.Error(t, err)
}
