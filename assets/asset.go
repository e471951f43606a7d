// Copyright (c) 2026, Atelier Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assets

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/matchers"
)

// ImageAsset is an image file that has been, or can be, marked as an
// asset and browsed through the catalog image browser.
type ImageAsset struct {

	// File is the path of the image file on disk.
	File string

	// CatalogPath is the catalog the asset belongs to, derived from
	// the file's directory relative to the scan root.
	CatalogPath string

	// Format is the detected image format.
	Format Format

	// Marked is whether the image has been converted to an asset.
	// Unmarked images only appear in the browser when it shows
	// convertible images.
	Marked bool

	name string
}

// Label returns the user-visible asset name, the file's base name
// without extension.
func (as *ImageAsset) Label() string { return as.name }

// IsInternal reports whether the asset comes from a hidden file, which
// is never shown in the browser.
func (as *ImageAsset) IsInternal() bool { return strings.HasPrefix(filepath.Base(as.File), ".") }

// sniffLen is how many leading bytes are read to detect the file type.
// This covers every image matcher in the filetype package.
const sniffLen = 261

// DetectFormat determines the image format of the given file from its
// content, falling back to the filename extension when the content is
// unreadable or ambiguous. Non-image files return [Unknown] with a nil
// error.
func DetectFormat(filename string) (Format, error) {
	buf := make([]byte, sniffLen)
	f, err := os.Open(filename)
	if err != nil {
		return Unknown, err
	}
	n, _ := f.Read(buf)
	f.Close()
	kind, _ := filetype.Match(buf[:n])
	switch kind {
	case matchers.TypePng:
		return PNG, nil
	case matchers.TypeJpeg:
		return JPEG, nil
	case matchers.TypeGif:
		return GIF, nil
	case matchers.TypeTiff:
		return TIFF, nil
	case matchers.TypeBmp:
		return BMP, nil
	case matchers.TypeWebp:
		return WebP, nil
	}
	if fm, err := ExtToFormat(filepath.Ext(filename)); err == nil {
		return fm, nil
	}
	return Unknown, nil
}

// ScanOptions control a directory scan.
type ScanOptions struct {

	// AutoConvert marks every discovered image as an asset,
	// mirroring the browser's auto-convert toggle.
	AutoConvert bool
}

// Scan walks the given root directory and returns the image assets
// found in it, together with the catalogs derived from the directory
// structure. Hidden directories are skipped; hidden image files are
// kept but stay internal to the browser.
func Scan(root string, opts ScanOptions) ([]*ImageAsset, *Catalogs, error) {
	var found []*ImageAsset
	cats := &Catalogs{}
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		fm, err := DetectFormat(p)
		if err != nil || fm == Unknown {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		catalogPath := filepath.ToSlash(filepath.Dir(rel))
		if catalogPath == "." {
			catalogPath = ""
		} else {
			cats.Ensure(catalogPath)
		}
		base := filepath.Base(p)
		found = append(found, &ImageAsset{
			File:        p,
			CatalogPath: catalogPath,
			Format:      fm,
			Marked:      opts.AutoConvert,
			name:        strings.TrimSuffix(base, filepath.Ext(base)),
		})
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return found, cats, nil
}
