// Copyright (c) 2026, Atelier Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"
	"sync"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Format is a supported image file format.
type Format int32

const (
	Unknown Format = iota
	PNG
	JPEG
	GIF
	TIFF
	BMP
	WebP
)

var formatNames = map[Format]string{
	Unknown: "unknown",
	PNG:     "PNG",
	JPEG:    "JPEG",
	GIF:     "GIF",
	TIFF:    "TIFF",
	BMP:     "BMP",
	WebP:    "WebP",
}

func (f Format) String() string { return formatNames[f] }

// ExtToFormat returns a [Format] based on a filename extension, which
// can start with a . or not.
func ExtToFormat(ext string) (Format, error) {
	if len(ext) == 0 {
		return Unknown, errors.New("ExtToFormat: ext is empty")
	}
	if ext[0] == '.' {
		ext = ext[1:]
	}
	switch strings.ToLower(ext) {
	case "png":
		return PNG, nil
	case "jpg", "jpeg":
		return JPEG, nil
	case "gif":
		return GIF, nil
	case "tif", "tiff":
		return TIFF, nil
	case "bmp":
		return BMP, nil
	case "webp":
		return WebP, nil
	}
	return Unknown, fmt.Errorf("ExtToFormat: extension %q not recognized", ext)
}

// ThumbnailSize is the maximum extent of generated thumbnails in
// pixels.
const ThumbnailSize = 128

// Thumbnails decodes and downscales browser preview images, caching
// them by filename. The cache is safe for concurrent use.
type Thumbnails struct {
	mu    sync.Mutex
	cache map[string]image.Image
}

// NewThumbnails returns an empty thumbnail cache.
func NewThumbnails() *Thumbnails {
	return &Thumbnails{cache: map[string]image.Image{}}
}

// Get returns the thumbnail for the given image file, generating and
// caching it on first use.
func (th *Thumbnails) Get(filename string) (image.Image, error) {
	th.mu.Lock()
	img, ok := th.cache[filename]
	th.mu.Unlock()
	if ok {
		return img, nil
	}
	img, err := makeThumbnail(filename)
	if err != nil {
		return nil, err
	}
	th.mu.Lock()
	th.cache[filename] = img
	th.mu.Unlock()
	return img, nil
}

// Invalidate drops the cached thumbnail for the given file, if any.
func (th *Thumbnails) Invalidate(filename string) {
	th.mu.Lock()
	delete(th.cache, filename)
	th.mu.Unlock()
}

// makeThumbnail decodes the given image file and scales it to fit
// within [ThumbnailSize], preserving the aspect ratio. Images already
// small enough are returned as decoded.
func makeThumbnail(filename string) (image.Image, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("thumbnail %s: %w", filename, err)
	}
	b := src.Bounds()
	if b.Dx() <= ThumbnailSize && b.Dy() <= ThumbnailSize {
		return src, nil
	}
	w, h := b.Dx(), b.Dy()
	if w >= h {
		h = h * ThumbnailSize / w
		w = ThumbnailSize
	} else {
		w = w * ThumbnailSize / h
		h = ThumbnailSize
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst, nil
}
