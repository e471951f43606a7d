// Copyright (c) 2026, Atelier Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assets

import (
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// Watcher rescans a browser's root directory when files are created,
// removed, or renamed under it, so that the grid follows the contents
// on disk. Every non-hidden directory under the root is watched, and
// the watch set is refreshed after each rescan so new catalog
// directories are picked up.
type Watcher struct {

	// Root is the watched directory.
	Root string

	// Opts are the scan options used for rescans.
	Opts ScanOptions

	watcher *fsnotify.Watcher
	done    chan bool
}

// Watch starts watching the given root directory, calling update with
// fresh scan results after every relevant filesystem event. Stop the
// watcher with [Watcher.Close].
func Watch(root string, opts ScanOptions, update func([]*ImageAsset, *Catalogs)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{Root: root, Opts: opts, watcher: fw, done: make(chan bool)}
	if err := w.watchDirs(); err != nil {
		fw.Close()
		return nil, err
	}
	go func() {
		for {
			select {
			case <-w.done:
				return
			case event := <-fw.Events:
				switch {
				case event.Op&fsnotify.Create == fsnotify.Create ||
					event.Op&fsnotify.Remove == fsnotify.Remove ||
					event.Op&fsnotify.Rename == fsnotify.Rename:
					found, cats, err := Scan(root, opts)
					if err != nil {
						slog.Error("assets.Watcher rescan", "root", root, "err", err)
						continue
					}
					if err := w.watchDirs(); err != nil {
						slog.Error("assets.Watcher watch refresh", "root", root, "err", err)
					}
					update(found, cats)
				}
			case err := <-fw.Errors:
				if err != nil {
					slog.Error("assets.Watcher", "root", root, "err", err)
				}
			}
		}
	}()
	return w, nil
}

// watchDirs adds a watch for the root and every non-hidden directory
// under it, mirroring the directory skipping of [Scan]. Already-watched
// directories are re-added, which fsnotify treats as a no-op; deleted
// ones are dropped by fsnotify itself.
func (w *Watcher) watchDirs() error {
	return filepath.WalkDir(w.Root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if p != w.Root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		return w.watcher.Add(p)
	})
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}
