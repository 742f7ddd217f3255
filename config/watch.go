// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/gogpu/ggchart"
)

// Reload is one result of re-reading a watched description.
type Reload struct {
	File File
	Err  error
}

// Watch re-reads the description at path whenever it is written, created or
// renamed into place, and delivers the result on the returned channel.
// Editors that save by replacing the file are handled by watching the
// parent directory.
//
// The channel is closed when ctx is done. Results are meant to be applied
// on the goroutine that owns the chart:
//
//	for r := range reloads {
//	    if r.Err == nil {
//	        r.File.Apply(chart)
//	    }
//	}
func Watch(ctx context.Context, path string) (<-chan Reload, error) {
	path = filepath.Clean(path)
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, err
	}

	out := make(chan Reload, 1)
	go func() {
		defer close(out)
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != path {
					continue
				}
				if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Rename) {
					continue
				}
				f, err := Load(path)
				if err != nil {
					ggchart.Logger().Warn("config: reload failed", "path", path, "err", err)
				} else {
					ggchart.Logger().Info("config: reloaded", "path", path, "series", len(f.Series))
				}
				select {
				case out <- Reload{File: f, Err: err}:
				case <-ctx.Done():
					return
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				ggchart.Logger().Warn("config: watch error", "path", path, "err", err)
			}
		}
	}()
	return out, nil
}
