// Copyright (c) 2026 Treesel authors
// All rights reserved. Use of this source code is governed by an
// MIT-style license that can be found in the LICENSE file.

// Package explorer extracts the selected file paths from whichever
// file-explorer UI is active in the editor. Each supported explorer plugin
// gets one adapter; a resolver dispatches on the focused buffer and
// normalizes whatever the adapter returns.
package explorer

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"treesel/internal/host"
	"treesel/internal/pathutil"
)

// Explorer is one selection source. Matches must be cheap (no host round
// trips); Selection may call into the host as needed.
type Explorer interface {
	Name() string
	Matches(buf host.BufferInfo) bool
	Selection(ctx context.Context, h host.Host) ([]string, error)
}

// Selection is the result of one query.
type Selection struct {
	// Source is the name of the explorer that produced the paths.
	Source string
	// Paths is non-empty, absolute and deduplicated, in explorer order.
	Paths []string
}

// Options tune result normalization.
type Options struct {
	// ResolveSymlinks replaces each path with its symlink-resolved form.
	ResolveSymlinks bool
}

// Resolver dispatches a selection query to the first matching explorer.
type Resolver struct {
	explorers []Explorer
	opts      Options
	log       *logrus.Logger
}

// NewResolver builds a resolver over the given explorers, tried in order.
func NewResolver(log *logrus.Logger, opts Options, explorers ...Explorer) *Resolver {
	if log == nil {
		log = logrus.New()
	}
	return &Resolver{explorers: explorers, opts: opts, log: log}
}

// Resolve inspects the focused buffer, forwards to the matching explorer and
// normalizes the result. It never returns an empty path list without error.
func (r *Resolver) Resolve(ctx context.Context, h host.Host) (*Selection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	buf, err := h.CurrentBuffer()
	if err != nil {
		return nil, fmt.Errorf("inspect buffer: %w", err)
	}
	for _, e := range r.explorers {
		if !e.Matches(buf) {
			continue
		}
		r.log.Debugf("buffer %d (ft=%q) matched explorer %s", buf.Number, buf.Filetype, e.Name())
		paths, err := e.Selection(ctx, h)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.Name(), err)
		}
		sel, err := r.normalize(e.Name(), paths, h)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.Name(), err)
		}
		return sel, nil
	}
	return nil, fmt.Errorf("%w: filetype %q", ErrUnsupported, buf.Filetype)
}

func (r *Resolver) normalize(source string, paths []string, h host.Host) (*Selection, error) {
	cwd, err := h.WorkingDir()
	if err != nil {
		return nil, fmt.Errorf("working dir: %w", err)
	}
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		abs := pathutil.Absolutize(p, cwd)
		if abs == "" {
			continue
		}
		if r.opts.ResolveSymlinks {
			abs = pathutil.ResolveSymlinks(abs)
		}
		out = append(out, abs)
	}
	out = pathutil.Dedupe(out)
	if len(out) == 0 {
		return nil, ErrNoSelection
	}
	return &Selection{Source: source, Paths: out}, nil
}
