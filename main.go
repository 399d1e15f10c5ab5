// Copyright (c) 2026 Treesel authors
// All rights reserved. Use of this source code is governed by an
// MIT-style license that can be found in the LICENSE file.

package main

import (
	"context"
	"flag"
	"io"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/neovim/go-client/nvim/plugin"
	"github.com/sirupsen/logrus"

	"treesel/internal/audit"
	"treesel/internal/config"
	"treesel/internal/explorer"
	"treesel/internal/host"
	"treesel/internal/inspect"
	"treesel/internal/watcher"
)

const version = "0.1.0"

// selectionResult is the in-band reply for TreeselSelection. Failures carry
// a reason string instead of raising inside the editor.
type selectionResult struct {
	Paths  []string `msgpack:"paths"`
	Source string   `msgpack:"source"`
	Error  string   `msgpack:"error"`
}

type inspectResult struct {
	Path   string `msgpack:"path"`
	Mime   string `msgpack:"mime"`
	IsText bool   `msgpack:"isText"`
	Ext    string `msgpack:"ext"`
	Size   int64  `msgpack:"size"`
	IsDir  bool   `msgpack:"isDir"`
	Error  string `msgpack:"error"`
}

type app struct {
	p     *plugin.Plugin
	cfg   atomic.Pointer[config.Config]
	log   *logrus.Logger
	audit *audit.Log
}

func (a *app) resolver() *explorer.Resolver {
	cfg := a.cfg.Load()
	explorers, err := explorer.FromNames(cfg.Explorers, cfg.Fallback)
	if err != nil {
		// config named an unknown explorer; fall back to defaults
		a.log.Warnf("bad explorers config: %v", err)
		explorers, _ = explorer.FromNames(config.DefaultConfig().Explorers, cfg.Fallback)
	}
	return explorer.NewResolver(a.log, explorer.Options{ResolveSymlinks: cfg.ResolveSymlinks}, explorers...)
}

// handleSelection implements TreeselSelection().
func (a *app) handleSelection(args []string) (selectionResult, error) {
	h := host.NewNvim(a.p.Nvim)
	sel, err := a.resolver().Resolve(context.Background(), h)
	if err != nil {
		a.log.Debugf("selection query failed: %v", err)
		return selectionResult{Error: err.Error()}, nil
	}
	if a.cfg.Load().Audit {
		id := a.audit.Record(sel.Source, sel.Paths)
		a.log.Debugf("selection query %s: %d path(s) via %s", id, len(sel.Paths), sel.Source)
	}
	return selectionResult{Paths: sel.Paths, Source: sel.Source}, nil
}

// handleInspect implements TreeselInspect(path).
func (a *app) handleInspect(args []string) (inspectResult, error) {
	if len(args) != 1 || args[0] == "" {
		return inspectResult{Error: "expected one path argument"}, nil
	}
	r, err := inspect.File(args[0])
	if err != nil {
		return inspectResult{Error: err.Error()}, nil
	}
	return inspectResult{
		Path:   r.Path,
		Mime:   r.Mime,
		IsText: r.IsText,
		Ext:    r.Ext,
		Size:   r.Size,
		IsDir:  r.IsDir,
	}, nil
}

// watchConfig reloads configuration whenever the file changes.
func (a *app) watchConfig(path string) {
	w, err := watcher.New(path, a.log)
	if err != nil {
		a.log.Warnf("config watcher disabled: %v", err)
		return
	}
	if err := w.Start(); err != nil {
		a.log.Warnf("config watcher disabled: %v", err)
		return
	}
	ch := w.Subscribe()
	go func() {
		for range ch {
			cfg, err := config.Load(path)
			if err != nil {
				a.log.Warnf("config reload failed: %v", err)
				continue
			}
			a.cfg.Store(cfg)
			a.log.Infof("config reloaded from %s", path)
		}
	}()
}

// newLogger writes to the configured log file. Stdout and stdin carry the
// msgpack RPC stream, so they are never used for logging.
func newLogger(cfg *config.Config) *logrus.Logger {
	log := logrus.New()
	lvl, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)

	path := cfg.LogFile
	if path == "" {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, ".treesel", "session.log")
		}
	}
	if path == "" {
		log.SetOutput(io.Discard)
		return log
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		log.SetOutput(io.Discard)
		return log
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return log
	}
	log.SetOutput(f)
	return log
}

func main() {
	cfgPath := flag.String("config", "", "config file path (overrides the standard locations)")
	// plugin.Main parses the remaining flags (including --manifest) itself.

	plugin.Main(func(p *plugin.Plugin) error {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			return err
		}
		log := newLogger(cfg)
		log.Infof("treesel %s starting", version)

		a := &app{
			p:     p,
			log:   log,
			audit: audit.New(cfg.AuditFile),
		}
		a.cfg.Store(cfg)

		watchPath := *cfgPath
		if watchPath == "" {
			if def, ok := config.DefaultPath(); ok {
				watchPath = def
			}
		}
		if watchPath != "" {
			a.watchConfig(watchPath)
		}

		p.HandleFunction(&plugin.FunctionOptions{Name: "TreeselSelection"}, a.handleSelection)
		p.HandleFunction(&plugin.FunctionOptions{Name: "TreeselInspect"}, a.handleInspect)
		return nil
	})
}
