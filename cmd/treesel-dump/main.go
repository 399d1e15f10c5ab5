// Copyright (c) 2026 Treesel authors
// All rights reserved. Use of this source code is governed by an
// MIT-style license that can be found in the LICENSE file.

// treesel-dump queries the explorer selection of a running Neovim instance
// and prints the paths, one per line or as JSON. Useful from scripts and
// terminal tools running inside :terminal, where $NVIM points at the
// parent editor.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/neovim/go-client/nvim"
	"github.com/sirupsen/logrus"

	"treesel/internal/config"
	"treesel/internal/explorer"
	"treesel/internal/host"
	"treesel/internal/inspect"
)

type output struct {
	Source string            `json:"source"`
	Paths  []string          `json:"paths"`
	Files  []*inspect.Result `json:"files,omitempty"`
}

func main() {
	server := flag.String("server", os.Getenv("NVIM"), "Neovim server address (defaults to $NVIM)")
	cfgPath := flag.String("config", "", "config file path (overrides the standard locations)")
	asJSON := flag.Bool("json", false, "print the result as JSON")
	withInspect := flag.Bool("inspect", false, "include mime/type info for each path (implies -json)")
	verbose := flag.Bool("verbose", false, "debug logging to stderr")
	flag.Parse()

	log := logrus.New()
	log.SetOutput(os.Stderr)
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}

	if *server == "" {
		fmt.Fprintln(os.Stderr, "no Neovim server address; set $NVIM or pass -server")
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(2)
	}
	explorers, err := explorer.FromNames(cfg.Explorers, cfg.Fallback)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bad config: %v\n", err)
		os.Exit(2)
	}

	v, err := nvim.Dial(*server)
	if err != nil {
		fmt.Fprintf(os.Stderr, "connect to %s: %v\n", *server, err)
		os.Exit(2)
	}
	defer v.Close()

	r := explorer.NewResolver(log, explorer.Options{ResolveSymlinks: cfg.ResolveSymlinks}, explorers...)
	sel, err := r.Resolve(context.Background(), host.NewNvim(v))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if !*asJSON && !*withInspect {
		for _, p := range sel.Paths {
			fmt.Println(p)
		}
		return
	}

	out := output{Source: sel.Source, Paths: sel.Paths}
	if *withInspect {
		files, err := inspect.Files(sel.Paths)
		if err != nil {
			log.Warnf("inspect: %v", err)
		}
		out.Files = files
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(out)
}
