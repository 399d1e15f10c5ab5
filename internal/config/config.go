// Copyright (c) 2026 Treesel authors
// All rights reserved. Use of this source code is governed by an
// MIT-style license that can be found in the LICENSE file.

package config

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Config holds the application configuration.
type Config struct {
	Explorers       []string
	Fallback        bool
	ResolveSymlinks bool
	Audit           bool
	AuditFile       string
	LogLevel        string
	LogFile         string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Explorers:       []string{"nvim-tree", "neo-tree", "nerdtree"},
		Fallback:        true,
		ResolveSymlinks: false,
		Audit:           false, // the audit log is opt-in
		LogLevel:        "info",
		LogFile:         "", // defaults to ~/.treesel/session.log in main
	}
}

// Load attempts to load configuration from the standard locations.
// Priority:
// 1. explicit path (when non-empty)
// 2. ~/.treesel/config.ini
// 3. /etc/treesel/config.ini
//
// It returns the loaded config (with defaults for missing fields) or the
// default config if no file is found. Errors are returned only if a file
// exists but cannot be read/parsed.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		return parseFile(path, cfg)
	}

	if p, ok := DefaultPath(); ok {
		return parseFile(p, cfg)
	}

	return cfg, nil
}

// DefaultPath returns the first config file found in the standard
// locations, or ok=false when none exists.
func DefaultPath() (string, bool) {
	home, err := os.UserHomeDir()
	if err == nil {
		userPath := filepath.Join(home, ".treesel", "config.ini")
		if _, err := os.Stat(userPath); err == nil {
			return userPath, true
		}
	}

	sysPath := "/etc/treesel/config.ini"
	if _, err := os.Stat(sysPath); err == nil {
		return sysPath, true
	}

	return "", false
}

// parseFile reads a simple key=value INI file.
// Supported keys: explorers, fallback, resolve_symlinks, audit, audit_file,
// log_level, log_file
func parseFile(path string, defaults *Config) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// copy defaults
	cfg := *defaults

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}

		// Handle section headers [Section] - currently ignored as we use a flat structure
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		val := strings.TrimSpace(parts[1])

		// remove quotes if present
		if len(val) >= 2 && (val[0] == '"' || val[0] == '\'') && val[len(val)-1] == val[0] {
			val = val[1 : len(val)-1]
		}

		switch strings.ToLower(key) {
		case "explorers":
			cfg.Explorers = splitList(val)
		case "fallback":
			if b, err := strconv.ParseBool(val); err == nil {
				cfg.Fallback = b
			}
		case "resolve_symlinks", "resolvesymlinks":
			if b, err := strconv.ParseBool(val); err == nil {
				cfg.ResolveSymlinks = b
			}
		case "audit":
			if b, err := strconv.ParseBool(val); err == nil {
				cfg.Audit = b
			}
		case "audit_file", "auditfile":
			cfg.AuditFile = expandHome(val)
		case "log_level", "loglevel":
			cfg.LogLevel = strings.ToLower(val)
		case "log_file", "logfile":
			cfg.LogFile = expandHome(val)
		}
	}

	return &cfg, scanner.Err()
}

func splitList(val string) []string {
	out := []string{}
	for _, part := range strings.Split(val, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}
