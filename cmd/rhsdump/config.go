// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

const defaultPattern = "*.dat"

type config struct {
	Pattern string // Glob pattern selecting sample files
	Verbose bool   // Enable info-level logging
}

// rhsdump.toml key mapping.
type fileConfig struct {
	Pattern string `toml:"pattern"`
	Verbose bool   `toml:"verbose"`
}

func defaultConfig() config {
	return config{Pattern: defaultPattern}
}

// loadConfig reads a TOML config file and overlays its defined keys over
// the defaults.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return config{}, fmt.Errorf("load rhsdump config: %w", err)
	}

	if meta.IsDefined("pattern") {
		cfg.Pattern = strings.TrimSpace(raw.Pattern)
	}
	if meta.IsDefined("verbose") {
		cfg.Verbose = raw.Verbose
	}

	return cfg, nil
}
