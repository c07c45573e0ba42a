// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package rhs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	// HeaderFileName is the fixed name of the header file in a recording
	// directory.
	HeaderFileName = "info.rhs"
	// TimeFileName is the fixed name of the timeline file in a recording
	// directory.
	TimeFileName = "time.dat"
)

// Recording bundles everything decoded from one RHS recording directory.
type Recording struct {
	Header     *Header
	Timestamps []float64           // Seconds, relative to the recording start
	Recordings map[string]*Samples // Keyed by file name without extension
}

// Load reads the recording in dir: the info.rhs header, the time.dat
// timeline, and every other file matching pattern as a raw sample buffer.
//
// Buffers that cannot be classified are logged and skipped; they never
// abort the load or affect sibling buffers. Header and timeline failures
// are fatal.
func Load(dir, pattern string) (*Recording, error) {
	headerBytes, err := os.ReadFile(filepath.Join(dir, HeaderFileName))
	if err != nil {
		return nil, fmt.Errorf("error reading header file: %w", err)
	}
	hdr, err := ReadHeader(headerBytes)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", HeaderFileName, err)
	}

	log.Info().
		Int16("major", hdr.Version.Major).
		Int16("minor", hdr.Version.Minor).
		Float32("sample_rate", hdr.SampleRate).
		Int("amplifier_channels", hdr.NumAmplifierChannels()).
		Msg("read RHS2000 data file header")

	timeBytes, err := os.ReadFile(filepath.Join(dir, TimeFileName))
	if err != nil {
		return nil, fmt.Errorf("error reading timeline file: %w", err)
	}

	rec := &Recording{
		Header:     hdr,
		Timestamps: Timestamps(timeBytes, hdr.SampleRate),
		Recordings: make(map[string]*Samples),
	}

	paths, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("invalid file pattern %q: %w", pattern, err)
	}

	for _, path := range paths {
		base := filepath.Base(path)
		if base == HeaderFileName || base == TimeFileName {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("error reading %s: %w", base, err)
		}

		samples, err := Interpret(hdr, base, data)
		if err != nil {
			log.Warn().Err(err).Str("file", base).Msg("skipping sample buffer")
			continue
		}

		rec.Recordings[strings.TrimSuffix(base, filepath.Ext(base))] = samples
	}

	return rec, nil
}
