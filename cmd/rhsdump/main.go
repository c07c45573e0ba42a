// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

// rhsdump summarizes an Intan RHS2000 recording directory: the decoded
// header plus basic statistics for every recognized sample stream.
package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/OpenPSG/rhs"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	})

	var (
		configPath string
		pattern    string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:          "rhsdump <directory>",
		Short:        "Summarize an Intan RHS2000 recording directory",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := defaultConfig()
			if configPath != "" {
				var err error
				if cfg, err = loadConfig(configPath); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("pattern") {
				cfg.Pattern = pattern
			}
			if verbose {
				cfg.Verbose = true
			}

			if !cfg.Verbose {
				zerolog.SetGlobalLevel(zerolog.WarnLevel)
			}

			return dump(cmd.OutOrStdout(), args[0], cfg.Pattern)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a rhsdump.toml config file")
	cmd.Flags().StringVarP(&pattern, "pattern", "p", defaultPattern, "glob pattern selecting sample files")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable info logging")

	if err := cmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("rhsdump failed")
	}
}

func dump(w io.Writer, dir, pattern string) error {
	rec, err := rhs.Load(dir, pattern)
	if err != nil {
		return err
	}

	hdr := rec.Header
	fmt.Fprintf(w, "RHS2000 data file, version %d.%d\n", hdr.Version.Major, hdr.Version.Minor)
	fmt.Fprintf(w, "sample rate: %.0f Hz, notch filter: %d Hz\n", hdr.SampleRate, hdr.NotchFilterFrequency)
	fmt.Fprintf(w, "channels: %d amplifier, %d ADC, %d DAC, %d digital in, %d digital out\n",
		hdr.NumAmplifierChannels(), hdr.NumBoardADCChannels(), hdr.NumBoardDACChannels(),
		hdr.NumBoardDigInChannels(), hdr.NumBoardDigOutChannels())

	if n := len(rec.Timestamps); n > 0 {
		fmt.Fprintf(w, "duration: %.3f s (%d samples)\n", rec.Timestamps[n-1]-rec.Timestamps[0], n)
	}

	names := make([]string, 0, len(rec.Recordings))
	for name := range rec.Recordings {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		s := rec.Recordings[name]
		values := s.Values()
		if len(values) == 0 {
			fmt.Fprintf(w, "%s (%s): empty\n", name, s.Class())
			continue
		}
		fmt.Fprintf(w, "%s (%s): %d samples, mean %.3f, stddev %.3f, min %.3f, max %.3f\n",
			name, s.Class(), len(values),
			stat.Mean(values, nil), stat.StdDev(values, nil),
			floats.Min(values), floats.Max(values))
	}

	return nil
}
