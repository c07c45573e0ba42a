// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package rhs_test

import (
	"encoding/binary"
	"testing"

	"github.com/OpenPSG/rhs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uint16LE(values ...uint16) []byte {
	b := make([]byte, 2*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint16(b[2*i:], v)
	}
	return b
}

func TestClassifyStream(t *testing.T) {
	for name, want := range map[string]rhs.StreamClass{
		"amp-B-000.dat":            rhs.StreamAmplifier,
		"board-ANALOG-IN-01.dat":   rhs.StreamBoardAnalog,
		"board-ANALOG-OUT-01.dat":  rhs.StreamBoardAnalog,
		"dc-A-000.dat":             rhs.StreamDCAmplifier,
		"board-DIGITAL-IN-01.dat":  rhs.StreamBoardDigital,
		"board-DIGITAL-OUT-01.dat": rhs.StreamBoardDigital,
		"stim-A-000.dat":           rhs.StreamStim,
	} {
		class, err := rhs.ClassifyStream(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, class, name)
	}
}

func TestClassifyStreamUnrecognized(t *testing.T) {
	_, err := rhs.ClassifyStream("mystery.dat")
	require.ErrorIs(t, err, rhs.ErrUnrecognizedStream)
}

func TestInterpretAmplifier(t *testing.T) {
	hdr := &rhs.Header{}
	s, err := rhs.Interpret(hdr, "amp-B-000.dat", uint16LE(1000, 0xFC18)) // 1000, -1000
	require.NoError(t, err)

	require.Equal(t, 2, s.Len())
	assert.InDelta(t, 195.0, s.At(0), 1e-9)
	assert.InDelta(t, -195.0, s.At(1), 1e-9)
}

func TestInterpretBoardAnalog(t *testing.T) {
	hdr := &rhs.Header{}
	s, err := rhs.Interpret(hdr, "board-ANALOG-IN-01.dat", uint16LE(32768, 0))
	require.NoError(t, err)

	assert.InDelta(t, 0.0, s.At(0), 1e-9)
	assert.InDelta(t, -10.24, s.At(1), 1e-9)
}

func TestInterpretDCAmplifier(t *testing.T) {
	hdr := &rhs.Header{}
	s, err := rhs.Interpret(hdr, "dc-A-000.dat", uint16LE(512, 513))
	require.NoError(t, err)

	assert.InDelta(t, 0.0, s.At(0), 1e-9)
	assert.InDelta(t, 19.23, s.At(1), 1e-9)
}

func TestInterpretBoardDigital(t *testing.T) {
	hdr := &rhs.Header{}
	s, err := rhs.Interpret(hdr, "board-DIGITAL-IN-01.dat", uint16LE(0, 1, 1, 0))
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 1, 1, 0}, s.Values())
}

func TestInterpretStim(t *testing.T) {
	hdr := &rhs.Header{StimStepSize: 10}

	// Bit 8 clear: positive. Bit 8 set (0x105): same magnitude, negative.
	s, err := rhs.Interpret(hdr, "stim-A-000.dat", uint16LE(5, 261, 0))
	require.NoError(t, err)

	assert.InDelta(t, 50.0, s.At(0), 1e-9)
	assert.InDelta(t, -50.0, s.At(1), 1e-9)
	assert.InDelta(t, 0.0, s.At(2), 1e-9)
}

func TestInterpretUnrecognized(t *testing.T) {
	_, err := rhs.Interpret(&rhs.Header{}, "notes.txt", nil)
	require.ErrorIs(t, err, rhs.ErrUnrecognizedStream)
}

func TestSamplesValues(t *testing.T) {
	s, err := rhs.Interpret(&rhs.Header{}, "amp-A-000.dat", uint16LE(1000, 2000))
	require.NoError(t, err)

	assert.Equal(t, "amp-A-000.dat", s.Name())
	assert.Equal(t, rhs.StreamAmplifier, s.Class())

	values := s.Values()
	require.Len(t, values, 2)
	assert.InDelta(t, 195.0, values[0], 1e-9)
	assert.InDelta(t, 390.0, values[1], 1e-9)
}

func TestTimestamps(t *testing.T) {
	b := make([]byte, 12)
	binary.LittleEndian.PutUint32(b[0:], 0)
	binary.LittleEndian.PutUint32(b[4:], 1)
	binary.LittleEndian.PutUint32(b[8:], 30000)

	ts := rhs.Timestamps(b, 30000)
	require.Len(t, ts, 3)
	assert.InDelta(t, 0.0, ts[0], 1e-12)
	assert.InDelta(t, 1.0/30000, ts[1], 1e-12)
	assert.InDelta(t, 1.0, ts[2], 1e-12)
}
