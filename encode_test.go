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
	"bytes"
	"encoding/binary"
	"fmt"
	"unicode/utf16"
)

// headerEncoder builds synthetic info.rhs byte streams for tests, mirroring
// the field order the decoder consumes.
type headerEncoder struct {
	buf bytes.Buffer
}

func (e *headerEncoder) writeUint32(v uint32) {
	_ = binary.Write(&e.buf, binary.LittleEndian, v)
}

func (e *headerEncoder) writeInt16(v int16) {
	_ = binary.Write(&e.buf, binary.LittleEndian, v)
}

func (e *headerEncoder) writeFloat32(v float32) {
	_ = binary.Write(&e.buf, binary.LittleEndian, v)
}

func (e *headerEncoder) writeQString(s string) {
	units := utf16.Encode([]rune(s))
	e.writeUint32(uint32(len(units) * 2))
	for _, u := range units {
		_ = binary.Write(&e.buf, binary.LittleEndian, u)
	}
}

func (e *headerEncoder) writeNullQString() {
	e.writeUint32(0xFFFFFFFF)
}

type testChannel struct {
	signalType int16
	enabled    int16
}

type testGroup struct {
	name     string
	prefix   string
	enabled  int16
	channels []testChannel

	// declaredChannels overrides the channel count field when nonzero.
	declaredChannels int16
}

const (
	testSampleRate   = 30000.0
	testStimStepSize = 10.0
)

// encodeHeader serializes a complete RHS header with the given notch mode
// and signal groups. Disabled groups contribute no channel bytes, matching
// the acquisition software's output.
func encodeHeader(notchMode int16, groups ...testGroup) []byte {
	e := &headerEncoder{}

	e.writeUint32(0xD69127AC)
	e.writeInt16(3) // version major
	e.writeInt16(2) // version minor
	e.writeFloat32(testSampleRate)

	e.writeInt16(1) // dsp enabled
	for i := 0; i < 8; i++ {
		e.writeFloat32(float32(i+1) * 100)
	}

	e.writeInt16(notchMode)

	e.writeFloat32(1000) // desired impedance test frequency
	e.writeFloat32(997)  // actual impedance test frequency
	e.writeInt16(0)      // amp settle mode
	e.writeInt16(1)      // charge recovery mode

	e.writeFloat32(testStimStepSize)
	e.writeFloat32(0.001) // recovery current limit
	e.writeFloat32(-0.5)  // recovery target voltage

	e.writeQString("note one")
	e.writeQString("")
	e.writeNullQString()

	e.writeInt16(1) // dc amplifier data saved
	e.writeInt16(0) // eval board mode

	e.writeQString("n/a") // ref channel name

	e.writeInt16(int16(len(groups)))
	for _, g := range groups {
		e.writeQString(g.name)
		e.writeQString(g.prefix)
		e.writeInt16(g.enabled)
		if g.declaredChannels != 0 {
			e.writeInt16(g.declaredChannels)
		} else {
			e.writeInt16(int16(len(g.channels)))
		}
		e.writeInt16(0) // amplifier channel count, unused by the decoder

		if g.enabled <= 0 {
			continue
		}

		for i, ch := range g.channels {
			e.writeQString(fmt.Sprintf("%s-%03d", g.prefix, i))
			e.writeQString(fmt.Sprintf("chan %d", i))
			e.writeInt16(int16(i)) // native order
			e.writeInt16(int16(i)) // custom order
			e.writeInt16(ch.signalType)
			e.writeInt16(ch.enabled)
			e.writeInt16(int16(i)) // chip channel
			e.writeInt16(0)        // command stream
			e.writeInt16(1)        // board stream
			e.writeInt16(1)        // voltage trigger mode
			e.writeInt16(-70)      // voltage threshold
			e.writeInt16(0)        // digital trigger channel
			e.writeInt16(1)        // digital edge polarity
			e.writeFloat32(150000) // impedance magnitude
			e.writeFloat32(-45)    // impedance phase
		}
	}

	return e.buf.Bytes()
}
