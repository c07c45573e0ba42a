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
	"encoding/binary"
	"fmt"
	"strings"
)

// StreamClass selects the numeric decode and unit conversion rule for a raw
// sample buffer. It is derived from the buffer's file name and is unrelated
// to the header's per-channel signal types.
type StreamClass int

const (
	// StreamAmplifier holds int16 amplifier samples, converted to microvolts.
	StreamAmplifier StreamClass = iota
	// StreamBoardAnalog holds uint16 board ADC/DAC samples, converted to volts.
	StreamBoardAnalog
	// StreamDCAmplifier holds uint16 DC amplifier samples, converted to millivolts.
	StreamDCAmplifier
	// StreamBoardDigital holds raw uint16 logic levels, no conversion.
	StreamBoardDigital
	// StreamStim holds 9-bit sign-magnitude stimulation samples, converted
	// to amps using the header's stimulation step size.
	StreamStim
)

// String returns the conventional name of the stream class.
func (sc StreamClass) String() string {
	switch sc {
	case StreamAmplifier:
		return "amplifier"
	case StreamBoardAnalog:
		return "board analog"
	case StreamDCAmplifier:
		return "dc amplifier"
	case StreamBoardDigital:
		return "board digital"
	case StreamStim:
		return "stim"
	default:
		return "unknown"
	}
}

// ClassifyStream maps a sample buffer name (e.g. "amp-B-000.dat") to its
// stream class. Match order follows the acquisition software's file naming.
func ClassifyStream(name string) (StreamClass, error) {
	switch {
	case strings.Contains(name, "amp"):
		return StreamAmplifier, nil
	case strings.Contains(name, "board-ANALOG-IN"), strings.Contains(name, "board-ANALOG-OUT"):
		return StreamBoardAnalog, nil
	case strings.Contains(name, "dc-"):
		return StreamDCAmplifier, nil
	case strings.Contains(name, "board-DIGITAL-IN"), strings.Contains(name, "board-DIGITAL-OUT"):
		return StreamBoardDigital, nil
	case strings.Contains(name, "stim-"):
		return StreamStim, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnrecognizedStream, name)
	}
}

// Samples is a read-only view over one raw sample buffer. Values are
// converted on access; the backing bytes are borrowed, never copied.
type Samples struct {
	name    string
	class   StreamClass
	data    []byte
	convert func(raw uint16) float64
}

// Interpret wraps a raw sample buffer in a converting view. The conversion
// rule is chosen from the buffer name; stim buffers additionally need the
// header's stimulation step size.
func Interpret(hdr *Header, name string, data []byte) (*Samples, error) {
	class, err := ClassifyStream(name)
	if err != nil {
		return nil, err
	}

	s := &Samples{name: name, class: class, data: data}
	switch class {
	case StreamAmplifier:
		s.convert = func(raw uint16) float64 {
			return float64(int16(raw)) * 0.195 // microvolts
		}
	case StreamBoardAnalog:
		s.convert = func(raw uint16) float64 {
			return (float64(raw) - 32768) * 0.0003125 // volts
		}
	case StreamDCAmplifier:
		s.convert = func(raw uint16) float64 {
			return (float64(raw) - 512) * 19.23 // millivolts
		}
	case StreamBoardDigital:
		s.convert = func(raw uint16) float64 {
			return float64(raw)
		}
	case StreamStim:
		// 9-bit sign-magnitude: low 8 bits hold the magnitude in units of
		// the stimulation step size, bit 8 holds the polarity.
		step := float64(hdr.StimStepSize)
		s.convert = func(raw uint16) float64 {
			v := float64(raw&0xFF) * step
			if raw&0x100 != 0 {
				return -v
			}
			return v
		}
	}
	return s, nil
}

// Name returns the buffer name the view was created from.
func (s *Samples) Name() string { return s.name }

// Class returns the stream class chosen for the buffer.
func (s *Samples) Class() StreamClass { return s.class }

// Len returns the number of samples in the buffer.
func (s *Samples) Len() int { return len(s.data) / 2 }

// At returns the converted value of sample i.
func (s *Samples) At(i int) float64 {
	return s.convert(binary.LittleEndian.Uint16(s.data[2*i:]))
}

// Values converts the whole buffer into a freshly allocated slice.
func (s *Samples) Values() []float64 {
	out := make([]float64, s.Len())
	for i := range out {
		out[i] = s.At(i)
	}
	return out
}

// Timestamps converts a raw timeline buffer (int32 sample indices) into
// seconds relative to the start of the recording.
func Timestamps(data []byte, sampleRate float32) []float64 {
	out := make([]float64, len(data)/4)
	for i := range out {
		out[i] = float64(int32(binary.LittleEndian.Uint32(data[4*i:]))) / float64(sampleRate)
	}
	return out
}
