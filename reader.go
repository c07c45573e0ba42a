// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package rhs

import "fmt"

// magicNumber identifies an Intan RHS2000 data file. This is the format's
// only identity check.
const magicNumber = 0xD69127AC

// SignalType is the per-channel code selecting which channel collection a
// channel belongs to.
type SignalType int16

const (
	SignalAmplifier     SignalType = 0
	SignalAuxInput      SignalType = 1 // RHD2000 only
	SignalSupplyVoltage SignalType = 2 // RHD2000 only
	SignalBoardADC      SignalType = 3
	SignalBoardDAC      SignalType = 4
	SignalBoardDigIn    SignalType = 5
	SignalBoardDigOut   SignalType = 6
)

// collection returns the header collection a channel of this type is
// appended to. Types 1 and 2 exist only in the sibling RHD2000 format.
func (t SignalType) collection(hdr *Header) (*[]Channel, error) {
	switch t {
	case SignalAmplifier:
		return &hdr.AmplifierChannels, nil
	case SignalAuxInput, SignalSupplyVoltage:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedSignalType, t)
	case SignalBoardADC:
		return &hdr.BoardADCChannels, nil
	case SignalBoardDAC:
		return &hdr.BoardDACChannels, nil
	case SignalBoardDigIn:
		return &hdr.BoardDigInChannels, nil
	case SignalBoardDigOut:
		return &hdr.BoardDigOutChannels, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownSignalType, t)
	}
}

// ReadHeader decodes an RHS2000 header (the contents of an info.rhs file).
// Any decode failure is fatal: the format has no resynchronization markers,
// so no partial header is ever returned.
func ReadHeader(data []byte) (*Header, error) {
	c := &cursor{buf: data}

	magic := c.uint32()
	if c.err != nil {
		return nil, fmt.Errorf("error reading magic number: %w", c.err)
	}
	if magic != magicNumber {
		return nil, fmt.Errorf("%w: got 0x%08X", ErrBadMagic, magic)
	}

	hdr := &Header{}
	hdr.Version.Major = c.int16()
	hdr.Version.Minor = c.int16()
	hdr.SampleRate = c.float32()

	hdr.DSPEnabled = c.int16()
	hdr.ActualDSPCutoffFrequency = c.float32()
	hdr.ActualLowerBandwidth = c.float32()
	hdr.ActualLowerSettleBandwidth = c.float32()
	hdr.ActualUpperBandwidth = c.float32()
	hdr.DesiredDSPCutoffFrequency = c.float32()
	hdr.DesiredLowerBandwidth = c.float32()
	hdr.DesiredLowerSettleBandwidth = c.float32()
	hdr.DesiredUpperBandwidth = c.float32()

	// Software 50/60 Hz notch filter mode. Any other mode value means the
	// filter was off.
	switch c.int16() {
	case 1:
		hdr.NotchFilterFrequency = 50
	case 2:
		hdr.NotchFilterFrequency = 60
	default:
		hdr.NotchFilterFrequency = 0
	}

	hdr.DesiredImpedanceTestFrequency = c.float32()
	hdr.ActualImpedanceTestFrequency = c.float32()
	hdr.AmpSettleMode = c.int16()
	hdr.ChargeRecoveryMode = c.int16()

	hdr.StimStepSize = c.float32()
	hdr.RecoveryCurrentLimit = c.float32()
	hdr.RecoveryTargetVoltage = c.float32()

	var err error
	for i := range hdr.Notes {
		if hdr.Notes[i], err = readQString(c); err != nil {
			return nil, fmt.Errorf("error reading note %d: %w", i+1, err)
		}
	}

	hdr.DCAmplifierDataSaved = c.int16()
	hdr.EvalBoardMode = c.int16()

	if hdr.RefChannelName, err = readQString(c); err != nil {
		return nil, fmt.Errorf("error reading reference channel name: %w", err)
	}

	numGroups := c.int16()
	if c.err != nil {
		return nil, fmt.Errorf("error reading header fields: %w", c.err)
	}

	for group := int16(1); group <= numGroups; group++ {
		groupName, err := readQString(c)
		if err != nil {
			return nil, fmt.Errorf("error reading signal group %d name: %w", group, err)
		}
		groupPrefix, err := readQString(c)
		if err != nil {
			return nil, fmt.Errorf("error reading signal group %d prefix: %w", group, err)
		}

		groupEnabled := c.int16()
		numChannels := c.int16()
		c.int16() // number of amplifier channels in this group, unused
		if c.err != nil {
			return nil, fmt.Errorf("error reading signal group %d summary: %w", group, c.err)
		}

		// A disabled or empty group contributes no channel records to the
		// stream at all; there is nothing to skip.
		if groupEnabled <= 0 || numChannels <= 0 {
			continue
		}

		for i := int16(0); i < numChannels; i++ {
			ch := Channel{
				PortName:   groupName,
				PortPrefix: groupPrefix,
				PortNumber: int(group),
			}

			if ch.NativeChannelName, err = readQString(c); err != nil {
				return nil, fmt.Errorf("error reading channel native name: %w", err)
			}
			if ch.CustomChannelName, err = readQString(c); err != nil {
				return nil, fmt.Errorf("error reading channel custom name: %w", err)
			}

			ch.NativeOrder = c.int16()
			ch.CustomOrder = c.int16()
			signalType := SignalType(c.int16())
			channelEnabled := c.int16()
			ch.ChipChannel = c.int16()
			c.int16() // command stream, unused
			ch.BoardStream = c.int16()

			var trigger TriggerChannel
			trigger.VoltageTriggerMode = c.int16()
			trigger.VoltageThreshold = c.int16()
			trigger.DigitalTriggerChannel = c.int16()
			trigger.DigitalEdgePolarity = c.int16()

			ch.ElectrodeImpedanceMagnitude = c.float32()
			ch.ElectrodeImpedancePhase = c.float32()

			if c.err != nil {
				return nil, fmt.Errorf("error reading channel record: %w", c.err)
			}

			// Disabled channels are decoded to keep the cursor in sync but
			// never appear in any collection.
			if channelEnabled == 0 {
				continue
			}

			dest, err := signalType.collection(hdr)
			if err != nil {
				return nil, err
			}
			*dest = append(*dest, ch)
			if signalType == SignalAmplifier {
				hdr.SpikeTriggers = append(hdr.SpikeTriggers, trigger)
			}
		}
	}

	return hdr, nil
}
