// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package rhs

// Version is the file format version recorded by the acquisition software.
type Version struct {
	Major int16
	Minor int16
}

// Header represents the header of an Intan RHS2000 data file (info.rhs).
// It is constructed in a single decode pass and read-only thereafter.
type Header struct {
	Version    Version
	SampleRate float32 // Sampling rate for all channels (Hz)

	// On-chip DSP and amplifier bandwidth settings, recorded as configured.
	DSPEnabled                  int16
	ActualDSPCutoffFrequency    float32
	ActualLowerBandwidth        float32
	ActualLowerSettleBandwidth  float32
	ActualUpperBandwidth        float32
	DesiredDSPCutoffFrequency   float32
	DesiredLowerBandwidth       float32
	DesiredLowerSettleBandwidth float32
	DesiredUpperBandwidth       float32

	NotchFilterFrequency int16 // Software notch filter: 0 (off), 50 or 60 Hz

	DesiredImpedanceTestFrequency float32
	ActualImpedanceTestFrequency  float32
	AmpSettleMode                 int16
	ChargeRecoveryMode            int16

	StimStepSize          float32 // Stimulation current step size (amps)
	RecoveryCurrentLimit  float32
	RecoveryTargetVoltage float32

	Notes [3]string // Free-text notes entered by the operator

	DCAmplifierDataSaved int16
	EvalBoardMode        int16
	RefChannelName       string

	// Channel collections, in file order. SpikeTriggers is paired
	// index-for-index with AmplifierChannels.
	AmplifierChannels   []Channel
	SpikeTriggers       []TriggerChannel
	BoardADCChannels    []Channel
	BoardDACChannels    []Channel
	BoardDigInChannels  []Channel
	BoardDigOutChannels []Channel
}

// Channel describes one enabled channel from the header's signal summary.
type Channel struct {
	PortName   string // Signal group name (e.g. "Port A")
	PortPrefix string // Signal group prefix (e.g. "A")
	PortNumber int    // 1-based signal group ordinal

	NativeChannelName string
	CustomChannelName string
	NativeOrder       int16
	CustomOrder       int16
	ChipChannel       int16
	BoardStream       int16

	ElectrodeImpedanceMagnitude float32 // Ohms
	ElectrodeImpedancePhase     float32 // Degrees
}

// TriggerChannel holds the spike trigger settings paired with an
// amplifier channel.
type TriggerChannel struct {
	VoltageTriggerMode    int16
	VoltageThreshold      int16
	DigitalTriggerChannel int16
	DigitalEdgePolarity   int16
}

// FrequencyParameters summarizes the sampling and filter settings of a
// recording. All streams share the same sampling rate.
type FrequencyParameters struct {
	AmplifierSampleRate           float32
	BoardADCSampleRate            float32
	BoardDigInSampleRate          float32
	DSPEnabled                    int16
	DesiredDSPCutoffFrequency     float32
	ActualDSPCutoffFrequency      float32
	DesiredLowerBandwidth         float32
	DesiredLowerSettleBandwidth   float32
	ActualLowerBandwidth          float32
	ActualLowerSettleBandwidth    float32
	DesiredUpperBandwidth         float32
	ActualUpperBandwidth          float32
	NotchFilterFrequency          int16
	DesiredImpedanceTestFrequency float32
	ActualImpedanceTestFrequency  float32
}

// FrequencyParameters returns the recording's sampling and filter settings.
func (hdr *Header) FrequencyParameters() FrequencyParameters {
	return FrequencyParameters{
		AmplifierSampleRate:           hdr.SampleRate,
		BoardADCSampleRate:            hdr.SampleRate,
		BoardDigInSampleRate:          hdr.SampleRate,
		DSPEnabled:                    hdr.DSPEnabled,
		DesiredDSPCutoffFrequency:     hdr.DesiredDSPCutoffFrequency,
		ActualDSPCutoffFrequency:      hdr.ActualDSPCutoffFrequency,
		DesiredLowerBandwidth:         hdr.DesiredLowerBandwidth,
		DesiredLowerSettleBandwidth:   hdr.DesiredLowerSettleBandwidth,
		ActualLowerBandwidth:          hdr.ActualLowerBandwidth,
		ActualLowerSettleBandwidth:    hdr.ActualLowerSettleBandwidth,
		DesiredUpperBandwidth:         hdr.DesiredUpperBandwidth,
		ActualUpperBandwidth:          hdr.ActualUpperBandwidth,
		NotchFilterFrequency:          hdr.NotchFilterFrequency,
		DesiredImpedanceTestFrequency: hdr.DesiredImpedanceTestFrequency,
		ActualImpedanceTestFrequency:  hdr.ActualImpedanceTestFrequency,
	}
}

// NumAmplifierChannels returns the number of enabled amplifier channels.
func (hdr *Header) NumAmplifierChannels() int { return len(hdr.AmplifierChannels) }

// NumBoardADCChannels returns the number of enabled board ADC channels.
func (hdr *Header) NumBoardADCChannels() int { return len(hdr.BoardADCChannels) }

// NumBoardDACChannels returns the number of enabled board DAC channels.
func (hdr *Header) NumBoardDACChannels() int { return len(hdr.BoardDACChannels) }

// NumBoardDigInChannels returns the number of enabled digital input channels.
func (hdr *Header) NumBoardDigInChannels() int { return len(hdr.BoardDigInChannels) }

// NumBoardDigOutChannels returns the number of enabled digital output channels.
func (hdr *Header) NumBoardDigOutChannels() int { return len(hdr.BoardDigOutChannels) }
