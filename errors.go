// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package rhs

import "errors"

var (
	// ErrBadMagic indicates the file does not begin with the RHS2000
	// magic number and is not an Intan RHS data file.
	ErrBadMagic = errors.New("rhs: bad magic number")

	// ErrStringLength indicates a string length prefix larger than the
	// bytes remaining in the file. The stream is corrupt or the decoder
	// has lost its position.
	ErrStringLength = errors.New("rhs: string length exceeds remaining bytes")

	// ErrUnsupportedSignalType indicates a signal type that belongs to
	// the sibling RHD2000 format and is never valid in an RHS file.
	ErrUnsupportedSignalType = errors.New("rhs: unsupported signal type")

	// ErrUnknownSignalType indicates a signal type outside the range
	// defined by the format.
	ErrUnknownSignalType = errors.New("rhs: unknown signal type")

	// ErrUnrecognizedStream indicates a sample buffer whose name matches
	// none of the known stream classes.
	ErrUnrecognizedStream = errors.New("rhs: unrecognized stream")
)
