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
)

// nullQString is the length prefix marking a null string.
const nullQString = 0xFFFFFFFF

// readQString reads one Qt-style serialized string: a 32-bit byte count
// followed by that many bytes of UTF-16LE code units. A count of 0xFFFFFFFF
// encodes the null string and carries no payload.
//
// Each code unit is decoded as an independent code point. Surrogate pairs
// are not reassembled; the acquisition software never writes them and this
// matches its serialization exactly.
func readQString(c *cursor) (string, error) {
	length := c.uint32()
	if c.err != nil {
		return "", fmt.Errorf("error reading string length: %w", c.err)
	}
	if length == nullQString {
		return "", nil
	}

	if int64(length) > int64(c.remaining()) {
		return "", fmt.Errorf("%w: need %d, have %d", ErrStringLength, length, c.remaining())
	}
	b := c.take(int(length))

	runes := make([]rune, 0, len(b)/2)
	for i := 0; i+1 < len(b); i += 2 {
		runes = append(runes, rune(binary.LittleEndian.Uint16(b[i:])))
	}
	return string(runes), nil
}
