// Copyright 2026 The OpenRFID Authors.
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package frame

import "errors"

// Frame validation errors. Each distinct failure mode gets its own sentinel
// so callers can tell a device that is not ready apart from a corrupted
// frame.
var (
	// ErrNotReady indicates the read did not carry the ready marker; the
	// module has no response staged yet.
	ErrNotReady = errors.New("device not ready")

	// ErrMalformed indicates the preamble, start code, frame identifier or
	// postamble did not match the expected layout.
	ErrMalformed = errors.New("malformed response frame")

	// ErrLengthChecksum indicates the length byte and its checksum do not
	// cancel out.
	ErrLengthChecksum = errors.New("length checksum mismatch")

	// ErrDataChecksum indicates the data segment and its checksum do not
	// cancel out.
	ErrDataChecksum = errors.New("data checksum mismatch")

	// ErrTruncated indicates the frame declares more data than the read
	// buffer can hold.
	ErrTruncated = errors.New("response frame truncated")

	// ErrDataTooLarge indicates a command payload exceeds the normal frame
	// data limit.
	ErrDataTooLarge = errors.New("frame data too large")
)

// BuildCommandFrame assembles a host-to-module command frame:
//
//	00 00 FF LEN LCS D4 CMD ARGS... DCS 00
//
// LEN counts the frame identifier, the command byte and the arguments, and
// must fit a single normal frame.
func BuildCommandFrame(cmd byte, args []byte) ([]byte, error) {
	dataLen := 2 + len(args)
	if dataLen > MaxDataLength {
		return nil, ErrDataTooLarge
	}

	length := byte(dataLen)
	f := make([]byte, 0, dataLen+7)
	f = append(f, Preamble, StartCode1, StartCode2)
	f = append(f, length, CalculateLengthChecksum(length))
	f = append(f, HostToPn532, cmd)
	f = append(f, args...)

	dcs := ^(HostToPn532 + cmd + CalculateChecksum(args)) + 1
	f = append(f, dcs, Postamble)
	return f, nil
}

// ParseResponse validates a raw bus read of a response frame and extracts
// the data segment minus the frame identifier, so the first returned byte is
// the response code. buf starts with the ready marker the module prepends to
// every read. maxPayload bounds the declared data length.
//
// Checks run in a fixed order so the caller sees the earliest failure:
// readiness, framing, length checksum, truncation, frame identifier and
// postamble, then data checksum.
func ParseResponse(buf []byte, maxPayload int) ([]byte, error) {
	if len(buf) < Overhead || buf[0] != ReadyMarker {
		return nil, ErrNotReady
	}
	if buf[1] != Preamble || buf[2] != StartCode1 || buf[3] != StartCode2 {
		return nil, ErrMalformed
	}

	length := int(buf[4])
	if (buf[4]+buf[5])&0xFF != 0 {
		return nil, ErrLengthChecksum
	}
	if length > maxPayload || length+Overhead > len(buf) {
		return nil, ErrTruncated
	}
	if length < 1 || buf[6] != Pn532ToHost || buf[length+7] != Postamble {
		return nil, ErrMalformed
	}

	// Data segment plus DCS must cancel out.
	if !ValidateChecksum(buf[6 : length+7]) {
		return nil, ErrDataChecksum
	}
	return buf[7 : length+6], nil
}
