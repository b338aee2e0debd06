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

// Package testutil builds byte-exact bus reads for driver tests: ready
// probes, acknowledgements and fully framed response payloads as a PN532
// would put them on the wire.
package testutil

import "github.com/openrfid/pn532/internal/frame"

// Ready is a one-byte probe read showing the device ready.
func Ready() []byte {
	return []byte{frame.ReadyMarker}
}

// NotReady is a one-byte probe read showing no response staged.
func NotReady() []byte {
	return []byte{0x00}
}

// Ack is the acknowledgement read a device stages after accepting a
// command: ready marker plus the ACK sequence.
func Ack() []byte {
	return append([]byte{frame.ReadyMarker}, frame.AckFrame...)
}

// Response frames payload into a complete bus read: ready marker, framing,
// checksums and postamble around payload, whose first byte is the response
// code.
func Response(payload ...byte) []byte {
	length := byte(len(payload) + 1)
	buf := []byte{
		frame.ReadyMarker,
		frame.Preamble, frame.StartCode1, frame.StartCode2,
		length, frame.CalculateLengthChecksum(length),
		frame.Pn532ToHost,
	}
	buf = append(buf, payload...)
	buf = append(buf, frame.CalculateDataChecksum(frame.Pn532ToHost, payload), frame.Postamble)
	return buf
}

// FirmwareResponse builds a GetFirmwareVersion response.
func FirmwareResponse(ic, version, revision, support byte) []byte {
	return Response(0x03, ic, version, revision, support)
}

// TargetResponse builds an InListPassiveTarget response reporting one
// ISO14443A target with the given UID.
func TargetResponse(uid ...byte) []byte {
	payload := []byte{0x4B, 0x01, 0x01, 0x00, 0x04, 0x08, byte(len(uid))}
	return Response(append(payload, uid...)...)
}

// ExchangeStatus builds an InDataExchange response with just a status byte.
func ExchangeStatus(status byte) []byte {
	return Response(0x41, status)
}

// ExchangeData builds an InDataExchange response carrying data after a
// clean status.
func ExchangeData(data ...byte) []byte {
	return Response(append([]byte{0x41, 0x00}, data...)...)
}
