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

package pn532

import (
	"encoding/binary"
	"errors"

	"github.com/hsanjuan/go-ndef"
)

// NDEF TLV block types found in MIFARE application memory.
const (
	tlvNDEFMessage = 0x03
	tlvTerminator  = 0xFE
)

// ErrNoNDEF is returned when block data carries no NDEF message TLV.
var ErrNoNDEF = errors.New("no NDEF message found")

// DecodeNDEF extracts and parses the first NDEF message from concatenated
// MIFARE block data. It scans for the NDEF message TLV, handling both the
// one-byte and the three-byte length form, and decodes the message with the
// go-ndef parser.
func DecodeNDEF(data []byte) (*ndef.Message, error) {
	for i := 0; i < len(data); {
		switch data[i] {
		case 0x00:
			// NULL TLV, a lone padding byte.
			i++
			continue
		case tlvTerminator:
			return nil, ErrNoNDEF
		case tlvNDEFMessage:
			if i+1 >= len(data) {
				return nil, ErrNoNDEF
			}
			start := i + 2
			length := int(data[i+1])
			if data[i+1] == 0xFF {
				// Three-byte length form.
				if i+4 > len(data) {
					return nil, ErrNoNDEF
				}
				length = int(binary.BigEndian.Uint16(data[i+2 : i+4]))
				start = i + 4
			}
			if start+length > len(data) {
				return nil, ErrNoNDEF
			}

			msg := &ndef.Message{}
			if _, err := msg.Unmarshal(data[start : start+length]); err != nil {
				return nil, err
			}
			return msg, nil
		default:
			// Other TLVs carry a one-byte length; skip over them.
			if i+1 >= len(data) {
				return nil, ErrNoNDEF
			}
			i += 2 + int(data[i+1])
			continue
		}
	}
	return nil, ErrNoNDEF
}
