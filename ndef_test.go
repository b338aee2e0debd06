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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// textRecord is a well-known-type text record, short form, language "en",
// content "hi".
var textRecord = []byte{
	0xD1,             // MB|ME|SR, TNF well-known
	0x01, 0x05,       // type length, payload length
	0x54,             // type "T"
	0x02, 0x65, 0x6E, // status byte, "en"
	0x68, 0x69, // "hi"
}

func TestDecodeNDEF(t *testing.T) {
	t.Parallel()

	data := append([]byte{0x00, 0x03, byte(len(textRecord))}, textRecord...)
	data = append(data, 0xFE, 0x00, 0x00)

	msg, err := DecodeNDEF(data)
	require.NoError(t, err)
	assert.Contains(t, msg.String(), "hi")
}

func TestDecodeNDEFSkipsForeignTLVs(t *testing.T) {
	t.Parallel()

	// A lock-control TLV sits in front of the message TLV.
	data := []byte{0x01, 0x03, 0xA0, 0x10, 0x44}
	data = append(data, 0x03, byte(len(textRecord)))
	data = append(data, textRecord...)
	data = append(data, 0xFE)

	msg, err := DecodeNDEF(data)
	require.NoError(t, err)
	assert.Contains(t, msg.String(), "hi")
}

func TestDecodeNDEFNoMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: nil},
		{name: "blank block", data: make([]byte, 16)},
		{name: "terminator first", data: []byte{0xFE, 0x03, 0x02}},
		{name: "length past end", data: []byte{0x03, 0x20, 0xD1}},
		{name: "missing length byte", data: []byte{0x03}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := DecodeNDEF(tt.data)
			assert.ErrorIs(t, err, ErrNoNDEF)
		})
	}
}
