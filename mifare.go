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

import "fmt"

// MIFARE Classic authentication key selectors.
const (
	// MIFAREKeyA selects authentication with key A.
	MIFAREKeyA byte = 0x00
	// MIFAREKeyB selects authentication with key B.
	MIFAREKeyB byte = 0x01
)

// mifareBlockSize is the MIFARE Classic block size in bytes.
const mifareBlockSize = 16

const (
	mifareKeyLength = 6
	mifareUIDLength = 4
)

// checkExchangeStatus validates the status byte of an InDataExchange
// response. The low six bits carry the device's error code.
func checkExchangeStatus(res []byte) error {
	if len(res) < 2 {
		return fmt.Errorf("%w: exchange payload %d bytes", ErrFrameCorrupted, len(res))
	}
	if code := res[1] & 0x3F; code != 0 {
		return fmt.Errorf("%w: status %#02x", ErrCommandFailed, code)
	}
	return nil
}

// MIFAREClassicAuth authenticates a block of a MIFARE Classic target with a
// six-byte key. keyType must be MIFAREKeyA or MIFAREKeyB and uid the
// four-byte UID of the selected target. Arguments are validated before any
// bus traffic.
func (d *Device) MIFAREClassicAuth(target, keyType, block byte, key, uid []byte) error {
	var authCmd byte
	switch keyType {
	case MIFAREKeyA:
		authCmd = mifareCmdAuthA
	case MIFAREKeyB:
		authCmd = mifareCmdAuthB
	default:
		return fmt.Errorf("%w: %#02x", ErrInvalidKeyType, keyType)
	}
	if len(key) != mifareKeyLength {
		return fmt.Errorf("%w: key must be %d bytes", ErrInvalidParameter, mifareKeyLength)
	}
	if len(uid) != mifareUIDLength {
		return fmt.Errorf("%w: uid must be %d bytes", ErrInvalidParameter, mifareUIDLength)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	args := make([]byte, 0, 3+mifareKeyLength+mifareUIDLength)
	args = append(args, target, authCmd, block)
	args = append(args, key...)
	args = append(args, uid...)

	res, err := d.exchange(cmdInDataExchange, args, maxPayloadSimple)
	if err != nil {
		return err
	}
	return checkExchangeStatus(res)
}

// MIFAREClassicRead reads one 16-byte block from an authenticated MIFARE
// Classic target.
func (d *Device) MIFAREClassicRead(target, block byte) ([]byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	res, err := d.exchange(cmdInDataExchange, []byte{target, mifareCmdRead, block}, maxPayloadExchange)
	if err != nil {
		return nil, err
	}
	if err := checkExchangeStatus(res); err != nil {
		return nil, err
	}
	if len(res) < 2+mifareBlockSize {
		return nil, fmt.Errorf("%w: read payload %d bytes", ErrFrameCorrupted, len(res))
	}
	return append([]byte(nil), res[2:2+mifareBlockSize]...), nil
}

// MIFAREClassicWrite writes one block to an authenticated MIFARE Classic
// target. data longer than a block is rejected before any bus traffic;
// shorter data is zero-padded to the full 16 bytes.
func (d *Device) MIFAREClassicWrite(target, block byte, data []byte) error {
	if len(data) > mifareBlockSize {
		return fmt.Errorf("%w: block data is %d bytes", ErrDataTooLarge, len(data))
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	args := make([]byte, 3+mifareBlockSize)
	args[0] = target
	args[1] = mifareCmdWrite
	args[2] = block
	copy(args[3:], data)

	res, err := d.exchange(cmdInDataExchange, args, maxPayloadSimple)
	if err != nil {
		return err
	}
	return checkExchangeStatus(res)
}
