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

// Package pn532 drives a PN532 contactless reader over a raw addressed byte
// bus such as I2C. The package owns the whole link protocol: frame
// construction and validation, readiness polling against the status byte
// the device prepends to every read, acknowledgement handling, bounded
// retries and exchange aborts. The bus side is reduced to the BusTransport
// interface, so any transport that can move raw bytes to a fixed address
// can carry a Device.
//
// A typical session over I2C:
//
//	bus, err := i2c.New("/dev/i2c-1")
//	if err != nil {
//		return err
//	}
//	dev, err := pn532.New(bus)
//	if err != nil {
//		return err
//	}
//	defer dev.Close()
//
//	if err := dev.SAMConfiguration(pn532.SAMModeNormal); err != nil {
//		return err
//	}
//	target, err := dev.ListPassiveTarget()
//	if err != nil {
//		return err
//	}
//	if target == nil {
//		return nil // nothing in the field
//	}
//	fmt.Printf("found target %X\n", target.UID)
//
// MIFARE Classic blocks can then be authenticated, read and written through
// the MIFAREClassic* methods, and NDEF content recovered from block dumps
// with DecodeNDEF.
package pn532
