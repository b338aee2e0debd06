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

// Package i2c provides the I2C byte-bus transport for a PN532, built on
// periph.io. The device sits at the fixed 7-bit address 0x24 and prepends
// its ready status byte to every read transaction; this package does no
// framing of its own.
package i2c

import (
	"fmt"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"
)

// DeviceAddress is the PN532's fixed 7-bit I2C address.
const DeviceAddress = 0x24

// BusSpeed is the fast-mode clock the PN532 supports.
const BusSpeed = 400 * physic.KiloHertz

// Transport is an I2C implementation of the pn532 byte-bus contract.
type Transport struct {
	bus  i2c.BusCloser
	dev  *i2c.Dev
	port string
}

// New opens the named I2C bus and addresses the PN532 on it. An empty name
// selects the platform's default bus.
func New(busName string) (*Transport, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize host: %w", err)
	}

	bus, err := i2creg.Open(busName)
	if err != nil {
		return nil, fmt.Errorf("failed to open I2C bus %q: %w", busName, err)
	}

	// Not every adapter can change speed; stay at the default when it
	// can't.
	_ = bus.SetSpeed(BusSpeed)

	return &Transport{
		bus:  bus,
		dev:  &i2c.Dev{Bus: bus, Addr: DeviceAddress},
		port: bus.String(),
	}, nil
}

// WriteBytes sends p to the device as one I2C write transaction.
func (t *Transport) WriteBytes(p []byte) error {
	return t.dev.Tx(p, nil)
}

// ReadBytes reads exactly n bytes as one I2C read transaction. The first
// byte is the device's ready status.
func (t *Transport) ReadBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if err := t.dev.Tx(nil, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// Close releases the underlying bus.
func (t *Transport) Close() error {
	return t.bus.Close()
}

// Port returns the bus identifier.
func (t *Transport) Port() string {
	return t.port
}
