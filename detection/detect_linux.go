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

//go:build linux

package detection

import (
	"fmt"
	"path/filepath"

	"golang.org/x/sys/unix"

	"github.com/openrfid/pn532"
)

// Linux i2c-dev ioctl requests.
const (
	// i2cSlave sets the slave address for subsequent reads and writes.
	i2cSlave = 0x0703
	// i2cFuncs queries the adapter functionality mask.
	i2cFuncs = 0x0705
	// i2cFuncI2C flags plain I2C transfer support in that mask.
	i2cFuncI2C = 0x00000001
)

// deviceAddress is the PN532's fixed 7-bit I2C address.
const deviceAddress = 0x24

func detectBuses() ([]string, error) {
	paths, err := filepath.Glob("/dev/i2c-*")
	if err != nil {
		return nil, fmt.Errorf("failed to scan for I2C devices: %w", err)
	}

	var found []string
	for _, path := range paths {
		if probeBus(path) {
			found = append(found, path)
		}
	}
	if len(found) == 0 {
		return nil, pn532.ErrDeviceNotFound
	}
	return found, nil
}

// probeBus reports whether a PN532 answers a status read on the bus at
// path. Only the PN532's own address is addressed, so other devices on the
// bus are left alone.
func probeBus(path string) bool {
	fd, err := unix.Open(path, unix.O_RDWR, 0)
	if err != nil {
		return false
	}
	defer func() { _ = unix.Close(fd) }()

	funcs, err := unix.IoctlGetUint32(fd, i2cFuncs)
	if err != nil || funcs&i2cFuncI2C == 0 {
		return false
	}
	if err := unix.IoctlSetInt(fd, i2cSlave, deviceAddress); err != nil {
		return false
	}

	// A present device ACKs its address and hands back its status byte.
	buf := make([]byte, 1)
	n, err := unix.Read(fd, buf)
	return err == nil && n == 1
}
