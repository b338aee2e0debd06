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

// Package detection locates I2C buses with a responding PN532. Probing is
// passive: each bus device node is addressed at the PN532's fixed address
// and a single status read decides presence, so other bus devices are not
// disturbed.
package detection

// Detect scans the system's I2C buses and returns the device paths where a
// PN532 answered. It returns pn532.ErrDeviceNotFound when no bus has one.
func Detect() ([]string, error) {
	return detectBuses()
}
