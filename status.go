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

// FirmwareVersion identifies the PN532 silicon and firmware revision.
type FirmwareVersion struct {
	// IC is the chip identifier (0x32 for a PN532).
	IC byte
	// Version is the firmware major version.
	Version byte
	// Revision is the firmware minor version.
	Revision byte
	// Support is a bit mask of supported target types.
	Support byte
}

func (v *FirmwareVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Version, v.Revision)
}

// TargetStatus describes one target currently tracked by the device, as
// reported by GetGeneralStatus.
type TargetStatus struct {
	// LogicalNumber is the target slot assigned by the device.
	LogicalNumber byte
	// BitRateRx is the reception bit rate code.
	BitRateRx byte
	// BitRateTx is the transmission bit rate code.
	BitRateTx byte
	// ModulationType is the modulation in use with this target.
	ModulationType byte
}

// GeneralStatus is the device-wide state reported by GetGeneralStatus.
type GeneralStatus struct {
	// Targets holds up to two currently tracked targets.
	Targets []TargetStatus
	// LastError is the error code of the most recent RF communication.
	LastError byte
	// FieldPresent reports whether an external RF field is detected.
	FieldPresent bool
}

// TargetInfo describes a passive ISO14443A target found by
// ListPassiveTarget.
type TargetInfo struct {
	// UID is the target's unique identifier, 4 to 7 bytes.
	UID []byte
	// SensRes is the ATQA answer to request.
	SensRes [2]byte
	// SelRes is the SAK select acknowledge.
	SelRes byte
	// TargetNumber is the logical slot the device assigned.
	TargetNumber byte
}
