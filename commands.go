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

// PN532 command codes. The device echoes each code plus one as the first
// byte of the matching response.
const (
	cmdGetFirmwareVersion  = 0x02
	cmdGetGeneralStatus    = 0x04
	cmdSAMConfiguration    = 0x14
	cmdPowerDown           = 0x16
	cmdInDataExchange      = 0x40
	cmdInListPassiveTarget = 0x4A
)

// MIFARE Classic command codes carried inside InDataExchange.
const (
	mifareCmdAuthA = 0x60
	mifareCmdAuthB = 0x61
	mifareCmdRead  = 0x30
	mifareCmdWrite = 0xA0
)

// Wakeup source flags for PowerDown. Combine with bitwise OR.
const (
	WakeupINT0    = 0x01
	WakeupINT1    = 0x02
	WakeupRF      = 0x08
	WakeupHSU     = 0x10
	WakeupSPI     = 0x20
	WakeupGPIO    = 0x40
	WakeupI2C     = 0x80
	WakeupDefault = WakeupI2C | WakeupRF
)

// BaudRateISO14443A selects 106 kbps type A targets in InListPassiveTarget.
const BaudRateISO14443A = 0x00

// SAMMode selects how the Security Access Module interface is configured.
type SAMMode byte

const (
	// SAMModeNormal disables the SAM; the PN532 handles targets itself.
	SAMModeNormal SAMMode = 0x01
	// SAMModeVirtualCard makes the PN532 act as a virtual card.
	SAMModeVirtualCard SAMMode = 0x02
	// SAMModeWiredCard gives the host direct access to the SAM.
	SAMModeWiredCard SAMMode = 0x03
	// SAMModeDualCard runs both interfaces.
	SAMModeDualCard SAMMode = 0x04
)
