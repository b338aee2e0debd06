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

// Response payload bounds per command, counting the frame identifier and
// the response code. Oversized declarations are rejected as truncated.
const (
	maxPayloadFirmware = 6
	maxPayloadStatus   = 16
	maxPayloadSimple   = 3
	maxPayloadList     = 20
	maxPayloadExchange = 20
)

// GetFirmwareVersion queries the chip identifier and firmware revision.
func (d *Device) GetFirmwareVersion() (*FirmwareVersion, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	res, err := d.exchange(cmdGetFirmwareVersion, nil, maxPayloadFirmware)
	if err != nil {
		return nil, err
	}
	if len(res) < 5 {
		return nil, fmt.Errorf("%w: firmware version payload %d bytes", ErrFrameCorrupted, len(res))
	}
	return &FirmwareVersion{
		IC:       res[1],
		Version:  res[2],
		Revision: res[3],
		Support:  res[4],
	}, nil
}

// GetGeneralStatus queries the device-wide state: last RF error, external
// field detection and the targets currently tracked.
func (d *Device) GetGeneralStatus() (*GeneralStatus, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	res, err := d.exchange(cmdGetGeneralStatus, nil, maxPayloadStatus)
	if err != nil {
		return nil, err
	}
	if len(res) < 4 {
		return nil, fmt.Errorf("%w: general status payload %d bytes", ErrFrameCorrupted, len(res))
	}

	status := &GeneralStatus{
		LastError:    res[1],
		FieldPresent: res[2] == 0x01,
	}
	count := int(res[3])
	if count > 2 || len(res) < 4+4*count {
		return nil, fmt.Errorf("%w: general status reports %d targets", ErrFrameCorrupted, count)
	}
	for i := 0; i < count; i++ {
		t := res[4+4*i:]
		status.Targets = append(status.Targets, TargetStatus{
			LogicalNumber:  t[0],
			BitRateRx:      t[1],
			BitRateTx:      t[2],
			ModulationType: t[3],
		})
	}
	return status, nil
}

// SAMConfiguration sets the Security Access Module mode. The virtual card
// timeout is fixed at one second and the IRQ pin stays enabled.
func (d *Device) SAMConfiguration(mode SAMMode) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	_, err := d.exchange(cmdSAMConfiguration, []byte{byte(mode), 0x14, 0x01}, maxPayloadSimple)
	return err
}

// ListPassiveTarget looks for a single ISO14443A target in the field. The
// wait is bounded by the configured listing timeout; when nothing enters
// the field in time the listing is aborted and (nil, nil) is returned, as
// it is when the device answers with zero targets. More than one answering
// target is an error.
func (d *Device) ListPassiveTarget() (*TargetInfo, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	err := d.sendCommand(cmdInListPassiveTarget, []byte{0x01, BaudRateISO14443A})
	if err != nil {
		return nil, err
	}

	ready, err := d.awaitReady(d.config.ListTimeout, readySoftEmpty)
	if err != nil {
		return nil, err
	}
	if !ready {
		// Nothing entered the field; stop the device from listening.
		if err := d.abort(); err != nil {
			return nil, err
		}
		return nil, nil
	}

	res, err := d.readResponse(maxPayloadList)
	if err != nil {
		return nil, err
	}
	if len(res) == 0 || res[0] != cmdInListPassiveTarget+1 {
		return nil, fmt.Errorf("%w: command %#02x", ErrUnexpectedResponse, cmdInListPassiveTarget)
	}
	if len(res) < 2 || res[1] == 0 {
		return nil, nil
	}
	if res[1] > 1 {
		return nil, ErrMultipleTargets
	}
	if len(res) < 7 {
		return nil, fmt.Errorf("%w: target data %d bytes", ErrFrameCorrupted, len(res))
	}

	uidLen := int(res[6])
	if uidLen > 7 {
		return nil, ErrUIDTooLong
	}
	if len(res) < 7+uidLen {
		return nil, fmt.Errorf("%w: target data %d bytes", ErrFrameCorrupted, len(res))
	}

	info := &TargetInfo{
		TargetNumber: res[2],
		SelRes:       res[5],
		UID:          append([]byte(nil), res[7:7+uidLen]...),
	}
	copy(info.SensRes[:], res[3:5])
	return info, nil
}

// PowerDown puts the device into power-down mode. wakeupSources is a bit
// mask of Wakeup* flags naming the interfaces allowed to wake it. On
// success further commands need a Wakeup first.
func (d *Device) PowerDown(wakeupSources byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	res, err := d.exchange(cmdPowerDown, []byte{wakeupSources}, maxPayloadSimple)
	if err != nil {
		return err
	}
	if len(res) < 2 {
		return fmt.Errorf("%w: power down payload %d bytes", ErrFrameCorrupted, len(res))
	}
	if res[1] != 0x00 {
		return fmt.Errorf("%w: status %#02x", ErrCommandFailed, res[1])
	}
	d.poweredDown = true
	return nil
}

// Wakeup brings a powered-down device back and waits out its settle time.
// It is harmless on a device that is already awake.
func (d *Device) Wakeup() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.wakeup()
}
