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
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/openrfid/pn532/internal/frame"
	"github.com/openrfid/pn532/internal/retry"
)

// readyPolicy selects what a readiness deadline means to the caller.
type readyPolicy int

const (
	// readyHardFail turns a readiness deadline into a timeout error.
	readyHardFail readyPolicy = iota
	// readySoftEmpty turns a readiness deadline into a clean "nothing
	// there" result, used by target listing where an empty field is not a
	// failure.
	readySoftEmpty
)

// rawRead reads n bytes from the bus, retrying transient failures up to the
// configured attempt count with the configured delay in between.
func (d *Device) rawRead(n int) ([]byte, error) {
	buf, err := retry.Do(retry.Config{
		Clock:       d.clock,
		MaxAttempts: d.config.ReadRetries,
		Delay:       d.config.RetryDelay,
	}, func() ([]byte, bool, error) {
		buf, err := d.bus.ReadBytes(n)
		if err != nil {
			return nil, true, err
		}
		return buf, false, nil
	})
	if err != nil {
		return nil, NewTransportError("read", d.bus.Port(),
			fmt.Errorf("%w: %w", ErrReadExhausted, err), ErrorTypeTransient, true)
	}
	return buf, nil
}

// awaitReady polls the one-byte status read until the device raises the
// ready marker or timeout elapses. Under readyHardFail a deadline is a
// timeout error; under readySoftEmpty it returns false with no error. Probe
// read failures count as not ready.
func (d *Device) awaitReady(timeout time.Duration, policy readyPolicy) (bool, error) {
	_, err := retry.UntilDeadline(d.clock, timeout, d.config.PollInterval,
		func() (struct{}, bool, error) {
			buf, err := d.bus.ReadBytes(1)
			ready := err == nil && len(buf) > 0 && buf[0] == frame.ReadyMarker
			return struct{}{}, ready, nil
		})
	if err == nil {
		return true, nil
	}
	if policy == readySoftEmpty && errors.Is(err, retry.ErrDeadline) {
		return false, nil
	}
	return false, NewTimeoutError("await ready", d.bus.Port())
}

// sendCommand frames cmd with args, writes it to the bus and consumes the
// device's acknowledgement.
func (d *Device) sendCommand(cmd byte, args []byte) error {
	f, err := frame.BuildCommandFrame(cmd, args)
	if err != nil {
		return NewDataTooLargeError("send command", d.bus.Port())
	}
	debugf("tx % X", f)

	if err := d.bus.WriteBytes(f); err != nil {
		return NewTransportError("write command", d.bus.Port(),
			fmt.Errorf("%w: %w", ErrTransportWrite, err), ErrorTypeTransient, true)
	}
	if _, err := d.awaitReady(d.config.AckTimeout, readyHardFail); err != nil {
		return err
	}

	ack, err := d.rawRead(1 + len(frame.AckFrame))
	if err != nil {
		return err
	}
	if ack[0] != frame.ReadyMarker || !bytes.Equal(ack[1:], frame.AckFrame) {
		return NewNoACKError("send command", d.bus.Port())
	}
	return nil
}

// readResponse reads and validates a response frame sized for up to
// maxPayload data bytes, returning the data segment without the frame
// identifier.
func (d *Device) readResponse(maxPayload int) ([]byte, error) {
	buf, err := d.rawRead(maxPayload + frame.Overhead)
	if err != nil {
		return nil, err
	}
	debugf("rx % X", buf)

	payload, err := frame.ParseResponse(buf, maxPayload)
	if err != nil {
		if errors.Is(err, frame.ErrNotReady) {
			return nil, NewTransportNotReadyError("read response", d.bus.Port())
		}
		return nil, NewFrameCorruptedError("read response", d.bus.Port(), err)
	}
	return payload, nil
}

// exchange runs one full command round trip and checks the response code
// matches the command.
func (d *Device) exchange(cmd byte, args []byte, maxPayload int) ([]byte, error) {
	if err := d.sendCommand(cmd, args); err != nil {
		return nil, err
	}
	if _, err := d.awaitReady(d.config.AckTimeout, readyHardFail); err != nil {
		return nil, err
	}
	payload, err := d.readResponse(maxPayload)
	if err != nil {
		return nil, err
	}
	if len(payload) == 0 || payload[0] != cmd+1 {
		return nil, fmt.Errorf("%w: command %#02x", ErrUnexpectedResponse, cmd)
	}
	return payload, nil
}

// abort tells the device to drop the exchange in progress.
func (d *Device) abort() error {
	if err := d.bus.WriteBytes(frame.AckFrame); err != nil {
		return NewTransportError("abort", d.bus.Port(),
			fmt.Errorf("%w: %w", ErrTransportWrite, err), ErrorTypeTransient, true)
	}
	return nil
}

// wakeup nudges a powered-down device back to life and waits out its settle
// time.
func (d *Device) wakeup() error {
	if err := d.bus.WriteBytes(frame.AckFrame); err != nil {
		return NewTransportError("wakeup", d.bus.Port(),
			fmt.Errorf("%w: %w", ErrTransportWrite, err), ErrorTypeTransient, true)
	}
	d.clock.Sleep(d.config.WakeSettle)
	d.poweredDown = false
	return nil
}
