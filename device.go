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
	"errors"
	"sync"
	"time"
)

// DeviceConfig holds the timing and retry parameters of the link driver.
type DeviceConfig struct {
	// ReadRetries bounds how many times a raw read is attempted before the
	// exchange is abandoned.
	ReadRetries int

	// RetryDelay is the pause between failed raw read attempts.
	RetryDelay time.Duration

	// AckTimeout bounds how long to wait for the device to stage an ACK or
	// a response after a command write.
	AckTimeout time.Duration

	// PollInterval is the pause between readiness probes.
	PollInterval time.Duration

	// ListTimeout bounds a passive target listing before it is aborted.
	ListTimeout time.Duration

	// WakeSettle is the pause after a wakeup write before the device is
	// addressed again.
	WakeSettle time.Duration
}

// DefaultDeviceConfig returns the stock link timing parameters.
func DefaultDeviceConfig() DeviceConfig {
	return DeviceConfig{
		ReadRetries:  6,
		RetryDelay:   10 * time.Millisecond,
		AckTimeout:   time.Second,
		PollInterval: 5 * time.Millisecond,
		ListTimeout:  3 * time.Second,
		WakeSettle:   50 * time.Millisecond,
	}
}

// Device drives a PN532 over a raw byte bus: framing, readiness polling,
// acknowledgement handling and the command set sit here, on top of a
// BusTransport that only moves bytes.
//
// A Device is safe for concurrent use; a mutex serializes exchanges so at
// most one command frame is in flight.
type Device struct {
	bus         BusTransport
	clock       Clock
	config      DeviceConfig
	mu          sync.Mutex
	poweredDown bool
}

// New creates a Device on top of bus and applies any options.
func New(bus BusTransport, opts ...Option) (*Device, error) {
	if bus == nil {
		return nil, errors.New("nil bus transport")
	}
	d := &Device{
		bus:    bus,
		clock:  realClock{},
		config: DefaultDeviceConfig(),
	}
	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Close releases the underlying bus.
func (d *Device) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.bus.Close()
}

// PoweredDown reports whether the last successful PowerDown has not yet been
// followed by a Wakeup.
func (d *Device) PoweredDown() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.poweredDown
}
