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
	"time"
)

// Option configures a Device during New.
type Option func(*Device) error

// WithClock replaces the time source. Intended for tests.
func WithClock(c Clock) Option {
	return func(d *Device) error {
		if c == nil {
			return errors.New("nil clock")
		}
		d.clock = c
		return nil
	}
}

// WithConfig replaces the whole link configuration.
func WithConfig(cfg DeviceConfig) Option {
	return func(d *Device) error {
		if cfg.ReadRetries < 1 {
			return errors.New("read retries must be at least 1")
		}
		d.config = cfg
		return nil
	}
}

// WithReadRetries sets how many attempts a raw read gets.
func WithReadRetries(n int) Option {
	return func(d *Device) error {
		if n < 1 {
			return errors.New("read retries must be at least 1")
		}
		d.config.ReadRetries = n
		return nil
	}
}

// WithRetryDelay sets the pause between failed raw read attempts.
func WithRetryDelay(delay time.Duration) Option {
	return func(d *Device) error {
		d.config.RetryDelay = delay
		return nil
	}
}

// WithAckTimeout sets the readiness deadline after a command write.
func WithAckTimeout(timeout time.Duration) Option {
	return func(d *Device) error {
		if timeout <= 0 {
			return errors.New("ack timeout must be positive")
		}
		d.config.AckTimeout = timeout
		return nil
	}
}

// WithPollInterval sets the pause between readiness probes.
func WithPollInterval(interval time.Duration) Option {
	return func(d *Device) error {
		if interval <= 0 {
			return errors.New("poll interval must be positive")
		}
		d.config.PollInterval = interval
		return nil
	}
}

// WithListTimeout sets the passive target listing deadline.
func WithListTimeout(timeout time.Duration) Option {
	return func(d *Device) error {
		if timeout <= 0 {
			return errors.New("list timeout must be positive")
		}
		d.config.ListTimeout = timeout
		return nil
	}
}
