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

// Package retry provides generic bounded-attempt and deadline-driven retry
// loops for bus operations. All waiting goes through an injected clock so
// callers can test timing behavior without real delays.
package retry

import (
	"errors"
	"time"
)

// ErrDeadline is returned by UntilDeadline when the deadline passes before
// the operation reports done.
var ErrDeadline = errors.New("retry deadline exceeded")

// Clock is the minimal time source the loops need. It is satisfied by any
// type with Now and Sleep.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// Config bounds a Do loop.
type Config struct {
	Clock       Clock
	MaxAttempts int
	Delay       time.Duration
}

// Do calls fn up to MaxAttempts times, sleeping Delay between attempts.
// fn returns its result, whether a failure should be retried, and the error.
// Do returns the last error when attempts run out or fn reports the failure
// is not retryable.
func Do[T any](cfg Config, fn func() (T, bool, error)) (T, error) {
	var zero T
	var lastErr error
	for attempt := 0; attempt < cfg.MaxAttempts; attempt++ {
		if attempt > 0 && cfg.Delay > 0 {
			cfg.Clock.Sleep(cfg.Delay)
		}
		result, shouldRetry, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err
		if !shouldRetry {
			break
		}
	}
	return zero, lastErr
}

// UntilDeadline calls fn repeatedly until it reports done or timeout
// elapses, sleeping interval before each attempt. fn returns its result,
// whether it is done, and a hard error that stops the loop immediately.
// When the deadline passes, UntilDeadline returns ErrDeadline.
func UntilDeadline[T any](clock Clock, timeout, interval time.Duration, fn func() (T, bool, error)) (T, error) {
	var zero T
	deadline := clock.Now().Add(timeout)
	for {
		clock.Sleep(interval)
		result, done, err := fn()
		if err != nil {
			return zero, err
		}
		if done {
			return result, nil
		}
		if !clock.Now().Before(deadline) {
			return zero, ErrDeadline
		}
	}
}
