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
	"fmt"

	"github.com/openrfid/pn532/internal/frame"
)

// ErrorType classifies errors for retry decisions.
type ErrorType int

const (
	// ErrorTypePermanent indicates an error that won't be resolved by retrying
	ErrorTypePermanent ErrorType = iota
	// ErrorTypeTransient indicates an error that may be resolved by retrying
	ErrorTypeTransient
	// ErrorTypeTimeout indicates a timeout error with special retry handling
	ErrorTypeTimeout
)

// Sentinel errors for common failure conditions
var (
	// ErrTransportRead indicates a bus read failed
	ErrTransportRead = errors.New("transport read failed")
	// ErrTransportWrite indicates a bus write failed
	ErrTransportWrite = errors.New("transport write failed")
	// ErrTransportTimeout indicates the device did not become ready in time
	ErrTransportTimeout = errors.New("transport timeout")
	// ErrReadExhausted indicates every bounded read attempt failed
	ErrReadExhausted = errors.New("read attempts exhausted")
	// ErrNoACK indicates the device did not acknowledge a command
	ErrNoACK = errors.New("no ACK received")
	// ErrUnexpectedResponse indicates a response carried the wrong command code
	ErrUnexpectedResponse = errors.New("unexpected response code")
	// ErrCommandFailed indicates the device reported a non-zero status code
	ErrCommandFailed = errors.New("command failed")
	// ErrMultipleTargets indicates more targets answered than were requested
	ErrMultipleTargets = errors.New("multiple targets in field")
	// ErrUIDTooLong indicates a target reported an out-of-range UID length
	ErrUIDTooLong = errors.New("target UID too long")
	// ErrInvalidKeyType indicates an authentication key type outside key A/B
	ErrInvalidKeyType = errors.New("invalid authentication key type")
	// ErrInvalidParameter indicates a malformed operation argument
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrDeviceNotFound indicates no device answered on any probed bus
	ErrDeviceNotFound = errors.New("device not found")
)

// Frame-level sentinels, surfaced from the codec so callers can match them
// without importing internal packages.
var (
	// ErrNotReady indicates a read that did not carry the ready marker
	ErrNotReady = frame.ErrNotReady
	// ErrFrameCorrupted indicates broken framing in a response
	ErrFrameCorrupted = frame.ErrMalformed
	// ErrLengthChecksum indicates a length checksum mismatch
	ErrLengthChecksum = frame.ErrLengthChecksum
	// ErrDataChecksum indicates a data checksum mismatch
	ErrDataChecksum = frame.ErrDataChecksum
	// ErrFrameTruncated indicates a frame longer than its read buffer
	ErrFrameTruncated = frame.ErrTruncated
	// ErrDataTooLarge indicates data exceeding a single-frame payload
	ErrDataTooLarge = frame.ErrDataTooLarge
)

// TransportError wraps bus-level failures with context about the operation,
// the port it happened on and whether retrying is worthwhile.
type TransportError struct {
	Err       error
	Op        string
	Port      string
	Type      ErrorType
	Retryable bool
}

func (e *TransportError) Error() string {
	if e.Port != "" {
		return fmt.Sprintf("%s on %s: %v", e.Op, e.Port, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// NewTransportError creates a TransportError with explicit classification.
func NewTransportError(op, port string, err error, errType ErrorType, retryable bool) *TransportError {
	return &TransportError{
		Op:        op,
		Port:      port,
		Err:       err,
		Type:      errType,
		Retryable: retryable,
	}
}

// NewTimeoutError creates a timeout TransportError.
func NewTimeoutError(op, port string) *TransportError {
	return NewTransportError(op, port, ErrTransportTimeout, ErrorTypeTimeout, true)
}

// NewNoACKError creates a TransportError for a missing acknowledgement.
func NewNoACKError(op, port string) *TransportError {
	return NewTransportError(op, port, ErrNoACK, ErrorTypeTransient, true)
}

// NewTransportNotReadyError creates a TransportError for a device that has
// no response staged.
func NewTransportNotReadyError(op, port string) *TransportError {
	return NewTransportError(op, port, ErrNotReady, ErrorTypeTransient, true)
}

// NewFrameCorruptedError creates a TransportError for broken framing.
func NewFrameCorruptedError(op, port string, err error) *TransportError {
	return NewTransportError(op, port, err, ErrorTypeTransient, true)
}

// NewDataTooLargeError creates a permanent TransportError for oversized data.
func NewDataTooLargeError(op, port string) *TransportError {
	return NewTransportError(op, port, ErrDataTooLarge, ErrorTypePermanent, false)
}

// IsRetryable reports whether an operation that produced err is worth
// retrying. Unclassified errors are assumed permanent.
func IsRetryable(err error) bool {
	var te *TransportError
	if errors.As(err, &te) {
		return te.Retryable
	}
	return false
}

// GetErrorType returns the classification of err, defaulting to permanent
// for errors that carry no TransportError.
func GetErrorType(err error) ErrorType {
	var te *TransportError
	if errors.As(err, &te) {
		return te.Type
	}
	return ErrorTypePermanent
}
