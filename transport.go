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

import "sync"

// BusTransport is an addressed byte bus carrying raw frame traffic to a
// single device. Implementations do no framing: WriteBytes sends p as one
// bus transaction and ReadBytes reads exactly n bytes as one transaction.
// On a ready-marker bus every read transaction starts with the device's
// status byte.
type BusTransport interface {
	// WriteBytes sends p to the device as a single transaction.
	WriteBytes(p []byte) error

	// ReadBytes reads exactly n bytes from the device as a single
	// transaction.
	ReadBytes(n int) ([]byte, error)

	// Close releases the bus.
	Close() error

	// Port returns a human-readable identifier for the bus, used in error
	// context.
	Port() string
}

// MockBus is a scripted BusTransport for tests. Reads are served from a
// FIFO queue of canned buffers; writes are recorded. When the queue is
// empty a read returns n copies of FillByte, which models a device that is
// not ready (FillByte zero).
type MockBus struct {
	readErr   error
	writeErr  error
	reads     [][]byte
	writes    [][]byte
	port      string
	FillByte  byte
	readCalls int
	closed    bool
	mu        sync.Mutex
}

// NewMockBus creates a MockBus identifying itself as port.
func NewMockBus(port string) *MockBus {
	return &MockBus{port: port}
}

// QueueRead appends a canned read buffer. Each ReadBytes call consumes one
// queued buffer, truncated or fill-padded to the requested length.
func (m *MockBus) QueueRead(buf []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reads = append(m.reads, buf)
}

// SetReadError makes every subsequent ReadBytes call fail with err.
func (m *MockBus) SetReadError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.readErr = err
}

// SetWriteError makes every subsequent WriteBytes call fail with err.
func (m *MockBus) SetWriteError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writeErr = err
}

// WriteBytes records p.
func (m *MockBus) WriteBytes(p []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.writeErr != nil {
		return m.writeErr
	}
	cp := make([]byte, len(p))
	copy(cp, p)
	m.writes = append(m.writes, cp)
	return nil
}

// ReadBytes serves the next queued buffer, sized to n.
func (m *MockBus) ReadBytes(n int) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.readCalls++
	if m.readErr != nil {
		return nil, m.readErr
	}

	out := make([]byte, n)
	for i := range out {
		out[i] = m.FillByte
	}
	if len(m.reads) > 0 {
		copy(out, m.reads[0])
		m.reads = m.reads[1:]
	}
	return out, nil
}

// Close marks the bus closed.
func (m *MockBus) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Port returns the identifier given at construction.
func (m *MockBus) Port() string {
	return m.port
}

// Writes returns all recorded write transactions in order.
func (m *MockBus) Writes() [][]byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([][]byte, len(m.writes))
	copy(out, m.writes)
	return out
}

// ReadCalls returns how many times ReadBytes was called.
func (m *MockBus) ReadCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.readCalls
}

// Closed reports whether Close was called.
func (m *MockBus) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}
