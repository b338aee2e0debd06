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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openrfid/pn532/internal/frame"
	"github.com/openrfid/pn532/internal/testutil"
)

func TestRawReadRetriesUntilExhausted(t *testing.T) {
	t.Parallel()

	bus := NewMockBus("mock")
	bus.SetReadError(errors.New("bus glitch"))
	d, clock := newTestDevice(t, bus)

	_, err := d.rawRead(8)
	assert.ErrorIs(t, err, ErrReadExhausted)
	assert.Equal(t, 6, bus.ReadCalls(), "default attempt count")
	// Five pauses between six attempts.
	assert.Equal(t, 50*time.Millisecond, clock.slept())
}

func TestRawReadSucceedsAfterTransientFailure(t *testing.T) {
	t.Parallel()

	bus := NewMockBus("mock")
	d, _ := newTestDevice(t, bus)
	bus.QueueRead([]byte{0xAA, 0xBB})

	buf, err := d.rawRead(2)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xAA, 0xBB}, buf)
	assert.Equal(t, 1, bus.ReadCalls())
}

func TestAwaitReadyImmediate(t *testing.T) {
	t.Parallel()

	bus := NewMockBus("mock")
	bus.QueueRead(testutil.Ready())
	d, clock := newTestDevice(t, bus)

	ready, err := d.awaitReady(time.Second, readyHardFail)
	require.NoError(t, err)
	assert.True(t, ready)
	// One poll interval before the first probe.
	assert.Equal(t, 5*time.Millisecond, clock.slept())
}

func TestAwaitReadyEventually(t *testing.T) {
	t.Parallel()

	bus := NewMockBus("mock")
	bus.QueueRead(testutil.NotReady())
	bus.QueueRead(testutil.NotReady())
	bus.QueueRead(testutil.Ready())
	d, _ := newTestDevice(t, bus)

	ready, err := d.awaitReady(time.Second, readyHardFail)
	require.NoError(t, err)
	assert.True(t, ready)
	assert.Equal(t, 3, bus.ReadCalls())
}

func TestAwaitReadyTimeoutHard(t *testing.T) {
	t.Parallel()

	bus := NewMockBus("mock") // never ready: fill byte stays zero
	d, clock := newTestDevice(t, bus)

	start := clock.Now()
	ready, err := d.awaitReady(100*time.Millisecond, readyHardFail)
	assert.False(t, ready)
	assert.ErrorIs(t, err, ErrTransportTimeout)
	assert.True(t, IsRetryable(err))

	elapsed := clock.Now().Sub(start)
	assert.GreaterOrEqual(t, elapsed, 100*time.Millisecond)
	assert.LessOrEqual(t, elapsed, 100*time.Millisecond+d.config.PollInterval)
}

func TestAwaitReadyTimeoutSoft(t *testing.T) {
	t.Parallel()

	bus := NewMockBus("mock")
	d, _ := newTestDevice(t, bus)

	ready, err := d.awaitReady(100*time.Millisecond, readySoftEmpty)
	require.NoError(t, err)
	assert.False(t, ready)
}

func TestSendCommandConsumesAck(t *testing.T) {
	t.Parallel()

	bus := NewMockBus("mock")
	bus.QueueRead(testutil.Ready())
	bus.QueueRead(testutil.Ack())
	d, _ := newTestDevice(t, bus)

	require.NoError(t, d.sendCommand(cmdGetFirmwareVersion, nil))

	writes := bus.Writes()
	require.Len(t, writes, 1)
	want, err := frame.BuildCommandFrame(cmdGetFirmwareVersion, nil)
	require.NoError(t, err)
	assert.Equal(t, want, writes[0])
}

func TestSendCommandNoAck(t *testing.T) {
	t.Parallel()

	bus := NewMockBus("mock")
	bus.QueueRead(testutil.Ready())
	bus.QueueRead([]byte{0x01, 0x00, 0x00, 0xFF, 0xFF, 0x00, 0x00}) // NACK
	d, _ := newTestDevice(t, bus)

	err := d.sendCommand(cmdGetFirmwareVersion, nil)
	assert.ErrorIs(t, err, ErrNoACK)
	assert.True(t, IsRetryable(err))
}

func TestSendCommandOversizedArgs(t *testing.T) {
	t.Parallel()

	bus := NewMockBus("mock")
	d, _ := newTestDevice(t, bus)

	err := d.sendCommand(cmdInDataExchange, make([]byte, 300))
	assert.ErrorIs(t, err, ErrDataTooLarge)
	assert.Empty(t, bus.Writes(), "nothing may reach the bus")
}

func TestReadResponseFrameErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		wantErr error
		name    string
		buf     []byte
	}{
		{
			name:    "not ready",
			buf:     testutil.NotReady(),
			wantErr: ErrNotReady,
		},
		{
			name: "corrupted data checksum",
			buf: func() []byte {
				buf := testutil.FirmwareResponse(0x32, 0x01, 0x06, 0x07)
				buf[8]++
				return buf
			}(),
			wantErr: ErrDataChecksum,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			bus := NewMockBus("mock")
			bus.QueueRead(tt.buf)
			d, _ := newTestDevice(t, bus)

			_, err := d.readResponse(16)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, IsRetryable(err))
		})
	}
}

func TestExchangeChecksResponseCode(t *testing.T) {
	t.Parallel()

	bus := NewMockBus("mock")
	bus.QueueRead(testutil.Ready())
	bus.QueueRead(testutil.Ack())
	bus.QueueRead(testutil.Ready())
	bus.QueueRead(testutil.Response(0x05)) // GetGeneralStatus code
	d, _ := newTestDevice(t, bus)

	_, err := d.exchange(cmdGetFirmwareVersion, nil, maxPayloadFirmware)
	assert.ErrorIs(t, err, ErrUnexpectedResponse)
}

func TestAbortWritesAckSequence(t *testing.T) {
	t.Parallel()

	bus := NewMockBus("mock")
	d, _ := newTestDevice(t, bus)

	require.NoError(t, d.abort())
	writes := bus.Writes()
	require.Len(t, writes, 1)
	assert.Equal(t, frame.AckFrame, writes[0])
}
