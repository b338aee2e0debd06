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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequiresBus(t *testing.T) {
	t.Parallel()

	_, err := New(nil)
	assert.Error(t, err)
}

func TestNewAppliesDefaults(t *testing.T) {
	t.Parallel()

	d, err := New(NewMockBus("mock"))
	require.NoError(t, err)
	assert.Equal(t, DefaultDeviceConfig(), d.config)
	assert.False(t, d.PoweredDown())
}

func TestOptions(t *testing.T) {
	t.Parallel()

	d, err := New(NewMockBus("mock"),
		WithReadRetries(3),
		WithRetryDelay(20*time.Millisecond),
		WithAckTimeout(2*time.Second),
		WithPollInterval(time.Millisecond),
		WithListTimeout(10*time.Second),
	)
	require.NoError(t, err)
	assert.Equal(t, 3, d.config.ReadRetries)
	assert.Equal(t, 20*time.Millisecond, d.config.RetryDelay)
	assert.Equal(t, 2*time.Second, d.config.AckTimeout)
	assert.Equal(t, time.Millisecond, d.config.PollInterval)
	assert.Equal(t, 10*time.Second, d.config.ListTimeout)
}

func TestOptionValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		opt  Option
		name string
	}{
		{name: "nil clock", opt: WithClock(nil)},
		{name: "zero retries", opt: WithReadRetries(0)},
		{name: "zero ack timeout", opt: WithAckTimeout(0)},
		{name: "negative poll interval", opt: WithPollInterval(-time.Second)},
		{name: "zero list timeout", opt: WithListTimeout(0)},
		{name: "bad config", opt: WithConfig(DeviceConfig{})},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := New(NewMockBus("mock"), tt.opt)
			assert.Error(t, err)
		})
	}
}

func TestCloseReleasesBus(t *testing.T) {
	t.Parallel()

	bus := NewMockBus("mock")
	d, err := New(bus)
	require.NoError(t, err)
	require.NoError(t, d.Close())
	assert.True(t, bus.Closed())
}

func TestMockBusServesQueuedReads(t *testing.T) {
	t.Parallel()

	bus := NewMockBus("mock")
	bus.QueueRead([]byte{0x01, 0x02})

	buf, err := bus.ReadBytes(4)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02, 0x00, 0x00}, buf, "short buffers are fill-padded")

	buf, err = bus.ReadBytes(2)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x00}, buf, "empty queue serves fill bytes")
	assert.Equal(t, 2, bus.ReadCalls())
	assert.Equal(t, "mock", bus.Port())
}
