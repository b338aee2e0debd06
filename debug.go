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
	"sync/atomic"

	log "github.com/sirupsen/logrus"
)

var debugEnabled atomic.Bool

// SetDebugLogging toggles frame-level debug output. When enabled every bus
// frame is hex dumped at debug level.
func SetDebugLogging(enabled bool) {
	debugEnabled.Store(enabled)
	if enabled {
		log.SetLevel(log.DebugLevel)
	}
}

func debugf(format string, args ...any) {
	if debugEnabled.Load() {
		log.Debugf(format, args...)
	}
}
