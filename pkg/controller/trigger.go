/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package controller

import (
	"os"
	"os/signal"
	"sync/atomic"

	"golang.org/x/sys/unix"

	"github.com/carverauto/bleradar/pkg/logger"
)

// SignalTrigger latches SIGUSR1 into the manual-upload flag. The latch is
// level-held until the controller samples it, so a signal landing between
// ticks is never lost.
type SignalTrigger struct {
	armed  atomic.Bool
	sigCh  chan os.Signal
	logger logger.Logger
}

var _ Trigger = (*SignalTrigger)(nil)

// NewSignalTrigger registers for SIGUSR1 and starts the latch goroutine.
func NewSignalTrigger(log logger.Logger) *SignalTrigger {
	t := &SignalTrigger{
		sigCh:  make(chan os.Signal, 1),
		logger: log,
	}

	signal.Notify(t.sigCh, unix.SIGUSR1)

	go func() {
		for range t.sigCh {
			t.armed.Store(true)
			t.logger.Debug().Msg("Manual upload signal received")
		}
	}()

	return t
}

// Triggered reads and clears the latch.
func (t *SignalTrigger) Triggered() bool {
	return t.armed.Swap(false)
}

// Close unregisters the signal handler and stops the latch goroutine.
func (t *SignalTrigger) Close() {
	signal.Stop(t.sigCh)
	close(t.sigCh)
}
