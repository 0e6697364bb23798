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

package radio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carverauto/bleradar/pkg/logger"
)

func TestStopWithoutActiveScanIsNoOp(t *testing.T) {
	// The window timer tears the scan down itself; the controller's Stop
	// afterwards must return cleanly without touching the adapter again.
	d := NewBlueZDriver(logger.NewTestLogger())

	require.NoError(t, d.Stop())
	require.NoError(t, d.Stop())
}

func TestCollectServiceUUIDsFixedOrder(t *testing.T) {
	all := collectServiceUUIDs(func(uint16) bool { return true })
	assert.Equal(t, []string{"FEAA", "180F", "181A", "FE9F", "FD6F"}, all)

	// Same device, same answer, regardless of how often we probe.
	for n := 0; n < 10; n++ {
		assert.Equal(t, all, collectServiceUUIDs(func(uint16) bool { return true }))
	}
}

func TestCollectServiceUUIDsSubset(t *testing.T) {
	got := collectServiceUUIDs(func(id uint16) bool {
		return id == 0x180F || id == 0xFD6F
	})

	assert.Equal(t, []string{"180F", "FD6F"}, got)
}

func TestCollectServiceUUIDsNone(t *testing.T) {
	assert.Empty(t, collectServiceUUIDs(func(uint16) bool { return false }))
}
