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
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/carverauto/bleradar/pkg/logger"
	"github.com/carverauto/bleradar/pkg/models"
	"github.com/carverauto/bleradar/pkg/radio"
	"github.com/carverauto/bleradar/pkg/tracker"
)

var errTest = errors.New("test error")

type harness struct {
	ctrl    *Controller
	driver  *radio.MockDriver
	uplink  *MockUplink
	display *MockDisplay
	trigger *MockTrigger
	table   *tracker.Table
	now     time.Time
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	mc := gomock.NewController(t)
	log := logger.NewTestLogger()

	cfg := &models.Config{
		DeviceID:  "agent-test",
		ServerURL: "http://server.local",
	}
	cfg.ApplyDefaults()

	h := &harness{
		driver:  radio.NewMockDriver(mc),
		uplink:  NewMockUplink(mc),
		display: NewMockDisplay(mc),
		trigger: NewMockTrigger(mc),
		table:   tracker.New(cfg.TableCapacity, log),
		now:     time.Unix(10000, 0),
	}

	h.ctrl = New(cfg, h.driver, h.table, h.uplink, h.display, h.trigger, log)
	h.ctrl.nowFn = func() time.Time { return h.now }

	// Rendering happens on most ticks and is not what these tests assert.
	h.display.EXPECT().Render(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	return h
}

func (h *harness) advance(d time.Duration) {
	h.now = h.now.Add(d)
}

func (h *harness) observe(last byte) {
	h.table.HandleAdvertisement(radio.Advertisement{
		Addr:           models.HardwareAddr{0xaa, 0xbb, 0xcc, 0xdd, 0xee, last},
		AddrKind:       models.AddrPublic,
		RSSI:           -60,
		TxPower:        models.TxPowerUnknown,
		ManufacturerID: models.ManufacturerIDNone,
	})
}

func TestEmptyTableShortCircuit(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.driver.EXPECT().Start(gomock.Any(), gomock.Any()).Return(nil)
	h.driver.EXPECT().Stop().Return(nil)
	h.trigger.EXPECT().Triggered().Return(false).AnyTimes()
	// The uplink must never be touched when the table is empty.

	h.ctrl.startWindow()
	require.Equal(t, StateScanning, h.ctrl.State())

	h.advance(31 * time.Second)
	h.ctrl.Tick(ctx)
	require.Equal(t, StateStopping, h.ctrl.State())

	h.ctrl.Tick(ctx)
	require.Equal(t, StateCooldown, h.ctrl.State())

	// A second scan window begins once the cooldown expires.
	h.driver.EXPECT().Start(gomock.Any(), gomock.Any()).Return(nil)
	h.advance(6 * time.Second)
	h.ctrl.Tick(ctx)
	require.Equal(t, StateScanning, h.ctrl.State())

	assert.Equal(t, 2, h.ctrl.Stats().Cycles)
	assert.Equal(t, 0, h.ctrl.Stats().UploadOK)
	assert.Equal(t, 0, h.ctrl.Stats().UploadFail)
}

func TestManualTriggerLeavesScanningNextTick(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.driver.EXPECT().Start(gomock.Any(), gomock.Any()).Return(nil)
	h.trigger.EXPECT().Triggered().Return(true)

	h.ctrl.startWindow()

	// One second in, nowhere near the window end.
	h.advance(time.Second)
	h.ctrl.Tick(ctx)

	assert.Equal(t, StateStopping, h.ctrl.State())
}

func TestUploadCycleSuccess(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.driver.EXPECT().Start(gomock.Any(), gomock.Any()).Return(nil)
	h.trigger.EXPECT().Triggered().Return(false).AnyTimes()

	var uploaded *models.UploadPayload

	// Radio teardown strictly precedes network bring-up, and disconnect
	// closes the cycle.
	gomock.InOrder(
		h.driver.EXPECT().Stop().Return(nil),
		h.uplink.EXPECT().Connect(gomock.Any()).Return(nil),
		h.uplink.EXPECT().Probe(gomock.Any()).Return(nil),
		h.uplink.EXPECT().Upload(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *models.UploadPayload) error {
				uploaded = p
				return nil
			}),
		h.uplink.EXPECT().Disconnect().Return(nil),
	)

	h.ctrl.startWindow()
	h.observe(0x01)
	h.observe(0x02)

	h.advance(31 * time.Second)
	for _, expected := range []State{StateStopping, StateConnecting, StateProbing, StateUploading, StateDisconnecting, StateCooldown} {
		h.ctrl.Tick(ctx)
		require.Equal(t, expected, h.ctrl.State())
	}

	require.NotNil(t, uploaded)
	assert.Equal(t, "agent-test", uploaded.DeviceID)
	assert.Len(t, uploaded.Devices, 2)

	stats := h.ctrl.Stats()
	assert.Equal(t, 1, stats.UploadOK)
	assert.Equal(t, 0, stats.UploadFail)
	assert.Equal(t, 2, stats.LastBatch)
}

func TestConnectFailureAbortsCycle(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.driver.EXPECT().Start(gomock.Any(), gomock.Any()).Return(nil)
	h.driver.EXPECT().Stop().Return(nil)
	h.trigger.EXPECT().Triggered().Return(false).AnyTimes()

	h.uplink.EXPECT().Connect(gomock.Any()).Return(errTest)
	h.uplink.EXPECT().Disconnect().Return(nil)
	// No Probe, no Upload.

	h.ctrl.startWindow()
	h.observe(0x01)

	h.advance(31 * time.Second)
	for _, expected := range []State{StateStopping, StateConnecting, StateDisconnecting, StateCooldown} {
		h.ctrl.Tick(ctx)
		require.Equal(t, expected, h.ctrl.State())
	}

	stats := h.ctrl.Stats()
	assert.Equal(t, 0, stats.UploadOK)
	assert.Equal(t, 1, stats.UploadFail)
}

func TestProbeFailureIsNonFatal(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.driver.EXPECT().Start(gomock.Any(), gomock.Any()).Return(nil)
	h.driver.EXPECT().Stop().Return(nil)
	h.trigger.EXPECT().Triggered().Return(false).AnyTimes()

	h.uplink.EXPECT().Connect(gomock.Any()).Return(nil)
	h.uplink.EXPECT().Probe(gomock.Any()).Return(errTest)
	h.uplink.EXPECT().Upload(gomock.Any(), gomock.Any()).Return(nil)
	h.uplink.EXPECT().Disconnect().Return(nil)

	h.ctrl.startWindow()
	h.observe(0x01)

	h.advance(31 * time.Second)
	for n := 0; n < 5; n++ {
		h.ctrl.Tick(ctx)
	}

	assert.Equal(t, StateCooldown, h.ctrl.State())
	assert.Equal(t, 1, h.ctrl.Stats().UploadOK)
}

func TestUploadFailureCounted(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.driver.EXPECT().Start(gomock.Any(), gomock.Any()).Return(nil)
	h.driver.EXPECT().Stop().Return(nil)
	h.trigger.EXPECT().Triggered().Return(false).AnyTimes()

	h.uplink.EXPECT().Connect(gomock.Any()).Return(nil)
	h.uplink.EXPECT().Probe(gomock.Any()).Return(nil)
	h.uplink.EXPECT().Upload(gomock.Any(), gomock.Any()).Return(errTest)
	h.uplink.EXPECT().Disconnect().Return(nil)

	h.ctrl.startWindow()
	h.observe(0x01)

	h.advance(31 * time.Second)
	for n := 0; n < 5; n++ {
		h.ctrl.Tick(ctx)
	}

	assert.Equal(t, StateCooldown, h.ctrl.State())
	assert.Equal(t, 1, h.ctrl.Stats().UploadFail)
}

func TestTableResetAfterFailedUpload(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.driver.EXPECT().Start(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	h.driver.EXPECT().Stop().Return(nil)
	h.trigger.EXPECT().Triggered().Return(false).AnyTimes()

	h.uplink.EXPECT().Connect(gomock.Any()).Return(nil)
	h.uplink.EXPECT().Probe(gomock.Any()).Return(nil)
	h.uplink.EXPECT().Upload(gomock.Any(), gomock.Any()).Return(errTest)
	h.uplink.EXPECT().Disconnect().Return(nil)

	h.ctrl.startWindow()
	h.observe(0x01)

	h.advance(31 * time.Second)
	for n := 0; n < 5; n++ {
		h.ctrl.Tick(ctx)
	}

	require.Equal(t, StateCooldown, h.ctrl.State())
	require.Equal(t, 1, h.table.Len())

	// The failed batch is discarded at the next window start; there is no
	// retry buffer.
	h.advance(6 * time.Second)
	h.ctrl.Tick(ctx)

	require.Equal(t, StateScanning, h.ctrl.State())
	assert.Equal(t, 0, h.table.Len())
}

func TestCooldownWaitsFullDelay(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.driver.EXPECT().Start(gomock.Any(), gomock.Any()).Return(nil)
	h.driver.EXPECT().Stop().Return(nil)
	h.trigger.EXPECT().Triggered().Return(false).AnyTimes()

	h.ctrl.startWindow()
	h.advance(31 * time.Second)
	h.ctrl.Tick(ctx) // -> stopping
	h.ctrl.Tick(ctx) // -> cooldown (empty table)
	require.Equal(t, StateCooldown, h.ctrl.State())

	// Still cooling down.
	h.advance(2 * time.Second)
	h.ctrl.Tick(ctx)
	assert.Equal(t, StateCooldown, h.ctrl.State())
}

func TestRadioStartFailureStaysInCooldown(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.trigger.EXPECT().Triggered().Return(false).AnyTimes()
	h.driver.EXPECT().Start(gomock.Any(), gomock.Any()).Return(errTest)

	h.ctrl.startWindow()
	require.Equal(t, StateCooldown, h.ctrl.State())

	// The next attempt after a full cooldown succeeds.
	h.driver.EXPECT().Start(gomock.Any(), gomock.Any()).Return(nil)
	h.advance(6 * time.Second)
	h.ctrl.Tick(ctx)

	assert.Equal(t, StateScanning, h.ctrl.State())
	assert.Equal(t, 1, h.ctrl.Stats().Cycles)
}

func TestTriggerSampledOncePerTick(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.driver.EXPECT().Start(gomock.Any(), gomock.Any()).Return(nil)
	h.trigger.EXPECT().Triggered().Return(false).Times(3)

	h.ctrl.startWindow()

	for n := 0; n < 3; n++ {
		h.advance(time.Second)
		h.ctrl.Tick(ctx)
	}

	assert.Equal(t, StateScanning, h.ctrl.State())
}
