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
	"time"

	"github.com/carverauto/bleradar/pkg/classify"
	"github.com/carverauto/bleradar/pkg/display"
	"github.com/carverauto/bleradar/pkg/logger"
	"github.com/carverauto/bleradar/pkg/models"
	"github.com/carverauto/bleradar/pkg/radio"
	"github.com/carverauto/bleradar/pkg/report"
	"github.com/carverauto/bleradar/pkg/tracker"
)

// State is the controller's lifecycle phase.
type State string

const (
	StateScanning      State = "scanning"
	StateStopping      State = "stopping"
	StateConnecting    State = "connecting"
	StateProbing       State = "probing"
	StateUploading     State = "uploading"
	StateDisconnecting State = "disconnecting"
	StateCooldown      State = "cooldown"
)

// pageFlipTicks is how many ticks a display page stays up before the
// projector advances to the next one.
const pageFlipTicks = 8

// Controller owns all session state: the device table, cycle counters,
// the pending upload payload, and the display projection. Everything runs
// on the single Run goroutine; the only concurrent access is the table's
// own ingest path.
type Controller struct {
	cfg       *models.Config
	driver    radio.Driver
	table     *tracker.Table
	uplink    Uplink
	display   Display
	trigger   Trigger
	projector *display.Projector
	logger    logger.Logger

	state     State
	entered   time.Time
	payload   *models.UploadPayload
	stats     models.CycleStats
	tickCount int

	nowFn func() time.Time
}

// New wires the controller. The table doubles as the radio event sink.
func New(cfg *models.Config, driver radio.Driver, table *tracker.Table, uplink Uplink, disp Display, trig Trigger, log logger.Logger) *Controller {
	return &Controller{
		cfg:       cfg,
		driver:    driver,
		table:     table,
		uplink:    uplink,
		display:   disp,
		trigger:   trig,
		projector: display.NewProjector(cfg.DisplayCapacity, cfg.DisplayPageSize),
		logger:    log,
		state:     StateCooldown,
		nowFn:     time.Now,
	}
}

// State returns the current lifecycle phase.
func (c *Controller) State() State {
	return c.state
}

// Stats returns a copy of the running counters.
func (c *Controller) Stats() models.CycleStats {
	return c.stats
}

// Run starts the first scan window and drives Tick until ctx is done,
// then tears down whichever subsystem is live.
func (c *Controller) Run(ctx context.Context) error {
	c.startWindow()

	ticker := time.NewTicker(time.Duration(c.cfg.Tick))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			c.shutdown()
			return ctx.Err()
		case <-ticker.C:
			c.Tick(ctx)
		}
	}
}

// Tick executes one step of the current state. All failures are absorbed
// here; a tick never returns an error and the machine always comes back
// around to scanning.
func (c *Controller) Tick(ctx context.Context) {
	c.tickCount++

	switch c.state {
	case StateScanning:
		c.tickScanning()
	case StateStopping:
		c.tickStopping()
	case StateConnecting:
		c.tickConnecting(ctx)
	case StateProbing:
		c.tickProbing(ctx)
	case StateUploading:
		c.tickUploading(ctx)
	case StateDisconnecting:
		c.tickDisconnecting()
	case StateCooldown:
		c.tickCooldown()
	}
}

func (c *Controller) tickScanning() {
	snap := c.table.Snapshot()
	for i := range snap {
		classify.Apply(&snap[i])
	}

	c.projector.Rebuild(snap)

	if c.tickCount%pageFlipTicks == 0 {
		c.projector.Advance()
	}

	c.stats.Dropped = c.table.Dropped()
	c.render(models.StatusScanning)

	manual := c.trigger.Triggered()
	if manual {
		c.logger.Info().Msg("Manual upload triggered")
	}

	if manual || c.elapsed() >= time.Duration(c.cfg.ScanDuration) {
		c.transition(StateStopping)
	}
}

// tickStopping freezes the window: the radio is torn down first, then the
// snapshot and projection are built from the now-static table.
func (c *Controller) tickStopping() {
	if err := c.driver.Stop(); err != nil {
		c.logger.Warn().Err(err).Msg("Failed to stop radio")
	}

	snap := c.table.Snapshot()
	for i := range snap {
		classify.Apply(&snap[i])
	}

	c.projector.Rebuild(snap)
	c.stats.LastBatch = len(snap)
	c.stats.Dropped = c.table.Dropped()

	if len(snap) == 0 {
		c.logger.Debug().Msg("Empty table, skipping upload")
		c.transition(StateCooldown)

		return
	}

	c.payload = report.BuildPayload(c.cfg.DeviceID, snap)
	c.transition(StateConnecting)
}

func (c *Controller) tickConnecting(ctx context.Context) {
	c.render(models.StatusConnecting)

	if err := c.uplink.Connect(ctx); err != nil {
		c.logger.Error().Err(err).Msg("Failed to connect to server")
		c.stats.UploadFail++
		c.render(models.StatusError)
		c.transition(StateDisconnecting)

		return
	}

	c.render(models.StatusConnected)
	c.transition(StateProbing)
}

// tickProbing is best-effort: a failed health check is logged and the
// upload proceeds anyway.
func (c *Controller) tickProbing(ctx context.Context) {
	if err := c.uplink.Probe(ctx); err != nil {
		c.logger.Warn().Err(err).Msg("Server health probe failed")
	}

	c.transition(StateUploading)
}

func (c *Controller) tickUploading(ctx context.Context) {
	c.render(models.StatusUploading)

	if err := c.uplink.Upload(ctx, c.payload); err != nil {
		c.logger.Error().Err(err).Int("devices", len(c.payload.Devices)).Msg("Upload failed")
		c.stats.UploadFail++
		c.render(models.StatusError)
	} else {
		c.stats.UploadOK++
	}

	c.payload = nil
	c.transition(StateDisconnecting)
}

func (c *Controller) tickDisconnecting() {
	if err := c.uplink.Disconnect(); err != nil {
		c.logger.Warn().Err(err).Msg("Failed to disconnect uplink")
	}

	c.transition(StateCooldown)
}

func (c *Controller) tickCooldown() {
	if c.elapsed() < time.Duration(c.cfg.Cooldown) {
		return
	}

	c.startWindow()
}

// startWindow discards the previous window's table and restarts the
// radio. Upload outcome does not matter here: failed batches are lost.
func (c *Controller) startWindow() {
	c.table.Reset()
	c.projector.Rebuild(nil)
	c.stats.Cycles++

	if err := c.driver.Start(c.table, time.Duration(c.cfg.ScanDuration)); err != nil {
		// Wait out another cooldown period before retrying.
		c.logger.Error().Err(err).Msg("Failed to start radio")
		c.render(models.StatusError)
		c.stats.Cycles--
		c.transition(StateCooldown)

		return
	}

	c.transition(StateScanning)
	c.render(models.StatusScanning)
}

// shutdown releases whichever subsystem the current state holds.
func (c *Controller) shutdown() {
	switch c.state {
	case StateScanning, StateStopping:
		if err := c.driver.Stop(); err != nil {
			c.logger.Warn().Err(err).Msg("Failed to stop radio on shutdown")
		}
	case StateProbing, StateUploading, StateDisconnecting:
		if err := c.uplink.Disconnect(); err != nil {
			c.logger.Warn().Err(err).Msg("Failed to disconnect uplink on shutdown")
		}
	case StateConnecting, StateCooldown:
	}

	c.logger.Info().
		Int("cycles", c.stats.Cycles).
		Int("uploads_ok", c.stats.UploadOK).
		Int("uploads_failed", c.stats.UploadFail).
		Msg("Controller stopped")
}

func (c *Controller) transition(next State) {
	c.logger.Debug().
		Str("from", string(c.state)).
		Str("to", string(next)).
		Msg("State transition")

	c.state = next
	c.entered = c.nowFn()
}

func (c *Controller) elapsed() time.Duration {
	return c.nowFn().Sub(c.entered)
}

func (c *Controller) render(status models.Status) {
	c.display.Render(c.projector.Page(), status, c.stats)
}
