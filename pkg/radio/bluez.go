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
	"errors"
	"net"
	"sync"
	"time"

	"tinygo.org/x/bluetooth"

	"github.com/carverauto/bleradar/pkg/logger"
	"github.com/carverauto/bleradar/pkg/models"
)

var (
	errScanActive = errors.New("scan already active")
	errBadAddress = errors.New("unparseable advertisement address")
)

// wellKnownServices lists the 16-bit service UUIDs the agent recognizes,
// with their short hex form. Probing order is fixed so the joined
// service_uuids upload field is stable for a given device. Eddystone
// (FEAA) drives beacon classification; the rest are common advertisers
// worth surfacing in uploads.
var wellKnownServices = []struct {
	id    uint16
	short string
}{
	{0xFEAA, "FEAA"}, // Eddystone
	{0x180F, "180F"}, // Battery
	{0x181A, "181A"}, // Environmental sensing
	{0xFE9F, "FE9F"}, // Google
	{0xFD6F, "FD6F"}, // Exposure notification
}

// BlueZDriver implements Driver on top of the host Bluetooth stack.
type BlueZDriver struct {
	adapter *bluetooth.Adapter
	logger  logger.Logger

	mu       sync.Mutex
	scanning bool
	enabled  bool
	timer    *time.Timer
	complete sync.Once
}

var _ Driver = (*BlueZDriver)(nil)

// NewBlueZDriver returns a driver bound to the default host adapter.
func NewBlueZDriver(log logger.Logger) *BlueZDriver {
	return &BlueZDriver{
		adapter: bluetooth.DefaultAdapter,
		logger:  log,
	}
}

// Start enables the adapter (first call only) and begins scanning for up
// to duration. Events are delivered on the driver's goroutine.
func (b *BlueZDriver) Start(sink EventSink, duration time.Duration) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.scanning {
		return errScanActive
	}

	if !b.enabled {
		if err := b.adapter.Enable(); err != nil {
			return err
		}

		b.enabled = true
	}

	b.scanning = true
	b.complete = sync.Once{}

	// Backstop: the adapter keeps scanning until StopScan, so bound the
	// window here as well as in the controller. The callback takes full
	// ownership of the teardown so a later Stop is a no-op.
	b.timer = time.AfterFunc(duration, func() {
		b.mu.Lock()
		if !b.scanning {
			b.mu.Unlock()
			return
		}

		b.scanning = false
		b.timer = nil
		b.mu.Unlock()

		if err := b.adapter.StopScan(); err != nil {
			b.logger.Warn().Err(err).Msg("Failed to stop scan at window end")
		}

		b.complete.Do(func() { sink.ScanComplete(ReasonDuration) })
	})

	go func() {
		err := b.adapter.Scan(func(_ *bluetooth.Adapter, result bluetooth.ScanResult) {
			adv, convErr := convertScanResult(&result)
			if convErr != nil {
				b.logger.Debug().Err(convErr).Msg("Dropping undecodable advertisement")
				return
			}

			sink.HandleAdvertisement(adv)
		})
		if err != nil {
			b.logger.Error().Err(err).Msg("Scan terminated with error")
			b.complete.Do(func() { sink.ScanComplete(ReasonError) })
		}
	}()

	b.logger.Info().Dur("duration", duration).Msg("Radio scan started")

	return nil
}

// Stop tears the scan down. After Stop returns the adapter holds no scan
// state and the uplink may be brought up.
func (b *BlueZDriver) Stop() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.scanning {
		return nil
	}

	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}

	b.scanning = false

	return b.adapter.StopScan()
}

// convertScanResult translates the stack's scan result into the internal
// advertisement form. TX power and appearance are not surfaced by the host
// stack, so they stay unknown.
func convertScanResult(result *bluetooth.ScanResult) (Advertisement, error) {
	hw, err := net.ParseMAC(result.Address.String())
	if err != nil || len(hw) != 6 {
		return Advertisement{}, errBadAddress
	}

	adv := Advertisement{
		AddrKind:       models.AddrPublic,
		RSSI:           result.RSSI,
		Name:           result.LocalName(),
		TxPower:        models.TxPowerUnknown,
		ManufacturerID: models.ManufacturerIDNone,
	}
	copy(adv.Addr[:], hw)

	if result.Address.IsRandom() {
		adv.AddrKind = models.AddrRandom
	}

	if elems := result.ManufacturerData(); len(elems) > 0 {
		adv.ManufacturerID = int(elems[0].CompanyID)
		adv.ManufacturerData = append([]byte(nil), elems[0].Data...)
	}

	adv.ServiceUUIDs = collectServiceUUIDs(func(id uint16) bool {
		return result.HasServiceUUID(bluetooth.New16BitUUID(id))
	})

	return adv, nil
}

// collectServiceUUIDs probes the well-known set in declaration order.
func collectServiceUUIDs(has func(id uint16) bool) []string {
	var uuids []string

	for _, svc := range wellKnownServices {
		if has(svc.id) {
			uuids = append(uuids, svc.short)
		}
	}

	return uuids
}
