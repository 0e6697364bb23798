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

// Package tracker implements the bounded, address-keyed device table for
// one scan window.
package tracker

import (
	"sync"
	"time"

	"github.com/carverauto/bleradar/pkg/logger"
	"github.com/carverauto/bleradar/pkg/models"
	"github.com/carverauto/bleradar/pkg/radio"
)

// Field truncation limits. Applied before storing, so every record in the
// table already satisfies them.
const (
	maxNameLen       = 24
	maxManufacturerB = 16
	maxServiceUUIDs  = 5
)

// Table is the in-memory device table. Ingest runs on the radio callback
// goroutine while the controller reads from its tick; every operation
// takes one short critical section so concurrent appends during a read
// can never tear a record or run past the end.
type Table struct {
	mu       sync.Mutex
	capacity int
	records  []models.DeviceRecord
	index    map[models.HardwareAddr]int
	dropped  uint64
	epoch    time.Time
	nowFn    func() time.Time
	logger   logger.Logger
}

var _ radio.EventSink = (*Table)(nil)

// New creates a table with the given fixed capacity.
func New(capacity int, log logger.Logger) *Table {
	t := &Table{
		capacity: capacity,
		nowFn:    time.Now,
		logger:   log,
	}
	t.resetLocked()

	return t
}

// Reset clears all records and restarts the window clock. Called only on
// a window boundary; observation counts and first-seen times start over.
func (t *Table) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.resetLocked()
}

func (t *Table) resetLocked() {
	t.records = make([]models.DeviceRecord, 0, t.capacity)
	t.index = make(map[models.HardwareAddr]int, t.capacity)
	t.dropped = 0
	t.epoch = t.nowFn()
}

// Len returns the current record count.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.records)
}

// Dropped returns how many unseen addresses were rejected since Reset.
func (t *Table) Dropped() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.dropped
}

// Observe upserts one advertisement. A known address always updates its
// record; an unseen address allocates only while size < capacity and
// returns ErrTableFull otherwise.
func (t *Table) Observe(adv *radio.Advertisement) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.secondsLocked()

	if i, ok := t.index[adv.Addr]; ok {
		t.mergeLocked(&t.records[i], adv, now)
		return nil
	}

	if len(t.records) >= t.capacity {
		t.dropped++
		return ErrTableFull
	}

	rec := models.DeviceRecord{
		Addr:           adv.Addr,
		AddrKind:       adv.AddrKind,
		Name:           truncate(adv.Name, maxNameLen),
		RSSI:           adv.RSSI,
		TxPower:        models.TxPowerUnknown,
		Appearance:     adv.Appearance,
		ManufacturerID: models.ManufacturerIDNone,
		FirstSeen:      now,
		LastSeen:       now,
		SeenCount:      1,
	}

	if adv.HasTxPower {
		rec.TxPower = adv.TxPower
	}

	if adv.ManufacturerID != models.ManufacturerIDNone {
		rec.ManufacturerID = adv.ManufacturerID
		rec.ManufacturerData = capBytes(adv.ManufacturerData)
	}

	rec.ServiceUUIDs = capUUIDs(adv.ServiceUUIDs)

	t.records = append(t.records, rec)
	t.index[adv.Addr] = len(t.records) - 1

	return nil
}

// mergeLocked applies the per-field update rules for a repeated sighting:
// name only fills an empty slot, everything else is latest-wins.
func (t *Table) mergeLocked(rec *models.DeviceRecord, adv *radio.Advertisement, now int64) {
	if rec.Name == "" && adv.Name != "" {
		rec.Name = truncate(adv.Name, maxNameLen)
	}

	rec.RSSI = adv.RSSI

	if adv.HasTxPower {
		rec.TxPower = adv.TxPower
	}

	if adv.Appearance != 0 {
		rec.Appearance = adv.Appearance
	}

	if adv.ManufacturerID != models.ManufacturerIDNone {
		rec.ManufacturerID = adv.ManufacturerID
		rec.ManufacturerData = capBytes(adv.ManufacturerData)
	}

	if len(adv.ServiceUUIDs) > 0 {
		rec.ServiceUUIDs = capUUIDs(adv.ServiceUUIDs)
	}

	rec.LastSeen = now
	rec.SeenCount++
}

// Snapshot returns a deep copy of all records in insertion order, safe to
// read while ingest continues.
func (t *Table) Snapshot() []models.DeviceRecord {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]models.DeviceRecord, len(t.records))
	copy(out, t.records)

	for i := range out {
		out[i].ManufacturerData = append([]byte(nil), out[i].ManufacturerData...)
		out[i].ServiceUUIDs = append([]string(nil), out[i].ServiceUUIDs...)
	}

	return out
}

// HandleAdvertisement implements radio.EventSink. Table-full drops are
// tolerated silently; they only bump the drop counter.
func (t *Table) HandleAdvertisement(adv radio.Advertisement) {
	if err := t.Observe(&adv); err != nil {
		t.logger.Trace().Str("addr", adv.Addr.String()).Msg("Table full, advertisement dropped")
	}
}

// ScanComplete implements radio.EventSink.
func (t *Table) ScanComplete(reason string) {
	t.mu.Lock()
	size := len(t.records)
	dropped := t.dropped
	t.mu.Unlock()

	t.logger.Debug().
		Str("reason", reason).
		Int("devices", size).
		Uint64("dropped", dropped).
		Msg("Scan window complete")
}

// secondsLocked is the window-relative monotonic clock.
func (t *Table) secondsLocked() int64 {
	return int64(t.nowFn().Sub(t.epoch) / time.Second)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}

	return s[:n]
}

func capBytes(b []byte) []byte {
	if len(b) > maxManufacturerB {
		b = b[:maxManufacturerB]
	}

	return append([]byte(nil), b...)
}

func capUUIDs(uuids []string) []string {
	if len(uuids) > maxServiceUUIDs {
		uuids = uuids[:maxServiceUUIDs]
	}

	return append([]string(nil), uuids...)
}
