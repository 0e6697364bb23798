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

// Package display projects device records onto a small paged view and
// renders it to the terminal.
package display

import (
	"github.com/carverauto/bleradar/pkg/classify"
	"github.com/carverauto/bleradar/pkg/models"
)

const (
	maxEntryNameLen = 10
	maxShownCount   = 99
)

// Entry is one display row, fully derived from a device record at rebuild
// time. Entries are never persisted across rebuilds.
type Entry struct {
	Name      string
	Addr      string
	RSSI      int16
	SeenCount int
	Random    bool
	TypeCode  string
}

// Projector maintains the paged view over the most recent rebuild. It is
// owned by the controller goroutine and needs no locking.
type Projector struct {
	capacity int
	pageSize int
	offset   int
	entries  []Entry
}

// NewProjector returns a projector holding at most capacity entries,
// paged pageSize rows at a time.
func NewProjector(capacity, pageSize int) *Projector {
	return &Projector{
		capacity: capacity,
		pageSize: pageSize,
	}
}

// Rebuild replaces the projection with the first capacity records. An
// offset left pointing past the new length snaps back to zero.
func (p *Projector) Rebuild(records []models.DeviceRecord) {
	if len(records) > p.capacity {
		records = records[:p.capacity]
	}

	p.entries = p.entries[:0]
	for i := range records {
		p.entries = append(p.entries, makeEntry(&records[i]))
	}

	if p.offset >= len(p.entries) {
		p.offset = 0
	}
}

// Advance moves to the next page, wrapping to the first once the offset
// runs past the end.
func (p *Projector) Advance() {
	p.offset += p.pageSize
	if p.offset >= len(p.entries) {
		p.offset = 0
	}
}

// Page returns the current page of entries.
func (p *Projector) Page() []Entry {
	if p.offset >= len(p.entries) {
		return nil
	}

	end := p.offset + p.pageSize
	if end > len(p.entries) {
		end = len(p.entries)
	}

	return p.entries[p.offset:end]
}

// Len returns the number of projected entries.
func (p *Projector) Len() int {
	return len(p.entries)
}

// PageInfo returns the 1-based current page number and page count.
func (p *Projector) PageInfo() (current, total int) {
	if len(p.entries) == 0 || p.pageSize == 0 {
		return 1, 1
	}

	total = (len(p.entries) + p.pageSize - 1) / p.pageSize

	return p.offset/p.pageSize + 1, total
}

func makeEntry(rec *models.DeviceRecord) Entry {
	name := rec.Name
	if name == "" {
		name = "dev-" + rec.Addr.ShortID()
	}

	if len(name) > maxEntryNameLen {
		name = name[:maxEntryNameLen]
	}

	count := rec.SeenCount
	if count > maxShownCount {
		count = maxShownCount
	}

	return Entry{
		Name:      name,
		Addr:      rec.Addr.String(),
		RSSI:      rec.RSSI,
		SeenCount: count,
		Random:    rec.AddrKind == models.AddrRandom,
		TypeCode:  classify.DisplayCode(rec),
	}
}
