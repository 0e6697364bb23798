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

//go:generate mockgen -destination=mock_radio.go -package=radio github.com/carverauto/bleradar/pkg/radio Driver,EventSink

// Package radio defines the capability interfaces between the controller
// and the BLE radio, plus the BlueZ-backed driver.
package radio

import (
	"time"

	"github.com/carverauto/bleradar/pkg/models"
)

// Scan-complete reason codes.
const (
	ReasonDuration = "duration"
	ReasonManual   = "manual"
	ReasonError    = "error"
)

// Advertisement is one decoded advertising event. Optional fields carry
// their zero value plus the Has* flag or sentinel where ambiguity exists.
type Advertisement struct {
	Addr             models.HardwareAddr
	AddrKind         models.AddrKind
	RSSI             int16
	Name             string
	TxPower          int16
	HasTxPower       bool
	Appearance       uint16
	ManufacturerID   int
	ManufacturerData []byte
	ServiceUUIDs     []string
}

// EventSink receives radio events. HandleAdvertisement may be called from
// the driver's own goroutine concurrently with controller reads.
type EventSink interface {
	HandleAdvertisement(adv Advertisement)
	ScanComplete(reason string)
}

// Driver starts and stops advertisement scanning. Implementations must
// release all radio resources before Stop returns: the network uplink is
// only brought up after the radio is fully torn down.
type Driver interface {
	Start(sink EventSink, duration time.Duration) error
	Stop() error
}
