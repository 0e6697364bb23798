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

// Package models provides data models for the BLE scan agent.
package models

import (
	"encoding/hex"
	"fmt"
)

// HardwareAddr is a raw 6-byte BLE device address. It is the device table
// key; the address kind is deliberately not part of the key, so a device
// rotating random addresses appears as separate records over time.
type HardwareAddr [6]byte

// String formats the address as aa:bb:cc:dd:ee:ff.
func (a HardwareAddr) String() string {
	return fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x", a[0], a[1], a[2], a[3], a[4], a[5])
}

// ShortID returns the low two address bytes as hex, used as a display name
// for devices that never advertised one.
func (a HardwareAddr) ShortID() string {
	return hex.EncodeToString(a[4:6])
}

// AddrKind distinguishes public from random (possibly rotating) addresses.
type AddrKind string

const (
	AddrPublic AddrKind = "public"
	AddrRandom AddrKind = "random"
)

// Vendor identifies the device vendor derived from classification.
type Vendor string

const (
	VendorUnknown   Vendor = ""
	VendorApple     Vendor = "apple"
	VendorGoogle    Vendor = "google"
	VendorMicrosoft Vendor = "microsoft"
)

const (
	// TxPowerUnknown is the sentinel for an advertisement that carried no
	// TX power level.
	TxPowerUnknown int16 = -128

	// ManufacturerIDNone is the sentinel for a record with no
	// manufacturer-specific data observed yet.
	ManufacturerIDNone = -1
)

// DeviceRecord is one tracked device within the current scan window.
// FirstSeen/LastSeen are monotonic seconds since the window started.
type DeviceRecord struct {
	Addr             HardwareAddr
	AddrKind         AddrKind
	Name             string
	RSSI             int16
	TxPower          int16
	Appearance       uint16
	ManufacturerID   int
	ManufacturerData []byte
	ServiceUUIDs     []string
	FirstSeen        int64
	LastSeen         int64
	SeenCount        int
	Vendor           Vendor
	IsBeacon         bool
}
