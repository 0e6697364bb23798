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

// Package report projects device records into the upload wire format.
package report

import (
	"encoding/hex"
	"strings"

	"github.com/carverauto/bleradar/pkg/classify"
	"github.com/carverauto/bleradar/pkg/models"
)

// Build maps records to their wire form, one entry per record, in table
// insertion order. Unknown optional fields are omitted rather than sent
// with sentinel values.
func Build(records []models.DeviceRecord) []models.UploadDevice {
	devices := make([]models.UploadDevice, 0, len(records))

	for i := range records {
		devices = append(devices, buildDevice(&records[i]))
	}

	return devices
}

// BuildPayload wraps the device list with the agent identity.
func BuildPayload(deviceID string, records []models.DeviceRecord) *models.UploadPayload {
	return &models.UploadPayload{
		DeviceID: deviceID,
		Devices:  Build(records),
	}
}

func buildDevice(rec *models.DeviceRecord) models.UploadDevice {
	dev := models.UploadDevice{
		Mac:         rec.Addr.String(),
		Name:        rec.Name,
		RSSI:        int(rec.RSSI),
		AddressType: string(rec.AddrKind),
		AdvType:     classify.DisplayCode(rec),
		SeenCount:   rec.SeenCount,
		Appearance:  rec.Appearance,
		IsBeacon:    rec.IsBeacon,
	}

	if rec.TxPower != models.TxPowerUnknown {
		tx := int(rec.TxPower)
		dev.TxPower = &tx
	}

	if rec.ManufacturerID != models.ManufacturerIDNone {
		id := rec.ManufacturerID
		dev.ManufacturerID = &id
		dev.ManufacturerData = hex.EncodeToString(rec.ManufacturerData)
	}

	if len(rec.ServiceUUIDs) > 0 {
		dev.ServiceUUIDs = strings.Join(rec.ServiceUUIDs, ",")
	}

	if vendor, ok := classify.UploadVendor(rec); ok {
		dev.Vendor = vendor
	}

	return dev
}
