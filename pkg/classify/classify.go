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

// Package classify derives vendor and beacon flags from a device record's
// advertising payload.
package classify

import (
	"fmt"
	"strings"

	"github.com/carverauto/bleradar/pkg/models"
)

// Bluetooth SIG assigned company identifiers.
const (
	companyApple     = 0x004C
	companyGoogle    = 0x00E0
	companyMicrosoft = 0x0006
)

// eddystoneUUID is the short form of the Eddystone 16-bit service UUID.
const eddystoneUUID = "FEAA"

// iBeacon frames start with type 0x02 and length 0x15 in the Apple
// manufacturer payload.
var ibeaconPrefix = []byte{0x02, 0x15}

// Classification is the derived vendor/beacon view of one record.
type Classification struct {
	Vendor   models.Vendor
	IsBeacon bool
}

// Classify derives the classification from the record's manufacturer data
// and service UUIDs. Eddystone wins over the manufacturer-ID vendor: a
// record advertising FEAA is always a Google beacon, whatever company ID
// it also carries.
func Classify(rec *models.DeviceRecord) Classification {
	var c Classification

	switch rec.ManufacturerID {
	case companyApple:
		c.Vendor = models.VendorApple
	case companyGoogle:
		c.Vendor = models.VendorGoogle
	case companyMicrosoft:
		c.Vendor = models.VendorMicrosoft
	}

	if c.Vendor == models.VendorApple && hasIBeaconPrefix(rec.ManufacturerData) {
		c.IsBeacon = true
	}

	if hasEddystone(rec.ServiceUUIDs) {
		c.IsBeacon = true
		c.Vendor = models.VendorGoogle
	}

	return c
}

// Apply classifies the record and writes the result back into it.
func Apply(rec *models.DeviceRecord) {
	c := Classify(rec)
	rec.Vendor = c.Vendor
	rec.IsBeacon = c.IsBeacon
}

// DisplayCode maps a classified record to its three-letter display tag.
// Beacon outranks vendor, vendor outranks address kind.
func DisplayCode(rec *models.DeviceRecord) string {
	switch {
	case rec.IsBeacon:
		return "BCN"
	case rec.Vendor == models.VendorApple:
		return "APL"
	case rec.Vendor == models.VendorGoogle:
		return "GGL"
	case rec.Vendor == models.VendorMicrosoft:
		return "MSF"
	case rec.AddrKind == models.AddrRandom:
		return "RND"
	default:
		return "PUB"
	}
}

// UploadVendor returns the vendor string for the upload payload and whether
// the field should be present at all.
func UploadVendor(rec *models.DeviceRecord) (string, bool) {
	if rec.Vendor == models.VendorUnknown {
		return "", false
	}

	return string(rec.Vendor), true
}

func hasIBeaconPrefix(data []byte) bool {
	return len(data) >= len(ibeaconPrefix) &&
		data[0] == ibeaconPrefix[0] &&
		data[1] == ibeaconPrefix[1]
}

func hasEddystone(uuids []string) bool {
	for _, u := range uuids {
		if strings.EqualFold(u, eddystoneUUID) {
			return true
		}
	}

	return false
}

// VendorName renders a company identifier for log output.
func VendorName(companyID int) string {
	switch companyID {
	case companyApple:
		return "Apple"
	case companyGoogle:
		return "Google"
	case companyMicrosoft:
		return "Microsoft"
	case models.ManufacturerIDNone:
		return "none"
	default:
		return fmt.Sprintf("0x%04X", companyID)
	}
}
