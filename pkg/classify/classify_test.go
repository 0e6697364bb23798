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

package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carverauto/bleradar/pkg/models"
)

func TestClassifyVendorFromCompanyID(t *testing.T) {
	tests := []struct {
		name     string
		rec      models.DeviceRecord
		expected Classification
	}{
		{
			name:     "no manufacturer data",
			rec:      models.DeviceRecord{ManufacturerID: models.ManufacturerIDNone},
			expected: Classification{Vendor: models.VendorUnknown},
		},
		{
			name:     "apple company id",
			rec:      models.DeviceRecord{ManufacturerID: companyApple},
			expected: Classification{Vendor: models.VendorApple},
		},
		{
			name:     "google company id",
			rec:      models.DeviceRecord{ManufacturerID: companyGoogle},
			expected: Classification{Vendor: models.VendorGoogle},
		},
		{
			name:     "microsoft company id",
			rec:      models.DeviceRecord{ManufacturerID: companyMicrosoft},
			expected: Classification{Vendor: models.VendorMicrosoft},
		},
		{
			name:     "unrecognized company id",
			rec:      models.DeviceRecord{ManufacturerID: 0x0499},
			expected: Classification{Vendor: models.VendorUnknown},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(&tt.rec))
		})
	}
}

func TestClassifyIBeacon(t *testing.T) {
	rec := models.DeviceRecord{
		ManufacturerID:   companyApple,
		ManufacturerData: []byte{0x02, 0x15, 0xde, 0xad},
	}

	c := Classify(&rec)
	assert.True(t, c.IsBeacon)
	assert.Equal(t, models.VendorApple, c.Vendor)
}

func TestClassifyIBeaconRequiresApple(t *testing.T) {
	// The 0x02 0x15 prefix under a non-Apple company ID is not an iBeacon.
	rec := models.DeviceRecord{
		ManufacturerID:   0x0499,
		ManufacturerData: []byte{0x02, 0x15, 0xde, 0xad},
	}

	c := Classify(&rec)
	assert.False(t, c.IsBeacon)
}

func TestClassifyEddystoneOverridesVendor(t *testing.T) {
	// Apple company ID plus an Eddystone service UUID: the beacon flag is
	// set and the vendor is forced to Google.
	rec := models.DeviceRecord{
		ManufacturerID: companyApple,
		ServiceUUIDs:   []string{"180F", "feaa"},
	}

	c := Classify(&rec)
	assert.True(t, c.IsBeacon)
	assert.Equal(t, models.VendorGoogle, c.Vendor)
}

func TestApplyWritesBack(t *testing.T) {
	rec := models.DeviceRecord{
		ManufacturerID:   companyApple,
		ManufacturerData: []byte{0x02, 0x15},
	}

	Apply(&rec)

	assert.True(t, rec.IsBeacon)
	assert.Equal(t, models.VendorApple, rec.Vendor)
}

func TestDisplayCodePrecedence(t *testing.T) {
	tests := []struct {
		name     string
		rec      models.DeviceRecord
		expected string
	}{
		{
			name:     "beacon outranks vendor",
			rec:      models.DeviceRecord{IsBeacon: true, Vendor: models.VendorApple},
			expected: "BCN",
		},
		{
			name:     "apple",
			rec:      models.DeviceRecord{Vendor: models.VendorApple},
			expected: "APL",
		},
		{
			name:     "google",
			rec:      models.DeviceRecord{Vendor: models.VendorGoogle},
			expected: "GGL",
		},
		{
			name:     "microsoft",
			rec:      models.DeviceRecord{Vendor: models.VendorMicrosoft},
			expected: "MSF",
		},
		{
			name:     "random address, no vendor",
			rec:      models.DeviceRecord{AddrKind: models.AddrRandom},
			expected: "RND",
		},
		{
			name:     "public address, no vendor",
			rec:      models.DeviceRecord{AddrKind: models.AddrPublic},
			expected: "PUB",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DisplayCode(&tt.rec))
		})
	}
}

func TestUploadVendor(t *testing.T) {
	vendor, ok := UploadVendor(&models.DeviceRecord{Vendor: models.VendorGoogle})
	assert.True(t, ok)
	assert.Equal(t, "google", vendor)

	_, ok = UploadVendor(&models.DeviceRecord{})
	assert.False(t, ok)
}

func TestVendorName(t *testing.T) {
	assert.Equal(t, "Apple", VendorName(companyApple))
	assert.Equal(t, "none", VendorName(models.ManufacturerIDNone))
	assert.Equal(t, "0x0499", VendorName(0x0499))
}
