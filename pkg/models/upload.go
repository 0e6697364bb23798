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

package models

// UploadDevice is the wire form of one device record. Optional fields are
// omitted entirely when unknown; the receiver treats absence as unknown.
type UploadDevice struct {
	Mac              string `json:"mac"`
	Name             string `json:"name,omitempty"`
	RSSI             int    `json:"rssi"`
	AddressType      string `json:"address_type"`
	AdvType          string `json:"adv_type"`
	SeenCount        int    `json:"seen_count"`
	TxPower          *int   `json:"tx_power,omitempty"`
	Appearance       uint16 `json:"appearance,omitempty"`
	ManufacturerID   *int   `json:"manufacturer_id,omitempty"`
	ManufacturerData string `json:"manufacturer_data,omitempty"`
	ServiceUUIDs     string `json:"service_uuids,omitempty"`
	IsBeacon         bool   `json:"is_beacon"`
	Vendor           string `json:"vendor,omitempty"`
}

// UploadPayload is the document POSTed once per upload cycle.
type UploadPayload struct {
	DeviceID string         `json:"device_id"`
	Devices  []UploadDevice `json:"devices"`
}
