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

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/carverauto/bleradar/pkg/logger"
)

// Duration unmarshals JSON duration strings such as "30s" or "2m".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string

	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	if s == "" {
		*d = Duration(0)
		return nil
	}

	dur, err := time.ParseDuration(s)
	if err != nil {
		return err
	}

	*d = Duration(dur)

	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

var (
	errServerURLRequired   = errors.New("server_url is required")
	errBadTableCapacity    = errors.New("table_capacity must be positive")
	errBadDisplayCapacity  = errors.New("display_capacity must be positive")
	errDisplayPageTooLarge = errors.New("display_page_size must not exceed display_capacity")
)

// Config defines the scan agent configuration.
type Config struct {
	DeviceID        string         `json:"device_id,omitempty"`
	ServerURL       string         `json:"server_url"`
	ScanDuration    Duration       `json:"scan_duration,omitempty"`
	Cooldown        Duration       `json:"cooldown,omitempty"`
	Tick            Duration       `json:"tick,omitempty"`
	UploadTimeout   Duration       `json:"upload_timeout,omitempty"`
	TableCapacity   int            `json:"table_capacity,omitempty"`
	DisplayCapacity int            `json:"display_capacity,omitempty"`
	DisplayPageSize int            `json:"display_page_size,omitempty"`
	Logging         *logger.Config `json:"logging,omitempty"`
}

// ApplyDefaults fills unset fields with the values the original device
// shipped with. A missing device id gets a random UUID.
func (c *Config) ApplyDefaults() {
	if c.DeviceID == "" {
		c.DeviceID = uuid.NewString()
	}

	if c.ScanDuration == 0 {
		c.ScanDuration = Duration(30 * time.Second)
	}

	if c.Cooldown == 0 {
		c.Cooldown = Duration(5 * time.Second)
	}

	if c.Tick == 0 {
		c.Tick = Duration(250 * time.Millisecond)
	}

	if c.UploadTimeout == 0 {
		c.UploadTimeout = Duration(10 * time.Second)
	}

	if c.TableCapacity == 0 {
		c.TableCapacity = 50
	}

	if c.DisplayCapacity == 0 {
		c.DisplayCapacity = 20
	}

	if c.DisplayPageSize == 0 {
		c.DisplayPageSize = 4
	}
}

// Validate implements config.Validator.
func (c *Config) Validate() error {
	if c.ServerURL == "" {
		return errServerURLRequired
	}

	if c.TableCapacity < 0 {
		return errBadTableCapacity
	}

	if c.DisplayCapacity < 0 {
		return errBadDisplayCapacity
	}

	if c.DisplayPageSize > c.DisplayCapacity && c.DisplayCapacity > 0 {
		return errDisplayPageTooLarge
	}

	return nil
}
