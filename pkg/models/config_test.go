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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	cfg := Config{ServerURL: "http://server.local:5000"}
	cfg.ApplyDefaults()

	assert.NotEmpty(t, cfg.DeviceID)
	assert.Equal(t, 30*time.Second, time.Duration(cfg.ScanDuration))
	assert.Equal(t, 5*time.Second, time.Duration(cfg.Cooldown))
	assert.Equal(t, 250*time.Millisecond, time.Duration(cfg.Tick))
	assert.Equal(t, 10*time.Second, time.Duration(cfg.UploadTimeout))
	assert.Equal(t, 50, cfg.TableCapacity)
	assert.Equal(t, 20, cfg.DisplayCapacity)
	assert.Equal(t, 4, cfg.DisplayPageSize)
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	cfg := Config{
		DeviceID:      "agent-7",
		ServerURL:     "http://server.local:5000",
		ScanDuration:  Duration(10 * time.Second),
		TableCapacity: 5,
	}
	cfg.ApplyDefaults()

	assert.Equal(t, "agent-7", cfg.DeviceID)
	assert.Equal(t, 10*time.Second, time.Duration(cfg.ScanDuration))
	assert.Equal(t, 5, cfg.TableCapacity)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name:    "valid",
			cfg:     Config{ServerURL: "http://server.local:5000"},
			wantErr: false,
		},
		{
			name:    "missing server url",
			cfg:     Config{},
			wantErr: true,
		},
		{
			name:    "negative table capacity",
			cfg:     Config{ServerURL: "http://server.local:5000", TableCapacity: -1},
			wantErr: true,
		},
		{
			name: "page larger than display",
			cfg: Config{
				ServerURL:       "http://server.local:5000",
				DisplayCapacity: 4,
				DisplayPageSize: 8,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestDurationJSONRoundTrip(t *testing.T) {
	var cfg Config

	require.NoError(t, json.Unmarshal([]byte(`{"server_url":"http://h","scan_duration":"45s"}`), &cfg))
	assert.Equal(t, 45*time.Second, time.Duration(cfg.ScanDuration))

	out, err := json.Marshal(cfg.ScanDuration)
	require.NoError(t, err)
	assert.Equal(t, `"45s"`, string(out))
}

func TestDurationRejectsGarbage(t *testing.T) {
	var d Duration

	require.Error(t, json.Unmarshal([]byte(`"soon"`), &d))
	require.Error(t, json.Unmarshal([]byte(`42`), &d))
}

func TestHardwareAddrFormatting(t *testing.T) {
	a := HardwareAddr{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0x0f}

	assert.Equal(t, "aa:bb:cc:dd:ee:0f", a.String())
	assert.Equal(t, "ee0f", a.ShortID())
}
