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

//go:generate mockgen -destination=mock_collaborators.go -package=controller github.com/carverauto/bleradar/pkg/controller Uplink,Display,Trigger

// Package controller runs the tick-driven lifecycle that alternates radio
// scanning with batch uploads.
package controller

import (
	"context"

	"github.com/carverauto/bleradar/pkg/display"
	"github.com/carverauto/bleradar/pkg/models"
)

// Uplink is the network collaborator. Connect must succeed before Probe or
// Upload; Disconnect must fully release the network stack before the radio
// is brought back up.
type Uplink interface {
	Connect(ctx context.Context) error
	Probe(ctx context.Context) error
	Upload(ctx context.Context, payload *models.UploadPayload) error
	Disconnect() error
}

// Display consumes one page of entries plus the status line. It redraws
// only when Render is called.
type Display interface {
	Render(page []display.Entry, status models.Status, stats models.CycleStats)
}

// Trigger is the manual-upload signal, sampled once per tick. Triggered
// reads and clears the latch.
type Trigger interface {
	Triggered() bool
}
