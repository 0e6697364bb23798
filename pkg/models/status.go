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

// Status is the coarse indicator shown next to the device list.
type Status string

const (
	StatusUnknown    Status = "unknown"
	StatusScanning   Status = "scanning"
	StatusConnecting Status = "connecting"
	StatusConnected  Status = "connected"
	StatusUploading  Status = "uploading"
	StatusError      Status = "error"
)

// CycleStats are the running counters kept across scan/upload cycles.
type CycleStats struct {
	Cycles     int
	UploadOK   int
	UploadFail int
	LastBatch  int
	Dropped    uint64
}
