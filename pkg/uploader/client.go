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

// Package uploader implements the HTTP uplink that ships device batches to
// the collection server.
package uploader

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/carverauto/bleradar/pkg/logger"
	"github.com/carverauto/bleradar/pkg/models"
)

const (
	healthPath = "/api/health"
	uploadPath = "/api/esp32/ble"
)

var (
	// ErrNotConnected is returned when Probe or Upload runs before a
	// successful Connect.
	ErrNotConnected = errors.New("uplink not connected")

	errEmptyServerURL = errors.New("empty server URL")
)

// Client is the HTTP uplink. Connect verifies server reachability before
// any request is attempted, mirroring the bring-up/tear-down bracket the
// controller runs around each upload.
type Client struct {
	serverURL  *url.URL
	httpClient *http.Client
	logger     logger.Logger
	connected  bool
}

// NewClient parses serverURL and returns a disconnected client. The
// timeout bounds every individual request, including the Connect dial.
func NewClient(serverURL string, timeout time.Duration, log logger.Logger) (*Client, error) {
	if serverURL == "" {
		return nil, errEmptyServerURL
	}

	u, err := url.Parse(serverURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server URL %q: %w", serverURL, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid server URL %q: unsupported scheme", serverURL)
	}

	return &Client{
		serverURL:  u,
		httpClient: &http.Client{Timeout: timeout},
		logger:     log,
	}, nil
}

// Connect checks that the server's TCP endpoint is reachable. No HTTP
// request is made; the probe stage handles that.
func (c *Client) Connect(ctx context.Context) error {
	var d net.Dialer
	d.Timeout = c.httpClient.Timeout

	conn, err := d.DialContext(ctx, "tcp", c.hostPort())
	if err != nil {
		return fmt.Errorf("failed to reach server: %w", err)
	}

	if err := conn.Close(); err != nil {
		c.logger.Debug().Err(err).Msg("Failed to close connectivity probe socket")
	}

	c.connected = true

	return nil
}

// Probe issues GET /api/health. Only the status class matters; the body is
// drained and discarded.
func (c *Client) Probe(ctx context.Context) error {
	if !c.connected {
		return ErrNotConnected
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(healthPath), http.NoBody)
	if err != nil {
		return fmt.Errorf("failed to build health request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("health probe failed: %w", err)
	}
	defer c.drain(resp)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("health probe returned status %d", resp.StatusCode)
	}

	return nil
}

// Upload POSTs the payload to the ingest endpoint. Any 2xx response counts
// as success.
func (c *Client) Upload(ctx context.Context, payload *models.UploadPayload) error {
	if !c.connected {
		return ErrNotConnected
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode upload payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(uploadPath), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build upload request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}
	defer c.drain(resp)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("upload returned status %d", resp.StatusCode)
	}

	c.logger.Info().
		Int("devices", len(payload.Devices)).
		Int("status", resp.StatusCode).
		Msg("Batch uploaded")

	return nil
}

// Disconnect drops idle connections so the radio phase starts with the
// network fully quiesced.
func (c *Client) Disconnect() error {
	c.connected = false
	c.httpClient.CloseIdleConnections()

	return nil
}

func (c *Client) endpoint(path string) string {
	u := *c.serverURL
	u.Path = path

	return u.String()
}

func (c *Client) hostPort() string {
	host := c.serverURL.Hostname()
	port := c.serverURL.Port()

	if port == "" {
		port = "80"
		if c.serverURL.Scheme == "https" {
			port = "443"
		}
	}

	return net.JoinHostPort(host, port)
}

func (c *Client) drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
