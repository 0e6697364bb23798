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

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/carverauto/bleradar/pkg/config"
	"github.com/carverauto/bleradar/pkg/controller"
	"github.com/carverauto/bleradar/pkg/display"
	"github.com/carverauto/bleradar/pkg/lifecycle"
	"github.com/carverauto/bleradar/pkg/models"
	"github.com/carverauto/bleradar/pkg/radio"
	"github.com/carverauto/bleradar/pkg/tracker"
	"github.com/carverauto/bleradar/pkg/uploader"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	configPath := flag.String("config", "/etc/bleradar/agent.json", "Path to agent config file")
	flag.Parse()

	ctx := context.Background()

	cfgLoader := config.NewConfig(nil)

	var cfg models.Config
	if err := cfgLoader.LoadAndValidate(ctx, *configPath, &cfg); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cfg.ApplyDefaults()

	logg, err := lifecycle.CreateComponentLogger("bleradar", cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	logg.Info().
		Str("device_id", cfg.DeviceID).
		Str("server_url", cfg.ServerURL).
		Msg("Starting BLE scan agent")

	uplink, err := uploader.NewClient(cfg.ServerURL, time.Duration(cfg.UploadTimeout), logg)
	if err != nil {
		return fmt.Errorf("failed to create uplink: %w", err)
	}

	table := tracker.New(cfg.TableCapacity, logg)
	driver := radio.NewBlueZDriver(logg)
	term := display.NewTerminal(os.Stdout)

	trigger := controller.NewSignalTrigger(logg)
	defer trigger.Close()

	ctl := controller.New(&cfg, driver, table, uplink, term, trigger, logg)

	return lifecycle.RunService(ctx, ctl, logg)
}
