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

package lifecycle

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/carverauto/bleradar/pkg/logger"
)

// Service is a long-running component driven by a context.
type Service interface {
	Run(ctx context.Context) error
}

// RunService runs svc until it returns or the process receives
// SIGINT/SIGTERM. Context cancellation is reported as a clean stop.
func RunService(ctx context.Context, svc Service, log logger.Logger) error {
	runCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err := svc.Run(runCtx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	log.Info().Msg("Service stopped")

	return nil
}
