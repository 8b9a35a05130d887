// Copyright (C) 2025 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package daemons

import (
	"context"
	"log/slog"
	"time"

	"github.com/l3montree-dev/parkwatch/config"
	"github.com/l3montree-dev/parkwatch/monitoring"
	"github.com/l3montree-dev/parkwatch/shared"
)

// DaemonRunner drives the periodic auto-close sweep. A run happens right at
// startup, then on every tick. Sweeps are idempotent, so an overlap with a
// manually triggered run is harmless.
type DaemonRunner struct {
	autoCloseService shared.AutoCloseService
	policy           config.LifecyclePolicy

	cancel context.CancelFunc
	done   chan struct{}
}

func NewDaemonRunner(autoCloseService shared.AutoCloseService, policy config.LifecyclePolicy) *DaemonRunner {
	return &DaemonRunner{
		autoCloseService: autoCloseService,
		policy:           policy,
	}
}

// Start launches the sweep loop in the background.
func (runner *DaemonRunner) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	runner.cancel = cancel
	runner.done = make(chan struct{})

	go func() {
		defer close(runner.done)

		runner.tick(ctx)

		ticker := time.NewTicker(runner.policy.SweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				runner.tick(ctx)
			}
		}
	}()
}

// Stop cancels the loop and waits for an in-flight sweep to return.
func (runner *DaemonRunner) Stop() {
	if runner.cancel == nil {
		return
	}
	runner.cancel()
	<-runner.done
}

func (runner *DaemonRunner) tick(ctx context.Context) {
	slog.Info("running auto-close sweep", "thresholdDays", runner.policy.AutoCloseThresholdDays)
	report, err := runner.autoCloseService.RunSweep(ctx, time.Now(), runner.policy.AutoCloseThresholdDays)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		monitoring.Alert("auto-close sweep failed", err)
		return
	}
	slog.Info("auto-close sweep done", "scanned", report.Scanned, "closed", report.Closed)
}

var _ shared.DaemonRunner = (*DaemonRunner)(nil)
