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

package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/l3montree-dev/parkwatch/dtos"
	"github.com/l3montree-dev/parkwatch/monitoring"
	"github.com/l3montree-dev/parkwatch/shared"
	"github.com/l3montree-dev/parkwatch/statemachine"
)

type AutoCloseService struct {
	violationRepository shared.ViolationRepository
	dispatcher          shared.NotificationDispatcher
	broker              shared.PubSubBroker
}

func NewAutoCloseService(violationRepository shared.ViolationRepository, dispatcher shared.NotificationDispatcher, broker shared.PubSubBroker) *AutoCloseService {
	return &AutoCloseService{
		violationRepository: violationRepository,
		dispatcher:          dispatcher,
		broker:              broker,
	}
}

// RunSweep closes every violation that is either older than the threshold or
// carries a denied appeal. Each record is closed independently through a
// guarded update, so a concurrent close (another sweep instance, an approved
// adjudication racing in) makes this one a silent no-op for that record.
// Re-running a sweep is always safe.
func (s *AutoCloseService) RunSweep(ctx context.Context, now time.Time, thresholdDays int) (dtos.SweepReport, error) {
	start := time.Now()
	defer func() {
		monitoring.AutoCloseSweepDuration.Observe(time.Since(start).Seconds())
	}()

	eligible, err := s.violationRepository.FindEligibleForAutoClose(now, thresholdDays)
	if err != nil {
		monitoring.Alert("could not query auto-close candidates", err)
		return dtos.SweepReport{}, fmt.Errorf("could not query auto-close candidates: %w", err)
	}

	report := dtos.SweepReport{Scanned: len(eligible)}
	monitoring.AutoCloseScannedAmount.Add(float64(report.Scanned))

	for _, violation := range eligible {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		reason := statemachine.CloseReasonFor(violation, now, thresholdDays)
		affected, err := s.violationRepository.AttemptTransition(nil, violation.ID, shared.TransitionGuard{
			Statuses: statemachine.NotClosed(),
		}, map[string]any{
			"status":        dtos.ViolationStatusClosed,
			"closed_at":     now,
			"closed_reason": reason,
			"updated_by":    "system",
		})
		if err != nil {
			monitoring.Alert("could not close violation during sweep", err)
			return report, fmt.Errorf("could not close violation %s: %w", violation.ID, err)
		}
		if affected == 0 {
			// lost the race to another closer - nothing to do
			slog.Debug("violation closed by a concurrent writer, skipping", "violationID", violation.ID)
			continue
		}

		report.Closed++
		report.ClosedIDs = append(report.ClosedIDs, violation.ID)
		monitoring.AutoCloseClosedAmount.WithLabelValues(reasonLabel(violation.ContestStatus)).Inc()
		monitoring.LifecycleTransitionAmount.WithLabelValues(string(dtos.ViolationStatusClosed)).Inc()

		if err := s.dispatcher.Notify(violation.Vehicle.OwnerID, "Violation closed", reason,
			dtos.NotificationTypeViolationClosed, &violation.ID); err != nil {
			slog.Error("could not dispatch close notification", "err", err, "violationID", violation.ID)
			monitoring.NotificationDispatchFailedAmount.Inc()
		}

		violation.Status = dtos.ViolationStatusClosed
		broadcastLifecycle(s.broker, "violationClosed", violation)
	}

	slog.Info("auto-close sweep finished", "scanned", report.Scanned, "closed", report.Closed, "duration", time.Since(start))
	return report, nil
}

func reasonLabel(contestStatus dtos.ContestStatus) string {
	if contestStatus == dtos.ContestStatusDenied {
		return "appealDenied"
	}
	return "stale"
}

var _ shared.AutoCloseService = (*AutoCloseService)(nil)
