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

package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/parkwatch/database/models"
	"github.com/l3montree-dev/parkwatch/dtos"
)

// TransitionGuard is the precondition of a guarded lifecycle write. A write
// only applies while the current row still matches every non-empty field -
// the loser of a race observes zero affected rows, never a partial update.
type TransitionGuard struct {
	Statuses        []dtos.ViolationStatus
	ContestStatuses []dtos.ContestStatus
}

type ViolationRepository interface {
	Read(id uuid.UUID) (models.Violation, error)
	ReadByIDAndOwner(id uuid.UUID, ownerID string) (models.Violation, error)
	Create(tx DB, violation *models.Violation) error
	GetByOwner(ownerID string) ([]models.Violation, error)
	GetAppealEligibleByOwner(ownerID string) ([]models.Violation, error)
	FindEligibleForAutoClose(now time.Time, thresholdDays int) ([]models.Violation, error)
	// AttemptTransition is the single write path for lifecycle columns. It
	// returns the number of affected rows; zero means the guard did not match
	// anymore and the caller's intended transition is stale.
	AttemptTransition(tx DB, id uuid.UUID, guard TransitionGuard, updates map[string]any) (int64, error)
	Transaction(fn func(tx DB) error) error
}

type VehicleRepository interface {
	Read(id uuid.UUID) (models.Vehicle, error)
}

type EvidenceRepository interface {
	CreateBatch(tx DB, evidences []models.Evidence) error
	GetByViolationID(violationID uuid.UUID) ([]models.Evidence, error)
}

type NotificationRepository interface {
	Create(tx DB, notification *models.Notification) error
	CreateBatch(tx DB, notifications []models.Notification) error
	GetByUserID(userID string) ([]models.Notification, error)
	MarkRead(id uuid.UUID, userID string) error
}

type AccountRepository interface {
	Read(id string) (models.Account, error)
	AdminIDs() ([]string, error)
}

// NotificationDispatcher records directed messages to specific users. Callers
// treat dispatch as best-effort: failures are logged, never propagated as the
// triggering operation's own failure.
type NotificationDispatcher interface {
	Notify(userID, title, message string, notificationType dtos.NotificationType, relatedID *uuid.UUID) error
	NotifyAll(userIDs []string, title, message string, notificationType dtos.NotificationType, relatedID *uuid.UUID) error
}

type ViolationService interface {
	ReportViolation(req dtos.ReportViolationRequest, evidence []dtos.EvidenceUpload, actorID string) (models.Violation, error)
	SetStatus(violationID uuid.UUID, newStatus dtos.ViolationStatus, actorID string) (models.Violation, error)
	FileAppeal(violationID uuid.UUID, subjectID, explanation string, evidence []dtos.EvidenceUpload) (models.Violation, error)
	AdjudicateAppeal(violationID uuid.UUID, adminID string, decision dtos.ContestStatus) (models.Violation, error)
}

type AutoCloseService interface {
	RunSweep(ctx context.Context, now time.Time, thresholdDays int) (dtos.SweepReport, error)
}

type DaemonRunner interface {
	Start()
	Stop()
}
