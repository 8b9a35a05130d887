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

package repositories

import (
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/parkwatch/database/models"
	"github.com/l3montree-dev/parkwatch/dtos"
	"github.com/l3montree-dev/parkwatch/shared"
)

type ViolationRepository struct {
	db shared.DB
	*GormRepository[uuid.UUID, models.Violation]
}

func NewViolationRepository(db shared.DB) *ViolationRepository {
	return &ViolationRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Violation](db),
	}
}

func (repository *ViolationRepository) Read(id uuid.UUID) (models.Violation, error) {
	var violation models.Violation
	err := repository.db.Preload("Vehicle").Preload("Evidences").First(&violation, "id = ?", id).Error
	return violation, err
}

// ReadByIDAndOwner enforces ownership, not just existence: a violation that
// exists but belongs to another subject's vehicle reads as not found.
func (repository *ViolationRepository) ReadByIDAndOwner(id uuid.UUID, ownerID string) (models.Violation, error) {
	var violation models.Violation
	err := repository.db.
		Joins("JOIN vehicles ON vehicles.id = violations.vehicle_id").
		Where("violations.id = ? AND vehicles.owner_id = ?", id, ownerID).
		Preload("Vehicle").Preload("Evidences").
		First(&violation).Error
	return violation, err
}

func (repository *ViolationRepository) GetByOwner(ownerID string) ([]models.Violation, error) {
	var violations []models.Violation
	err := repository.db.
		Joins("JOIN vehicles ON vehicles.id = violations.vehicle_id").
		Where("vehicles.owner_id = ?", ownerID).
		Preload("Vehicle").
		Order("violations.created_at DESC").
		Find(&violations).Error
	return violations, err
}

func (repository *ViolationRepository) GetAppealEligibleByOwner(ownerID string) ([]models.Violation, error) {
	var violations []models.Violation
	err := repository.db.
		Joins("JOIN vehicles ON vehicles.id = violations.vehicle_id").
		Where("vehicles.owner_id = ? AND violations.status = ? AND violations.contest_status = ?",
			ownerID, dtos.ViolationStatusPending, dtos.ContestStatusNone).
		Preload("Vehicle").
		Order("violations.created_at DESC").
		Find(&violations).Error
	return violations, err
}

// FindEligibleForAutoClose selects the sweep's eligibility set: everything
// not yet closed that is either older than the threshold or carries a denied
// appeal. Oldest first, so runs process records in a deterministic order.
func (repository *ViolationRepository) FindEligibleForAutoClose(now time.Time, thresholdDays int) ([]models.Violation, error) {
	cutoff := now.AddDate(0, 0, -thresholdDays)

	var violations []models.Violation
	err := repository.db.
		Where("status != ? AND (created_at <= ? OR contest_status = ?)",
			dtos.ViolationStatusClosed, cutoff, dtos.ContestStatusDenied).
		Preload("Vehicle").
		Order("created_at ASC").
		Find(&violations).Error
	return violations, err
}

// AttemptTransition applies updates only while the row still matches the
// guard. Every lifecycle write goes through here; a concurrent writer that
// lost the race observes zero affected rows and must treat its intent as
// stale, not as an error.
func (repository *ViolationRepository) AttemptTransition(tx shared.DB, id uuid.UUID, guard shared.TransitionGuard, updates map[string]any) (int64, error) {
	q := repository.GetDB(tx).Model(&models.Violation{}).Where("id = ?", id)

	if len(guard.Statuses) > 0 {
		q = q.Where("status IN ?", guard.Statuses)
	}
	if len(guard.ContestStatuses) > 0 {
		q = q.Where("contest_status IN ?", guard.ContestStatuses)
	}

	res := q.Updates(updates)
	return res.RowsAffected, res.Error
}

var _ shared.ViolationRepository = (*ViolationRepository)(nil)
