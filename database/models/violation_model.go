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

package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/parkwatch/dtos"
)

// Violation is a recorded infraction against a vehicle. The lifecycle columns
// (status, contest_status, closed_at, closed_reason) are only ever written
// through the guarded transition primitive of the violation repository - the
// notification and pubsub components observe committed changes, they never
// gate them.
type Violation struct {
	Model
	Status        dtos.ViolationStatus `json:"status" gorm:"type:text;not null;default:'pending'"`
	ContestStatus dtos.ContestStatus   `json:"contestStatus" gorm:"type:text;not null;default:'none'"`

	TypeID      string `json:"typeId" gorm:"type:text"`
	Description string `json:"description" gorm:"type:text"`
	Location    string `json:"location" gorm:"type:text"`

	// actor identity of the last state-changing write
	UpdatedBy string `json:"updatedBy" gorm:"type:text"`

	ClosedAt     *time.Time `json:"closedAt" gorm:"default:null"`
	ClosedReason *string    `json:"closedReason" gorm:"type:text;default:null"`

	ContestExplanation *string    `json:"contestExplanation" gorm:"type:text;default:null"`
	ContestSubmittedAt *time.Time `json:"contestSubmittedAt" gorm:"default:null"`

	VehicleID uuid.UUID `json:"vehicleId" gorm:"type:uuid;not null"`
	Vehicle   Vehicle   `json:"vehicle" gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE;"`

	Evidences []Evidence `json:"evidences" gorm:"foreignKey:ViolationID;constraint:OnDelete:CASCADE;"`
}

func (v Violation) TableName() string {
	return "violations"
}

func (v Violation) IsClosed() bool {
	return v.Status == dtos.ViolationStatusClosed
}

// CloseInvariantHolds reports whether closed_at is set exactly when the
// violation is closed.
func (v Violation) CloseInvariantHolds() bool {
	return (v.ClosedAt != nil) == (v.Status == dtos.ViolationStatusClosed)
}

// ContestInvariantHolds reports whether an undecided contest only exists
// while the violation is pending or contested. Adjudicated contests stay on
// the record for the audit trail regardless of where the status moved.
func (v Violation) ContestInvariantHolds() bool {
	if v.ContestStatus != dtos.ContestStatusPending {
		return true
	}
	return v.Status == dtos.ViolationStatusPending || v.Status == dtos.ViolationStatusContested
}

func (v Violation) Age(now time.Time) time.Duration {
	return now.Sub(v.CreatedAt)
}
