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

package dtos

import (
	"time"

	"github.com/google/uuid"
)

type ViolationStatus string

const (
	ViolationStatusPending   ViolationStatus = "pending"
	ViolationStatusResolved  ViolationStatus = "resolved"
	ViolationStatusContested ViolationStatus = "contested"
	ViolationStatusClosed    ViolationStatus = "closed"
)

// ContestStatus is the appeal sub-state of a violation. It is an independent
// axis from ViolationStatus but constrains its transitions: a contest may only
// be non-none while the violation is pending or contested.
type ContestStatus string

const (
	ContestStatusNone     ContestStatus = "none"
	ContestStatusPending  ContestStatus = "pending"
	ContestStatusApproved ContestStatus = "approved"
	ContestStatusDenied   ContestStatus = "denied"
)

type ReportViolationRequest struct {
	VehicleID   uuid.UUID `json:"vehicleId" form:"vehicleId" validate:"required"`
	TypeID      string    `json:"typeId" form:"typeId"`
	Description string    `json:"description" form:"description" validate:"required"`
	Location    string    `json:"location" form:"location" validate:"required"`
}

type SetStatusRequest struct {
	Status ViolationStatus `json:"status" validate:"required,oneof=pending resolved contested"`
}

type AdjudicateAppealRequest struct {
	Decision ContestStatus `json:"decision" validate:"required,oneof=approved denied"`
}

// EvidenceUpload is the in-memory form of an uploaded attachment, before it is
// persisted as an evidence row.
type EvidenceUpload struct {
	FileName string
	MimeType string
	Content  []byte
}

type EvidenceDTO struct {
	ID       uuid.UUID `json:"id"`
	FileName string    `json:"fileName"`
	MimeType string    `json:"mimeType"`
}

type ViolationDTO struct {
	ID                 uuid.UUID       `json:"id"`
	VehicleID          uuid.UUID       `json:"vehicleId"`
	TypeID             string          `json:"typeId"`
	Status             ViolationStatus `json:"status"`
	ContestStatus      ContestStatus   `json:"contestStatus"`
	Description        string          `json:"description"`
	Location           string          `json:"location"`
	UpdatedBy          string          `json:"updatedBy"`
	ClosedAt           *time.Time      `json:"closedAt"`
	ClosedReason       *string         `json:"closedReason"`
	ContestExplanation *string         `json:"contestExplanation"`
	ContestSubmittedAt *time.Time      `json:"contestSubmittedAt"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
	Evidences          []EvidenceDTO   `json:"evidences,omitempty"`
}

// SweepReport summarizes a single auto-close run. Scanned counts the records
// in the eligibility set, Closed counts only rows actually affected by the
// guarded close - a record another writer closed between selection and update
// is scanned but not closed.
type SweepReport struct {
	Scanned   int         `json:"scanned"`
	Closed    int         `json:"closed"`
	ClosedIDs []uuid.UUID `json:"closedIds"`
}
