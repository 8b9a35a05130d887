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
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/parkwatch/config"
	"github.com/l3montree-dev/parkwatch/database/models"
	"github.com/l3montree-dev/parkwatch/dtos"
	"github.com/l3montree-dev/parkwatch/monitoring"
	"github.com/l3montree-dev/parkwatch/shared"
	"github.com/l3montree-dev/parkwatch/statemachine"
	"github.com/l3montree-dev/parkwatch/utils"
	"gorm.io/gorm"
)

type ViolationService struct {
	violationRepository shared.ViolationRepository
	vehicleRepository   shared.VehicleRepository
	evidenceRepository  shared.EvidenceRepository
	accountRepository   shared.AccountRepository
	dispatcher          shared.NotificationDispatcher
	broker              shared.PubSubBroker
	policy              config.LifecyclePolicy
}

func NewViolationService(violationRepository shared.ViolationRepository, vehicleRepository shared.VehicleRepository, evidenceRepository shared.EvidenceRepository, accountRepository shared.AccountRepository, dispatcher shared.NotificationDispatcher, broker shared.PubSubBroker, policy config.LifecyclePolicy) *ViolationService {
	return &ViolationService{
		violationRepository: violationRepository,
		vehicleRepository:   vehicleRepository,
		evidenceRepository:  evidenceRepository,
		accountRepository:   accountRepository,
		dispatcher:          dispatcher,
		broker:              broker,
		policy:              policy,
	}
}

// ReportViolation creates a violation in pending state - there is no other
// entry point into the lifecycle.
func (s *ViolationService) ReportViolation(req dtos.ReportViolationRequest, evidence []dtos.EvidenceUpload, actorID string) (models.Violation, error) {
	vehicle, err := s.vehicleRepository.Read(req.VehicleID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Violation{}, ErrNotFound
	} else if err != nil {
		return models.Violation{}, fmt.Errorf("could not read vehicle: %w", err)
	}

	evidence = s.capEvidence(evidence)

	violation := models.Violation{
		Status:        dtos.ViolationStatusPending,
		ContestStatus: dtos.ContestStatusNone,
		TypeID:        req.TypeID,
		Description:   req.Description,
		Location:      req.Location,
		VehicleID:     req.VehicleID,
		UpdatedBy:     actorID,
	}

	err = s.violationRepository.Transaction(func(tx shared.DB) error {
		if err := s.violationRepository.Create(tx, &violation); err != nil {
			return err
		}
		return s.evidenceRepository.CreateBatch(tx, evidenceModels(violation.ID, evidence))
	})
	if err != nil {
		return models.Violation{}, fmt.Errorf("could not create violation: %w", err)
	}

	violation.Vehicle = vehicle
	monitoring.LifecycleTransitionAmount.WithLabelValues(string(dtos.ViolationStatusPending)).Inc()

	s.notify(vehicle.OwnerID, "Violation reported",
		fmt.Sprintf("A %s violation was reported against vehicle %s.", req.TypeID, vehicle.PlateNumber),
		dtos.NotificationTypeViolationReported, &violation.ID)
	s.broadcast("violationReported", violation)

	return violation, nil
}

// SetStatus is the manual status path: admin or security staff moving a
// pending violation to resolved or contested. Closure is never reachable
// through here - that is the sweep's and the adjudication path's job.
func (s *ViolationService) SetStatus(violationID uuid.UUID, newStatus dtos.ViolationStatus, actorID string) (models.Violation, error) {
	if !statemachine.IsAllowedManualStatus(newStatus) {
		return models.Violation{}, ErrInvalidState
	}

	violation, err := s.violationRepository.Read(violationID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Violation{}, ErrNotFound
	} else if err != nil {
		return models.Violation{}, fmt.Errorf("could not read violation: %w", err)
	}

	affected, err := s.violationRepository.AttemptTransition(nil, violationID, shared.TransitionGuard{
		Statuses: []dtos.ViolationStatus{dtos.ViolationStatusPending},
	}, map[string]any{
		"status":     newStatus,
		"updated_by": actorID,
	})
	if err != nil {
		return models.Violation{}, fmt.Errorf("could not update violation status: %w", err)
	}
	if affected == 0 {
		// a concurrent writer moved the record first - our intent is stale
		return models.Violation{}, ErrInvalidState
	}

	violation.Status = newStatus
	violation.UpdatedBy = actorID
	monitoring.LifecycleTransitionAmount.WithLabelValues(string(newStatus)).Inc()

	s.notify(violation.Vehicle.OwnerID, "Violation status changed",
		fmt.Sprintf("Your violation was marked as %s.", newStatus),
		dtos.NotificationTypeStatusChanged, &violation.ID)
	s.broadcast("statusChanged", violation)

	return violation, nil
}

// FileAppeal records the subject's contest against a pending violation.
// One contest per violation, ever - a second submission is rejected even
// after the first one was adjudicated.
func (s *ViolationService) FileAppeal(violationID uuid.UUID, subjectID, explanation string, evidence []dtos.EvidenceUpload) (models.Violation, error) {
	violation, err := s.violationRepository.ReadByIDAndOwner(violationID, subjectID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Violation{}, ErrNotFound
	} else if err != nil {
		return models.Violation{}, fmt.Errorf("could not read violation: %w", err)
	}

	if violation.ContestStatus != dtos.ContestStatusNone {
		return models.Violation{}, ErrAlreadyContested
	}
	if violation.Status != dtos.ViolationStatusPending {
		return models.Violation{}, ErrInvalidState
	}

	evidence = s.capEvidence(evidence)
	now := time.Now()

	err = s.violationRepository.Transaction(func(tx shared.DB) error {
		affected, err := s.violationRepository.AttemptTransition(tx, violationID, shared.TransitionGuard{
			Statuses:        []dtos.ViolationStatus{dtos.ViolationStatusPending},
			ContestStatuses: []dtos.ContestStatus{dtos.ContestStatusNone},
		}, map[string]any{
			"contest_status":       dtos.ContestStatusPending,
			"contest_explanation":  explanation,
			"contest_submitted_at": now,
			"updated_by":           subjectID,
		})
		if err != nil {
			return err
		}
		if affected == 0 {
			// raced against another appeal or a state change between our
			// read and this write
			return ErrAlreadyContested
		}
		return s.evidenceRepository.CreateBatch(tx, evidenceModels(violationID, evidence))
	})
	if err != nil {
		if errors.Is(err, ErrAlreadyContested) {
			return models.Violation{}, err
		}
		return models.Violation{}, fmt.Errorf("could not file appeal: %w", err)
	}

	violation.ContestStatus = dtos.ContestStatusPending
	violation.ContestExplanation = &explanation
	violation.ContestSubmittedAt = &now
	violation.UpdatedBy = subjectID

	s.notifyAdmins("New appeal submitted",
		fmt.Sprintf("An appeal was filed for violation %s.", violationID), &violation.ID)
	s.broadcast("appealSubmitted", violation)

	return violation, nil
}

// AdjudicateAppeal decides a pending contest. A denial only flips the contest
// sub-state - the violation stays open until the next sweep closes it, which
// keeps adjudication and closure decoupled. An approval moves the violation
// to the configured target status.
func (s *ViolationService) AdjudicateAppeal(violationID uuid.UUID, adminID string, decision dtos.ContestStatus) (models.Violation, error) {
	if decision != dtos.ContestStatusApproved && decision != dtos.ContestStatusDenied {
		return models.Violation{}, ErrInvalidState
	}

	violation, err := s.violationRepository.Read(violationID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Violation{}, ErrNotFound
	} else if err != nil {
		return models.Violation{}, fmt.Errorf("could not read violation: %w", err)
	}

	if violation.ContestStatus != dtos.ContestStatusPending {
		return models.Violation{}, ErrInvalidState
	}

	guard := shared.TransitionGuard{
		ContestStatuses: []dtos.ContestStatus{dtos.ContestStatusPending},
	}
	updates := map[string]any{
		"contest_status": decision,
		"updated_by":     adminID,
	}
	if decision == dtos.ContestStatusApproved {
		guard.Statuses = []dtos.ViolationStatus{dtos.ViolationStatusPending, dtos.ViolationStatusContested}
		updates["status"] = s.policy.AppealApprovedStatus
	}

	affected, err := s.violationRepository.AttemptTransition(nil, violationID, guard, updates)
	if err != nil {
		return models.Violation{}, fmt.Errorf("could not adjudicate appeal: %w", err)
	}
	if affected == 0 {
		return models.Violation{}, ErrInvalidState
	}

	violation.ContestStatus = decision
	violation.UpdatedBy = adminID
	message := "Your appeal was denied."
	if decision == dtos.ContestStatusApproved {
		violation.Status = s.policy.AppealApprovedStatus
		message = fmt.Sprintf("Your appeal was approved. The violation was marked as %s.", violation.Status)
		monitoring.LifecycleTransitionAmount.WithLabelValues(string(violation.Status)).Inc()
	}

	s.notify(violation.Vehicle.OwnerID, "Appeal decided", message,
		dtos.NotificationTypeAppealDecided, &violation.ID)
	s.broadcast("appealAdjudicated", violation)

	return violation, nil
}

func (s *ViolationService) capEvidence(evidence []dtos.EvidenceUpload) []dtos.EvidenceUpload {
	if len(evidence) <= s.policy.MaxEvidenceFiles {
		return evidence
	}
	// excess uploads are dropped, not rejected - the cap is policy, see
	// config.LifecyclePolicy
	slog.Warn("dropping excess evidence uploads", "got", len(evidence), "cap", s.policy.MaxEvidenceFiles)
	return evidence[:s.policy.MaxEvidenceFiles]
}

// notify is best-effort: a failed insert is logged and counted, never
// surfaced through the caller's error channel.
func (s *ViolationService) notify(userID, title, message string, notificationType dtos.NotificationType, relatedID *uuid.UUID) {
	if err := s.dispatcher.Notify(userID, title, message, notificationType, relatedID); err != nil {
		slog.Error("could not dispatch notification", "err", err, "userID", userID)
		monitoring.NotificationDispatchFailedAmount.Inc()
	}
}

func (s *ViolationService) notifyAdmins(title, message string, relatedID *uuid.UUID) {
	adminIDs, err := s.accountRepository.AdminIDs()
	if err != nil {
		slog.Error("could not resolve admin accounts for fan-out", "err", err)
		monitoring.NotificationDispatchFailedAmount.Inc()
		return
	}
	if err := s.dispatcher.NotifyAll(adminIDs, title, message, dtos.NotificationTypeAppealSubmitted, relatedID); err != nil {
		slog.Error("could not dispatch admin notifications", "err", err)
		monitoring.NotificationDispatchFailedAmount.Inc()
	}
}

func (s *ViolationService) broadcast(event string, violation models.Violation) {
	broadcastLifecycle(s.broker, event, violation)
}

// broadcastLifecycle publishes a committed transition to the dashboard
// channel. No persistence, no acknowledgment, no retry - late subscribers
// reconcile through their own re-fetch.
func broadcastLifecycle(broker shared.PubSubBroker, event string, violation models.Violation) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	message := shared.NewSimplePubSubMessage(shared.ViolationLifecycle, map[string]any{
		"event":         event,
		"violationId":   violation.ID.String(),
		"status":        string(violation.Status),
		"contestStatus": string(violation.ContestStatus),
	})
	if err := broker.Publish(ctx, message); err != nil {
		slog.Error("could not broadcast lifecycle event", "err", err, "event", event, "violationID", violation.ID)
		monitoring.LifecycleBroadcastFailedAmount.Inc()
	}
}

func evidenceModels(violationID uuid.UUID, uploads []dtos.EvidenceUpload) []models.Evidence {
	return utils.Map(uploads, func(upload dtos.EvidenceUpload) models.Evidence {
		return models.Evidence{
			ViolationID: violationID,
			FileName:    upload.FileName,
			MimeType:    upload.MimeType,
			Content:     upload.Content,
		}
	})
}

var _ shared.ViolationService = (*ViolationService)(nil)
