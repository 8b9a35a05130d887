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
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/parkwatch/database/models"
	"github.com/l3montree-dev/parkwatch/dtos"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/l3montree-dev/parkwatch/mocks"
)

func sweepCandidate(status dtos.ViolationStatus, contestStatus dtos.ContestStatus, age time.Duration, now time.Time) models.Violation {
	violation := models.Violation{
		Status:        status,
		ContestStatus: contestStatus,
		Vehicle:       models.Vehicle{OwnerID: "owner-1"},
	}
	violation.ID = uuid.New()
	violation.CreatedAt = now.Add(-age)
	return violation
}

func TestRunSweep(t *testing.T) {
	now := time.Now()

	t.Run("closes every candidate and reports the ids", func(t *testing.T) {
		violationRepository := mocks.NewViolationRepository(t)
		dispatcher := mocks.NewNotificationDispatcher(t)
		broker := mocks.NewPubSubBroker(t)
		service := NewAutoCloseService(violationRepository, dispatcher, broker)

		stale := sweepCandidate(dtos.ViolationStatusPending, dtos.ContestStatusNone, 10*24*time.Hour, now)
		denied := sweepCandidate(dtos.ViolationStatusContested, dtos.ContestStatusDenied, time.Hour, now)

		violationRepository.On("FindEligibleForAutoClose", now, 7).Return([]models.Violation{stale, denied}, nil)
		violationRepository.On("AttemptTransition", (*gorm.DB)(nil), stale.ID, mock.Anything, mock.MatchedBy(func(updates map[string]interface{}) bool {
			return updates["closed_reason"] == "Auto-closed after 7 days" && updates["updated_by"] == "system"
		})).Return(int64(1), nil)
		violationRepository.On("AttemptTransition", (*gorm.DB)(nil), denied.ID, mock.Anything, mock.MatchedBy(func(updates map[string]interface{}) bool {
			return updates["closed_reason"] == "Auto-closed: Appeal denied"
		})).Return(int64(1), nil)
		dispatcher.On("Notify", "owner-1", "Violation closed", mock.Anything, dtos.NotificationTypeViolationClosed, mock.Anything).Return(nil).Twice()
		broker.On("Publish", mock.Anything, mock.Anything).Return(nil).Twice()

		report, err := service.RunSweep(context.Background(), now, 7)
		assert.NoError(t, err)
		assert.Equal(t, 2, report.Scanned)
		assert.Equal(t, 2, report.Closed)
		assert.ElementsMatch(t, []uuid.UUID{stale.ID, denied.ID}, report.ClosedIDs)
	})

	t.Run("a concurrently closed record is skipped, not counted", func(t *testing.T) {
		violationRepository := mocks.NewViolationRepository(t)
		dispatcher := mocks.NewNotificationDispatcher(t)
		broker := mocks.NewPubSubBroker(t)
		service := NewAutoCloseService(violationRepository, dispatcher, broker)

		raced := sweepCandidate(dtos.ViolationStatusPending, dtos.ContestStatusNone, 10*24*time.Hour, now)

		violationRepository.On("FindEligibleForAutoClose", now, 7).Return([]models.Violation{raced}, nil)
		violationRepository.On("AttemptTransition", (*gorm.DB)(nil), raced.ID, mock.Anything, mock.Anything).Return(int64(0), nil)

		report, err := service.RunSweep(context.Background(), now, 7)
		assert.NoError(t, err)
		assert.Equal(t, 1, report.Scanned)
		assert.Equal(t, 0, report.Closed)
		assert.Empty(t, report.ClosedIDs)
	})

	t.Run("a write failure returns the partial report", func(t *testing.T) {
		violationRepository := mocks.NewViolationRepository(t)
		dispatcher := mocks.NewNotificationDispatcher(t)
		broker := mocks.NewPubSubBroker(t)
		service := NewAutoCloseService(violationRepository, dispatcher, broker)

		first := sweepCandidate(dtos.ViolationStatusPending, dtos.ContestStatusNone, 10*24*time.Hour, now)
		second := sweepCandidate(dtos.ViolationStatusPending, dtos.ContestStatusNone, 9*24*time.Hour, now)

		violationRepository.On("FindEligibleForAutoClose", now, 7).Return([]models.Violation{first, second}, nil)
		violationRepository.On("AttemptTransition", (*gorm.DB)(nil), first.ID, mock.Anything, mock.Anything).Return(int64(1), nil)
		violationRepository.On("AttemptTransition", (*gorm.DB)(nil), second.ID, mock.Anything, mock.Anything).Return(int64(0), errors.New("connection reset"))
		dispatcher.On("Notify", "owner-1", mock.Anything, mock.Anything, dtos.NotificationTypeViolationClosed, mock.Anything).Return(nil)
		broker.On("Publish", mock.Anything, mock.Anything).Return(nil)

		report, err := service.RunSweep(context.Background(), now, 7)
		assert.Error(t, err)
		assert.Equal(t, 1, report.Closed)
		assert.Equal(t, []uuid.UUID{first.ID}, report.ClosedIDs)
	})

	t.Run("a failing candidate query aborts the sweep", func(t *testing.T) {
		violationRepository := mocks.NewViolationRepository(t)
		service := NewAutoCloseService(violationRepository, mocks.NewNotificationDispatcher(t), mocks.NewPubSubBroker(t))

		violationRepository.On("FindEligibleForAutoClose", now, 7).Return(nil, errors.New("relation does not exist"))

		_, err := service.RunSweep(context.Background(), now, 7)
		assert.Error(t, err)
	})

	t.Run("cancellation stops between records", func(t *testing.T) {
		violationRepository := mocks.NewViolationRepository(t)
		service := NewAutoCloseService(violationRepository, mocks.NewNotificationDispatcher(t), mocks.NewPubSubBroker(t))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		stale := sweepCandidate(dtos.ViolationStatusPending, dtos.ContestStatusNone, 10*24*time.Hour, now)
		violationRepository.On("FindEligibleForAutoClose", now, 7).Return([]models.Violation{stale}, nil)

		report, err := service.RunSweep(ctx, now, 7)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, report.Scanned)
		assert.Equal(t, 0, report.Closed)
	})

	t.Run("notification failures do not stop the sweep", func(t *testing.T) {
		violationRepository := mocks.NewViolationRepository(t)
		dispatcher := mocks.NewNotificationDispatcher(t)
		broker := mocks.NewPubSubBroker(t)
		service := NewAutoCloseService(violationRepository, dispatcher, broker)

		stale := sweepCandidate(dtos.ViolationStatusPending, dtos.ContestStatusNone, 10*24*time.Hour, now)

		violationRepository.On("FindEligibleForAutoClose", now, 7).Return([]models.Violation{stale}, nil)
		violationRepository.On("AttemptTransition", (*gorm.DB)(nil), stale.ID, mock.Anything, mock.Anything).Return(int64(1), nil)
		dispatcher.On("Notify", "owner-1", mock.Anything, mock.Anything, dtos.NotificationTypeViolationClosed, mock.Anything).Return(errors.New("insert failed"))
		broker.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker down"))

		report, err := service.RunSweep(context.Background(), now, 7)
		assert.NoError(t, err)
		assert.Equal(t, 1, report.Closed)
	})
}
