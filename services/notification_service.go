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
	"github.com/google/uuid"
	"github.com/l3montree-dev/parkwatch/database/models"
	"github.com/l3montree-dev/parkwatch/dtos"
	"github.com/l3montree-dev/parkwatch/shared"
	"github.com/l3montree-dev/parkwatch/utils"
)

// NotificationService is the notification dispatcher: pure inserts into the
// notifications table. It either succeeds or returns an error - the decision
// to swallow that error belongs to the caller, since dispatch must never roll
// back the lifecycle write that triggered it.
type NotificationService struct {
	notificationRepository shared.NotificationRepository
}

func NewNotificationService(notificationRepository shared.NotificationRepository) *NotificationService {
	return &NotificationService{
		notificationRepository: notificationRepository,
	}
}

func (s *NotificationService) Notify(userID, title, message string, notificationType dtos.NotificationType, relatedID *uuid.UUID) error {
	notification := models.Notification{
		UserID:    userID,
		Title:     title,
		Message:   message,
		Type:      notificationType,
		RelatedID: relatedID,
	}
	return s.notificationRepository.Create(nil, &notification)
}

func (s *NotificationService) NotifyAll(userIDs []string, title, message string, notificationType dtos.NotificationType, relatedID *uuid.UUID) error {
	if len(userIDs) == 0 {
		return nil
	}

	notifications := utils.Map(userIDs, func(userID string) models.Notification {
		return models.Notification{
			UserID:    userID,
			Title:     title,
			Message:   message,
			Type:      notificationType,
			RelatedID: relatedID,
		}
	})
	return s.notificationRepository.CreateBatch(nil, notifications)
}

var _ shared.NotificationDispatcher = (*NotificationService)(nil)
