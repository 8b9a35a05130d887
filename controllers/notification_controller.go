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

package controllers

import (
	"errors"

	"github.com/google/uuid"
	"github.com/l3montree-dev/parkwatch/database/models"
	"github.com/l3montree-dev/parkwatch/dtos"
	"github.com/l3montree-dev/parkwatch/shared"
	"github.com/l3montree-dev/parkwatch/utils"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type NotificationController struct {
	notificationRepository shared.NotificationRepository
}

func NewNotificationController(notificationRepository shared.NotificationRepository) *NotificationController {
	return &NotificationController{
		notificationRepository: notificationRepository,
	}
}

func (controller *NotificationController) List(ctx shared.Context) error {
	notifications, err := controller.notificationRepository.GetByUserID(shared.GetSession(ctx).GetUserID())
	if err != nil {
		return err
	}

	return ctx.JSON(200, utils.Map(notifications, notificationToDTO))
}

// MarkRead marks a single notification as read. Scoped to the session user -
// someone else's notification yields a 404.
func (controller *NotificationController) MarkRead(ctx shared.Context) error {
	id, err := uuid.Parse(shared.SanitizeParam(ctx.Param("notificationID")))
	if err != nil {
		return echo.NewHTTPError(400, "invalid notification id")
	}

	if err := controller.notificationRepository.MarkRead(id, shared.GetSession(ctx).GetUserID()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(404, "notification not found").WithInternal(err)
		}
		return err
	}

	return ctx.NoContent(204)
}

func notificationToDTO(notification models.Notification) dtos.NotificationDTO {
	return dtos.NotificationDTO{
		ID:        notification.ID,
		UserID:    notification.UserID,
		Title:     notification.Title,
		Message:   notification.Message,
		Type:      notification.Type,
		RelatedID: notification.RelatedID,
		IsRead:    notification.IsRead,
		CreatedAt: notification.CreatedAt,
	}
}
