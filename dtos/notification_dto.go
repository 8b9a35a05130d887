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

type NotificationType string

const (
	NotificationTypeViolationReported NotificationType = "violationReported"
	NotificationTypeStatusChanged     NotificationType = "statusChanged"
	NotificationTypeAppealSubmitted   NotificationType = "appealSubmitted"
	NotificationTypeAppealDecided     NotificationType = "appealDecided"
	NotificationTypeViolationClosed   NotificationType = "violationClosed"
)

type NotificationDTO struct {
	ID        uuid.UUID        `json:"id"`
	UserID    string           `json:"userId"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	RelatedID *uuid.UUID       `json:"relatedId"`
	IsRead    bool             `json:"isRead"`
	CreatedAt time.Time        `json:"createdAt"`
}
