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
	"github.com/google/uuid"
	"github.com/l3montree-dev/parkwatch/dtos"
)

// Notification is a directed, durable message to a single user. It is written
// by lifecycle operations as a best-effort side effect and mutated only by the
// recipient marking it read.
type Notification struct {
	Model
	UserID    string                `json:"userId" gorm:"type:text;not null;index"`
	Title     string                `json:"title" gorm:"type:text;not null"`
	Message   string                `json:"message" gorm:"type:text;not null"`
	Type      dtos.NotificationType `json:"type" gorm:"type:text;not null"`
	RelatedID *uuid.UUID            `json:"relatedId" gorm:"type:uuid;default:null"`
	IsRead    bool                  `json:"isRead" gorm:"not null;default:false"`
}

func (n Notification) TableName() string {
	return "notifications"
}
