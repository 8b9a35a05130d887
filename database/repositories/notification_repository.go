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
	"github.com/google/uuid"
	"github.com/l3montree-dev/parkwatch/database/models"
	"github.com/l3montree-dev/parkwatch/shared"
	"gorm.io/gorm"
)

type NotificationRepository struct {
	db shared.DB
	*GormRepository[uuid.UUID, models.Notification]
}

func NewNotificationRepository(db shared.DB) *NotificationRepository {
	return &NotificationRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Notification](db),
	}
}

func (repository *NotificationRepository) GetByUserID(userID string) ([]models.Notification, error) {
	var notifications []models.Notification
	err := repository.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notifications).Error
	return notifications, err
}

// MarkRead only applies to the recipient's own notification - a foreign id
// reads as not found.
func (repository *NotificationRepository) MarkRead(id uuid.UUID, userID string) error {
	res := repository.db.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

var _ shared.NotificationRepository = (*NotificationRepository)(nil)
