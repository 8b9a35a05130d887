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
	"github.com/l3montree-dev/parkwatch/database/models"
	"github.com/l3montree-dev/parkwatch/shared"
)

type AccountRepository struct {
	db shared.DB
	*GormRepository[string, models.Account]
}

func NewAccountRepository(db shared.DB) *AccountRepository {
	return &AccountRepository{
		db:             db,
		GormRepository: newGormRepository[string, models.Account](db),
	}
}

// AdminIDs returns the fan-out targets of admin-directed notifications.
func (repository *AccountRepository) AdminIDs() ([]string, error) {
	var ids []string
	err := repository.db.Model(&models.Account{}).
		Where("role = ?", models.RoleAdmin).
		Pluck("id", &ids).Error
	return ids, err
}

var _ shared.AccountRepository = (*AccountRepository)(nil)
