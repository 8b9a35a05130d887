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

import "time"

const (
	RoleAdmin    = "admin"
	RoleSecurity = "security"
	RoleSubject  = "subject"
)

// Account mirrors the identities managed by the external auth service. The id
// is the external subject id, not a generated uuid. The lifecycle engine only
// uses this table to resolve admin fan-out targets and vehicle ownership.
type Account struct {
	ID        string    `json:"id" gorm:"primarykey;type:text"`
	Role      string    `json:"role" gorm:"type:text;not null;default:'subject'"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (a Account) TableName() string {
	return "accounts"
}

func (a Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}
