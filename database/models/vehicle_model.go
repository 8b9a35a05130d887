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

// Vehicle belongs to exactly one account holder. Registration and RFID tag
// assignment happen in the external registration service - this table is the
// minimal mirror the lifecycle engine needs for ownership checks.
type Vehicle struct {
	Model
	PlateNumber string  `json:"plateNumber" gorm:"type:text;not null;uniqueIndex"`
	RFIDTag     *string `json:"rfidTag" gorm:"type:text;default:null"`
	OwnerID     string  `json:"ownerId" gorm:"type:text;not null;index"`
}

func (v Vehicle) TableName() string {
	return "vehicles"
}
