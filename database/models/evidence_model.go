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

import "github.com/google/uuid"

// Evidence is an attachment owned by a violation - either the reporter's
// photo or a contest upload. Binary content lives inline as bytea; a real
// object store is out of scope for the lifecycle engine.
type Evidence struct {
	Model
	ViolationID uuid.UUID `json:"violationId" gorm:"type:uuid;not null;index"`
	FileName    string    `json:"fileName" gorm:"type:text;not null"`
	MimeType    string    `json:"mimeType" gorm:"type:text;not null"`
	Content     []byte    `json:"-" gorm:"type:bytea"`
}

func (e Evidence) TableName() string {
	return "evidences"
}
