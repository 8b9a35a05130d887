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

import "errors"

// Expected, user-facing outcomes of lifecycle operations. Controllers map
// them to specific HTTP responses so the UI can explain the rejection;
// anything else is an infrastructure failure.
var (
	ErrNotFound         = errors.New("violation not found")
	ErrInvalidState     = errors.New("violation is in the wrong state for this operation")
	ErrAlreadyContested = errors.New("violation has already been contested")
)
