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

package middlewares

import (
	"github.com/l3montree-dev/parkwatch/shared"
	"github.com/labstack/echo/v4"
)

// StaffRequired gates routes that change violation state on behalf of the
// campus: reporting, manual status updates, adjudication and the sweep.
// Subjects interact through their own routes only.
func StaffRequired() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			session := shared.GetSession(ctx)
			if !session.IsAdmin() {
				return echo.NewHTTPError(403, "forbidden")
			}
			return next(ctx)
		}
	}
}
