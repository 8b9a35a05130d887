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
	"errors"
	"log/slog"

	"github.com/l3montree-dev/parkwatch/database/models"
	"github.com/l3montree-dev/parkwatch/shared"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// SessionMiddleware materializes the identity the auth gateway forwarded in
// trusted headers. The gateway terminates authentication - this service only
// reads the result and resolves the role from the accounts table, falling
// back to the forwarded role header for users it has never seen.
func SessionMiddleware(accountRepository shared.AccountRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			userID := ctx.Request().Header.Get("X-User-ID")
			if userID == "" {
				return echo.NewHTTPError(401, "no user identity forwarded")
			}

			role := ctx.Request().Header.Get("X-User-Role")
			account, err := accountRepository.Read(userID)
			if err == nil {
				// the stored role wins over whatever the gateway claims
				role = account.Role
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return echo.NewHTTPError(500, "could not resolve account").WithInternal(err)
			}

			if role == "" {
				slog.Debug("no role forwarded, defaulting to subject", "userID", userID)
				role = models.RoleSubject
			}

			shared.SetSession(ctx, shared.NewSession(userID, role))
			return next(ctx)
		}
	}
}
