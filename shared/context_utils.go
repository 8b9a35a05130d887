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

package shared

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AuthSession is the already-authenticated actor of a request. Authentication
// itself happens upstream - the session middleware only materializes what the
// auth layer forwarded.
type AuthSession interface {
	GetUserID() string
	GetRole() string
	IsAdmin() bool
}

type headerSession struct {
	userID string
	role   string
}

func (s headerSession) GetUserID() string {
	return s.userID
}

func (s headerSession) GetRole() string {
	return s.role
}

func (s headerSession) IsAdmin() bool {
	return s.role == "admin" || s.role == "security"
}

func NewSession(userID, role string) AuthSession {
	return headerSession{userID: userID, role: role}
}

func GetSession(ctx Context) AuthSession {
	return ctx.Get("session").(AuthSession)
}

func SetSession(ctx Context, session AuthSession) {
	ctx.Set("session", session)
}

func GetViolationID(ctx Context) (uuid.UUID, error) {
	id, err := uuid.Parse(SanitizeParam(ctx.Param("violationID")))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(400, "invalid violation id")
	}
	return id, nil
}
