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
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/l3montree-dev/parkwatch/database/models"
	"github.com/l3montree-dev/parkwatch/mocks"
	"github.com/l3montree-dev/parkwatch/shared"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func invokeSessionMiddleware(t *testing.T, accountRepository shared.AccountRepository, headers map[string]string) (shared.AuthSession, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	ctx := e.NewContext(req, httptest.NewRecorder())

	var session shared.AuthSession
	err := SessionMiddleware(accountRepository)(func(ctx echo.Context) error {
		session = shared.GetSession(ctx)
		return nil
	})(ctx)
	return session, err
}

func TestSessionMiddleware(t *testing.T) {
	t.Run("rejects a request without a forwarded identity", func(t *testing.T) {
		_, err := invokeSessionMiddleware(t, mocks.NewAccountRepository(t), nil)

		httpError := &echo.HTTPError{}
		assert.ErrorAs(t, err, &httpError)
		assert.Equal(t, 401, httpError.Code)
	})

	t.Run("the stored role wins over the forwarded one", func(t *testing.T) {
		accountRepository := mocks.NewAccountRepository(t)
		accountRepository.On("Read", "user-1").Return(models.Account{Role: models.RoleSubject}, nil)

		session, err := invokeSessionMiddleware(t, accountRepository, map[string]string{
			"X-User-ID":   "user-1",
			"X-User-Role": models.RoleAdmin,
		})

		assert.NoError(t, err)
		assert.Equal(t, models.RoleSubject, session.GetRole())
		assert.False(t, session.IsAdmin())
	})

	t.Run("an unknown account keeps the forwarded role", func(t *testing.T) {
		accountRepository := mocks.NewAccountRepository(t)
		accountRepository.On("Read", "user-2").Return(models.Account{}, gorm.ErrRecordNotFound)

		session, err := invokeSessionMiddleware(t, accountRepository, map[string]string{
			"X-User-ID":   "user-2",
			"X-User-Role": models.RoleSecurity,
		})

		assert.NoError(t, err)
		assert.Equal(t, models.RoleSecurity, session.GetRole())
		assert.True(t, session.IsAdmin())
	})

	t.Run("no role at all defaults to subject", func(t *testing.T) {
		accountRepository := mocks.NewAccountRepository(t)
		accountRepository.On("Read", "user-3").Return(models.Account{}, gorm.ErrRecordNotFound)

		session, err := invokeSessionMiddleware(t, accountRepository, map[string]string{
			"X-User-ID": "user-3",
		})

		assert.NoError(t, err)
		assert.Equal(t, models.RoleSubject, session.GetRole())
	})

	t.Run("a lookup failure is not survivable", func(t *testing.T) {
		accountRepository := mocks.NewAccountRepository(t)
		accountRepository.On("Read", "user-4").Return(models.Account{}, errors.New("connection refused"))

		_, err := invokeSessionMiddleware(t, accountRepository, map[string]string{
			"X-User-ID": "user-4",
		})

		httpError := &echo.HTTPError{}
		assert.ErrorAs(t, err, &httpError)
		assert.Equal(t, 500, httpError.Code)
	})
}

func TestStaffRequired(t *testing.T) {
	next := func(ctx echo.Context) error { return ctx.NoContent(200) }

	newCtx := func(role string) echo.Context {
		e := echo.New()
		ctx := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		shared.SetSession(ctx, shared.NewSession("user-1", role))
		return ctx
	}

	t.Run("a subject is rejected", func(t *testing.T) {
		err := StaffRequired()(next)(newCtx(models.RoleSubject))

		httpError := &echo.HTTPError{}
		assert.ErrorAs(t, err, &httpError)
		assert.Equal(t, 403, httpError.Code)
	})

	t.Run("admin and security pass", func(t *testing.T) {
		assert.NoError(t, StaffRequired()(next)(newCtx(models.RoleAdmin)))
		assert.NoError(t, StaffRequired()(next)(newCtx(models.RoleSecurity)))
	})
}
