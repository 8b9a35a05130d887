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

package controllers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/parkwatch/config"
	"github.com/l3montree-dev/parkwatch/database/models"
	"github.com/l3montree-dev/parkwatch/dtos"
	"github.com/l3montree-dev/parkwatch/mocks"
	"github.com/l3montree-dev/parkwatch/services"
	"github.com/l3montree-dev/parkwatch/shared"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func newTestContext(t *testing.T, method, body, contentType string) (shared.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	shared.SetSession(ctx, shared.NewSession("officer-1", models.RoleAdmin))
	return ctx, rec
}

func testViolation(id uuid.UUID) models.Violation {
	violation := models.Violation{
		Status:        dtos.ViolationStatusPending,
		ContestStatus: dtos.ContestStatusNone,
		Description:   "parked without a permit",
		Location:      "lot B",
		Vehicle:       models.Vehicle{OwnerID: "owner-1"},
	}
	violation.ID = id
	return violation
}

func TestReportEndpoint(t *testing.T) {
	vehicleID := uuid.New()
	body := fmt.Sprintf(`{"vehicleId":%q,"description":"parked without a permit","location":"lot B"}`, vehicleID)

	t.Run("returns 201 with the created violation", func(t *testing.T) {
		violationService := mocks.NewViolationService(t)
		controller := NewViolationController(violationService, mocks.NewViolationRepository(t), mocks.NewAutoCloseService(t), config.LifecyclePolicy{})

		created := testViolation(uuid.New())
		violationService.On("ReportViolation", mock.MatchedBy(func(req dtos.ReportViolationRequest) bool {
			return req.VehicleID == vehicleID && req.Location == "lot B"
		}), mock.Anything, "officer-1").Return(created, nil)

		ctx, rec := newTestContext(t, http.MethodPost, body, echo.MIMEApplicationJSON)
		err := controller.Report(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 201, rec.Code)
		assert.Contains(t, rec.Body.String(), created.ID.String())
	})

	t.Run("rejects a request without a location", func(t *testing.T) {
		controller := NewViolationController(mocks.NewViolationService(t), mocks.NewViolationRepository(t), mocks.NewAutoCloseService(t), config.LifecyclePolicy{})

		ctx, _ := newTestContext(t, http.MethodPost, fmt.Sprintf(`{"vehicleId":%q}`, vehicleID), echo.MIMEApplicationJSON)
		err := controller.Report(ctx)

		httpError := &echo.HTTPError{}
		assert.ErrorAs(t, err, &httpError)
		assert.Equal(t, 400, httpError.Code)
	})

	t.Run("maps an unknown vehicle to 404", func(t *testing.T) {
		violationService := mocks.NewViolationService(t)
		controller := NewViolationController(violationService, mocks.NewViolationRepository(t), mocks.NewAutoCloseService(t), config.LifecyclePolicy{})

		violationService.On("ReportViolation", mock.Anything, mock.Anything, "officer-1").Return(models.Violation{}, services.ErrNotFound)

		ctx, _ := newTestContext(t, http.MethodPost, body, echo.MIMEApplicationJSON)
		err := controller.Report(ctx)

		httpError := &echo.HTTPError{}
		assert.ErrorAs(t, err, &httpError)
		assert.Equal(t, 404, httpError.Code)
	})
}

func TestReadOwnEndpoint(t *testing.T) {
	violationID := uuid.New()

	t.Run("serves the subject's own violation", func(t *testing.T) {
		violationRepository := mocks.NewViolationRepository(t)
		controller := NewViolationController(mocks.NewViolationService(t), violationRepository, mocks.NewAutoCloseService(t), config.LifecyclePolicy{})

		violationRepository.On("ReadByIDAndOwner", violationID, "officer-1").Return(testViolation(violationID), nil)

		ctx, rec := newTestContext(t, http.MethodGet, "", "")
		ctx.SetParamNames("violationID")
		ctx.SetParamValues(violationID.String())

		assert.NoError(t, controller.ReadOwn(ctx))
		assert.Equal(t, 200, rec.Code)
	})

	t.Run("a foreign violation yields 404", func(t *testing.T) {
		violationRepository := mocks.NewViolationRepository(t)
		controller := NewViolationController(mocks.NewViolationService(t), violationRepository, mocks.NewAutoCloseService(t), config.LifecyclePolicy{})

		violationRepository.On("ReadByIDAndOwner", violationID, "officer-1").Return(models.Violation{}, gorm.ErrRecordNotFound)

		ctx, _ := newTestContext(t, http.MethodGet, "", "")
		ctx.SetParamNames("violationID")
		ctx.SetParamValues(violationID.String())

		err := controller.ReadOwn(ctx)
		httpError := &echo.HTTPError{}
		assert.ErrorAs(t, err, &httpError)
		assert.Equal(t, 404, httpError.Code)
	})

	t.Run("a malformed id yields 400", func(t *testing.T) {
		controller := NewViolationController(mocks.NewViolationService(t), mocks.NewViolationRepository(t), mocks.NewAutoCloseService(t), config.LifecyclePolicy{})

		ctx, _ := newTestContext(t, http.MethodGet, "", "")
		ctx.SetParamNames("violationID")
		ctx.SetParamValues("not-a-uuid")

		err := controller.ReadOwn(ctx)
		httpError := &echo.HTTPError{}
		assert.ErrorAs(t, err, &httpError)
		assert.Equal(t, 400, httpError.Code)
	})
}

func TestSetStatusEndpoint(t *testing.T) {
	violationID := uuid.New()

	t.Run("updates the status", func(t *testing.T) {
		violationService := mocks.NewViolationService(t)
		controller := NewViolationController(violationService, mocks.NewViolationRepository(t), mocks.NewAutoCloseService(t), config.LifecyclePolicy{})

		updated := testViolation(violationID)
		updated.Status = dtos.ViolationStatusResolved
		violationService.On("SetStatus", violationID, dtos.ViolationStatusResolved, "officer-1").Return(updated, nil)

		ctx, rec := newTestContext(t, http.MethodPut, `{"status":"resolved"}`, echo.MIMEApplicationJSON)
		ctx.SetParamNames("violationID")
		ctx.SetParamValues(violationID.String())

		assert.NoError(t, controller.SetStatus(ctx))
		assert.Equal(t, 200, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"resolved"`)
	})

	t.Run("closed is rejected at the request boundary", func(t *testing.T) {
		controller := NewViolationController(mocks.NewViolationService(t), mocks.NewViolationRepository(t), mocks.NewAutoCloseService(t), config.LifecyclePolicy{})

		ctx, _ := newTestContext(t, http.MethodPut, `{"status":"closed"}`, echo.MIMEApplicationJSON)
		ctx.SetParamNames("violationID")
		ctx.SetParamValues(violationID.String())

		err := controller.SetStatus(ctx)
		httpError := &echo.HTTPError{}
		assert.ErrorAs(t, err, &httpError)
		assert.Equal(t, 400, httpError.Code)
	})

	t.Run("an invalid transition maps to 409", func(t *testing.T) {
		violationService := mocks.NewViolationService(t)
		controller := NewViolationController(violationService, mocks.NewViolationRepository(t), mocks.NewAutoCloseService(t), config.LifecyclePolicy{})

		violationService.On("SetStatus", violationID, dtos.ViolationStatusResolved, "officer-1").Return(models.Violation{}, services.ErrInvalidState)

		ctx, _ := newTestContext(t, http.MethodPut, `{"status":"resolved"}`, echo.MIMEApplicationJSON)
		ctx.SetParamNames("violationID")
		ctx.SetParamValues(violationID.String())

		err := controller.SetStatus(ctx)
		httpError := &echo.HTTPError{}
		assert.ErrorAs(t, err, &httpError)
		assert.Equal(t, 409, httpError.Code)
	})
}

func TestFileAppealEndpoint(t *testing.T) {
	violationID := uuid.New()

	t.Run("files the appeal", func(t *testing.T) {
		violationService := mocks.NewViolationService(t)
		controller := NewViolationController(violationService, mocks.NewViolationRepository(t), mocks.NewAutoCloseService(t), config.LifecyclePolicy{})

		contested := testViolation(violationID)
		contested.ContestStatus = dtos.ContestStatusPending
		violationService.On("FileAppeal", violationID, "officer-1", "I had a permit", mock.Anything).Return(contested, nil)

		form := url.Values{"explanation": {"I had a permit"}}
		ctx, rec := newTestContext(t, http.MethodPost, form.Encode(), echo.MIMEApplicationForm)
		ctx.SetParamNames("violationID")
		ctx.SetParamValues(violationID.String())

		assert.NoError(t, controller.FileAppeal(ctx))
		assert.Equal(t, 200, rec.Code)
		assert.Contains(t, rec.Body.String(), `"contestStatus":"pending"`)
	})

	t.Run("an appeal without an explanation is rejected", func(t *testing.T) {
		controller := NewViolationController(mocks.NewViolationService(t), mocks.NewViolationRepository(t), mocks.NewAutoCloseService(t), config.LifecyclePolicy{})

		ctx, _ := newTestContext(t, http.MethodPost, "", echo.MIMEApplicationForm)
		ctx.SetParamNames("violationID")
		ctx.SetParamValues(violationID.String())

		err := controller.FileAppeal(ctx)
		httpError := &echo.HTTPError{}
		assert.ErrorAs(t, err, &httpError)
		assert.Equal(t, 400, httpError.Code)
	})

	t.Run("a second appeal maps to 409", func(t *testing.T) {
		violationService := mocks.NewViolationService(t)
		controller := NewViolationController(violationService, mocks.NewViolationRepository(t), mocks.NewAutoCloseService(t), config.LifecyclePolicy{})

		violationService.On("FileAppeal", violationID, "officer-1", "once more", mock.Anything).Return(models.Violation{}, services.ErrAlreadyContested)

		form := url.Values{"explanation": {"once more"}}
		ctx, _ := newTestContext(t, http.MethodPost, form.Encode(), echo.MIMEApplicationForm)
		ctx.SetParamNames("violationID")
		ctx.SetParamValues(violationID.String())

		err := controller.FileAppeal(ctx)
		httpError := &echo.HTTPError{}
		assert.ErrorAs(t, err, &httpError)
		assert.Equal(t, 409, httpError.Code)
	})
}

func TestAdjudicateAppealEndpoint(t *testing.T) {
	violationID := uuid.New()

	t.Run("approves the appeal", func(t *testing.T) {
		violationService := mocks.NewViolationService(t)
		controller := NewViolationController(violationService, mocks.NewViolationRepository(t), mocks.NewAutoCloseService(t), config.LifecyclePolicy{})

		adjudicated := testViolation(violationID)
		adjudicated.Status = dtos.ViolationStatusResolved
		adjudicated.ContestStatus = dtos.ContestStatusApproved
		violationService.On("AdjudicateAppeal", violationID, "officer-1", dtos.ContestStatusApproved).Return(adjudicated, nil)

		ctx, rec := newTestContext(t, http.MethodPost, `{"decision":"approved"}`, echo.MIMEApplicationJSON)
		ctx.SetParamNames("violationID")
		ctx.SetParamValues(violationID.String())

		assert.NoError(t, controller.AdjudicateAppeal(ctx))
		assert.Equal(t, 200, rec.Code)
	})

	t.Run("only approved or denied are accepted", func(t *testing.T) {
		controller := NewViolationController(mocks.NewViolationService(t), mocks.NewViolationRepository(t), mocks.NewAutoCloseService(t), config.LifecyclePolicy{})

		ctx, _ := newTestContext(t, http.MethodPost, `{"decision":"pending"}`, echo.MIMEApplicationJSON)
		ctx.SetParamNames("violationID")
		ctx.SetParamValues(violationID.String())

		err := controller.AdjudicateAppeal(ctx)
		httpError := &echo.HTTPError{}
		assert.ErrorAs(t, err, &httpError)
		assert.Equal(t, 400, httpError.Code)
	})
}

func TestRunSweepEndpoint(t *testing.T) {
	autoCloseService := mocks.NewAutoCloseService(t)
	controller := NewViolationController(mocks.NewViolationService(t), mocks.NewViolationRepository(t), autoCloseService, config.LifecyclePolicy{AutoCloseThresholdDays: 7})

	closedID := uuid.New()
	autoCloseService.On("RunSweep", mock.Anything, mock.Anything, 7).Return(dtos.SweepReport{
		Scanned:   3,
		Closed:    1,
		ClosedIDs: []uuid.UUID{closedID},
	}, nil)

	ctx, rec := newTestContext(t, http.MethodPost, "", "")

	assert.NoError(t, controller.RunSweep(ctx))
	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), `"scanned":3`)
	assert.Contains(t, rec.Body.String(), closedID.String())
}
