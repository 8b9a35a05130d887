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
	"errors"
	"fmt"
	"time"

	"github.com/l3montree-dev/parkwatch/config"
	"github.com/l3montree-dev/parkwatch/dtos"
	"github.com/l3montree-dev/parkwatch/services"
	"github.com/l3montree-dev/parkwatch/shared"
	"github.com/l3montree-dev/parkwatch/utils"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type ViolationController struct {
	violationService    shared.ViolationService
	violationRepository shared.ViolationRepository
	autoCloseService    shared.AutoCloseService
	policy              config.LifecyclePolicy
}

func NewViolationController(violationService shared.ViolationService, violationRepository shared.ViolationRepository, autoCloseService shared.AutoCloseService, policy config.LifecyclePolicy) *ViolationController {
	return &ViolationController{
		violationService:    violationService,
		violationRepository: violationRepository,
		autoCloseService:    autoCloseService,
		policy:              policy,
	}
}

// Report creates a new violation. Accepts multipart form data so evidence
// files can be attached in the same request.
func (controller *ViolationController) Report(ctx shared.Context) error {
	var req dtos.ReportViolationRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	evidence, err := evidenceUploads(ctx)
	if err != nil {
		return err
	}

	violation, err := controller.violationService.ReportViolation(req, evidence, shared.GetSession(ctx).GetUserID())
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return echo.NewHTTPError(404, "vehicle not found").WithInternal(err)
		}
		return lifecycleError(err)
	}

	return ctx.JSON(201, violationToDTO(violation))
}

func (controller *ViolationController) Read(ctx shared.Context) error {
	violationID, err := shared.GetViolationID(ctx)
	if err != nil {
		return err
	}

	violation, err := controller.violationRepository.Read(violationID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return echo.NewHTTPError(404, "violation not found").WithInternal(err)
	} else if err != nil {
		return err
	}

	return ctx.JSON(200, violationToDTO(violation))
}

// ReadOwn serves a subject's view of a single violation. The owner check
// happens in the query, a foreign violation is indistinguishable from a
// missing one.
func (controller *ViolationController) ReadOwn(ctx shared.Context) error {
	violationID, err := shared.GetViolationID(ctx)
	if err != nil {
		return err
	}

	violation, err := controller.violationRepository.ReadByIDAndOwner(violationID, shared.GetSession(ctx).GetUserID())
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return echo.NewHTTPError(404, "violation not found").WithInternal(err)
	} else if err != nil {
		return err
	}

	return ctx.JSON(200, violationToDTO(violation))
}

func (controller *ViolationController) ListOwn(ctx shared.Context) error {
	violations, err := controller.violationRepository.GetByOwner(shared.GetSession(ctx).GetUserID())
	if err != nil {
		return err
	}

	return ctx.JSON(200, utils.Map(violations, violationToDTO))
}

// ListAppealEligible returns the subject's violations an appeal can still be
// filed against: pending status, never contested.
func (controller *ViolationController) ListAppealEligible(ctx shared.Context) error {
	violations, err := controller.violationRepository.GetAppealEligibleByOwner(shared.GetSession(ctx).GetUserID())
	if err != nil {
		return err
	}

	return ctx.JSON(200, utils.Map(violations, violationToDTO))
}

func (controller *ViolationController) SetStatus(ctx shared.Context) error {
	violationID, err := shared.GetViolationID(ctx)
	if err != nil {
		return err
	}

	var req dtos.SetStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	violation, err := controller.violationService.SetStatus(violationID, req.Status, shared.GetSession(ctx).GetUserID())
	if err != nil {
		return lifecycleError(err)
	}

	return ctx.JSON(200, violationToDTO(violation))
}

// FileAppeal records the subject's contest. Multipart form data with an
// explanation field and optional evidence files.
func (controller *ViolationController) FileAppeal(ctx shared.Context) error {
	violationID, err := shared.GetViolationID(ctx)
	if err != nil {
		return err
	}

	explanation := ctx.FormValue("explanation")
	if explanation == "" {
		return echo.NewHTTPError(400, "an appeal needs an explanation")
	}

	evidence, err := evidenceUploads(ctx)
	if err != nil {
		return err
	}

	violation, err := controller.violationService.FileAppeal(violationID, shared.GetSession(ctx).GetUserID(), explanation, evidence)
	if err != nil {
		return lifecycleError(err)
	}

	return ctx.JSON(200, violationToDTO(violation))
}

func (controller *ViolationController) AdjudicateAppeal(ctx shared.Context) error {
	violationID, err := shared.GetViolationID(ctx)
	if err != nil {
		return err
	}

	var req dtos.AdjudicateAppealRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	violation, err := controller.violationService.AdjudicateAppeal(violationID, shared.GetSession(ctx).GetUserID(), req.Decision)
	if err != nil {
		return lifecycleError(err)
	}

	return ctx.JSON(200, violationToDTO(violation))
}

// RunSweep triggers an auto-close run on demand, independent of the daemon
// schedule. The returned report makes the run auditable.
func (controller *ViolationController) RunSweep(ctx shared.Context) error {
	report, err := controller.autoCloseService.RunSweep(ctx.Request().Context(), time.Now(), controller.policy.AutoCloseThresholdDays)
	if err != nil {
		return err
	}

	return ctx.JSON(200, report)
}
