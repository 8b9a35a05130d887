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

package router

import (
	"github.com/l3montree-dev/parkwatch/controllers"
	"github.com/l3montree-dev/parkwatch/middlewares"
	"github.com/labstack/echo/v4"
)

type ViolationRouter struct {
	*echo.Group
}

func NewViolationRouter(
	sessionRouter SessionRouter,
	violationController *controllers.ViolationController,
) ViolationRouter {
	violationRouter := sessionRouter.Group.Group("/violations")

	// subject routes - scoped to the session user's own vehicles
	violationRouter.GET("/own/", violationController.ListOwn)
	violationRouter.GET("/own/appeal-eligible/", violationController.ListAppealEligible)
	violationRouter.GET("/own/:violationID/", violationController.ReadOwn)
	violationRouter.POST("/own/:violationID/appeal/", violationController.FileAppeal)

	// staff routes
	staffRouter := violationRouter.Group("", middlewares.StaffRequired())
	staffRouter.POST("/", violationController.Report)
	staffRouter.GET("/:violationID/", violationController.Read)
	staffRouter.PUT("/:violationID/status/", violationController.SetStatus)
	staffRouter.POST("/:violationID/adjudicate/", violationController.AdjudicateAppeal)
	staffRouter.POST("/sweep/", violationController.RunSweep)

	return ViolationRouter{Group: violationRouter}
}
