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

package statemachine

import (
	"testing"
	"time"

	"github.com/l3montree-dev/parkwatch/database/models"
	"github.com/l3montree-dev/parkwatch/dtos"
	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	t.Run("closed is terminal", func(t *testing.T) {
		for _, target := range []dtos.ViolationStatus{dtos.ViolationStatusPending, dtos.ViolationStatusResolved, dtos.ViolationStatusContested, dtos.ViolationStatusClosed} {
			assert.False(t, CanTransition(dtos.ViolationStatusClosed, target))
		}
	})

	t.Run("pending can move to every other status", func(t *testing.T) {
		assert.True(t, CanTransition(dtos.ViolationStatusPending, dtos.ViolationStatusResolved))
		assert.True(t, CanTransition(dtos.ViolationStatusPending, dtos.ViolationStatusContested))
		assert.True(t, CanTransition(dtos.ViolationStatusPending, dtos.ViolationStatusClosed))
	})

	t.Run("contested and resolved can only close", func(t *testing.T) {
		assert.True(t, CanTransition(dtos.ViolationStatusContested, dtos.ViolationStatusClosed))
		assert.False(t, CanTransition(dtos.ViolationStatusContested, dtos.ViolationStatusResolved))
		assert.True(t, CanTransition(dtos.ViolationStatusResolved, dtos.ViolationStatusClosed))
		assert.False(t, CanTransition(dtos.ViolationStatusResolved, dtos.ViolationStatusPending))
	})
}

func TestIsAllowedManualStatus(t *testing.T) {
	assert.True(t, IsAllowedManualStatus(dtos.ViolationStatusPending))
	assert.True(t, IsAllowedManualStatus(dtos.ViolationStatusResolved))
	assert.True(t, IsAllowedManualStatus(dtos.ViolationStatusContested))
	// closure is reserved for the sweep and adjudication
	assert.False(t, IsAllowedManualStatus(dtos.ViolationStatusClosed))
}

func TestCloseReasonFor(t *testing.T) {
	now := time.Now()

	t.Run("stale violation gets the threshold reason", func(t *testing.T) {
		violation := models.Violation{
			Status:        dtos.ViolationStatusPending,
			ContestStatus: dtos.ContestStatusNone,
		}
		violation.CreatedAt = now.AddDate(0, 0, -10)

		assert.Equal(t, "Auto-closed after 7 days", CloseReasonFor(violation, now, 7))
	})

	t.Run("denied appeal takes precedence over staleness", func(t *testing.T) {
		violation := models.Violation{
			Status:        dtos.ViolationStatusPending,
			ContestStatus: dtos.ContestStatusDenied,
		}
		violation.CreatedAt = now.AddDate(0, 0, -30)

		assert.Equal(t, CloseReasonAppealDenied, CloseReasonFor(violation, now, 7))
	})

	t.Run("fresh denied appeal still gets the denied reason", func(t *testing.T) {
		violation := models.Violation{
			Status:        dtos.ViolationStatusContested,
			ContestStatus: dtos.ContestStatusDenied,
		}
		violation.CreatedAt = now.Add(-time.Hour)

		assert.Equal(t, CloseReasonAppealDenied, CloseReasonFor(violation, now, 7))
	})
}

func TestIsSweepEligible(t *testing.T) {
	now := time.Now()

	newViolation := func(status dtos.ViolationStatus, contestStatus dtos.ContestStatus, age time.Duration) models.Violation {
		violation := models.Violation{Status: status, ContestStatus: contestStatus}
		violation.CreatedAt = now.Add(-age)
		return violation
	}

	t.Run("stale pending violation is eligible", func(t *testing.T) {
		assert.True(t, IsSweepEligible(newViolation(dtos.ViolationStatusPending, dtos.ContestStatusNone, 8*24*time.Hour), now, 7))
	})

	t.Run("fresh pending violation is not eligible", func(t *testing.T) {
		assert.False(t, IsSweepEligible(newViolation(dtos.ViolationStatusPending, dtos.ContestStatusNone, 24*time.Hour), now, 7))
	})

	t.Run("denied appeal makes a fresh violation eligible", func(t *testing.T) {
		assert.True(t, IsSweepEligible(newViolation(dtos.ViolationStatusContested, dtos.ContestStatusDenied, time.Hour), now, 7))
	})

	t.Run("closed violation is never eligible", func(t *testing.T) {
		violation := newViolation(dtos.ViolationStatusClosed, dtos.ContestStatusDenied, 30*24*time.Hour)
		assert.False(t, IsSweepEligible(violation, now, 7))
	})

	t.Run("stale resolved violation is eligible", func(t *testing.T) {
		assert.True(t, IsSweepEligible(newViolation(dtos.ViolationStatusResolved, dtos.ContestStatusNone, 8*24*time.Hour), now, 7))
	})
}
