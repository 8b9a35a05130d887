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

import (
	"testing"
	"time"

	"github.com/l3montree-dev/parkwatch/dtos"
	"github.com/l3montree-dev/parkwatch/utils"
	"github.com/stretchr/testify/assert"
)

func TestCloseInvariantHolds(t *testing.T) {
	now := time.Now()

	t.Run("open violation without closed_at", func(t *testing.T) {
		violation := Violation{Status: dtos.ViolationStatusPending}
		assert.True(t, violation.CloseInvariantHolds())
	})

	t.Run("closed violation with closed_at", func(t *testing.T) {
		violation := Violation{Status: dtos.ViolationStatusClosed, ClosedAt: &now}
		assert.True(t, violation.CloseInvariantHolds())
	})

	t.Run("closed violation without closed_at violates the invariant", func(t *testing.T) {
		violation := Violation{Status: dtos.ViolationStatusClosed}
		assert.False(t, violation.CloseInvariantHolds())
	})

	t.Run("open violation with closed_at violates the invariant", func(t *testing.T) {
		violation := Violation{Status: dtos.ViolationStatusResolved, ClosedAt: &now}
		assert.False(t, violation.CloseInvariantHolds())
	})
}

func TestContestInvariantHolds(t *testing.T) {
	t.Run("undecided contest on a pending violation", func(t *testing.T) {
		violation := Violation{Status: dtos.ViolationStatusPending, ContestStatus: dtos.ContestStatusPending}
		assert.True(t, violation.ContestInvariantHolds())
	})

	t.Run("undecided contest on a resolved violation violates the invariant", func(t *testing.T) {
		violation := Violation{Status: dtos.ViolationStatusResolved, ContestStatus: dtos.ContestStatusPending}
		assert.False(t, violation.ContestInvariantHolds())
	})

	t.Run("adjudicated contest survives any status", func(t *testing.T) {
		now := time.Now()
		violation := Violation{
			Status:        dtos.ViolationStatusClosed,
			ContestStatus: dtos.ContestStatusDenied,
			ClosedAt:      &now,
			ClosedReason:  utils.Ptr("Auto-closed: Appeal denied"),
		}
		assert.True(t, violation.ContestInvariantHolds())

		violation.Status = dtos.ViolationStatusResolved
		violation.ContestStatus = dtos.ContestStatusApproved
		violation.ClosedAt = nil
		violation.ClosedReason = nil
		assert.True(t, violation.ContestInvariantHolds())
	})
}

func TestAge(t *testing.T) {
	now := time.Now()
	violation := Violation{}
	violation.CreatedAt = now.Add(-48 * time.Hour)

	assert.Equal(t, 48*time.Hour, violation.Age(now))
}
