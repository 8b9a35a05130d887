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
	"fmt"
	"time"

	"github.com/l3montree-dev/parkwatch/database/models"
	"github.com/l3montree-dev/parkwatch/dtos"
)

// transitions is the violation lifecycle as data. closed is reachable from
// every non-closed status, but only through the sweep or an approved
// adjudication - the manual status path never targets it (see
// AllowedManualStatuses).
var transitions = map[dtos.ViolationStatus][]dtos.ViolationStatus{
	dtos.ViolationStatusPending:   {dtos.ViolationStatusResolved, dtos.ViolationStatusContested, dtos.ViolationStatusClosed},
	dtos.ViolationStatusContested: {dtos.ViolationStatusClosed},
	dtos.ViolationStatusResolved:  {dtos.ViolationStatusClosed},
	dtos.ViolationStatusClosed:    {},
}

func CanTransition(from, to dtos.ViolationStatus) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

func IsTerminal(status dtos.ViolationStatus) bool {
	return status == dtos.ViolationStatusClosed
}

// AllowedManualStatuses are the targets the manual status-update path
// accepts. Closure is the exclusive responsibility of the sweep and the
// adjudication path.
func AllowedManualStatuses() []dtos.ViolationStatus {
	return []dtos.ViolationStatus{
		dtos.ViolationStatusPending,
		dtos.ViolationStatusResolved,
		dtos.ViolationStatusContested,
	}
}

func IsAllowedManualStatus(status dtos.ViolationStatus) bool {
	for _, allowed := range AllowedManualStatuses() {
		if allowed == status {
			return true
		}
	}
	return false
}

// NotClosed is the guard of every close attempt: whichever writer reaches the
// store first wins, the loser affects zero rows.
func NotClosed() []dtos.ViolationStatus {
	return []dtos.ViolationStatus{
		dtos.ViolationStatusPending,
		dtos.ViolationStatusResolved,
		dtos.ViolationStatusContested,
	}
}

const CloseReasonAppealDenied = "Auto-closed: Appeal denied"

func CloseReasonStale(thresholdDays int) string {
	return fmt.Sprintf("Auto-closed after %d days", thresholdDays)
}

// CloseReasonFor computes the close reason for a sweep-eligible violation at
// the moment of closing. A denied appeal takes precedence over staleness when
// both conditions hold.
func CloseReasonFor(violation models.Violation, now time.Time, thresholdDays int) string {
	if violation.ContestStatus == dtos.ContestStatusDenied {
		return CloseReasonAppealDenied
	}
	return CloseReasonStale(thresholdDays)
}

// IsSweepEligible mirrors the eligibility query of the auto-close sweep:
// not closed, and either stale or carrying a denied appeal.
func IsSweepEligible(violation models.Violation, now time.Time, thresholdDays int) bool {
	if violation.IsClosed() {
		return false
	}
	if violation.ContestStatus == dtos.ContestStatusDenied {
		return true
	}
	return violation.Age(now) >= time.Duration(thresholdDays)*24*time.Hour
}
