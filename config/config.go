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

package config

import (
	"os"
	"strconv"
	"time"

	"github.com/l3montree-dev/parkwatch/dtos"
)

// Filled at build time.
var (
	Version   = "dev"
	Commit    = ""
	Branch    = ""
	BuildDate = ""
)

const (
	DefaultAutoCloseThresholdDays = 7
	DefaultMaxEvidenceFiles       = 5
	DefaultSweepInterval          = time.Hour
)

// LifecyclePolicy holds the configurable policy knobs of the violation
// lifecycle. The evidence cap and the appeal-approved target status are
// deliberately policy, not hard-coded behavior.
type LifecyclePolicy struct {
	// AutoCloseThresholdDays is the staleness threshold of the sweep.
	AutoCloseThresholdDays int
	// MaxEvidenceFiles caps contest uploads; excess files are dropped, not
	// rejected.
	MaxEvidenceFiles int
	// AppealApprovedStatus is the violation status an approved appeal moves
	// the record to.
	AppealApprovedStatus dtos.ViolationStatus
	// SweepInterval is the tick of the background auto-close daemon.
	SweepInterval time.Duration
}

func LifecyclePolicyFromEnv() LifecyclePolicy {
	policy := LifecyclePolicy{
		AutoCloseThresholdDays: DefaultAutoCloseThresholdDays,
		MaxEvidenceFiles:       DefaultMaxEvidenceFiles,
		AppealApprovedStatus:   dtos.ViolationStatusResolved,
		SweepInterval:          DefaultSweepInterval,
	}

	if days := os.Getenv("AUTO_CLOSE_THRESHOLD_DAYS"); days != "" {
		if val, err := strconv.Atoi(days); err == nil && val > 0 {
			policy.AutoCloseThresholdDays = val
		}
	}

	if maxFiles := os.Getenv("MAX_EVIDENCE_FILES"); maxFiles != "" {
		if val, err := strconv.Atoi(maxFiles); err == nil && val >= 0 {
			policy.MaxEvidenceFiles = val
		}
	}

	if status := os.Getenv("APPEAL_APPROVED_STATUS"); status != "" {
		switch dtos.ViolationStatus(status) {
		case dtos.ViolationStatusResolved, dtos.ViolationStatusContested:
			policy.AppealApprovedStatus = dtos.ViolationStatus(status)
		}
	}

	if interval := os.Getenv("AUTO_CLOSE_SWEEP_INTERVAL"); interval != "" {
		if val, err := time.ParseDuration(interval); err == nil && val > 0 {
			policy.SweepInterval = val
		}
	}

	return policy
}
