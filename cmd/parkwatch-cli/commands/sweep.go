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

package commands

import (
	"log/slog"
	"time"

	"github.com/l3montree-dev/parkwatch/config"
	"github.com/l3montree-dev/parkwatch/database/repositories"
	"github.com/l3montree-dev/parkwatch/pubsub"
	"github.com/l3montree-dev/parkwatch/services"
	"github.com/l3montree-dev/parkwatch/shared"
	"github.com/spf13/cobra"
)

func NewSweepCommand() *cobra.Command {
	sweep := cobra.Command{
		Use:   "sweep",
		Short: "Run a single auto-close sweep and exit",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			shared.LoadConfig() // nolint
			db, err := shared.DatabaseFactory()
			if err != nil {
				slog.Error("could not connect to database", "err", err)
				return err
			}

			broker, err := pubsub.BrokerFactory()
			if err != nil {
				slog.Error("failed to create broker", "err", err)
				return err
			}

			policy := config.LifecyclePolicyFromEnv()
			if days, _ := cmd.Flags().GetInt("threshold-days"); days > 0 {
				policy.AutoCloseThresholdDays = days
			}

			violationRepository := repositories.NewViolationRepository(db)
			notificationRepository := repositories.NewNotificationRepository(db)
			dispatcher := services.NewNotificationService(notificationRepository)
			autoCloseService := services.NewAutoCloseService(violationRepository, dispatcher, broker)

			report, err := autoCloseService.RunSweep(cmd.Context(), time.Now(), policy.AutoCloseThresholdDays)
			if err != nil {
				slog.Error("sweep failed", "err", err)
				return err
			}

			slog.Info("sweep done", "scanned", report.Scanned, "closed", report.Closed)
			return nil
		},
	}

	sweep.Flags().Int("threshold-days", 0, "override the staleness threshold in days")
	return &sweep
}
