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

package repositories

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/l3montree-dev/parkwatch/dtos"
	"github.com/l3montree-dev/parkwatch/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) (sqlmock.Sqlmock, *ViolationRepository) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return mock, NewViolationRepository(db)
}

func TestFindEligibleForAutoClose(t *testing.T) {
	mock, repository := setupMockDB(t)

	now := time.Now()
	cutoff := now.AddDate(0, 0, -7)
	violationID := uuid.New()
	vehicleID := uuid.New()

	rows := sqlmock.NewRows([]string{"id", "status", "contest_status", "vehicle_id"}).
		AddRow(violationID.String(), "pending", "none", vehicleID.String())

	mock.ExpectQuery(`SELECT \* FROM "violations" WHERE status != \$1 AND \(created_at <= \$2 OR contest_status = \$3\)`).
		WithArgs("closed", cutoff, "denied").
		WillReturnRows(rows)
	mock.ExpectQuery(`SELECT \* FROM "vehicles"`).
		WithArgs(vehicleID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id"}).AddRow(vehicleID.String(), "owner-1"))

	eligible, err := repository.FindEligibleForAutoClose(now, 7)

	require.NoError(t, err)
	require.Len(t, eligible, 1)
	assert.Equal(t, violationID, eligible[0].ID)
	assert.Equal(t, "owner-1", eligible[0].Vehicle.OwnerID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttemptTransition(t *testing.T) {
	violationID := uuid.New()

	t.Run("reports the affected row", func(t *testing.T) {
		mock, repository := setupMockDB(t)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "violations" SET .+ WHERE id = \$\d+ AND status IN \(\$\d+\)`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		affected, err := repository.AttemptTransition(nil, violationID, shared.TransitionGuard{
			Statuses: []dtos.ViolationStatus{dtos.ViolationStatusPending},
		}, map[string]any{"status": dtos.ViolationStatusResolved, "updated_by": "officer-1"})

		require.NoError(t, err)
		assert.Equal(t, int64(1), affected)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("a stale guard affects nothing", func(t *testing.T) {
		mock, repository := setupMockDB(t)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "violations" SET .+ WHERE id = \$\d+ AND status IN \(\$\d+\) AND contest_status IN \(\$\d+\)`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		affected, err := repository.AttemptTransition(nil, violationID, shared.TransitionGuard{
			Statuses:        []dtos.ViolationStatus{dtos.ViolationStatusPending},
			ContestStatuses: []dtos.ContestStatus{dtos.ContestStatusNone},
		}, map[string]any{"contest_status": dtos.ContestStatusPending})

		require.NoError(t, err)
		assert.Equal(t, int64(0), affected)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("an empty guard updates unconditionally", func(t *testing.T) {
		mock, repository := setupMockDB(t)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "violations" SET .+ WHERE id = \$\d+`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		affected, err := repository.AttemptTransition(nil, violationID, shared.TransitionGuard{}, map[string]any{"updated_by": "system"})

		require.NoError(t, err)
		assert.Equal(t, int64(1), affected)
	})
}

func TestReadByIDAndOwner(t *testing.T) {
	violationID := uuid.New()

	t.Run("a violation of another owner reads as not found", func(t *testing.T) {
		mock, repository := setupMockDB(t)

		mock.ExpectQuery(`SELECT .+ FROM "violations" JOIN vehicles ON vehicles\.id = violations\.vehicle_id WHERE violations\.id = \$1 AND vehicles\.owner_id = \$2`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repository.ReadByIDAndOwner(violationID, "owner-2")
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestGetAppealEligibleByOwner(t *testing.T) {
	mock, repository := setupMockDB(t)

	mock.ExpectQuery(`SELECT .+ FROM "violations" JOIN vehicles ON vehicles\.id = violations\.vehicle_id WHERE vehicles\.owner_id = \$1 AND violations\.status = \$2 AND violations\.contest_status = \$3`).
		WithArgs("owner-1", "pending", "none").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	eligible, err := repository.GetAppealEligibleByOwner("owner-1")

	require.NoError(t, err)
	assert.Empty(t, eligible)
	assert.NoError(t, mock.ExpectationsWereMet())
}
