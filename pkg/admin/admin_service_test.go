package admin

import (
	migration "family-foodie/cmd/database/migrate"
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func mockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return db, mock
}

func TestGetMigrationStatusReportsPendingSteps(t *testing.T) {
	db, mock := mockDB(t)
	service := NewAdminService(db)

	steps := migration.Steps()
	require.NotEmpty(t, steps)

	appliedAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT \* FROM "schema_migrations" ORDER BY applied_at asc`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "filename", "applied_at"}).
			AddRow(1, steps[0].Name, appliedAt))

	status, err := service.GetMigrationStatus(context.Background())
	require.NoError(t, err)

	require.Len(t, status.Migrations, len(steps))
	assert.True(t, status.Migrations[0].Applied)
	require.NotNil(t, status.Migrations[0].AppliedAt)
	assert.Equal(t, appliedAt, *status.Migrations[0].AppliedAt)

	assert.Equal(t, len(steps)-1, status.Pending)
	assert.False(t, status.InSync)
	for _, item := range status.Migrations[1:] {
		assert.False(t, item.Applied)
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetMigrationStatusInSyncWhenAllApplied(t *testing.T) {
	db, mock := mockDB(t)
	service := NewAdminService(db)

	steps := migration.Steps()
	rows := sqlmock.NewRows([]string{"id", "filename", "applied_at"})
	for i, step := range steps {
		rows.AddRow(i+1, step.Name, time.Now())
	}
	mock.ExpectQuery(`SELECT \* FROM "schema_migrations" ORDER BY applied_at asc`).
		WillReturnRows(rows)

	status, err := service.GetMigrationStatus(context.Background())
	require.NoError(t, err)

	assert.Zero(t, status.Pending)
	assert.True(t, status.InSync)

	assert.NoError(t, mock.ExpectationsWereMet())
}
