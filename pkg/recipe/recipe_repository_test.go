package recipe

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// recordingMockDB keeps the last executed SQL so tests can assert on the
// exact shape of a generated query.
func recordingMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *string) {
	t.Helper()

	var captured string
	matcher := sqlmock.QueryMatcherFunc(func(_, actualSQL string) error {
		captured = actualSQL
		return nil
	})

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(matcher))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return db, mock, &captured
}

func TestGetAllVisibleRecipesIncludesUntypedRecipes(t *testing.T) {
	db, mock, captured := recordingMockDB(t)
	repo := NewRecipeRepository(db)

	householdID := uuid.New().String()

	mock.ExpectQuery(`SELECT`).
		WithArgs(householdID, true, householdID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "household_id", "name", "public", "primary_type_id", "secondary_type_id"}).
			AddRow(uuid.New().String(), householdID, "Plain Soup", false, nil, nil).
			AddRow(uuid.New().String(), uuid.New().String(), "Chicken Rice", true, uuid.New().String(), uuid.New().String()))

	recipes, err := repo.GetAllVisibleRecipes(context.Background(), householdID)
	require.NoError(t, err)

	require.Len(t, recipes, 2)
	assert.Nil(t, recipes[0].PrimaryTypeID)
	assert.Nil(t, recipes[0].SecondaryTypeID)
	assert.Equal(t, "Plain Soup", recipes[0].Name)

	assert.Contains(t, *captured, "recipes.household_id = $1 OR recipes.public = $2 OR recipes.id IN")
	assert.NotContains(t, *captured, "IS NOT NULL")

	assert.NoError(t, mock.ExpectationsWereMet())
}
