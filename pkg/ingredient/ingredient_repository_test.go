package ingredient

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

func TestGetVisibleIngredientsAppliesAccessTiers(t *testing.T) {
	db, mock := mockDB(t)
	repo := NewIngredientRepository(db)

	householdID := uuid.New().String()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "ingredients"`).
		WithArgs(householdID, true, householdID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	mock.ExpectQuery(`SELECT \* FROM "ingredients" WHERE .*ingredients\.household_id = \$1 OR ingredients\.public = \$2 OR ingredients\.id IN \(SELECT recipe_ingredients\.ingredient_id FROM "recipe_ingredients" JOIN collection_recipes ON collection_recipes\.recipe_id = recipe_ingredients\.recipe_id JOIN collection_subscriptions ON collection_subscriptions\.collection_id = collection_recipes\.collection_id WHERE collection_subscriptions\.household_id = \$3`).
		WithArgs(householdID, true, householdID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "household_id", "name", "fresh", "public"}).
			AddRow(uuid.New().String(), householdID, "Carrot", true, false).
			AddRow(uuid.New().String(), uuid.New().String(), "Rice", false, true))

	ingredients, count, err := repo.GetVisibleIngredients(context.Background(), householdID, "", 1, 20)
	require.NoError(t, err)

	assert.Equal(t, int64(2), count)
	require.Len(t, ingredients, 2)
	assert.Equal(t, "Carrot", ingredients[0].Name)
	assert.Equal(t, "Rice", ingredients[1].Name)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetVisibleIngredientsAppliesSearch(t *testing.T) {
	db, mock := mockDB(t)
	repo := NewIngredientRepository(db)

	householdID := uuid.New().String()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "ingredients"`).
		WithArgs(householdID, true, householdID, "%car%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	mock.ExpectQuery(`SELECT \* FROM "ingredients" WHERE .*ingredients\.name ILIKE \$4`).
		WithArgs(householdID, true, householdID, "%car%").
		WillReturnRows(sqlmock.NewRows([]string{"id", "household_id", "name"}).
			AddRow(uuid.New().String(), householdID, "Carrot"))

	ingredients, count, err := repo.GetVisibleIngredients(context.Background(), householdID, "car", 1, 20)
	require.NoError(t, err)

	assert.Equal(t, int64(1), count)
	require.Len(t, ingredients, 1)
	assert.Equal(t, "Carrot", ingredients[0].Name)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountRecipeUsage(t *testing.T) {
	db, mock := mockDB(t)
	repo := NewIngredientRepository(db)

	id := uuid.New().String()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "recipe_ingredients" WHERE ingredient_id = \$1`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountRecipeUsage(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}
