package recipe

import (
	"family-foodie/domain"
	"family-foodie/entities"
	"context"
	"mime/multipart"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubRecipeRepository struct {
	RecipeRepository

	getByID     func(id string) (*entities.Recipe, error)
	isVisible   func(id, householdID string) (bool, error)
	clone       func(recipe *entities.Recipe, householdID uuid.UUID) (*entities.Recipe, error)
	update      func(recipe *entities.Recipe) error
	attachErr   error
	updatedWith *entities.Recipe

	created          *entities.Recipe
	collectionErr    error
	addedCollection  uuid.UUID
	addedRecipe      uuid.UUID
	addedByHousehold uuid.UUID
}

func (s *stubRecipeRepository) CreateRecipe(_ context.Context, recipe *entities.Recipe, _ []*entities.RecipeIngredient) error {
	s.created = recipe
	return nil
}

func (s *stubRecipeRepository) AddRecipeToOwnedCollection(_ context.Context, collectionID, recipeID, householdID uuid.UUID) error {
	if s.collectionErr != nil {
		return s.collectionErr
	}
	s.addedCollection = collectionID
	s.addedRecipe = recipeID
	s.addedByHousehold = householdID
	return nil
}

func (s *stubRecipeRepository) GetRecipeByID(_ context.Context, id string) (*entities.Recipe, error) {
	return s.getByID(id)
}

func (s *stubRecipeRepository) IsRecipeVisible(_ context.Context, id string, householdID string) (bool, error) {
	return s.isVisible(id, householdID)
}

func (s *stubRecipeRepository) CloneRecipe(_ context.Context, recipe *entities.Recipe, householdID uuid.UUID) (*entities.Recipe, error) {
	return s.clone(recipe, householdID)
}

func (s *stubRecipeRepository) UpdateRecipe(_ context.Context, recipe *entities.Recipe) error {
	s.updatedWith = recipe
	if s.update != nil {
		return s.update(recipe)
	}
	return nil
}

func (s *stubRecipeRepository) AttachFileLocked(_ context.Context, id string, apply func(recipe *entities.Recipe) error) error {
	if s.attachErr != nil {
		return s.attachErr
	}
	recipe, err := s.getByID(id)
	if err != nil {
		return err
	}
	return apply(recipe)
}

type stubFileStorage struct {
	uploaded string
}

func (s *stubFileStorage) UploadFile(fileName string, _ *multipart.FileHeader, folder string, _ ...string) (string, error) {
	s.uploaded = folder + "/" + fileName
	return s.uploaded, nil
}

func (s *stubFileStorage) UploadBytes(fileName string, _ []byte, folder string, _ string) (string, error) {
	s.uploaded = folder + "/" + fileName
	return s.uploaded, nil
}

func (s *stubFileStorage) DeleteFile(string) error { return nil }

func (s *stubFileStorage) GetPublicLinkKey(objectKey string) string {
	return "http://localhost:3000/uploads/" + objectKey
}

func (s *stubFileStorage) GetObjectKeyFromLink(string) string { return "" }

func TestSlugify(t *testing.T) {
	assert.Equal(t, "beef-stew", slugify("Beef Stew"))
	assert.Equal(t, "mac-n-cheese", slugify("Mac 'n' Cheese!"))
	assert.Equal(t, "pho-bo", slugify("  Pho Bo  "))
}

func TestNextFilename(t *testing.T) {
	assert.Equal(t, "beef-stew.1.jpg", nextFilename("beef-stew", "", ".jpg"))
	assert.Equal(t, "beef-stew.4.jpg", nextFilename("beef-stew", "beef-stew.3.jpg", ".jpg"))
	assert.Equal(t, "beef-stew.2.pdf", nextFilename("beef-stew", "beef-stew.1.pdf", ".pdf"))
}

func TestUpdateRecipeClonesWhenNotOwned(t *testing.T) {
	owner := uuid.New()
	caller := uuid.New()
	original := &entities.Recipe{
		ID:          uuid.New(),
		HouseholdID: owner,
		Name:        "Beef Stew",
		Public:      true,
	}
	clone := &entities.Recipe{
		ID:          uuid.New(),
		HouseholdID: caller,
		Name:        original.Name,
	}

	repo := &stubRecipeRepository{
		getByID:   func(string) (*entities.Recipe, error) { return original, nil },
		isVisible: func(string, string) (bool, error) { return true, nil },
		clone: func(recipe *entities.Recipe, householdID uuid.UUID) (*entities.Recipe, error) {
			assert.Equal(t, original.ID, recipe.ID)
			assert.Equal(t, caller, householdID)
			return clone, nil
		},
	}
	service := NewRecipeService(repo, &stubFileStorage{})

	name := "Beef Stew Deluxe"
	res, err := service.UpdateRecipe(context.Background(), original.ID.String(), domain.UpdateRecipeRequest{Name: name}, caller.String())
	require.NoError(t, err)

	assert.Equal(t, clone.ID.String(), res.ID)
	assert.True(t, res.Owned)
	assert.Equal(t, name, res.Name)
	require.NotNil(t, repo.updatedWith)
	assert.Equal(t, clone.ID, repo.updatedWith.ID)
	assert.Equal(t, "Beef Stew", original.Name)
}

func TestUpdateRecipeRejectsInvisibleRecipe(t *testing.T) {
	original := &entities.Recipe{ID: uuid.New(), HouseholdID: uuid.New(), Name: "Secret"}

	repo := &stubRecipeRepository{
		getByID:   func(string) (*entities.Recipe, error) { return original, nil },
		isVisible: func(string, string) (bool, error) { return false, nil },
	}
	service := NewRecipeService(repo, &stubFileStorage{})

	_, err := service.UpdateRecipe(context.Background(), original.ID.String(), domain.UpdateRecipeRequest{Name: "Stolen"}, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrRecipeNotVisible)
}

func TestUpdateRecipeEditsOwnedInPlace(t *testing.T) {
	household := uuid.New()
	original := &entities.Recipe{ID: uuid.New(), HouseholdID: household, Name: "Beef Stew"}

	repo := &stubRecipeRepository{
		getByID: func(string) (*entities.Recipe, error) { return original, nil },
		clone: func(*entities.Recipe, uuid.UUID) (*entities.Recipe, error) {
			t.Fatal("owned recipe must not be cloned")
			return nil, nil
		},
	}
	service := NewRecipeService(repo, &stubFileStorage{})

	res, err := service.UpdateRecipe(context.Background(), original.ID.String(), domain.UpdateRecipeRequest{Name: "Beef Stew II"}, household.String())
	require.NoError(t, err)
	assert.Equal(t, original.ID.String(), res.ID)
	assert.Equal(t, "Beef Stew II", original.Name)
}

func TestDeleteRecipeRequiresOwnership(t *testing.T) {
	original := &entities.Recipe{ID: uuid.New(), HouseholdID: uuid.New()}

	repo := &stubRecipeRepository{
		getByID: func(string) (*entities.Recipe, error) { return original, nil },
	}
	service := NewRecipeService(repo, &stubFileStorage{})

	err := service.DeleteRecipe(context.Background(), original.ID.String(), uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrRecipeNotOwned)
}

func TestUploadRecipePdfMapsLockConflict(t *testing.T) {
	repo := &stubRecipeRepository{
		attachErr: &pgconn.PgError{Code: pgLockNotAvailable},
	}
	service := NewRecipeService(repo, &stubFileStorage{})

	_, err := service.UploadRecipePdf(
		context.Background(),
		uuid.New().String(),
		domain.UploadRecipePdfRequest{Pdf: &multipart.FileHeader{Filename: "stew.pdf"}},
		uuid.New().String(),
	)
	assert.ErrorIs(t, err, domain.ErrPdfUploadInProgress)
}

func TestUploadRecipePdfVersionsFilename(t *testing.T) {
	household := uuid.New()
	recipe := &entities.Recipe{
		ID:          uuid.New(),
		HouseholdID: household,
		Name:        "Beef Stew",
		PdfFilename: "beef-stew.2.pdf",
	}

	repo := &stubRecipeRepository{
		getByID: func(string) (*entities.Recipe, error) { return recipe, nil },
	}
	files := &stubFileStorage{}
	service := NewRecipeService(repo, files)

	res, err := service.UploadRecipePdf(
		context.Background(),
		recipe.ID.String(),
		domain.UploadRecipePdfRequest{Pdf: &multipart.FileHeader{Filename: "stew.pdf"}},
		household.String(),
	)
	require.NoError(t, err)
	assert.Equal(t, "beef-stew.3.pdf", res.Filename)
	assert.Equal(t, "beef-stew.3.pdf", recipe.PdfFilename)
	assert.Equal(t, "recipe-pdfs/beef-stew.3.pdf", files.uploaded)
}

func TestCreateRecipeAddsToRequestedCollection(t *testing.T) {
	household := uuid.New()
	collection := uuid.New()

	repo := &stubRecipeRepository{}
	service := NewRecipeService(repo, &stubFileStorage{})

	res, err := service.CreateRecipe(context.Background(), domain.CreateRecipeRequest{
		Name:         "Beef Stew",
		Serves:       4,
		CollectionID: collection.String(),
	}, household.String())
	require.NoError(t, err)

	assert.Equal(t, collection, repo.addedCollection)
	assert.Equal(t, res.ID, repo.addedRecipe.String())
	assert.Equal(t, household, repo.addedByHousehold)
}

func TestCreateRecipeRejectsForeignCollection(t *testing.T) {
	repo := &stubRecipeRepository{collectionErr: gorm.ErrRecordNotFound}
	service := NewRecipeService(repo, &stubFileStorage{})

	_, err := service.CreateRecipe(context.Background(), domain.CreateRecipeRequest{
		Name:         "Beef Stew",
		Serves:       4,
		CollectionID: uuid.New().String(),
	}, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrCollectionNotOwned)
}

func TestCreateRecipeSkipsCollectionWhenUnset(t *testing.T) {
	repo := &stubRecipeRepository{}
	service := NewRecipeService(repo, &stubFileStorage{})

	_, err := service.CreateRecipe(context.Background(), domain.CreateRecipeRequest{
		Name:   "Beef Stew",
		Serves: 4,
	}, uuid.New().String())
	require.NoError(t, err)

	assert.Equal(t, uuid.Nil, repo.addedCollection)
}
