package collection

import (
	"family-foodie/domain"
	"family-foodie/entities"
	"family-foodie/internal/utils/storage"
	"family-foodie/pkg/recipe"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var titlePattern = regexp.MustCompile(`[^a-z0-9]+`)

type (
	CollectionService interface {
		GetCollections(ctx context.Context, householdID string, page, limit int) ([]domain.CollectionResponse, int64, error)
		GetCollectionDetail(ctx context.Context, id string, householdID string) (domain.CollectionDetailResponse, error)
		CreateCollection(ctx context.Context, req domain.CreateCollectionRequest, householdID string) (domain.CollectionResponse, error)
		UpdateCollection(ctx context.Context, id string, req domain.UpdateCollectionRequest, householdID string) (domain.CollectionResponse, error)
		DeleteCollection(ctx context.Context, id string, householdID string) error
		Subscribe(ctx context.Context, id string, householdID string) error
		Unsubscribe(ctx context.Context, id string, householdID string) error
		AddRecipe(ctx context.Context, id string, req domain.AddCollectionRecipeRequest, householdID string) (domain.CollectionResponse, error)
		RemoveRecipe(ctx context.Context, id string, recipeID string, householdID string) error
		UploadCover(ctx context.Context, id string, req domain.UploadCollectionCoverRequest, householdID string) (domain.UploadFileResponse, error)
	}

	collectionService struct {
		collectionRepository CollectionRepository
		recipeRepository     recipe.RecipeRepository
		files                storage.FileStorage
	}
)

func NewCollectionService(collectionRepository CollectionRepository, recipeRepository recipe.RecipeRepository, files storage.FileStorage) CollectionService {
	return &collectionService{
		collectionRepository: collectionRepository,
		recipeRepository:     recipeRepository,
		files:                files,
	}
}

func toCollectionResponse(collection *entities.Collection, householdID string, subscribed bool, recipeCount int64) domain.CollectionResponse {
	return domain.CollectionResponse{
		ID:            collection.ID.String(),
		HouseholdID:   collection.HouseholdID.String(),
		Title:         collection.Title,
		Public:        collection.Public,
		ImageFilename: collection.ImageFilename,
		Owned:         collection.HouseholdID.String() == householdID,
		Subscribed:    subscribed,
		RecipeCount:   recipeCount,
		CreatedAt:     collection.CreatedAt,
	}
}

func (s *collectionService) isVisible(collection *entities.Collection, householdID string, subscribed bool) bool {
	return collection.HouseholdID.String() == householdID || collection.Public || subscribed
}

func (s *collectionService) GetCollections(ctx context.Context, householdID string, page, limit int) ([]domain.CollectionResponse, int64, error) {
	collections, count, err := s.collectionRepository.GetVisibleCollections(ctx, householdID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	ids := make([]uuid.UUID, 0, len(collections))
	for _, collection := range collections {
		ids = append(ids, collection.ID)
	}

	recipeCounts, err := s.collectionRepository.GetRecipeCounts(ctx, ids)
	if err != nil {
		return nil, 0, err
	}
	subscribedIDs, err := s.collectionRepository.GetSubscribedCollectionIDs(ctx, householdID)
	if err != nil {
		return nil, 0, err
	}

	response := make([]domain.CollectionResponse, 0, len(collections))
	for _, collection := range collections {
		response = append(response, toCollectionResponse(
			collection, householdID, subscribedIDs[collection.ID], recipeCounts[collection.ID],
		))
	}
	return response, count, nil
}

func (s *collectionService) GetCollectionDetail(ctx context.Context, id string, householdID string) (domain.CollectionDetailResponse, error) {
	collection, err := s.collectionRepository.GetCollectionWithRecipes(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CollectionDetailResponse{}, domain.ErrCollectionNotFound
		}
		return domain.CollectionDetailResponse{}, err
	}

	subscribedIDs, err := s.collectionRepository.GetSubscribedCollectionIDs(ctx, householdID)
	if err != nil {
		return domain.CollectionDetailResponse{}, err
	}

	if !s.isVisible(collection, householdID, subscribedIDs[collection.ID]) {
		return domain.CollectionDetailResponse{}, domain.ErrCollectionNotVisible
	}

	detail := domain.CollectionDetailResponse{
		CollectionResponse: toCollectionResponse(collection, householdID, subscribedIDs[collection.ID], int64(len(collection.Recipes))),
		Recipes:            make([]domain.RecipeResponse, 0, len(collection.Recipes)),
	}
	for _, item := range collection.Recipes {
		detail.Recipes = append(detail.Recipes, domain.RecipeResponse{
			ID:              item.ID.String(),
			HouseholdID:     item.HouseholdID.String(),
			Name:            item.Name,
			Description:     item.Description,
			PrepTimeMinutes: item.PrepTimeMinutes,
			CookTimeMinutes: item.CookTimeMinutes,
			Serves:          item.Serves,
			Public:          item.Public,
			ImageFilename:   item.ImageFilename,
			PdfFilename:     item.PdfFilename,
			Owned:           item.HouseholdID.String() == householdID,
			CreatedAt:       item.CreatedAt,
		})
	}
	return detail, nil
}

func (s *collectionService) CreateCollection(ctx context.Context, req domain.CreateCollectionRequest, householdID string) (domain.CollectionResponse, error) {
	householdUUID, err := uuid.Parse(householdID)
	if err != nil {
		return domain.CollectionResponse{}, domain.ErrParseUUID
	}

	collection := &entities.Collection{
		ID:          uuid.New(),
		HouseholdID: householdUUID,
		Title:       req.Title,
		Public:      req.Public,
	}
	if err := s.collectionRepository.CreateCollection(ctx, collection); err != nil {
		return domain.CollectionResponse{}, err
	}

	return toCollectionResponse(collection, householdID, false, 0), nil
}

// ensureOwned returns an owned collection for mutation, cloning a visible
// non-owned one into the household first (copy-on-write).
func (s *collectionService) ensureOwned(ctx context.Context, id string, householdID string) (*entities.Collection, error) {
	collection, err := s.collectionRepository.GetCollectionByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCollectionNotFound
		}
		return nil, err
	}

	if collection.HouseholdID.String() == householdID {
		return collection, nil
	}

	subscribedIDs, err := s.collectionRepository.GetSubscribedCollectionIDs(ctx, householdID)
	if err != nil {
		return nil, err
	}
	if !s.isVisible(collection, householdID, subscribedIDs[collection.ID]) {
		return nil, domain.ErrCollectionNotVisible
	}

	householdUUID, err := uuid.Parse(householdID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	return s.collectionRepository.CloneCollection(ctx, collection, householdUUID)
}

func (s *collectionService) UpdateCollection(ctx context.Context, id string, req domain.UpdateCollectionRequest, householdID string) (domain.CollectionResponse, error) {
	collection, err := s.ensureOwned(ctx, id, householdID)
	if err != nil {
		return domain.CollectionResponse{}, err
	}

	if req.Title != "" {
		collection.Title = req.Title
	}
	if req.Public != nil {
		collection.Public = *req.Public
	}

	if err := s.collectionRepository.UpdateCollection(ctx, collection); err != nil {
		return domain.CollectionResponse{}, err
	}

	return toCollectionResponse(collection, householdID, false, 0), nil
}

func (s *collectionService) DeleteCollection(ctx context.Context, id string, householdID string) error {
	collection, err := s.collectionRepository.GetCollectionByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCollectionNotFound
		}
		return err
	}

	if collection.HouseholdID.String() != householdID {
		return domain.ErrCollectionNotOwned
	}

	return s.collectionRepository.DeleteCollection(ctx, id)
}

func (s *collectionService) Subscribe(ctx context.Context, id string, householdID string) error {
	collection, err := s.collectionRepository.GetCollectionByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCollectionNotFound
		}
		return err
	}

	if collection.HouseholdID.String() == householdID {
		return domain.ErrSubscribeOwnCollection
	}
	if !collection.Public {
		return domain.ErrCollectionNotPublic
	}

	householdUUID, err := uuid.Parse(householdID)
	if err != nil {
		return domain.ErrParseUUID
	}
	return s.collectionRepository.Subscribe(ctx, householdUUID, collection.ID)
}

func (s *collectionService) Unsubscribe(ctx context.Context, id string, householdID string) error {
	return s.collectionRepository.Unsubscribe(ctx, householdID, id)
}

// AddRecipe adds a visible recipe to a collection. A non-owned collection is
// cloned first, so the membership lands on the household's own copy.
func (s *collectionService) AddRecipe(ctx context.Context, id string, req domain.AddCollectionRecipeRequest, householdID string) (domain.CollectionResponse, error) {
	visible, err := s.recipeRepository.IsRecipeVisible(ctx, req.RecipeID, householdID)
	if err != nil {
		return domain.CollectionResponse{}, err
	}
	if !visible {
		return domain.CollectionResponse{}, domain.ErrRecipeNotVisible
	}

	collection, err := s.ensureOwned(ctx, id, householdID)
	if err != nil {
		return domain.CollectionResponse{}, err
	}

	recipeUUID, err := uuid.Parse(req.RecipeID)
	if err != nil {
		return domain.CollectionResponse{}, domain.ErrParseUUID
	}

	if err := s.collectionRepository.AddRecipe(ctx, collection.ID, recipeUUID); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.CollectionResponse{}, domain.ErrRecipeAlreadyInCollection
		}
		return domain.CollectionResponse{}, err
	}

	return toCollectionResponse(collection, householdID, false, 0), nil
}

func (s *collectionService) RemoveRecipe(ctx context.Context, id string, recipeID string, householdID string) error {
	collection, err := s.collectionRepository.GetCollectionByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCollectionNotFound
		}
		return err
	}

	if collection.HouseholdID.String() != householdID {
		return domain.ErrCollectionNotOwned
	}

	return s.collectionRepository.RemoveRecipe(ctx, id, recipeID)
}

func (s *collectionService) UploadCover(ctx context.Context, id string, req domain.UploadCollectionCoverRequest, householdID string) (domain.UploadFileResponse, error) {
	collection, err := s.collectionRepository.GetCollectionByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UploadFileResponse{}, domain.ErrCollectionNotFound
		}
		return domain.UploadFileResponse{}, err
	}

	if collection.HouseholdID.String() != householdID {
		return domain.UploadFileResponse{}, domain.ErrCollectionNotOwned
	}

	slug := strings.Trim(titlePattern.ReplaceAllString(strings.ToLower(collection.Title), "-"), "-")
	ext := strings.ToLower(filepath.Ext(req.Image.Filename))

	version := 1
	if collection.ImageFilename != "" {
		version = storage.VersionOf(collection.ImageFilename) + 1
	}
	fileName := fmt.Sprintf("%s.%d%s", slug, version, ext)

	objectKey, err := s.files.UploadFile(fileName, req.Image, "collection-covers", storage.AllowImage...)
	if err != nil {
		return domain.UploadFileResponse{}, err
	}

	collection.ImageFilename = fileName
	if err := s.collectionRepository.UpdateCollection(ctx, collection); err != nil {
		return domain.UploadFileResponse{}, err
	}

	return domain.UploadFileResponse{
		Filename: fileName,
		URL:      s.files.GetPublicLinkKey(objectKey),
	}, nil
}
