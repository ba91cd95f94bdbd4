package recipe

import (
	"family-foodie/domain"
	"family-foodie/entities"
	"family-foodie/internal/utils/storage"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jung-kurt/gofpdf"
	"gorm.io/gorm"
)

const pgLockNotAvailable = "55P03"

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

type (
	RecipeService interface {
		GetRecipes(ctx context.Context, householdID string, filter domain.RecipeFilter, page, limit int) ([]domain.RecipeResponse, int64, error)
		GetRecipeDetail(ctx context.Context, id string, householdID string) (domain.RecipeDetailResponse, error)
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, householdID string) (domain.RecipeResponse, error)
		UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest, householdID string) (domain.RecipeResponse, error)
		DeleteRecipe(ctx context.Context, id string, householdID string) error
		UploadRecipeImage(ctx context.Context, id string, req domain.UploadRecipeImageRequest, householdID string) (domain.UploadFileResponse, error)
		UploadRecipePdf(ctx context.Context, id string, req domain.UploadRecipePdfRequest, householdID string) (domain.UploadFileResponse, error)
		ConvertImageToPdf(ctx context.Context, id string, req domain.ConvertImageToPdfRequest, householdID string) (domain.UploadFileResponse, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		files            storage.FileStorage
	}
)

func NewRecipeService(recipeRepository RecipeRepository, files storage.FileStorage) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		files:            files,
	}
}

func slugify(name string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}

// nextFilename produces the next versioned filename for a recipe file:
// no current file yields name.1.ext, name.3.ext yields name.4.ext. Old
// versions stay in storage untouched.
func nextFilename(slug, current, ext string) string {
	version := 1
	if current != "" {
		version = storage.VersionOf(current) + 1
	}
	return fmt.Sprintf("%s.%d%s", slug, version, ext)
}

func isLockNotAvailable(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgLockNotAvailable
}

func toRecipeResponse(recipe *entities.Recipe, householdID string) domain.RecipeResponse {
	res := domain.RecipeResponse{
		ID:              recipe.ID.String(),
		HouseholdID:     recipe.HouseholdID.String(),
		Name:            recipe.Name,
		Description:     recipe.Description,
		PrepTimeMinutes: recipe.PrepTimeMinutes,
		CookTimeMinutes: recipe.CookTimeMinutes,
		Serves:          recipe.Serves,
		Public:          recipe.Public,
		ImageFilename:   recipe.ImageFilename,
		PdfFilename:     recipe.PdfFilename,
		Owned:           recipe.HouseholdID.String() == householdID,
		CreatedAt:       recipe.CreatedAt,
	}
	if recipe.SeasonID != nil {
		res.SeasonID = recipe.SeasonID.String()
	}
	if recipe.PrimaryTypeID != nil {
		res.PrimaryTypeID = recipe.PrimaryTypeID.String()
	}
	if recipe.SecondaryTypeID != nil {
		res.SecondaryTypeID = recipe.SecondaryTypeID.String()
	}
	return res
}

func linesFromRequest(lines []domain.RecipeIngredientLine) ([]*entities.RecipeIngredient, error) {
	result := make([]*entities.RecipeIngredient, 0, len(lines))
	for _, line := range lines {
		ingredientID, err := uuid.Parse(line.IngredientID)
		if err != nil {
			return nil, domain.ErrParseUUID
		}

		entity := &entities.RecipeIngredient{
			ID:           uuid.New(),
			IngredientID: ingredientID,
			Quantity4:    line.Quantity4,
			Quantity2:    line.Quantity2,
			SortOrder:    line.SortOrder,
		}
		if line.MeasurementID != "" {
			measurementID, err := uuid.Parse(line.MeasurementID)
			if err != nil {
				return nil, domain.ErrParseUUID
			}
			entity.MeasurementID = &measurementID
		}
		if line.PreparationID != "" {
			preparationID, err := uuid.Parse(line.PreparationID)
			if err != nil {
				return nil, domain.ErrParseUUID
			}
			entity.PreparationID = &preparationID
		}
		result = append(result, entity)
	}
	return result, nil
}

func (s *recipeService) GetRecipes(ctx context.Context, householdID string, filter domain.RecipeFilter, page, limit int) ([]domain.RecipeResponse, int64, error) {
	recipes, count, err := s.recipeRepository.GetVisibleRecipes(ctx, householdID, filter, page, limit)
	if err != nil {
		return nil, 0, err
	}

	response := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		response = append(response, toRecipeResponse(recipe, householdID))
	}
	return response, count, nil
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, id string, householdID string) (domain.RecipeDetailResponse, error) {
	visible, err := s.recipeRepository.IsRecipeVisible(ctx, id, householdID)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}
	if !visible {
		return domain.RecipeDetailResponse{}, domain.ErrRecipeNotVisible
	}

	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeDetailResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeDetailResponse{}, err
	}

	detail := domain.RecipeDetailResponse{
		RecipeResponse: toRecipeResponse(recipe, householdID),
		Ingredients:    make([]domain.RecipeIngredientResponse, 0, len(recipe.Ingredients)),
	}
	for _, line := range recipe.Ingredients {
		item := domain.RecipeIngredientResponse{
			IngredientID: line.IngredientID.String(),
			Quantity4:    line.Quantity4,
			Quantity2:    line.Quantity2,
			SortOrder:    line.SortOrder,
		}
		if line.Ingredient != nil {
			item.Name = line.Ingredient.Name
			item.Fresh = line.Ingredient.Fresh
		}
		if line.Measurement != nil {
			item.Measurement = line.Measurement.Name
		}
		if line.Preparation != nil {
			item.Preparation = line.Preparation.Name
		}
		detail.Ingredients = append(detail.Ingredients, item)
	}
	return detail, nil
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, householdID string) (domain.RecipeResponse, error) {
	householdUUID, err := uuid.Parse(householdID)
	if err != nil {
		return domain.RecipeResponse{}, domain.ErrParseUUID
	}

	recipe := &entities.Recipe{
		ID:              uuid.New(),
		HouseholdID:     householdUUID,
		Name:            req.Name,
		Description:     req.Description,
		PrepTimeMinutes: req.PrepTimeMinutes,
		CookTimeMinutes: req.CookTimeMinutes,
		Serves:          req.Serves,
		Public:          req.Public,
	}
	if err := applyOptionalIDs(recipe, req.SeasonID, req.PrimaryTypeID, req.SecondaryTypeID); err != nil {
		return domain.RecipeResponse{}, err
	}

	lines, err := linesFromRequest(req.Ingredients)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	var collectionUUID uuid.UUID
	if req.CollectionID != "" {
		collectionUUID, err = uuid.Parse(req.CollectionID)
		if err != nil {
			return domain.RecipeResponse{}, domain.ErrParseUUID
		}
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe, lines); err != nil {
		return domain.RecipeResponse{}, err
	}

	if req.CollectionID != "" {
		if err := s.recipeRepository.AddRecipeToOwnedCollection(ctx, collectionUUID, recipe.ID, householdUUID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.RecipeResponse{}, domain.ErrCollectionNotOwned
			}
			return domain.RecipeResponse{}, err
		}
	}

	return toRecipeResponse(recipe, householdID), nil
}

func applyOptionalIDs(recipe *entities.Recipe, seasonID, primaryTypeID, secondaryTypeID string) error {
	if seasonID != "" {
		id, err := uuid.Parse(seasonID)
		if err != nil {
			return domain.ErrParseUUID
		}
		recipe.SeasonID = &id
	}
	if primaryTypeID != "" {
		id, err := uuid.Parse(primaryTypeID)
		if err != nil {
			return domain.ErrParseUUID
		}
		recipe.PrimaryTypeID = &id
	}
	if secondaryTypeID != "" {
		id, err := uuid.Parse(secondaryTypeID)
		if err != nil {
			return domain.ErrParseUUID
		}
		recipe.SecondaryTypeID = &id
	}
	return nil
}

// UpdateRecipe edits an owned recipe in place. Editing a recipe the
// household can see but does not own clones it first (copy-on-write) and
// applies the edit to the clone, leaving the original untouched.
func (s *recipeService) UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest, householdID string) (domain.RecipeResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, err
	}

	if recipe.HouseholdID.String() != householdID {
		visible, err := s.recipeRepository.IsRecipeVisible(ctx, id, householdID)
		if err != nil {
			return domain.RecipeResponse{}, err
		}
		if !visible {
			return domain.RecipeResponse{}, domain.ErrRecipeNotVisible
		}

		householdUUID, err := uuid.Parse(householdID)
		if err != nil {
			return domain.RecipeResponse{}, domain.ErrParseUUID
		}
		recipe, err = s.recipeRepository.CloneRecipe(ctx, recipe, householdUUID)
		if err != nil {
			return domain.RecipeResponse{}, err
		}
	}

	if req.Name != "" {
		recipe.Name = req.Name
	}
	if req.Description != nil {
		recipe.Description = *req.Description
	}
	if req.PrepTimeMinutes != nil {
		recipe.PrepTimeMinutes = *req.PrepTimeMinutes
	}
	if req.CookTimeMinutes != nil {
		recipe.CookTimeMinutes = *req.CookTimeMinutes
	}
	if req.Serves != nil {
		recipe.Serves = *req.Serves
	}
	if req.Public != nil {
		recipe.Public = *req.Public
	}
	if err := applyOptionalIDs(recipe, req.SeasonID, req.PrimaryTypeID, req.SecondaryTypeID); err != nil {
		return domain.RecipeResponse{}, err
	}

	if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		return domain.RecipeResponse{}, err
	}

	if req.Ingredients != nil {
		lines, err := linesFromRequest(req.Ingredients)
		if err != nil {
			return domain.RecipeResponse{}, err
		}
		if err := s.recipeRepository.ReplaceIngredients(ctx, recipe.ID, lines); err != nil {
			return domain.RecipeResponse{}, err
		}
	}

	return toRecipeResponse(recipe, householdID), nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id string, householdID string) error {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	if recipe.HouseholdID.String() != householdID {
		return domain.ErrRecipeNotOwned
	}

	return s.recipeRepository.DeleteRecipe(ctx, id)
}

func (s *recipeService) UploadRecipeImage(ctx context.Context, id string, req domain.UploadRecipeImageRequest, householdID string) (domain.UploadFileResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UploadFileResponse{}, domain.ErrRecipeNotFound
		}
		return domain.UploadFileResponse{}, err
	}

	if recipe.HouseholdID.String() != householdID {
		return domain.UploadFileResponse{}, domain.ErrRecipeNotOwned
	}

	ext := strings.ToLower(filepath.Ext(req.Image.Filename))
	fileName := nextFilename(slugify(recipe.Name), recipe.ImageFilename, ext)

	objectKey, err := s.files.UploadFile(fileName, req.Image, "recipe-images", storage.AllowImage...)
	if err != nil {
		return domain.UploadFileResponse{}, err
	}

	recipe.ImageFilename = fileName
	if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		return domain.UploadFileResponse{}, err
	}

	return domain.UploadFileResponse{
		Filename: fileName,
		URL:      s.files.GetPublicLinkKey(objectKey),
	}, nil
}

func (s *recipeService) UploadRecipePdf(ctx context.Context, id string, req domain.UploadRecipePdfRequest, householdID string) (domain.UploadFileResponse, error) {
	var response domain.UploadFileResponse

	err := s.recipeRepository.AttachFileLocked(ctx, id, func(recipe *entities.Recipe) error {
		if recipe.HouseholdID.String() != householdID {
			return domain.ErrRecipeNotOwned
		}

		fileName := nextFilename(slugify(recipe.Name), recipe.PdfFilename, ".pdf")
		objectKey, err := s.files.UploadFile(fileName, req.Pdf, "recipe-pdfs", storage.AllowPdf...)
		if err != nil {
			return err
		}

		recipe.PdfFilename = fileName
		response = domain.UploadFileResponse{
			Filename: fileName,
			URL:      s.files.GetPublicLinkKey(objectKey),
		}
		return nil
	})
	if err != nil {
		if isLockNotAvailable(err) {
			return domain.UploadFileResponse{}, domain.ErrPdfUploadInProgress
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UploadFileResponse{}, domain.ErrRecipeNotFound
		}
		return domain.UploadFileResponse{}, err
	}

	return response, nil
}

func (s *recipeService) ConvertImageToPdf(ctx context.Context, id string, req domain.ConvertImageToPdfRequest, householdID string) (domain.UploadFileResponse, error) {
	ext := strings.ToLower(filepath.Ext(req.Image.Filename))
	imageType, ok := map[string]string{".jpg": "JPG", ".jpeg": "JPG", ".png": "PNG"}[ext]
	if !ok {
		return domain.UploadFileResponse{}, storage.ErrExtensionNotAllowed
	}

	data, err := readMultipart(req.Image)
	if err != nil {
		return domain.UploadFileResponse{}, err
	}

	pdfBytes, err := buildPdfFromImage(req.Image.Filename, data, imageType)
	if err != nil {
		return domain.UploadFileResponse{}, err
	}

	var response domain.UploadFileResponse
	err = s.recipeRepository.AttachFileLocked(ctx, id, func(recipe *entities.Recipe) error {
		if recipe.HouseholdID.String() != householdID {
			return domain.ErrRecipeNotOwned
		}

		fileName := nextFilename(slugify(recipe.Name), recipe.PdfFilename, ".pdf")
		objectKey, err := s.files.UploadBytes(fileName, pdfBytes, "recipe-pdfs", "application/pdf")
		if err != nil {
			return err
		}

		recipe.PdfFilename = fileName
		response = domain.UploadFileResponse{
			Filename: fileName,
			URL:      s.files.GetPublicLinkKey(objectKey),
		}
		return nil
	})
	if err != nil {
		if isLockNotAvailable(err) {
			return domain.UploadFileResponse{}, domain.ErrPdfUploadInProgress
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UploadFileResponse{}, domain.ErrRecipeNotFound
		}
		return domain.UploadFileResponse{}, err
	}

	return response, nil
}

func readMultipart(header *multipart.FileHeader) ([]byte, error) {
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}

func buildPdfFromImage(name string, data []byte, imageType string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	opts := gofpdf.ImageOptions{ImageType: imageType, ReadDpi: true}
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))

	pageWidth, _ := pdf.GetPageSize()
	left, top, right, _ := pdf.GetMargins()
	pdf.ImageOptions(name, left, top, pageWidth-left-right, 0, false, opts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
