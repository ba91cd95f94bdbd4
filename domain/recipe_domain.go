package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessCreateRecipe    = "recipe created successfully"
	MessageSuccessUpdateRecipe    = "recipe updated successfully"
	MessageSuccessDeleteRecipe    = "recipe deleted successfully"
	MessageSuccessUploadImage     = "recipe image uploaded successfully"
	MessageSuccessUploadPdf       = "recipe pdf uploaded successfully"
	MessageSuccessConvertPdf      = "recipe pdf generated successfully"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedCreateRecipe    = "failed to create recipe"
	MessageFailedUpdateRecipe    = "failed to update recipe"
	MessageFailedDeleteRecipe    = "failed to delete recipe"
	MessageFailedUploadImage     = "failed to upload recipe image"
	MessageFailedUploadPdf       = "failed to upload recipe pdf"
	MessageFailedConvertPdf      = "failed to generate recipe pdf"

	ErrRecipeNotFound      = errors.New("recipe not found")
	ErrRecipeNotVisible    = errors.New("recipe not visible to this household")
	ErrRecipeNotOwned      = errors.New("recipe not owned by this household")
	ErrPdfUploadInProgress = errors.New("another pdf upload is in progress for this recipe")
)

type (
	RecipeIngredientLine struct {
		IngredientID  string  `json:"ingredient_id" validate:"required,uuid"`
		Quantity4     float64 `json:"quantity4" validate:"gte=0"`
		Quantity2     float64 `json:"quantity2" validate:"gte=0"`
		MeasurementID string  `json:"measurement_id" validate:"omitempty,uuid"`
		PreparationID string  `json:"preparation_id" validate:"omitempty,uuid"`
		SortOrder     int     `json:"sort_order"`
	}

	CreateRecipeRequest struct {
		Name            string                 `json:"name" validate:"required,min=2"`
		Description     string                 `json:"description"`
		PrepTimeMinutes int                    `json:"prep_time_minutes" validate:"gte=0"`
		CookTimeMinutes int                    `json:"cook_time_minutes" validate:"gte=0"`
		Serves          int                    `json:"serves" validate:"gte=0"`
		Public          bool                   `json:"public"`
		SeasonID        string                 `json:"season_id" validate:"omitempty,uuid"`
		PrimaryTypeID   string                 `json:"primary_type_id" validate:"omitempty,uuid"`
		SecondaryTypeID string                 `json:"secondary_type_id" validate:"omitempty,uuid"`
		CollectionID    string                 `json:"collection_id" validate:"omitempty,uuid"`
		Ingredients     []RecipeIngredientLine `json:"ingredients" validate:"dive"`
	}

	UpdateRecipeRequest struct {
		Name            string                 `json:"name" validate:"omitempty,min=2"`
		Description     *string                `json:"description"`
		PrepTimeMinutes *int                   `json:"prep_time_minutes" validate:"omitempty,gte=0"`
		CookTimeMinutes *int                   `json:"cook_time_minutes" validate:"omitempty,gte=0"`
		Serves          *int                   `json:"serves" validate:"omitempty,gte=0"`
		Public          *bool                  `json:"public"`
		SeasonID        string                 `json:"season_id" validate:"omitempty,uuid"`
		PrimaryTypeID   string                 `json:"primary_type_id" validate:"omitempty,uuid"`
		SecondaryTypeID string                 `json:"secondary_type_id" validate:"omitempty,uuid"`
		Ingredients     []RecipeIngredientLine `json:"ingredients" validate:"omitempty,dive"`
	}

	RecipeFilter struct {
		SeasonID        string
		PrimaryTypeID   string
		SecondaryTypeID string
		Search          string
	}

	RecipeResponse struct {
		ID              string    `json:"id"`
		HouseholdID     string    `json:"household_id"`
		Name            string    `json:"name"`
		Description     string    `json:"description,omitempty"`
		PrepTimeMinutes int       `json:"prep_time_minutes"`
		CookTimeMinutes int       `json:"cook_time_minutes"`
		Serves          int       `json:"serves"`
		Public          bool      `json:"public"`
		SeasonID        string    `json:"season_id,omitempty"`
		PrimaryTypeID   string    `json:"primary_type_id,omitempty"`
		SecondaryTypeID string    `json:"secondary_type_id,omitempty"`
		ImageFilename   string    `json:"image_filename,omitempty"`
		PdfFilename     string    `json:"pdf_filename,omitempty"`
		Owned           bool      `json:"owned"`
		CreatedAt       time.Time `json:"created_at"`
	}

	RecipeDetailResponse struct {
		RecipeResponse
		Ingredients []RecipeIngredientResponse `json:"ingredients"`
	}

	RecipeIngredientResponse struct {
		IngredientID string  `json:"ingredient_id"`
		Name         string  `json:"name"`
		Quantity4    float64 `json:"quantity4"`
		Quantity2    float64 `json:"quantity2"`
		Measurement  string  `json:"measurement,omitempty"`
		Preparation  string  `json:"preparation,omitempty"`
		Fresh        bool    `json:"fresh"`
		SortOrder    int     `json:"sort_order"`
	}

	UploadRecipeImageRequest struct {
		Image *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	UploadRecipePdfRequest struct {
		Pdf *multipart.FileHeader `json:"pdf" form:"pdf" validate:"required"`
	}

	ConvertImageToPdfRequest struct {
		Image *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	UploadFileResponse struct {
		Filename string `json:"filename"`
		URL      string `json:"url"`
	}
)
