package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessGetCollections      = "success get collections"
	MessageSuccessGetCollectionDetail = "success get collection detail"
	MessageSuccessCreateCollection    = "collection created successfully"
	MessageSuccessUpdateCollection    = "collection updated successfully"
	MessageSuccessDeleteCollection    = "collection deleted successfully"
	MessageSuccessSubscribe           = "subscribed to collection"
	MessageSuccessUnsubscribe         = "unsubscribed from collection"
	MessageSuccessAddRecipe           = "recipe added to collection"
	MessageSuccessRemoveRecipe        = "recipe removed from collection"
	MessageSuccessUploadCover         = "collection cover uploaded successfully"

	MessageFailedGetCollections      = "failed to get collections"
	MessageFailedGetCollectionDetail = "failed to get collection detail"
	MessageFailedCreateCollection    = "failed to create collection"
	MessageFailedUpdateCollection    = "failed to update collection"
	MessageFailedDeleteCollection    = "failed to delete collection"
	MessageFailedSubscribe           = "failed to subscribe to collection"
	MessageFailedUnsubscribe         = "failed to unsubscribe from collection"
	MessageFailedAddRecipe           = "failed to add recipe to collection"
	MessageFailedRemoveRecipe        = "failed to remove recipe from collection"
	MessageFailedUploadCover         = "failed to upload collection cover"

	ErrCollectionNotFound      = errors.New("collection not found")
	ErrCollectionNotVisible    = errors.New("collection not visible to this household")
	ErrCollectionNotOwned      = errors.New("collection not owned by this household")
	ErrCollectionNotPublic     = errors.New("collection is not public")
	ErrSubscribeOwnCollection  = errors.New("cannot subscribe to your own collection")
	ErrRecipeAlreadyInCollection = errors.New("recipe already in collection")
)

type (
	CreateCollectionRequest struct {
		Title  string `json:"title" validate:"required,min=2"`
		Public bool   `json:"public"`
	}

	UpdateCollectionRequest struct {
		Title  string `json:"title" validate:"omitempty,min=2"`
		Public *bool  `json:"public"`
	}

	AddCollectionRecipeRequest struct {
		RecipeID string `json:"recipe_id" validate:"required,uuid"`
	}

	UploadCollectionCoverRequest struct {
		Image *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	CollectionResponse struct {
		ID            string    `json:"id"`
		HouseholdID   string    `json:"household_id"`
		Title         string    `json:"title"`
		Public        bool      `json:"public"`
		ImageFilename string    `json:"image_filename,omitempty"`
		Owned         bool      `json:"owned"`
		Subscribed    bool      `json:"subscribed"`
		RecipeCount   int64     `json:"recipe_count"`
		CreatedAt     time.Time `json:"created_at"`
	}

	CollectionDetailResponse struct {
		CollectionResponse
		Recipes []RecipeResponse `json:"recipes"`
	}
)
