package handlers

import (
	"family-foodie/domain"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var notFoundErrors = []error{
	domain.ErrUserNotFound,
	domain.ErrRecipeNotFound,
	domain.ErrIngredientNotFound,
	domain.ErrCollectionNotFound,
	domain.ErrFeedbackNotFound,
	domain.ErrListItemNotFound,
}

var forbiddenErrors = []error{
	domain.ErrUserNotAllowed,
	domain.ErrAdminOnly,
	domain.ErrRecipeNotOwned,
	domain.ErrRecipeNotVisible,
	domain.ErrIngredientNotOwned,
	domain.ErrCollectionNotOwned,
	domain.ErrCollectionNotVisible,
	domain.ErrListItemNotOwned,
}

var badRequestErrors = []error{
	domain.ErrParseUUID,
	domain.ErrEmailAlreadyExists,
	domain.ErrCredentialsInvalid,
	domain.ErrGoogleTokenInvalid,
	domain.ErrDeleteSelf,
	domain.ErrIngredientInUse,
	domain.ErrCollectionNotPublic,
	domain.ErrSubscribeOwnCollection,
	domain.ErrRecipeAlreadyInCollection,
	domain.ErrInvalidWeek,
	domain.ErrInvalidYear,
	domain.ErrPlannedRecipeUnknown,
	domain.ErrNoPlannedRecipes,
}

// statusFor maps service errors onto HTTP status codes: 400 validation,
// 403 wrong household or role, 404 missing, 409 row-lock conflict, and 500
// for anything unexpected.
func statusFor(err error) int {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return fiber.StatusBadRequest
	}

	for _, known := range notFoundErrors {
		if errors.Is(err, known) {
			return fiber.StatusNotFound
		}
	}
	for _, known := range forbiddenErrors {
		if errors.Is(err, known) {
			return fiber.StatusForbidden
		}
	}
	if errors.Is(err, domain.ErrPdfUploadInProgress) || errors.Is(err, domain.ErrRowLockConflict) {
		return fiber.StatusConflict
	}
	for _, known := range badRequestErrors {
		if errors.Is(err, known) {
			return fiber.StatusBadRequest
		}
	}

	return fiber.StatusInternalServerError
}
