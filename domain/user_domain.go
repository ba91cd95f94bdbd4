package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegister    = "registration successful"
	MessageSuccessLogin       = "login successful"
	MessageSuccessGetMe       = "success get profile"
	MessageSuccessGetUsers    = "success get users"
	MessageSuccessCreateUser  = "user created successfully"
	MessageSuccessUpdateUser  = "user updated successfully"
	MessageSuccessDeleteUser  = "user deleted successfully"
	MessageFailedRegister     = "failed to register"
	MessageFailedLogin        = "failed to login"
	MessageFailedGetMe        = "failed to get profile"
	MessageFailedGetUsers     = "failed to get users"
	MessageFailedCreateUser   = "failed to create user"
	MessageFailedUpdateUser   = "failed to update user"
	MessageFailedDeleteUser   = "failed to delete user"
	MessageFailedGoogleSignIn = "failed to sign in with google"

	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrCredentialsInvalid = errors.New("invalid email or password")
	ErrGoogleTokenInvalid = errors.New("invalid google id token")
	ErrDeleteSelf         = errors.New("cannot delete your own account")
)

type (
	RegisterRequest struct {
		HouseholdName string `json:"household_name" validate:"required,min=2"`
		Name          string `json:"name" validate:"required,min=2"`
		Email         string `json:"email" validate:"required,email"`
		Password      string `json:"password" validate:"required,min=8"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	GoogleSignInRequest struct {
		IDToken string `json:"id_token" validate:"required"`
	}

	AuthResponse struct {
		Token string       `json:"token"`
		User  UserResponse `json:"user"`
	}

	UserResponse struct {
		ID            string    `json:"id"`
		HouseholdID   string    `json:"household_id"`
		HouseholdName string    `json:"household_name,omitempty"`
		Email         string    `json:"email"`
		Name          string    `json:"name"`
		Role          string    `json:"role"`
		CreatedAt     time.Time `json:"created_at"`
	}

	CreateUserRequest struct {
		HouseholdID string `json:"household_id" validate:"required,uuid"`
		Name        string `json:"name" validate:"required,min=2"`
		Email       string `json:"email" validate:"required,email"`
		Password    string `json:"password" validate:"required,min=8"`
		Role        string `json:"role" validate:"required,oneof=member admin"`
	}

	UpdateUserRequest struct {
		Name     string `json:"name" validate:"omitempty,min=2"`
		Email    string `json:"email" validate:"omitempty,email"`
		Password string `json:"password" validate:"omitempty,min=8"`
		Role     string `json:"role" validate:"omitempty,oneof=member admin"`
	}
)
