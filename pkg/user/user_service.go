package user

import (
	"family-foodie/domain"
	"family-foodie/entities"
	"family-foodie/internal/utils"
	"family-foodie/pkg/jwt"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error)
		GoogleSignIn(ctx context.Context, req domain.GoogleSignInRequest) (domain.AuthResponse, error)
		Me(ctx context.Context, userID string) (domain.UserResponse, error)

		GetUsers(ctx context.Context, page, limit int) ([]domain.UserResponse, int64, error)
		CreateUser(ctx context.Context, req domain.CreateUserRequest) (domain.UserResponse, error)
		GetUser(ctx context.Context, id string) (domain.UserResponse, error)
		UpdateUser(ctx context.Context, id string, req domain.UpdateUserRequest) error
		DeleteUser(ctx context.Context, id string, callerID string) error
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

func toUserResponse(user *entities.User) domain.UserResponse {
	res := domain.UserResponse{
		ID:          user.ID.String(),
		HouseholdID: user.HouseholdID.String(),
		Email:       user.Email,
		Name:        user.Name,
		Role:        user.Role,
		CreatedAt:   user.CreatedAt,
	}
	if user.Household != nil {
		res.HouseholdName = user.Household.Name
	}
	return res
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResponse, error) {
	if _, err := s.userRepository.GetUserByEmail(ctx, req.Email); err == nil {
		return domain.AuthResponse{}, domain.ErrEmailAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.AuthResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.AuthResponse{}, err
	}

	household := &entities.Household{
		ID:   uuid.New(),
		Name: req.HouseholdName,
	}
	if err := s.userRepository.CreateHousehold(ctx, household); err != nil {
		return domain.AuthResponse{}, err
	}

	user := &entities.User{
		ID:          uuid.New(),
		HouseholdID: household.ID,
		Email:       req.Email,
		Name:        req.Name,
		Password:    string(hashed),
		Role:        domain.RoleMember,
	}
	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.AuthResponse{}, err
	}

	user.Household = household
	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.HouseholdID.String(), user.Role)
	return domain.AuthResponse{Token: token, User: toUserResponse(user)}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.AuthResponse{}, domain.ErrCredentialsInvalid
		}
		return domain.AuthResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.AuthResponse{}, domain.ErrCredentialsInvalid
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.HouseholdID.String(), user.Role)
	return domain.AuthResponse{Token: token, User: toUserResponse(user)}, nil
}

func (s *userService) GoogleSignIn(ctx context.Context, req domain.GoogleSignInRequest) (domain.AuthResponse, error) {
	payload, err := idtoken.Validate(ctx, req.IDToken, utils.GetConfig("GOOGLE_CLIENT_ID"))
	if err != nil {
		return domain.AuthResponse{}, domain.ErrGoogleTokenInvalid
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)

	user, err := s.userRepository.GetUserByGoogleSub(ctx, payload.Subject)
	if errors.Is(err, gorm.ErrRecordNotFound) && email != "" {
		// first google sign-in for an existing password account
		user, err = s.userRepository.GetUserByEmail(ctx, email)
		if err == nil {
			user.GoogleSub = payload.Subject
			if err := s.userRepository.UpdateUser(ctx, user); err != nil {
				return domain.AuthResponse{}, err
			}
		}
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		household := &entities.Household{
			ID:   uuid.New(),
			Name: fmt.Sprintf("%s's household", name),
		}
		if err := s.userRepository.CreateHousehold(ctx, household); err != nil {
			return domain.AuthResponse{}, err
		}

		user = &entities.User{
			ID:          uuid.New(),
			HouseholdID: household.ID,
			Email:       email,
			Name:        name,
			Role:        domain.RoleMember,
			GoogleSub:   payload.Subject,
		}
		if err := s.userRepository.CreateUser(ctx, user); err != nil {
			return domain.AuthResponse{}, err
		}
		user.Household = household
	} else if err != nil {
		return domain.AuthResponse{}, err
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.HouseholdID.String(), user.Role)
	return domain.AuthResponse{Token: token, User: toUserResponse(user)}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}
	return toUserResponse(user), nil
}

func (s *userService) GetUsers(ctx context.Context, page, limit int) ([]domain.UserResponse, int64, error) {
	users, count, err := s.userRepository.GetUsers(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}

	response := make([]domain.UserResponse, 0, len(users))
	for _, user := range users {
		response = append(response, toUserResponse(user))
	}
	return response, count, nil
}

func (s *userService) CreateUser(ctx context.Context, req domain.CreateUserRequest) (domain.UserResponse, error) {
	if _, err := s.userRepository.GetUserByEmail(ctx, req.Email); err == nil {
		return domain.UserResponse{}, domain.ErrEmailAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.UserResponse{}, err
	}

	householdID, err := uuid.Parse(req.HouseholdID)
	if err != nil {
		return domain.UserResponse{}, domain.ErrParseUUID
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.UserResponse{}, err
	}

	user := &entities.User{
		ID:          uuid.New(),
		HouseholdID: householdID,
		Email:       req.Email,
		Name:        req.Name,
		Password:    string(hashed),
		Role:        req.Role,
	}
	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.UserResponse{}, err
	}

	return toUserResponse(user), nil
}

func (s *userService) GetUser(ctx context.Context, id string) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}
	return toUserResponse(user), nil
}

func (s *userService) UpdateUser(ctx context.Context, id string, req domain.UpdateUserRequest) error {
	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.Role != "" {
		user.Role = req.Role
	}
	if req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user.Password = string(hashed)
	}

	return s.userRepository.UpdateUser(ctx, user)
}

func (s *userService) DeleteUser(ctx context.Context, id string, callerID string) error {
	if id == callerID {
		return domain.ErrDeleteSelf
	}

	if _, err := s.userRepository.GetUserByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	return s.userRepository.DeleteUser(ctx, id)
}
