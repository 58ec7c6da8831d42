package user

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"myfridge-backend/domain"
	"myfridge-backend/entities"
	"myfridge-backend/pkg/jwt"
	"myfridge-backend/pkg/storageplace"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error)
		GetMe(ctx context.Context, userID string) (domain.UserResponse, error)
		UpdatePushToken(ctx context.Context, userID string, token string) error
	}

	userService struct {
		userRepository UserRepository
		storageService storageplace.StorageService
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, storageService storageplace.StorageService, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		storageService: storageService,
		jwtService:     jwtService,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := s.userRepository.GetUserByEmail(ctx, email); err == nil {
		return domain.AuthResponse{}, domain.ErrEmailAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.AuthResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.AuthResponse{}, err
	}

	user := &entities.User{
		Email:    email,
		Password: string(hashed),
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.AuthResponse{}, err
	}

	// Default storage places are a convenience, not part of the account
	// contract. Registration succeeds even if seeding fails.
	_ = s.storageService.BootstrapDefaults(ctx, user.ID.String())

	return s.buildAuthResponse(user)
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepository.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.AuthResponse{}, domain.ErrInvalidCredentials
		}
		return domain.AuthResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.AuthResponse{}, domain.ErrInvalidCredentials
	}

	return s.buildAuthResponse(user)
}

func (s *userService) GetMe(ctx context.Context, userID string) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}

	return domain.UserResponse{
		ID:    user.ID.String(),
		Email: user.Email,
	}, nil
}

func (s *userService) UpdatePushToken(ctx context.Context, userID string, token string) error {
	if _, err := s.userRepository.GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	return s.userRepository.UpdatePushToken(ctx, userID, token)
}

func (s *userService) buildAuthResponse(user *entities.User) (domain.AuthResponse, error) {
	token := s.jwtService.GenerateTokenUser(user.ID.String(), domain.RoleUser)

	return domain.AuthResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		User: domain.UserResponse{
			ID:    user.ID.String(),
			Email: user.Email,
		},
	}, nil
}
