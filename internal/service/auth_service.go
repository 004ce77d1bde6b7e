package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"wishlist-be/internal/allowlist"
	"wishlist-be/internal/entities"
	"wishlist-be/internal/errs"
	"wishlist-be/internal/jwt"
	"wishlist-be/internal/models"
	"wishlist-be/internal/oauth"
	"wishlist-be/internal/repository"
)

// AuthService defines the interface for authentication business logic.
// Both issuance paths (password credentials and Google federated login)
// end in the same place: a signed session token for a stored user.
type AuthService interface {
	Register(req *models.RegisterRequest) (*models.AuthResponse, error)
	Login(req *models.LoginRequest) (*models.AuthResponse, error)
	LoginWithGoogle(ctx context.Context, code string) (*models.AuthResponse, error)
}

// GoogleVerifier exchanges an authorization code for the Google account's
// identity. Satisfied by *oauth.GoogleProvider.
type GoogleVerifier interface {
	FetchUser(ctx context.Context, code string) (*oauth.UserInfo, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *jwt.JWTService
	allowed    *allowlist.List
	google     GoogleVerifier
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, jwtService *jwt.JWTService, allowed *allowlist.List, google GoogleVerifier) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		allowed:    allowed,
		google:     google,
	}
}

// Register creates a new password-credential account and logs it in.
func (s *authService) Register(req *models.RegisterRequest) (*models.AuthResponse, error) {
	if !s.allowed.Allowed(req.Email) {
		return nil, errs.ErrEmailNotAllowed
	}

	if existing, err := s.userRepo.FindByEmail(req.Email); err == nil && existing != nil {
		return nil, errs.ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	hash := string(hashed)
	user, err := s.userRepo.Create(req.Name, &req.Email, &hash)
	if err != nil {
		return nil, err
	}

	return s.respond(user)
}

// Login authenticates password credentials. Accounts provisioned through
// Google login have no stored hash and always fail this path.
func (s *authService) Login(req *models.LoginRequest) (*models.AuthResponse, error) {
	if !s.allowed.Allowed(req.Email) {
		return nil, errs.ErrEmailNotAllowed
	}

	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, errs.ErrInvalidCredentials
	}

	if user.PasswordHash == nil {
		return nil, errs.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errs.ErrInvalidCredentials
	}

	return s.respond(user)
}

// LoginWithGoogle exchanges the authorization code, then finds or
// auto-provisions the user by email. Provisioned accounts carry a null
// password hash.
func (s *authService) LoginWithGoogle(ctx context.Context, code string) (*models.AuthResponse, error) {
	info, err := s.google.FetchUser(ctx, code)
	if err != nil {
		return nil, err
	}

	if !s.allowed.Allowed(info.Email) {
		return nil, errs.ErrEmailNotAllowed
	}

	user, err := s.userRepo.FindByEmail(info.Email)
	if err != nil {
		name := info.Name
		if name == "" {
			name = "Google User"
		}
		user, err = s.userRepo.Create(name, &info.Email, nil)
		if err != nil {
			return nil, err
		}
	}

	return s.respond(user)
}

func (s *authService) respond(user *entities.User) (*models.AuthResponse, error) {
	email := ""
	if user.Email != nil {
		email = *user.Email
	}

	token, err := s.jwtService.GenerateToken(user.ID, email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{
		UserID:    user.ID,
		Name:      user.Name,
		Email:     email,
		CreatedAt: user.CreatedAt,
		Token:     token,
	}, nil
}
