package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"wishlist-be/internal/cache"
	"wishlist-be/internal/entities"
	"wishlist-be/internal/errs"
	"wishlist-be/internal/repository"
)

const (
	usersCacheKey = "users:all"
	usersCacheTTL = 5 * time.Minute
)

// UserService defines the interface for user business logic. Create covers
// the legacy name-only endpoint; registered accounts go through AuthService.
type UserService interface {
	List() ([]*entities.User, error)
	Create(name string) (*entities.User, error)
}

type userService struct {
	repo  repository.UserRepository
	cache cache.Cache
	ctx   context.Context
}

// NewUserService creates a new user service. cacheClient may be nil.
func NewUserService(repo repository.UserRepository, cacheClient cache.Cache) UserService {
	return &userService{
		repo:  repo,
		cache: cacheClient,
		ctx:   context.Background(),
	}
}

// List returns all users, serving from cache when possible.
func (s *userService) List() ([]*entities.User, error) {
	if s.cache != nil {
		var users []*entities.User
		if err := s.cache.GetJSON(s.ctx, usersCacheKey, &users); err == nil {
			return users, nil
		}
	}

	users, err := s.repo.List()
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.SetJSON(s.ctx, usersCacheKey, users, usersCacheTTL)
	}

	return users, nil
}

// Create adds a legacy name-only user row (no email, no password).
func (s *userService) Create(name string) (*entities.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name must be a non-empty string", errs.ErrInvalidInput)
	}

	user, err := s.repo.Create(name, nil, nil)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.Delete(s.ctx, usersCacheKey)
	}

	return user, nil
}
