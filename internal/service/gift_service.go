package service

import (
	"context"
	"time"

	"wishlist-be/internal/authz"
	"wishlist-be/internal/cache"
	"wishlist-be/internal/entities"
	"wishlist-be/internal/models"
	"wishlist-be/internal/repository"
)

const (
	giftsCacheKey = "gifts:all"
	giftsCacheTTL = 1 * time.Minute
)

// GiftService defines the interface for gift business logic. Every method
// takes the resolved caller id explicitly; nothing reads ambient request
// state.
type GiftService interface {
	List() ([]*entities.Gift, error)
	Create(callerID int64, req *models.CreateGiftRequest) (*entities.Gift, error)
	Update(callerID, giftID int64, upd models.GiftUpdate) (*entities.Gift, error)
	Delete(callerID, giftID int64) error
}

type giftService struct {
	repo  repository.GiftRepository
	cache cache.Cache
	ctx   context.Context
}

// NewGiftService creates a new gift service. cacheClient may be nil.
func NewGiftService(repo repository.GiftRepository, cacheClient cache.Cache) GiftService {
	return &giftService{
		repo:  repo,
		cache: cacheClient,
		ctx:   context.Background(),
	}
}

// List returns every gift from every user, serving from cache when possible.
func (s *giftService) List() ([]*entities.Gift, error) {
	if s.cache != nil {
		var gifts []*entities.Gift
		if err := s.cache.GetJSON(s.ctx, giftsCacheKey, &gifts); err == nil {
			return gifts, nil
		}
	}

	gifts, err := s.repo.List()
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.SetJSON(s.ctx, giftsCacheKey, gifts, giftsCacheTTL)
	}

	return gifts, nil
}

// Create inserts a gift owned by the caller. The owner is always the
// caller; there is no way to create a gift for someone else.
func (s *giftService) Create(callerID int64, req *models.CreateGiftRequest) (*entities.Gift, error) {
	gift, err := s.repo.Create(callerID, req.Item, req.Description, req.PriceRange)
	if err != nil {
		return nil, err
	}

	s.invalidate()
	return gift, nil
}

// Update applies a tagged update after running the authorization rules.
// The existence read and the write are separate store operations; the full
// update re-checks ownership in its conditional statement, so a gift that
// disappears between the two comes back as not found.
func (s *giftService) Update(callerID, giftID int64, upd models.GiftUpdate) (*entities.Gift, error) {
	gift, err := s.repo.FindByID(giftID)
	if err != nil {
		return nil, err
	}

	if err := authz.CanUpdate(callerID, gift, upd); err != nil {
		return nil, err
	}

	var updated *entities.Gift
	switch u := upd.(type) {
	case models.StatusUpdate:
		updated, err = s.repo.UpdateStatus(giftID, u.Status)
	case models.FullUpdate:
		updated, err = s.repo.UpdateFields(giftID, callerID, u)
	}
	if err != nil {
		return nil, err
	}

	s.invalidate()
	return updated, nil
}

// Delete removes a gift through the store's ownership-filtered statement.
// Non-owners and missing gifts get the same not-found answer.
func (s *giftService) Delete(callerID, giftID int64) error {
	if err := s.repo.Delete(giftID, callerID); err != nil {
		return err
	}

	s.invalidate()
	return nil
}

func (s *giftService) invalidate() {
	if s.cache != nil {
		_ = s.cache.Delete(s.ctx, giftsCacheKey)
	}
}
