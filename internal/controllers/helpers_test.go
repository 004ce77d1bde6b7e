package controllers

import (
	"os"
	"strconv"
	"testing"
	"time"

	"wishlist-be/internal/entities"
	"wishlist-be/internal/errs"
	"wishlist-be/internal/logger"
	"wishlist-be/internal/middleware"
	"wishlist-be/internal/models"

	"github.com/gin-gonic/gin"
)

func TestMain(m *testing.M) {
	logger.Init()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// testUserHeader carries the principal id in tests, standing in for the
// JWT middleware.
const testUserHeader = "X-Test-User"

func stubAuth(c *gin.Context) {
	if v := c.GetHeader(testUserHeader); v != "" {
		id, _ := strconv.ParseInt(v, 10, 64)
		c.Set(middleware.ContextUserID, id)
	}
	c.Next()
}

// fakeGiftRepo mirrors the store contract, including the conditional
// ownership-filtered update and delete.
type fakeGiftRepo struct {
	gifts  map[int64]*entities.Gift
	nextID int64
}

func newFakeGiftRepo() *fakeGiftRepo {
	return &fakeGiftRepo{gifts: make(map[int64]*entities.Gift), nextID: 9}
}

func (r *fakeGiftRepo) List() ([]*entities.Gift, error) {
	var gifts []*entities.Gift
	for _, g := range r.gifts {
		gifts = append(gifts, g)
	}
	return gifts, nil
}

func (r *fakeGiftRepo) FindByID(id int64) (*entities.Gift, error) {
	g, ok := r.gifts[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	copied := *g
	return &copied, nil
}

func (r *fakeGiftRepo) Create(ownerID int64, item string, description, priceRange *string) (*entities.Gift, error) {
	r.nextID++
	now := time.Now()
	g := &entities.Gift{
		ID:          r.nextID,
		UserID:      ownerID,
		Item:        item,
		Description: description,
		PriceRange:  priceRange,
		Status:      entities.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.gifts[g.ID] = g
	return g, nil
}

func (r *fakeGiftRepo) UpdateStatus(id int64, status entities.GiftStatus) (*entities.Gift, error) {
	g, ok := r.gifts[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	g.Status = status
	g.UpdatedAt = time.Now()
	copied := *g
	return &copied, nil
}

func (r *fakeGiftRepo) UpdateFields(id, ownerID int64, upd models.FullUpdate) (*entities.Gift, error) {
	g, ok := r.gifts[id]
	if !ok || g.UserID != ownerID {
		return nil, errs.ErrNotFound
	}
	if upd.Item != nil {
		g.Item = *upd.Item
	}
	if upd.Description != nil {
		g.Description = upd.Description
	}
	if upd.PriceRange != nil {
		g.PriceRange = upd.PriceRange
	}
	if upd.Status != nil {
		g.Status = *upd.Status
	}
	g.UpdatedAt = time.Now()
	copied := *g
	return &copied, nil
}

func (r *fakeGiftRepo) Delete(id, ownerID int64) error {
	g, ok := r.gifts[id]
	if !ok || g.UserID != ownerID {
		return errs.ErrNotFound
	}
	delete(r.gifts, id)
	return nil
}

// fakeUserRepo backs the legacy user endpoints in tests.
type fakeUserRepo struct {
	users  map[int64]*entities.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*entities.User)}
}

func (r *fakeUserRepo) Create(name string, email, passwordHash *string) (*entities.User, error) {
	r.nextID++
	u := &entities.User{
		ID:           r.nextID,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	r.users[u.ID] = u
	return u, nil
}

func (r *fakeUserRepo) List() ([]*entities.User, error) {
	var users []*entities.User
	for _, u := range r.users {
		users = append(users, u)
	}
	return users, nil
}

func (r *fakeUserRepo) FindByID(id int64) (*entities.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*entities.User, error) {
	for _, u := range r.users {
		if u.Email != nil && *u.Email == email {
			return u, nil
		}
	}
	return nil, errs.ErrNotFound
}
