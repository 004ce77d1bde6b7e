package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"wishlist-be/internal/entities"
	"wishlist-be/internal/errs"
	"wishlist-be/internal/models"
)

// GiftRepository defines the interface for gift database operations.
// UpdateFields and Delete are ownership-filtered: the owner check and the
// mutation run in one conditional statement, so there is no window between
// reading the owner and writing the row.
type GiftRepository interface {
	List() ([]*entities.Gift, error)
	FindByID(id int64) (*entities.Gift, error)
	Create(ownerID int64, item string, description, priceRange *string) (*entities.Gift, error)
	UpdateStatus(id int64, status entities.GiftStatus) (*entities.Gift, error)
	UpdateFields(id, ownerID int64, upd models.FullUpdate) (*entities.Gift, error)
	Delete(id, ownerID int64) error
}

type giftRepository struct {
	db *sql.DB
}

// NewGiftRepository creates a new gift repository
func NewGiftRepository(db *sql.DB) GiftRepository {
	return &giftRepository{db: db}
}

const giftColumns = "id, user_id, item, description, price_range, status, created_at, updated_at"

func scanGift(row *sql.Row) (*entities.Gift, error) {
	var gift entities.Gift
	err := row.Scan(
		&gift.ID,
		&gift.UserID,
		&gift.Item,
		&gift.Description,
		&gift.PriceRange,
		&gift.Status,
		&gift.CreatedAt,
		&gift.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &gift, nil
}

// List returns every gift from every user. The wishlist is shared: there
// is no per-user scoping on reads.
func (r *giftRepository) List() ([]*entities.Gift, error) {
	query := `SELECT ` + giftColumns + ` FROM gifts ORDER BY created_at ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list gifts: %w", err)
	}
	defer rows.Close()

	var gifts []*entities.Gift
	for rows.Next() {
		var gift entities.Gift
		if err := rows.Scan(
			&gift.ID,
			&gift.UserID,
			&gift.Item,
			&gift.Description,
			&gift.PriceRange,
			&gift.Status,
			&gift.CreatedAt,
			&gift.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan gift: %w", err)
		}
		gifts = append(gifts, &gift)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating gifts: %w", err)
	}

	return gifts, nil
}

// FindByID finds a gift by id.
func (r *giftRepository) FindByID(id int64) (*entities.Gift, error) {
	gift, err := scanGift(r.db.QueryRow(`SELECT `+giftColumns+` FROM gifts WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, errs.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find gift: %w", err)
	}
	return gift, nil
}

// Create inserts a new gift owned by ownerID with status defaulting to pending.
func (r *giftRepository) Create(ownerID int64, item string, description, priceRange *string) (*entities.Gift, error) {
	query := `
		INSERT INTO gifts (user_id, item, description, price_range)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + giftColumns

	gift, err := scanGift(r.db.QueryRow(query, ownerID, item, description, priceRange))
	if err != nil {
		return nil, fmt.Errorf("failed to create gift: %w", err)
	}
	return gift, nil
}

// UpdateStatus sets only the status column. Any authenticated caller may
// trigger this, so there is no owner condition.
func (r *giftRepository) UpdateStatus(id int64, status entities.GiftStatus) (*entities.Gift, error) {
	query := `
		UPDATE gifts
		SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING ` + giftColumns

	gift, err := scanGift(r.db.QueryRow(query, status, id))
	if err == sql.ErrNoRows {
		return nil, errs.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update gift status: %w", err)
	}
	return gift, nil
}

// UpdateFields applies a partial field merge, conditional on ownership in
// the same statement.
func (r *giftRepository) UpdateFields(id, ownerID int64, upd models.FullUpdate) (*entities.Gift, error) {
	set := []string{}
	args := []interface{}{}

	add := func(column string, value interface{}) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.Item != nil {
		add("item", *upd.Item)
	}
	if upd.Description != nil {
		add("description", *upd.Description)
	}
	if upd.PriceRange != nil {
		add("price_range", *upd.PriceRange)
	}
	if upd.Status != nil {
		add("status", *upd.Status)
	}
	set = append(set, "updated_at = NOW()")

	args = append(args, id, ownerID)
	query := fmt.Sprintf(
		`UPDATE gifts SET %s WHERE id = $%d AND user_id = $%d RETURNING %s`,
		strings.Join(set, ", "), len(args)-1, len(args), giftColumns,
	)

	gift, err := scanGift(r.db.QueryRow(query, args...))
	if err == sql.ErrNoRows {
		return nil, errs.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update gift: %w", err)
	}
	return gift, nil
}

// Delete removes a gift, conditional on ownership. A missing row and a row
// owned by someone else both come back as ErrNotFound.
func (r *giftRepository) Delete(id, ownerID int64) error {
	result, err := r.db.Exec(`DELETE FROM gifts WHERE id = $1 AND user_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete gift: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return errs.ErrNotFound
	}

	return nil
}
