package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"wishlist-be/internal/entities"
	"wishlist-be/internal/errs"

	"github.com/lib/pq"
)

// UserRepository defines the interface for user database operations
type UserRepository interface {
	Create(name string, email, passwordHash *string) (*entities.User, error)
	List() ([]*entities.User, error)
	FindByID(id int64) (*entities.User, error)
	FindByEmail(email string) (*entities.User, error)
}

type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

const userColumns = "id, name, email, password_hash, created_at"

// Create inserts a new user. Email and passwordHash are nullable: legacy
// rows have neither, Google-provisioned accounts have an email but no hash.
func (r *userRepository) Create(name string, email, passwordHash *string) (*entities.User, error) {
	query := `
		INSERT INTO users (name, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING ` + userColumns

	var user entities.User
	err := r.db.QueryRow(query, name, email, passwordHash).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" { // unique_violation
			return nil, errs.ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

// List returns all users ordered by creation time.
func (r *userRepository) List() ([]*entities.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []*entities.User
	for rows.Next() {
		var user entities.User
		if err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Email,
			&user.PasswordHash,
			&user.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, &user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}

	return users, nil
}

// FindByID finds a user by id.
func (r *userRepository) FindByID(id int64) (*entities.User, error) {
	return r.findOne(`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// FindByEmail finds a user by email.
func (r *userRepository) FindByEmail(email string) (*entities.User, error) {
	return r.findOne(`SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (r *userRepository) findOne(query string, arg interface{}) (*entities.User, error) {
	var user entities.User
	err := r.db.QueryRow(query, arg).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, errs.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return &user, nil
}
