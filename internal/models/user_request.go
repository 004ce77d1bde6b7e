package models

// CreateUserRequest represents the request body for the legacy name-only
// user creation endpoint.
type CreateUserRequest struct {
	Name string `json:"name" binding:"required"`
}
