package models

// CreateGiftRequest represents the request body for creating a gift.
// The owner is always the authenticated caller; there is deliberately no
// owner field here, and any userId supplied in the raw body is ignored.
type CreateGiftRequest struct {
	Item        string  `json:"item" binding:"required"`
	Description *string `json:"description,omitempty"`
	PriceRange  *string `json:"priceRange,omitempty"`
}
