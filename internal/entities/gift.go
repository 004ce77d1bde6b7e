package entities

import "time"

// GiftStatus is the claim state of a gift on the shared wishlist.
type GiftStatus string

const (
	StatusPending GiftStatus = "pending"
	StatusWillBuy GiftStatus = "will_buy"
	StatusBought  GiftStatus = "bought"
)

// Valid reports whether s is one of the three known statuses.
func (s GiftStatus) Valid() bool {
	switch s {
	case StatusPending, StatusWillBuy, StatusBought:
		return true
	}
	return false
}

// Gift represents a gift entry in the database. UserID is the owner:
// the only principal with full edit and delete rights over the row.
type Gift struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"userId"`
	Item        string     `json:"item"`
	Description *string    `json:"description,omitempty"` // optional, may embed URLs
	PriceRange  *string    `json:"priceRange,omitempty"`
	Status      GiftStatus `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
