package models

import (
	"encoding/json"
	"fmt"
	"strings"

	"wishlist-be/internal/entities"
	"wishlist-be/internal/errs"
)

// GiftUpdate is a tagged update variant built during input validation, so
// the authorization rules operate on a closed set of cases instead of
// inspecting payload key sets at runtime.
type GiftUpdate interface {
	giftUpdate()
}

// StatusUpdate is an update whose payload touches exactly the status field.
// Any authenticated caller may apply it to any gift ("I'll buy this").
type StatusUpdate struct {
	Status entities.GiftStatus
}

// FullUpdate is any other update shape: structural fields, or status mixed
// with structural fields. Only the gift's owner may apply it. The
// classification is purely structural: {"status","item"} is a full edit
// even if the item value is unchanged.
type FullUpdate struct {
	Item        *string
	Description *string
	PriceRange  *string
	Status      *entities.GiftStatus
}

func (StatusUpdate) giftUpdate() {}
func (FullUpdate) giftUpdate()   {}

// giftFields are the payload keys that participate in classification.
// Owner and id keys are not mutable and are ignored if present.
var giftFields = map[string]bool{
	"item":        true,
	"description": true,
	"priceRange":  true,
	"status":      true,
}

// ParseGiftUpdate classifies a raw PATCH body into a StatusUpdate or
// FullUpdate. Payloads with no recognized fields, malformed JSON, an
// unknown status value, or an empty item are rejected as invalid input.
func ParseGiftUpdate(data []byte) (GiftUpdate, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: malformed JSON body", errs.ErrInvalidInput)
	}

	var recognized []string
	for key := range raw {
		if giftFields[key] {
			recognized = append(recognized, key)
		}
	}
	if len(recognized) == 0 {
		return nil, fmt.Errorf("%w: no updatable fields in payload", errs.ErrInvalidInput)
	}

	if len(recognized) == 1 && recognized[0] == "status" {
		status, err := parseStatus(raw["status"])
		if err != nil {
			return nil, err
		}
		return StatusUpdate{Status: status}, nil
	}

	var body struct {
		Item        *string `json:"item"`
		Description *string `json:"description"`
		PriceRange  *string `json:"priceRange"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, fmt.Errorf("%w: malformed field value", errs.ErrInvalidInput)
	}
	upd := FullUpdate{
		Item:        body.Item,
		Description: body.Description,
		PriceRange:  body.PriceRange,
	}
	if upd.Item != nil && strings.TrimSpace(*upd.Item) == "" {
		return nil, fmt.Errorf("%w: item must be a non-empty string", errs.ErrInvalidInput)
	}
	if rawStatus, ok := raw["status"]; ok {
		status, err := parseStatus(rawStatus)
		if err != nil {
			return nil, err
		}
		upd.Status = &status
	}
	return upd, nil
}

func parseStatus(raw json.RawMessage) (entities.GiftStatus, error) {
	var status entities.GiftStatus
	if err := json.Unmarshal(raw, &status); err != nil {
		return "", fmt.Errorf("%w: status must be a string", errs.ErrInvalidInput)
	}
	if !status.Valid() {
		return "", fmt.Errorf("%w: status must be one of pending, will_buy, bought", errs.ErrInvalidInput)
	}
	return status, nil
}
