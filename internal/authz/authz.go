// Package authz holds the decision rules for gift mutations. The rules are
// pure functions over the caller, the gift, and the requested change, so
// they can be exercised without a store or an HTTP stack.
package authz

import (
	"wishlist-be/internal/entities"
	"wishlist-be/internal/errs"
	"wishlist-be/internal/models"
)

// CanUpdate decides whether callerID may apply upd to gift.
//
// A status-only update is permitted for any authenticated caller: this is
// how family members claim each other's gifts. Anything else is a full
// edit and requires the caller to own the gift.
func CanUpdate(callerID int64, gift *entities.Gift, upd models.GiftUpdate) error {
	if gift == nil {
		return errs.ErrNotFound
	}
	if _, ok := upd.(models.StatusUpdate); ok {
		return nil
	}
	if gift.UserID != callerID {
		return errs.ErrForbidden
	}
	return nil
}

// CanDelete decides whether callerID may delete gift. A non-owner gets the
// same answer as for a gift that does not exist, so delete responses never
// leak whether someone else's gift id is real. The store enforces the same
// rule in a single conditional statement; this function is the reference
// form of it.
func CanDelete(callerID int64, gift *entities.Gift) error {
	if gift == nil || gift.UserID != callerID {
		return errs.ErrNotFound
	}
	return nil
}
