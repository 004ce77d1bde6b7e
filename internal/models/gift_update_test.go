package models

import (
	"testing"

	"wishlist-be/internal/entities"
	"wishlist-be/internal/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusOnlyPayloadIsStatusUpdate(t *testing.T) {
	upd, err := ParseGiftUpdate([]byte(`{"status":"will_buy"}`))
	require.NoError(t, err)

	status, ok := upd.(StatusUpdate)
	require.True(t, ok)
	assert.Equal(t, entities.StatusWillBuy, status.Status)
}

func TestStatusMixedWithFieldsIsFullUpdate(t *testing.T) {
	// The classification is structural: including item makes this a full
	// edit even if the value is unchanged.
	upd, err := ParseGiftUpdate([]byte(`{"status":"bought","item":"Socks"}`))
	require.NoError(t, err)

	full, ok := upd.(FullUpdate)
	require.True(t, ok)
	require.NotNil(t, full.Item)
	assert.Equal(t, "Socks", *full.Item)
	require.NotNil(t, full.Status)
	assert.Equal(t, entities.StatusBought, *full.Status)
}

func TestStructuralFieldsAreFullUpdate(t *testing.T) {
	upd, err := ParseGiftUpdate([]byte(`{"item":"Warm Socks","description":"wool","priceRange":"$10-$20"}`))
	require.NoError(t, err)

	full, ok := upd.(FullUpdate)
	require.True(t, ok)
	assert.Equal(t, "Warm Socks", *full.Item)
	assert.Equal(t, "wool", *full.Description)
	assert.Equal(t, "$10-$20", *full.PriceRange)
	assert.Nil(t, full.Status)
}

func TestOwnerKeysDoNotAffectClassification(t *testing.T) {
	// userId is not a mutable field; a payload of {userId, status} is
	// still a status-only update.
	upd, err := ParseGiftUpdate([]byte(`{"userId":99,"status":"bought"}`))
	require.NoError(t, err)

	_, ok := upd.(StatusUpdate)
	assert.True(t, ok)
}

func TestUnknownStatusValueIsInvalid(t *testing.T) {
	_, err := ParseGiftUpdate([]byte(`{"status":"maybe"}`))
	assert.ErrorIs(t, err, errs.ErrInvalidInput)

	_, err = ParseGiftUpdate([]byte(`{"status":42}`))
	assert.ErrorIs(t, err, errs.ErrInvalidInput)

	_, err = ParseGiftUpdate([]byte(`{"item":"Socks","status":"maybe"}`))
	assert.ErrorIs(t, err, errs.ErrInvalidInput)
}

func TestEmptyItemIsInvalid(t *testing.T) {
	_, err := ParseGiftUpdate([]byte(`{"item":"  "}`))
	assert.ErrorIs(t, err, errs.ErrInvalidInput)
}

func TestPayloadWithoutFieldsIsInvalid(t *testing.T) {
	_, err := ParseGiftUpdate([]byte(`{}`))
	assert.ErrorIs(t, err, errs.ErrInvalidInput)

	_, err = ParseGiftUpdate([]byte(`{"userId":1}`))
	assert.ErrorIs(t, err, errs.ErrInvalidInput)
}

func TestMalformedJSONIsInvalid(t *testing.T) {
	_, err := ParseGiftUpdate([]byte(`{`))
	assert.ErrorIs(t, err, errs.ErrInvalidInput)
}
