package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCart_Total(t *testing.T) {
	cart := &Cart{Items: []*CartItem{
		{ProductID: uuid.New(), Quantity: 5, UnitPrice: dec("12.50")},
		{ProductID: uuid.New(), Quantity: 1, UnitPrice: dec("0.10")},
	}}

	assert.True(t, dec("62.60").Equal(cart.Total()))
	assert.True(t, (&Cart{}).Total().IsZero())
}

func TestCart_ShopIDs(t *testing.T) {
	shopA, shopB := uuid.New(), uuid.New()
	cart := &Cart{Items: []*CartItem{
		{ShopID: shopA},
		{ShopID: shopB},
		{ShopID: shopA},
	}}

	assert.Equal(t, []uuid.UUID{shopA, shopB}, cart.ShopIDs())
}

func TestCart_FindItem(t *testing.T) {
	productID := uuid.New()
	item := &CartItem{ProductID: productID}
	cart := &Cart{Items: []*CartItem{{ProductID: uuid.New()}, item}}

	assert.Same(t, item, cart.FindItem(productID))
	assert.Nil(t, cart.FindItem(uuid.New()))
}
