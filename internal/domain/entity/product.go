package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is an item a shop sells.
type Product struct {
	ID          uuid.UUID
	ShopID      uuid.UUID
	Name        string
	Description string
	Price       decimal.Decimal
	ImageURL    string
	IsAvailable bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProductInfo is the subset of a product read on hot paths such as adding to
// a cart. It is the unit stored in the product cache.
type ProductInfo struct {
	ID          uuid.UUID       `json:"id"`
	ShopID      uuid.UUID       `json:"shopId"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	IsAvailable bool            `json:"isAvailable"`
}

// Info returns the cacheable basic info of the product.
func (p *Product) Info() *ProductInfo {
	return &ProductInfo{
		ID:          p.ID,
		ShopID:      p.ShopID,
		Name:        p.Name,
		Price:       p.Price,
		IsAvailable: p.IsAvailable,
	}
}
