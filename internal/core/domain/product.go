package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type ProductStatus string

const (
	ProductStatusActive     ProductStatus = "active"
	ProductStatusInactive   ProductStatus = "inactive"
	ProductStatusOutOfStock ProductStatus = "out_of_stock"
	ProductStatusDeleted    ProductStatus = "deleted"
)

func ParseProductStatus(s string) (ProductStatus, error) {
	switch ProductStatus(s) {
	case ProductStatusActive, ProductStatusInactive, ProductStatusOutOfStock, ProductStatusDeleted:
		return ProductStatus(s), nil
	}
	return "", ErrBadRequest
}

type Product struct {
	ID          uint64
	Name        string
	Description string
	ImgURL      string
	Price       decimal.Decimal
	TaxRate     decimal.Decimal
	CategoryID  *uint64
	Status      ProductStatus
	UpdatedAt   time.Time
}

// ProductUpdate carries the optional fields of a product update.
type ProductUpdate struct {
	Name        *string
	Description *string
	ImgURL      *string
	Price       *decimal.Decimal
	TaxRate     *decimal.Decimal
	CategoryID  *uint64
	Status      *ProductStatus
}
