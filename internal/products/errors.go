package products

import "errors"

var (
	ErrNotFound     = errors.New("product not found")
	ErrEmptyName    = errors.New("product name is required")
	ErrDuplicateSKU = errors.New("product sku already exists")
)
