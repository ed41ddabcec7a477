package domain

import "errors"

var (
	// ErrNotFound indicates the requested product was not found.
	ErrNotFound = errors.New("not found")
	// ErrCartItemNotFound indicates the product is not in the cart.
	ErrCartItemNotFound = errors.New("item not in cart")
	// ErrInsufficientStock indicates the requested quantity exceeds the
	// currently available stock.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrInvalidQuantity indicates a non-positive quantity.
	ErrInvalidQuantity = errors.New("quantity must be positive")
	// ErrEmptyCart indicates checkout was attempted with no line items.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrInvalidInput indicates a user-supplied value failed validation.
	ErrInvalidInput = errors.New("invalid input")
)
