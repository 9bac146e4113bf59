package service

import "errors"

var (
	ErrAlreadyInCart    = errors.New("product already in cart")
	ErrEmptyCart        = errors.New("cart is empty")
	ErrSignInRequired   = errors.New("sign in required")
	ErrInvalidCategory  = errors.New("invalid product category")
	ErrNegativePrice    = errors.New("price must not be negative")
	ErrEmptyReview      = errors.New("review content is empty")
	ErrPermissionDenied = errors.New("permission denied")
)
