package domain

import "errors"

var (
	ErrTokenInvalid     = errors.New("seller token invalid")
	ErrTokenExpired     = errors.New("seller token expired")
	ErrGroupNotFound    = errors.New("supplier group not found")
	ErrSupplierNotFound = errors.New("canonical supplier not found")
	ErrNotPending       = errors.New("mapping is not pending")
	ErrStaleMapping     = errors.New("mapping is no longer the latest for its group")
	ErrReasonRequired   = errors.New("reject reason code is required")

	ErrInvalidSupplierINN = errors.New("supplier INN must be 10 or 12 digits")
)
