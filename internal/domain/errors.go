package domain

import "errors"

var (
	// ErrUnauthenticated means an operation requiring an identity was
	// called without one. Operations fail closed.
	ErrUnauthenticated = errors.New("no authenticated identity")

	// ErrNotFound means a referenced book, line item or order is absent.
	ErrNotFound = errors.New("not found")

	// ErrEmptyCart means checkout was attempted with zero line items.
	ErrEmptyCart = errors.New("cart is empty, nothing to checkout")

	// ErrTransactionFailed means the store could not commit an atomic
	// operation. No automatic retry is performed, re-invoking is the
	// caller's call.
	ErrTransactionFailed = errors.New("transaction failed")
)
