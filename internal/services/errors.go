// Package services defines the business logic of the purchase ledger.
// This file centralizes common service-level error values so that they can be
// consistently returned by service methods and checked by callers.
//
// These errors are intended for internal use by the service layer; translation
// into user-facing messages or HTTP status codes is performed at the
// handler layer.
package services

import "errors"

var (
	// ErrPurchaseNotFound indicates that the requested purchase record does
	// not exist. Handlers translate it into the silent redirect to the
	// creation form rather than an error page.
	ErrPurchaseNotFound = errors.New("purchase not found")
)
