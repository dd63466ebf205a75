package models

import "errors"

var (
	// ErrNotFound is returned when a referenced post, comment or parent is absent.
	ErrNotFound = errors.New("resource not found")

	// ErrForbidden is returned when an authenticated actor is neither the
	// owner of the resource nor an admin.
	ErrForbidden = errors.New("not authorized to modify this resource")
)
