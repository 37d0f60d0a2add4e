// Package repository implements the in-memory stores backing the API.
// This file defines sentinel errors reused across repositories so
// higher layers such as handlers can distinguish failure scenarios and
// map them onto HTTP responses.
package repository

import "errors"

// ErrNotFound is returned when a lookup by key or id misses. Handlers
// should translate this into an HTTP 404 response.
var ErrNotFound = errors.New("not found")

// ErrEmailExists is returned when registering an email address that is
// already taken. Handlers should translate this into an HTTP 409
// response.
var ErrEmailExists = errors.New("email already exists")

// ErrNameExists is returned when creating or renaming a business to a
// name another business already holds. Handlers should translate this
// into an HTTP 409 response.
var ErrNameExists = errors.New("business name already exists")

// ErrForbidden is returned when the caller attempts an operation on a
// resource they do not own. Handlers should translate this into an
// HTTP 403 response.
var ErrForbidden = errors.New("forbidden")
