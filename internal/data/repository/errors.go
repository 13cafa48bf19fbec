// Package repository talks to PostgreSQL through pgx. Every method is a
// single bounded statement, so each write either fully applies or fully
// fails; there is no cross-call change tracking.
package repository

import "errors"

// ErrNotFound is returned when the requested row does not exist. Handlers
// translate it into an HTTP 404 response.
var ErrNotFound = errors.New("not found")
