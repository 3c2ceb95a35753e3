// Package storage persists deployed portfolio pages under generated slugs.
package storage

import "errors"

// ErrNotFound is returned by Get when no portfolio exists under a slug.
// "No such portfolio" is an expected, user-facing outcome, not a fault.
var ErrNotFound = errors.New("portfolio not found")

// Store is the slug -> HTML deployment store. Deployed portfolios are
// immutable: written once under a fresh slug, retrieved by exact match,
// never updated or deleted.
type Store interface {
	Put(slug, html string) error
	Get(slug string) (string, error)
}
