// Package store persists generated invoices behind a small storage
// interface, keeping the rendering core free of any filesystem dependency.
package store

import (
	"context"
	"errors"

	"github.com/rezonia/invoice-generator/internal/model"
)

// ErrNotFound is returned when no invoice exists for the given id.
var ErrNotFound = errors.New("invoice not found")

// Store is the injected persistence boundary. Implementations must be safe
// for concurrent use.
type Store interface {
	// Get returns the invoice with the given id, or ErrNotFound.
	Get(ctx context.Context, id string) (*model.Invoice, error)

	// List returns all stored invoices.
	List(ctx context.Context) ([]*model.Invoice, error)

	// Save inserts the invoice or replaces an existing one with the same id.
	Save(ctx context.Context, inv *model.Invoice) error

	// Delete removes the invoice with the given id, or returns ErrNotFound.
	Delete(ctx context.Context, id string) error
}
