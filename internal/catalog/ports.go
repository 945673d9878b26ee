package catalog

import (
	"context"

	"bookcatalog/internal/entity"
)

// Repository defines the contract for book record storage. Implementations
// must generate a globally unique id on Create, preserve insertion order in
// List, and keep every mutation atomic with respect to concurrent calls.
type Repository interface {
	// Create persists a new record and returns it with its generated id.
	Create(ctx context.Context, b entity.Book) (entity.Book, error)
	// List returns at most p.Limit records starting at offset p.Skip,
	// after filtering by p.Search. Out-of-contract bounds never fail:
	// a negative skip is treated as 0, an out-of-range skip yields an
	// empty page, and a non-positive limit yields an empty page.
	List(ctx context.Context, p ListParams) ([]entity.Book, error)
	// Get returns the record with the given id or ErrNotFound.
	Get(ctx context.Context, id string) (entity.Book, error)
	// UpdateAuthor replaces only the author field of the matching record
	// and returns the updated record, or ErrNotFound.
	UpdateAuthor(ctx context.Context, id, author string) (entity.Book, error)
	// Delete removes the matching record. A missing id is not an error.
	Delete(ctx context.Context, id string) error
}
