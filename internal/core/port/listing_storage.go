package port

import (
	"context"

	"github.com/aravasio/open-remax/internal/core/domain"
)

// ListingStoragePort is the transactional persistence layer for listings.
type ListingStoragePort interface {
	// EnsureSchema creates the listing table and its unique index when
	// they do not exist yet.
	EnsureSchema(ctx context.Context) error

	// ContainsData reports whether the listing table holds at least one row.
	ContainsData(ctx context.Context) (bool, error)

	// Exists reports whether a row matching the listing's dedup key is
	// already stored. Reporting convenience; the unique constraint is
	// what actually guarantees no duplicates.
	Exists(ctx context.Context, listing domain.ListingDetail) (bool, error)

	// SaveNew inserts, in a single transaction with an insert-or-ignore
	// conflict policy, every listing whose dedup key is not stored yet.
	// Returns the number of newly inserted rows.
	SaveNew(ctx context.Context, listings []domain.ListingDetail) (int, error)

	// Clear removes all rows. Maintenance operation.
	Clear(ctx context.Context) error
}
