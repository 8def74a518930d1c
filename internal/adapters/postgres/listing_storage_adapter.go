package postgres

import (
	"context"
	"fmt"

	"github.com/aravasio/open-remax/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ListingStorageAdapter persists listings to PostgreSQL. The unique
// constraint on internal_id is the single source of truth for "already
// known"; SaveNew relies on it via insert-or-ignore.
type ListingStorageAdapter struct {
	pool  *pgxpool.Pool
	ready bool
}

func NewListingStorageAdapter(pool *pgxpool.Pool) (*ListingStorageAdapter, error) {
	if pool == nil {
		return nil, fmt.Errorf("ListingStorageAdapter: pool is required")
	}
	return &ListingStorageAdapter{pool: pool}, nil
}

// EnsureSchema creates the listing table if it does not exist yet.
func (a *ListingStorageAdapter) EnsureSchema(ctx context.Context) error {
	_, err := a.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS listing (
			id                               TEXT NOT NULL,
			internal_id                      TEXT NOT NULL,
			title                            TEXT NOT NULL DEFAULT '',
			slug                             TEXT NOT NULL,
			description                      TEXT NOT NULL DEFAULT '',
			display_address                  TEXT NOT NULL DEFAULT '',
			location_altitude                DOUBLE PRECISION NOT NULL DEFAULT 0,
			location_latitude                DOUBLE PRECISION NOT NULL DEFAULT 0,
			geohash                          VARCHAR(12) NOT NULL DEFAULT '',
			total_rooms                      INTEGER NOT NULL DEFAULT 0,
			bedrooms                         INTEGER NOT NULL DEFAULT 0,
			bathrooms                        INTEGER NOT NULL DEFAULT 0,
			toilets                          INTEGER NOT NULL DEFAULT 0,
			floors                           INTEGER NOT NULL DEFAULT 0,
			pozo                             BOOLEAN NOT NULL DEFAULT FALSE,
			parking_spaces                   INTEGER NOT NULL DEFAULT 0,
			apt_professional_use             BOOLEAN NOT NULL DEFAULT FALSE,
			apt_commercial_use               BOOLEAN NOT NULL DEFAULT FALSE,
			in_private_community             BOOLEAN NOT NULL DEFAULT FALSE,
			reduced_mobility_compliant       BOOLEAN NOT NULL DEFAULT FALSE,
			offers_financing                 BOOLEAN NOT NULL DEFAULT FALSE,
			apt_credit                       BOOLEAN NOT NULL DEFAULT FALSE,
			price                            DOUBLE PRECISION,
			currency                         TEXT NOT NULL DEFAULT '',
			expenses_price                   DOUBLE PRECISION,
			expenses_currency                TEXT,
			price_exposure                   BOOLEAN NOT NULL DEFAULT FALSE,
			fee_quote                        DOUBLE PRECISION NOT NULL DEFAULT 0,
			total_lot_size                   DOUBLE PRECISION NOT NULL DEFAULT 0,
			total_area_built                 DOUBLE PRECISION NOT NULL DEFAULT 0,
			total_squared_meters_covered     DOUBLE PRECISION NOT NULL DEFAULT 0,
			total_squared_meters_semicovered DOUBLE PRECISION NOT NULL DEFAULT 0,
			total_squared_meters_uncovered   DOUBLE PRECISION NOT NULL DEFAULT 0,
			year_built                       INTEGER,
			quotes                           INTEGER NOT NULL DEFAULT 0,
			video                            TEXT NOT NULL DEFAULT '',
			conditions                       TEXT NOT NULL DEFAULT '',
			type                             TEXT NOT NULL DEFAULT '',
			operation                        TEXT NOT NULL DEFAULT '',
			listing_status                   TEXT NOT NULL DEFAULT '',
			photos                           TEXT NOT NULL DEFAULT '',
			features                         TEXT NOT NULL DEFAULT '',
			opportunity                      TEXT NOT NULL DEFAULT '',
			PRIMARY KEY (internal_id)
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to ensure listing table: %w", err)
	}

	a.ready = true
	return nil
}

// ContainsData reports whether the listing table holds at least one row.
func (a *ListingStorageAdapter) ContainsData(ctx context.Context) (bool, error) {
	if !a.ready {
		return false, domain.ErrStorageNotInitialized
	}

	var hasData bool
	err := a.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM listing)`).Scan(&hasData)
	if err != nil {
		return false, fmt.Errorf("failed to check listing table state: %w", err)
	}
	return hasData, nil
}

// Exists reports whether a row with the listing's dedup key is stored.
func (a *ListingStorageAdapter) Exists(ctx context.Context, listing domain.ListingDetail) (bool, error) {
	if !a.ready {
		return false, domain.ErrStorageNotInitialized
	}

	var exists bool
	err := a.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM listing WHERE internal_id = $1)`,
		listing.DedupKey(),
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check listing existence: %w", err)
	}
	return exists, nil
}

const insertListingSQL = `
	INSERT INTO listing (
		id, internal_id, title, slug, description, display_address,
		location_altitude, location_latitude, geohash,
		total_rooms, bedrooms, bathrooms, toilets, floors, pozo, parking_spaces,
		apt_professional_use, apt_commercial_use, in_private_community,
		reduced_mobility_compliant, offers_financing, apt_credit,
		price, currency, expenses_price, expenses_currency, price_exposure, fee_quote,
		total_lot_size, total_area_built, total_squared_meters_covered,
		total_squared_meters_semicovered, total_squared_meters_uncovered,
		year_built, quotes, video,
		conditions, type, operation, listing_status, photos, features, opportunity
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
		$17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30,
		$31, $32, $33, $34, $35, $36, $37, $38, $39, $40, $41, $42, $43
	)
	ON CONFLICT (internal_id) DO NOTHING`

// SaveNew inserts every listing not stored yet, in one transaction with
// an insert-or-ignore conflict policy on the dedup key. Repeated or
// concurrent runs are idempotent without a per-row existence check.
// Returns the number of rows actually inserted.
func (a *ListingStorageAdapter) SaveNew(ctx context.Context, listings []domain.ListingDetail) (int, error) {
	if !a.ready {
		return 0, domain.ErrStorageNotInitialized
	}
	if len(listings) == 0 {
		return 0, nil
	}

	tx, err := a.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	for _, listing := range listings {
		batch.Queue(insertListingSQL, listingRow(listing)...)
	}

	results := tx.SendBatch(ctx, batch)
	inserted := 0
	for range listings {
		tag, execErr := results.Exec()
		if execErr != nil {
			results.Close()
			return 0, fmt.Errorf("failed to insert listing batch: %w", execErr)
		}
		inserted += int(tag.RowsAffected())
	}
	if err := results.Close(); err != nil {
		return 0, fmt.Errorf("failed to close listing batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit listing batch: %w", err)
	}
	return inserted, nil
}

// Clear removes all rows from the listing table.
func (a *ListingStorageAdapter) Clear(ctx context.Context) error {
	if !a.ready {
		return domain.ErrStorageNotInitialized
	}

	if _, err := a.pool.Exec(ctx, `DELETE FROM listing`); err != nil {
		return fmt.Errorf("failed to clear listing table: %w", err)
	}
	return nil
}
