package catalog

import (
	"context"
)

type Repository interface {
	// Get fetches a single item by its exact (title, year) key.
	Get(ctx context.Context, title, year string) (*Item, error)
	// QueryIndex runs a single-attribute equality lookup against the
	// secondary index matching the plan kind.
	QueryIndex(ctx context.Context, plan Plan) ([]Item, error)
	// ScanFilter runs a full scan with an AND-combined filter: substring
	// containment for title/artist/album, exact equality for year.
	ScanFilter(ctx context.Context, f Filter) ([]Item, error)
}
