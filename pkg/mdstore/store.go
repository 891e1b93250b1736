// Package mdstore persists collected granule metadata to a catalog
// database.
package mdstore

import (
	"context"

	"github.com/pytroll/fdrtool/pkg/granule"
)

// Store is a metadata catalog.
type Store interface {
	// Save upserts the given records; re-collecting the same granules
	// replaces their rows.
	Save(ctx context.Context, records []granule.Metadata) error

	// List returns all records, ordered by (platform, start_time,
	// end_time).
	List(ctx context.Context) ([]granule.Metadata, error)

	Close() error
}
