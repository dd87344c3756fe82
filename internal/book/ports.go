package book

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=book

import (
	"context"

	"bookfaker/internal/locale"
)

// Generator produces batches of records.
type Generator interface {
	Batch(q Query) []Record
}

// SnapshotRepository defines the contract for storing generated batches.
type SnapshotRepository interface {
	Save(ctx context.Context, snap Snapshot) error
	Count(ctx context.Context, seed int64, l locale.Locale) (int, error)
	GetByUniqueID(ctx context.Context, uniqueID string) (Record, error)
}

// Recorder observes generated batches.
type Recorder interface {
	RecordsGenerated(l locale.Locale, records, reviews int)
}
