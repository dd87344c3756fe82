package book

import (
	"context"
	"fmt"
	"slices"
)

// Service provides record generation and optional snapshot export.
type Service struct {
	repo     SnapshotRepository
	recorder Recorder
}

// NewService creates a new book service. repo and recorder may be nil.
func NewService(repo SnapshotRepository, recorder Recorder) *Service {
	return &Service{repo: repo, recorder: recorder}
}

// Batch returns the records described by q.
func (s *Service) Batch(q Query) []Record {
	records := Batch(q)
	if s.recorder != nil {
		reviews := 0
		for _, r := range records {
			reviews += len(r.Reviews)
		}
		s.recorder.RecordsGenerated(q.Locale, len(records), reviews)
	}
	return records
}

// Export generates the batch for q and stores it. It returns the number of
// records written.
func (s *Service) Export(ctx context.Context, q Query) (int, error) {
	if s.repo == nil {
		return 0, ErrNoRepository
	}
	records := s.Batch(q)
	if err := s.repo.Save(ctx, Snapshot{Query: q, Records: records}); err != nil {
		return 0, fmt.Errorf("save snapshot: %w", err)
	}
	return len(records), nil
}

// Verify reads back the stored record at index and reports whether it
// matches a fresh synthesis.
func (s *Service) Verify(ctx context.Context, p Params, index int) (bool, error) {
	if s.repo == nil {
		return false, ErrNoRepository
	}
	want := Synthesize(p, index)
	got, err := s.repo.GetByUniqueID(ctx, want.UniqueID)
	if err != nil {
		return false, fmt.Errorf("load %s: %w", want.UniqueID, err)
	}
	return equalRecords(got, want), nil
}

func equalRecords(a, b Record) bool {
	return a.UniqueID == b.UniqueID && a.Index == b.Index && a.ISBN == b.ISBN && a.Title == b.Title &&
		a.Publisher == b.Publisher && a.Likes == b.Likes &&
		slices.Equal(a.Authors, b.Authors) && slices.Equal(a.Reviews, b.Reviews)
}
