package cover

import (
	"fmt"

	"github.com/dgraph-io/ristretto/v2"
)

const defaultCacheEntries = 10000

// Service renders covers through a content-addressed cache. Entries never
// go stale because a spec always renders to the same bytes.
type Service struct {
	cache    *ristretto.Cache[string, []byte]
	recorder Recorder
}

// NewService creates a cover service caching up to maxEntries renders.
// recorder may be nil.
func NewService(maxEntries int64, recorder Recorder) (*Service, error) {
	if maxEntries <= 0 {
		maxEntries = defaultCacheEntries
	}
	cache, err := ristretto.NewCache(&ristretto.Config[string, []byte]{
		NumCounters: maxEntries * 10,
		MaxCost:     maxEntries,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("create cover cache: %w", err)
	}
	return &Service{cache: cache, recorder: recorder}, nil
}

// Render returns the SVG document for spec.
func (s *Service) Render(spec Spec) []byte {
	key := spec.Key()
	if svg, ok := s.cache.Get(key); ok {
		if s.recorder != nil {
			s.recorder.CoverCacheHit()
		}
		return svg
	}
	if s.recorder != nil {
		s.recorder.CoverCacheMiss()
	}
	svg := []byte(Render(spec.Title, spec.Author, spec.Width, spec.Height))
	s.cache.Set(key, svg, 1)
	return svg
}

// Close releases the cache.
func (s *Service) Close() {
	s.cache.Close()
}
