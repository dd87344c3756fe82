package book

import (
	"errors"

	"bookfaker/internal/locale"
)

// ErrNotFound is returned when a stored record is not found.
var ErrNotFound = errors.New("book not found")

// ErrNoRepository is returned by Export when the service has no snapshot store.
var ErrNoRepository = errors.New("book: no snapshot repository configured")

// Defaults applied to missing or unusable query parameters.
const (
	DefaultSeed       int64 = 42
	DefaultLikesAvg         = 3.7
	DefaultReviewsAvg       = 4.7
	DefaultOffset           = 0
	DefaultLimit            = 20
	MaxLimit                = 100
)

// Review is one generated reader review.
type Review struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

// Record is one synthesized catalog entry. It is rebuilt on every request
// and never mutated after construction.
type Record struct {
	UniqueID  string   `json:"uniqueId"`
	Index     int      `json:"index"`
	ISBN      string   `json:"isbn"`
	Title     string   `json:"title"`
	Authors   []string `json:"authors"`
	Publisher string   `json:"publisher"`
	Likes     int      `json:"likes"`
	Reviews   []Review `json:"reviews"`
}

// Params fixes everything a record depends on besides its index.
type Params struct {
	Seed       int64
	Locale     locale.Locale
	LikesAvg   float64 `validate:"gte=0,lte=10"`
	ReviewsAvg float64 `validate:"gte=0,lte=10"`
}

// Query defines a batch: Params plus a window of record indexes.
type Query struct {
	Params
	Offset int `validate:"gte=0,lte=1000000000"`
	Limit  int `validate:"gte=0,lte=100"`
}

// DefaultQuery returns the query used when no parameters are given.
func DefaultQuery() Query {
	return Query{
		Params: Params{
			Seed:       DefaultSeed,
			Locale:     locale.Default,
			LikesAvg:   DefaultLikesAvg,
			ReviewsAvg: DefaultReviewsAvg,
		},
		Offset: DefaultOffset,
		Limit:  DefaultLimit,
	}
}

// Snapshot is a generated batch together with the query that produced it.
type Snapshot struct {
	Query   Query
	Records []Record
}
