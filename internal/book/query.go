package book

import (
	"errors"
	"math"
	"net/url"
	"strconv"
	"strings"

	"bookfaker/internal/locale"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ParseQuery reads a batch query from URL parameters. It never fails:
// missing, malformed, and out of range values fall back to their defaults,
// except a limit above MaxLimit, which is clamped to MaxLimit.
// A valid cursor parameter replaces every field except limit.
func ParseQuery(v url.Values) Query {
	q := DefaultQuery()
	q.Seed = ParseSeed(v.Get("seed"))
	q.Locale = locale.Parse(v.Get("locale"))
	q.LikesAvg = floatOr(v.Get("likesAvg"), DefaultLikesAvg)
	q.ReviewsAvg = floatOr(v.Get("reviewsAvg"), DefaultReviewsAvg)
	q.Offset = intOr(v.Get("offset"), DefaultOffset)
	q.Limit = intOr(v.Get("limit"), DefaultLimit)

	if raw := v.Get("cursor"); raw != "" {
		if c, err := DecodeCursor(raw); err == nil {
			q = c.apply(q)
		}
	}
	return sanitize(q)
}

// ParseSeed parses a decimal seed, returning DefaultSeed when s is not an
// integer.
func ParseSeed(s string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return DefaultSeed
	}
	return n
}

func floatOr(s string, def float64) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return def
	}
	return f
}

func intOr(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return n
}

func sanitize(q Query) Query {
	var verrs validator.ValidationErrors
	if !errors.As(validate.Struct(q), &verrs) {
		return q
	}
	for _, fe := range verrs {
		switch fe.StructField() {
		case "LikesAvg":
			q.LikesAvg = DefaultLikesAvg
		case "ReviewsAvg":
			q.ReviewsAvg = DefaultReviewsAvg
		case "Offset":
			q.Offset = DefaultOffset
		case "Limit":
			if q.Limit > MaxLimit {
				q.Limit = MaxLimit
			} else {
				q.Limit = DefaultLimit
			}
		}
	}
	return q
}

// Validate reports the first field of q that is out of range.
func (q Query) Validate() error {
	return validate.Struct(q)
}
