package book

import (
	"encoding/base64"

	"bookfaker/internal/locale"

	"github.com/goccy/go-json"
)

// CursorData represents the data encoded in a cursor
type CursorData struct {
	Seed       int64   `json:"seed"`
	Locale     string  `json:"locale"`
	LikesAvg   float64 `json:"likesAvg"`
	ReviewsAvg float64 `json:"reviewsAvg"`
	Offset     int     `json:"offset"`
}

// NextCursor returns the cursor for the page following q, or "" when q
// requests no records.
func NextCursor(q Query) string {
	if q.Limit <= 0 {
		return ""
	}
	return EncodeCursor(CursorData{
		Seed:       q.Seed,
		Locale:     q.Locale.String(),
		LikesAvg:   q.LikesAvg,
		ReviewsAvg: q.ReviewsAvg,
		Offset:     q.Offset + q.Limit,
	})
}

// EncodeCursor encodes cursor data to a base64 string
func EncodeCursor(data CursorData) string {
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(jsonBytes)
}

// DecodeCursor decodes a base64 cursor string to CursorData
func DecodeCursor(cursor string) (CursorData, error) {
	if cursor == "" {
		return CursorData{}, nil
	}

	decoded, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return CursorData{}, err
	}

	var data CursorData
	if err := json.Unmarshal(decoded, &data); err != nil {
		return CursorData{}, err
	}
	return data, nil
}

// apply replaces everything in q except Limit with the cursor position.
func (c CursorData) apply(q Query) Query {
	q.Seed = c.Seed
	q.Locale = locale.Parse(c.Locale)
	q.LikesAvg = c.LikesAvg
	q.ReviewsAvg = c.ReviewsAvg
	q.Offset = c.Offset
	return q
}
