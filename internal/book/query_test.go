package book

import (
	"net/url"
	"testing"

	"bookfaker/internal/locale"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  func(q *Query)
	}{
		{"defaults", "", func(q *Query) {}},
		{"all set", "seed=7&locale=tr&likesAvg=0.5&reviewsAvg=9&offset=40&limit=10", func(q *Query) {
			q.Seed = 7
			q.Locale = locale.Turkish
			q.LikesAvg = 0.5
			q.ReviewsAvg = 9
			q.Offset = 40
			q.Limit = 10
		}},
		{"negative seed", "seed=-3", func(q *Query) { q.Seed = -3 }},
		{"non numeric seed", "seed=abc", func(q *Query) {}},
		{"fractional seed", "seed=4.2", func(q *Query) {}},
		{"unknown locale", "locale=xx", func(q *Query) {}},
		{"locale tag", "locale=zh-CN", func(q *Query) { q.Locale = locale.Chinese }},
		{"malformed averages", "likesAvg=lots&reviewsAvg=NaN", func(q *Query) {}},
		{"infinite average", "likesAvg=Inf", func(q *Query) {}},
		{"out of range averages", "likesAvg=-1&reviewsAvg=11", func(q *Query) {}},
		{"zero averages", "likesAvg=0&reviewsAvg=0", func(q *Query) {
			q.LikesAvg = 0
			q.ReviewsAvg = 0
		}},
		{"negative offset", "offset=-5", func(q *Query) {}},
		{"limit too large", "limit=1000", func(q *Query) { q.Limit = MaxLimit }},
		{"limit just over max", "limit=150", func(q *Query) { q.Limit = MaxLimit }},
		{"negative limit", "limit=-1", func(q *Query) {}},
		{"malformed limit", "limit=ten", func(q *Query) {}},
		{"zero limit", "limit=0", func(q *Query) { q.Limit = 0 }},
		{"max limit", "limit=100", func(q *Query) { q.Limit = MaxLimit }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			want := DefaultQuery()
			tt.want(&want)
			assert.Equal(t, want, ParseQuery(v))
		})
	}
}

func TestParseQuery_Cursor(t *testing.T) {
	v := url.Values{}
	v.Set("cursor", firstPageCursor)
	v.Set("seed", "999")
	v.Set("limit", "5")

	q := ParseQuery(v)

	assert.Equal(t, DefaultSeed, q.Seed)
	assert.Equal(t, 20, q.Offset)
	assert.Equal(t, 5, q.Limit)
}

func TestParseQuery_BadCursorIgnored(t *testing.T) {
	v := url.Values{}
	v.Set("cursor", "!!!")
	v.Set("seed", "9")

	assert.Equal(t, int64(9), ParseQuery(v).Seed)
}

func TestParseQuery_CursorOutOfRange(t *testing.T) {
	v := url.Values{}
	v.Set("cursor", EncodeCursor(CursorData{Seed: 1, Locale: "ru", LikesAvg: 50, ReviewsAvg: 2, Offset: -10}))

	q := ParseQuery(v)

	assert.Equal(t, locale.Russian, q.Locale)
	assert.Equal(t, DefaultLikesAvg, q.LikesAvg)
	assert.Equal(t, 2.0, q.ReviewsAvg)
	assert.Equal(t, DefaultOffset, q.Offset)
}

func TestParseSeed(t *testing.T) {
	assert.Equal(t, int64(42), ParseSeed("42"))
	assert.Equal(t, int64(12345678), ParseSeed(" 12345678 "))
	assert.Equal(t, DefaultSeed, ParseSeed(""))
	assert.Equal(t, DefaultSeed, ParseSeed("forty-two"))
}

func TestParseQuery_UniqueIDUsesNormalizedInputs(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"seed=042&locale=FR", "42-en-1"},
		{"seed=+42&locale=EN", "42-en-1"},
		{"seed=%2042%20&locale=TR", "42-tr-1"},
		{"seed=4.2&locale=ru-RU", "42-ru-1"},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			v, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			q := ParseQuery(v)

			assert.Equal(t, tt.want, Synthesize(q.Params, 1).UniqueID)
		})
	}
}
