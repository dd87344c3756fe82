package book

import (
	"strconv"

	"bookfaker/internal/locale"
	"bookfaker/internal/rng"
)

const (
	// A second author is added when the draw exceeds this value.
	secondAuthorThreshold = 0.7
	isbnLength            = 13
	fallbackTitleMinWords = 2
	fallbackTitleMaxWords = 5
)

// UniqueID identifies a record by its inputs: "{seed}-{locale}-{index}".
func UniqueID(seed int64, l locale.Locale, index int) string {
	return strconv.FormatInt(seed, 10) + "-" + l.String() + "-" + strconv.Itoa(index)
}

// Synthesize builds the record at index for p. The result is identical for
// identical arguments.
func Synthesize(p Params, index int) Record {
	return synthesize(locale.For(p.Locale), p, index)
}

// Batch synthesizes q.Limit records starting at index q.Offset+1.
func Batch(q Query) []Record {
	st := locale.For(q.Locale)
	limit := max(q.Limit, 0)
	records := make([]Record, 0, limit)
	for i := 0; i < limit; i++ {
		records = append(records, synthesize(st, q.Params, q.Offset+i+1))
	}
	return records
}

// synthesize consumes draws in a fixed order; changing the order changes
// every generated catalog.
func synthesize(st locale.Strategy, p Params, index int) Record {
	f := st.Faker
	s := rng.ForRecord(p.Seed, index)

	title := f.ProductName(s)
	if title == "" {
		title = f.LoremWords(s, fallbackTitleMinWords, fallbackTitleMaxWords)
	}

	authors := []string{f.PersonName(s)}
	if s.Float() > secondAuthorThreshold {
		authors = append(authors, f.PersonName(s))
	}

	publisher := f.CompanyName(s)
	isbn := f.Numeric(s, isbnLength)
	likes := rng.Fractional(p.LikesAvg, s.Float())
	numReviews := rng.Fractional(p.ReviewsAvg, s.Float())

	reviews := make([]Review, 0, numReviews)
	for ri := 0; ri < numReviews; ri++ {
		rs := rng.ForSub(p.Seed, index, ri)
		text := st.Reviews.Review(rs)
		reviews = append(reviews, Review{Text: text, Author: f.PersonName(rs)})
	}

	return Record{
		UniqueID:  UniqueID(p.Seed, st.Locale, index),
		Index:     index,
		ISBN:      isbn,
		Title:     title,
		Authors:   authors,
		Publisher: publisher,
		Likes:     likes,
		Reviews:   reviews,
	}
}
