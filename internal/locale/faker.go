package locale

import (
	"strings"

	"bookfaker/internal/rng"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Faker produces locale-native text. Every method consumes draws from the
// stream it is given and nothing else, so output is a function of the stream.
type Faker interface {
	ProductName(s *rng.Stream) string
	PersonName(s *rng.Stream) string
	CompanyName(s *rng.Stream) string
	Numeric(s *rng.Stream, length int) string
	LoremWords(s *rng.Stream, min, max int) string
	LoremSentence(s *rng.Stream) string
}

// Strategy bundles the generators selected for one locale.
type Strategy struct {
	Locale  Locale
	Faker   Faker
	Reviews ReviewSource
}

// For returns the strategy for l. Unknown locales get the Default strategy.
func For(l Locale) Strategy {
	switch l {
	case Turkish:
		f := newTableFaker(turkishTables)
		return Strategy{Locale: Turkish, Faker: f, Reviews: poolSource(reviewsTR)}
	case Russian:
		f := newTableFaker(russianTables)
		return Strategy{Locale: Russian, Faker: f, Reviews: sentenceSource{faker: f}}
	case Chinese:
		f := newTableFaker(chineseTables)
		return Strategy{Locale: Chinese, Faker: f, Reviews: poolSource(reviewsZH)}
	default:
		f := newTableFaker(englishTables)
		return Strategy{Locale: English, Faker: f, Reviews: poolSource(reviewsEN)}
	}
}

const (
	placeholderLast   = "{last}"
	placeholderSuffix = "{suffix}"

	minSentenceWords = 3
	maxSentenceWords = 10
)

// tables is the word data behind a tableFaker.
type tables struct {
	tag language.Tag
	// sep joins generated words; empty for scripts written without spaces.
	sep         string
	sentenceEnd string

	adjectives []string
	materials  []string
	products   []string

	maleFirst   []string
	femaleFirst []string
	lastNames   []string
	// femaleLast, when set, replaces lastNames for female names.
	femaleLast []string
	// familyFirst writes the family name before the given name.
	familyFirst bool

	companyFormats  []string
	companySuffixes []string

	lorem []string
}

type tableFaker struct {
	t *tables
}

func newTableFaker(t *tables) tableFaker {
	return tableFaker{t: t}
}

func (f tableFaker) ProductName(s *rng.Stream) string {
	adjective := rng.Pick(s, f.t.adjectives)
	material := rng.Pick(s, f.t.materials)
	product := rng.Pick(s, f.t.products)
	return f.join(adjective, material, product)
}

func (f tableFaker) PersonName(s *rng.Stream) string {
	firstNames, lastNames := f.t.maleFirst, f.t.lastNames
	if s.Float() < 0.5 {
		firstNames = f.t.femaleFirst
		if len(f.t.femaleLast) > 0 {
			lastNames = f.t.femaleLast
		}
	}
	first := rng.Pick(s, firstNames)
	last := rng.Pick(s, lastNames)
	if f.t.familyFirst {
		return last + f.t.sep + first
	}
	return first + " " + last
}

func (f tableFaker) CompanyName(s *rng.Stream) string {
	name := rng.Pick(s, f.t.companyFormats)
	for strings.Contains(name, placeholderLast) {
		name = strings.Replace(name, placeholderLast, rng.Pick(s, f.t.lastNames), 1)
	}
	if strings.Contains(name, placeholderSuffix) {
		name = strings.Replace(name, placeholderSuffix, rng.Pick(s, f.t.companySuffixes), 1)
	}
	return name
}

// Numeric returns length decimal digits; leading zeros are allowed.
func (f tableFaker) Numeric(s *rng.Stream, length int) string {
	if length <= 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length; i++ {
		b.WriteByte(byte('0' + s.IntN(10)))
	}
	return b.String()
}

func (f tableFaker) LoremWords(s *rng.Stream, min, max int) string {
	return f.join(f.words(s, s.IntRange(min, max))...)
}

func (f tableFaker) LoremSentence(s *rng.Stream) string {
	words := f.words(s, s.IntRange(minSentenceWords, maxSentenceWords))
	if len(words) == 0 {
		return ""
	}
	words[0] = cases.Title(f.t.tag, cases.NoLower).String(words[0])
	return f.join(words...) + f.t.sentenceEnd
}

func (f tableFaker) words(s *rng.Stream, n int) []string {
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, rng.Pick(s, f.t.lorem))
	}
	return out
}

func (f tableFaker) join(parts ...string) string {
	return strings.Join(parts, f.t.sep)
}
