package locale

import (
	"strings"
	"testing"
	"unicode/utf8"

	"bookfaker/internal/rng"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Locale
	}{
		{"en", English},
		{"tr", Turkish},
		{"ru", Russian},
		{"zh", Chinese},
		{" TR ", Turkish},
		{"en-US", English},
		{"zh-CN", Chinese},
		{"ru-RU", Russian},
		{"fr", Default},
		{"", Default},
		{"not a locale", Default},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.in))
		})
	}
}

func TestFor_UnknownLocaleUsesDefault(t *testing.T) {
	st := For(Locale("xx"))
	assert.Equal(t, Default, st.Locale)
	assert.Equal(t, ReviewPool(English), ReviewPool(Locale("xx")))
}

func TestReviewPool(t *testing.T) {
	for _, l := range []Locale{English, Turkish, Chinese} {
		assert.Len(t, ReviewPool(l), 10, "locale %s", l)
	}
	assert.Nil(t, ReviewPool(Russian))
}

func TestReviewPool_ReturnsCopy(t *testing.T) {
	p := ReviewPool(English)
	p[0] = "mutated"
	assert.NotEqual(t, "mutated", ReviewPool(English)[0])
}

func TestReviews_PoolBackedStayInPool(t *testing.T) {
	for _, l := range []Locale{English, Turkish, Chinese} {
		t.Run(l.String(), func(t *testing.T) {
			st := For(l)
			pool := ReviewPool(l)
			for sub := 0; sub < 500; sub++ {
				text := st.Reviews.Review(rng.ForSub(42, 3, sub))
				require.Contains(t, pool, text)
			}
		})
	}
}

func TestReviews_RussianGeneratesSentences(t *testing.T) {
	st := For(Russian)
	text := st.Reviews.Review(rng.New(5))
	require.NotEmpty(t, text)
	assert.True(t, strings.HasSuffix(text, "."))
	first, _ := utf8.DecodeRuneInString(text)
	assert.True(t, strings.ContainsRune("АБВГДЕЁЖЗИЙКЛМНОПРСТУФХЦЧШЩЪЫЬЭЮЯ", first), "got %q", text)
}

func TestPoolIndex(t *testing.T) {
	assert.Equal(t, 0, PoolIndex(0, 10))
	assert.Equal(t, 9, PoolIndex(0.9999999, 10))
	assert.Equal(t, 4, PoolIndex(0.45, 10))
	assert.Equal(t, 9, PoolIndex(1, 10))
}

func TestFaker_Deterministic(t *testing.T) {
	for _, l := range All {
		t.Run(l.String(), func(t *testing.T) {
			f := For(l).Faker
			a, b := rng.New(77), rng.New(77)
			assert.Equal(t, f.ProductName(a), f.ProductName(b))
			assert.Equal(t, f.PersonName(a), f.PersonName(b))
			assert.Equal(t, f.CompanyName(a), f.CompanyName(b))
			assert.Equal(t, f.Numeric(a, 13), f.Numeric(b, 13))
			assert.Equal(t, f.LoremWords(a, 2, 5), f.LoremWords(b, 2, 5))
			assert.Equal(t, f.LoremSentence(a), f.LoremSentence(b))
		})
	}
}

func TestFaker_Numeric(t *testing.T) {
	f := For(English).Faker
	s := rng.New(3)
	for i := 0; i < 200; i++ {
		n := f.Numeric(s, 13)
		require.Len(t, n, 13)
		require.Equal(t, "", strings.Trim(n, "0123456789"))
	}
	assert.Equal(t, "", f.Numeric(s, 0))
}

func TestFaker_LoremWordsCount(t *testing.T) {
	f := For(English).Faker
	s := rng.New(11)
	for i := 0; i < 200; i++ {
		words := strings.Fields(f.LoremWords(s, 2, 5))
		require.GreaterOrEqual(t, len(words), 2)
		require.LessOrEqual(t, len(words), 5)
	}
}

func TestFaker_CompanyNameHasNoPlaceholders(t *testing.T) {
	for _, l := range All {
		f := For(l).Faker
		s := rng.New(19)
		for i := 0; i < 100; i++ {
			name := f.CompanyName(s)
			require.NotContains(t, name, "{")
			require.NotEmpty(t, name)
		}
	}
}

func TestFaker_ChineseNamesHaveNoSpaces(t *testing.T) {
	f := For(Chinese).Faker
	s := rng.New(8)
	for i := 0; i < 50; i++ {
		assert.NotContains(t, f.PersonName(s), " ")
	}
}
