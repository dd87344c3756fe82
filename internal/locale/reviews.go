package locale

import "bookfaker/internal/rng"

// ReviewSource yields the text of one review.
type ReviewSource interface {
	Review(s *rng.Stream) string
}

// poolSource picks from a curated list with a single draw.
type poolSource []string

func (p poolSource) Review(s *rng.Stream) string {
	return p[PoolIndex(s.Float(), len(p))]
}

// sentenceSource has no curated list and generates a sentence instead.
type sentenceSource struct {
	faker Faker
}

func (src sentenceSource) Review(s *rng.Stream) string {
	return src.faker.LoremSentence(s)
}

// PoolIndex maps a [0,1) draw onto [0,n).
func PoolIndex(draw float64, n int) int {
	i := int(draw * float64(n))
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

// ReviewPool returns a copy of the curated review list for l, or nil when
// the locale generates review text instead.
func ReviewPool(l Locale) []string {
	p, ok := For(l).Reviews.(poolSource)
	if !ok {
		return nil
	}
	return append([]string(nil), p...)
}

var reviewsEN = poolSource{
	"A fascinating read from start to finish.",
	"Couldn't put it down!",
	"The characters were so vivid and real.",
	"A bit slow in the middle, but overall enjoyable.",
	"Highly recommended for all ages.",
	"An instant classic.",
	"The plot twists kept me guessing.",
	"I learned so much from this book.",
	"Beautifully written.",
	"I would read it again.",
}

var reviewsTR = poolSource{
	"Baştan sona sürükleyici bir kitap.",
	"Elimden bırakamadım!",
	"Karakterler çok canlıydı.",
	"Ortası biraz yavaş ilerledi ama genel olarak keyifliydi.",
	"Her yaşa tavsiye edilir.",
	"Gerçek bir klasik.",
	"Olaylar beni sürekli şaşırttı.",
	"Bu kitaptan çok şey öğrendim.",
	"Harika bir üslup.",
	"Tekrar okumak isterim.",
}

var reviewsZH = poolSource{
	"从头到尾都很精彩。",
	"让我爱不释手！",
	"人物形象非常生动。",
	"中间有点慢，但整体很棒。",
	"强烈推荐给所有人。",
	"一本经典之作。",
	"情节跌宕起伏，令人意想不到。",
	"这本书让我受益匪浅。",
	"文笔优美。",
	"我还会再读一遍。",
}
