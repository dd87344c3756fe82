package book

import (
	"crypto/rand"
	"math/big"
	"strconv"
)

// maxRandomSeed bounds seeds handed out by RandomSeed to eight digits.
var maxRandomSeed = big.NewInt(100_000_000)

// RandomSeed returns a fresh seed in [0, 99999999] formatted as decimal.
func RandomSeed() (string, error) {
	n, err := rand.Int(rand.Reader, maxRandomSeed)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64(), 10), nil
}
