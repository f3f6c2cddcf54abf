package domain

import (
	"strings"
	"sync"

	"github.com/brianvoe/gofakeit/v7"
)

// Random is the source of randomness used by randomized synthesis.
type Random interface {
	// IntRange returns an integer in [minInclusive, maxExclusive).
	IntRange(minInclusive, maxExclusive int) int
	// Bool returns a coin flip.
	Bool() bool
	// Words returns count space-separated lorem words.
	Words(count int) string
}

type fakerRandom struct {
	mu    sync.Mutex
	faker *gofakeit.Faker
}

// NewRandom returns a Random backed by gofakeit. A zero seed picks a
// non-reproducible one.
func NewRandom(seed uint64) Random {
	return &fakerRandom{faker: gofakeit.New(seed)}
}

func (r *fakerRandom) IntRange(minInclusive, maxExclusive int) int {
	if maxExclusive <= minInclusive {
		return minInclusive
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.faker.IntRange(minInclusive, maxExclusive-1)
}

func (r *fakerRandom) Bool() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.faker.Bool()
}

func (r *fakerRandom) Words(count int) string {
	if count <= 0 {
		return ""
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	words := make([]string, count)
	for i := range words {
		words[i] = r.faker.LoremIpsumWord()
	}

	return strings.Join(words, " ")
}
