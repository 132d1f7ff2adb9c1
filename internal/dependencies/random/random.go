package random

import (
	"encoding/binary"

	"lukechampine.com/frand"
)

// Random provides random number generation that can be mocked for testing
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int

	// String generates a random string of the given length from the given alphabet
	String(length int, alphabet string) string
}

// FastRandom implements Random using frand's global CSPRNG
type FastRandom struct{}

// New creates a new FastRandom
func New() *FastRandom {
	return &FastRandom{}
}

// Intn returns a random int in [0, n)
func (r *FastRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return frand.Intn(n)
}

// String generates a random string of the given length from the given alphabet
func (r *FastRandom) String(length int, alphabet string) string {
	return randomString(r, length, alphabet)
}

// SeededRandom is a deterministic stream, useful for replaying a game
// or asserting exact shuffle outcomes
type SeededRandom struct {
	rng *frand.RNG
}

// NewSeeded creates a SeededRandom. The same seed always yields the
// same sequence.
func NewSeeded(seed uint64) *SeededRandom {
	key := make([]byte, 32)
	binary.LittleEndian.PutUint64(key, seed)
	return &SeededRandom{rng: frand.NewCustom(key, 1024, 12)}
}

// Intn returns a random int in [0, n)
func (r *SeededRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.rng.Intn(n)
}

// String generates a random string of the given length from the given alphabet
func (r *SeededRandom) String(length int, alphabet string) string {
	return randomString(r, length, alphabet)
}

func randomString(r Random, length int, alphabet string) string {
	if length <= 0 || len(alphabet) == 0 {
		return ""
	}
	result := make([]byte, length)
	for i := 0; i < length; i++ {
		result[i] = alphabet[r.Intn(len(alphabet))]
	}
	return string(result)
}
