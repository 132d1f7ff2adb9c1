package bag

import "github.com/mcoot/wordtiles/internal/dependencies/random"

// Shuffle returns a uniformly random permutation of items using a
// Fisher-Yates pass from the last index down. The input slice is not
// modified.
func Shuffle[T any](rnd random.Random, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i > 0; i-- {
		j := rnd.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
