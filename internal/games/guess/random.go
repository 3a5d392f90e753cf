package guess

import "math/rand"

// RandomSource draws uniformly distributed integers in [min, max].
// The engine never reads the clock or any other ambient entropy; the host
// supplies a source, and tests supply a fixed one.
type RandomSource interface {
	NextInt(min, max int) int
}

// RandomFunc adapts a plain function to RandomSource.
type RandomFunc func(min, max int) int

// NextInt calls f(min, max).
func (f RandomFunc) NextInt(min, max int) int {
	return f(min, max)
}

// SeededSource is a RandomSource backed by math/rand.
// Equal seeds produce equal target sequences.
type SeededSource struct {
	rng *rand.Rand
}

// NewSeededSource creates a source seeded with seed.
func NewSeededSource(seed int64) *SeededSource {
	return &SeededSource{rng: rand.New(rand.NewSource(seed))}
}

// NextInt returns a uniform integer in [min, max]. If max < min it returns min.
func (s *SeededSource) NextInt(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.rng.Intn(max-min+1)
}
