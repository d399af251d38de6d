package stream

import (
	"github.com/benbjohnson/clock"
	"github.com/zeebo/xxh3"
)

// SeedFromName maps an experiment name onto a valid state in [1, M-1].
// The same name always yields the same seed.
func SeedFromName(name string) int64 {
	return fold(xxh3.HashString(name))
}

// clockSeed turns the current time into a valid state in [1, M-1].
// The nanosecond timestamp goes through the SplitMix64 finalizer first,
// neighbouring timestamps must not give neighbouring states.
func clockSeed(clk clock.Clock) int64 {
	z := uint64(clk.Now().UnixNano()) + 0x9e3779b97f4a7c15
	z ^= z >> 30
	z *= 0xbf58476d1ce4e5b9
	z ^= z >> 27
	z *= 0x94d049bb133111eb
	z ^= z >> 31
	return fold(z)
}

func fold(h uint64) int64 {
	return int64(h%uint64(Modulus-1)) + 1
}
