package rng

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
)

// NewSeed generates a seed from crypto/rand for generators that do not need to be
// reproducible
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// SplitMix64 is the splitmix64 output function.  Adjacent inputs give uncorrelated outputs.
func SplitMix64(z uint64) uint64 {
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// DeriveSeed returns the seed for stream i of a family of generators sharing one base
// seed.  The same (base, i) always gives the same seed.
func DeriveSeed(base int64, i int) int64 {
	return int64(SplitMix64(uint64(base) + uint64(i+1)*0x9e3779b97f4a7c15))
}
