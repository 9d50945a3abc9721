package rng

import "math/bits"

var _ Source = &PCG32{}

const (
	pcgMultiplier = 6364136223846793005
	pcgIncrement  = 1442695040888963407
)

// PCG32 is a PCG-XSH-RR generator with 64 bits of state and 32 bits of output.  The zero
// value is usable but every zero value produces the same sequence; use NewPCG32.
type PCG32 struct {
	state uint64
}

// NewPCG32 returns a PCG32 seeded with seed
func NewPCG32(seed int64) *PCG32 {
	p := &PCG32{}
	p.Seed(seed)
	return p
}

// PCG32Factory creates PCG32 sources
func PCG32Factory(seed int64) Source {
	return NewPCG32(seed)
}

// Seed resets the generator to the deterministic state for seed
func (p *PCG32) Seed(seed int64) {
	p.state = 0
	p.step()
	p.state += uint64(seed)
	p.step()
}

func (p *PCG32) step() uint64 {
	old := p.state
	p.state = old*pcgMultiplier + pcgIncrement
	return old
}

// Uint32 returns the next 32 bits of output
func (p *PCG32) Uint32() uint32 {
	old := p.step()
	xorshifted := uint32(((old >> 18) ^ old) >> 27)
	return bits.RotateLeft32(xorshifted, -int(old>>59))
}

// Int31n returns a value in [0,n).  It panics if n <= 0.
func (p *PCG32) Int31n(n int32) int32 {
	if n <= 0 {
		panic("rng: invalid argument to Int31n")
	}
	return int32(p.bounded(uint32(n)))
}

// Int31Range returns a value in [lo,hi).  It panics if hi <= lo.
func (p *PCG32) Int31Range(lo, hi int32) int32 {
	if hi <= lo {
		panic("rng: invalid argument to Int31Range")
	}
	span := uint32(int64(hi) - int64(lo))
	return int32(int64(lo) + int64(p.bounded(span)))
}

// Float64 returns a value in [0,1) built from the top 53 bits of two outputs
func (p *PCG32) Float64() float64 {
	hi := uint64(p.Uint32())
	lo := uint64(p.Uint32())
	return float64((hi<<32|lo)>>11) / (1 << 53)
}

// bounded uses Lemire's multiply-shift reduction, rejecting the low products that would
// make some results more likely than others.  n must be non-zero.
func (p *PCG32) bounded(n uint32) uint32 {
	prod := uint64(p.Uint32()) * uint64(n)
	low := uint32(prod)
	if low < n {
		threshold := -n % n
		for low < threshold {
			prod = uint64(p.Uint32()) * uint64(n)
			low = uint32(prod)
		}
	}
	return uint32(prod >> 32)
}
