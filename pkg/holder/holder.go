// Package holder hands out generators to goroutines.  A generator is never shared: each
// Holder, each pooled generator and each generator from Split belongs to one goroutine at a
// time.
package holder

import (
	"fmt"

	"github.com/BTBurke/monte/pkg/rng"
)

// Holder owns one lazily created generator.  The zero value is ready to use.  A Holder must
// not be used from more than one goroutine.
type Holder struct {
	g    *rng.Generator
	opts []rng.Option
}

// New returns a holder whose generator is created with opts
func New(opts ...rng.Option) *Holder {
	return &Holder{opts: opts}
}

// Get returns the holder's generator, creating it with a random seed on first use
func (h *Holder) Get() (*rng.Generator, error) {
	if h.g != nil {
		return h.g, nil
	}
	seed, err := rng.NewSeed()
	if err != nil {
		return nil, err
	}
	if err := h.Reseed(seed); err != nil {
		return nil, err
	}
	return h.g, nil
}

// Reseed replaces the holder's generator with one seeded with seed.  Generators held by other
// holders are not affected.
func (h *Holder) Reseed(seed int64) error {
	g, err := rng.New(seed, h.opts...)
	if err != nil {
		return fmt.Errorf("failed to reseed holder: %w", err)
	}
	h.g = g
	return nil
}
