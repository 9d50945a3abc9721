package holder

import (
	"fmt"

	"github.com/BTBurke/monte/pkg/rng"
)

// Split returns n generators whose seeds are derived from base.  The same base always gives
// the same generators, and their streams are decorrelated from each other.
func Split(base int64, n int, opts ...rng.Option) ([]*rng.Generator, error) {
	if n < 0 {
		return nil, fmt.Errorf("can not split into %d generators", n)
	}
	out := make([]*rng.Generator, n)
	for i := range out {
		g, err := rng.New(rng.DeriveSeed(base, i), opts...)
		if err != nil {
			return nil, err
		}
		out[i] = g
	}
	return out, nil
}
