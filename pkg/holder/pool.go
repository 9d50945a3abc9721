package holder

import (
	"sync"
	"sync/atomic"

	"github.com/BTBurke/monte/pkg/rng"
)

// Pool hands independently seeded generators to worker goroutines.  It is safe for
// concurrent use.  A generator taken with Get belongs to the caller until it is returned
// with Put.
type Pool struct {
	base int64
	next int64
	opts []rng.Option
	pool sync.Pool
}

// NewPool returns a pool whose generators are created with opts and seeded from a single
// random base seed
func NewPool(opts ...rng.Option) (*Pool, error) {
	base, err := rng.NewSeed()
	if err != nil {
		return nil, err
	}
	return NewPoolWithSeed(base, opts...)
}

// NewPoolWithSeed returns a pool whose n-th created generator is seeded with
// rng.DeriveSeed(base, n)
func NewPoolWithSeed(base int64, opts ...rng.Option) (*Pool, error) {
	// options are validated once here so the pool never fails to create a generator later
	first, err := rng.New(rng.DeriveSeed(base, 0), opts...)
	if err != nil {
		return nil, err
	}
	p := &Pool{
		base: base,
		opts: opts,
	}
	p.pool.New = func() interface{} {
		i := atomic.AddInt64(&p.next, 1)
		g, _ := rng.New(rng.DeriveSeed(p.base, int(i)), p.opts...)
		return g
	}
	p.pool.Put(first)
	return p, nil
}

// Get takes a generator from the pool
func (p *Pool) Get() *rng.Generator {
	return p.pool.Get().(*rng.Generator)
}

// Put returns a generator to the pool.  The caller must not use it afterwards.
func (p *Pool) Put(g *rng.Generator) {
	if g == nil {
		return
	}
	p.pool.Put(g)
}
