package matrix

import "context"

// Multiplier is the injected matrix-multiplication capability analytics
// depends on for triangle counting and clustering (spec §4.6, §9 "async
// matrix multiplier"). It is the one place in this module where an
// operation may suspend — the core stays agnostic to whether Multiply is
// backed by this package's CPU Mul, a GPU kernel, or a remote service.
type Multiplier interface {
	Multiply(ctx context.Context, a, b *Dense) (*Dense, error)
}

// LocalMultiplier is the default Multiplier: synchronous in-process Mul.
// It never actually suspends, but still honors ctx cancellation so
// callers can swap in a remote implementation without changing behavior
// under cancellation.
type LocalMultiplier struct{}

// Multiply implements Multiplier using this package's Mul.
func (LocalMultiplier) Multiply(ctx context.Context, a, b *Dense) (*Dense, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Mul(a, b)
}
