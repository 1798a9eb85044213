package pagerank

import "github.com/arlojax/graphon/graphcore"

// Config configures Run (spec §4.5). Zero-valued numeric fields and nil
// function fields are replaced by their documented defaults in Run,
// following the same "apply defaults at call time" pattern the rest of
// this module's ecosystem uses for options structs.
type Config struct {
	// Alpha is the teleport probability (default 0.15).
	Alpha float64
	// Iterations is the hard cap on power-iteration rounds (default 1000).
	Iterations int
	// Convergence is the L1-delta threshold that stops iteration early
	// (default 1e-4).
	Convergence float64
	// Init returns the uniform initial rank for every node (default 1/n).
	Init func(g *graphcore.Graph) float64
	// AlphaDamp returns the denominator of the teleport term (default n).
	AlphaDamp func(g *graphcore.Graph) float64
	// Weighted is reserved for a future weighted variant; the core loop
	// does not read it (spec §4.5 "reserved; unused by core loop").
	Weighted bool
}

func defaultInit(g *graphcore.Graph) float64 {
	n := g.NrNodes()
	if n == 0 {
		return 0
	}
	return 1 / float64(n)
}

func defaultAlphaDamp(g *graphcore.Graph) float64 {
	return float64(g.NrNodes())
}

// DefaultConfig returns the spec-documented defaults.
func DefaultConfig() Config {
	return Config{
		Alpha:       0.15,
		Iterations:  1000,
		Convergence: 1e-4,
		Init:        defaultInit,
		AlphaDamp:   defaultAlphaDamp,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Alpha <= 0 {
		c.Alpha = d.Alpha
	}
	if c.Iterations <= 0 {
		c.Iterations = d.Iterations
	}
	if c.Convergence <= 0 {
		c.Convergence = d.Convergence
	}
	if c.Init == nil {
		c.Init = d.Init
	}
	if c.AlphaDamp == nil {
		c.AlphaDamp = d.AlphaDamp
	}
	return c
}
