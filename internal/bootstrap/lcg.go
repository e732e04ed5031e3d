package bootstrap

const (
	lcgMultiplier = 1664525
	lcgIncrement  = 1013904223
	lcgModulus    = 1 << 32
)

const DefaultSeed = 42

// LCG is the linear congruential generator used to sample profiles. The
// sequence for a given seed is fixed so that generated datasets can be
// reproduced exactly.
type LCG struct {
	state uint64
}

func NewLCG(seed uint32) *LCG {
	return &LCG{state: uint64(seed)}
}

// Next advances the generator and returns the new state.
func (g *LCG) Next() uint32 {
	g.state = (g.state*lcgMultiplier + lcgIncrement) % lcgModulus
	return uint32(g.state)
}

// Float64 returns a value in [0, 1).
func (g *LCG) Float64() float64 {
	return float64(g.Next()) / lcgModulus
}
