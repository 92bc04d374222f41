package testhelpers

import (
	"fmt"
)

// ScriptedSource is a random.Source that replays fixed draws. Each IntN call consumes the next value of Ints and
// each Float64 call the next value of Floats. When a queue runs dry it falls back to 0, which keeps long scripted
// games deterministic without listing every draw.
type ScriptedSource struct {
	Ints   []int
	Floats []float64
}

// IntN returns the next scripted int. Values outside [0, n) panic so that a wrong script fails loudly.
func (s *ScriptedSource) IntN(n int) int {
	if len(s.Ints) == 0 {
		return 0
	}
	v := s.Ints[0]
	s.Ints = s.Ints[1:]
	if v < 0 || v >= n {
		panic(fmt.Sprintf("scripted int %d out of range [0, %d)", v, n))
	}
	return v
}

// Float64 returns the next scripted float.
func (s *ScriptedSource) Float64() float64 {
	if len(s.Floats) == 0 {
		return 0
	}
	v := s.Floats[0]
	s.Floats = s.Floats[1:]
	return v
}
