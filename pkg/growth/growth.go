// Package growth animates structures rising out of the ground. Each Entity
// climbs to its target height at a fixed rate, then settles into a gentle
// bob around that height for as long as the caller keeps ticking it.
package growth

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/Faultbox/datascape/pkg/validate"
)

// Phase is the animator mode of an entity.
type Phase int

const (
	// Growing entities rise toward their target height.
	Growing Phase = iota
	// Settled entities oscillate around their target height. There is no
	// way back to Growing.
	Settled
)

func (p Phase) String() string {
	switch p {
	case Growing:
		return "GROWING"
	case Settled:
		return "SETTLED"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Construction defaults, in height units per time unit.
const (
	DefaultGrowthRate float32 = 0.1
	DefaultEpsilon    float32 = 0.1
	DefaultAmplitude  float32 = 0.2
	DefaultFrequency  float32 = 1.0
)

// Config holds the animator constants.
type Config struct {
	GrowthRate float32 `yaml:"growth_rate"`
	Epsilon    float32 `yaml:"epsilon"`
	Amplitude  float32 `yaml:"amplitude"`
	Frequency  float32 `yaml:"frequency"`
}

// DefaultConfig returns the construction defaults.
func DefaultConfig() Config {
	return Config{
		GrowthRate: DefaultGrowthRate,
		Epsilon:    DefaultEpsilon,
		Amplitude:  DefaultAmplitude,
		Frequency:  DefaultFrequency,
	}
}

// Entity is the per-structure animation state. Entities share nothing, so
// different entities may be ticked concurrently.
type Entity struct {
	TargetHeight  float32
	CurrentHeight float32
	// Elapsed is the total time ticked so far.
	Elapsed float32
	// PhaseOffset desynchronizes the settled bob between entities.
	PhaseOffset float32
	Phase       Phase
}

// NewEntity creates a growing entity at height zero. A negative or NaN target
// is clamped to zero.
func NewEntity(target, phaseOffset float32) *Entity {
	if !(target > 0) {
		target = 0
	}
	if math32.IsNaN(phaseOffset) || math32.IsInf(phaseOffset, 0) {
		phaseOffset = 0
	}
	return &Entity{
		TargetHeight: target,
		PhaseOffset:  phaseOffset,
		Phase:        Growing,
	}
}

// EntityAt creates an entity standing at ground position (x, z). The phase
// offset is taken from x, so neighbours along a street bob out of step.
func EntityAt(target, x, z float32) *Entity {
	return NewEntity(target, x)
}

// Progress returns construction progress in [0, 1].
func (e *Entity) Progress() float32 {
	if e.Phase == Settled || e.TargetHeight == 0 {
		return 1
	}
	return math32.Min(e.CurrentHeight/e.TargetHeight, 1)
}

// Animator advances entities with a fixed Config.
type Animator struct {
	cfg Config
}

// NewAnimator returns an animator for cfg. Non-positive rates and tolerances
// are clamped to zero, which freezes growth or disables the bob respectively.
func NewAnimator(cfg Config) *Animator {
	cfg.GrowthRate = clampNonNegative(cfg.GrowthRate)
	cfg.Epsilon = clampNonNegative(cfg.Epsilon)
	cfg.Amplitude = clampNonNegative(cfg.Amplitude)
	if math32.IsNaN(cfg.Frequency) || math32.IsInf(cfg.Frequency, 0) {
		cfg.Frequency = 0
	}
	return &Animator{cfg: cfg}
}

// Config returns the effective animator constants.
func (a *Animator) Config() Config {
	return a.cfg
}

// Tick advances e by delta time units. A negative or NaN delta is rejected and
// leaves e untouched.
//
// While growing, height rises by GrowthRate*delta, capped at the target; once
// within Epsilon of the target the entity snaps to it and settles. Settled
// height is a function of Elapsed only, so splitting a delta across several
// ticks lands on the same value.
func (a *Animator) Tick(e *Entity, delta float32) error {
	if !(delta >= 0) || math32.IsInf(delta, 1) {
		return validate.Invalid("growth.Tick", "delta", "must be finite and non-negative")
	}

	e.Elapsed += delta

	switch e.Phase {
	case Growing:
		e.CurrentHeight = math32.Min(e.CurrentHeight+a.cfg.GrowthRate*delta, e.TargetHeight)
		if e.CurrentHeight >= e.TargetHeight-a.cfg.Epsilon {
			e.CurrentHeight = e.TargetHeight
			e.Phase = Settled
		}
	case Settled:
		e.CurrentHeight = a.SettledHeight(e)
	}
	return nil
}

// SettledHeight is the bob height of e at its current Elapsed time.
func (a *Animator) SettledHeight(e *Entity) float32 {
	return e.TargetHeight + a.cfg.Amplitude*math32.Sin(e.Elapsed*a.cfg.Frequency+e.PhaseOffset)
}

func clampNonNegative(v float32) float32 {
	if !(v > 0) || math32.IsInf(v, 1) {
		return 0
	}
	return v
}
