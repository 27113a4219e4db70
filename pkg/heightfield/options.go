package heightfield

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/datascape/pkg/validate"
)

// Display and displacement defaults.
const (
	DefaultScale          float32 = 10
	DefaultNoiseAmplitude float32 = 0.5
	DefaultNoiseFrequency float32 = 0.5
)

// Thresholds are the exclusive lower bounds of the MID, HIGH and PEAK buckets,
// as a fraction of the tallest sample's display height.
type Thresholds struct {
	Mid  float32 `yaml:"mid"`
	High float32 `yaml:"high"`
	Peak float32 `yaml:"peak"`
}

// DefaultThresholds returns the 0.4 / 0.6 / 0.8 split.
func DefaultThresholds() Thresholds {
	return Thresholds{Mid: 0.4, High: 0.6, Peak: 0.8}
}

// Classify returns the bucket for a height ratio.
func (t Thresholds) Classify(ratio float32) Bucket {
	switch {
	case ratio > t.Peak:
		return BucketPeak
	case ratio > t.High:
		return BucketHigh
	case ratio > t.Mid:
		return BucketMid
	default:
		return BucketLow
	}
}

// Options tunes the builder. The zero value is not usable; start from
// DefaultOptions.
type Options struct {
	// Scale divides sample values into display height.
	Scale          float32
	NoiseAmplitude float32
	NoiseFrequency float32
	Thresholds     Thresholds
}

// DefaultOptions returns the options Build uses.
func DefaultOptions() Options {
	return Options{
		Scale:          DefaultScale,
		NoiseAmplitude: DefaultNoiseAmplitude,
		NoiseFrequency: DefaultNoiseFrequency,
		Thresholds:     DefaultThresholds(),
	}
}

// Noise is the deterministic displacement added at lattice point (x, z).
func (o Options) Noise(x, z int) float32 {
	return o.NoiseAmplitude * (math32.Sin(float32(x)*o.NoiseFrequency) + math32.Cos(float32(z)*o.NoiseFrequency))
}

func (o Options) validate() error {
	const op = "heightfield.Options"
	if !(o.Scale > 0) || math32.IsInf(o.Scale, 0) {
		return validate.Invalid(op, "Scale", "must be positive and finite")
	}
	if math32.IsNaN(o.NoiseAmplitude) || math32.IsNaN(o.NoiseFrequency) {
		return validate.Invalid(op, "Noise", "must not be NaN")
	}
	t := o.Thresholds
	if !(t.Mid <= t.High && t.High <= t.Peak) {
		return validate.Invalid(op, "Thresholds", "must satisfy mid <= high <= peak")
	}
	return nil
}
