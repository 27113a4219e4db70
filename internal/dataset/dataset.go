// Package dataset loads the price series and landmark lists that feed the
// data mountains and the skyline.
package dataset

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	dsmath "github.com/Faultbox/datascape/pkg/math"
	"github.com/Faultbox/datascape/pkg/palette"
	"github.com/Faultbox/datascape/pkg/validate"
)

// Area is one neighbourhood's price history, oldest first.
type Area struct {
	Name   string    `yaml:"name"`
	Prices []float32 `yaml:"prices"` // In lakhs
	Growth float32   `yaml:"growth"` // Yearly growth, percent
}

// Landmark is a building on the skyline.
type Landmark struct {
	Name     string     `yaml:"name"`
	Position [3]float32 `yaml:"position"`
	Height   float32    `yaml:"height"`
	Type     string     `yaml:"type"`
	Price    string     `yaml:"price"`
	Growth   string     `yaml:"growth"`
}

// Dataset is the root of a dataset file.
type Dataset struct {
	Areas     []Area     `yaml:"areas"`
	Landmarks []Landmark `yaml:"landmarks"`
}

// Load reads and validates a dataset file.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset: %w", err)
	}
	ds, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", path, err)
	}
	return ds, nil
}

// Parse decodes and validates YAML dataset bytes.
func Parse(data []byte) (*Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("parsing dataset: %w", err)
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return &ds, nil
}

// Validate rejects datasets the builders cannot use.
func (d *Dataset) Validate() error {
	const op = "dataset.Validate"
	if len(d.Areas) == 0 && len(d.Landmarks) == 0 {
		return validate.Invalid(op, "", "dataset has no areas and no landmarks")
	}

	seen := make(map[string]bool)
	for i, a := range d.Areas {
		field := fmt.Sprintf("areas[%d]", i)
		if strings.TrimSpace(a.Name) == "" {
			return validate.Invalid(op, field, "has no name")
		}
		if len(a.Prices) == 0 {
			return validate.Invalid(op, field, fmt.Sprintf("%q has no prices", a.Name))
		}
		for _, p := range a.Prices {
			if !(p >= 0) {
				return validate.Invalid(op, field, fmt.Sprintf("%q has a negative price", a.Name))
			}
		}
	}

	for i, l := range d.Landmarks {
		field := fmt.Sprintf("landmarks[%d]", i)
		if strings.TrimSpace(l.Name) == "" {
			return validate.Invalid(op, field, "has no name")
		}
		if seen[l.Name] {
			return validate.Invalid(op, field, fmt.Sprintf("duplicate landmark %q", l.Name))
		}
		seen[l.Name] = true
		if !(l.Height > 0) {
			return validate.Invalid(op, field, fmt.Sprintf("%q height must be positive", l.Name))
		}
	}
	return nil
}

// Marshal renders the dataset as YAML.
func (d *Dataset) Marshal() ([]byte, error) {
	return yaml.Marshal(d)
}

// Ground returns the landmark's ground-plane position.
func (l Landmark) Ground() dsmath.Vec2 {
	return dsmath.V3(l.Position).XZ()
}

// Style returns the landmark's building style.
func (l Landmark) Style() palette.BuildingStyle {
	return palette.StyleFor(l.Type)
}

// Current returns the latest price.
func (a Area) Current() float32 {
	return a.Prices[len(a.Prices)-1]
}

// Range returns the lowest and highest price.
func (a Area) Range() (lo, hi float32) {
	lo, hi = a.Prices[0], a.Prices[0]
	for _, p := range a.Prices[1:] {
		lo = min(lo, p)
		hi = max(hi, p)
	}
	return lo, hi
}

// Rating scores investment appeal from growth: more than 18% earns five
// stars, more than 15% four, more than 12% three, anything else two.
func (a Area) Rating() int {
	switch {
	case a.Growth > 18:
		return 5
	case a.Growth > 15:
		return 4
	case a.Growth > 12:
		return 3
	default:
		return 2
	}
}

// Indicator returns the growth marker color.
func (a Area) Indicator() palette.Color {
	return palette.GrowthIndicator(a.Growth)
}
