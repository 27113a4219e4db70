package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dsmath "github.com/Faultbox/datascape/pkg/math"
	"github.com/Faultbox/datascape/pkg/palette"
	"github.com/Faultbox/datascape/pkg/validate"
)

const sampleYAML = `
areas:
  - name: Powai
    prices: [120, 125, 130]
    growth: 14.1
landmarks:
  - name: World One
    position: [5, 0, 5]
    height: 28
    type: skyscraper
    price: "7.2Cr"
    growth: "+20%"
`

func TestParse(t *testing.T) {
	ds, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	require.Len(t, ds.Areas, 1)
	assert.Equal(t, "Powai", ds.Areas[0].Name)
	assert.Equal(t, []float32{120, 125, 130}, ds.Areas[0].Prices)

	require.Len(t, ds.Landmarks, 1)
	l := ds.Landmarks[0]
	assert.Equal(t, dsmath.Vec2{X: 5, Y: 5}, l.Ground())
	assert.Equal(t, float32(28), l.Height)
	assert.Equal(t, palette.StyleFor("skyscraper"), l.Style())
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"empty", "areas: []\n"},
		{"unnamed area", "areas:\n  - prices: [1]\n"},
		{"no prices", "areas:\n  - name: Thane\n"},
		{"negative price", "areas:\n  - name: Thane\n    prices: [1, -2]\n"},
		{"zero height", "landmarks:\n  - name: Stub\n    height: 0\n"},
		{"duplicate landmark", "landmarks:\n  - name: A\n    height: 1\n  - name: A\n    height: 2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.ErrorIs(t, err, validate.ErrInvalidInput)
		})
	}

	_, err := Parse([]byte("areas: [unclosed"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "market.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0644))

	ds, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, ds.Areas, 1)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestSampleRoundTrip(t *testing.T) {
	ds := Sample()
	require.NoError(t, ds.Validate())
	assert.Len(t, ds.Areas, 10)
	assert.Len(t, ds.Landmarks, 10)

	data, err := ds.Marshal()
	require.NoError(t, err)
	back, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, ds, back)
}

func TestAreaStats(t *testing.T) {
	a := Area{Name: "Thane", Prices: []float32{55, 58, 50, 105}, Growth: 19.2}

	assert.Equal(t, float32(105), a.Current())
	lo, hi := a.Range()
	assert.Equal(t, float32(50), lo)
	assert.Equal(t, float32(105), hi)
	assert.Equal(t, palette.MustHex("#00ff00"), a.Indicator())
}

func TestRating(t *testing.T) {
	tests := []struct {
		growth float32
		want   int
	}{
		{20.2, 5},
		{18.5, 5},
		{18, 4},
		{15.2, 4},
		{14.1, 3},
		{12, 2},
		{5, 2},
	}
	for _, tt := range tests {
		a := Area{Growth: tt.growth}
		assert.Equal(t, tt.want, a.Rating(), "growth %v", tt.growth)
	}
}
