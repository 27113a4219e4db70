package palette

import (
	"github.com/Faultbox/datascape/pkg/heightfield"
)

// BucketColors holds one display color per height bucket.
type BucketColors [heightfield.NumBuckets]Color

// DefaultBucketColors is the price legend: affordable green, medium cyan,
// high orange, premium yellow.
var DefaultBucketColors = BucketColors{
	heightfield.BucketLow:  ColorGreen,
	heightfield.BucketMid:  ColorCyan,
	heightfield.BucketHigh: ColorOrange,
	heightfield.BucketPeak: ColorYellow,
}

// For returns the color for b. Out-of-range buckets map to LOW.
func (bc BucketColors) For(b heightfield.Bucket) Color {
	if b < 0 || int(b) >= len(bc) {
		return bc[heightfield.BucketLow]
	}
	return bc[b]
}

// VertexColors returns one color per mesh vertex, in vertex order.
func (bc BucketColors) VertexColors(mesh *heightfield.Mesh) []Color {
	colors := make([]Color, len(mesh.Vertices))
	for i, v := range mesh.Vertices {
		colors[i] = bc.For(v.Bucket)
	}
	return colors
}
