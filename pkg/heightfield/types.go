// Package heightfield builds triangulated terrain meshes from ordered numeric
// time series. Each series column becomes a ridge of the surface; vertices are
// tagged with a color bucket derived from their normalized height.
package heightfield

import "fmt"

// Bucket is a discrete display-color category for a vertex.
type Bucket int

// Height buckets, lowest first.
const (
	BucketLow Bucket = iota
	BucketMid
	BucketHigh
	BucketPeak

	NumBuckets = 4
)

func (b Bucket) String() string {
	switch b {
	case BucketLow:
		return "LOW"
	case BucketMid:
		return "MID"
	case BucketHigh:
		return "HIGH"
	case BucketPeak:
		return "PEAK"
	default:
		return fmt.Sprintf("Bucket(%d)", int(b))
	}
}

// Grid is the terrain resolution in cells. The lattice has
// (Width+1) x (Depth+1) points.
type Grid struct {
	Width int
	Depth int
}

// Vertex is a lattice point of the generated surface.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	Bucket   Bucket
}

// Bounds holds the axis-aligned bounding box of the mesh.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// Mesh is the builder output. Vertices are row-major: lattice point (x, z)
// lives at index z*(Grid.Width+1) + x. The caller owns the mesh.
type Mesh struct {
	Grid      Grid
	Vertices  []Vertex
	Triangles [][3]uint32
	Bounds    Bounds
}
