package heightfield

import (
	"github.com/chewxy/math32"

	dsmath "github.com/Faultbox/datascape/pkg/math"
	"github.com/Faultbox/datascape/pkg/validate"
)

// Build creates a terrain mesh from samples using DefaultOptions.
func Build(samples []float32, grid Grid) (*Mesh, error) {
	return DefaultOptions().Build(samples, grid)
}

// Build creates a terrain mesh from samples. Column x of the lattice takes
// its base height from samples[floor(x/Width * (len-1))]; rows repeat the
// column with a deterministic displacement.
func (o Options) Build(samples []float32, grid Grid) (*Mesh, error) {
	if err := o.validate(); err != nil {
		return nil, err
	}
	if err := validateInput(samples, grid); err != nil {
		return nil, err
	}

	width, depth := grid.Width, grid.Depth
	stride := width + 1

	var maxSample float32
	for _, s := range samples {
		maxSample = math32.Max(maxSample, s)
	}
	maxHeight := maxSample / o.Scale

	vertices := make([]Vertex, stride*(depth+1))

	halfW := float32(width) / 2
	halfD := float32(depth) / 2

	// Column base heights do not depend on z
	base := make([]float32, stride)
	for x := 0; x < stride; x++ {
		base[x] = samples[sampleIndex(x, width, len(samples))] / o.Scale
	}

	for z := 0; z < depth+1; z++ {
		for x := 0; x < stride; x++ {
			height := base[x] + o.Noise(x, z)

			vertices[z*stride+x] = Vertex{
				Position: [3]float32{float32(x) - halfW, height, float32(z) - halfD},
				Bucket:   o.Thresholds.Classify(heightRatio(height, maxHeight)),
			}
		}
	}

	triangles := make([][3]uint32, 0, 2*width*depth)
	for z := 0; z < depth; z++ {
		for x := 0; x < width; x++ {
			a := uint32(z*stride + x)
			b := a + 1
			c := a + uint32(stride)
			d := c + 1

			// Shared diagonal a-d; both faces wind counter-clockwise seen from +Y
			triangles = append(triangles,
				[3]uint32{a, c, d},
				[3]uint32{a, d, b},
			)
		}
	}

	mesh := &Mesh{
		Grid:      grid,
		Vertices:  vertices,
		Triangles: triangles,
	}
	mesh.computeNormals()
	mesh.Bounds = computeBounds(vertices)

	return mesh, nil
}

func validateInput(samples []float32, grid Grid) error {
	const op = "heightfield.Build"
	if len(samples) == 0 {
		return validate.Invalid(op, "samples", "must not be empty")
	}
	for _, s := range samples {
		if !(s >= 0) || math32.IsInf(s, 1) {
			return validate.Invalid(op, "samples", "must be finite and non-negative")
		}
	}
	if grid.Width < 1 {
		return validate.Invalid(op, "grid.Width", "must be at least 1")
	}
	if grid.Depth < 1 {
		return validate.Invalid(op, "grid.Depth", "must be at least 1")
	}
	return nil
}

// sampleIndex maps lattice column x onto the series, rounding down.
// Integer arithmetic keeps exact multiples from landing one index short.
func sampleIndex(x, width, n int) int {
	return x * (n - 1) / width
}

func heightRatio(height, maxHeight float32) float32 {
	if maxHeight <= 0 {
		return 0
	}
	return height / maxHeight
}

func computeBounds(vertices []Vertex) Bounds {
	lo := dsmath.V3(vertices[0].Position)
	hi := lo
	for _, v := range vertices[1:] {
		p := dsmath.V3(v.Position)
		lo = lo.Min(p)
		hi = hi.Max(p)
	}
	return Bounds{Min: lo.Array(), Max: hi.Array()}
}
