// Package mountains lays out one price heightfield per market area.
package mountains

import (
	"fmt"

	"github.com/chewxy/math32"
	"go.uber.org/zap"

	"github.com/Faultbox/datascape/internal/dataset"
	"github.com/Faultbox/datascape/internal/export"
	"github.com/Faultbox/datascape/internal/logger"
	"github.com/Faultbox/datascape/pkg/heightfield"
	dsmath "github.com/Faultbox/datascape/pkg/math"
)

// Layout constants for the mountain range.
const (
	PerRow     = 5
	ColumnStep = 12
	RowStep    = 15
	BobHeight  = 0.5
)

// Mountain is one area's terrain and the scene props derived from it.
type Mountain struct {
	Area     dataset.Area
	Mesh     *heightfield.Mesh
	Position dsmath.Vec3
	Trend    []dsmath.Vec3
	// MarkerHeight is where the growth indicator floats, one unit above the
	// tallest sample.
	MarkerHeight float32
	Index        int
}

// Build creates a mountain per area. The first failing area aborts the build.
func Build(areas []dataset.Area, opts heightfield.Options, grid heightfield.Grid) ([]Mountain, error) {
	log := logger.Named("mountains")

	out := make([]Mountain, 0, len(areas))
	for i, a := range areas {
		mesh, err := opts.Build(a.Prices, grid)
		if err != nil {
			return nil, fmt.Errorf("area %q: %w", a.Name, err)
		}
		trend, err := heightfield.TrendLine(a.Prices, float32(grid.Width), opts.Scale)
		if err != nil {
			return nil, fmt.Errorf("area %q trend: %w", a.Name, err)
		}
		_, hi := a.Range()

		m := Mountain{
			Area:         a,
			Mesh:         mesh,
			Position:     Position(i),
			Trend:        trend,
			MarkerHeight: hi/opts.Scale + 1,
			Index:        i,
		}
		out = append(out, m)

		log.Debug("mountain built",
			zap.String("area", a.Name),
			zap.Int("vertices", len(mesh.Vertices)),
			zap.Int("triangles", len(mesh.Triangles)),
			zap.Float32("peak", mesh.Bounds.Max[1]),
		)
	}
	return out, nil
}

// Position returns where the i-th mountain stands: five to a row, rows
// stepping back along z.
func Position(i int) dsmath.Vec3 {
	return dsmath.Vec3{
		X: float32((i%PerRow)*ColumnStep - 2*ColumnStep),
		Z: float32((i / PerRow) * RowStep),
	}
}

// Bob returns the vertical float offset of mountain index at time t.
func Bob(t float32, index int) float32 {
	return math32.Sin(t+float32(index)) * BobHeight
}

// Objects converts mountains into export objects at their layout positions.
func Objects(ms []Mountain) []export.Object {
	objs := make([]export.Object, len(ms))
	for i, m := range ms {
		objs[i] = export.Object{Name: m.Area.Name, Mesh: m.Mesh, Offset: m.Position}
	}
	return objs
}
