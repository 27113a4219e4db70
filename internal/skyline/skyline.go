// Package skyline runs the growing-building scene: one growth entity per
// landmark, advanced once per frame by the host loop.
package skyline

import (
	"context"
	"fmt"
	"runtime"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/datascape/internal/dataset"
	"github.com/Faultbox/datascape/internal/logger"
	"github.com/Faultbox/datascape/pkg/growth"
	"github.com/Faultbox/datascape/pkg/palette"
)

// Building pairs a landmark with its animation state.
type Building struct {
	Landmark dataset.Landmark
	Entity   *growth.Entity
}

// Frame is the per-building output of a tick, ready for a renderer.
type Frame struct {
	Name     string
	Position [3]float32
	Height   float32
	Phase    growth.Phase
	Progress float32
	Style    palette.BuildingStyle
	// Crane is shown while the building is still going up.
	Crane bool
}

// Simulation owns the buildings of one skyline.
type Simulation struct {
	animator  *growth.Animator
	buildings map[string]*Building
	order     []string // insertion order, for stable sequential ticks
	log       *zap.Logger
}

// New creates a simulation with a building per landmark.
func New(animator *growth.Animator, landmarks []dataset.Landmark) (*Simulation, error) {
	s := &Simulation{
		animator:  animator,
		buildings: make(map[string]*Building, len(landmarks)),
		log:       logger.Named("skyline"),
	}
	for _, l := range landmarks {
		if err := s.Add(l); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Add places a new building at ground level.
func (s *Simulation) Add(l dataset.Landmark) error {
	if _, ok := s.buildings[l.Name]; ok {
		return fmt.Errorf("skyline: building %q already exists", l.Name)
	}
	pos := l.Ground()
	s.buildings[l.Name] = &Building{
		Landmark: l,
		Entity:   growth.EntityAt(l.Height, pos.X, pos.Y),
	}
	s.order = append(s.order, l.Name)
	s.log.Debug("building added", zap.String("name", l.Name), zap.Float32("target", l.Height))
	return nil
}

// Remove drops a building. It reports whether the building existed.
func (s *Simulation) Remove(name string) bool {
	if _, ok := s.buildings[name]; !ok {
		return false
	}
	delete(s.buildings, name)
	for i, n := range s.order {
		if n == name {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of buildings.
func (s *Simulation) Len() int {
	return len(s.buildings)
}

// Get returns a building by name.
func (s *Simulation) Get(name string) (*Building, bool) {
	b, ok := s.buildings[name]
	return b, ok
}

// Tick advances every building by delta, in insertion order.
func (s *Simulation) Tick(delta float32) error {
	for _, name := range s.order {
		if err := s.tickOne(s.buildings[name], delta); err != nil {
			return err
		}
	}
	return nil
}

// TickParallel advances every building by delta across worker goroutines.
// Buildings share no state, so no locking is needed.
func (s *Simulation) TickParallel(ctx context.Context, delta float32) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for _, name := range s.order {
		b := s.buildings[name]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return s.tickOne(b, delta)
		})
	}
	return g.Wait()
}

func (s *Simulation) tickOne(b *Building, delta float32) error {
	wasGrowing := b.Entity.Phase == growth.Growing
	if err := s.animator.Tick(b.Entity, delta); err != nil {
		return fmt.Errorf("ticking %q: %w", b.Landmark.Name, err)
	}
	if wasGrowing && b.Entity.Phase == growth.Settled {
		s.log.Info("building complete",
			zap.String("name", b.Landmark.Name),
			zap.Float32("height", b.Entity.TargetHeight),
			zap.Float32("elapsed", b.Entity.Elapsed),
		)
	}
	return nil
}

// Settled counts buildings that finished growing.
func (s *Simulation) Settled() int {
	n := 0
	for _, b := range s.buildings {
		if b.Entity.Phase == growth.Settled {
			n++
		}
	}
	return n
}

// RunUntilSettled ticks until every building has settled or maxTicks is
// reached, returning the number of ticks run. maxTicks of zero means no limit.
func (s *Simulation) RunUntilSettled(ctx context.Context, delta float32, maxTicks int, parallel bool) (int, error) {
	ticks := 0
	for s.Settled() < s.Len() {
		if maxTicks > 0 && ticks >= maxTicks {
			break
		}
		if err := ctx.Err(); err != nil {
			return ticks, err
		}

		var err error
		if parallel {
			err = s.TickParallel(ctx, delta)
		} else {
			err = s.Tick(delta)
		}
		if err != nil {
			return ticks, err
		}
		ticks++
	}
	return ticks, nil
}

// Snapshot returns one frame per building, sorted by name.
func (s *Simulation) Snapshot() []Frame {
	frames := make([]Frame, 0, len(s.buildings))
	for _, b := range s.buildings {
		e := b.Entity
		frames = append(frames, Frame{
			Name:     b.Landmark.Name,
			Position: b.Landmark.Position,
			Height:   e.CurrentHeight,
			Phase:    e.Phase,
			Progress: e.Progress(),
			Style:    b.Landmark.Style(),
			Crane:    e.Phase == growth.Growing,
		})
	}
	sort.Slice(frames, func(i, j int) bool {
		return frames[i].Name < frames[j].Name
	})
	return frames
}
