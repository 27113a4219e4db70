// datascape builds data-driven scene geometry: price mountains and a growing
// skyline.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/datascape/internal/config"
	"github.com/Faultbox/datascape/internal/dataset"
	"github.com/Faultbox/datascape/internal/export"
	"github.com/Faultbox/datascape/internal/logger"
	"github.com/Faultbox/datascape/internal/mountains"
	"github.com/Faultbox/datascape/internal/skyline"
	"github.com/Faultbox/datascape/pkg/heightfield"
	"github.com/Faultbox/datascape/pkg/palette"
)

func main() {
	config.ParseFlags()

	args := config.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}
	command := args[0]
	if command == "help" || command == "-h" || command == "--help" {
		printUsage()
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch command {
	case "mesh":
		err = cmdMesh(cfg)
	case "skyline":
		err = cmdSkyline(ctx, cfg)
	case "areas":
		err = cmdAreas(cfg)
	case "config":
		err = cmdConfig(cfg)
	case "sample":
		err = cmdSample()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		logger.Error("command failed", zap.String("command", command), zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`datascape - data mountain and skyline geometry builder

Usage:
  datascape [flags] <command>

Commands:
  mesh      Build a price mountain per area and export them as OBJ
  skyline   Run the building growth animation until every building settles
  areas     List market areas with price range and rating
  config    Print the effective configuration
  sample    Print the built-in dataset as YAML

Flags:
  -config <file>   Config file (default: ./datascape.yaml)
  -dataset <file>  Dataset YAML (default: built-in sample)
  -out <dir>       Output directory for exported meshes
  -width, -depth   Terrain grid resolution
  -parallel        Tick buildings on worker goroutines
  -debug           Enable debug logging

Examples:
  datascape mesh
  datascape -dataset market.yaml -width 16 -depth 16 mesh
  datascape -parallel skyline`)
}

func loadDataset(cfg *config.Config) (*dataset.Dataset, error) {
	if cfg.Data.Dataset == "" {
		logger.Debug("using built-in dataset")
		return dataset.Sample(), nil
	}
	return dataset.Load(cfg.Data.Dataset)
}

func cmdMesh(cfg *config.Config) error {
	ds, err := loadDataset(cfg)
	if err != nil {
		return err
	}
	if len(ds.Areas) == 0 {
		return fmt.Errorf("dataset has no areas")
	}

	ms, err := mountains.Build(ds.Areas, cfg.Terrain.Options(), cfg.Terrain.Grid())
	if err != nil {
		return err
	}

	path := filepath.Join(cfg.Data.OutputDir, "mountains.obj")
	if err := export.WriteOBJFile(path, palette.DefaultBucketColors, mountains.Objects(ms)...); err != nil {
		return fmt.Errorf("exporting mountains: %w", err)
	}

	var counts [heightfield.NumBuckets]int
	for _, m := range ms {
		for _, v := range m.Mesh.Vertices {
			counts[v.Bucket]++
		}
	}

	logger.Info("mountains exported",
		zap.String("path", path),
		zap.Int("areas", len(ms)),
		zap.Int("width", cfg.Terrain.Width),
		zap.Int("depth", cfg.Terrain.Depth),
	)
	for b := heightfield.BucketLow; b <= heightfield.BucketPeak; b++ {
		fmt.Printf("  %-5s %d vertices\n", b, counts[b])
	}
	return nil
}

func cmdSkyline(ctx context.Context, cfg *config.Config) error {
	ds, err := loadDataset(cfg)
	if err != nil {
		return err
	}

	sim, err := skyline.New(cfg.Growth.Animator(), ds.Landmarks)
	if err != nil {
		return err
	}

	ticks, err := sim.RunUntilSettled(ctx, cfg.Skyline.TickDelta, cfg.Skyline.MaxTicks, cfg.Skyline.Parallel)
	if err != nil {
		return err
	}
	logger.Info("skyline finished",
		zap.Int("ticks", ticks),
		zap.Int("settled", sim.Settled()),
		zap.Int("buildings", sim.Len()),
	)

	fmt.Printf("%-20s %-8s %8s %8s\n", "BUILDING", "PHASE", "HEIGHT", "DONE")
	for _, f := range sim.Snapshot() {
		fmt.Printf("%-20s %-8s %8.2f %7.0f%%\n", f.Name, f.Phase, f.Height, f.Progress*100)
	}
	return nil
}

func cmdAreas(cfg *config.Config) error {
	ds, err := loadDataset(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("%-16s %8s %8s %8s %7s  %s\n", "AREA", "CURRENT", "MIN", "MAX", "GROWTH", "RATING")
	for _, a := range ds.Areas {
		lo, hi := a.Range()
		fmt.Printf("%-16s %8.0f %8.0f %8.0f %6.1f%%  %s\n",
			a.Name, a.Current(), lo, hi, a.Growth, strings.Repeat("*", a.Rating()))
	}
	return nil
}

func cmdConfig(cfg *config.Config) error {
	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

func cmdSample() error {
	data, err := dataset.Sample().Marshal()
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
