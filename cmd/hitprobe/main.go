// Package main is the hitprobe CLI: it builds the built-in scenes, reports on
// their acceleration structures and probes them with random rays.
package main

import (
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/df07/go-hittable/internal/logging"
	"github.com/df07/go-hittable/pkg/geometry"
	"github.com/df07/go-hittable/pkg/probe"
	"github.com/df07/go-hittable/pkg/scene"
)

const (
	flagVerbose   = "verbose"
	flagScene     = "scene"
	flagSeed      = "seed"
	flagDensity   = "density"
	flagTexture   = "texture"
	flagRays      = "rays"
	flagWorkers   = "workers"
	flagBatch     = "batch"
	flagReference = "reference"
	flagCamera    = "camera"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	var logger *zap.SugaredLogger

	sceneFlags := []cli.Flag{
		&cli.StringFlag{
			Name:    flagScene,
			Aliases: []string{"s"},
			Value:   "random-spheres",
			Usage:   "scene to build (see the scenes command)",
			EnvVars: []string{"HITPROBE_SCENE"},
		},
		&cli.Uint64Flag{
			Name:    flagSeed,
			Value:   1,
			Usage:   "seed for scene content, BVH axes and probe rays",
			EnvVars: []string{"HITPROBE_SEED"},
		},
		&cli.Float64Flag{
			Name:  flagDensity,
			Usage: "smoke density for scenes with media (0 uses the scene default)",
		},
		&cli.StringFlag{
			Name:  flagTexture,
			Usage: "image `FILE` for the earth scene",
		},
	}

	return &cli.App{
		Name:  "hitprobe",
		Usage: "inspect and probe ray intersection structures",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    flagVerbose,
				Aliases: []string{"v"},
				Usage:   "enable debug logging",
			},
		},
		Before: func(c *cli.Context) error {
			if c.Bool(flagVerbose) {
				logger = logging.NewDebugLogger("hitprobe")
			} else {
				logger = logging.NewLogger("hitprobe")
			}
			return nil
		},
		After: func(c *cli.Context) error {
			if logger != nil {
				//nolint:errcheck
				logger.Sync()
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "scenes",
				Usage: "list the built-in scenes",
				Action: func(c *cli.Context) error {
					fmt.Fprintln(c.App.Writer, renderScenes(scene.List()))
					return nil
				},
			},
			{
				Name:  "stats",
				Usage: "build a scene's BVH and report its shape",
				Flags: sceneFlags,
				Action: func(c *cli.Context) error {
					s, bvh, err := buildScene(c, logger)
					if err != nil {
						return err
					}
					fmt.Fprintln(c.App.Writer, renderStats(s, bvh.Stats(), bvh.Validate()))
					return nil
				},
			},
			{
				Name:  "probe",
				Usage: "trace random rays through a scene's BVH",
				Flags: append(append([]cli.Flag{}, sceneFlags...),
					&cli.IntFlag{
						Name:    flagRays,
						Aliases: []string{"n"},
						Value:   100000,
						Usage:   "number of rays to trace",
						EnvVars: []string{"HITPROBE_RAYS"},
					},
					&cli.IntFlag{
						Name:    flagWorkers,
						Aliases: []string{"w"},
						Usage:   "worker goroutines (0 uses one per CPU)",
						EnvVars: []string{"HITPROBE_WORKERS"},
					},
					&cli.IntFlag{
						Name:  flagBatch,
						Usage: "rays per worker task (0 uses the default)",
					},
					&cli.BoolFlag{
						Name:  flagReference,
						Value: true,
						Usage: "check every ray against a linear scan of the scene",
					},
					&cli.BoolFlag{
						Name:  flagCamera,
						Usage: "shoot rays from the scene's camera instead of from all around it",
					},
				),
				Action: func(c *cli.Context) error {
					s, bvh, err := buildScene(c, logger)
					if err != nil {
						return err
					}

					opts := []probe.Option{probe.WithLogger(logger)}
					if c.Bool(flagReference) {
						opts = append(opts, probe.WithReference(s.World))
					}
					if c.Bool(flagCamera) {
						opts = append(opts, probe.WithCamera(s.Camera.LookFrom, s.Camera.LookAt, s.Camera.VFov))
					}
					cfg := probe.Config{
						Rays:      c.Int(flagRays),
						Workers:   c.Int(flagWorkers),
						Seed:      c.Uint64(flagSeed),
						BatchSize: c.Int(flagBatch),
					}

					res, err := probe.New(bvh, opts...).Run(c.Context, cfg)
					if err != nil {
						return err
					}
					fmt.Fprintln(c.App.Writer, renderProbe(s, res))
					if res.Mismatches > 0 {
						return errors.Errorf("%d rays disagreed with the linear scan", res.Mismatches)
					}
					return nil
				},
			},
		},
	}
}

// buildScene builds the scene named by the flags and its BVH
func buildScene(c *cli.Context, logger *zap.SugaredLogger) (*scene.Scene, *geometry.BVH, error) {
	cfg := scene.Config{
		Name:    c.String(flagScene),
		Seed:    c.Uint64(flagSeed),
		Density: c.Float64(flagDensity),
		Texture: c.String(flagTexture),
	}
	s, err := scene.Build(cfg)
	if err != nil {
		return nil, nil, err
	}
	logger.Debugw("built scene", "scene", s.Name, "objects", s.World.Len(), "primitives", s.PrimitiveCount())

	// A separate stream from the scene content, so changing one does not move the other
	rng := rand.New(rand.NewPCG(cfg.Seed, 1))
	bvh, err := s.BVH(rng, geometry.WithLogger(logger))
	if err != nil {
		return nil, nil, errors.Wrapf(err, "scene %q", s.Name)
	}
	return s, bvh, nil
}
