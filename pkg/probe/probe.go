// Package probe measures a Hittable by tracing batches of random rays through
// it concurrently, optionally checking every answer against a reference.
package probe

import (
	"context"
	"math"
	"math/rand/v2"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/df07/go-hittable/pkg/core"
	"github.com/df07/go-hittable/pkg/material"
)

// samplerStreamBase keeps worker sampler streams clear of batch ray streams
const samplerStreamBase = 1 << 40

// rayInterval is the parametric range every probe ray is tested over
var rayInterval = core.Interval{Min: 0.001, Max: math.Inf(1)}

// Result summarizes a probe run
type Result struct {
	Rays        int
	Hits        int
	HitFraction float64
	Mismatches  int // Rays where target and reference disagreed; zero without a reference
	MeanT       float64
	StdDevT     float64
	Kinds       map[core.Kind]int // Nodes of each kind in the target hierarchy
	Materials   map[string]int    // Hits per material name
	Workers     int
	Elapsed     time.Duration
}

// Probe traces rays against a target
type Probe struct {
	target    core.Hittable
	reference core.Hittable
	camera    *cameraEmitter
	logger    core.Logger
}

// Option configures a Probe
type Option func(*Probe)

// WithReference checks every target answer against reference, which should
// describe the same geometry
func WithReference(reference core.Hittable) Option {
	return func(p *Probe) {
		p.reference = reference
	}
}

// WithCamera shoots every ray from lookFrom through a square window centered
// on lookAt and spanning vfov degrees, instead of from all around the target
func WithCamera(lookFrom, lookAt core.Vec3, vfov float64) Option {
	return func(p *Probe) {
		camera := newCameraEmitter(lookFrom, lookAt, vfov)
		p.camera = &camera
	}
}

// WithLogger reports progress to logger
func WithLogger(logger core.Logger) Option {
	return func(p *Probe) {
		p.logger = logger
	}
}

// New creates a probe for target
func New(target core.Hittable, opts ...Option) *Probe {
	p := &Probe{target: target, logger: core.NopLogger{}}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// batch is one unit of work. Its rays come from a stream keyed by id, so the
// ray set does not depend on scheduling.
type batch struct {
	id    int
	count int
}

// batchResult is written only by the worker that ran the batch
type batchResult struct {
	ts         []float64
	materials  map[string]int
	mismatches int
}

// Run traces cfg.Rays rays with cfg.Workers goroutines. Each worker owns its
// sampler; nothing random is shared between goroutines.
func (p *Probe) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid probe config")
	}
	cfg = cfg.withDefaults()

	start := time.Now()
	var emit emitter = newBoxEmitter(p.target.BoundingBox())
	if p.camera != nil {
		emit = *p.camera
	}

	numBatches := (cfg.Rays + cfg.BatchSize - 1) / cfg.BatchSize
	results := make([]batchResult, numBatches)
	tasks := make(chan batch, numBatches)
	for i := 0; i < numBatches; i++ {
		count := cfg.BatchSize
		if rest := cfg.Rays - i*cfg.BatchSize; rest < count {
			count = rest
		}
		tasks <- batch{id: i, count: count}
	}
	close(tasks)

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < cfg.Workers; w++ {
		workerID := w
		g.Go(func() error {
			sampler := core.NewSeededSampler(cfg.Seed, samplerStreamBase+uint64(workerID))
			done := 0
			for task := range tasks {
				if err := ctx.Err(); err != nil {
					return err
				}
				rng := rand.New(rand.NewPCG(cfg.Seed, uint64(task.id)))
				results[task.id] = p.trace(emit, rng, sampler, task.count)
				done++
			}
			p.logger.Debugf("probe worker %d finished %d batches", workerID, done)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "probe interrupted")
	}

	res := p.summarize(cfg, results)
	res.Elapsed = time.Since(start)
	p.logger.Infof("probed %d rays with %d workers in %v: %d hits, %d mismatches",
		res.Rays, res.Workers, res.Elapsed, res.Hits, res.Mismatches)
	return res, nil
}

func (p *Probe) trace(emit emitter, rng *rand.Rand, sampler core.Sampler, count int) batchResult {
	out := batchResult{materials: map[string]int{}}
	for i := 0; i < count; i++ {
		ray := emit.ray(rng)

		var rec core.HitRecord
		if p.target.Hit(ray, rayInterval, sampler, &rec) {
			out.ts = append(out.ts, rec.T)
			out.materials[material.Name(rec.Material)]++
		}

		if p.reference != nil && !agree(p.target, p.reference, ray) {
			out.mismatches++
		}
	}
	return out
}

// agree compares target and reference on one ray. Both use the same fixed
// sampler so media answer identically regardless of traversal order.
func agree(target, reference core.Hittable, ray core.Ray) bool {
	const fixed = core.ConstantSampler(0.5)

	var a, b core.HitRecord
	hitA := target.Hit(ray, rayInterval, fixed, &a)
	hitB := reference.Hit(ray, rayInterval, fixed, &b)
	if hitA != hitB {
		return false
	}
	return !hitA || math.Abs(a.T-b.T) <= 1e-9*math.Max(1, math.Abs(b.T))
}

func (p *Probe) summarize(cfg Config, results []batchResult) *Result {
	ts := lo.FlatMap(results, func(r batchResult, _ int) []float64 { return r.ts })

	res := &Result{
		Rays:       cfg.Rays,
		Hits:       len(ts),
		Mismatches: lo.SumBy(results, func(r batchResult) int { return r.mismatches }),
		Kinds:      CountKinds(p.target),
		Materials:  map[string]int{},
		Workers:    cfg.Workers,
	}
	res.HitFraction = float64(res.Hits) / float64(res.Rays)
	for _, r := range results {
		for name, n := range r.materials {
			res.Materials[name] += n
		}
	}

	switch len(ts) {
	case 0:
	case 1:
		res.MeanT = ts[0]
	default:
		res.MeanT, res.StdDevT = stat.MeanStdDev(ts, nil)
	}
	return res
}

// CountKinds returns how many nodes of each kind make up h, including h itself
// and every container below it
func CountKinds(h core.Hittable) map[core.Kind]int {
	return lo.CountValuesBy(flatten(h), func(node core.Hittable) core.Kind {
		return node.Kind()
	})
}

func flatten(h core.Hittable) []core.Hittable {
	nodes := []core.Hittable{h}
	if container, ok := h.(core.Container); ok {
		for _, child := range container.Children() {
			nodes = append(nodes, flatten(child)...)
		}
	}
	return nodes
}
