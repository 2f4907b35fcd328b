package scene

import (
	"math"
	"math/rand/v2"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/multierr"

	"github.com/df07/go-hittable/pkg/material"
)

// Config selects and parameterizes a built-in scene
type Config struct {
	Name    string  // Registered scene name
	Seed    uint64  // Seed for scenes with random content
	Density float64 // Smoke density; zero means the scene default
	Texture string  // Image file for the earth scene; empty uses a UV test pattern
}

// Info describes a registered scene
type Info struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Description string `json:"description"`
	Random      bool   `json:"random"` // Content depends on Config.Seed
}

type builder struct {
	info  Info
	build func(cfg Config, rng *rand.Rand) (*Scene, error)
}

var registry = map[string]builder{}

func register(name, description string, random bool, build func(Config, *rand.Rand) (*Scene, error)) {
	registry[name] = builder{
		info: Info{
			Name:        name,
			DisplayName: titleCase(name),
			Description: description,
			Random:      random,
		},
		build: build,
	}
}

func init() {
	register("random-spheres", "Checkered ground with a grid of small moving and static spheres", true,
		func(_ Config, rng *rand.Rand) (*Scene, error) {
			return NewRandomSpheres(rng), nil
		})
	register("two-spheres", "Two large checkered spheres", false,
		func(Config, *rand.Rand) (*Scene, error) {
			return NewTwoSpheres(), nil
		})
	register("earth", "A single image-textured globe", false,
		func(cfg Config, _ *rand.Rand) (*Scene, error) {
			if cfg.Texture == "" {
				return NewEarth(material.NewUVTexture(256, 128)), nil
			}
			tex, err := material.LoadImageTexture(cfg.Texture)
			if err != nil {
				return nil, err
			}
			return NewEarth(tex), nil
		})
	register("two-perlin-spheres", "Marble ground with a marble sphere resting on it", true,
		func(_ Config, rng *rand.Rand) (*Scene, error) {
			return NewTwoPerlinSpheres(rng), nil
		})
	register("cornell-smoke", "Cornell box with rotated smoke blocks", false,
		func(cfg Config, _ *rand.Rand) (*Scene, error) {
			density := cfg.Density
			if density == 0 {
				density = DefaultSmokeDensity
			}
			return NewCornellSmoke(density)
		})
}

// Validate reports every problem with the config at once
func (c Config) Validate() error {
	var err error
	if c.Name == "" {
		err = multierr.Append(err, errors.New("scene name is required"))
	} else if _, ok := registry[c.Name]; !ok {
		err = multierr.Append(err, errors.Errorf("unknown scene %q (known: %s)", c.Name, strings.Join(Names(), ", ")))
	}
	if c.Density < 0 || math.IsNaN(c.Density) || math.IsInf(c.Density, 0) {
		err = multierr.Append(err, errors.Errorf("density must be a non-negative finite number, got %v", c.Density))
	}
	if c.Texture != "" && c.Name != "earth" {
		err = multierr.Append(err, errors.Errorf("scene %q takes no texture", c.Name))
	}
	return err
}

// Build validates cfg and constructs the named scene. Scenes with random
// content draw from a generator seeded with cfg.Seed.
func Build(cfg Config) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid scene config")
	}
	rng := rand.New(rand.NewPCG(cfg.Seed, 0))
	s, err := registry[cfg.Name].build(cfg, rng)
	if err != nil {
		return nil, errors.Wrapf(err, "building scene %q", cfg.Name)
	}
	return s, nil
}

// Names returns the registered scene names, sorted
func Names() []string {
	names := lo.Keys(registry)
	sort.Strings(names)
	return names
}

// List returns info for every registered scene, sorted by name
func List() []Info {
	return lo.Map(Names(), func(name string, _ int) Info {
		return registry[name].info
	})
}

// titleCase turns a scene name like "cornell-smoke" into "Cornell Smoke"
func titleCase(s string) string {
	// Replace hyphens and underscores with spaces
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	// Title case each word
	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
