package probe

import (
	"runtime"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// DefaultBatchSize is the number of rays a worker traces per task
const DefaultBatchSize = 1024

// Config controls a probe run
type Config struct {
	Rays      int    // Total rays to trace
	Workers   int    // Worker goroutines; zero means one per CPU
	Seed      uint64 // Seeds ray generation and per-worker samplers
	BatchSize int    // Rays per task; zero means DefaultBatchSize
}

// Validate reports every problem with the config at once
func (c Config) Validate() error {
	var err error
	if c.Rays <= 0 {
		err = multierr.Append(err, errors.Errorf("rays must be positive, got %d", c.Rays))
	}
	if c.Workers < 0 {
		err = multierr.Append(err, errors.Errorf("workers must not be negative, got %d", c.Workers))
	}
	if c.BatchSize < 0 {
		err = multierr.Append(err, errors.Errorf("batch size must not be negative, got %d", c.BatchSize))
	}
	return err
}

// withDefaults fills in zero values
func (c Config) withDefaults() Config {
	if c.Workers == 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.BatchSize == 0 {
		c.BatchSize = DefaultBatchSize
	}
	return c
}
