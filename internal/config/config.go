// Package config holds the run configuration: defaults, YAML file
// loading and startup validation.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/bits"
	"os"
	"strconv"
	"time"

	"github.com/pbnjay/memory"
	"gopkg.in/yaml.v3"

	"github.com/randomizedcoder/primecount/internal/tick"
)

const (
	DefaultCapacity  = 10000
	DefaultBatchSize = 10000
	DefaultWorkers   = 4
)

var (
	ErrInvalidCapacity    = errors.New("config: capacity must be positive")
	ErrInvalidBatchSize   = errors.New("config: batch size must be positive")
	ErrInvalidWorkers     = errors.New("config: worker count must be positive")
	ErrInvalidProgress    = errors.New("config: progress settings must not be negative")
	ErrInvalidLogLevel    = errors.New("config: unknown log level")
	ErrInsufficientMemory = errors.New("config: not enough free memory for queue and batch buffers")
)

// Config is the full set of run options.
type Config struct {
	Capacity  int  `yaml:"capacity"`
	BatchSize int  `yaml:"batch_size"`
	Workers   int  `yaml:"workers"`
	Stats     bool `yaml:"stats"`

	// ProgressInterval of 0 disables progress logging.
	ProgressInterval time.Duration `yaml:"progress_interval"`
	ProgressEvery    int           `yaml:"progress_every"`

	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		Capacity:      DefaultCapacity,
		BatchSize:     DefaultBatchSize,
		Workers:       DefaultWorkers,
		ProgressEvery: tick.DefaultEvery,
		LogLevel:      "info",
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file
// keep their default value.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks sizes and that the buffers fit in free memory.
func (c Config) Validate() error {
	if c.Capacity < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidCapacity, c.Capacity)
	}
	if c.BatchSize < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidBatchSize, c.BatchSize)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkers, c.Workers)
	}
	if c.ProgressInterval < 0 || c.ProgressEvery < 0 {
		return ErrInvalidProgress
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return c.checkMemory(memory.FreeMemory())
}

// BufferBytes estimates the memory held by the queue ring and every
// worker's batch buffer. A batch buffer never exceeds the capacity, since
// no drain can return more items than the queue holds.
//
// Sizes that do not fit in a uint64 return ErrInsufficientMemory.
func (c Config) BufferBytes() (uint64, error) {
	slot := uint64(strconv.IntSize / 8)
	batch := uint64(min(c.BatchSize, c.Capacity))

	hi, perWorker := bits.Mul64(uint64(c.Workers), batch)
	if hi != 0 {
		return 0, fmt.Errorf("%w: worker buffers overflow", ErrInsufficientMemory)
	}
	slots, carry := bits.Add64(uint64(c.Capacity), perWorker, 0)
	if carry != 0 {
		return 0, fmt.Errorf("%w: buffers overflow", ErrInsufficientMemory)
	}
	hi, need := bits.Mul64(slot, slots)
	if hi != 0 {
		return 0, fmt.Errorf("%w: %d slots overflow", ErrInsufficientMemory, slots)
	}
	return need, nil
}

// checkMemory fails when free is known (non-zero) and too small.
func (c Config) checkMemory(free uint64) error {
	need, err := c.BufferBytes()
	if err != nil {
		return err
	}
	if free > 0 && need > free {
		return fmt.Errorf("%w: need %d bytes, %d free", ErrInsufficientMemory, need, free)
	}
	return nil
}

// Level parses LogLevel into a slog.Level. An empty LogLevel is info.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return l, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}
	return l, nil
}
