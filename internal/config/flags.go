package config

import "flag"

// Flags binds the run options to a FlagSet.
//
// Resolution order is defaults, then the file named by -config, then
// flags that were set explicitly on the command line. A flag left at its
// default never overrides the file.
type Flags struct {
	fs   *flag.FlagSet
	path string
	vals Config
}

// BindFlags registers the config flags on fs.
func BindFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{fs: fs, vals: Default()}

	fs.StringVar(&f.path, "config", "", "YAML config file (flags override it)")
	fs.IntVar(&f.vals.Capacity, "capacity", f.vals.Capacity, "queue capacity")
	fs.IntVar(&f.vals.BatchSize, "batch", f.vals.BatchSize, "max items per drain")
	fs.IntVar(&f.vals.Workers, "workers", f.vals.Workers, "number of workers")
	fs.BoolVar(&f.vals.Stats, "stats", f.vals.Stats, "log per-batch drain statistics")
	fs.DurationVar(&f.vals.ProgressInterval, "progress", f.vals.ProgressInterval, "producer progress log interval (0 = off)")
	fs.IntVar(&f.vals.ProgressEvery, "progress-every", f.vals.ProgressEvery, "enqueues between clock checks for progress")
	fs.StringVar(&f.vals.LogLevel, "log-level", f.vals.LogLevel, "debug, info, warn or error")
	return f
}

// Resolve builds the Config after fs has been parsed. It does not validate.
func (f *Flags) Resolve() (Config, error) {
	cfg := Default()
	if f.path != "" {
		loaded, err := Load(f.path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	// Flags the caller registered itself are left alone
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "capacity":
			cfg.Capacity = f.vals.Capacity
		case "batch":
			cfg.BatchSize = f.vals.BatchSize
		case "workers":
			cfg.Workers = f.vals.Workers
		case "stats":
			cfg.Stats = f.vals.Stats
		case "progress":
			cfg.ProgressInterval = f.vals.ProgressInterval
		case "progress-every":
			cfg.ProgressEvery = f.vals.ProgressEvery
		case "log-level":
			cfg.LogLevel = f.vals.LogLevel
		}
	})
	return cfg, nil
}
