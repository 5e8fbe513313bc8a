package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Baedrick/dk-go/internal/stress"
	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "dkstress: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath = flag.String("config", "", "path to a TOML config file")
		seed       = flag.Uint64("seed", 0, "PRNG seed (overrides config)")
		iterations = flag.Int("iterations", 0, "operation count per structure (overrides config)")
		capacity   = flag.Int("capacity", 0, "FixedArray capacity (overrides config)")
		structure  = flag.String("structure", "", "structure to soak: array, map or all (overrides config)")
		logLevel   = flag.String("log-level", "", "zerolog level: debug, info, warn, error (overrides config)")
	)
	flag.Parse()

	settings := defaultRunSettings()
	if *configPath != "" {
		loaded, err := loadRunSettings(*configPath)
		if err != nil {
			return err
		}
		settings = loaded
	}

	// Flags win over the config file.
	if *seed != 0 {
		settings.Seed = *seed
	}
	if *iterations > 0 {
		settings.Iterations = *iterations
	}
	if *capacity > 0 {
		settings.Capacity = *capacity
	}
	if *structure != "" {
		settings.Structure = *structure
	}
	if *logLevel != "" {
		settings.LogLevel = *logLevel
	}

	level, err := zerolog.ParseLevel(settings.LogLevel)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	switch settings.Structure {
	case "array":
		return stress.RunFixedArray(settings.RunConfig, logger)
	case "map":
		return stress.RunFlatMap(settings.RunConfig, logger)
	case "all":
		if err := stress.RunFixedArray(settings.RunConfig, logger); err != nil {
			return err
		}
		return stress.RunFlatMap(settings.RunConfig, logger)
	default:
		return fmt.Errorf("unknown structure %q", settings.Structure)
	}
}
