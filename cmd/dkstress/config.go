package main

import (
	"fmt"

	"github.com/Baedrick/dk-go/internal/stress"
	"github.com/BurntSushi/toml"
)

// dkstress config.toml key mapping to run settings.
type fileConfig struct {
	Seed       uint64        `toml:"seed"`
	Iterations int           `toml:"iterations"`
	Capacity   int           `toml:"capacity"`
	KeySpace   uint32        `toml:"key_space"`
	Structure  string        `toml:"structure"`
	LogLevel   string        `toml:"log_level"`
	Weights    weightsConfig `toml:"weights"`
}

type weightsConfig struct {
	Push    int `toml:"push"`
	Pop     int `toml:"pop"`
	Insert  int `toml:"insert"`
	Erase   int `toml:"erase"`
	Resize  int `toml:"resize"`
	Clear   int `toml:"clear"`
	Swap    int `toml:"swap"`
	Replace int `toml:"replace"`
	Delete  int `toml:"delete"`
}

type runSettings struct {
	stress.RunConfig
	Structure string // "array", "map" or "all"
	LogLevel  string
}

func defaultRunSettings() runSettings {
	return runSettings{
		RunConfig: stress.RunConfig{
			Seed:       1,
			Iterations: stress.DEFAULT_ITERATION_COUNT,
			Capacity:   32,
			KeySpace:   64,
			Weights:    stress.DefaultWeights(),
		},
		Structure: "all",
		LogLevel:  "info",
	}
}

// dkstress loader for TOML config with default overlay.
func loadRunSettings(path string) (runSettings, error) {
	settings := defaultRunSettings()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return runSettings{}, fmt.Errorf("load stress config: %w", err)
	}

	if meta.IsDefined("seed") {
		settings.Seed = raw.Seed
	}
	if meta.IsDefined("iterations") {
		settings.Iterations = raw.Iterations
	}
	if meta.IsDefined("capacity") {
		settings.Capacity = raw.Capacity
	}
	if meta.IsDefined("key_space") {
		settings.KeySpace = raw.KeySpace
	}
	if meta.IsDefined("structure") {
		settings.Structure = raw.Structure
	}
	if meta.IsDefined("log_level") {
		settings.LogLevel = raw.LogLevel
	}
	if meta.IsDefined("weights", "push") {
		settings.Weights.Push = raw.Weights.Push
	}
	if meta.IsDefined("weights", "pop") {
		settings.Weights.Pop = raw.Weights.Pop
	}
	if meta.IsDefined("weights", "insert") {
		settings.Weights.Insert = raw.Weights.Insert
	}
	if meta.IsDefined("weights", "erase") {
		settings.Weights.Erase = raw.Weights.Erase
	}
	if meta.IsDefined("weights", "resize") {
		settings.Weights.Resize = raw.Weights.Resize
	}
	if meta.IsDefined("weights", "clear") {
		settings.Weights.Clear = raw.Weights.Clear
	}
	if meta.IsDefined("weights", "swap") {
		settings.Weights.Swap = raw.Weights.Swap
	}
	if meta.IsDefined("weights", "replace") {
		settings.Weights.Replace = raw.Weights.Replace
	}
	if meta.IsDefined("weights", "delete") {
		settings.Weights.Delete = raw.Weights.Delete
	}

	if settings.Structure != "all" && settings.Structure != "array" && settings.Structure != "map" {
		return runSettings{}, fmt.Errorf("load stress config: unknown structure %q", settings.Structure)
	}
	return settings, nil
}
