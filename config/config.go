// Package config reads runtime settings from SHRINK_* environment
// variables. Flags parsed by cmd override these.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Version of the tool
const Version = "0.1.2"

// Settings are the tunables of one run. Encoding quality and sharpen
// strength are deliberately absent: the pipeline is fixed at quality 70
// with one filter setup.
type Settings struct {
	Bound   uint   `envconfig:"BOUND" default:"1280"`
	Workers int    `envconfig:"WORKERS"`
	OutName string `envconfig:"OUT_NAME" default:"compressed"`
	Naming  string `envconfig:"NAMING" default:"subdir"`
	Sharpen bool   `envconfig:"SHARPEN" default:"true"`
	NoPause bool   `envconfig:"NO_PAUSE"`
	Debug   bool   `envconfig:"DEBUG"`
}

var current Settings

// Load processes the environment into the package-level settings.
func Load() error {
	var s Settings
	if err := envconfig.Process("shrink", &s); err != nil {
		return err
	}
	if err := s.Validate(); err != nil {
		return err
	}
	current = s
	return nil
}

// Validate rejects values the pipeline cannot run with.
func (s Settings) Validate() error {
	if s.Bound == 0 {
		return fmt.Errorf("bound must be positive")
	}
	if s.Workers < 0 {
		return fmt.Errorf("workers must not be negative")
	}
	if s.Naming != "subdir" && s.Naming != "prefix" {
		return fmt.Errorf("unknown naming mode %q", s.Naming)
	}
	if s.OutName == "" {
		return fmt.Errorf("empty output directory name")
	}
	return nil
}

// Current returns the loaded settings.
func Current() Settings {
	return current
}

// InDevelop reports debug mode, which switches the CLI to a development
// logger.
func InDevelop() bool {
	return current.Debug
}
