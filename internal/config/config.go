// SPDX-License-Identifier: EPL-2.0

// Package config loads phonostl settings from YAML and the command line.
package config

import (
	"errors"
	"fmt"

	"go.uber.org/zap/zapcore"

	"github.com/ik5/phonostl/audio"
	"github.com/ik5/phonostl/record"
	"github.com/ik5/phonostl/stl"
)

const mmPerInch = 25.4

// ErrInvalid wraps every setting Validate rejects.
var ErrInvalid = errors.New("invalid configuration")

// Config holds all settings.
type Config struct {
	Record  record.Params `yaml:"record"`
	Audio   AudioConfig   `yaml:"audio"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// AudioConfig controls how input audio becomes the groove waveform.
type AudioConfig struct {
	Channel  string `yaml:"channel"`  // mix, left or right
	Resample bool   `yaml:"resample"` // convert input to record.sampling_rate
}

// OutputConfig holds mesh and preview output settings.
type OutputConfig struct {
	Format stl.Format `yaml:"format"`
	// Path of the STL file. Empty means the input path with an .stl extension.
	Path string `yaml:"path"`
	// Units of the STL coordinates: in or mm.
	Units     string `yaml:"units"`
	Name      string `yaml:"name"`
	ExportWAV string `yaml:"export_wav"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config that reproduces a 12" 33⅓ rpm record.
func Default() *Config {
	return &Config{
		Record: record.DefaultParams(),
		Audio: AudioConfig{
			Channel:  "left",
			Resample: true,
		},
		Output: OutputConfig{
			Format: stl.Binary,
			Units:  "in",
			Name:   "phonostl record",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// ChannelMode resolves Audio.Channel.
func (c *Config) ChannelMode() (audio.ChannelMode, int, error) {
	return audio.ParseChannelMode(c.Audio.Channel)
}

// Scale converts record inches to output units.
func (c *Config) Scale() float64 {
	if c.Output.Units == "mm" {
		return mmPerInch
	}
	return 1
}

// Validate checks every section and reports all problems at once.
func (c *Config) Validate() error {
	var errs []error

	if err := c.Record.Validate(); err != nil {
		errs = append(errs, err)
	}
	if _, _, err := c.ChannelMode(); err != nil {
		errs = append(errs, err)
	}
	switch c.Output.Units {
	case "in", "mm":
	default:
		errs = append(errs, fmt.Errorf("output units %q: want in or mm", c.Output.Units))
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, fmt.Errorf("logging level: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}
