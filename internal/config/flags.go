// SPDX-License-Identifier: EPL-2.0

package config

import (
	"flag"
	"io"

	"github.com/ik5/phonostl/stl"
)

// Flags are the command line overrides. Only flags that were given on the
// command line replace file values.
type Flags struct {
	fs *flag.FlagSet

	config      string
	writeConfig string
	debug       bool
	output      string
	format      string
	units       string
	channel     string
	exportWAV   string
	noResample  bool
	rpm         float64
	downsample  float64
	diameter    float64
	logFile     string
}

// NewFlags registers every flag on a new FlagSet called name. Usage and
// errors go to out.
func NewFlags(name string, out io.Writer) *Flags {
	f := &Flags{fs: flag.NewFlagSet(name, flag.ContinueOnError)}
	f.fs.SetOutput(out)

	f.fs.StringVar(&f.config, "config", "", "Path to config file")
	f.fs.StringVar(&f.writeConfig, "write-config", "", "Write the effective config to this path and exit")
	f.fs.BoolVar(&f.debug, "debug", false, "Enable debug logging")
	f.fs.StringVar(&f.output, "o", "", "Output STL path")
	f.fs.StringVar(&f.format, "format", "", "STL flavour: binary or ascii")
	f.fs.StringVar(&f.units, "units", "", "STL units: in or mm")
	f.fs.StringVar(&f.channel, "channel", "", "Channel to cut: mix, left or right")
	f.fs.StringVar(&f.exportWAV, "export-wav", "", "Also write the processed mono audio to this WAV path")
	f.fs.BoolVar(&f.noResample, "no-resample", false, "Keep the input sample rate")
	f.fs.Float64Var(&f.rpm, "rpm", 0, "Turntable speed")
	f.fs.Float64Var(&f.downsample, "downsample", 0, "Audio samples per groove step")
	f.fs.Float64Var(&f.diameter, "diameter", 0, "Record diameter in inches")
	f.fs.StringVar(&f.logFile, "log-file", "", "Also log to this rotating file")

	return f
}

// Parse parses args, not including the program name.
func (f *Flags) Parse(args []string) error {
	if err := f.fs.Parse(args); err != nil {
		return err
	}
	if f.format != "" {
		if _, err := stl.ParseFormat(f.format); err != nil {
			return err
		}
	}
	return nil
}

// Args returns the positional arguments.
func (f *Flags) Args() []string { return f.fs.Args() }

// Usage prints the flag defaults.
func (f *Flags) Usage() { f.fs.PrintDefaults() }

// ConfigPath is the explicit --config path, if any.
func (f *Flags) ConfigPath() string { return f.config }

// WriteConfigPath is the --write-config path, if any.
func (f *Flags) WriteConfigPath() string { return f.writeConfig }

// apply copies the flags the user set over cfg.
func (f *Flags) apply(cfg *Config) {
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "debug":
			if f.debug {
				cfg.Logging.Level = "debug"
			}
		case "o":
			cfg.Output.Path = f.output
		case "format":
			if format, err := stl.ParseFormat(f.format); err == nil {
				cfg.Output.Format = format
			}
		case "units":
			cfg.Output.Units = f.units
		case "channel":
			cfg.Audio.Channel = f.channel
		case "export-wav":
			cfg.Output.ExportWAV = f.exportWAV
		case "no-resample":
			cfg.Audio.Resample = !f.noResample
		case "rpm":
			cfg.Record.RPM = f.rpm
		case "downsample":
			cfg.Record.DownsampleFactor = f.downsample
		case "diameter":
			cfg.Record.Diameter = f.diameter
		case "log-file":
			cfg.Logging.LogFile = f.logFile
		}
	})
}
