// SPDX-License-Identifier: EPL-2.0

// Command phonostl cuts an audio file into a printable record.
//
// Usage:
//
//	phonostl [options] <input.{wav,aiff,mp3,ogg}>
//
// The mesh is written next to the input with an .stl extension unless -o is
// given. Settings come from phonostl.yaml (current directory, then the user
// config directory) and are overridden by flags.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/ik5/phonostl"
	"github.com/ik5/phonostl/internal/config"
	"github.com/ik5/phonostl/internal/logger"
	"github.com/ik5/phonostl/record"
	"github.com/ik5/phonostl/stl"
)

func main() {
	err := run(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func usage(flags *config.Flags, w io.Writer) {
	fmt.Fprintf(w, "Usage: phonostl [options] <input.{wav,aiff,mp3,ogg}>\n\n")
	fmt.Fprintf(w, "Converts an audio file into a 3-D printable record (STL).\n\n")
	fmt.Fprintf(w, "Options:\n")
	flags.Usage()
}

func run(args []string, stderr io.Writer) error {
	flags := config.NewFlags("phonostl", stderr)
	if err := flags.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(flags)
	if err != nil {
		return err
	}

	if path := flags.WriteConfigPath(); path != "" {
		if err := cfg.SaveTo(path); err != nil {
			return fmt.Errorf("write config: %w", err)
		}
		fmt.Fprintf(stderr, "config written to %s\n", path)
		return nil
	}

	if len(flags.Args()) != 1 {
		usage(flags, stderr)
		return errors.New("expected exactly one input file")
	}
	input := flags.Args()[0]

	logOpts := logger.Options{Level: cfg.Logging.Level, Console: stderr}
	if cfg.Logging.LogFile != "" {
		logOpts.File = logger.DefaultFileConfig(cfg.Logging.LogFile)
	}
	log, closeLog, err := logger.New(logOpts)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	return cut(cfg, input, log)
}

func cut(cfg *config.Config, input string, log *zap.Logger) error {
	dec, err := phonostl.DefaultRegistry().ForPath(input)
	if err != nil {
		return err
	}

	f, err := os.Open(input)
	if err != nil {
		return err
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return fmt.Errorf("decode %s: %w", input, err)
	}
	defer src.Close()

	log.Info("decoding audio",
		zap.String("input", input),
		zap.Int("sample_rate", src.SampleRate()),
		zap.Int("channels", src.Channels()),
	)

	mode, channel, err := cfg.ChannelMode()
	if err != nil {
		return err
	}
	wave, err := phonostl.LoadSamples(src, cfg.Record, phonostl.LoadOptions{
		Mode:     mode,
		Channel:  channel,
		Resample: cfg.Audio.Resample,
	})
	if err != nil {
		return err
	}

	params := cfg.Record
	params.SamplingRate = float64(wave.SampleRate)
	log.Info("audio loaded",
		zap.Int("samples", len(wave.Samples)),
		zap.Duration("duration", wave.Duration()),
		zap.Float64("capacity_seconds", params.Capacity()),
	)

	if cfg.Output.ExportWAV != "" {
		if err := exportWAV(cfg.Output.ExportWAV, wave); err != nil {
			return err
		}
		log.Info("processed audio written", zap.String("path", cfg.Output.ExportWAV))
	}

	m, stats, err := phonostl.Generate(wave.Samples, params, record.WithLogger(log))
	if err != nil {
		return err
	}

	out := cfg.Output.Path
	if out == "" {
		out = strings.TrimSuffix(input, filepath.Ext(input)) + ".stl"
	}
	if err := writeMesh(out, cfg, m); err != nil {
		return err
	}

	log.Info("stl written",
		zap.String("path", out),
		zap.Stringer("format", cfg.Output.Format),
		zap.Int("faces", stats.Faces),
	)
	return nil
}

func exportWAV(path string, wave phonostl.Waveform) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := wave.WriteWAV(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeMesh(path string, cfg *config.Config, m stl.Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	enc := stl.Encoder{Format: cfg.Output.Format, Name: cfg.Output.Name, Scale: cfg.Scale()}
	if err := enc.Encode(f, m); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
