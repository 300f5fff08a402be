package main

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

type logOpts struct {
	level  string
	format string
}

func bindLogFlags(fs *pflag.FlagSet, o *logOpts) {
	fs.StringVar(&o.level, "log-level", "info", "log level: debug, info, warn, error")
	fs.StringVar(&o.format, "log-format", "text", "log format: text or json")
}

// newLogger builds the slog logger selected by o, writing to w.
func newLogger(w io.Writer, o logOpts) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(o.level)); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	hopts := &slog.HandlerOptions{Level: lvl}

	switch strings.ToLower(o.format) {
	case "text", "":
		return slog.New(slog.NewTextHandler(w, hopts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, hopts)), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrLogFormat, o.format)
	}
}

// parseFloats converts args to float64, naming the offending field on error.
func parseFloats(args []string, names []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(strings.TrimSpace(a), 64)
		if err != nil {
			name := "value"
			if i < len(names) {
				name = names[i]
			}
			return nil, fmt.Errorf("%w: %s=%q", ErrBadNumber, name, a)
		}
		out[i] = v
	}
	return out, nil
}
