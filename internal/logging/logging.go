// Package logging builds the go-kit loggers used by the hugecalc command.
package logging

import (
	"io"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
)

// Levels lists the accepted level names, from most to least verbose.
var Levels = []string{"debug", "info", "warn", "error"}

// ErrUnknownLevel is returned for a level name not listed in [Levels].
var ErrUnknownLevel = errors.New("unknown log level")

// ParseLevel converts a level name into a filter option.
func ParseLevel(name string) (level.Option, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return level.AllowDebug(), nil
	case "info":
		return level.AllowInfo(), nil
	case "warn", "warning":
		return level.AllowWarn(), nil
	case "error":
		return level.AllowError(), nil
	}
	return nil, errors.Wrapf(ErrUnknownLevel, "%q (want one of %s)", name, strings.Join(Levels, ", "))
}

// New returns a logfmt logger writing to w that drops entries below the
// named level.
func New(w io.Writer, name string) (log.Logger, error) {
	opt, err := ParseLevel(name)
	if err != nil {
		return nil, err
	}
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = level.NewFilter(logger, opt)
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
	return logger, nil
}

// Must is like [New] but panics on an unknown level.
func Must(w io.Writer, name string) log.Logger {
	logger, err := New(w, name)
	if err != nil {
		panic(err)
	}
	return logger
}
