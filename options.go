package memvfs

import (
	"github.com/mwantia/memvfs/host"
	"github.com/mwantia/memvfs/log"
)

type Options struct {
	Name          string
	LogLevel      log.LogLevel
	LogFile       string
	NoTerminalLog bool
	Sink          host.LogSink
}

type Option func(*Options) error

func newDefaultOptions() *Options {
	return &Options{
		Name:     DefaultName,
		LogLevel: log.Info,
	}
}

// WithName overrides the name the VFS identifies itself with in the
// registration table and its diagnostics.
func WithName(name string) Option {
	return func(opts *Options) error {
		opts.Name = name
		return nil
	}
}

func WithLogLevel(logLevel log.LogLevel) Option {
	return func(opts *Options) error {
		opts.LogLevel = logLevel
		return nil
	}
}

func WithLogFile(logFile string) Option {
	return func(opts *Options) error {
		opts.LogFile = logFile
		return nil
	}
}

func WithoutTerminalLog() Option {
	return func(opts *Options) error {
		opts.NoTerminalLog = true
		return nil
	}
}

// WithLogSink forwards every diagnostic line into the host's logging
// sink, mapped onto the host severity codes.
func WithLogSink(sink host.LogSink) Option {
	return func(opts *Options) error {
		opts.Sink = sink
		return nil
	}
}
