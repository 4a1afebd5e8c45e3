// SPDX-License-Identifier: Apache-2.0

package amf3

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Option configures a Codec using the functional-options pattern.
type Option func(*Options)

// Options holds the tunables for a Codec. The zero value is not ready for
// use; construct one through NewCodec or LoadOptionsFile, both of which
// fill in defaults.
type Options struct {
	// MaxDepth bounds the recursive encode/decode walk.
	MaxDepth int `yaml:"maxDepth"`
	// TransformEventName is the attribute name consulted on encode for a
	// per-value transform callable.
	TransformEventName string `yaml:"transformEventName"`
	// Verbose enables LogCb calls during the recursive walk.
	Verbose bool `yaml:"verbose"`

	// LogCb receives progress messages when Verbose is set, called as a
	// plain formatting callback rather than through a logging library.
	LogCb func(format string, args ...any) `yaml:"-"`
	// EncodeHook, when set, is invoked for every value before
	// classification; its return value (if ok) replaces the value to be
	// encoded, implementing a per-value transform.
	EncodeHook func(v any) (any, bool) `yaml:"-"`
	// DecodeHook, when set, is invoked after every compound value decodes;
	// its return value replaces the decoded compound.
	DecodeHook func(v any) any `yaml:"-"`
}

// defaultOptions returns the baseline Options every Codec starts from.
func defaultOptions() *Options {
	return &Options{
		MaxDepth:           defaultMaxDepth,
		TransformEventName: defaultTransformEventName,
		LogCb: func(format string, args ...any) {
			fmt.Printf(format, args...)
		},
	}
}

// WithMaxDepth overrides the recursion-depth guard.
func WithMaxDepth(n int) Option {
	return func(o *Options) { o.MaxDepth = n }
}

// WithTransformEventName overrides the encode-time transform attribute
// name (default "__toAMF3").
func WithTransformEventName(name string) Option {
	return func(o *Options) { o.TransformEventName = name }
}

// WithVerbose enables progress logging via LogCb.
func WithVerbose() Option {
	return func(o *Options) { o.Verbose = true }
}

// WithLogCb installs a custom log callback.
func WithLogCb(cb func(format string, args ...any)) Option {
	return func(o *Options) { o.LogCb = cb }
}

// WithDecodeHook installs a decode-time transform hook.
func WithDecodeHook(hook func(v any) any) Option {
	return func(o *Options) { o.DecodeHook = hook }
}

// WithEncodeHook installs an encode-time transform hook, consulted before
// TransformEventName attribute lookup on every value.
func WithEncodeHook(hook func(v any) (any, bool)) Option {
	return func(o *Options) { o.EncodeHook = hook }
}

// fileOptions is the YAML document shape read by LoadOptionsFile. It
// mirrors Options' exported scalar fields only — callbacks cannot be
// expressed in YAML and are left at their defaults.
type fileOptions struct {
	MaxDepth           int    `yaml:"maxDepth"`
	TransformEventName string `yaml:"transformEventName"`
	Verbose            bool   `yaml:"verbose"`
}

// LoadOptionsFile reads a YAML configuration file into an Options value,
// starting from defaultOptions(): deployable codec configuration (max
// recursion depth, transform event name, verbosity) for hosts that want
// it external to their binary.
//
// Example file:
//
//	maxDepth: 500
//	transformEventName: toAMF3
//	verbose: false
func LoadOptionsFile(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("amf3: load options: %w", err)
	}
	var fo fileOptions
	if err := yaml.Unmarshal(data, &fo); err != nil {
		return nil, fmt.Errorf("amf3: load options: %w", err)
	}
	opts := defaultOptions()
	if fo.MaxDepth > 0 {
		opts.MaxDepth = fo.MaxDepth
	}
	if fo.TransformEventName != "" {
		opts.TransformEventName = fo.TransformEventName
	}
	opts.Verbose = fo.Verbose
	return opts, nil
}
