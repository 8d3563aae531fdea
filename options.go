package cfgx

import (
	"os"
)

// DefaultPriority returns the order sources are consulted in when no priority is given.
func DefaultPriority() []string {
	return []string{SourceEnvVariable, SourceEnvFile, SourceConfigFile}
}

type options struct {
	Application string
	Section     string
	Home        string
	HomeSet     bool
	Priority    []string
	FallThrough bool
	Sources     []Source
	Logger      Logger
}

// Option configures lookup behavior.
type Option func(*options)

// WithApplication sets the application name, DefaultName when empty.
func WithApplication(name string) Option {
	return func(o *options) {
		o.Application = name
	}
}

// WithSection sets the section name, DefaultName when empty.
func WithSection(name string) Option {
	return func(o *options) {
		o.Section = name
	}
}

// WithHome overrides the base directory for user-wide configuration.
// When not set, the current user's home directory is resolved on every lookup.
func WithHome(dir string) Option {
	return func(o *options) {
		o.Home = dir
		o.HomeSet = true
	}
}

// WithPriority sets the names of sources to consult, in order.
// An empty list restores DefaultPriority.
func WithPriority(names ...string) Option {
	return func(o *options) {
		if len(names) == 0 {
			o.Priority = nil
			return
		}
		o.Priority = append([]string(nil), names...)
	}
}

// WithFallThroughOnFailure controls what happens when a source does not produce the item.
// By default the lookup stops at the first source that fails and reports its failures.
// When enabled, the next source in the priority list is tried and failures of all
// sources are reported together.
func WithFallThroughOnFailure(enabled bool) Option {
	return func(o *options) {
		o.FallThrough = enabled
	}
}

// WithSources registers additional sources by their names.
// A source with the name of a built-in one replaces it.
func WithSources(sources ...Source) Option {
	return func(o *options) {
		for _, src := range sources {
			if src != nil {
				o.Sources = append(o.Sources, src)
			}
		}
	}
}

// WithLogger sets the logger used to trace source attempts.
func WithLogger(l Logger) Option {
	return func(o *options) {
		if l == nil {
			return
		}
		o.Logger = l
	}
}

func newOptions(opts []Option) options {
	o := options{Logger: NoopLogger{}}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

func (o options) priority() []string {
	if len(o.Priority) == 0 {
		return DefaultPriority()
	}
	return o.Priority
}

// home returns the configured home directory or resolves the user's one.
func (o options) home() (string, error) {
	if o.HomeSet {
		return o.Home, nil
	}
	return os.UserHomeDir()
}

// registry returns the sources by name. homeErr is reported by the file
// based sources in place of the home directory candidate.
func (o options) registry(homeErr error) map[string]Source {
	builtin := []Source{
		EnvSource{},
		NewEnvFileSource().withHomeError(homeErr),
		NewConfigFileSource().withHomeError(homeErr),
		NewYAMLFileSource().withHomeError(homeErr),
		NewJSONFileSource().withHomeError(homeErr),
	}

	reg := make(map[string]Source, len(builtin)+len(o.Sources))
	for _, src := range builtin {
		reg[src.Name()] = src
	}
	for _, src := range o.Sources {
		reg[src.Name()] = src
	}

	return reg
}
