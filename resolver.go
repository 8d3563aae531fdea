package cfgx

import (
	"fmt"
)

// Resolver looks up configuration items across sources in priority order.
// Options passed to NewResolver are applied before the options of each Get call,
// so per-call options take precedence.
// A Resolver holds no mutable state and can be shared between goroutines.
type Resolver struct {
	opts []Option
}

// NewResolver creates a new Resolver with the given options.
func NewResolver(opts ...Option) *Resolver {
	return &Resolver{opts: append([]Option(nil), opts...)}
}

// Get looks up item in the sources of the priority list and returns the first value found.
// Values are returned as the source produced them: strings for environment variables and
// dotenv files, parsed values for structured files.
//
// Unless fall-through is enabled, the first source which does not produce the item
// ends the lookup and its failures are returned in a *NotFoundError.
// A priority list naming an unregistered source results in an ErrUnknownSource error.
func (r *Resolver) Get(item string, opts ...Option) (any, error) {
	all := make([]Option, 0, len(r.opts)+len(opts))
	all = append(all, r.opts...)
	all = append(all, opts...)
	o := newOptions(all)

	key := Key{Application: o.Application, Section: o.Section, Item: item}.normalize()
	home, homeErr := o.home()
	if homeErr != nil {
		o.Logger.Debug("cannot resolve home directory", "error", homeErr)
		home = ""
	}

	sources := o.registry(homeErr)
	var failures []error
	for _, name := range o.priority() {
		src, ok := sources[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSource, name)
		}

		res := src.Lookup(key, home)
		if val, ok := res.Value(); ok {
			o.Logger.Debug("config item found", "source", name, "key", key.String())
			return val, nil
		}

		causes := res.Failures()
		o.Logger.Debug("config item not found in source",
			"source", name,
			"key", key.String(),
			"failures", len(causes),
		)
		failures = append(failures, causes...)
		if !o.FallThrough {
			break
		}
	}

	return nil, &NotFoundError{Key: key, Causes: failures}
}
