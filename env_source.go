package cfgx

import (
	"os"
)

// EnvSource implements the Source interface for environment variables.
// The variable name is built with EnvName.
type EnvSource struct{}

// Lookup retrieves an environment variable for the key.
// A variable which is set to an empty string is found.
func (s EnvSource) Lookup(key Key, _ string) Result[any] {
	name := EnvName(key)
	val, found := os.LookupEnv(name)
	if !found {
		return Fail[any](Error{Source: s.Name(), Location: name, Cause: ErrNotPresent})
	}
	return Ok[any](val)
}

// Name returns the source name.
func (EnvSource) Name() string {
	return SourceEnvVariable
}
