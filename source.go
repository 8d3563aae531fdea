package cfgx

import "strings"

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -source source.go -destination ./mock/source.go

// DefaultName is used for an application or a section which is not specified.
const DefaultName = "DEFAULT"

// Names of the built-in sources as they appear in a priority list.
const (
	SourceEnvVariable = "env variable"
	SourceEnvFile     = ".env file"
	SourceConfigFile  = "config file"
	SourceYAMLFile    = "yaml file"
	SourceJSONFile    = "json file"
)

// Key identifies a configuration item.
type Key struct {
	Application string
	Section     string
	Item        string
}

// String returns the dotted form of the key: application.section.item
func (k Key) String() string {
	k = k.normalize()
	return k.Application + "." + k.Section + "." + k.Item
}

func (k Key) normalize() Key {
	if k.Application == "" {
		k.Application = DefaultName
	}
	if k.Section == "" {
		k.Section = DefaultName
	}
	return k
}

// EnvName returns the environment variable name for the key: APPLICATION_SECTION_ITEM
func EnvName(k Key) string {
	k = k.normalize()
	return strings.ToUpper(k.Application) + "_" + strings.ToUpper(k.Section) + "_" + strings.ToUpper(k.Item)
}

// Source is a single place a configuration item can be looked up in.
type Source interface {
	// Lookup retrieves the item identified by key.
	// home is the base directory for user-wide configuration, sources which
	// are not file based ignore it.
	// Failures are returned as data inside the Result and never as panics.
	Lookup(key Key, home string) Result[any]

	// Name returns the identifier used in priority lists and error messages.
	Name() string
}
