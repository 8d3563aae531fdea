package cfgx

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"slices"
	"strings"

	"github.com/joho/godotenv"
)

const envFileName = ".env"

// EnvFileSource looks up items in dotenv files.
// The section file config/<application>/.env.<section> is searched first;
// only when it does not produce the item the generic config/<application>/.env
// is searched. Failures of the first search are discarded.
type EnvFileSource struct {
	section FileSearch
	generic FileSearch
}

// NewEnvFileSource creates the ".env file" source.
func NewEnvFileSource() *EnvFileSource {
	return &EnvFileSource{
		section: FileSearch{
			Source:   SourceEnvFile,
			FileName: func(key Key) string {
				return envFileName + "." + key.Section
			},
			Read: readEnvFile,
		},
		generic: FileSearch{
			Source:   SourceEnvFile,
			FileName: func(Key) string {
				return envFileName
			},
			Read: readEnvFile,
		},
	}
}

// Lookup searches the section file and falls back to the generic one.
func (s *EnvFileSource) Lookup(key Key, home string) Result[any] {
	if res := s.section.Find(key, home); res.IsOk() {
		return res
	}
	return s.generic.Find(key, home)
}

// Name returns the source name.
func (s *EnvFileSource) Name() string {
	return SourceEnvFile
}

func (s *EnvFileSource) withHomeError(err error) *EnvFileSource {
	s.section.homeErr = err
	s.generic.homeErr = err
	return s
}

// dollarPlaceholder hides '$' from godotenv, which would otherwise expand
// $NAME and ${NAME} using only the variables of the file itself.
const dollarPlaceholder = "\uE000"

var (
	envKeyRegex        = regexp.MustCompile(`^\s*(?:export\s+)?([A-Za-z0-9_.-]+)\s*[=:]\s*(')?`)
	interpolationRegex = regexp.MustCompile(`\$\{([^}:]*)(?::-([^}]*))?\}`)
)

// readEnvFile parses a dotenv file keeping bare $NAME literal.
// ${NAME} and ${NAME:-default} in unquoted and double-quoted values are
// resolved from the values defined earlier in the file, then from the
// process environment. Single-quoted values are never interpolated.
func readEnvFile(path string) (map[string]any, error) {
	if err := checkFile(path); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	parsed, err := godotenv.UnmarshalBytes(bytes.ReplaceAll(raw, []byte("$"), []byte(dollarPlaceholder)))
	if err != nil {
		return nil, fmt.Errorf("parse env file: %w", err)
	}

	order, literal := envKeys(raw)
	resolved := make(map[string]string, len(parsed))
	lookup := func(name string) (string, bool) {
		if v, ok := resolved[name]; ok {
			return v, true
		}
		return os.LookupEnv(name)
	}

	for _, key := range order {
		v, ok := parsed[key]
		if !ok {
			continue
		}
		v = strings.ReplaceAll(v, dollarPlaceholder, "$")
		if !literal[key] {
			v = interpolate(v, lookup)
		}
		resolved[key] = v
	}

	out := make(map[string]any, len(parsed))
	for k, v := range parsed {
		if rv, ok := resolved[k]; ok {
			out[k] = rv
			continue
		}
		out[k] = strings.ReplaceAll(v, dollarPlaceholder, "$")
	}

	return out, nil
}

// envKeys returns the keys in the order of their last definition and
// whether that definition is single-quoted.
func envKeys(raw []byte) ([]string, map[string]bool) {
	var order []string
	literal := make(map[string]bool)
	for _, line := range strings.Split(string(raw), "\n") {
		m := envKeyRegex.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		key := m[1]
		if _, seen := literal[key]; seen {
			order = slices.DeleteFunc(order, func(k string) bool { return k == key })
		}
		order = append(order, key)
		literal[key] = m[2] != ""
	}

	return order, literal
}

func interpolate(value string, lookup func(name string) (string, bool)) string {
	return interpolationRegex.ReplaceAllStringFunc(value, func(match string) string {
		m := interpolationRegex.FindStringSubmatch(match)
		if v, ok := lookup(m[1]); ok {
			return v
		}
		return m[2]
	})
}
