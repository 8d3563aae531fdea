package cfgx

import (
	"fmt"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// FileSource looks up items in structured configuration files named after
// the section, e.g. config/<application>/<section>.toml
type FileSource struct {
	name   string
	search FileSearch
}

// NewFileSource creates a FileSource reading <section><ext> files with the given parser.
func NewFileSource(name, ext string, parser koanf.Parser) *FileSource {
	return &FileSource{
		name: name,
		search: FileSearch{
			Source:   name,
			FileName: func(key Key) string {
				return key.Section + ext
			},
			Read: koanfReader(parser),
		},
	}
}

// NewConfigFileSource creates the "config file" source backed by TOML files.
func NewConfigFileSource() *FileSource {
	return NewFileSource(SourceConfigFile, ".toml", toml.Parser())
}

// NewYAMLFileSource creates the "yaml file" source.
func NewYAMLFileSource() *FileSource {
	return NewFileSource(SourceYAMLFile, ".yaml", yaml.Parser())
}

// NewJSONFileSource creates the "json file" source.
func NewJSONFileSource() *FileSource {
	return NewFileSource(SourceJSONFile, ".json", json.Parser())
}

// Lookup searches the local and the home configuration directories.
func (s *FileSource) Lookup(key Key, home string) Result[any] {
	return s.search.Find(key, home)
}

// Name returns the source name.
func (s *FileSource) Name() string {
	return s.name
}

func (s *FileSource) withHomeError(err error) *FileSource {
	s.search.homeErr = err
	return s
}

// koanfReader returns the raw top level mapping so that item names are
// matched literally and never traversed as dotted paths.
func koanfReader(parser koanf.Parser) ReadFunc {
	return func(path string) (map[string]any, error) {
		if err := checkFile(path); err != nil {
			return nil, err
		}

		k := koanf.New(".")
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, fmt.Errorf("load config file: %w", err)
		}

		return k.Raw(), nil
	}
}
