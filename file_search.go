package cfgx

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const configDir = "config"

var (
	errHomeNotSet      = errors.New("home directory is not set")
	errConfigFileIsDir = errors.New("config file path must be a file")
)

// FileNameFunc builds the name of the file which may hold the item.
type FileNameFunc func(key Key) string

// ReadFunc reads the file at path into a flat mapping of top level keys.
type ReadFunc func(path string) (map[string]any, error)

// FileSearch looks for an item in the application directory under
// <cwd>/config and <home>/config, in that order.
// The first file which contains the item wins, so a local file always
// shadows the one in the home directory.
type FileSearch struct {
	// Source is the name reported in errors
	Source   string
	FileName FileNameFunc
	Read     ReadFunc
	// Getwd resolves the working directory, os.Getwd when nil
	Getwd func() (string, error)

	// homeErr explains an empty home directory
	homeErr error
}

// checkFile reports an error unless path exists and is not a directory.
func checkFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%q: %w", path, errConfigFileIsDir)
	}
	return nil
}

type candidate struct {
	dir string
	err error
}

// Find searches the candidate directories for key.Item.
// Every candidate that does not produce the item contributes exactly one
// failure: ErrReadFailed when the file could not be located or read, and
// ErrNotPresent when it was read but lacks the item.
func (s FileSearch) Find(key Key, home string) Result[any] {
	key = key.normalize()
	name := s.FileName(key)

	failures := make([]error, 0, 2)
	for _, c := range s.candidates(home) {
		if c.err != nil {
			failures = append(failures, Error{
				Source: s.Source,
				Item:   key.Item,
				Cause:  fmt.Errorf("%w: %w", ErrReadFailed, c.err),
			})
			continue
		}

		path := filepath.Join(c.dir, key.Application, name)
		data, err := s.Read(path)
		if err != nil {
			failures = append(failures, Error{
				Source:   s.Source,
				Location: path,
				Item:     key.Item,
				Cause:    fmt.Errorf("%w: %w", ErrReadFailed, err),
			})
			continue
		}

		if val, ok := data[key.Item]; ok {
			return Ok(val)
		}
		failures = append(failures, Error{
			Source:   s.Source,
			Location: path,
			Item:     key.Item,
			Cause:    ErrNotPresent,
		})
	}

	return Fail[any](failures[0], failures[1:]...)
}

func (s FileSearch) candidates(home string) []candidate {
	getwd := s.Getwd
	if getwd == nil {
		getwd = os.Getwd
	}

	local := candidate{}
	if cwd, err := getwd(); err != nil {
		local.err = fmt.Errorf("resolve working directory: %w", err)
	} else {
		local.dir = filepath.Join(cwd, configDir)
	}

	global := candidate{}
	switch {
	case home == "" && s.homeErr != nil:
		global.err = fmt.Errorf("resolve home directory: %w", s.homeErr)
	case home == "":
		global.err = errHomeNotSet
	default:
		global.dir = filepath.Join(home, configDir)
	}

	return []candidate{local, global}
}
