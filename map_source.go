package cfgx

// MapSource implements Source for a map keyed by Key.String().
// Useful for testing or in-memory configuration.
type MapSource struct {
	// Name identifies this source in priority lists
	SourceName string
	// Data holds the values keyed by application.section.item
	Data map[string]any
}

// NewMapSource creates a new MapSource with an optional name.
func NewMapSource(data map[string]any, name string) *MapSource {
	if name == "" {
		name = "map"
	}
	return &MapSource{
		SourceName: name,
		Data:       data,
	}
}

// Lookup retrieves a value from the map.
func (s *MapSource) Lookup(key Key, _ string) Result[any] {
	dotted := key.String()
	val, found := s.Data[dotted]
	if !found {
		return Fail[any](Error{Source: s.SourceName, Location: dotted, Cause: ErrNotPresent})
	}
	return Ok(val)
}

// Name returns the source name.
func (s *MapSource) Name() string {
	return s.SourceName
}
