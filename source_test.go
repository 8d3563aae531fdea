package cfgx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velmie/x/cfgx"
)

func TestEnvName(t *testing.T) {
	tests := []struct {
		key  cfgx.Key
		want string
	}{
		{cfgx.Key{Application: "myapp", Section: "server", Item: "port"}, "MYAPP_SERVER_PORT"},
		{cfgx.Key{Item: "token"}, "DEFAULT_DEFAULT_TOKEN"},
		{cfgx.Key{Application: "App", Item: "Debug"}, "APP_DEFAULT_DEBUG"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, cfgx.EnvName(tt.key))
		})
	}
}

func TestKey_String(t *testing.T) {
	assert.Equal(t, "myapp.server.port", cfgx.Key{Application: "myapp", Section: "server", Item: "port"}.String())
	assert.Equal(t, "DEFAULT.DEFAULT.port", cfgx.Key{Item: "port"}.String())
}

func TestEnvSource(t *testing.T) {
	source := cfgx.EnvSource{}
	key := cfgx.Key{Application: "myapp", Section: "server", Item: "port"}

	t.Setenv("MYAPP_SERVER_PORT", "8080")
	t.Setenv("MYAPP_SERVER_EMPTY", "")

	// Test existing variable
	val, ok := source.Lookup(key, "").Value()
	assert.True(t, ok)
	assert.Equal(t, "8080", val)

	// Test variable set to an empty string
	empty := key
	empty.Item = "empty"
	val, ok = source.Lookup(empty, "").Value()
	assert.True(t, ok)
	assert.Equal(t, "", val)

	// Test non-existing variable
	missing := key
	missing.Item = "missing"
	res := source.Lookup(missing, "")
	require.True(t, res.IsErr())
	failures := res.Failures()
	require.Len(t, failures, 1)
	assert.ErrorIs(t, failures[0], cfgx.ErrNotPresent)
	assert.Equal(t, `env variable "MYAPP_SERVER_MISSING": item not present`, failures[0].Error())

	// Test source name
	assert.Equal(t, "env variable", source.Name())
}

func TestMapSource(t *testing.T) {
	data := map[string]any{
		"myapp.server.port":    8080,
		"DEFAULT.DEFAULT.name": "value",
	}

	source := cfgx.NewMapSource(data, "Test Map")

	// Test existing key
	val, ok := source.Lookup(cfgx.Key{Application: "myapp", Section: "server", Item: "port"}, "").Value()
	assert.True(t, ok)
	assert.Equal(t, 8080, val)

	// Test defaults applied to the key
	val, ok = source.Lookup(cfgx.Key{Item: "name"}, "").Value()
	assert.True(t, ok)
	assert.Equal(t, "value", val)

	// Test non-existing key
	res := source.Lookup(cfgx.Key{Item: "missing"}, "")
	require.True(t, res.IsErr())
	assert.ErrorIs(t, res.Err(), cfgx.ErrNotPresent)

	// Test source name
	assert.Equal(t, "Test Map", source.Name())

	// Test default name
	defaultSource := cfgx.NewMapSource(data, "")
	assert.Equal(t, "map", defaultSource.Name())
}
