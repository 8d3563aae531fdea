package cfgx_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/velmie/x/cfgx"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  Error
		want string
	}{
		{
			name: "environment variable",
			err:  Error{Source: "env variable", Location: "APP_SERVER_PORT", Cause: ErrNotPresent},
			want: `env variable "APP_SERVER_PORT": item not present`,
		},
		{
			name: "file with item",
			err: Error{
				Source:   "config file",
				Location: "/srv/config/app/server.toml",
				Item:     "PORT",
				Cause:    ErrNotPresent,
			},
			want: `config file "/srv/config/app/server.toml" item "PORT": item not present`,
		},
		{
			name: "no location no cause",
			err:  Error{Source: "memory"},
			want: "memory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	err := Error{Source: "config file", Cause: ErrReadFailed}
	if !errors.Is(err, ErrReadFailed) {
		t.Error("unexpected error cause")
	}
}

func TestNotFoundError(t *testing.T) {
	first := Error{Source: "env variable", Location: "APP_SERVER_PORT", Cause: ErrNotPresent}
	second := errors.New("boom")

	err := &NotFoundError{
		Key:    Key{Application: "app", Section: "server", Item: "PORT"},
		Causes: []error{first, second},
	}

	want := "config item not found due to the following errors:\n" +
		`env variable "APP_SERVER_PORT": item not present` + "\n" +
		"boom"
	assert.Equal(t, want, err.Error())

	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, ErrNotPresent)
	assert.ErrorIs(t, err, second)

	var detail Error
	require.ErrorAs(t, err, &detail)
	assert.Equal(t, "APP_SERVER_PORT", detail.Location)
}

func TestNotFoundError_NoCauses(t *testing.T) {
	err := &NotFoundError{}
	assert.Equal(t, "config item not found due to the following errors:", err.Error())
}
