package environment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menengai/edge/pkg/environment"
)

func TestParseMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected environment.Mode
	}{
		{name: "empty defaults to production", input: "", expected: environment.Production},
		{name: "production", input: "production", expected: environment.Production},
		{name: "prod alias", input: "prod", expected: environment.Production},
		{name: "staging routes like production", input: "staging", expected: environment.Production},
		{name: "development", input: "development", expected: environment.Development},
		{name: "dev alias", input: "dev", expected: environment.Development},
		{name: "case and whitespace", input: "  DEV ", expected: environment.Development},
		{name: "local", input: "local", expected: environment.Development},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mode, err := environment.ParseMode(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, mode)
		})
	}

	t.Run("unknown mode", func(t *testing.T) {
		t.Parallel()

		_, err := environment.ParseMode("qa-cluster")
		assert.ErrorIs(t, err, environment.ErrUnknownMode)
	})
}

func TestMustParseMode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, environment.Development, environment.MustParseMode("dev"))
	assert.Panics(t, func() { environment.MustParseMode("nope") })
}

func TestModePredicates(t *testing.T) {
	t.Parallel()

	assert.True(t, environment.Production.IsProduction())
	assert.False(t, environment.Production.IsDevelopment())
	assert.True(t, environment.Development.IsDevelopment())
	assert.False(t, environment.Development.IsProduction())
	assert.False(t, environment.Mode("").IsProduction())
}
