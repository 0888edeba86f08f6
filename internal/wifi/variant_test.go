package wifi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/airscout/airscout/internal/errors"
)

func TestDefaultRegistryHasDarwinVariant(t *testing.T) {
	registry := DefaultRegistry()

	variant, err := registry.Lookup(PlatformDarwin)

	require.NoError(t, err)
	assert.Equal(t, PlatformDarwin, variant.Platform)
	assert.Contains(t, variant.Command, "airport -s")
	assert.True(t, variant.RequiresPrivilege)
	assert.NotNil(t, variant.Parse)
}

func TestCommandLinePrefixesSudoWhenPrivileged(t *testing.T) {
	variant := Variant{Platform: "darwin", Command: "airport -s", RequiresPrivilege: true}
	assert.Equal(t, "sudo airport -s", variant.CommandLine())

	variant.RequiresPrivilege = false
	assert.Equal(t, "airport -s", variant.CommandLine())
}

func TestLookupUnsupportedPlatform(t *testing.T) {
	registry := DefaultRegistry()

	_, err := registry.Lookup("plan9")

	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeUnsupportedPlatform))
	assert.Contains(t, err.Error(), "plan9")
}

func TestRegisterAddsVariant(t *testing.T) {
	registry := NewRegistry()

	err := registry.Register(Variant{
		Platform: "linux",
		Command:  "iwlist scan",
		Parse:    ParseAirport,
	})
	require.NoError(t, err)

	variant, err := registry.Lookup("linux")
	require.NoError(t, err)
	assert.Equal(t, "iwlist scan", variant.Command)
}

func TestRegisterValidatesVariant(t *testing.T) {
	registry := NewRegistry()

	tests := []struct {
		name    string
		variant Variant
	}{
		{"missing platform", Variant{Command: "cmd", Parse: ParseAirport}},
		{"missing command", Variant{Platform: "linux", Parse: ParseAirport}},
		{"missing parse func", Variant{Platform: "linux", Command: "cmd"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := registry.Register(tt.variant)
			require.Error(t, err)
			assert.True(t, apperrors.IsCode(err, apperrors.CodeValidation))
		})
	}
}

func TestRegisterReplacesVariant(t *testing.T) {
	registry := DefaultRegistry()

	err := registry.Register(Variant{
		Platform: PlatformDarwin,
		Command:  "custom-scan",
		Parse:    ParseAirport,
	})
	require.NoError(t, err)

	variant, err := registry.Lookup(PlatformDarwin)
	require.NoError(t, err)
	assert.Equal(t, "custom-scan", variant.Command)
}

func TestPlatforms(t *testing.T) {
	registry := DefaultRegistry()
	assert.ElementsMatch(t, []string{PlatformDarwin}, registry.Platforms())
}
