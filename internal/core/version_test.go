package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pspec/internal/types"
)

func TestParseVersionScheme(t *testing.T) {
	tests := []struct {
		value string
		want  types.VersionScheme
	}{
		{"", types.VersionSchemeDeb},
		{"deb", types.VersionSchemeDeb},
		{"pep440", types.VersionSchemePep440},
		{"semver", types.VersionSchemeSemver},
	}
	for _, tt := range tests {
		got, err := ParseVersionScheme(tt.value)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseVersionScheme("rpm")
	require.Error(t, err)
}

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		scheme types.VersionScheme
		a      string
		b      string
		want   int
	}{
		{types.VersionSchemeDeb, "1.2.13", "1.3", -1},
		{types.VersionSchemeDeb, "1.3.1", "1.3", 1},
		{types.VersionSchemeDeb, "1:1.0", "2.0", 1},
		{types.VersionSchemeDeb, "2.0~rc1", "2.0", -1},
		{types.VersionSchemeDeb, "1.0", "1.0", 0},
		{types.VersionSchemeDeb, "1.3", "1.3.1", -1},
		{types.VersionSchemeDeb, "1.10", "1.2", 1},
		{types.VersionSchemeDeb, "1.0-1", "1.0-12", -1},
		{types.VersionSchemeDeb, "2.0", "1.0", 1},
		{types.VersionSchemePep440, "1.0rc1", "1.0", -1},
		{types.VersionSchemePep440, "2.31.0", "2.28.0", 1},
		{types.VersionSchemeSemver, "1.2.3", "1.10.0", -1},
		{types.VersionSchemeSemver, "1.2.3-beta", "1.2.3", -1},
	}
	for _, tt := range tests {
		t.Run(string(tt.scheme)+" "+tt.a+" vs "+tt.b, func(t *testing.T) {
			got, err := compareVersions(tt.scheme, tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCompareVersionsInvalid(t *testing.T) {
	_, err := compareVersions(types.VersionSchemeSemver, "not-a-version", "1.0.0")
	require.Error(t, err)
}

func TestCompareReleases(t *testing.T) {
	assert.Equal(t, -1, compareReleases("9", "10"))
	assert.Equal(t, 1, compareReleases("10", "9"))
	assert.Equal(t, 0, compareReleases("4", "4"))
	assert.Equal(t, -1, compareReleases("a", "b"))
}
