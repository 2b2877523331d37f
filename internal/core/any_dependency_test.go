package core

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pspec/internal/types"
)

func TestNewAnyGroupEmpty(t *testing.T) {
	_, err := NewAnyGroup(types.AnyDependency{}, types.VersionSchemeDeb)
	require.Error(t, err)
	assert.True(t, IsMalformedSpec(err))
}

func TestAnyGroupLabelAndRepresentative(t *testing.T) {
	group, err := NewAnyGroup(types.AnyDependency{Dependencies: []types.Dependency{
		{Package: "pkgconf"},
		{Package: "pkg-config", VersionFrom: "0.29"},
	}}, types.VersionSchemeDeb)
	require.NoError(t, err)

	assert.Equal(t, "pkgconf", group.Representative())
	assert.Equal(t, "{pkgconf or pkg-config (version >= 0.29)}", group.Label())
}

func TestAnyGroupSatisfaction(t *testing.T) {
	group, err := NewAnyGroup(types.AnyDependency{Dependencies: []types.Dependency{
		{Package: "pkgconf"},
		{Package: "pkg-config", VersionFrom: "0.29"},
	}}, types.VersionSchemeDeb)
	require.NoError(t, err)

	tests := []struct {
		name      string
		installed fakeInstalled
		want      bool
	}{
		{"first member", installedOf(meta("pkgconf", "2.1.0", "1")), true},
		{"second member", installedOf(meta("pkg-config", "0.29.2", "1")), true},
		{"second member too old", installedOf(meta("pkg-config", "0.28", "1")), false},
		{"none", installedOf(), false},
		{"second member far newer", installedOf(meta("pkg-config", "0.29.10", "1")), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, group.SatisfiedByInstalled(tt.installed))
			assert.Equal(t, tt.want, group.SatisfiedByMap(map[string]types.PackageMeta(tt.installed)))
			assert.Equal(t, tt.want, group.SatisfiedByRepo(fakeRepo(tt.installed)))
		})
	}
}

func TestAnyGroupSatisfiedByAnyOtherThan(t *testing.T) {
	group, err := NewAnyGroup(types.AnyDependency{Dependencies: []types.Dependency{
		{Package: "pkgconf"},
		{Package: "pkg-config"},
	}}, types.VersionSchemeDeb)
	require.NoError(t, err)

	onlyOne := installedOf(meta("pkgconf", "2.1.0", "1"))
	assert.False(t, group.SatisfiedByAnyOtherThan(onlyOne, "pkgconf"))
	assert.True(t, group.SatisfiedByAnyOtherThan(onlyOne, "pkg-config"))

	both := installedOf(meta("pkgconf", "2.1.0", "1"), meta("pkg-config", "0.29", "1"))
	assert.True(t, group.SatisfiedByAnyOtherThan(both, "pkgconf"))
}

// The group must agree with OR over its members for arbitrary installed
// states.
func TestAnyGroupMatchesMemberDisjunction(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	names := []string{"a", "b", "c", "d"}
	versions := []string{"1.0", "1.5", "2.0"}

	for i := 0; i < 200; i++ {
		var deps []types.Dependency
		for n := 1 + rng.IntN(3); n > 0; n-- {
			dep := types.Dependency{Package: names[rng.IntN(len(names))]}
			if rng.IntN(2) == 0 {
				dep.VersionFrom = versions[rng.IntN(len(versions))]
			}
			deps = append(deps, dep)
		}
		installed := installedOf()
		for _, name := range names {
			if rng.IntN(2) == 0 {
				installed[name] = meta(name, versions[rng.IntN(len(versions))], "1")
			}
		}

		group, err := NewAnyGroup(types.AnyDependency{Dependencies: deps}, types.VersionSchemeDeb)
		require.NoError(t, err)
		want := false
		for _, dep := range deps {
			want = want || NewConstraint(dep, types.VersionSchemeDeb).SatisfiedByInstalled(installed)
		}
		require.Equal(t, want, group.SatisfiedByInstalled(installed), "iteration %d: %+v", i, deps)
	}
}

func TestAnyGroupSingleBoundedMember(t *testing.T) {
	group, err := NewAnyGroup(types.AnyDependency{Dependencies: []types.Dependency{
		{Package: "zlib", VersionFrom: "1.3"},
	}}, types.VersionSchemeDeb)
	require.NoError(t, err)

	assert.True(t, group.SatisfiedByInstalled(installedOf(meta("zlib", "1.3.1", "1"))))
	assert.False(t, group.SatisfiedByInstalled(installedOf(meta("zlib", "1.2.13", "1"))))
}
