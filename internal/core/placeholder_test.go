package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pspec/internal/types"
)

func placeholderSpec() types.SpecFile {
	return types.SpecFile{
		Source: types.Source{
			Name: "zlib",
			BuildDependencies: []types.Dependency{
				{Package: "zlib-bootstrap", VersionTo: types.PlaceholderCurrent},
			},
		},
		Packages: []types.Package{
			{
				Name: "zlib-devel",
				RuntimeDependencies: types.RuntimeDependencies{
					Dependencies: []types.Dependency{
						{Package: "zlib", Version: types.PlaceholderCurrent, Release: types.PlaceholderCurrent},
						{Package: "glibc", VersionFrom: "2.38"},
					},
					AnyDependencies: []types.AnyDependency{{Dependencies: []types.Dependency{
						{Package: "zlib-static", ReleaseFrom: types.PlaceholderCurrent},
						{Package: "zlib-ng", VersionFrom: types.PlaceholderCurrent},
					}}},
				},
				BuildDependencies: []types.Dependency{
					{Package: "zlib", ReleaseTo: types.PlaceholderCurrent},
				},
			},
		},
		History: []types.Update{
			{Release: "4", Version: "1.3.1", Date: "2024-02-01"},
			{Release: "3", Version: "1.3", Date: "2023-10-20"},
		},
	}
}

func TestResolvePlaceholders(t *testing.T) {
	spec := placeholderSpec()
	require.NoError(t, ResolvePlaceholders(t.Context(), &spec))

	pkg := spec.Packages[0]
	want := []types.Dependency{
		{Package: "zlib", Version: "1.3.1", Release: "4"},
		{Package: "glibc", VersionFrom: "2.38"},
	}
	if diff := cmp.Diff(want, pkg.RuntimeDependencies.Dependencies); diff != "" {
		t.Fatalf("unexpected runtime dependencies (-want +got):\n%s", diff)
	}
	wantAny := []types.Dependency{
		{Package: "zlib-static", ReleaseFrom: "4"},
		{Package: "zlib-ng", VersionFrom: "1.3.1"},
	}
	if diff := cmp.Diff(wantAny, pkg.RuntimeDependencies.AnyDependencies[0].Dependencies); diff != "" {
		t.Fatalf("unexpected any-dependency members (-want +got):\n%s", diff)
	}
	assert.Equal(t, "4", pkg.BuildDependencies[0].ReleaseTo)
	assert.Equal(t, "1.3.1", spec.Source.BuildDependencies[0].VersionTo)
}

func TestResolvePlaceholdersIdempotent(t *testing.T) {
	once := placeholderSpec()
	require.NoError(t, ResolvePlaceholders(t.Context(), &once))

	twice := placeholderSpec()
	require.NoError(t, ResolvePlaceholders(t.Context(), &twice))
	require.NoError(t, ResolvePlaceholders(t.Context(), &twice))

	if diff := cmp.Diff(once, twice); diff != "" {
		t.Fatalf("second run changed the tree (-once +twice):\n%s", diff)
	}
}

func TestResolvePlaceholdersEmptyHistory(t *testing.T) {
	spec := placeholderSpec()
	spec.History = nil
	before := placeholderSpec()
	before.History = nil

	err := ResolvePlaceholders(t.Context(), &spec)
	require.Error(t, err)
	assert.True(t, IsMalformedSpec(err))
	if diff := cmp.Diff(before, spec); diff != "" {
		t.Fatalf("tree changed on failure (-want +got):\n%s", diff)
	}
}

func TestResolvePlaceholdersIncompleteCurrentEntry(t *testing.T) {
	for _, blank := range []func(*types.Update){
		func(u *types.Update) { u.Version = "" },
		func(u *types.Update) { u.Release = "" },
	} {
		spec := placeholderSpec()
		blank(&spec.History[0])

		err := ResolvePlaceholders(t.Context(), &spec)
		require.Error(t, err)
		assert.True(t, IsMalformedSpec(err))
		assert.Contains(t, err.Error(), "lacks version or release")
	}
}

func TestSubstituteCurrentLeavesOtherValues(t *testing.T) {
	dep := types.Dependency{Package: "x", Version: "current-ish", VersionFrom: "1.0"}
	assert.Equal(t, 0, substituteCurrent(&dep, "2.0", "5"))
	assert.Equal(t, "current-ish", dep.Version)
}
