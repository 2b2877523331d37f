package app

import (
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pspec/internal/core"
	"pspec/internal/testutil"
)

func fixtureState(t *testing.T) StateRequest {
	t.Helper()
	return StateRequest{
		SpecPath:       testutil.Fixture(t, "pspec.yaml"),
		InstalledPath:  testutil.Fixture(t, "installed.toml"),
		ComponentsPath: testutil.Fixture(t, "components.yaml"),
	}
}

func TestValidate(t *testing.T) {
	service := NewService()

	results, err := service.Validate(t.Context(), ValidateRequest{SpecPath: testutil.Fixture(t, "pspec.yaml")})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "zlib", results[0].SourceName)
	assert.Equal(t, "1.3.1", results[0].Version)
	assert.Equal(t, "4", results[0].Release)
	assert.Equal(t, []string{"zlib", "zlib-devel"}, results[0].Packages)

	_, err = service.Validate(t.Context(), ValidateRequest{})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestValidateTree(t *testing.T) {
	root := testutil.Fixture(t, "tree")
	results, err := NewService().Validate(t.Context(), ValidateRequest{Root: root})
	require.NoError(t, err)

	var names []string
	for _, result := range results {
		names = append(names, result.SourceName)
	}
	assert.Equal(t, []string{"bzip2", "zlib"}, names)
	assert.Equal(t, filepath.Join(root, "bzip2", "pspec.yaml"), results[0].Path)

	_, err = NewService().Validate(t.Context(), ValidateRequest{Root: t.TempDir()})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func TestValidateMalformedSpec(t *testing.T) {
	path := testutil.WriteFile(t, "pspec.yaml", `
source:
  name: broken
packages:
  - name: broken
`)
	_, err := NewService().Validate(t.Context(), ValidateRequest{SpecPath: path})
	require.Error(t, err)
	assert.True(t, core.IsMalformedSpec(err))
}

func TestInfo(t *testing.T) {
	result, err := NewService().Info(t.Context(), InfoRequest{
		SpecPath:    testutil.Fixture(t, "pspec.yaml"),
		PackagesDir: "/var/cache/pspec",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"gcc", "make"}, result.BuildDependencies)
	assert.Equal(t, "2024-02-01, ver=1.3.1, rel=4, type=security", result.LastUpdate)
	want := []PackageInfo{
		{
			Name:         "zlib",
			Version:      "1.3.1",
			Release:      "4",
			Summary:      "Compression library",
			Licenses:     []string{"zlib"},
			Component:    "system.base",
			Provides:     []string{"pkgconfig(zlib)"},
			Dependencies: []string{"glibc"},
			PackageDir:   filepath.Join("/var/cache/pspec", "zlib-1.3.1-4"),
		},
		{
			Name:         "zlib-devel",
			Version:      "1.3.1",
			Release:      "4",
			Summary:      "Development files for zlib",
			Licenses:     []string{"zlib"},
			Component:    "system.devel",
			Dependencies: []string{"system.devel", "zlib", "{pkgconf or pkg-config}"},
			PackageDir:   filepath.Join("/var/cache/pspec", "zlib-devel-1.3.1-4"),
		},
	}
	if diff := cmp.Diff(want, result.Packages); diff != "" {
		t.Fatalf("unexpected package info (-want +got):\n%s", diff)
	}

	_, err = NewService().Info(t.Context(), InfoRequest{SpecPath: testutil.Fixture(t, "pspec.yaml"), Package: "nope"})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func TestCheck(t *testing.T) {
	service := NewService()

	t.Run("installed only", func(t *testing.T) {
		result, err := service.Check(t.Context(), CheckRequest{StateRequest: fixtureState(t), IncludeBuild: true})
		require.NoError(t, err)
		want := []PackageCheck{
			{Name: "zlib", Installable: true, Unmet: []string{}, Conflicts: []string{}},
			{
				Name:        "zlib-devel",
				Installable: false,
				Unmet:       []string{"zlib (version = 1.3.1, release = 4)", "make"},
				Conflicts:   []string{"zlib-ng-compat-devel"},
			},
		}
		if diff := cmp.Diff(want, result.Packages); diff != "" {
			t.Fatalf("unexpected checks (-want +got):\n%s", diff)
		}
		assert.Equal(t, []string{"make"}, result.UnmetBuild)
	})

	t.Run("with repository", func(t *testing.T) {
		state := fixtureState(t)
		state.RepoIndex = testutil.Fixture(t, "repo-index.yaml")
		result, err := service.Check(t.Context(), CheckRequest{StateRequest: state, Package: "zlib-devel"})
		require.NoError(t, err)
		require.Len(t, result.Packages, 1)
		check := result.Packages[0]
		// The repository declares binutils part of system.devel too.
		assert.Equal(t, []string{"zlib (version = 1.3.1, release = 4)", "make", "binutils"}, check.Unmet)
		assert.Empty(t, check.UnmetWithRepo)
		assert.NotNil(t, check.UnmetWithRepo)
	})

	t.Run("quiet", func(t *testing.T) {
		result, err := service.Check(t.Context(), CheckRequest{StateRequest: fixtureState(t), Quiet: true})
		require.NoError(t, err)
		require.Len(t, result.Packages, 2)
		assert.True(t, result.Packages[0].Installable)
		assert.False(t, result.Packages[1].Installable)
		assert.Nil(t, result.Packages[1].Unmet)
	})

	t.Run("installed database required", func(t *testing.T) {
		state := fixtureState(t)
		state.InstalledPath = ""
		_, err := service.Check(t.Context(), CheckRequest{StateRequest: state})
		require.Error(t, err)
	})
}

func TestCheckUnknownComponent(t *testing.T) {
	path := testutil.WriteFile(t, "pspec.yaml", `
source:
  name: kde-meta
packages:
  - name: kde-meta
    runtime_dependencies:
      components:
        - desktop.kde
history:
  - release: "1"
    date: "2024-01-01"
    version: "6.0"
`)
	state := fixtureState(t)
	state.SpecPath = path
	_, err := NewService().Check(t.Context(), CheckRequest{StateRequest: state})
	require.Error(t, err)
	assert.True(t, core.IsUnknownComponent(err))
}

func TestRepoCheck(t *testing.T) {
	state := fixtureState(t)
	state.RepoIndex = testutil.Fixture(t, "repo-index.yaml")
	result, err := NewService().RepoCheck(t.Context(), RepoCheckRequest{StateRequest: state})
	require.NoError(t, err)
	for _, check := range result.Packages {
		assert.True(t, check.Installable, check.Name)
		assert.Empty(t, check.Unmet, check.Name)
	}

	state.RepoIndex = ""
	_, err = NewService().RepoCheck(t.Context(), RepoCheckRequest{StateRequest: state})
	require.Error(t, err)
}

func TestUpdates(t *testing.T) {
	service := NewService()
	spec := testutil.Fixture(t, "pspec.yaml")
	installed := testutil.Fixture(t, "installed.toml")

	tests := []struct {
		name string
		req  UpdatesRequest
		want UpdatesResult
	}{
		{
			name: "explicit old release",
			req:  UpdatesRequest{SpecPath: spec, Package: "zlib-devel", OldRelease: "2", Type: "bug"},
			want: UpdatesResult{
				Package:    "zlib-devel",
				OldRelease: "2",
				Types:      []string{"bug", "security"},
				Actions: map[string][]string{
					"serviceRestart": {"sshd"},
					"systemRestart":  {"zlib-devel"},
				},
				HasType: true,
			},
		},
		{
			name: "installed release",
			req:  UpdatesRequest{SpecPath: spec, InstalledPath: installed, Package: "zlib", Type: "bug"},
			want: UpdatesResult{
				Package:    "zlib",
				OldRelease: "3",
				Installed:  true,
				Types:      []string{"critical", "security"},
				Actions:    map[string][]string{"reverseDependencyUpdate": {"zlib"}},
			},
		},
		{
			name: "not installed",
			req:  UpdatesRequest{SpecPath: spec, InstalledPath: installed, Package: "zlib-devel"},
			want: UpdatesResult{
				Package: "zlib-devel",
				Types:   []string{},
				Actions: map[string][]string{},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.Updates(t.Context(), tt.req)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("unexpected updates (-want +got):\n%s", diff)
			}
		})
	}

	_, err := service.Updates(t.Context(), UpdatesRequest{SpecPath: spec, Package: "zlib"})
	require.Error(t, err)
	_, err = service.Updates(t.Context(), UpdatesRequest{SpecPath: spec})
	require.Error(t, err)
}

func TestRemoval(t *testing.T) {
	service := NewService()

	result, err := service.Removal(t.Context(), RemovalRequest{StateRequest: fixtureState(t), Remove: "glibc"})
	require.NoError(t, err)
	assert.False(t, result.Safe)
	assert.Equal(t, []PackageBlockers{{Name: "zlib", Requirements: []string{"glibc (version >= 2.38)"}}}, result.Blockers)

	result, err = service.Removal(t.Context(), RemovalRequest{StateRequest: fixtureState(t), Remove: "pkgconf"})
	require.NoError(t, err)
	assert.True(t, result.Safe)
	assert.Empty(t, result.Blockers)

	_, err = service.Removal(t.Context(), RemovalRequest{StateRequest: fixtureState(t)})
	require.Error(t, err)
}

func TestSatisfies(t *testing.T) {
	result, err := NewService().Satisfies(t.Context(), SatisfiesRequest{
		InstalledPath: testutil.Fixture(t, "installed.toml"),
		RepoIndex:     testutil.Fixture(t, "repo-index.yaml"),
		Constraints:   []string{"zlib>=1.3", "zlib>=1.3.1@4", "make", "zlib>=1.3"},
	})
	require.NoError(t, err)
	want := []ConstraintResult{
		{Constraint: "zlib>=1.3", Label: "zlib (version >= 1.3)", Installed: true, InRepo: true, RepoChecked: true},
		{Constraint: "zlib>=1.3.1@4", Label: "zlib (version >= 1.3.1, release >= 4)", Installed: false, InRepo: true, RepoChecked: true},
		{Constraint: "make", Label: "make", Installed: false, InRepo: true, RepoChecked: true},
	}
	if diff := cmp.Diff(want, result.Results); diff != "" {
		t.Fatalf("unexpected results (-want +got):\n%s", diff)
	}

	_, err = NewService().Satisfies(t.Context(), SatisfiesRequest{InstalledPath: testutil.Fixture(t, "installed.toml")})
	require.Error(t, err)
	_, err = NewService().Satisfies(t.Context(), SatisfiesRequest{
		InstalledPath: testutil.Fixture(t, "installed.toml"),
		Constraints:   []string{"zlib"},
		VersionScheme: "rpm",
	})
	require.Error(t, err)
	_, err = NewService().Satisfies(t.Context(), SatisfiesRequest{
		InstalledPath: testutil.Fixture(t, "installed.toml"),
		Constraints:   []string{"zlib<1.3"},
	})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}
