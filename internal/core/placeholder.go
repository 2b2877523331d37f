package core

import (
	"context"

	"github.com/rs/zerolog/log"

	"pspec/internal/types"
)

// ResolvePlaceholders replaces every "current" bound reachable from the
// spec's packages with the spec's current version or release. It fails
// before touching the tree when there is no history to read them from.
// Running it again is a no-op.
func ResolvePlaceholders(ctx context.Context, spec *types.SpecFile) error {
	if len(spec.History) == 0 {
		return malformedSpec("history is empty, cannot resolve %q placeholders", types.PlaceholderCurrent)
	}
	version := spec.History[0].Version
	release := spec.History[0].Release
	if version == "" || release == "" {
		return malformedSpec("newest history entry lacks version or release")
	}

	replaced := 0
	visit := func(dep *types.Dependency) {
		replaced += substituteCurrent(dep, version, release)
	}
	for i := range spec.Source.BuildDependencies {
		visit(&spec.Source.BuildDependencies[i])
	}
	for p := range spec.Packages {
		pkg := &spec.Packages[p]
		for i := range pkg.BuildDependencies {
			visit(&pkg.BuildDependencies[i])
		}
		for i := range pkg.RuntimeDependencies.Dependencies {
			visit(&pkg.RuntimeDependencies.Dependencies[i])
		}
		for g := range pkg.RuntimeDependencies.AnyDependencies {
			group := &pkg.RuntimeDependencies.AnyDependencies[g]
			for i := range group.Dependencies {
				visit(&group.Dependencies[i])
			}
		}
	}
	log.Ctx(ctx).Debug().
		Str("source", spec.Source.Name).
		Int("replaced", replaced).
		Msg("placeholders resolved")
	return nil
}

// substituteCurrent rewrites the placeholder bounds of one dependency
// and returns how many fields changed.
func substituteCurrent(dep *types.Dependency, version string, release string) int {
	fields := []struct {
		value       *string
		replacement string
	}{
		{&dep.Version, version},
		{&dep.VersionFrom, version},
		{&dep.VersionTo, version},
		{&dep.Release, release},
		{&dep.ReleaseFrom, release},
		{&dep.ReleaseTo, release},
	}
	changed := 0
	for _, field := range fields {
		if *field.value == types.PlaceholderCurrent {
			*field.value = field.replacement
			changed++
		}
	}
	return changed
}
