package core

import (
	"context"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/rs/zerolog/log"

	"pspec/internal/types"
)

type SpecCompiler struct{}

func NewSpecCompiler() SpecCompiler {
	return SpecCompiler{}
}

// Prepare validates a freshly loaded spec tree, shares the root history
// with packages that carry none and resolves "current" placeholders. The
// tree must not be mutated afterwards.
func (c SpecCompiler) Prepare(ctx context.Context, spec *types.SpecFile) error {
	if err := c.ValidateSpec(ctx, *spec); err != nil {
		return err
	}
	inheritHistory(spec)
	if err := ResolvePlaceholders(ctx, spec); err != nil {
		return err
	}
	log.Ctx(ctx).Debug().
		Str("source", spec.Source.Name).
		Str("version", spec.SourceVersion()).
		Str("release", spec.SourceRelease()).
		Int("packages", len(spec.Packages)).
		Msg("spec prepared")
	return nil
}

func (c SpecCompiler) ValidateSpec(ctx context.Context, spec types.SpecFile) error {
	if spec.Source.Name == "" {
		return malformedSpec("source.name must be set")
	}
	if len(spec.Packages) == 0 {
		return malformedSpec("spec %s has no packages", spec.Source.Name)
	}
	if err := validateHistory("history", spec.History); err != nil {
		return err
	}
	if err := validateDependencies("source.build_dependencies", spec.Source.BuildDependencies); err != nil {
		return err
	}
	seen := map[string]struct{}{}
	for _, pkg := range spec.Packages {
		if pkg.Name == "" {
			return malformedSpec("package name must be set")
		}
		if _, ok := seen[pkg.Name]; ok {
			return malformedSpec("duplicate package %s", pkg.Name)
		}
		seen[pkg.Name] = struct{}{}
		if err := validatePackage(ctx, pkg); err != nil {
			return err
		}
	}
	for _, component := range spec.Components {
		if component.Name == "" {
			return malformedSpec("component name must be set")
		}
	}
	assert.NotEmpty(ctx, spec.History[0].Release, "current release must be set")
	log.Ctx(ctx).Debug().Str("spec", spec.Source.Name).Msg("spec validated")
	return nil
}

func validatePackage(ctx context.Context, pkg types.Package) error {
	if len(pkg.History) > 0 {
		if err := validateHistory("package "+pkg.Name+" history", pkg.History); err != nil {
			return err
		}
	}
	runtime := pkg.RuntimeDependencies
	if err := validateDependencies("package "+pkg.Name+" runtime dependencies", runtime.Dependencies); err != nil {
		return err
	}
	if err := validateDependencies("package "+pkg.Name+" build dependencies", pkg.BuildDependencies); err != nil {
		return err
	}
	if err := validateDependencies("package "+pkg.Name+" conflicts", pkg.Conflicts); err != nil {
		return err
	}
	for i, group := range runtime.AnyDependencies {
		if len(group.Dependencies) == 0 {
			return malformedSpec("package %s any-dependency group %d has no members", pkg.Name, i)
		}
		if err := validateDependencies("package "+pkg.Name+" any-dependency group", group.Dependencies); err != nil {
			return err
		}
	}
	for _, component := range runtime.Components {
		if component == "" {
			return malformedSpec("package %s has an empty component reference", pkg.Name)
		}
	}
	warnDuplicateDependencies(ctx, pkg)
	return nil
}

func validateHistory(where string, history []types.Update) error {
	if len(history) == 0 {
		return malformedSpec("%s must not be empty", where)
	}
	for i, update := range history {
		if update.Release == "" {
			return malformedSpec("%s entry %d missing release", where, i)
		}
		if update.Version == "" {
			return malformedSpec("%s entry %d missing version", where, i)
		}
		if update.Date == "" {
			return malformedSpec("%s entry %d missing date", where, i)
		}
		if _, ok := parseHistoryDate(update.Date); !ok {
			return malformedSpec("%s entry %d has unparsable date %q", where, i, update.Date)
		}
		for _, action := range update.Requires {
			if action.Name == "" {
				return malformedSpec("%s entry %d has an unnamed action", where, i)
			}
		}
		for _, tag := range update.Types {
			if tag.Name == "" {
				return malformedSpec("%s entry %d has an unnamed type", where, i)
			}
		}
	}
	return nil
}

func validateDependencies(where string, deps []types.Dependency) error {
	for _, dep := range deps {
		if dep.Package == "" {
			return malformedSpec("%s: dependency without package name", where)
		}
	}
	return nil
}

func warnDuplicateDependencies(ctx context.Context, pkg types.Package) {
	deps := pkg.RuntimeDependencies.Dependencies
	for i := range deps {
		for j := i + 1; j < len(deps); j++ {
			if deps[i].Equal(deps[j]) {
				log.Ctx(ctx).Warn().
					Str("package", pkg.Name).
					Str("dependency", deps[i].Package).
					Msg("duplicate runtime dependency")
			}
		}
	}
}

// inheritHistory gives every package without its own history the root
// history of the spec.
func inheritHistory(spec *types.SpecFile) {
	for i := range spec.Packages {
		if len(spec.Packages[i].History) == 0 {
			spec.Packages[i].History = spec.History
		}
	}
}
