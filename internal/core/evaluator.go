package core

import (
	"context"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"pspec/internal/ports"
	"pspec/internal/types"
)

// Evaluator flattens package dependencies and checks them against the
// installed state. It holds no mutable state and may be shared between
// goroutines as long as its ports are.
type Evaluator struct {
	Installed  ports.InstalledStatePort
	Components ports.ComponentExpanderPort
	Scheme     types.VersionScheme
}

func NewEvaluator(installed ports.InstalledStatePort, components ports.ComponentExpanderPort, scheme types.VersionScheme) Evaluator {
	return Evaluator{
		Installed:  installed,
		Components: components,
		Scheme:     scheme,
	}
}

// RuntimeDependencies returns the package's direct constraints, then its
// OR-groups, then one unbounded constraint per package of every
// referenced component.
func (e Evaluator) RuntimeDependencies(pkg types.Package) ([]Requirement, error) {
	runtime := pkg.RuntimeDependencies
	deps := make([]Requirement, 0, len(runtime.Dependencies)+len(runtime.AnyDependencies))
	for _, dep := range runtime.Dependencies {
		deps = append(deps, NewConstraint(dep, e.Scheme))
	}
	for _, anyDep := range runtime.AnyDependencies {
		group, err := NewAnyGroup(anyDep, e.Scheme)
		if err != nil {
			return nil, err
		}
		deps = append(deps, group)
	}
	if len(runtime.Components) == 0 {
		return deps, nil
	}
	if e.Components == nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("evaluator requires a component expander for component dependencies")
	}
	for _, component := range runtime.Components {
		names, err := e.Components.Expand(component)
		if err != nil {
			if IsUnknownComponent(err) {
				return nil, err
			}
			return nil, unknownComponent(component, err)
		}
		for _, name := range names {
			deps = append(deps, NewConstraint(types.Dependency{Package: name}, e.Scheme))
		}
	}
	return deps, nil
}

// SatisfiesRuntimeDependencies reports whether every runtime requirement
// is met by the installed state. It stops at the first unmet one.
func (e Evaluator) SatisfiesRuntimeDependencies(ctx context.Context, pkg types.Package) (bool, error) {
	if err := e.requireInstalled(); err != nil {
		return false, err
	}
	deps, err := e.RuntimeDependencies(pkg)
	if err != nil {
		return false, err
	}
	for _, dep := range deps {
		if !dep.SatisfiedByInstalled(e.Installed) {
			log.Ctx(ctx).Debug().
				Str("package", pkg.Name).
				Str("dependency", dep.Label()).
				Msg("runtime dependency not satisfied")
			return false, nil
		}
	}
	return true, nil
}

// UnmetRuntimeDependencies evaluates every runtime requirement and
// returns all of those the installed state does not satisfy.
func (e Evaluator) UnmetRuntimeDependencies(ctx context.Context, pkg types.Package) ([]Requirement, error) {
	if err := e.requireInstalled(); err != nil {
		return nil, err
	}
	deps, err := e.RuntimeDependencies(pkg)
	if err != nil {
		return nil, err
	}
	unmet := collectUnmet(deps, func(dep Requirement) bool {
		return dep.SatisfiedByInstalled(e.Installed)
	})
	log.Ctx(ctx).Debug().
		Str("package", pkg.Name).
		Int("dependencies", len(deps)).
		Int("unmet", len(unmet)).
		Msg("runtime dependencies evaluated")
	return unmet, nil
}

// Installable reports whether the package could be installed on the
// current system without pulling in anything else.
func (e Evaluator) Installable(ctx context.Context, pkg types.Package) (bool, error) {
	return e.SatisfiesRuntimeDependencies(ctx, pkg)
}

// UnmetRepoDependencies returns the runtime requirements that the
// repository cannot satisfy.
func (e Evaluator) UnmetRepoDependencies(ctx context.Context, pkg types.Package, repo ports.RepoStatePort) ([]Requirement, error) {
	if repo == nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("repository state is required")
	}
	deps, err := e.RuntimeDependencies(pkg)
	if err != nil {
		return nil, err
	}
	unmet := collectUnmet(deps, func(dep Requirement) bool {
		return dep.SatisfiedByRepo(repo)
	})
	log.Ctx(ctx).Debug().Str("package", pkg.Name).Int("unmet", len(unmet)).Msg("repository dependencies evaluated")
	return unmet, nil
}

// UnmetMapDependencies returns the runtime requirements that metas, a
// name to metadata map, cannot satisfy.
func (e Evaluator) UnmetMapDependencies(pkg types.Package, metas map[string]types.PackageMeta) ([]Requirement, error) {
	deps, err := e.RuntimeDependencies(pkg)
	if err != nil {
		return nil, err
	}
	return collectUnmet(deps, func(dep Requirement) bool {
		return dep.SatisfiedByMap(metas)
	}), nil
}

// UnmetBuildDependencies returns the source build dependencies that are
// not installed.
func (e Evaluator) UnmetBuildDependencies(ctx context.Context, source types.Source) ([]Requirement, error) {
	if err := e.requireInstalled(); err != nil {
		return nil, err
	}
	deps := make([]Requirement, 0, len(source.BuildDependencies))
	for _, dep := range source.BuildDependencies {
		deps = append(deps, NewConstraint(dep, e.Scheme))
	}
	unmet := collectUnmet(deps, func(dep Requirement) bool {
		return dep.SatisfiedByInstalled(e.Installed)
	})
	log.Ctx(ctx).Debug().Str("source", source.Name).Int("unmet", len(unmet)).Msg("build dependencies evaluated")
	return unmet, nil
}

// RemovalBlockers returns the runtime requirements of pkg that are met
// today but would no longer be met once removed is uninstalled.
func (e Evaluator) RemovalBlockers(ctx context.Context, pkg types.Package, removed string) ([]Requirement, error) {
	if err := e.requireInstalled(); err != nil {
		return nil, err
	}
	deps, err := e.RuntimeDependencies(pkg)
	if err != nil {
		return nil, err
	}
	var blockers []Requirement
	for _, dep := range deps {
		if !dep.SatisfiedByInstalled(e.Installed) {
			continue
		}
		if dep.SatisfiedByAnyOtherThan(e.Installed, removed) {
			continue
		}
		blockers = append(blockers, dep)
	}
	log.Ctx(ctx).Debug().
		Str("package", pkg.Name).
		Str("removed", removed).
		Int("blockers", len(blockers)).
		Msg("removal impact evaluated")
	return blockers, nil
}

func (e Evaluator) requireInstalled() error {
	if e.Installed == nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("installed state is required")
	}
	return nil
}

func collectUnmet(deps []Requirement, satisfied func(Requirement) bool) []Requirement {
	var unmet []Requirement
	for _, dep := range deps {
		if !satisfied(dep) {
			unmet = append(unmet, dep)
		}
	}
	return unmet
}
