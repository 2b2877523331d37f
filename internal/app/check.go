package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"pspec/internal/core"
	"pspec/internal/policies"
	"pspec/internal/types"
)

// Check reports, per package, whether its runtime dependencies are met
// by the installed state and lists every unmet one.
func (s Service) Check(ctx context.Context, req CheckRequest) (CheckResult, error) {
	spec, err := s.loadSpec(ctx, req.SpecPath)
	if err != nil {
		return CheckResult{}, err
	}
	packages, err := selectPackages(spec, req.Package)
	if err != nil {
		return CheckResult{}, err
	}
	installed, err := s.loadInstalled(req.InstalledPath)
	if err != nil {
		return CheckResult{}, err
	}
	repo, err := s.loadRepo(req.RepoIndex)
	if err != nil {
		return CheckResult{}, err
	}
	evaluator, err := s.newEvaluator(spec, req.StateRequest, installed, repo)
	if err != nil {
		return CheckResult{}, err
	}

	var available map[string]types.PackageMeta
	if repo != nil {
		available, err = overlay(installed, repo)
		if err != nil {
			return CheckResult{}, err
		}
	}

	conflictPolicy := policies.NewConflictPolicy(evaluator.Scheme)

	result := CheckResult{SourceName: spec.Source.Name}
	for _, pkg := range packages {
		conflicts, err := conflictPolicy.InstalledConflicts(ctx, pkg, installed)
		if err != nil {
			return CheckResult{}, err
		}
		if req.Quiet {
			installable, err := evaluator.Installable(ctx, pkg)
			if err != nil {
				return CheckResult{}, err
			}
			result.Packages = append(result.Packages, PackageCheck{
				Name:        pkg.Name,
				Installable: installable,
				Conflicts:   constraintLabels(conflicts),
			})
			continue
		}
		unmet, err := evaluator.UnmetRuntimeDependencies(ctx, pkg)
		if err != nil {
			return CheckResult{}, err
		}
		check := PackageCheck{
			Name:        pkg.Name,
			Installable: len(unmet) == 0,
			Unmet:       labels(unmet),
			Conflicts:   constraintLabels(conflicts),
		}
		if available != nil {
			unmetWithRepo, err := evaluator.UnmetMapDependencies(pkg, available)
			if err != nil {
				return CheckResult{}, err
			}
			check.UnmetWithRepo = labels(unmetWithRepo)
		}
		for _, label := range check.Unmet {
			log.Ctx(ctx).Warn().
				Str("package", pkg.Name).
				Str("dependency", label).
				Msg("dependency of package is not satisfied")
		}
		result.Packages = append(result.Packages, check)
	}
	if req.IncludeBuild {
		unmet, err := evaluator.UnmetBuildDependencies(ctx, spec.Source)
		if err != nil {
			return CheckResult{}, err
		}
		result.UnmetBuild = labels(unmet)
	}
	return result, nil
}

// RepoCheck reports, per package, which runtime dependencies the
// repository cannot provide.
func (s Service) RepoCheck(ctx context.Context, req RepoCheckRequest) (RepoCheckResult, error) {
	spec, err := s.loadSpec(ctx, req.SpecPath)
	if err != nil {
		return RepoCheckResult{}, err
	}
	packages, err := selectPackages(spec, req.Package)
	if err != nil {
		return RepoCheckResult{}, err
	}
	repo, err := s.loadRepo(req.RepoIndex)
	if err != nil {
		return RepoCheckResult{}, err
	}
	if repo == nil {
		return RepoCheckResult{}, errRepoIndexRequired()
	}
	evaluator, err := s.newEvaluator(spec, req.StateRequest, nil, repo)
	if err != nil {
		return RepoCheckResult{}, err
	}
	result := RepoCheckResult{SourceName: spec.Source.Name}
	for _, pkg := range packages {
		unmet, err := evaluator.UnmetRepoDependencies(ctx, pkg, repo)
		if err != nil {
			return RepoCheckResult{}, err
		}
		result.Packages = append(result.Packages, PackageCheck{
			Name:        pkg.Name,
			Installable: len(unmet) == 0,
			Unmet:       labels(unmet),
		})
	}
	return result, nil
}

func (s Service) newEvaluator(spec types.SpecFile, req StateRequest, installed InstalledDB, repo RepoIndex) (core.Evaluator, error) {
	scheme, err := core.ParseVersionScheme(req.VersionScheme)
	if err != nil {
		return core.Evaluator{}, err
	}
	components, err := componentIndex(spec, req.ComponentsPath, repo)
	if err != nil {
		return core.Evaluator{}, err
	}
	return core.NewEvaluator(installed, components, scheme), nil
}

// overlay returns the installed packages with every repository package
// laid over them, i.e. what would be present after upgrading from the
// repository.
func overlay(installed InstalledDB, repo RepoIndex) (map[string]types.PackageMeta, error) {
	available := installed.Snapshot()
	fromRepo, err := repo.Snapshot()
	if err != nil {
		return nil, err
	}
	for name, pkg := range fromRepo {
		available[name] = pkg
	}
	return available, nil
}
