package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// Removal lists, per package of the spec, the runtime requirements that
// would break if req.Remove were uninstalled.
func (s Service) Removal(ctx context.Context, req RemovalRequest) (RemovalResult, error) {
	removed := strings.TrimSpace(req.Remove)
	if removed == "" {
		return RemovalResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("package to remove is required")
	}
	spec, err := s.loadSpec(ctx, req.SpecPath)
	if err != nil {
		return RemovalResult{}, err
	}
	packages, err := selectPackages(spec, req.Package)
	if err != nil {
		return RemovalResult{}, err
	}
	installed, err := s.loadInstalled(req.InstalledPath)
	if err != nil {
		return RemovalResult{}, err
	}
	repo, err := s.loadRepo(req.RepoIndex)
	if err != nil {
		return RemovalResult{}, err
	}
	evaluator, err := s.newEvaluator(spec, req.StateRequest, installed, repo)
	if err != nil {
		return RemovalResult{}, err
	}
	result := RemovalResult{Removed: removed, Safe: true}
	for _, pkg := range packages {
		if pkg.Name == removed || !installed.IsInstalled(pkg.Name) {
			continue
		}
		blockers, err := evaluator.RemovalBlockers(ctx, pkg, removed)
		if err != nil {
			return RemovalResult{}, err
		}
		if len(blockers) == 0 {
			continue
		}
		result.Safe = false
		result.Blockers = append(result.Blockers, PackageBlockers{
			Name:         pkg.Name,
			Requirements: labels(blockers),
		})
	}
	return result, nil
}
