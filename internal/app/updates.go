package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"pspec/internal/core"
)

// Updates reports the update types and actions a package goes through
// when upgrading to the spec's current release. The old release is
// taken from the request or, when omitted, from the installed database.
func (s Service) Updates(ctx context.Context, req UpdatesRequest) (UpdatesResult, error) {
	if strings.TrimSpace(req.Package) == "" {
		return UpdatesResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("package name is required")
	}
	spec, err := s.loadSpec(ctx, req.SpecPath)
	if err != nil {
		return UpdatesResult{}, err
	}
	packages, err := selectPackages(spec, req.Package)
	if err != nil {
		return UpdatesResult{}, err
	}
	pkg := packages[0]
	result := UpdatesResult{Package: pkg.Name}

	oldRelease := strings.TrimSpace(req.OldRelease)
	if oldRelease != "" {
		result.OldRelease = oldRelease
		result.Types = core.UpdateTypes(pkg, oldRelease)
		result.Actions = core.UpdateActions(pkg, oldRelease)
		if req.Type != "" {
			result.HasType = core.HasUpdateType(pkg, req.Type, oldRelease)
		}
		return result, nil
	}

	if strings.TrimSpace(req.InstalledPath) == "" {
		return UpdatesResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("either an old release or an installed database is required")
	}
	installed, err := s.loadInstalled(req.InstalledPath)
	if err != nil {
		return UpdatesResult{}, err
	}
	result.Actions = core.PendingUpdateActions(pkg, installed)
	installedRelease, ok := installed.InstalledReleaseOf(pkg.Name)
	if !ok {
		result.Types = []string{}
		return result, nil
	}
	result.Installed = true
	result.OldRelease = installedRelease
	result.Types = core.UpdateTypes(pkg, installedRelease)
	if req.Type != "" {
		result.HasType = core.HasUpdateType(pkg, req.Type, installedRelease)
	}
	return result, nil
}
