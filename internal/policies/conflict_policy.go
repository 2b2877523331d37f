package policies

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"pspec/internal/core"
	"pspec/internal/ports"
	"pspec/internal/types"
)

// ConflictPolicy evaluates the conflicts a package declares against the
// installed state. A conflict entry is matched exactly like a runtime
// constraint: an installed package inside its bounds is a conflict.
type ConflictPolicy struct {
	Scheme types.VersionScheme
}

func NewConflictPolicy(scheme types.VersionScheme) ConflictPolicy {
	return ConflictPolicy{Scheme: scheme}
}

// InstalledConflicts returns the conflict entries of pkg that match an
// installed package. Entries naming pkg itself are ignored.
func (p ConflictPolicy) InstalledConflicts(ctx context.Context, pkg types.Package, installed ports.InstalledStatePort) ([]core.Constraint, error) {
	if installed == nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("installed state is required")
	}
	var conflicts []core.Constraint
	for _, dep := range pkg.Conflicts {
		if dep.Package == "" {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("package %s declares a conflict without package name", pkg.Name))
		}
		if dep.Package == pkg.Name {
			continue
		}
		constraint := core.NewConstraint(dep, p.Scheme)
		if constraint.SatisfiedByInstalled(installed) {
			conflicts = append(conflicts, constraint)
		}
	}
	log.Ctx(ctx).Debug().
		Str("package", pkg.Name).
		Int("declared", len(pkg.Conflicts)).
		Int("conflicts", len(conflicts)).
		Msg("conflicts evaluated")
	return conflicts, nil
}

// Block turns the conflicts found for a package into an error refusing
// its installation. It returns nil when there are none.
func Block(pkgName string, conflicts []string) error {
	if len(conflicts) == 0 {
		return nil
	}
	return errbuilder.New().
		WithCode(errbuilder.CodePermissionDenied).
		WithMsg(fmt.Sprintf("package %s conflicts with installed %s", pkgName, strings.Join(conflicts, ", ")))
}
