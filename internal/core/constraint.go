package core

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"pspec/internal/ports"
	"pspec/internal/types"
)

// opTokens is the ordered list of constraint operators tried during
// parsing. Longer tokens must precede shorter ones to avoid false matches
// (e.g. ">=" before "=").
var opTokens = []types.ConstraintOp{
	types.ConstraintOpGte,
	types.ConstraintOpLte,
	types.ConstraintOpEq2,
	types.ConstraintOpEq,
}

// ParseConstraint splits a raw "name>=version" string into a Dependency.
// A release may follow "@": "zlib>=1.3@4" bounds the release from below
// as well. A bare name is an unbounded requirement.
func ParseConstraint(raw string) (types.Dependency, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return types.Dependency{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("empty constraint")
	}
	for _, op := range opTokens {
		if !strings.Contains(raw, string(op)) {
			continue
		}
		parts := strings.SplitN(raw, string(op), 2)
		name := strings.TrimSpace(parts[0])
		bound := strings.TrimSpace(parts[1])
		version, release, _ := strings.Cut(bound, "@")
		version = strings.TrimSpace(version)
		release = strings.TrimSpace(release)
		if name == "" || (version == "" && release == "") {
			return types.Dependency{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("invalid constraint: %s", raw))
		}
		if err := checkConstraintName(raw, name); err != nil {
			return types.Dependency{}, err
		}
		dep := types.Dependency{Package: name}
		switch op {
		case types.ConstraintOpGte:
			dep.VersionFrom, dep.ReleaseFrom = version, release
		case types.ConstraintOpLte:
			dep.VersionTo, dep.ReleaseTo = version, release
		default:
			dep.Version, dep.Release = version, release
		}
		return dep, nil
	}
	if err := checkConstraintName(raw, raw); err != nil {
		return types.Dependency{}, err
	}
	return types.Dependency{Package: raw}, nil
}

// checkConstraintName rejects names carrying operators that are not
// supported, such as "<", ">" or "!=".
func checkConstraintName(raw string, name string) error {
	if strings.ContainsAny(name, "<>!") {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported operator in constraint: %s", raw))
	}
	return nil
}

// Constraint evaluates a single Dependency against installed, repository
// or ad-hoc package metadata.
type Constraint struct {
	Dependency types.Dependency
	Scheme     types.VersionScheme
}

func NewConstraint(dep types.Dependency, scheme types.VersionScheme) Constraint {
	return Constraint{Dependency: dep, Scheme: scheme}
}

func (c Constraint) Package() string {
	return c.Dependency.Package
}

// Label renders the constraint as "name" followed by its bounds.
func (c Constraint) Label() string {
	dep := c.Dependency
	if !dep.HasBounds() {
		return dep.Package
	}
	var bounds []string
	add := func(op string, key string, value string) {
		if value != "" {
			bounds = append(bounds, fmt.Sprintf("%s %s %s", key, op, value))
		}
	}
	add("=", "version", dep.Version)
	add(">=", "version", dep.VersionFrom)
	add("<=", "version", dep.VersionTo)
	add("=", "release", dep.Release)
	add(">=", "release", dep.ReleaseFrom)
	add("<=", "release", dep.ReleaseTo)
	return fmt.Sprintf("%s (%s)", dep.Package, strings.Join(bounds, ", "))
}

// SatisfiedBy reports whether meta falls inside every bound of the
// constraint. Versions that cannot be parsed never satisfy a bound.
func (c Constraint) SatisfiedBy(meta types.PackageMeta) bool {
	dep := c.Dependency
	if meta.Name != "" && meta.Name != dep.Package {
		return false
	}
	if !c.versionWithin(meta.Version, dep.Version, 0, 0) {
		return false
	}
	if !c.versionWithin(meta.Version, dep.VersionFrom, 0, 1) {
		return false
	}
	if !c.versionWithin(meta.Version, dep.VersionTo, -1, 0) {
		return false
	}
	if dep.Release != "" && compareReleases(meta.Release, dep.Release) != 0 {
		return false
	}
	if dep.ReleaseFrom != "" && compareReleases(meta.Release, dep.ReleaseFrom) < 0 {
		return false
	}
	if dep.ReleaseTo != "" && compareReleases(meta.Release, dep.ReleaseTo) > 0 {
		return false
	}
	return true
}

// versionWithin checks compare(actual, bound) against the accepted
// range [lo, hi]. An empty bound always passes.
func (c Constraint) versionWithin(actual string, bound string, lo int, hi int) bool {
	if bound == "" {
		return true
	}
	cmp, err := compareVersions(c.Scheme, actual, bound)
	if err != nil {
		return false
	}
	return cmp >= lo && cmp <= hi
}

func (c Constraint) SatisfiedByInstalled(installed ports.InstalledStatePort) bool {
	meta, ok := installed.InstalledPackage(c.Dependency.Package)
	if !ok {
		return false
	}
	return c.SatisfiedBy(meta)
}

func (c Constraint) SatisfiedByRepo(repo ports.RepoStatePort) bool {
	meta, ok := repo.RepoPackage(c.Dependency.Package)
	if !ok {
		return false
	}
	return c.SatisfiedBy(meta)
}

func (c Constraint) SatisfiedByMap(metas map[string]types.PackageMeta) bool {
	meta, ok := metas[c.Dependency.Package]
	if !ok {
		return false
	}
	return c.SatisfiedBy(meta)
}

// SatisfiedByAnyOtherThan reports whether the constraint stays met when
// excluded is removed: it must name another package that is installed.
func (c Constraint) SatisfiedByAnyOtherThan(installed ports.InstalledStatePort, excluded string) bool {
	return c.Dependency.Package != excluded && c.SatisfiedByInstalled(installed)
}
