package core

import (
	"strings"

	"pspec/internal/ports"
	"pspec/internal/types"
)

// Requirement is one element of a flattened dependency list: either a
// single Constraint or an AnyGroup.
type Requirement interface {
	Label() string
	SatisfiedByInstalled(installed ports.InstalledStatePort) bool
	SatisfiedByRepo(repo ports.RepoStatePort) bool
	SatisfiedByMap(metas map[string]types.PackageMeta) bool
	SatisfiedByAnyOtherThan(installed ports.InstalledStatePort, excluded string) bool
}

var (
	_ Requirement = Constraint{}
	_ Requirement = AnyGroup{}
)

// AnyGroup is an OR-combination of constraints.
type AnyGroup struct {
	members []Constraint
}

// NewAnyGroup builds an OR-group. An empty group is a malformed spec.
func NewAnyGroup(group types.AnyDependency, scheme types.VersionScheme) (AnyGroup, error) {
	if len(group.Dependencies) == 0 {
		return AnyGroup{}, malformedSpec("any-dependency group has no members")
	}
	members := make([]Constraint, 0, len(group.Dependencies))
	for _, dep := range group.Dependencies {
		members = append(members, NewConstraint(dep, scheme))
	}
	return AnyGroup{members: members}, nil
}

// Representative returns the first member's package name. It is used
// for display and sorting only.
func (g AnyGroup) Representative() string {
	return g.members[0].Package()
}

func (g AnyGroup) Label() string {
	labels := make([]string, 0, len(g.members))
	for _, member := range g.members {
		labels = append(labels, member.Label())
	}
	return "{" + strings.Join(labels, " or ") + "}"
}

func (g AnyGroup) SatisfiedByInstalled(installed ports.InstalledStatePort) bool {
	for _, member := range g.members {
		if member.SatisfiedByInstalled(installed) {
			return true
		}
	}
	return false
}

func (g AnyGroup) SatisfiedByRepo(repo ports.RepoStatePort) bool {
	for _, member := range g.members {
		if member.SatisfiedByRepo(repo) {
			return true
		}
	}
	return false
}

func (g AnyGroup) SatisfiedByMap(metas map[string]types.PackageMeta) bool {
	for _, member := range g.members {
		if member.SatisfiedByMap(metas) {
			return true
		}
	}
	return false
}

// SatisfiedByAnyOtherThan reports whether some installed member other
// than excluded still satisfies the group.
func (g AnyGroup) SatisfiedByAnyOtherThan(installed ports.InstalledStatePort, excluded string) bool {
	for _, member := range g.members {
		if member.Package() != excluded && member.SatisfiedByInstalled(installed) {
			return true
		}
	}
	return false
}
