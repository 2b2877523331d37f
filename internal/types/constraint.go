package types

// Dependency is a single named-package requirement. Every bound is
// optional; an empty string means "unbounded". Any bound may hold
// PlaceholderCurrent until the owning spec has been prepared.
type Dependency struct {
	Package     string `yaml:"package"`
	Version     string `yaml:"version,omitempty"`
	VersionFrom string `yaml:"version_from,omitempty"`
	VersionTo   string `yaml:"version_to,omitempty"`
	Release     string `yaml:"release,omitempty"`
	ReleaseFrom string `yaml:"release_from,omitempty"`
	ReleaseTo   string `yaml:"release_to,omitempty"`
	Type        string `yaml:"type,omitempty"`
}

// Equal compares the explicit field list of two dependencies.
func (d Dependency) Equal(other Dependency) bool {
	return d.Package == other.Package &&
		d.Version == other.Version &&
		d.VersionFrom == other.VersionFrom &&
		d.VersionTo == other.VersionTo &&
		d.Release == other.Release &&
		d.ReleaseFrom == other.ReleaseFrom &&
		d.ReleaseTo == other.ReleaseTo &&
		d.Type == other.Type
}

// HasBounds reports whether any version or release bound is set.
func (d Dependency) HasBounds() bool {
	return d.Version != "" || d.VersionFrom != "" || d.VersionTo != "" ||
		d.Release != "" || d.ReleaseFrom != "" || d.ReleaseTo != ""
}

// AnyDependency is an OR-group: satisfied when at least one member is.
type AnyDependency struct {
	Dependencies []Dependency `yaml:"dependencies"`
}

// Equal compares two OR-groups member by member, in order.
func (a AnyDependency) Equal(other AnyDependency) bool {
	if len(a.Dependencies) != len(other.Dependencies) {
		return false
	}
	for i := range a.Dependencies {
		if !a.Dependencies[i].Equal(other.Dependencies[i]) {
			return false
		}
	}
	return true
}

type RuntimeDependencies struct {
	Dependencies    []Dependency    `yaml:"dependencies,omitempty"`
	AnyDependencies []AnyDependency `yaml:"any_dependencies,omitempty"`
	Components      []string        `yaml:"components,omitempty"`
}
