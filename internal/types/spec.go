package types

import (
	"fmt"
	"path/filepath"
)

type Packager struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
}

type Archive struct {
	URI     string `yaml:"uri"`
	Type    string `yaml:"type,omitempty"`
	SHA1Sum string `yaml:"sha1sum,omitempty"`
}

type Patch struct {
	Filename        string `yaml:"filename"`
	CompressionType string `yaml:"compression_type,omitempty"`
	Level           int    `yaml:"level,omitempty"`
	Reverse         string `yaml:"reverse,omitempty"`
}

type Source struct {
	Name              string       `yaml:"name"`
	Homepage          string       `yaml:"homepage,omitempty"`
	Packager          Packager     `yaml:"packager"`
	License           []string     `yaml:"license"`
	IsA               []string     `yaml:"is_a,omitempty"`
	PartOf            string       `yaml:"part_of,omitempty"`
	Summary           string       `yaml:"summary"`
	Description       string       `yaml:"description,omitempty"`
	Archives          []Archive    `yaml:"archives,omitempty"`
	BuildDependencies []Dependency `yaml:"build_dependencies,omitempty"`
	Patches           []Patch      `yaml:"patches,omitempty"`
}

// UpdateType is a type tag on a history entry. When Package is set the
// tag only applies to the sub-package with that name.
type UpdateType struct {
	Name    string `yaml:"type"`
	Package string `yaml:"package,omitempty"`
}

// UpdateAction is a maintenance action triggered by a history entry.
// Package scopes it like UpdateType; Target overrides the package the
// action is applied to.
type UpdateAction struct {
	Name    string `yaml:"action"`
	Package string `yaml:"package,omitempty"`
	Target  string `yaml:"target,omitempty"`
}

// Update is one release of the spec. Histories are ordered newest first.
type Update struct {
	Release  string         `yaml:"release"`
	Type     string         `yaml:"type,omitempty"`
	Types    []UpdateType   `yaml:"types,omitempty"`
	Date     string         `yaml:"date"`
	Version  string         `yaml:"version"`
	Comment  string         `yaml:"comment,omitempty"`
	Name     string         `yaml:"name,omitempty"`
	Email    string         `yaml:"email,omitempty"`
	Requires []UpdateAction `yaml:"requires,omitempty"`
}

func (u Update) String() string {
	s := fmt.Sprintf("%s, ver=%s, rel=%s", u.Date, u.Version, u.Release)
	if u.Type != "" {
		s += ", type=" + u.Type
	}
	return s
}

type Provides struct {
	Comar       []string `yaml:"comar,omitempty"`
	PkgConfig   []string `yaml:"pkgconfig,omitempty"`
	PkgConfig32 []string `yaml:"pkgconfig32,omitempty"`
}

type Package struct {
	Name                string              `yaml:"name"`
	Summary             string              `yaml:"summary,omitempty"`
	Description         string              `yaml:"description,omitempty"`
	IsA                 []string            `yaml:"is_a,omitempty"`
	PartOf              string              `yaml:"part_of,omitempty"`
	License             []string            `yaml:"license,omitempty"`
	Icon                string              `yaml:"icon,omitempty"`
	BuildType           string              `yaml:"build_type,omitempty"`
	BuildFlags          []string            `yaml:"build_flags,omitempty"`
	BuildDependencies   []Dependency        `yaml:"build_dependencies,omitempty"`
	RuntimeDependencies RuntimeDependencies `yaml:"runtime_dependencies,omitempty"`
	Conflicts           []Dependency        `yaml:"conflicts,omitempty"`
	Replaces            []Dependency        `yaml:"replaces,omitempty"`
	Provides            Provides            `yaml:"provides,omitempty"`
	History             []Update            `yaml:"history,omitempty"`
}

// PackageDir returns the build output directory for the package,
// "<root>/<name>-<version>-<release>".
func (p Package) PackageDir(root string, version string, release string) string {
	return filepath.Join(root, fmt.Sprintf("%s-%s-%s", p.Name, version, release))
}

type Component struct {
	Name        string   `yaml:"name"`
	Summary     string   `yaml:"summary,omitempty"`
	Description string   `yaml:"description,omitempty"`
	Group       string   `yaml:"group,omitempty"`
	Maintainer  Packager `yaml:"maintainer,omitempty"`
	Packages    []string `yaml:"packages,omitempty"`
}

type Group struct {
	Name    string `yaml:"name"`
	Summary string `yaml:"summary,omitempty"`
	Icon    string `yaml:"icon,omitempty"`
}

// SpecFile is the full specification tree of one source package.
type SpecFile struct {
	Source     Source      `yaml:"source"`
	Packages   []Package   `yaml:"packages"`
	History    []Update    `yaml:"history"`
	Components []Component `yaml:"components,omitempty"`
	Groups     []Group     `yaml:"groups,omitempty"`
}

// SourceVersion returns the current version, read from the newest
// history entry. It returns "" for an empty history.
func (s SpecFile) SourceVersion() string {
	if len(s.History) == 0 {
		return ""
	}
	return s.History[0].Version
}

// SourceRelease returns the current release, read from the newest
// history entry. It returns "" for an empty history.
func (s SpecFile) SourceRelease() string {
	if len(s.History) == 0 {
		return ""
	}
	return s.History[0].Release
}

// Package looks up a sub-package by name.
func (s SpecFile) Package(name string) (Package, bool) {
	for _, pkg := range s.Packages {
		if pkg.Name == name {
			return pkg, true
		}
	}
	return Package{}, false
}
