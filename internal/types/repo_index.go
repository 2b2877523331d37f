package types

// PackageMeta is the version/release pair known for a package name,
// either installed on the system or available in a repository.
type PackageMeta struct {
	Name    string `yaml:"name" toml:"name"`
	Version string `yaml:"version" toml:"version"`
	Release string `yaml:"release" toml:"release"`
	PartOf  string `yaml:"part_of,omitempty" toml:"part_of,omitempty"`
}

// RepoIndexFile is the on-disk repository index: the newest package of
// each name available for installation.
type RepoIndexFile struct {
	Packages map[string]PackageMeta `yaml:"packages"`
}

// InstalledDBFile is the on-disk installed package database.
type InstalledDBFile struct {
	Packages []PackageMeta `toml:"package"`
}

// ComponentIndexFile lists component definitions outside a spec file.
type ComponentIndexFile struct {
	Components []Component `yaml:"components"`
}
