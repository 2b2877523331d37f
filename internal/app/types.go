package app

type ValidateRequest struct {
	SpecPath string
	// Root, when set, validates every spec file found below it instead
	// of SpecPath.
	Root string
}

type ValidateResult struct {
	Path       string
	SourceName string
	Version    string
	Release    string
	Packages   []string
}

type InfoRequest struct {
	SpecPath    string
	Package     string
	PackagesDir string
}

type PackageInfo struct {
	Name         string
	Version      string
	Release      string
	Summary      string
	Description  string
	Licenses     []string
	Component    string
	Provides     []string
	Dependencies []string
	PackageDir   string
}

type InfoResult struct {
	SourceName        string
	Version           string
	Release           string
	Summary           string
	Licenses          []string
	Component         string
	BuildDependencies []string
	LastUpdate        string
	Packages          []PackageInfo
}

// StateRequest carries the inputs shared by every query that evaluates
// requirements: the spec, the installed database, optional component
// definitions and the version scheme.
type StateRequest struct {
	SpecPath       string
	InstalledPath  string
	RepoIndex      string
	ComponentsPath string
	VersionScheme  string
}

type CheckRequest struct {
	StateRequest
	Package      string
	IncludeBuild bool
	// Quiet only answers installability and skips collecting the unmet
	// dependency lists.
	Quiet bool
}

type PackageCheck struct {
	Name        string
	Installable bool
	Unmet       []string
	// UnmetWithRepo lists what stays unmet once the repository packages
	// are considered available alongside the installed ones. Only set
	// when a repository index is given.
	UnmetWithRepo []string
	// Conflicts lists the declared conflicts matching installed packages.
	Conflicts []string
}

type CheckResult struct {
	SourceName string
	Packages   []PackageCheck
	UnmetBuild []string
}

type RepoCheckRequest struct {
	StateRequest
	Package string
}

type RepoCheckResult struct {
	SourceName string
	Packages   []PackageCheck
}

type UpdatesRequest struct {
	SpecPath      string
	InstalledPath string
	Package       string
	OldRelease    string
	Type          string
}

type UpdatesResult struct {
	Package    string
	OldRelease string
	Installed  bool
	Types      []string
	Actions    map[string][]string
	// HasType answers the Type query of the request; false when no type
	// was asked for.
	HasType bool
}

type RemovalRequest struct {
	StateRequest
	Remove  string
	Package string
}

type PackageBlockers struct {
	Name         string
	Requirements []string
}

type RemovalResult struct {
	Removed  string
	Safe     bool
	Blockers []PackageBlockers
}

type SatisfiesRequest struct {
	InstalledPath string
	RepoIndex     string
	Constraints   []string
	VersionScheme string
}

type ConstraintResult struct {
	Constraint  string
	Label       string
	Installed   bool
	InRepo      bool
	RepoChecked bool
}

type SatisfiesResult struct {
	Results []ConstraintResult
}
