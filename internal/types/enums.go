package types

// PlaceholderCurrent is the bound value that stands for the spec's
// current version or release.
const PlaceholderCurrent = "current"

type VersionScheme string

const (
	VersionSchemeDeb    VersionScheme = "deb"
	VersionSchemePep440 VersionScheme = "pep440"
	VersionSchemeSemver VersionScheme = "semver"
)

// Well-known update types.
const (
	UpdateTypeSecurity = "security"
	UpdateTypeCritical = "critical"
	UpdateTypeBug      = "bug"
)

// Well-known update actions.
const (
	ActionReverseDependencyUpdate = "reverseDependencyUpdate"
	ActionSystemRestart           = "systemRestart"
	ActionServiceRestart          = "serviceRestart"
)

type ConstraintOp string

const (
	ConstraintOpEq  ConstraintOp = "="
	ConstraintOpEq2 ConstraintOp = "=="
	ConstraintOpGte ConstraintOp = ">="
	ConstraintOpLte ConstraintOp = "<="
)
