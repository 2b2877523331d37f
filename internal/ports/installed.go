package ports

import "pspec/internal/types"

// InstalledStatePort is a read-only view of the installed package
// database. Implementations must return a consistent snapshot for the
// lifetime of a query batch.
type InstalledStatePort interface {
	IsInstalled(name string) bool
	InstalledReleaseOf(name string) (string, bool)
	InstalledPackage(name string) (types.PackageMeta, bool)
}
