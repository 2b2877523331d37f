package ports

import "pspec/internal/types"

// RepoStatePort exposes the newest package of each name available in
// the configured repositories.
type RepoStatePort interface {
	RepoPackage(name string) (types.PackageMeta, bool)
}
