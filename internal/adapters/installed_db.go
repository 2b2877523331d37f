package adapters

import (
	"fmt"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/pelletier/go-toml/v2"

	"pspec/internal/types"
)

// InstalledDBAdapter is an immutable snapshot of the installed package
// database, read once from a TOML file.
type InstalledDBAdapter struct {
	packages map[string]types.PackageMeta
}

func NewInstalledDBAdapter(packages []types.PackageMeta) *InstalledDBAdapter {
	index := make(map[string]types.PackageMeta, len(packages))
	for _, pkg := range packages {
		index[pkg.Name] = pkg
	}
	return &InstalledDBAdapter{packages: index}
}

// LoadInstalledDB reads an installed database such as
//
//	[[package]]
//	name = "zlib"
//	version = "1.3.1"
//	release = "4"
func LoadInstalledDB(path string) (*InstalledDBAdapter, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("installed database not found").
			WithCause(err)
	}
	var db types.InstalledDBFile
	if err := toml.Unmarshal(data, &db); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid installed database format").
			WithCause(err)
	}
	seen := map[string]struct{}{}
	for _, pkg := range db.Packages {
		if pkg.Name == "" {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("installed database entry without name")
		}
		if _, ok := seen[pkg.Name]; ok {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("package %s installed twice", pkg.Name))
		}
		seen[pkg.Name] = struct{}{}
	}
	return NewInstalledDBAdapter(db.Packages), nil
}

func (a *InstalledDBAdapter) IsInstalled(name string) bool {
	_, ok := a.packages[name]
	return ok
}

func (a *InstalledDBAdapter) InstalledReleaseOf(name string) (string, bool) {
	pkg, ok := a.packages[name]
	if !ok {
		return "", false
	}
	return pkg.Release, true
}

func (a *InstalledDBAdapter) InstalledPackage(name string) (types.PackageMeta, bool) {
	pkg, ok := a.packages[name]
	return pkg, ok
}

// Snapshot returns a copy of the installed packages keyed by name.
func (a *InstalledDBAdapter) Snapshot() map[string]types.PackageMeta {
	out := make(map[string]types.PackageMeta, len(a.packages))
	for name, pkg := range a.packages {
		out[name] = pkg
	}
	return out
}
