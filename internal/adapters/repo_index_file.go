package adapters

import (
	"os"
	"sort"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"pspec/internal/ports"
	"pspec/internal/types"
)

// RepoIndexFileAdapter serves repository state from a YAML index file.
// The file is read lazily on first use and cached; call Load before
// sharing the adapter between goroutines.
type RepoIndexFileAdapter struct {
	Path   string
	cached types.RepoIndexFile
	loaded bool
	err    error
}

func NewRepoIndexFileAdapter(path string) *RepoIndexFileAdapter {
	return &RepoIndexFileAdapter{Path: path}
}

// Load reads the index eagerly so that later lookups cannot fail.
func (a *RepoIndexFileAdapter) Load() error {
	_, err := a.load()
	return err
}

func (a *RepoIndexFileAdapter) RepoPackage(name string) (types.PackageMeta, bool) {
	index, err := a.load()
	if err != nil {
		return types.PackageMeta{}, false
	}
	pkg, ok := index.Packages[name]
	return pkg, ok
}

// Snapshot returns a copy of the repository packages keyed by name.
func (a *RepoIndexFileAdapter) Snapshot() (map[string]types.PackageMeta, error) {
	index, err := a.load()
	if err != nil {
		return nil, err
	}
	out := make(map[string]types.PackageMeta, len(index.Packages))
	for name, pkg := range index.Packages {
		out[name] = pkg
	}
	return out, nil
}

// ComponentMembers returns, per component, the sorted names of the
// repository packages declaring themselves part of it.
func (a *RepoIndexFileAdapter) ComponentMembers() (map[string][]string, error) {
	index, err := a.load()
	if err != nil {
		return nil, err
	}
	members := map[string][]string{}
	for name, pkg := range index.Packages {
		if pkg.PartOf == "" {
			continue
		}
		members[pkg.PartOf] = append(members[pkg.PartOf], name)
	}
	for component := range members {
		sort.Strings(members[component])
	}
	return members, nil
}

func (a *RepoIndexFileAdapter) load() (types.RepoIndexFile, error) {
	if a.loaded {
		return a.cached, a.err
	}
	a.loaded = true
	data, err := os.ReadFile(a.Path)
	if err != nil {
		a.err = errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("repo index file not found").
			WithCause(err)
		return types.RepoIndexFile{}, a.err
	}
	var idx types.RepoIndexFile
	if err := yaml.Unmarshal(data, &idx); err != nil {
		a.err = errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid repo index format").
			WithCause(err)
		return types.RepoIndexFile{}, a.err
	}
	if idx.Packages == nil {
		idx.Packages = map[string]types.PackageMeta{}
	}
	for name, pkg := range idx.Packages {
		if pkg.Name == "" {
			pkg.Name = name
			idx.Packages[name] = pkg
		}
	}
	a.cached = idx
	return idx, nil
}

var _ ports.RepoStatePort = (*RepoIndexFileAdapter)(nil)
