package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"pspec/internal/adapters"
	"pspec/internal/core"
	"pspec/internal/ports"
	"pspec/internal/shared"
	"pspec/internal/types"
)

// InstalledDB is an installed package snapshot that can also be viewed
// as a plain name to metadata map.
type InstalledDB interface {
	ports.InstalledStatePort
	Snapshot() map[string]types.PackageMeta
}

// RepoIndex is the repository state together with the component
// membership it declares.
type RepoIndex interface {
	ports.RepoStatePort
	Load() error
	Snapshot() (map[string]types.PackageMeta, error)
	ComponentMembers() (map[string][]string, error)
}

type Service struct {
	SpecLoader    ports.SpecFilePort
	Compiler      core.SpecCompiler
	OpenInstalled func(path string) (InstalledDB, error)
	OpenRepo      func(path string) (RepoIndex, error)
	FindSpecs     func(root string) ([]string, error)
}

func NewService() Service {
	return Service{
		SpecLoader: adapters.NewSpecFileAdapter(),
		Compiler:   core.NewSpecCompiler(),
		OpenInstalled: func(path string) (InstalledDB, error) {
			db, err := adapters.LoadInstalledDB(path)
			if err != nil {
				return nil, err
			}
			return db, nil
		},
		OpenRepo: func(path string) (RepoIndex, error) {
			return adapters.NewRepoIndexFileAdapter(path), nil
		},
		FindSpecs: adapters.NewSpecTreeAdapter().FindSpecs,
	}
}

// loadSpec reads a spec file and prepares it for querying.
func (s Service) loadSpec(ctx context.Context, path string) (types.SpecFile, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return types.SpecFile{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("spec path is required")
	}
	spec, err := s.SpecLoader.LoadSpec(path)
	if err != nil {
		return types.SpecFile{}, err
	}
	if err := s.Compiler.Prepare(ctx, &spec); err != nil {
		return types.SpecFile{}, err
	}
	return spec, nil
}

func (s Service) loadInstalled(path string) (InstalledDB, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("installed database path is required")
	}
	return s.OpenInstalled(path)
}

// loadRepo opens and eagerly reads a repository index. An empty path
// yields a nil index.
func (s Service) loadRepo(path string) (RepoIndex, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, nil
	}
	repo, err := s.OpenRepo(path)
	if err != nil {
		return nil, err
	}
	if err := repo.Load(); err != nil {
		return nil, err
	}
	return repo, nil
}

// componentIndex gathers component definitions from the spec itself,
// an optional component index file and the repository's part_of
// declarations, in that order.
func componentIndex(spec types.SpecFile, componentsPath string, repo RepoIndex) (*adapters.ComponentIndexAdapter, error) {
	index := adapters.NewComponentIndexAdapter()
	for _, component := range spec.Components {
		index.Add(component)
	}
	if path := strings.TrimSpace(componentsPath); path != "" {
		if err := index.LoadFile(path); err != nil {
			return nil, err
		}
	}
	if repo != nil {
		members, err := repo.ComponentMembers()
		if err != nil {
			return nil, err
		}
		for _, name := range shared.SortedKeys(members) {
			index.AddMembers(name, members[name])
		}
	}
	return index, nil
}

// selectPackages returns the named package, or every package when name
// is empty.
func selectPackages(spec types.SpecFile, name string) ([]types.Package, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return spec.Packages, nil
	}
	pkg, ok := spec.Package(name)
	if !ok {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("package " + name + " not found in spec " + spec.Source.Name)
	}
	return []types.Package{pkg}, nil
}

func labels(reqs []core.Requirement) []string {
	out := make([]string, 0, len(reqs))
	for _, req := range reqs {
		out = append(out, req.Label())
	}
	return out
}

func constraintLabels(constraints []core.Constraint) []string {
	out := make([]string, 0, len(constraints))
	for _, constraint := range constraints {
		out = append(out, constraint.Label())
	}
	return out
}

func errRepoIndexRequired() error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg("repo index path is required")
}
