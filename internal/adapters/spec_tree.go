package adapters

import (
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// SpecFileName is the file name spec trees are searched for.
const SpecFileName = "pspec.yaml"

// SpecTreeAdapter locates spec files below a source tree root.
type SpecTreeAdapter struct{}

func NewSpecTreeAdapter() SpecTreeAdapter {
	return SpecTreeAdapter{}
}

// FindSpecs returns the sorted paths of every spec file below root.
// Version control and build output directories are skipped.
func (a SpecTreeAdapter) FindSpecs(root string) ([]string, error) {
	if root == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("spec tree root is empty")
	}
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && shouldSkipTreeDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Name() == SpecFileName {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to scan spec tree").
			WithCause(err)
	}
	sort.Strings(paths)
	return paths, nil
}

func shouldSkipTreeDir(name string) bool {
	switch name {
	case ".git", ".svn", "build", "install", "packages":
		return true
	default:
		return false
	}
}
