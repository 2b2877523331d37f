package core

import (
	"errors"

	"pspec/internal/types"
)

type fakeInstalled map[string]types.PackageMeta

func installedOf(metas ...types.PackageMeta) fakeInstalled {
	out := fakeInstalled{}
	for _, meta := range metas {
		out[meta.Name] = meta
	}
	return out
}

func (f fakeInstalled) IsInstalled(name string) bool {
	_, ok := f[name]
	return ok
}

func (f fakeInstalled) InstalledReleaseOf(name string) (string, bool) {
	meta, ok := f[name]
	return meta.Release, ok
}

func (f fakeInstalled) InstalledPackage(name string) (types.PackageMeta, bool) {
	meta, ok := f[name]
	return meta, ok
}

type fakeRepo map[string]types.PackageMeta

func (f fakeRepo) RepoPackage(name string) (types.PackageMeta, bool) {
	meta, ok := f[name]
	return meta, ok
}

type fakeComponents struct {
	packages map[string][]string
	calls    int
}

func (f *fakeComponents) Expand(name string) ([]string, error) {
	f.calls++
	packages, ok := f.packages[name]
	if !ok {
		return nil, errors.New("no such component")
	}
	return packages, nil
}

func meta(name string, version string, release string) types.PackageMeta {
	return types.PackageMeta{Name: name, Version: version, Release: release}
}
