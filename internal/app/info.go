package app

import (
	"context"
	"strings"

	"pspec/internal/types"
)

// Info describes the source and its packages the way a package manager
// shows them to a user.
func (s Service) Info(ctx context.Context, req InfoRequest) (InfoResult, error) {
	spec, err := s.loadSpec(ctx, req.SpecPath)
	if err != nil {
		return InfoResult{}, err
	}
	packages, err := selectPackages(spec, req.Package)
	if err != nil {
		return InfoResult{}, err
	}
	version := spec.SourceVersion()
	release := spec.SourceRelease()

	var buildDeps []string
	for _, dep := range spec.Source.BuildDependencies {
		buildDeps = append(buildDeps, dep.Package)
	}
	result := InfoResult{
		SourceName:        spec.Source.Name,
		Version:           version,
		Release:           release,
		Summary:           spec.Source.Summary,
		Licenses:          spec.Source.License,
		Component:         spec.Source.PartOf,
		BuildDependencies: buildDeps,
		LastUpdate:        spec.History[0].String(),
	}
	packagesDir := strings.TrimSpace(req.PackagesDir)
	for _, pkg := range packages {
		info := PackageInfo{
			Name:         pkg.Name,
			Version:      version,
			Release:      release,
			Summary:      pkg.Summary,
			Description:  pkg.Description,
			Licenses:     pkg.License,
			Component:    pkg.PartOf,
			Provides:     providedNames(pkg.Provides),
			Dependencies: dependencyNames(pkg),
		}
		if info.Summary == "" {
			info.Summary = spec.Source.Summary
		}
		if len(info.Licenses) == 0 {
			info.Licenses = spec.Source.License
		}
		if info.Component == "" {
			info.Component = spec.Source.PartOf
		}
		if packagesDir != "" {
			info.PackageDir = pkg.PackageDir(packagesDir, version, release)
		}
		result.Packages = append(result.Packages, info)
	}
	return result, nil
}

func providedNames(provides types.Provides) []string {
	var out []string
	out = append(out, provides.Comar...)
	for _, name := range provides.PkgConfig {
		out = append(out, "pkgconfig("+name+")")
	}
	for _, name := range provides.PkgConfig32 {
		out = append(out, "pkgconfig32("+name+")")
	}
	return out
}

// dependencyNames lists component references, then package names, then
// OR-groups rendered as "{a or b}".
func dependencyNames(pkg types.Package) []string {
	runtime := pkg.RuntimeDependencies
	var out []string
	out = append(out, runtime.Components...)
	for _, dep := range runtime.Dependencies {
		out = append(out, dep.Package)
	}
	for _, group := range runtime.AnyDependencies {
		names := make([]string, 0, len(group.Dependencies))
		for _, dep := range group.Dependencies {
			names = append(names, dep.Package)
		}
		out = append(out, "{"+strings.Join(names, " or ")+"}")
	}
	return out
}
