package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// Validate loads and prepares a single spec file, or every spec file of
// a source tree when Root is set.
func (s Service) Validate(ctx context.Context, req ValidateRequest) ([]ValidateResult, error) {
	if strings.TrimSpace(req.Root) == "" {
		result, err := s.validateOne(ctx, req.SpecPath)
		if err != nil {
			return nil, err
		}
		return []ValidateResult{result}, nil
	}
	if s.FindSpecs == nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("spec tree discovery is not configured")
	}
	paths, err := s.FindSpecs(req.Root)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("no spec files found below %s", req.Root))
	}
	results := make([]ValidateResult, 0, len(paths))
	for _, path := range paths {
		result, err := s.validateOne(ctx, path)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

func (s Service) validateOne(ctx context.Context, path string) (ValidateResult, error) {
	spec, err := s.loadSpec(ctx, path)
	if err != nil {
		return ValidateResult{}, err
	}
	names := make([]string, 0, len(spec.Packages))
	for _, pkg := range spec.Packages {
		names = append(names, pkg.Name)
	}
	return ValidateResult{
		Path:       path,
		SourceName: spec.Source.Name,
		Version:    spec.SourceVersion(),
		Release:    spec.SourceRelease(),
		Packages:   names,
	}, nil
}
