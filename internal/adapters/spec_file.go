package adapters

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"pspec/internal/types"
)

type SpecFileAdapter struct{}

func NewSpecFileAdapter() SpecFileAdapter {
	return SpecFileAdapter{}
}

// LoadSpec reads and decodes a spec file. The returned tree is not yet
// validated and may still contain "current" placeholders.
func (a SpecFileAdapter) LoadSpec(path string) (types.SpecFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.SpecFile{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("spec file not found").
			WithCause(err)
	}
	return a.Decode(data)
}

func (a SpecFileAdapter) Decode(data []byte) (types.SpecFile, error) {
	var spec types.SpecFile
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return types.SpecFile{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse spec yaml").
			WithCause(err)
	}
	return spec, nil
}
