package adapters

import (
	"fmt"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"pspec/internal/ports"
	"pspec/internal/types"
)

// ComponentIndexAdapter expands component names to package names. It is
// built once from component definitions and never modified afterwards.
type ComponentIndexAdapter struct {
	packages map[string][]string
}

func NewComponentIndexAdapter() *ComponentIndexAdapter {
	return &ComponentIndexAdapter{packages: map[string][]string{}}
}

// Add registers a component. Packages of a component registered more
// than once are merged in registration order, without duplicates.
func (a *ComponentIndexAdapter) Add(component types.Component) {
	a.AddMembers(component.Name, component.Packages)
}

func (a *ComponentIndexAdapter) AddMembers(name string, packages []string) {
	existing, ok := a.packages[name]
	if !ok {
		existing = []string{}
	}
	seen := make(map[string]struct{}, len(existing))
	for _, pkg := range existing {
		seen[pkg] = struct{}{}
	}
	for _, pkg := range packages {
		if _, dup := seen[pkg]; dup {
			continue
		}
		seen[pkg] = struct{}{}
		existing = append(existing, pkg)
	}
	a.packages[name] = existing
}

// LoadFile registers every component of a YAML component index file.
func (a *ComponentIndexAdapter) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("component index file not found").
			WithCause(err)
	}
	var file types.ComponentIndexFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid component index format").
			WithCause(err)
	}
	for _, component := range file.Components {
		if component.Name == "" {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("component without name in %s", path))
		}
		a.Add(component)
	}
	log.Debug().Str("path", path).Int("components", len(file.Components)).Msg("component index loaded")
	return nil
}

func (a *ComponentIndexAdapter) Expand(name string) ([]string, error) {
	packages, ok := a.packages[name]
	if !ok {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("unknown component: %s", name))
	}
	return append([]string(nil), packages...), nil
}

var _ ports.ComponentExpanderPort = (*ComponentIndexAdapter)(nil)
