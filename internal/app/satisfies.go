package app

import (
	"context"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"pspec/internal/core"
	"pspec/internal/shared"
)

// Satisfies evaluates ad-hoc constraints such as "zlib>=1.3" against the
// installed database and, when given, the repository.
func (s Service) Satisfies(ctx context.Context, req SatisfiesRequest) (SatisfiesResult, error) {
	raw := shared.UniqueStrings(req.Constraints)
	if len(raw) == 0 {
		return SatisfiesResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("at least one constraint is required")
	}
	scheme, err := core.ParseVersionScheme(req.VersionScheme)
	if err != nil {
		return SatisfiesResult{}, err
	}
	installed, err := s.loadInstalled(req.InstalledPath)
	if err != nil {
		return SatisfiesResult{}, err
	}
	repo, err := s.loadRepo(req.RepoIndex)
	if err != nil {
		return SatisfiesResult{}, err
	}
	result := SatisfiesResult{}
	for _, value := range raw {
		dep, err := core.ParseConstraint(value)
		if err != nil {
			return SatisfiesResult{}, err
		}
		constraint := core.NewConstraint(dep, scheme)
		entry := ConstraintResult{
			Constraint: value,
			Label:      constraint.Label(),
			Installed:  constraint.SatisfiedByInstalled(installed),
		}
		if repo != nil {
			entry.RepoChecked = true
			entry.InRepo = constraint.SatisfiedByRepo(repo)
		}
		log.Ctx(ctx).Debug().Str("constraint", entry.Label).Bool("installed", entry.Installed).Msg("constraint evaluated")
		result.Results = append(result.Results, entry)
	}
	return result, nil
}
