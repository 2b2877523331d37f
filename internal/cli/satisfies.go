package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pspec/internal/app"
)

type satisfiesOptions struct {
	Installed   string
	RepoIndex   string
	Constraints []string
}

func newSatisfiesCommand() *cobra.Command {
	opts := satisfiesOptions{}
	cmd := &cobra.Command{
		Use:   "satisfies [constraint]...",
		Short: "Evaluate constraints such as zlib>=1.3 against installed and repository state",
		Long: "Evaluate constraints such as zlib>=1.3 against installed and repository state.\n" +
			"Without arguments or --constraint flags the constraints config list is used.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSatisfies(cmd.Context(), cmd, opts, args)
		},
	}
	cmd.Flags().StringVar(&opts.Installed, "installed", "", "Installed package database (TOML)")
	cmd.Flags().StringVar(&opts.RepoIndex, "repo-index", "", "Repository index file")
	cmd.Flags().StringSliceVar(&opts.Constraints, "constraint", nil, "Constraint to evaluate (repeatable)")
	_ = viper.BindPFlag("installed", cmd.Flags().Lookup("installed"))
	_ = viper.BindPFlag("repo_index", cmd.Flags().Lookup("repo-index"))
	return cmd
}

func runSatisfies(ctx context.Context, cmd *cobra.Command, opts satisfiesOptions, args []string) error {
	constraints := append([]string(nil), args...)
	if len(constraints) == 0 {
		constraints = resolveStrings(cmd, opts.Constraints, "constraints", "constraint")
	} else {
		constraints = append(constraints, opts.Constraints...)
	}
	service := newAppService()
	result, err := service.Satisfies(ctx, app.SatisfiesRequest{
		InstalledPath: resolveString(cmd, opts.Installed, "installed", "installed"),
		RepoIndex:     resolveString(cmd, opts.RepoIndex, "repo_index", "repo-index"),
		Constraints:   constraints,
		VersionScheme: viper.GetString("version_scheme"),
	})
	if err != nil {
		return err
	}
	fmt.Print(renderSatisfies(result))
	return nil
}
