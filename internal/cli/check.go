package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"

	"pspec/internal/app"
	"pspec/internal/policies"
)

type checkOptions struct {
	State        stateOptions
	Package      string
	IncludeBuild bool
	Quiet        bool
	Strict       bool
}

func newCheckCommand() *cobra.Command {
	opts := checkOptions{}
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check whether packages are installable against the installed database",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd.Context(), cmd, opts)
		},
	}
	addStateFlags(cmd, &opts.State)
	cmd.Flags().StringVar(&opts.Package, "package", "", "Only check this package")
	cmd.Flags().BoolVar(&opts.IncludeBuild, "build", false, "Also check source build dependencies")
	cmd.Flags().BoolVar(&opts.Quiet, "quiet", false, "Only report installability, not the unmet dependencies")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "Fail when a package is not installable")
	return cmd
}

func runCheck(ctx context.Context, cmd *cobra.Command, opts checkOptions) error {
	quiet := resolveBool(cmd, opts.Quiet, "quiet", "quiet")
	strict := resolveBool(cmd, opts.Strict, "strict", "strict")
	service := newAppService()
	result, err := service.Check(ctx, app.CheckRequest{
		StateRequest: opts.State.request(cmd),
		Package:      opts.Package,
		IncludeBuild: opts.IncludeBuild,
		Quiet:        quiet,
	})
	if err != nil {
		return err
	}
	fmt.Print(renderChecks(result.SourceName, result.Packages))
	if opts.IncludeBuild {
		fmt.Print(renderChecks("build dependencies", []app.PackageCheck{{
			Name:        result.SourceName,
			Installable: len(result.UnmetBuild) == 0,
			Unmet:       result.UnmetBuild,
		}}))
	}
	if !strict {
		return nil
	}
	var failing []string
	for _, check := range result.Packages {
		if err := policies.Block(check.Name, check.Conflicts); err != nil {
			return err
		}
		if !check.Installable {
			failing = append(failing, check.Name)
		}
	}
	if len(failing) > 0 || len(result.UnmetBuild) > 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("dependencies not satisfied: %s", strings.Join(failing, ", ")))
	}
	return nil
}

type repoCheckOptions struct {
	State   stateOptions
	Package string
}

func newRepoCheckCommand() *cobra.Command {
	opts := repoCheckOptions{}
	cmd := &cobra.Command{
		Use:   "repo-check",
		Short: "Check whether the repository can satisfy package dependencies",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRepoCheck(cmd.Context(), cmd, opts)
		},
	}
	addStateFlags(cmd, &opts.State)
	cmd.Flags().StringVar(&opts.Package, "package", "", "Only check this package")
	return cmd
}

func runRepoCheck(ctx context.Context, cmd *cobra.Command, opts repoCheckOptions) error {
	service := newAppService()
	result, err := service.RepoCheck(ctx, app.RepoCheckRequest{
		StateRequest: opts.State.request(cmd),
		Package:      opts.Package,
	})
	if err != nil {
		return err
	}
	fmt.Print(renderChecks(result.SourceName+" (repository)", result.Packages))
	return nil
}
