package cli

import (
	"context"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"

	"pspec/internal/app"
)

type removalOptions struct {
	State   stateOptions
	Remove  string
	Package string
	Strict  bool
}

func newRemovalCommand() *cobra.Command {
	opts := removalOptions{}
	cmd := &cobra.Command{
		Use:   "removal",
		Short: "Show which package requirements break when a package is removed",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRemoval(cmd.Context(), cmd, opts)
		},
	}
	addStateFlags(cmd, &opts.State)
	cmd.Flags().StringVar(&opts.Remove, "remove", "", "Package that would be removed")
	cmd.Flags().StringVar(&opts.Package, "package", "", "Only inspect this package of the spec")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "Fail when the removal breaks a requirement")
	return cmd
}

func runRemoval(ctx context.Context, cmd *cobra.Command, opts removalOptions) error {
	service := newAppService()
	result, err := service.Removal(ctx, app.RemovalRequest{
		StateRequest: opts.State.request(cmd),
		Remove:       opts.Remove,
		Package:      opts.Package,
	})
	if err != nil {
		return err
	}
	fmt.Print(renderRemoval(result))
	if resolveBool(cmd, opts.Strict, "strict", "strict") && !result.Safe {
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("removing %s breaks %d package(s)", result.Removed, len(result.Blockers)))
	}
	return nil
}
