package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pspec/internal/app"
)

type validateOptions struct {
	Spec string
	Dir  string
}

func newValidateCommand() *cobra.Command {
	opts := validateOptions{}
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate package specs and resolve their placeholders",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Spec, "spec", "", "Package spec file")
	cmd.Flags().StringVar(&opts.Dir, "dir", "", "Validate every pspec.yaml below this directory")
	_ = viper.BindPFlag("spec", cmd.Flags().Lookup("spec"))
	return cmd
}

func runValidate(ctx context.Context, cmd *cobra.Command, opts validateOptions) error {
	service := newAppService()
	results, err := service.Validate(ctx, app.ValidateRequest{
		SpecPath: resolveString(cmd, opts.Spec, "spec", "spec"),
		Root:     opts.Dir,
	})
	if err != nil {
		return err
	}
	for _, result := range results {
		fmt.Printf("validated: %s %s-%s (%s)\n", result.SourceName, result.Version, result.Release, strings.Join(result.Packages, ", "))
	}
	return nil
}
