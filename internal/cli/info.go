package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pspec/internal/app"
)

type infoOptions struct {
	Spec        string
	Package     string
	PackagesDir string
}

func newInfoCommand() *cobra.Command {
	opts := infoOptions{}
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Describe the source and its packages",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInfo(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Spec, "spec", "", "Package spec file")
	cmd.Flags().StringVar(&opts.Package, "package", "", "Only describe this package")
	cmd.Flags().StringVar(&opts.PackagesDir, "packages-dir", "", "Build output root used to show package directories")
	_ = viper.BindPFlag("spec", cmd.Flags().Lookup("spec"))
	_ = viper.BindPFlag("packages_dir", cmd.Flags().Lookup("packages-dir"))
	return cmd
}

func runInfo(ctx context.Context, cmd *cobra.Command, opts infoOptions) error {
	service := newAppService()
	result, err := service.Info(ctx, app.InfoRequest{
		SpecPath:    resolveString(cmd, opts.Spec, "spec", "spec"),
		Package:     opts.Package,
		PackagesDir: resolveString(cmd, opts.PackagesDir, "packages_dir", "packages-dir"),
	})
	if err != nil {
		return err
	}
	fmt.Print(renderInfo(result))
	return nil
}
