package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pspec/internal/app"
)

type updatesOptions struct {
	Spec       string
	Installed  string
	Package    string
	OldRelease string
	Type       string
}

func newUpdatesCommand() *cobra.Command {
	opts := updatesOptions{}
	cmd := &cobra.Command{
		Use:   "updates",
		Short: "Show update types and actions since an old release",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runUpdates(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Spec, "spec", "", "Package spec file")
	cmd.Flags().StringVar(&opts.Installed, "installed", "", "Installed package database used when --old-release is omitted")
	cmd.Flags().StringVar(&opts.Package, "package", "", "Package name")
	cmd.Flags().StringVar(&opts.OldRelease, "old-release", "", "Release upgraded from")
	cmd.Flags().StringVar(&opts.Type, "type", "", "Report whether this update type applies")
	_ = viper.BindPFlag("spec", cmd.Flags().Lookup("spec"))
	_ = viper.BindPFlag("installed", cmd.Flags().Lookup("installed"))
	return cmd
}

func runUpdates(ctx context.Context, cmd *cobra.Command, opts updatesOptions) error {
	service := newAppService()
	result, err := service.Updates(ctx, app.UpdatesRequest{
		SpecPath:      resolveString(cmd, opts.Spec, "spec", "spec"),
		InstalledPath: resolveString(cmd, opts.Installed, "installed", "installed"),
		Package:       opts.Package,
		OldRelease:    opts.OldRelease,
		Type:          opts.Type,
	})
	if err != nil {
		return err
	}
	fmt.Print(renderUpdates(result))
	if opts.Type != "" {
		fmt.Printf("%s %s\n", labelStyle.Render(opts.Type+":"), status(result.HasType, "yes", "no"))
	}
	return nil
}
