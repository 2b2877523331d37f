package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pspec/internal/app"
)

// stateOptions holds the flags shared by every command that evaluates
// requirements against installed or repository state.
type stateOptions struct {
	Spec       string
	Installed  string
	RepoIndex  string
	Components string
}

func addStateFlags(cmd *cobra.Command, opts *stateOptions) {
	cmd.Flags().StringVar(&opts.Spec, "spec", "", "Package spec file")
	cmd.Flags().StringVar(&opts.Installed, "installed", "", "Installed package database (TOML)")
	cmd.Flags().StringVar(&opts.RepoIndex, "repo-index", "", "Repository index file")
	cmd.Flags().StringVar(&opts.Components, "components", "", "Component index file")
	_ = viper.BindPFlag("spec", cmd.Flags().Lookup("spec"))
	_ = viper.BindPFlag("installed", cmd.Flags().Lookup("installed"))
	_ = viper.BindPFlag("repo_index", cmd.Flags().Lookup("repo-index"))
	_ = viper.BindPFlag("components", cmd.Flags().Lookup("components"))
}

func (o stateOptions) request(cmd *cobra.Command) app.StateRequest {
	return app.StateRequest{
		SpecPath:       resolveString(cmd, o.Spec, "spec", "spec"),
		InstalledPath:  resolveString(cmd, o.Installed, "installed", "installed"),
		RepoIndex:      resolveString(cmd, o.RepoIndex, "repo_index", "repo-index"),
		ComponentsPath: resolveString(cmd, o.Components, "components", "components"),
		VersionScheme:  viper.GetString("version_scheme"),
	}
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func resolveStrings(cmd *cobra.Command, values []string, key string, flagName string) []string {
	if cmd == nil {
		if len(values) > 0 {
			return values
		}
		return viper.GetStringSlice(key)
	}
	if flagChanged(cmd, flagName) {
		return values
	}
	return viper.GetStringSlice(key)
}

func resolveBool(cmd *cobra.Command, value bool, key string, flagName string) bool {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetBool(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}
