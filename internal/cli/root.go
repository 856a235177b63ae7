package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"dario.cat/mergo"
	"github.com/spf13/cobra"

	ipaconfig "github.com/0xalexb/ipa-config"
	"github.com/0xalexb/ipa-config/config"
)

// Execute runs the ipa-config command and exits non-zero on failure.
func Execute() {
	if err := execute(context.Background(), newRootCmd()); err != nil {
		os.Exit(1)
	}
}

// execute runs cmd and prints the error unless the config diagnostics already reported it.
func execute(ctx context.Context, cmd *cobra.Command) error {
	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return nil
	}

	if !errors.Is(err, config.ErrFileOpen) && !errors.Is(err, config.ErrParseSyntax) {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
	}

	return err
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		server     string
		domain     string
		output     string
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:           "ipa-config",
		Short:         "Print the IPA server and domain from the IPA configuration file",
		Version:       fmt.Sprintf("%s (built %s)", ipaconfig.Version, ipaconfig.CompiledAt),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := parseSettings()
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("config") {
				cfg.ConfigPath = configPath
			}

			if flags.Changed("output") {
				cfg.Output = output
			}

			if flags.Changed("log-level") {
				cfg.LogLevel = logLevel
			}

			if err := validateOutput(cfg.Output); err != nil {
				return err
			}

			var overrides ipaconfig.Config
			if flags.Changed("server") {
				overrides.ServerName = &server
			}

			if flags.Changed("domain") {
				overrides.Domain = &domain
			}

			resolved, err := load(cmd.Context(), cfg, cmd)
			if err != nil {
				return err
			}

			if err := mergo.Merge(&overrides, resolved); err != nil {
				return fmt.Errorf("error merging configs: %w", err)
			}

			return writeConfig(cmd.OutOrStdout(), cfg.Output, &overrides)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", ipaconfig.DefaultPath, "path to the IPA configuration file (env IPA_CONFIG)")
	cmd.Flags().StringVarP(&server, "server", "s", "", "server name, overrides the configuration file")
	cmd.Flags().StringVarP(&domain, "domain", "d", "", "domain name, overrides the configuration file")
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "output format: text or yaml (env IPA_CONFIG_OUTPUT)")
	cmd.Flags().StringVar(&logLevel, "log-level", "error", "log level: debug, info, warn, error (env IPA_CONFIG_LOG_LEVEL)")

	return cmd
}

func load(ctx context.Context, cfg settings, cmd *cobra.Command) (*ipaconfig.Config, error) {
	var resolved *ipaconfig.Config

	application := newApp(cfg, cmd.ErrOrStderr(), cmd.ErrOrStderr(), &resolved)

	if err := application.start(ctx); err != nil {
		return nil, err
	}

	if err := application.stop(ctx); err != nil {
		return nil, err
	}

	return resolved, nil
}
