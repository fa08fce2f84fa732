package cli

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"llmsbrowse/internal/config"
	"llmsbrowse/internal/eventbus"
)

var configInit bool

// configCmd prints the effective configuration or writes the defaults
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration llmsbrowse would run with, after flag overrides.

With --init the default configuration is written to the config path
instead. An existing file is never overwritten.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&configInit, "init", false, "Write the default config file")
}

func runConfig(cmd *cobra.Command, args []string) error {
	svc := config.NewConfigService(GlobalOpts.ConfigPath)

	if configInit {
		if svc.Exists() {
			return fmt.Errorf("config already exists at %s", svc.Path())
		}
		if err := svc.Save(config.DefaultConfig()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", svc.Path())
		return nil
	}

	cfg, err := svc.Load()
	if err != nil {
		return err
	}
	applyOverrides(cfg)

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "# %s\n", svc.Path())
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

// loadOrCreateConfig loads the config file, writing the defaults first when
// it does not exist yet
func loadOrCreateConfig(bus eventbus.EventBus) (*config.Config, error) {
	svc := config.NewConfigServiceWithBus(bus, GlobalOpts.ConfigPath)

	cfg, err := svc.Load()
	if err != nil {
		return nil, err
	}
	if !svc.Exists() {
		if err := svc.Save(cfg); err != nil {
			// Not fatal, the defaults are still usable
			log.Warn().Err(err).Str("path", svc.Path()).Msg("could not write default config")
		}
	}

	applyOverrides(cfg)
	return cfg, nil
}

// applyOverrides copies the set global flags over cfg
func applyOverrides(cfg *config.Config) {
	if GlobalOpts.LogFile != "" {
		cfg.Log.File = GlobalOpts.LogFile
	}
	if GlobalOpts.PageSize > 0 {
		cfg.PageSize = GlobalOpts.PageSize
	}
	if GlobalOpts.Clipboard != "" {
		cfg.Clipboard = GlobalOpts.Clipboard
	}
	if GlobalOpts.Match != "" {
		cfg.Match = GlobalOpts.Match
	}
	cfg.Normalize()
}
