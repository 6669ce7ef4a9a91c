package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/awantoch/iconflow/config"
	"github.com/awantoch/iconflow/constants"
	"github.com/awantoch/iconflow/model"
	"github.com/awantoch/iconflow/utils"
)

var (
	exit       = os.Exit
	configPath string
	debug      bool
)

// NewRootCmd creates the root 'iconflow' command with persistent flags and subcommands.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "iconflow",
		Short:         constants.DescRoot,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultConfigPath, "Path to iconflow config JSON")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logs")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		// Load environment variables from .env file, if present
		_ = godotenv.Load()
		if debug || os.Getenv(constants.EnvDebug) != "" {
			utils.SetMode("debug")
		}
	}

	rootCmd.AddCommand(newGenerateCmd(), newListCmd(), newCheckCmd())
	return rootCmd
}

// loadConfig layers defaults, the config file, the environment and finally
// the command's flags. The default config path may be absent; an explicit
// --config must exist.
func loadConfig(cmd *cobra.Command, flags func(*config.Config)) (*config.Config, error) {
	required := false
	if f := cmd.Flag("config"); f != nil {
		required = f.Changed
	}
	cfg, err := config.LoadOrDefault(configPath, required)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()
	if flags != nil {
		flags(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Log.Level == "debug" {
		utils.SetMode("debug")
	}
	return cfg, nil
}

// mustLoadConfig loads the config or exits with the generic failure code.
func mustLoadConfig(cmd *cobra.Command, flags func(*config.Config)) *config.Config {
	cfg, err := loadConfig(cmd, flags)
	if err != nil {
		utils.Error(constants.ErrConfigLoad, configPath, err)
		exit(model.ExitGeneric)
		return nil
	}
	return cfg
}

// fail logs err and exits with the code of its kind.
func fail(err error) {
	utils.Error(constants.ErrRunFailed, err)
	exit(model.ExitCode(err))
}
