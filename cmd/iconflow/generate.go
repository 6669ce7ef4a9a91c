package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/awantoch/iconflow/config"
	"github.com/awantoch/iconflow/constants"
	"github.com/awantoch/iconflow/engine"
	"github.com/awantoch/iconflow/telemetry"
	"github.com/awantoch/iconflow/utils"
)

type generateFlags struct {
	source string
	output string
	target string
	layout string
	prefix string
	clean  bool
	dryRun bool
}

// sourceFlags registers the flags shared by every command that scans.
func sourceFlags(cmd *cobra.Command, f *generateFlags) {
	cmd.Flags().StringVar(&f.source, "source", "", "Icon source directory (overrides config)")
	cmd.Flags().StringVar(&f.prefix, "prefix", "", "Prefix prepended to every symbol")
}

// outputFlags registers the flags that shape emitted files.
func outputFlags(cmd *cobra.Command, f *generateFlags) {
	cmd.Flags().StringVar(&f.output, "output", "", "Output directory (overrides config)")
	cmd.Flags().StringVar(&f.target, "target", "", "Emission target: tsx or go")
	cmd.Flags().StringVar(&f.layout, "layout", "", "Output layout: per-icon or bundle")
	cmd.Flags().BoolVar(&f.clean, "clean", false, "Remove stale generated files")
}

// apply copies the flags the user set onto cfg.
func (f *generateFlags) apply(cmd *cobra.Command) func(*config.Config) {
	return func(cfg *config.Config) {
		changed := func(name string) bool {
			fl := cmd.Flags().Lookup(name)
			return fl != nil && fl.Changed
		}
		if changed("source") {
			cfg.Source = f.source
		}
		if changed("output") {
			cfg.Output = f.output
		}
		if changed("target") {
			cfg.Target = f.target
		}
		if changed("layout") {
			cfg.Layout = f.layout
		}
		if changed("prefix") {
			cfg.Prefix = f.prefix
		}
		if changed("clean") {
			cfg.Clean = f.clean
		}
	}
}

// newGenerateCmd creates the 'generate' subcommand.
func newGenerateCmd() *cobra.Command {
	var flags generateFlags
	cmd := &cobra.Command{
		Use:   constants.CmdGenerate,
		Short: constants.DescGenerate,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			runGenerate(cmd, &flags)
		},
	}
	sourceFlags(cmd, &flags)
	outputFlags(cmd, &flags)
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Render without writing files")
	return cmd
}

func runGenerate(cmd *cobra.Command, flags *generateFlags) {
	cfg := mustLoadConfig(cmd, flags.apply(cmd))
	if cfg == nil {
		return
	}
	ctx := cmd.Context()
	tel, err := telemetry.Init(ctx, cfg)
	if err != nil {
		fail(err)
		return
	}

	res, err := engine.NewEngine(cfg, tel).Generate(ctx, engine.Options{DryRun: flags.dryRun})
	if shutdownErr := tel.Shutdown(ctx); shutdownErr != nil {
		utils.Warn("telemetry shutdown: %v", shutdownErr)
	}
	if err != nil {
		fail(err)
		return
	}

	if res.DryRun {
		utils.User(constants.MsgDryRun, res.Assets, cfg.Output)
		for _, name := range res.Files.Written {
			utils.User("  %s", name)
		}
		return
	}
	utils.User("%s", color.GreenString(constants.MsgGenerated,
		res.Assets, cfg.Output, len(res.Files.Written), len(res.Files.Unchanged), len(res.Files.Removed)))
	if res.Collisions > 0 {
		utils.User("%s", color.YellowString("%d symbol(s) needed collision escalation; run with --debug for details", res.Collisions))
	}
}
