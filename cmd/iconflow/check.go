package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/awantoch/iconflow/constants"
	"github.com/awantoch/iconflow/engine"
	"github.com/awantoch/iconflow/model"
	"github.com/awantoch/iconflow/utils"
)

// newCheckCmd creates the 'check' subcommand.
func newCheckCmd() *cobra.Command {
	var flags generateFlags
	cmd := &cobra.Command{
		Use:   constants.CmdCheck,
		Short: constants.DescCheck,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cfg := mustLoadConfig(cmd, flags.apply(cmd))
			if cfg == nil {
				return
			}
			drift, err := engine.NewEngine(cfg, nil).Check(cmd.Context())
			if err != nil {
				fail(err)
				return
			}
			if len(drift) == 0 {
				utils.User("%s", color.GreenString(constants.MsgUpToDate, cfg.Output))
				return
			}
			utils.User("%s", color.RedString(constants.MsgDrift, cfg.Output, len(drift)))
			for _, d := range drift {
				utils.User(constants.MsgDriftFile, d.Reason, d.Name)
			}
			exit(model.ExitDrift)
		},
	}
	sourceFlags(cmd, &flags)
	outputFlags(cmd, &flags)
	return cmd
}
