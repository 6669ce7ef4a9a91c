package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/awantoch/iconflow/constants"
	"github.com/awantoch/iconflow/emitter"
	"github.com/awantoch/iconflow/engine"
	"github.com/awantoch/iconflow/utils"
)

// newListCmd creates the 'list' subcommand.
func newListCmd() *cobra.Command {
	var flags generateFlags
	cmd := &cobra.Command{
		Use:   constants.CmdList + " [symbol...]",
		Short: constants.DescList,
		Run: func(cmd *cobra.Command, args []string) {
			cfg := mustLoadConfig(cmd, flags.apply(cmd))
			if cfg == nil {
				return
			}
			reg, err := engine.NewEngine(cfg, nil).Resolve(cmd.Context())
			if err != nil {
				fail(err)
				return
			}
			entries := reg.Entries()
			if len(args) > 0 {
				entries = entries[:0]
				for _, symbol := range args {
					entry, ok := reg.Lookup(symbol)
					if !ok {
						fail(utils.Errorf(constants.ErrUnknownSymbol, symbol))
						return
					}
					entries = append(entries, entry)
				}
			}
			w := tabwriter.NewWriter(utils.UserOutput(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, constants.HeaderIconList)
			for _, entry := range entries {
				m := emitter.Transform(entry.Asset.SVG)
				fmt.Fprintf(w, constants.OutputFormatFour+"\n",
					entry.Name.Symbol, entry.Name.SourcePath, m.Width+"x"+m.Height, m.Color)
			}
			if err := w.Flush(); err != nil {
				fail(err)
			}
		},
	}
	sourceFlags(cmd, &flags)
	return cmd
}
