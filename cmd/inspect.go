package cmd

import (
	"github.com/gripdash/gripdash/config"
	"github.com/gripdash/gripdash/share"
	"github.com/spf13/cobra"
	"github.com/yaoapp/kun/maps"
	"github.com/yaoapp/kun/utils"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Show app configure",
	Long:  "Show app configure",
	Run: func(cmd *cobra.Command, args []string) {
		Boot()
		res := maps.Map{
			"version": share.VERSION,
			"config":  config.Conf,
		}
		utils.Dump(res)
	},
}
