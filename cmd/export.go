package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gripdash/gripdash/config"
	"github.com/gripdash/gripdash/excel"
	"github.com/gripdash/gripdash/report"
	"github.com/gripdash/gripdash/service"
	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Generate report files",
	Long:  `Generate report files`,
}

var exportDiscoveryCmd = &cobra.Command{
	Use:   "discovery",
	Short: "Generate the discovery report, a .xlsx output switches to the workbook",
	Run: func(cmd *cobra.Command, args []string) {
		Boot()
		conf := config.Conf
		data := exportData(conf)

		path := exportOutput
		if path == "" {
			path = report.DiscoveryFilename(conf.Target, time.Now())
		}

		if strings.EqualFold(filepath.Ext(path), ".xlsx") {
			fatal(excel.WriteDiscovery(path, conf.Target, data.Records))
			fmt.Println(color.GreenString("✨DONE✨ %s", path))
			return
		}

		content, err := report.Discovery(conf.Target, data.Records, &report.Option{Logo: conf.Logo})
		fatal(err)
		fatal(os.WriteFile(path, content, 0644))
		fmt.Println(color.GreenString("✨DONE✨ %s", path))
	},
}

var exportDossierCmd = &cobra.Command{
	Use:   "dossier <indication>",
	Short: "Generate one deep-dive report",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		Boot()
		conf := config.Conf
		data := exportData(conf)

		d, err := data.Dossiers.Get(args[0])
		fatal(err)

		content, err := report.DeepDive(conf.Target, d.Name, d, &report.Option{Logo: conf.Logo})
		fatal(err)

		path := exportOutput
		if path == "" {
			path = report.DossierFilename(conf.Target, d.Name, time.Now())
		}
		fatal(os.WriteFile(path, content, 0644))
		fmt.Println(color.GreenString("✨DONE✨ %s", path))
	},
}

func init() {
	exportCmd.AddCommand(exportDiscoveryCmd, exportDossierCmd)
	exportCmd.PersistentFlags().StringVarP(&exportOutput, "output", "o", "", "Output file, the directory must exist")
}

// exportData loads the datasets the way the service does.
func exportData(conf config.Config) *service.Data {
	data, err := service.Load(conf)
	fatal(err)
	return data
}

func fatal(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("Fatal: %s", err.Error()))
		os.Exit(1)
	}
}
