// Package cmd implements the gripdash command line: start the service,
// export reports, inspect the configuration.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gripdash/gripdash/config"
	"github.com/gripdash/gripdash/share"
	"github.com/spf13/cobra"
	"github.com/yaoapp/kun/exception"
)

var appPath string
var envFile string

var rootCmd = &cobra.Command{
	Use:   share.BUILDNAME,
	Short: "GRIP Dashboard Engine",
	Long:  `GRIP Dashboard Engine`,
	Args:  cobra.MinimumNArgs(1),
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(os.Stderr, "One or more arguments are not correct", args)
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(
		versionCmd,
		inspectCmd,
		startCmd,
		exportCmd,
	)
	rootCmd.PersistentFlags().StringVarP(&appPath, "app", "a", "", "Application directory")
	rootCmd.PersistentFlags().StringVarP(&envFile, "env", "e", "", "Environment file")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Boot applies the --app and --env flags and reloads the configuration.
func Boot() {
	root := config.Conf.Root
	if appPath != "" {
		r, err := filepath.Abs(appPath)
		if err != nil {
			exception.New("Root error %s", 500, err.Error()).Throw()
		}
		root = r
		os.Setenv("GRIPDASH_ROOT", root)
	}
	if envFile != "" {
		config.Conf = config.LoadFrom(envFile)
	} else {
		config.Conf = config.LoadFrom(filepath.Join(root, ".env"))
	}

	if config.Conf.Mode == "production" {
		config.Production()
	} else if config.Conf.Mode == "development" {
		config.Development()
	}
}
