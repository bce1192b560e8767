package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/gripdash/gripdash/config"
	"github.com/gripdash/gripdash/service"
	"github.com/gripdash/gripdash/share"
	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the dashboard service",
	Long:  `Start the dashboard service`,
	Run: func(cmd *cobra.Command, args []string) {
		Boot()
		conf := config.Conf

		mode := ""
		if conf.Mode == "development" {
			mode = color.RedString("development mode")
		}
		fmt.Printf(color.GreenString("\n%s v%s %s", share.App.Name, share.VERSION, mode))

		srv, err := service.New(conf)
		if err != nil {
			fmt.Fprintln(os.Stderr, color.RedString("\nFatal: %s", err.Error()))
			os.Exit(1)
		}

		fmt.Printf(color.WhiteString("\n---------------------------------"))
		fmt.Printf(color.GreenString("\nTarget: %s", conf.TargetLabel))
		fmt.Printf(color.GreenString("\nRoot: %s", conf.Root))
		fmt.Printf(color.GreenString("\nData: %s", conf.DataRoot))
		fmt.Printf(color.GreenString("\nDossiers: %s", conf.DossierRoot))
		fmt.Printf(color.WhiteString("\n---------------------------------\n"))

		fmt.Printf(color.GreenString("\nAPI List"))
		fmt.Printf(color.WhiteString("\n---------------------------------\n"))
		routes := srv.Router().Routes()
		sort.Slice(routes, func(i, j int) bool { return routes[i].Path < routes[j].Path })
		for _, route := range routes {
			fmt.Println(colorMethod(route.Method), color.WhiteString(route.Path))
		}

		fmt.Printf(color.GreenString("\n✨LISTENING✨ http://%s:%d/api\n\n", conf.Host, conf.Port))

		interrupt := make(chan os.Signal, 1)
		signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

		done := make(chan error, 1)
		go func() { done <- srv.Start() }()

		select {
		case err := <-done:
			if err != nil {
				fmt.Fprintln(os.Stderr, color.RedString("Fatal: %s", err.Error()))
				os.Exit(1)
			}
		case <-interrupt:
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Stop(ctx); err != nil {
				fmt.Fprintln(os.Stderr, color.RedString("Fatal: %s", err.Error()))
				os.Exit(1)
			}
			<-done
		}
		fmt.Println(color.GreenString("✨STOPPED✨"))
	},
}

func colorMethod(method string) string {
	method = strings.ToUpper(method)
	switch method {
	case "GET":
		return color.GreenString("GET")
	case "POST":
		return color.YellowString("POST")
	default:
		return color.WhiteString(method)
	}
}
