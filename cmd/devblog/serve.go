package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/navidjalilian/devblog"
)

var noWatch bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the site and reload content on changes",
	RunE: func(cmd *cobra.Command, args []string) error {
		var opts []devblog.Option
		if !noWatch {
			opts = append(opts, devblog.WithWatch())
		}
		app, err := newApp(opts...)
		if err != nil {
			return err
		}
		defer app.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return app.Start(ctx)
	},
}

func init() {
	serveCmd.Flags().BoolVar(&noWatch, "no-watch", false, "do not watch the content directory")
}
