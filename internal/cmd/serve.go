package cmd

import (
	"context"
	nethttp "net/http"

	"github.com/mono83/slf"
	"github.com/spf13/cobra"

	"ely.by/mapskins/internal/http"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts HTTP handler for the skins resolution",
	RunE: func(cmd *cobra.Command, args []string) error {
		container, err := newContainer()
		if err != nil {
			return err
		}

		var serverErr error
		err = container.Invoke(func(ctx context.Context, server *nethttp.Server, logger slf.Logger) {
			serverErr = http.StartServer(ctx, server, logger)
		})
		if err != nil {
			return err
		}

		return serverErr
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)
}
