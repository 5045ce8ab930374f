package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"

	"github.com/omniaura/solid-grab/bridge"
)

var serveCmd = &cobra.Command{
	Use:   "serve [flags]",
	Short: "Run the bridge that receives grabbed-context reports",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("addr", ":7763", "listen address")
	serveCmd.Flags().Int("capacity", 100, "number of recent grabs to keep")
}

func runServe(cmd *cobra.Command, args []string) error {
	addr, _ := cmd.Flags().GetString("addr")
	capacity, _ := cmd.Flags().GetInt("capacity")
	logger := newLogger(cmd)

	service := bridge.New(version, capacity, logger)
	router := chi.NewRouter()
	service.RegisterHTTP(router)

	logger.Info("bridge: listening", "addr", addr)
	return http.ListenAndServe(addr, router)
}
