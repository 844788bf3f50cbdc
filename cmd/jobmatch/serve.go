package main

import (
	"fmt"

	"github.com/jonathan/jobmatch/internal/integrations"
	"github.com/jonathan/jobmatch/internal/matching"
	"github.com/jonathan/jobmatch/internal/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes evaluation, session, catalog and integration endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := *appConfig
	if servePort > 0 {
		cfg.Port = servePort
	}

	evaluator, err := matching.NewCachedEvaluator(cfg.CacheSize)
	if err != nil {
		return err
	}
	defer evaluator.Close()

	set, err := integrations.NewSet(cmd.Context(), cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to configure integrations: %w", err)
	}
	defer func() {
		if err := set.Close(); err != nil {
			appLogger.Warn("failed to close integrations", zap.Error(err))
		}
	}()

	srv := server.New(server.Config{
		Port:        cfg.Port,
		Environment: cfg.Environment,
	}, appLogger, evaluator, server.IntegrationsFrom(set))

	return srv.Start()
}
