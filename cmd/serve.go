package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/brettbedarf/pycommander/config"
	"github.com/brettbedarf/pycommander/internal/util"
	"github.com/brettbedarf/pycommander/server"
	"github.com/brettbedarf/pycommander/translate"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the terminal UI over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags, cmd.Flags())
			if err != nil {
				return err
			}
			return serve(cfg)
		},
	}
	cmd.Flags().String("addr", config.DefaultListenAddr, "Listen address (host:port)")
	return cmd
}

func serve(cfg *config.Config) error {
	util.InitializeLogger(cfg.LogLvl)
	logger := util.GetLogger("main")
	logger.Info().
		Str("addr", cfg.ListenAddr).
		Str("nodes", cfg.SeedFile).
		Bool("ai", cfg.AI.Enabled()).
		Msg("PyCommander server initializing")

	fs, err := loadFS(cfg)
	if err != nil {
		logger.Fatal().Err(err).Str("nodes", cfg.SeedFile).Msg("Failed to load nodes")
	}
	if !cfg.AI.Enabled() {
		logger.Warn().Str("env", config.APIKeyEnv).Msg("No API key configured, ai command disabled")
	}

	srv := server.New(cfg, fs, translate.New(cfg.AI))
	done := srv.ServeAsync()

	// Setup signal handling for graceful shutdown
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case err := <-done:
		return err
	case sig := <-signalChan:
		logger.Info().Str("signal", sig.String()).Msg("Received signal, shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Failed to shut down cleanly")
		return err
	}
	logger.Info().Msg("Server stopped")
	return <-done
}
