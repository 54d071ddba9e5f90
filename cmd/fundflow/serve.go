package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aretw0/fundflow"
	"github.com/aretw0/fundflow/internal/config"
	httpAdapter "github.com/aretw0/fundflow/pkg/adapters/http"
	"github.com/aretw0/fundflow/pkg/adapters/memory"
	"github.com/aretw0/fundflow/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the conversation over HTTP",
	Long: `Starts one conversation and exposes it as a JSON API:

  GET  /api/conversation   transcript and pending actions
  POST /api/events         {"type":"button","index":n} or {"type":"input","value":"..."}
  POST /api/restart        start over
  GET  /api/graph          Mermaid diagram of the flow with the visited path
  GET  /health
  GET  /metrics`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(cmd)
		if err != nil {
			return err
		}
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.Server.Addr = addr
		}

		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		metrics := observability.NewMetrics(reg)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		adv, err := config.BuildAdvisor(ctx, cfg.Advisor, reg, logger)
		if err != nil {
			return err
		}
		defer adv.Close()

		rec := memory.NewRecorder()
		engine, err := fundflow.New(rec,
			fundflow.WithAdvisor(adv),
			fundflow.WithLogger(logger),
			fundflow.WithStrict(cfg.Strict),
			fundflow.WithLifecycleHooks(observability.Combine(metrics.Hooks(), observability.LoggingHooks(logger))),
		)
		if err != nil {
			return err
		}

		server := httpAdapter.NewServer(engine, rec,
			httpAdapter.WithLogger(logger),
			httpAdapter.WithGatherer(reg),
		)
		if err := server.Start(ctx); err != nil {
			return err
		}

		srv := &http.Server{
			Addr:              cfg.Server.Addr,
			Handler:           server.Handler(),
			ReadHeaderTimeout: 10 * time.Second,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)
		go func() {
			logger.Info("fundflow server listening", "addr", srv.Addr, "provider", adv.Provider())
			serverErrors <- srv.ListenAndServe()
		}()

		select {
		case err := <-serverErrors:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err

		case <-ctx.Done():
			logger.Info("shutting down")

			// Give outstanding requests a deadline for completion.
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error("graceful shutdown did not complete", "timeout", shutdownTimeout, "err", err)
				return srv.Close()
			}
			logger.Info("fundflow server stopped gracefully")
			return nil
		}
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (default from config, :8080)")
	rootCmd.AddCommand(serveCmd)
}
