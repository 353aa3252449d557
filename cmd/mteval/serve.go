package main

import (
	"fmt"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/valyala/fasthttp"

	mteval "github.com/baditaflorin/go_mt_eval"
)

func newServeCmd(a *app) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve /score, /evaluate, /health and /metrics over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			srvCfg := a.cfg.Server
			if cmd.Flags().Changed("port") {
				srvCfg.Port = port
			}

			e, err := mteval.New(a.evaluatorOptions(mteval.WithWarmUp(srvCfg.WarmUp))...)
			if err != nil {
				return err
			}

			a.logger.Info("Starting evaluation HTTP server",
				"port", srvCfg.Port,
				"read_timeout", srvCfg.ReadTimeout,
				"write_timeout", srvCfg.WriteTimeout,
				"max_request_size", srvCfg.MaxRequestSize,
				"concurrency", srvCfg.Concurrency,
				"cpus", runtime.NumCPU(),
			)

			server := &fasthttp.Server{
				Handler:               e.Handler(srvCfg.RequestTimeout),
				Name:                  "mteval",
				ReadTimeout:           srvCfg.ReadTimeout,
				WriteTimeout:          srvCfg.WriteTimeout,
				MaxRequestBodySize:    srvCfg.MaxRequestSize,
				Concurrency:           srvCfg.Concurrency,
				TCPKeepalive:          true,
				TCPKeepalivePeriod:    3 * time.Minute,
				MaxIdleWorkerDuration: 10 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				addr := fmt.Sprintf(":%d", srvCfg.Port)
				a.logger.Info("Server listening", "address", addr)
				errCh <- server.ListenAndServe(addr)
			}()

			select {
			case err := <-errCh:
				a.logger.Error("Server error", "error", err)
				return err
			case <-ctx.Done():
			}

			a.logger.Info("Shutting down server...")
			if err := server.Shutdown(); err != nil {
				a.logger.Error("Error during server shutdown", "error", err)
				return err
			}
			a.logger.Info("Server stopped")
			return nil
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "HTTP server port (overrides MTEVAL_PORT)")
	return cmd
}
