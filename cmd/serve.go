package cmd

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/nachofazah/Ciu-RedSocial/config"
	"github.com/nachofazah/Ciu-RedSocial/internal/api"
	"github.com/nachofazah/Ciu-RedSocial/internal/logging"
	"github.com/nachofazah/Ciu-RedSocial/internal/server"
	"github.com/nachofazah/Ciu-RedSocial/internal/storage"
	"github.com/nachofazah/Ciu-RedSocial/internal/telemetry"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web server",
	RunE:  serve,
}

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "listen port (overrides PORT)")
	RootCmd.AddCommand(serveCmd)
}

func serve(cmd *cobra.Command, args []string) error {
	cfg := config.LoadConfig()
	if servePort != "" {
		cfg.Port = servePort
	}
	log := logging.New(cfg.LogLevel, cfg.AppEnv)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.InitTracing(ctx, cfg.OTLPEndpoint, cfg.OTELServiceName, cfg.AppEnv)
	if err != nil {
		return err
	}
	defer func() {
		c, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(c)
	}()

	store, err := storage.Open(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer store.Close(context.Background())

	srv, err := server.New(server.Deps{
		Config:  cfg,
		Backend: api.NewClient(cfg.APIBaseURL, api.WithTimeout(cfg.APITimeout)),
		Store:   store,
		Log:     log,
	})
	if err != nil {
		return err
	}
	go srv.Transients.Run(ctx, time.Minute, log)

	go func() {
		<-ctx.Done()
		_ = srv.App.ShutdownWithTimeout(10 * time.Second)
	}()

	log.WithField("port", cfg.Port).WithField("backend", cfg.APIBaseURL).Info("listening")
	return srv.App.Listen(":" + cfg.Port)
}
