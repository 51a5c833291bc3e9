package cmd

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	v1 "github.com/weekbudget/backend/internal/controllers/v1"
	"github.com/weekbudget/backend/internal/i18n"
	"github.com/weekbudget/backend/pkg/router"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API (default)",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	service, err := openService(ctx, cfg)
	if err != nil {
		return err
	}

	locales, err := i18n.New(cfg.Locale.DefaultLanguage)
	if err != nil {
		return err
	}

	url, err := cfg.URL()
	if err != nil {
		return err
	}

	r, teardown, err := router.Config(url, router.Options{
		CORSAllowOrigins: cfg.Server.CORSAllowOrigins,
		EnablePprof:      cfg.Server.EnablePprof,
	})
	defer teardown()
	if err != nil {
		return err
	}

	router.AttachRoutes(v1.Controller{Service: service, Locales: locales}, r.Group("/"))

	server := &http.Server{
		Addr:              net.JoinHostPort("", cfg.Server.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Server shutdown")
		}
	}()

	log.Info().Str("address", server.Addr).Str("timezone", cfg.Locale.Timezone).Msg("Listening")
	err = server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return err
}
