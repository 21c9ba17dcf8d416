package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	pg "vetclinic/internal/adapters/storage/postgres"
	"vetclinic/internal/router"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Arranca el servidor HTTP",
	Long: `Abre el pool de PostgreSQL, aplica las migraciones pendientes y sirve la API.

Con --memory no toca la base: usa un store en memoria (útil en dev).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		memory, _ := cmd.Flags().GetBool("memory")
		return runServe(cmd, memory)
	},
}

func init() {
	serveCmd.Flags().Bool("memory", false, "Usar store in-memory en lugar de PostgreSQL")
}

func runServe(cmd *cobra.Command, memory bool) error {
	cfg, log, err := bootstrap(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := router.Options{
		Logger:             log,
		CORSAllowedOrigins: cfg.CORS.AllowedOrigins,
	}

	if memory {
		log.Warn("using in-memory store, data is lost on exit", nil)
	} else {
		db, err := pg.Open(ctx, cfg.DB)
		if err != nil {
			return err
		}
		defer func() {
			if err := db.Close(); err != nil {
				log.Error("close db", map[string]any{"err": err})
			}
		}()

		if err := pg.Migrate(cfg.DB.URL, log); err != nil {
			return err
		}
		opts.DB = db
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router.NewRouter(opts),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down", map[string]any{"timeout": cfg.App.ShutdownTimeout.String()})
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
