package main

import (
	"fmt"
	"os"

	"vetclinic/internal/config"
	"vetclinic/internal/platform/logger"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "vetclinic",
	Short: "API de la clínica veterinaria",
	Long: `API REST para dueños, mascotas y citas sobre PostgreSQL.

Sin subcomando arranca el servidor (equivale a "vetclinic serve").`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd, false)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Los flags pisan a las variables de entorno y al .env
	rootCmd.PersistentFlags().String("port", "", "Puerto HTTP (env PORT)")
	rootCmd.PersistentFlags().String("database-url", "", "URL de PostgreSQL (env DATABASE_URL)")
	rootCmd.PersistentFlags().String("log-level", "", "debug|info|warn|error (env LOG_LEVEL)")
	rootCmd.PersistentFlags().String("log-format", "", "text|json (env LOG_FORMAT)")

	rootCmd.AddCommand(serveCmd, migrateCmd)
}

// bootstrap carga la config y construye el logger que usan todos los comandos.
func bootstrap(cmd *cobra.Command) (config.Config, logger.Logger, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return config.Config{}, nil, err
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.App.Name,
	})
	return cfg, log, nil
}
