package main

import (
	pg "vetclinic/internal/adapters/storage/postgres"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Aplica las migraciones pendientes y termina",
	Long: `Crea las tablas duenos, mascotas y citas y sus índices si no existen.
Volver a ejecutarlo sobre un esquema al día no hace nada.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := bootstrap(cmd)
		if err != nil {
			return err
		}
		return pg.Migrate(cfg.DB.URL, log)
	},
}
