// Command migrate administra el esquema PostgreSQL embebido.
//
//	migrate up            aplica las migraciones pendientes
//	migrate down --steps  revierte N migraciones (0 = todas)
//	migrate version       muestra la versión aplicada
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Contable-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Contable-api/pkg/config"
	"github.com/jhoicas/Contable-api/pkg/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Migraciones del esquema de Contable API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	up := &cobra.Command{
		Use:   "up",
		Short: "Aplica las migraciones pendientes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(cmd.Context(), func(mg *postgres.Migrator, log *logger.Logger) error {
				if err := mg.Up(); err != nil {
					return err
				}
				log.Info().Msg("migraciones aplicadas")
				return nil
			})
		},
	}

	down := &cobra.Command{
		Use:   "down",
		Short: "Revierte migraciones",
		Example: `  # Revertir la última migración
  migrate down --steps 1

  # Revertir todo el esquema
  migrate down --steps 0`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			steps, _ := cmd.Flags().GetInt("steps")
			return withMigrator(cmd.Context(), func(mg *postgres.Migrator, log *logger.Logger) error {
				if err := mg.Down(steps); err != nil {
					return err
				}
				log.Info().Int("steps", steps).Msg("migraciones revertidas")
				return nil
			})
		},
	}
	down.Flags().Int("steps", 1, "Número de migraciones a revertir (0 = todas)")

	version := &cobra.Command{
		Use:   "version",
		Short: "Muestra la versión del esquema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(cmd.Context(), func(mg *postgres.Migrator, log *logger.Logger) error {
				v, dirty, err := mg.Version()
				if err != nil {
					return err
				}
				log.Info().Uint("version", v).Bool("dirty", dirty).Msg("versión del esquema")
				return nil
			})
		},
	}

	root.AddCommand(up, down, version)
	return root
}

// withMigrator carga la configuración, abre el pool y entrega un migrador listo.
func withMigrator(ctx context.Context, fn func(*postgres.Migrator, *logger.Logger) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cargar configuración: %w", err)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	defer pool.Close()

	mg, err := postgres.NewMigrator(pool)
	if err != nil {
		return err
	}
	defer mg.Close()
	return fn(mg, log)
}
