package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/invoiciz-api/internal/infrastructure/postgres"
	"github.com/jhoicas/invoiciz-api/pkg/config"
	"github.com/jhoicas/invoiciz-api/pkg/logger"
)

// Uso:
//
//	migrate -dir migrations up     aplica las migraciones pendientes
//	migrate -dir migrations down   revierte la última migración
func main() {
	dir := flag.String("dir", "migrations", "directorio con los archivos de migración")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	cmd := flag.Arg(0)
	if cmd == "" {
		cmd = "up"
	}

	dsn := cfg.DB.ConnectionString()
	switch cmd {
	case "up":
		if err := postgres.RunMigrations(dsn, *dir); err != nil {
			log.Fatal().Err(err).Msg("aplicar migraciones")
		}
		log.Info().Str("dir", *dir).Msg("migraciones aplicadas")
	case "down":
		if err := postgres.RollbackLastMigration(dsn, *dir); err != nil {
			log.Fatal().Err(err).Msg("revertir migración")
		}
		log.Info().Str("dir", *dir).Msg("última migración revertida")
	default:
		fmt.Fprintf(os.Stderr, "comando desconocido %q (use up o down)\n", cmd)
		os.Exit(1)
	}
}
