// Comando de migraciones de esquema: aplica los archivos SQL de migrations/
// con goose sobre el driver lib/pq.
//
// Uso:
//
//	migrate            aplica todas las migraciones pendientes
//	migrate up         idem
//	migrate down       revierte la última migración
//	migrate status     muestra el estado de cada migración
package main

import (
	"database/sql"
	"os"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"github.com/jhoicas/stockmaster-api/pkg/config"
	"github.com/jhoicas/stockmaster-api/pkg/logger"
)

const migrationsDir = "migrations"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name + "-migrate",
	})

	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	sqlDB, err := goose.OpenDBWithDriver("postgres", cfg.DB.ConnectionString())
	if err != nil {
		log.Fatal().Err(err).Msg("abrir conexión")
	}
	defer func() { _ = sqlDB.Close() }()

	if err := run(sqlDB, command); err != nil {
		log.Fatal().Err(err).Str("command", command).Msg("migración fallida")
	}
	log.Info().Str("command", command).Msg("migración completada")
}

func run(db *sql.DB, command string) error {
	switch command {
	case "up":
		return goose.Up(db, migrationsDir)
	case "down":
		return goose.Down(db, migrationsDir)
	case "status":
		return goose.Status(db, migrationsDir)
	default:
		return goose.Up(db, migrationsDir)
	}
}
