package main

import (
	"database/sql"
	"flag"

	"vidtube/pkg/config"
	"vidtube/pkg/database"
	"vidtube/pkg/logger"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
)

func main() {
	var (
		dir     = flag.String("dir", "migrations", "directory with migration files")
		command = flag.String("command", "up", "migration command (up, down, redo, status, version, create)")
		name    = flag.String("name", "", "name for new migration (used with create command)")
	)
	flag.Parse()

	log := logger.New()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: %v", err)
	}

	db, err := sql.Open("postgres", database.DSN(cfg))
	if err != nil {
		log.Fatal("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal("Failed to set dialect: %v", err)
	}

	switch *command {
	case "create":
		if *name == "" {
			log.Fatal("Name is required for create command")
		}
		if err := goose.Create(db, *dir, *name, "sql"); err != nil {
			log.Fatal("Failed to create migration: %v", err)
		}
		log.Info("Created migration: %s", *name)
	case "up":
		if err := goose.Up(db, *dir); err != nil {
			log.Fatal("Failed to run migrations: %v", err)
		}
		log.Info("Migrations applied successfully")
	case "down":
		if err := goose.Down(db, *dir); err != nil {
			log.Fatal("Failed to rollback migrations: %v", err)
		}
		log.Info("Migrations rolled back successfully")
	case "redo":
		if err := goose.Redo(db, *dir); err != nil {
			log.Fatal("Failed to redo migration: %v", err)
		}
		log.Info("Latest migration re-applied")
	case "status":
		if err := goose.Status(db, *dir); err != nil {
			log.Fatal("Failed to get migration status: %v", err)
		}
	case "version":
		if err := goose.Version(db, *dir); err != nil {
			log.Fatal("Failed to get migration version: %v", err)
		}
	default:
		log.Fatal("Unknown command: %s", *command)
	}
}
