package main

import (
	"database/sql"
	"flag"
	"os"

	"blogpost/pkg/config"
	"blogpost/pkg/database"
	"blogpost/pkg/logger"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
)

func main() {
	var (
		dir     = flag.String("dir", "migrations", "directory with migration files")
		command = flag.String("command", "up", "migration command (up, down, status, create)")
		name    = flag.String("name", "", "name for new migration (used with create command)")
	)
	flag.Parse()

	log := logger.New()

	cfg, err := config.Load()
	if err != nil {
		log.Error("Failed to load config: %v", err)
		os.Exit(1)
	}

	db, err := sql.Open("postgres", database.DSN(cfg))
	if err != nil {
		log.Error("Failed to open database: %v", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Error("Failed to set dialect: %v", err)
		os.Exit(1)
	}

	if err := run(db, *command, *dir, *name, log); err != nil {
		log.Error("Migration command %q failed: %v", *command, err)
		os.Exit(1)
	}
}

func run(db *sql.DB, command, dir, name string, log *logger.Logger) error {
	switch command {
	case "create":
		if name == "" {
			return errNameRequired
		}
		if err := goose.Create(db, dir, name, "sql"); err != nil {
			return err
		}
		log.Info("Created migration: %s", name)
	case "up":
		if err := goose.Up(db, dir); err != nil {
			return err
		}
		log.Info("Migrations applied successfully")
	case "down":
		if err := goose.Down(db, dir); err != nil {
			return err
		}
		log.Info("Migrations rolled back successfully")
	case "status":
		return goose.Status(db, dir)
	default:
		return errUnknownCommand
	}
	return nil
}
