package main

import (
	"database/sql"
	"flag"
	"log"

	"fintrack/internal/config"
	"fintrack/internal/database"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	var (
		status = flag.Bool("status", false, "print the current migration version and exit")
		seed   = flag.Bool("seed", false, "load seed data after running migrations")
	)
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	runner := database.NewMigrationRunner(db)

	if err := runner.WaitForDatabase(); err != nil {
		log.Fatalf("database readiness check failed: %v", err)
	}

	if *status {
		version, dirty, err := runner.GetMigrationStatus()
		if err != nil {
			log.Fatalf("failed to get migration status: %v", err)
		}
		log.Printf("migration status - version: %d, dirty: %v", version, dirty)
		return
	}

	if err := runner.RunMigrations(); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	if *seed {
		if err := runner.LoadSeeds(); err != nil {
			log.Fatalf("seed loading failed: %v", err)
		}
	}

	log.Println("migrations complete")
}
