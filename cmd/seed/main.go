package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/robinspt/food-inventory-system/internal/config"
)

const EnvDatabaseDSN = "DATABASE_DSN"

func main() {
	var (
		dsn       = flag.String("dsn", "", "Database connection string (defaults to config.toml)")
		all       = flag.Bool("all", false, "Run all seeders")
		users     = flag.Bool("users", false, "Seed demo users")
		foodItems = flag.Bool("food-items", false, "Seed demo food items")
		file      = flag.String("file", "", "External seed file for the selected seeder (overrides embedded)")
		list      = flag.Bool("list", false, "List available seeders")
	)
	flag.Parse()

	if *list {
		fmt.Println("Available seeders:")
		for _, s := range listSeeders() {
			fmt.Printf("  - %s: %s\n", s.Name(), s.Description())
		}
		return
	}

	var name string
	switch {
	case *all:
	case *users:
		name = "users"
	case *foodItems:
		name = "food_items"
	default:
		fmt.Println("usage: seed [-dsn <connection-string>] [-all|-users|-food-items] [-file <path>] [-list]")
		flag.PrintDefaults()
		return
	}

	db, err := open(*dsn)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	ctx := context.Background()

	if name == "" {
		if err := runAllSeeders(ctx, db); err != nil {
			log.Fatalf("seeding failed: %v", err)
		}
		fmt.Println("all seeders completed successfully")
		return
	}

	if *file != "" {
		if seeder, ok := getSeeder(name); ok {
			seeder.(fileSeeder).SetFile(*file)
		}
	}
	if err := runSeeder(ctx, db, name); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	fmt.Printf("%s seeded successfully\n", name)
}

// open connects using the -dsn flag, then DATABASE_DSN, then the database
// section of the service configuration.
func open(dsn string) (*sql.DB, error) {
	if dsn == "" {
		dsn = os.Getenv(EnvDatabaseDSN)
	}
	if dsn == "" {
		cfg, err := config.Load()
		if err != nil {
			return nil, fmt.Errorf("database connection string required: use -dsn, %s or config.toml: %w", EnvDatabaseDSN, err)
		}
		dsn = cfg.Database.URL()
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}
