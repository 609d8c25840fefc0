// Command migrate applies, rolls back and reports the database schema
// version using the migrations embedded in the service.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/robinspt/food-inventory-system/internal/config"
	"github.com/robinspt/food-inventory-system/internal/migrations"
	"github.com/robinspt/food-inventory-system/pkg/database"
	"github.com/robinspt/food-inventory-system/pkg/logging"
)

const usage = `usage: migrate <command>

commands:
  up          apply all pending migrations
  down [n]    roll back n migrations (default 1)
  version     print the current schema version
`

func main() {
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config load failed:", err)
	}

	logger := logging.New(&cfg.Logging).With("command", "migrate")

	db, err := database.New(&cfg.Database, nil, logger)
	if err != nil {
		log.Fatal(err)
	}
	conn := db.Connection()
	defer conn.Close()

	switch cmd := flag.Arg(0); cmd {
	case "up":
		version, err := database.Migrate(conn, migrations.FS)
		if err != nil {
			log.Fatal("migrate up failed:", err)
		}
		logger.Info("migrations applied", "version", version)

	case "down":
		steps := 1
		if flag.NArg() > 1 {
			steps, err = strconv.Atoi(flag.Arg(1))
			if err != nil || steps < 1 {
				log.Fatalf("invalid step count %q", flag.Arg(1))
			}
		}
		version, err := database.Rollback(conn, migrations.FS, steps)
		if err != nil {
			log.Fatal("migrate down failed:", err)
		}
		logger.Info("migrations rolled back", "steps", steps, "version", version)

	case "version":
		version, dirty, err := database.Version(conn, migrations.FS)
		if err != nil {
			log.Fatal("read version failed:", err)
		}
		fmt.Printf("version %d (dirty: %t)\n", version, dirty)

	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", cmd)
		flag.Usage()
		os.Exit(2)
	}
}
