package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/classumlab/classroom-backend/internal/config"
)

func main() {
	dir := flag.String("path", "migrations", "directory containing migration files")
	flag.Parse()

	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	m, err := migrate.New("file://"+*dir, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("open migrations: %v", err)
	}
	defer m.Close()

	args := flag.Args()
	if len(args) == 0 {
		usage()
		return
	}

	switch args[0] {
	case "up":
		report(m.Up(), "schema is up to date")
	case "down":
		report(m.Down(), "schema rolled back")
	case "steps":
		n := mustInt(args, 1, "steps requires a count (negative rolls back)")
		report(m.Steps(n), fmt.Sprintf("applied %d step(s)", n))
	case "force":
		v := mustInt(args, 1, "force requires a version")
		if err := m.Force(v); err != nil {
			log.Fatalf("force: %v", err)
		}
		fmt.Printf("forced version to %d\n", v)
	case "version":
		v, dirty, err := m.Version()
		if err != nil {
			log.Fatalf("version: %v", err)
		}
		fmt.Printf("version %d (dirty: %t)\n", v, dirty)
	default:
		usage()
	}
}

func report(err error, ok string) {
	switch err {
	case nil:
		fmt.Println(ok)
	case migrate.ErrNoChange:
		fmt.Println("no change")
	default:
		log.Fatalf("migrate: %v", err)
	}
}

func mustInt(args []string, idx int, msg string) int {
	if len(args) <= idx {
		log.Fatal(msg)
	}
	n, err := strconv.Atoi(args[idx])
	if err != nil {
		log.Fatalf("invalid number %q", args[idx])
	}
	return n
}

func usage() {
	fmt.Println("usage: migrate [-path dir] <up|down|steps N|force V|version>")
}
