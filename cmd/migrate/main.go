package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/ogurasousui/employee-directory/internal/platform/config"
)

const defaultMigrationsDir = "assets/migrations"

// employees スキーマのマイグレーションランナーです。
//
//	migrate [-config path] [-migrations dir] [up|down|drop|version]
//
// 引数を省略した場合は up を実行します。
func main() {
	var (
		configPath    = flag.String("config", "", "path to config file (defaults to CONFIG_PATH env or assets/local.yaml)")
		migrationsDir = flag.String("migrations", defaultMigrationsDir, "directory containing employees schema migrations")
	)
	flag.Parse()

	action := "up"
	if flag.NArg() > 0 {
		action = flag.Arg(0)
	}

	cfg, err := config.Load(effectiveConfigPath(*configPath))
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	m, err := newMigrator(*migrationsDir, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("failed to prepare migrator: %v", err)
	}
	defer m.Close()

	if err := apply(m, action); err != nil {
		log.Fatalf("employees schema %s failed: %v", action, err)
	}

	log.Printf("employees schema %s completed", action)
}

func effectiveConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv("CONFIG_PATH"); env != "" {
		return env
	}
	return "assets/local.yaml"
}

func newMigrator(dir, dsn string) (*migrate.Migrate, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve path for %s: %w", dir, err)
	}

	return migrate.New("file://"+filepath.ToSlash(absDir), dsn)
}

func apply(m *migrate.Migrate, action string) error {
	switch action {
	case "up":
		return ignoreNoChange(m.Up())
	case "down":
		return ignoreNoChange(m.Down())
	case "drop":
		return m.Drop()
	case "version":
		version, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			log.Printf("employees schema has no applied migrations")
			return nil
		}
		if err != nil {
			return err
		}
		log.Printf("version=%d dirty=%t", version, dirty)
		return nil
	default:
		return fmt.Errorf("unsupported action %q (want up, down, drop or version)", action)
	}
}

func ignoreNoChange(err error) error {
	if errors.Is(err, migrate.ErrNoChange) {
		return nil
	}
	return err
}
