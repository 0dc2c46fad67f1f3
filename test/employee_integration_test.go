//go:build integration

package integration

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	repo "github.com/ogurasousui/employee-directory/internal/adapters/repository/postgres"
	"github.com/ogurasousui/employee-directory/internal/core/employee"
	"github.com/ogurasousui/employee-directory/internal/platform/config"
	pg "github.com/ogurasousui/employee-directory/internal/platform/db/postgres"
)

const migrationsDir = "assets/migrations"

func TestEmployeeLifecycleIntegration(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load(configPathFromEnv())
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if err := resetMigrations(cfg.Database.DSN(), migrationsDir); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	ctx := context.Background()
	pool, err := pg.NewPool(ctx, cfg.Database)
	if err != nil {
		t.Fatalf("failed to create pool: %v", err)
	}
	t.Cleanup(func() { pool.Close() })

	employeeRepo := repo.NewEmployeeRepository(pool)
	txManager := pg.NewTransactionManager(pool)
	svc, err := employee.NewService(employeeRepo, stubClock{now: time.Now().UTC()}, txManager, employee.LookupKeyEmployeeNumber)
	if err != nil {
		t.Fatalf("failed to build service: %v", err)
	}

	created, err := svc.CreateEmployee(ctx, employee.CreateEmployeeInput{
		Name:           "Ana",
		LastName:       "Diaz",
		Email:          "ana@x.com",
		EmployeeNumber: "E1",
	})
	if err != nil {
		t.Fatalf("CreateEmployee error: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected assigned id")
	}

	found, err := svc.GetEmployeeByKey(ctx, employee.GetEmployeeByKeyInput{Value: "E1"})
	if err != nil {
		t.Fatalf("GetEmployeeByKey error: %v", err)
	}
	if found.ID != created.ID || found.Email != created.Email {
		t.Fatalf("round-trip mismatch: created %+v found %+v", created, found)
	}

	_, err = svc.CreateEmployee(ctx, employee.CreateEmployeeInput{
		Name:           "Bruno",
		LastName:       "Silva",
		Email:          "bruno@x.com",
		EmployeeNumber: "E1",
	})
	if !errors.Is(err, employee.ErrEmployeeNumberAlreadyExists) {
		t.Fatalf("expected ErrEmployeeNumberAlreadyExists, got %v", err)
	}

	if _, err := svc.GetEmployeeByKey(ctx, employee.GetEmployeeByKeyInput{Value: "E2"}); !errors.Is(err, employee.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func resetMigrations(dsn, dir string) error {
	m, err := migrate.New("file://"+dir, dsn)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Down(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}

func configPathFromEnv() string {
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		return v
	}
	return "assets/local.yaml"
}

type stubClock struct {
	now time.Time
}

func (s stubClock) Now() time.Time {
	return s.now
}
