package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ogurasousui/employee-directory/internal/adapters/http/handler"
	repo "github.com/ogurasousui/employee-directory/internal/adapters/repository/postgres"
	"github.com/ogurasousui/employee-directory/internal/core/employee"
	"github.com/ogurasousui/employee-directory/internal/platform/config"
	pg "github.com/ogurasousui/employee-directory/internal/platform/db/postgres"
	"github.com/ogurasousui/employee-directory/internal/platform/server"
)

//	@title			Employee Directory API
//	@version		1.0
//	@description	社員レコードの登録と、設定済み検索キーによる取得を提供する HTTP サービスです。
//	@BasePath		/
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "assets/local.yaml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if cfg.LookupKey() == employee.LookupKeyAlias {
		logger.Warn("lookup key is alias, which carries no uniqueness constraint; duplicate aliases resolve to the lowest id")
	}

	dbPool, err := pg.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("failed to initialize database pool: %v", err)
	}
	defer dbPool.Close()

	employeeRepo := repo.NewEmployeeRepository(dbPool)
	txManager := pg.NewTransactionManager(dbPool)
	employeeSvc, err := employee.NewService(employeeRepo, nil, txManager, cfg.LookupKey())
	if err != nil {
		log.Fatalf("failed to build employee service: %v", err)
	}

	router := handler.NewRouter(employeeSvc, dbPool, logger)
	httpServer := server.New(cfg.Server.ListenAddr, router)

	logger.Info("HTTP server listening", "addr", cfg.Server.ListenAddr, "lookup_key", cfg.LookupKey())

	if err := httpServer.Run(ctx); err != nil {
		log.Fatalf("server stopped with error: %v", err)
	}
}
