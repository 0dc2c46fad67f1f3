package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/ogurasousui/employee-directory/internal/core/employee"
)

// NewRouter は社員名簿サービスの全ルートを束ねたハンドラを構築します。
func NewRouter(svc employee.UseCase, pinger Pinger, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(accessLogger(logger))
	r.Use(middleware.Recoverer)

	employeeHandler := NewEmployeeHandler(svc)
	r.Post("/employee/", employeeHandler.Create)
	r.Get("/employee/{key}", employeeHandler.GetByKey)

	r.Get("/openapi.json", openAPIHandler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/openapi.json")))
	r.Get("/health", healthHandler(pinger))

	return r
}
