package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const shutdownTimeout = 10 * time.Second

// Server は HTTP サーバーのライフサイクルを管理します。
type Server struct {
	httpServer *http.Server
}

// New は指定されたアドレスで待ち受ける HTTP サーバーを構築します。
func New(listenAddr string, handler http.Handler) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:    listenAddr,
			Handler: handler,
		},
	}
}

// Run はサーバーを起動し、コンテキストがキャンセルされると
// 処理中のリクエストを待ってから停止します。
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("serve HTTP on %s: %w", s.httpServer.Addr, err)
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown HTTP server: %w", err)
	}

	return <-errCh
}
