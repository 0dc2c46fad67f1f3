package handler

import (
	"context"
	"net/http"
)

// Pinger はストアへの疎通確認の抽象です。pgxpool.Pool が満たします。
type Pinger interface {
	Ping(ctx context.Context) error
}

func healthHandler(pinger Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if pinger != nil {
			if err := pinger.Ping(r.Context()); err != nil {
				writeError(w, http.StatusServiceUnavailable, "store unavailable")
				return
			}
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
