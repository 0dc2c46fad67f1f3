package handler

import (
	"net/http"

	"github.com/swaggo/swag"

	// swag が生成した API 記述を登録します。
	_ "github.com/ogurasousui/employee-directory/docs"
)

// openAPIHandler はハンドラ注釈から生成された API 記述を
// GET /openapi.json で提供します。
func openAPIHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, err := swag.ReadDoc()
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to load api description")
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(doc))
	}
}
