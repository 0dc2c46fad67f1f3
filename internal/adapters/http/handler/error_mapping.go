package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ogurasousui/employee-directory/internal/core/employee"
)

const notFoundDetail = "Employee not found"

type errorResponse struct {
	Detail any `json:"detail"`
}

type fieldErrorDetail struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// writeDomainError はドメインエラーを HTTP ステータスへ変換します。
// 検証失敗は 400、一意性違反は 409、存在しない社員は 404、それ以外の
// ストア障害はすべて 503 として扱います。
func writeDomainError(w http.ResponseWriter, err error) {
	var vErr *employee.ValidationError
	switch {
	case errors.As(err, &vErr):
		details := make([]fieldErrorDetail, 0, len(vErr.Fields))
		for _, f := range vErr.Fields {
			details = append(details, fieldErrorDetail{Field: f.Field, Reason: f.Reason})
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: details})
	case errors.Is(err, employee.ErrEmailAlreadyExists),
		errors.Is(err, employee.ErrEmployeeNumberAlreadyExists),
		errors.Is(err, employee.ErrEmployeeAlreadyExists):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, employee.ErrEmployeeNotFound):
		writeError(w, http.StatusNotFound, notFoundDetail)
	default:
		writeError(w, http.StatusServiceUnavailable, employee.ErrStoreUnavailable.Error())
	}
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Detail: detail})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
