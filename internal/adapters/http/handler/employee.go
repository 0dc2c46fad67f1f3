package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ogurasousui/employee-directory/internal/core/employee"
)

// EmployeeHandler は社員名簿ユースケースの HTTP 実装です。
type EmployeeHandler struct {
	svc employee.UseCase
}

// NewEmployeeHandler は EmployeeHandler を生成します。
func NewEmployeeHandler(svc employee.UseCase) *EmployeeHandler {
	return &EmployeeHandler{svc: svc}
}

type createEmployeeRequest struct {
	Name           string  `json:"name"`
	LastName       string  `json:"last_name"`
	Alias          *string `json:"alias"`
	Email          string  `json:"email"`
	PhoneNumber    *string `json:"phone_number"`
	EmployeeNumber string  `json:"employee_number"`
}

type employeeResponse struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	LastName       string  `json:"last_name"`
	Alias          *string `json:"alias"`
	Email          string  `json:"email"`
	PhoneNumber    *string `json:"phone_number"`
	EmployeeNumber string  `json:"employee_number"`
}

// Create は POST /employee/ を処理します。
//
//	@Summary	社員レコードを新規作成します
//	@Tags		employee
//	@Accept		json
//	@Produce	json
//	@Param		employee	body		createEmployeeRequest	true	"作成する社員"
//	@Success	200			{object}	employeeResponse
//	@Failure	400			{object}	errorResponse
//	@Failure	409			{object}	errorResponse
//	@Failure	503			{object}	errorResponse
//	@Router		/employee/ [post]
func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.CreateEmployee(r.Context(), employee.CreateEmployeeInput{
		Name:           req.Name,
		LastName:       req.LastName,
		Alias:          req.Alias,
		Email:          req.Email,
		PhoneNumber:    req.PhoneNumber,
		EmployeeNumber: req.EmployeeNumber,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toEmployeeResponse(created))
}

// GetByKey は GET /employee/{key} を処理します。パスパラメータは設定済み
// 検索キーの値として解釈されます。
//
//	@Summary	設定済み検索キーで社員を取得します
//	@Tags		employee
//	@Produce	json
//	@Param		key	path		string	true	"検索キーの値 (employee_number または alias)"
//	@Success	200	{object}	employeeResponse
//	@Failure	404	{object}	errorResponse
//	@Failure	503	{object}	errorResponse
//	@Router		/employee/{key} [get]
func (h *EmployeeHandler) GetByKey(w http.ResponseWriter, r *http.Request) {
	found, err := h.svc.GetEmployeeByKey(r.Context(), employee.GetEmployeeByKeyInput{
		Value: chi.URLParam(r, "key"),
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toEmployeeResponse(found))
}

func toEmployeeResponse(e *employee.Employee) employeeResponse {
	return employeeResponse{
		ID:             e.ID,
		Name:           e.Name,
		LastName:       e.LastName,
		Alias:          e.Alias,
		Email:          e.Email,
		PhoneNumber:    e.PhoneNumber,
		EmployeeNumber: e.EmployeeNumber,
	}
}
