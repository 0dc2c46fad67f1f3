package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ogurasousui/employee-directory/internal/core/employee"
)

type stubEmployeeUseCase struct {
	createInput employee.CreateEmployeeInput
	createOut   *employee.Employee
	createErr   error

	getInput employee.GetEmployeeByKeyInput
	getOut   *employee.Employee
	getErr   error
}

func (s *stubEmployeeUseCase) CreateEmployee(ctx context.Context, in employee.CreateEmployeeInput) (*employee.Employee, error) {
	s.createInput = in
	return s.createOut, s.createErr
}

func (s *stubEmployeeUseCase) GetEmployeeByKey(ctx context.Context, in employee.GetEmployeeByKeyInput) (*employee.Employee, error) {
	s.getInput = in
	return s.getOut, s.getErr
}

type okPinger struct{}

func (okPinger) Ping(context.Context) error { return nil }

func newTestRouter(stub *stubEmployeeUseCase) http.Handler {
	return NewRouter(stub, okPinger{}, nil)
}

func TestEmployeeHandler_Create_Success(t *testing.T) {
	t.Parallel()

	alias := "adz"
	stub := &stubEmployeeUseCase{
		createOut: &employee.Employee{
			ID:             1,
			Name:           "Ana",
			LastName:       "Diaz",
			Alias:          &alias,
			Email:          "ana@x.com",
			EmployeeNumber: "E1",
		},
	}

	router := newTestRouter(stub)

	body := `{"name":"Ana","last_name":"Diaz","alias":"adz","email":"ana@x.com","employee_number":"E1"}`
	req := httptest.NewRequest(http.MethodPost, "/employee/", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}

	if stub.createInput.Name != "Ana" || stub.createInput.EmployeeNumber != "E1" {
		t.Errorf("expected input to pass through, got %+v", stub.createInput)
	}
	if stub.createInput.Alias == nil || *stub.createInput.Alias != "adz" {
		t.Errorf("expected alias to pass through, got %+v", stub.createInput.Alias)
	}
	if stub.createInput.PhoneNumber != nil {
		t.Errorf("expected absent phone_number to stay nil, got %+v", stub.createInput.PhoneNumber)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp["id"] != float64(1) {
		t.Errorf("expected assigned id in response, got %v", resp["id"])
	}
	if resp["phone_number"] != nil {
		t.Errorf("expected null phone_number, got %v", resp["phone_number"])
	}
}

func TestEmployeeHandler_Create_InvalidBody(t *testing.T) {
	t.Parallel()

	router := newTestRouter(&stubEmployeeUseCase{})

	req := httptest.NewRequest(http.MethodPost, "/employee/", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestEmployeeHandler_Create_ValidationError(t *testing.T) {
	t.Parallel()

	stub := &stubEmployeeUseCase{
		createErr: &employee.ValidationError{Fields: []employee.FieldError{
			{Field: "email", Reason: "must be a valid email address"},
		}},
	}
	router := newTestRouter(stub)

	req := httptest.NewRequest(http.MethodPost, "/employee/", strings.NewReader(`{"email":"nope"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp struct {
		Detail []struct {
			Field  string `json:"field"`
			Reason string `json:"reason"`
		} `json:"detail"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(resp.Detail) != 1 || resp.Detail[0].Field != "email" {
		t.Fatalf("expected email field error, got %+v", resp.Detail)
	}
}

func TestEmployeeHandler_Create_Conflict(t *testing.T) {
	t.Parallel()

	stub := &stubEmployeeUseCase{createErr: employee.ErrEmployeeNumberAlreadyExists}
	router := newTestRouter(stub)

	body := `{"name":"Bruno","last_name":"Silva","email":"bruno@x.com","employee_number":"E1"}`
	req := httptest.NewRequest(http.MethodPost, "/employee/", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestEmployeeHandler_Create_GenericConflict(t *testing.T) {
	t.Parallel()

	stub := &stubEmployeeUseCase{createErr: employee.ErrEmployeeAlreadyExists}
	router := newTestRouter(stub)

	body := `{"name":"Ana","last_name":"Diaz","email":"ana@x.com","employee_number":"E1"}`
	req := httptest.NewRequest(http.MethodPost, "/employee/", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestEmployeeHandler_Create_StoreFailure(t *testing.T) {
	t.Parallel()

	stub := &stubEmployeeUseCase{createErr: employee.ErrStoreUnavailable}
	router := newTestRouter(stub)

	body := `{"name":"Ana","last_name":"Diaz","email":"ana@x.com","employee_number":"E1"}`
	req := httptest.NewRequest(http.MethodPost, "/employee/", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}

func TestEmployeeHandler_GetByKey_Success(t *testing.T) {
	t.Parallel()

	stub := &stubEmployeeUseCase{
		getOut: &employee.Employee{
			ID:             1,
			Name:           "Ana",
			LastName:       "Diaz",
			Email:          "ana@x.com",
			EmployeeNumber: "E1",
		},
	}
	router := newTestRouter(stub)

	req := httptest.NewRequest(http.MethodGet, "/employee/E1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}

	if stub.getInput.Value != "E1" {
		t.Errorf("expected path value to pass through, got %q", stub.getInput.Value)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["employee_number"] != "E1" {
		t.Errorf("unexpected response %v", resp)
	}
}

func TestEmployeeHandler_GetByKey_NotFound(t *testing.T) {
	t.Parallel()

	stub := &stubEmployeeUseCase{getErr: employee.ErrEmployeeNotFound}
	router := newTestRouter(stub)

	req := httptest.NewRequest(http.MethodGet, "/employee/E2", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var resp struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Detail != "Employee not found" {
		t.Fatalf("expected fixed not-found message, got %q", resp.Detail)
	}
}

func TestRouter_SetsRequestID(t *testing.T) {
	t.Parallel()

	stub := &stubEmployeeUseCase{getErr: employee.ErrEmployeeNotFound}
	router := newTestRouter(stub)

	req := httptest.NewRequest(http.MethodGet, "/employee/E1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Header().Get("X-Request-Id") == "" {
		t.Fatal("expected request id header to be set")
	}
}

func TestRouter_Health(t *testing.T) {
	t.Parallel()

	router := newTestRouter(&stubEmployeeUseCase{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
