package employee

import (
	"net/mail"
	"strings"
)

// FieldError は単一フィールドの検証失敗を表します。
type FieldError struct {
	Field  string
	Reason string
}

// ValidationError は検証に失敗したフィールドの一覧です。
// レスポンス整形には関与せず、失敗内容の列挙のみを担います。
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("validation failed")
	for i, f := range e.Fields {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		b.WriteString(f.Field)
		b.WriteString(": ")
		b.WriteString(f.Reason)
	}
	return b.String()
}

const (
	reasonRequired     = "required"
	reasonInvalidEmail = "must be a valid email address"
)

// validateCreateInput は入力の形状とメールアドレスの構文を検証します。
// 値の書き換えは一切行わず、レコードは入力されたとおりに永続化されます。
func validateCreateInput(in CreateEmployeeInput) *ValidationError {
	var fields []FieldError

	if isBlank(in.Name) {
		fields = append(fields, FieldError{Field: "name", Reason: reasonRequired})
	}

	if isBlank(in.LastName) {
		fields = append(fields, FieldError{Field: "last_name", Reason: reasonRequired})
	}

	switch {
	case isBlank(in.Email):
		fields = append(fields, FieldError{Field: "email", Reason: reasonRequired})
	case !isValidEmail(in.Email):
		fields = append(fields, FieldError{Field: "email", Reason: reasonInvalidEmail})
	}

	if isBlank(in.EmployeeNumber) {
		fields = append(fields, FieldError{Field: "employee_number", Reason: reasonRequired})
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func isBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}

// isValidEmail は表示名や前後の空白を伴わない単一のメールアドレスのみを
// 許容します。大文字小文字はそのまま保持されます。
func isValidEmail(raw string) bool {
	addr, err := mail.ParseAddress(raw)
	return err == nil && addr.Address == raw
}
