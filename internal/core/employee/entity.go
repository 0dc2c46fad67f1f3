package employee

import "time"

// Employee は社員名簿のレコードです。
type Employee struct {
	ID             int64
	Name           string
	LastName       string
	Alias          *string
	Email          string
	PhoneNumber    *string
	EmployeeNumber string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// LookupKey は点検索に使用するフィールドを表します。
// デプロイ単位で固定され、リクエストごとに切り替わることはありません。
type LookupKey string

const (
	LookupKeyEmployeeNumber LookupKey = "employee_number"
	LookupKeyAlias          LookupKey = "alias"
)

// IsValidLookupKey は検索キーとして利用可能な値か判定します。
func IsValidLookupKey(key LookupKey) bool {
	switch key {
	case LookupKeyEmployeeNumber, LookupKeyAlias:
		return true
	default:
		return false
	}
}
