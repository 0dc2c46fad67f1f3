package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ogurasousui/employee-directory/internal/core/employee"
	pgdb "github.com/ogurasousui/employee-directory/internal/platform/db/postgres"
)

const (
	uniqueViolationCode = "23505"

	emailUniqueConstraint          = "employees_email_key"
	employeeNumberUniqueConstraint = "employees_employee_number_key"
)

// EmployeeRepository は PostgreSQL を利用した社員レコード永続化の実装です。
type EmployeeRepository struct {
	pool pgdb.Queryer
}

// NewEmployeeRepository は EmployeeRepository を生成します。
func NewEmployeeRepository(pool pgdb.Queryer) *EmployeeRepository {
	return &EmployeeRepository{pool: pool}
}

const employeeColumns = "id, name, last_name, alias, email, phone_number, employee_number, created_at, updated_at"

// Create は社員レコードを新規作成し、採番済み id を含む行を返します。
func (r *EmployeeRepository) Create(ctx context.Context, e *employee.Employee) (*employee.Employee, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO employees (name, last_name, alias, email, phone_number, employee_number, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING `+employeeColumns+`
    `,
		e.Name,
		e.LastName,
		nullableString(e.Alias),
		e.Email,
		nullableString(e.PhoneNumber),
		e.EmployeeNumber,
		e.CreatedAt,
		e.UpdatedAt,
	)

	created, err := scanEmployee(row)
	if err != nil {
		return nil, translatePgError(err)
	}
	return created, nil
}

// FindByEmail はメールアドレスで社員を取得します。
func (r *EmployeeRepository) FindByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT `+employeeColumns+`
          FROM employees
         WHERE email = $1
         LIMIT 1
    `, email)

	found, err := scanEmployee(row)
	if err != nil {
		return nil, translatePgError(err)
	}
	return found, nil
}

// FindByEmployeeNumber は社員番号で社員を取得します。
func (r *EmployeeRepository) FindByEmployeeNumber(ctx context.Context, employeeNumber string) (*employee.Employee, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT `+employeeColumns+`
          FROM employees
         WHERE employee_number = $1
         LIMIT 1
    `, employeeNumber)

	found, err := scanEmployee(row)
	if err != nil {
		return nil, translatePgError(err)
	}
	return found, nil
}

// FindByAlias はエイリアスで社員を取得します。alias に一意制約はないため、
// 複数一致時は id が最小の行を返します。
func (r *EmployeeRepository) FindByAlias(ctx context.Context, alias string) (*employee.Employee, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT `+employeeColumns+`
          FROM employees
         WHERE alias = $1
         ORDER BY id
         LIMIT 1
    `, alias)

	found, err := scanEmployee(row)
	if err != nil {
		return nil, translatePgError(err)
	}
	return found, nil
}

func scanEmployee(row pgx.Row) (*employee.Employee, error) {
	var (
		id             int64
		name           string
		lastName       string
		alias          sql.NullString
		email          string
		phoneNumber    sql.NullString
		employeeNumber string
		createdAt      time.Time
		updatedAt      time.Time
	)

	if err := row.Scan(
		&id,
		&name,
		&lastName,
		&alias,
		&email,
		&phoneNumber,
		&employeeNumber,
		&createdAt,
		&updatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, err
	}

	return &employee.Employee{
		ID:             id,
		Name:           name,
		LastName:       lastName,
		Alias:          nullStringPtr(alias),
		Email:          email,
		PhoneNumber:    nullStringPtr(phoneNumber),
		EmployeeNumber: employeeNumber,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}, nil
}

// translatePgError はストア由来のエラーをドメインエラーへ変換します。
// 一意制約違反は制約名から email / employee_number を判別します。制約名を
// 判別できない一意制約違反も競合として扱い、ストア障害には分類しません。
func translatePgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == uniqueViolationCode {
			switch pgErr.ConstraintName {
			case emailUniqueConstraint:
				return employee.ErrEmailAlreadyExists
			case employeeNumberUniqueConstraint:
				return employee.ErrEmployeeNumberAlreadyExists
			default:
				return employee.ErrEmployeeAlreadyExists
			}
		}
		return err
	}

	return errors.Join(employee.ErrStoreUnavailable, err)
}

func nullableString(value *string) any {
	if value == nil {
		return nil
	}
	return *value
}

func nullStringPtr(value sql.NullString) *string {
	if !value.Valid {
		return nil
	}
	s := value.String
	return &s
}
