package employee

import "context"

// Repository は社員レコード永続化の抽象です。
type Repository interface {
	Create(ctx context.Context, employee *Employee) (*Employee, error)
	FindByEmail(ctx context.Context, email string) (*Employee, error)
	FindByEmployeeNumber(ctx context.Context, employeeNumber string) (*Employee, error)
	FindByAlias(ctx context.Context, alias string) (*Employee, error)
}
