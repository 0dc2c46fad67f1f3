package employee

import (
	"context"
	"errors"
	"time"
)

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// TransactionManager はトランザクション制御の抽象化です。
type TransactionManager interface {
	WithinReadOnly(ctx context.Context, fn func(context.Context) error) error
	WithinReadWrite(ctx context.Context, fn func(context.Context) error) error
}

type noopTransactionManager struct{}

func (noopTransactionManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

func (noopTransactionManager) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

// Service は社員名簿に関するユースケースをまとめます。
// レコードの作成と、設定された検索キーによる点検索のみを提供し、
// 更新・削除は存在しません。
type Service struct {
	repo      Repository
	clock     Clock
	tx        TransactionManager
	lookupKey LookupKey
}

// UseCase は社員名簿ユースケースの公開インターフェースです。
type UseCase interface {
	CreateEmployee(ctx context.Context, in CreateEmployeeInput) (*Employee, error)
	GetEmployeeByKey(ctx context.Context, in GetEmployeeByKeyInput) (*Employee, error)
}

// NewService は Service を生成します。lookupKey が空の場合は
// employee_number が使用されます。
func NewService(repo Repository, clock Clock, tx TransactionManager, lookupKey LookupKey) (*Service, error) {
	if clock == nil {
		clock = realClock{}
	}
	if tx == nil {
		tx = noopTransactionManager{}
	}
	if lookupKey == "" {
		lookupKey = LookupKeyEmployeeNumber
	}
	if !IsValidLookupKey(lookupKey) {
		return nil, ErrInvalidLookupKey
	}
	return &Service{repo: repo, clock: clock, tx: tx, lookupKey: lookupKey}, nil
}

// CreateEmployeeInput は社員作成時の入力です。
type CreateEmployeeInput struct {
	Name           string
	LastName       string
	Alias          *string
	Email          string
	PhoneNumber    *string
	EmployeeNumber string
}

// GetEmployeeByKeyInput は点検索時の入力です。Value は設定済み検索キー
// フィールドと厳密一致で比較されます。
type GetEmployeeByKeyInput struct {
	Value string
}

// CreateEmployee は新しい社員レコードを作成します。フィールド値は
// 入力されたとおりに永続化され、一意性も厳密一致で判定されます。
// 一意性の事前確認と INSERT はひとつの読み書きトランザクション内で実行され、
// 失敗時に部分的な書き込みが残ることはありません。同時作成の競合は
// ストア側の一意制約で解決されます。
func (s *Service) CreateEmployee(ctx context.Context, in CreateEmployeeInput) (*Employee, error) {
	if vErr := validateCreateInput(in); vErr != nil {
		return nil, vErr
	}

	var created *Employee
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		if err := s.ensureEmailNotExists(txCtx, in.Email); err != nil {
			return err
		}
		if err := s.ensureEmployeeNumberNotExists(txCtx, in.EmployeeNumber); err != nil {
			return err
		}

		now := s.clock.Now()
		emp := &Employee{
			Name:           in.Name,
			LastName:       in.LastName,
			Alias:          in.Alias,
			Email:          in.Email,
			PhoneNumber:    in.PhoneNumber,
			EmployeeNumber: in.EmployeeNumber,
			CreatedAt:      now,
			UpdatedAt:      now,
		}

		result, err := s.repo.Create(txCtx, emp)
		if err != nil {
			return err
		}

		created = result
		return nil
	}); err != nil {
		return nil, err
	}

	return created, nil
}

// GetEmployeeByKey は設定された検索キーで社員を取得します。
func (s *Service) GetEmployeeByKey(ctx context.Context, in GetEmployeeByKeyInput) (*Employee, error) {
	if in.Value == "" {
		return nil, &ValidationError{Fields: []FieldError{{Field: string(s.lookupKey), Reason: reasonRequired}}}
	}

	var result *Employee
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		found, err := s.findByLookupKey(txCtx, in.Value)
		if err != nil {
			return err
		}
		result = found
		return nil
	}); err != nil {
		return nil, err
	}

	return result, nil
}

func (s *Service) findByLookupKey(ctx context.Context, value string) (*Employee, error) {
	switch s.lookupKey {
	case LookupKeyAlias:
		return s.repo.FindByAlias(ctx, value)
	default:
		return s.repo.FindByEmployeeNumber(ctx, value)
	}
}

func (s *Service) ensureEmailNotExists(ctx context.Context, email string) error {
	emp, err := s.repo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, ErrEmployeeNotFound) {
		return err
	}
	if emp != nil {
		return ErrEmailAlreadyExists
	}
	return nil
}

func (s *Service) ensureEmployeeNumberNotExists(ctx context.Context, employeeNumber string) error {
	emp, err := s.repo.FindByEmployeeNumber(ctx, employeeNumber)
	if err != nil && !errors.Is(err, ErrEmployeeNotFound) {
		return err
	}
	if emp != nil {
		return ErrEmployeeNumberAlreadyExists
	}
	return nil
}
