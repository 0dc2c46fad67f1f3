package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Queryer は pgx.Tx および pgxpool.Pool の両方が満たすクエリ実行インターフェースです。
type Queryer interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type beginner interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

type txContextKey struct{}

// TransactionManager は操作単位のトランザクションを提供します。
// 開始したトランザクションはコンテキスト経由でリポジトリへ伝搬し、
// fn の成否に応じて必ずコミットまたはロールバックされます。
type TransactionManager struct {
	db beginner
}

// NewTransactionManager は TransactionManager を生成します。
func NewTransactionManager(db beginner) *TransactionManager {
	if db == nil {
		return nil
	}
	return &TransactionManager{db: db}
}

// WithinReadOnly は読み取り専用トランザクション内で fn を実行します。
func (m *TransactionManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	if m == nil {
		return fn(ctx)
	}
	return m.run(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

// WithinReadWrite は読み書きトランザクション内で fn を実行します。
func (m *TransactionManager) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	if m == nil {
		return fn(ctx)
	}
	return m.run(ctx, pgx.TxOptions{AccessMode: pgx.ReadWrite}, fn)
}

func (m *TransactionManager) run(ctx context.Context, opts pgx.TxOptions, fn func(context.Context) error) error {
	if fn == nil {
		return fmt.Errorf("postgres: transaction function is required")
	}

	// 既にトランザクション内であれば再利用する。
	if _, ok := txFromContext(ctx); ok {
		return fn(ctx)
	}

	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("postgres: begin tx: %w", err)
	}

	if err := fn(context.WithValue(ctx, txContextKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			return errors.Join(err, fmt.Errorf("postgres: rollback: %w", rbErr))
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			return errors.Join(fmt.Errorf("postgres: commit: %w", err), fmt.Errorf("postgres: rollback after commit failure: %w", rbErr))
		}
		return fmt.Errorf("postgres: commit: %w", err)
	}

	return nil
}

func txFromContext(ctx context.Context) (pgx.Tx, bool) {
	if ctx == nil {
		return nil, false
	}
	tx, ok := ctx.Value(txContextKey{}).(pgx.Tx)
	return tx, ok
}

// QueryerFromContext は進行中のトランザクションがあればそれを、
// なければ fallback を返します。
func QueryerFromContext(ctx context.Context, fallback Queryer) Queryer {
	if tx, ok := txFromContext(ctx); ok {
		return tx
	}
	return fallback
}
