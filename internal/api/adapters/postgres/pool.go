// Package postgres реализует репозитории на PostgreSQL.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"mesto/internal/api/domain/entities"
)

// Коды ошибок PostgreSQL.
const (
	codeUniqueViolation = "23505"
)

// Pool - подмножество pgxpool.Pool, используемое репозиториями.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// newID генерирует идентификатор в том же формате, что и MongoDB.
func newID() string {
	return primitive.NewObjectID().Hex()
}

// normalizeID проверяет идентификатор и приводит его к нижнему регистру,
// в котором идентификаторы хранятся в таблицах.
func normalizeID(id string) (string, error) {
	if !entities.ValidObjectID(id) {
		return "", fmt.Errorf("%w: %q", entities.ErrInvalidID, id)
	}
	return strings.ToLower(id), nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation
}

// withTx выполняет fn в транзакции. Ошибка fn откатывает транзакцию.
func withTx(ctx context.Context, pool Pool, fn func(tx pgx.Tx) error) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return errors.Join(err, fmt.Errorf("rolling back transaction: %w", rbErr))
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}
