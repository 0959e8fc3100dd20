// Package txmanager менеджер транзакций поверх dbmetrics.DB.
// Сериализуемые транзакции автоматически повторяются при serialization failure;
// исчерпание повторов отдается вызывающему как ErrConflict.
package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/m04kA/SMC-HotelService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelService/pkg/metrics"
)

const (
	// Количество попыток выполнения сериализуемой транзакции
	maxSerializableAttempts = 3

	// Базовая задержка между повторами
	retryBackoff = 10 * time.Millisecond
)

// Коды ошибок PostgreSQL, при которых транзакцию можно безопасно повторить
const (
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
)

var (
	// ErrConflict возвращается, когда сериализуемая транзакция не смогла
	// завершиться из-за конкурентного доступа после всех повторов.
	// Вызывающий может повторить всю операцию целиком.
	ErrConflict = errors.New("txmanager: transaction conflict")
)

// TxBeginner интерфейс для начала транзакций
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error)
}

// TransactionManager менеджер транзакций
type TransactionManager struct {
	db      TxBeginner
	metrics *metrics.Metrics
}

// NewTransactionManager создает новый менеджер транзакций
// с записью метрик транзакций и повторов
func NewTransactionManager(db TxBeginner, m *metrics.Metrics) *TransactionManager {
	return &TransactionManager{db: db, metrics: m}
}

// Do выполняет fn в транзакции с уровнем изоляции по умолчанию
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	err := m.run(ctx, &sql.TxOptions{}, fn)
	m.observe("default", err)
	return err
}

// DoReadOnly выполняет fn в read-only транзакции
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	err := m.run(ctx, &sql.TxOptions{ReadOnly: true}, fn)
	m.observe("read_only", err)
	return err
}

// DoSerializable выполняет fn в сериализуемой транзакции.
// При serialization failure или deadlock повторяет транзакцию целиком
// до maxSerializableAttempts раз, после чего возвращает ErrConflict.
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	opts := &sql.TxOptions{Isolation: sql.LevelSerializable}

	var lastErr error
	for attempt := 1; attempt <= maxSerializableAttempts; attempt++ {
		err := m.run(ctx, opts, fn)
		if err == nil {
			m.observe("serializable", nil)
			return nil
		}
		if !IsRetryable(err) {
			m.observe("serializable", err)
			return err
		}

		lastErr = err
		if m.metrics != nil {
			m.metrics.TxRetries.WithLabelValues("serializable").Inc()
		}
		if attempt < maxSerializableAttempts {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(retryBackoff * time.Duration(attempt)):
			}
		}
	}

	m.observe("serializable", lastErr)
	return fmt.Errorf("%w: %v", ErrConflict, lastErr)
}

func (m *TransactionManager) observe(isolation string, err error) {
	if m.metrics == nil {
		return
	}
	status := "commit"
	if err != nil {
		status = "rollback"
	}
	m.metrics.TxTotal.WithLabelValues(isolation, status).Inc()
}

func (m *TransactionManager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("txmanager: begin transaction: %w", err)
	}

	txCtx := dbmetrics.InjectTx(ctx, tx)

	if err := fn(txCtx); err != nil {
		// Откатываем; ошибка rollback вторична по отношению к ошибке fn
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("txmanager: commit transaction: %w", err)
	}

	return nil
}

// IsRetryable сообщает, вызвана ли ошибка конкурентным конфликтом,
// после которого транзакцию можно повторить
func IsRetryable(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		code := string(pqErr.Code)
		return code == pgSerializationFailure || code == pgDeadlockDetected
	}
	return false
}
