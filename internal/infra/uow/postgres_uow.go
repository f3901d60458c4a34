package uow

import (
	"context"
	"crypto/rand"
	"errors"
	"log/slog"
	"math/big"
	"time"

	"appointment-scheduler/internal/infra/db"
	"appointment-scheduler/internal/infra/readstore"
	"appointment-scheduler/internal/infra/repository"
	"appointment-scheduler/internal/pkg/errs"
	"appointment-scheduler/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

// Pool is the part of *pgxpool.Pool the unit of work needs.
type Pool interface {
	db.DBTX
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

var _ Pool = (*pgxpool.Pool)(nil)

type PostgresUoW struct {
	pool   Pool
	reads  shared.AppointmentReads
	logger *slog.Logger
}

func NewPostgresUoW(pool Pool, logger *slog.Logger) *PostgresUoW {
	return &PostgresUoW{
		pool:   pool,
		reads:  readstore.NewSnapshotReadStore(pool),
		logger: logger,
	}
}

// ReadCommitted is enough: the (slot_date, slot_time) unique constraint
// decides concurrent bookings of the same slot.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) Reads() shared.AppointmentReads {
	return u.reads
}

const (
	maxTxRetries = 3
	txRetryBase  = 100 * time.Millisecond
)

// Each attempt rolls back explicitly so retries never stack deferred calls.
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	for attempt := 0; ; attempt++ {
		err := u.attempt(ctx, options, fn)
		if err == nil {
			return nil
		}
		if !isRetryableError(err) {
			return err
		}
		if attempt == maxTxRetries {
			u.logger.Error("transaction failed after max retries", "attempts", attempt+1, "error", err.Error())
			return errs.Mark(err, errMaxRetriesExceeded)
		}

		waitTime := calculateBackoff(attempt, txRetryBase)
		u.logger.Warn("retrying transaction",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}
}

func (u *PostgresUoW) attempt(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	err = fn(ctx, &pgTx{dbtx: pgxTx})
	if err == nil {
		if err = pgxTx.Commit(ctx); err == nil {
			return nil
		}
		err = errs.Mark(err, errTransactionCommit)
	}

	if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
		u.logger.Warn("rollback failed", "error", rollbackErr.Error())
	}
	return err
}

// calculateBackoff doubles per attempt and adds up to 20% jitter.
func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	return waitTime + jitter(waitTime/5)
}

func jitter(max time.Duration) time.Duration {
	if max <= 0 {
		return 0
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		return 0
	}
	return time.Duration(n.Int64())
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx db.DBTX

	appointmentRepo shared.AppointmentRepository
	reads           shared.AppointmentReads
}

func (t *pgTx) Appointments() shared.AppointmentRepository {
	if t.appointmentRepo == nil {
		t.appointmentRepo = repository.NewAppointmentRepository(t.dbtx)
	}
	return t.appointmentRepo
}

// Reads inside a transaction see the rows it has written.
func (t *pgTx) Reads() shared.AppointmentReads {
	if t.reads == nil {
		t.reads = readstore.NewSnapshotReadStore(t.dbtx)
	}
	return t.reads
}
