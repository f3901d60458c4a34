//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by *pgxpool.Pool and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// CreateTestUser returns the id of the account with email, inserting it when missing.
func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	name := strings.SplitN(email, "@", 2)[0]
	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, name, role) VALUES ($1, $2, $3, $4) ON CONFLICT (email) DO NOTHING",
		userID, email, name, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
		require.NoError(t, err)
	}

	return userID
}

func CreateTestService(t *testing.T, db DBLike, name, icon string, active bool) uuid.UUID {
	t.Helper()

	serviceID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO services (id, name, icon, is_active) VALUES ($1, $2, $3, $4) ON CONFLICT (name) DO NOTHING",
		serviceID, name, icon, active)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM services WHERE name = $1", name).Scan(&serviceID)
		require.NoError(t, err)
	}

	return serviceID
}

// CreateTestAppointment inserts a booking directly, bypassing slot validation.
func CreateTestAppointment(t *testing.T, db DBLike, ownerID uuid.UUID, serviceName string, startAt time.Time) uuid.UUID {
	t.Helper()

	id := uuid.New()
	startAt = startAt.UTC()
	_, err := db.Exec(context.Background(),
		`INSERT INTO appointments (id, owner_id, service_name, start_at, slot_date, slot_time)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		id, ownerID, serviceName, startAt, startAt.Format(time.DateOnly), startAt.Format("15:04"))
	require.NoError(t, err)

	return id
}

func CountAppointments(t *testing.T, db DBLike) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM appointments").Scan(&n)
	require.NoError(t, err)
	return n
}

// SeedReferenceData inserts the service catalog every test starts from.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO services (id, name, icon, is_active) VALUES
		    (gen_random_uuid(), 'Haircut', 'scissors', true),
		    (gen_random_uuid(), 'Manicure', 'nail', true),
		    (gen_random_uuid(), 'Retired Service', 'archive', false)
		ON CONFLICT (name) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates all tables and reseeds reference data.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
