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

	"cowork-booking/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const DefaultPassword = "password123"

var (
	hashOnce    sync.Once
	defaultHash string
)

func defaultPasswordHash(t *testing.T) string {
	t.Helper()
	hashOnce.Do(func() {
		h, err := password.HashWithCost(DefaultPassword, bcrypt.MinCost)
		require.NoError(t, err)
		defaultHash = h
	})
	return defaultHash
}

// CreateTestUser returns the existing id when the email is already taken.
func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()
	name := strings.Split(email, "@")[0]

	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, name, email, password_hash, role) VALUES ($1, $2, $3, $4, $5) ON CONFLICT (email) DO NOTHING",
		userID, name, strings.ToLower(email), defaultPasswordHash(t), role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", strings.ToLower(email)).Scan(&userID)
		require.NoError(t, err)
	}

	return userID
}

func CreateTestRoom(t *testing.T, db DBLike, name string, pricePerHourCents int64) uuid.UUID {
	t.Helper()

	roomID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO rooms (id, name, capacity, price_per_hour_cents, is_active) VALUES ($1, $2, $3, $4, true)",
		roomID, name, 8, pricePerHourCents)
	require.NoError(t, err)

	return roomID
}

// CreateTestReservation writes directly, skipping the overlap checks done by
// the usecase; the exclusion constraint still applies.
func CreateTestReservation(t *testing.T, db DBLike, userID, roomID uuid.UUID, start, end time.Time, status string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO reservations (id, user_id, room_id, start_time, end_time, total_price_cents, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, userID, roomID, start.UTC(), end.UTC(), int64(0), status)
	require.NoError(t, err)

	return id
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations', 'atlas_schema_revisions')`)
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
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
