package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"services-admin/internal/database"
	"services-admin/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

// adminRow 實作 pgx.Row，用於模擬單筆掃描行為。
type adminRow struct {
	scanErr error
	admin   *model.Admin
}

func (r *adminRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	a := r.admin
	*dest[0].(*int) = a.ID
	*dest[1].(*string) = a.Username
	*dest[2].(*string) = a.Email
	*dest[3].(*string) = a.PasswordHash
	*dest[4].(*time.Time) = a.CreatedAt
	return nil
}

func TestGetAdminByEmail(t *testing.T) {
	now := time.Now().UTC()
	sample := model.Admin{
		ID:           1,
		Username:     "admin",
		Email:        "admin@example.com",
		PasswordHash: "$2a$10$hash",
		CreatedAt:    now,
	}

	t.Run("ok", func(t *testing.T) {
		var gotQuery string
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
				gotQuery = sql
				require.Equal(t, []any{"admin@example.com"}, args)
				return &adminRow{admin: &sample}
			},
		}
		got, err := GetAdminByEmail(context.Background(), p, "admin@example.com")
		require.NoError(t, err)
		require.Equal(t, sample, *got)
		require.Contains(t, gotQuery, "LIMIT 1")
	})

	t.Run("not found", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &adminRow{scanErr: pgx.ErrNoRows}
			},
		}
		_, err := GetAdminByEmail(context.Background(), p, "nobody@example.com")
		require.Error(t, err)
		require.ErrorIs(t, err, pgx.ErrNoRows)
	})

	t.Run("scan err", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &adminRow{scanErr: errors.New("boom")}
			},
		}
		_, err := GetAdminByEmail(context.Background(), p, "admin@example.com")
		require.Error(t, err)
	})
}
