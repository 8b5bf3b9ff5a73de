package store

import (
	"context"
	"fmt"

	"services-admin/internal/database"
	"services-admin/internal/model"
)

// GetAdminByEmail 以 Email 精確比對撈取管理員（依儲存層 collation 區分大小寫）
func GetAdminByEmail(ctx context.Context, db database.DB, email string) (*model.Admin, error) {
	row := db.QueryRow(ctx,
		`SELECT admin_id, username, email, password_hash, created_at
		 FROM admins WHERE email = $1 LIMIT 1`,
		email,
	)
	a := &model.Admin{}
	if err := row.Scan(
		&a.ID,
		&a.Username,
		&a.Email,
		&a.PasswordHash,
		&a.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("GetAdminByEmail: %w", err)
	}
	return a, nil
}
