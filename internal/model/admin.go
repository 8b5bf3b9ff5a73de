// File: internal/model/admin.go
package model

import "time"

// Admin 管理員帳號（唯讀，不提供建立與更新端點）
type Admin struct {
	ID           int       `db:"admin_id" json:"id"`
	Username     string    `db:"username" json:"username"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
