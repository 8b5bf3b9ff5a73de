// File: internal/model/service.go
package model

import "time"

// Service 服務項目
// Icon 與 ImageURL 可為 NULL；ImageURL 一律為 /uploads/services/<filename> 相對路徑
type Service struct {
	ID              int       `db:"service_id" json:"service_id"`
	Name            string    `db:"name" json:"name"`
	Slug            string    `db:"slug" json:"slug"`
	Description     string    `db:"description" json:"description"`
	LongDescription string    `db:"long_description" json:"long_description"`
	Status          string    `db:"status" json:"status"`
	Category        string    `db:"category" json:"category"`
	Icon            *string   `db:"icon" json:"icon"`
	ImageURL        *string   `db:"image_url" json:"image_url"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}
