package store

import (
	"context"
	"errors"
	"fmt"

	"services-admin/internal/database"
	"services-admin/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
)

// maxSlugAttempts slug 碰撞時最多嘗試的遞增後綴次數
const maxSlugAttempts = 50

const serviceColumns = `service_id, name, slug, description, long_description,
	 status, category, icon, image_url, created_at`

func scanService(row interface{ Scan(dest ...any) error }, s *model.Service) error {
	return row.Scan(
		&s.ID,
		&s.Name,
		&s.Slug,
		&s.Description,
		&s.LongDescription,
		&s.Status,
		&s.Category,
		&s.Icon,
		&s.ImageURL,
		&s.CreatedAt,
	)
}

// isUniqueViolation 判斷是否為唯一鍵衝突 (SQLSTATE 23505)
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// ListServices 回傳全部服務，依建立時間新到舊排序
func ListServices(ctx context.Context, db database.DB) ([]model.Service, error) {
	rows, err := db.Query(ctx,
		`SELECT `+serviceColumns+`
		 FROM services ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListServices: %w", err)
	}
	defer rows.Close()

	var services []model.Service
	for rows.Next() {
		var s model.Service
		if err := scanService(rows, &s); err != nil {
			return nil, fmt.Errorf("ListServices: %w", err)
		}
		services = append(services, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListServices: %w", err)
	}
	return services, nil
}

func GetServiceByID(ctx context.Context, db database.DB, serviceID int) (*model.Service, error) {
	row := db.QueryRow(ctx,
		`SELECT `+serviceColumns+`
		 FROM services WHERE service_id = $1`,
		serviceID,
	)
	s := &model.Service{}
	if err := scanService(row, s); err != nil {
		return nil, fmt.Errorf("GetServiceByID: %w", err)
	}
	return s, nil
}

func GetServiceBySlug(ctx context.Context, db database.DB, slug string) (*model.Service, error) {
	row := db.QueryRow(ctx,
		`SELECT `+serviceColumns+`
		 FROM services WHERE slug = $1 LIMIT 1`,
		slug,
	)
	s := &model.Service{}
	if err := scanService(row, s); err != nil {
		return nil, fmt.Errorf("GetServiceBySlug: %w", err)
	}
	return s, nil
}

// CreateService 新增服務，slug 衝突時自動以 -2、-3… 後綴消歧
func CreateService(ctx context.Context, db database.DB, s *model.Service) (*model.Service, error) {
	base := s.Slug
	for attempt := 1; ; attempt++ {
		if attempt > 1 {
			s.Slug = fmt.Sprintf("%s-%d", base, attempt)
		}
		row := db.QueryRow(ctx,
			`INSERT INTO services
			   (name, slug, description, long_description, status, category, icon, image_url)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			 RETURNING service_id, created_at`,
			s.Name,
			s.Slug,
			s.Description,
			s.LongDescription,
			s.Status,
			s.Category,
			s.Icon,
			s.ImageURL,
		)
		err := row.Scan(&s.ID, &s.CreatedAt)
		if err == nil {
			return s, nil
		}
		if isUniqueViolation(err) && attempt < maxSlugAttempts {
			continue
		}
		return nil, fmt.Errorf("CreateService: %w", err)
	}
}

// UpdateService 以 ID 全欄位覆寫，slug 衝突時同樣以後綴消歧
func UpdateService(ctx context.Context, db database.DB, s *model.Service) error {
	base := s.Slug
	for attempt := 1; ; attempt++ {
		if attempt > 1 {
			s.Slug = fmt.Sprintf("%s-%d", base, attempt)
		}
		_, err := db.Exec(ctx,
			`UPDATE services
			 SET name = $1, slug = $2, description = $3, long_description = $4,
			     status = $5, category = $6, icon = $7, image_url = $8
			 WHERE service_id = $9`,
			s.Name,
			s.Slug,
			s.Description,
			s.LongDescription,
			s.Status,
			s.Category,
			s.Icon,
			s.ImageURL,
			s.ID,
		)
		if err == nil {
			return nil
		}
		if isUniqueViolation(err) && attempt < maxSlugAttempts {
			continue
		}
		return fmt.Errorf("UpdateService: %w", err)
	}
}

func DeleteService(ctx context.Context, db database.DB, serviceID int) error {
	_, err := db.Exec(ctx,
		`DELETE FROM services WHERE service_id = $1`,
		serviceID,
	)
	if err != nil {
		return fmt.Errorf("DeleteService: %w", err)
	}
	return nil
}
