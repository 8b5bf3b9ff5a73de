// File: internal/handler/services/service.go
package services

import (
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"services-admin/internal/api"
	"services-admin/internal/cache"
	"services-admin/internal/database"
	"services-admin/internal/model"
	"services-admin/internal/storage"
	"services-admin/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

var (
	listServices     = store.ListServices
	getServiceByID   = store.GetServiceByID
	getServiceBySlug = store.GetServiceBySlug
	createService    = store.CreateService
	updateService    = store.UpdateService
	deleteService    = store.DeleteService
)

const (
	// listCacheKey 公開服務清單的快取鍵
	listCacheKey = "services:all"
	// listCacheTTL 清單快取有效期限，任何寫入都會主動失效
	listCacheTTL = 60 * time.Second
)

// uploadFieldName multipart 圖片欄位名稱
const uploadFieldName = "image"

func toServiceResponse(s model.Service) api.ServiceResponse {
	return api.ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		Slug:            s.Slug,
		Description:     s.Description,
		LongDescription: s.LongDescription,
		Status:          s.Status,
		Category:        s.Category,
		Icon:            s.Icon,
		ImageURL:        s.ImageURL,
		CreatedAt:       s.CreatedAt,
	}
}

// invalidateListCache 寫入後讓清單快取失效，rdb 可為 nil
func invalidateListCache(ctx context.Context, rdb cache.Cache) {
	if rdb != nil {
		rdb.Del(ctx, listCacheKey)
	}
}

// saveUpload 儲存 multipart 圖片欄位，未附檔時回傳 nil
func saveUpload(c echo.Context, st storage.Storage) (*string, error) {
	fh, err := c.FormFile(uploadFieldName)
	if err != nil {
		// 沒有附檔或非 multipart 請求，圖片為選填
		return nil, nil
	}
	var src multipart.File
	if src, err = fh.Open(); err != nil {
		return nil, err
	}
	defer src.Close()

	url, err := st.Save(src, fh.Filename)
	if err != nil {
		return nil, err
	}
	return &url, nil
}

// ListServicesHandler 回傳全部服務，新到舊排序；優先使用清單快取
// @Summary     List services
// @Description 回傳全部服務，依建立時間新到舊排序
// @Tags        services
// @Produce     json
// @Success     200 {array} api.ServiceResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /services [get]
func ListServicesHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		if rdb != nil {
			if raw, err := rdb.Get(ctx, listCacheKey).Result(); err == nil {
				return c.JSONBlob(http.StatusOK, []byte(raw))
			}
		}

		svcs, err := listServices(ctx, db)
		if err != nil {
			c.Logger().Errorf("list services: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to fetch services"})
		}

		resp := make([]api.ServiceResponse, 0, len(svcs))
		for _, s := range svcs {
			resp = append(resp, toServiceResponse(s))
		}

		if rdb != nil {
			if buf, err := json.Marshal(resp); err == nil {
				rdb.Set(ctx, listCacheKey, buf, listCacheTTL)
			}
		}

		return c.JSON(http.StatusOK, resp)
	}
}

// GetServiceHandler 以 ID 查詢單筆服務
// @Summary     Get a service by ID
// @Description 透過 ID 查詢並回傳服務詳細資料
// @Tags        services
// @Produce     json
// @Param       service_id path int true "服務 ID"
// @Success     200 {object} api.ServiceResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /services/{service_id} [get]
func GetServiceHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("service_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid service ID"})
		}
		s, err := getServiceByID(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "service not found"})
			}
			c.Logger().Errorf("get service %d: %v", id, err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to fetch service"})
		}
		return c.JSON(http.StatusOK, toServiceResponse(*s))
	}
}

// GetServiceBySlugHandler 以 slug 查詢單筆服務
// @Summary     Get a service by slug
// @Description 透過 slug 查詢並回傳服務詳細資料
// @Tags        services
// @Produce     json
// @Param       slug path string true "服務 slug"
// @Success     200 {object} api.ServiceResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /services/slug/{slug} [get]
func GetServiceBySlugHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		slug := c.Param("slug")
		s, err := getServiceBySlug(c.Request().Context(), db, slug)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "service not found"})
			}
			c.Logger().Errorf("get service by slug %q: %v", slug, err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to fetch service"})
		}
		return c.JSON(http.StatusOK, toServiceResponse(*s))
	}
}
