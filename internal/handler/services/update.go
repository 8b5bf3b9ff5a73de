// File: internal/handler/services/update.go
package services

import (
	"errors"
	"net/http"
	"strconv"

	"services-admin/internal/api"
	"services-admin/internal/cache"
	"services-admin/internal/database"
	"services-admin/internal/service"
	"services-admin/internal/storage"
	"services-admin/internal/worker"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

// UpdateServiceHandler 部分更新：有給的欄位覆寫，省略的欄位保留原值
// name 有給才重算 slug；新圖片取代舊圖片時，舊檔交由 worker pool 背景刪除
// @Summary     Update a service by ID
// @Description 更新服務欄位，省略的欄位不變，圖片欄位 image 為選填
// @Tags        services
// @Accept      multipart/form-data
// @Produce     json
// @Param       service_id  path     int    true  "服務 ID"
// @Param       name        formData string false "服務名稱"
// @Param       description formData string false "簡短描述"
// @Param       long_description formData string false "完整描述"
// @Param       status      formData string false "狀態"
// @Param       category    formData string false "分類"
// @Param       icon        formData string false "圖示"
// @Param       image       formData file   false "服務圖片"
// @Success     200 {object} api.UpdateServiceResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /services/{service_id} [put]
func UpdateServiceHandler(db database.DB, rdb cache.Cache, st storage.Storage, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("service_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid service ID"})
		}

		var req api.UpdateServiceRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}

		svc, err := getServiceByID(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "service not found"})
			}
			c.Logger().Errorf("get service %d: %v", id, err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to update service"})
		}

		if req.Name != nil {
			svc.Name = *req.Name
			svc.Slug = service.Slugify(*req.Name)
		}
		if req.Description != nil {
			svc.Description = *req.Description
		}
		if req.LongDescription != nil {
			svc.LongDescription = *req.LongDescription
		}
		if req.Status != nil {
			svc.Status = *req.Status
		}
		if req.Category != nil {
			svc.Category = *req.Category
		}
		if req.Icon != nil {
			svc.Icon = req.Icon
		}

		var oldImageURL string
		if svc.ImageURL != nil {
			oldImageURL = *svc.ImageURL
		}
		newImageURL, err := saveUpload(c, st)
		if err != nil {
			c.Logger().Errorf("save upload: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to update service"})
		}
		if newImageURL != nil {
			svc.ImageURL = newImageURL
		}

		if err := updateService(c.Request().Context(), db, svc); err != nil {
			if newImageURL != nil {
				if rmErr := st.Remove(*newImageURL); rmErr != nil {
					c.Logger().Errorf("remove orphan upload %s: %v", *newImageURL, rmErr)
				}
			}
			c.Logger().Errorf("update service %d: %v", id, err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to update service"})
		}

		// 新圖片已取代舊圖片，舊檔 best-effort 背景回收
		if newImageURL != nil && oldImageURL != "" {
			removeOld := func() {
				if rmErr := st.Remove(oldImageURL); rmErr != nil {
					c.Logger().Errorf("remove superseded upload %s: %v", oldImageURL, rmErr)
				}
			}
			if wp != nil {
				wp.Submit(removeOld)
			} else {
				removeOld()
			}
		}

		invalidateListCache(c.Request().Context(), rdb)

		return c.JSON(http.StatusOK, api.UpdateServiceResponse{
			Message:  "service updated successfully",
			Slug:     svc.Slug,
			ImageURL: svc.ImageURL,
		})
	}
}
