// File: internal/handler/services/create.go
package services

import (
	"net/http"

	"services-admin/internal/api"
	"services-admin/internal/cache"
	"services-admin/internal/database"
	"services-admin/internal/model"
	"services-admin/internal/service"
	"services-admin/internal/storage"

	"github.com/labstack/echo/v4"
)

// CreateServiceHandler 建立服務，圖片為選填的 multipart 欄位
// 先寫檔再寫資料庫；資料庫寫入失敗時刪除剛寫入的檔案，避免產生孤兒檔
// @Summary     Create a new service
// @Description 建立服務項目，slug 由名稱推導，圖片欄位 image 為選填
// @Tags        services
// @Accept      multipart/form-data
// @Produce     json
// @Param       name        formData string true  "服務名稱"
// @Param       description formData string true  "簡短描述"
// @Param       long_description formData string false "完整描述"
// @Param       status      formData string true  "狀態"
// @Param       category    formData string true  "分類"
// @Param       icon        formData string false "圖示"
// @Param       image       formData file   false "服務圖片"
// @Success     201 {object} api.CreateServiceResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /services [post]
func CreateServiceHandler(db database.DB, rdb cache.Cache, st storage.Storage) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateServiceRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "missing required fields"})
		}

		imageURL, err := saveUpload(c, st)
		if err != nil {
			c.Logger().Errorf("save upload: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to create service"})
		}

		svc := &model.Service{
			Name:            req.Name,
			Slug:            service.Slugify(req.Name),
			Description:     req.Description,
			LongDescription: req.LongDescription,
			Status:          req.Status,
			Category:        req.Category,
			ImageURL:        imageURL,
		}
		if req.Icon != "" {
			svc.Icon = &req.Icon
		}

		created, err := createService(c.Request().Context(), db, svc)
		if err != nil {
			if imageURL != nil {
				if rmErr := st.Remove(*imageURL); rmErr != nil {
					c.Logger().Errorf("remove orphan upload %s: %v", *imageURL, rmErr)
				}
			}
			c.Logger().Errorf("create service: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to create service"})
		}

		invalidateListCache(c.Request().Context(), rdb)

		return c.JSON(http.StatusCreated, api.CreateServiceResponse{
			Message:   "service created successfully",
			ServiceID: created.ID,
			Slug:      created.Slug,
			ImageURL:  created.ImageURL,
		})
	}
}
