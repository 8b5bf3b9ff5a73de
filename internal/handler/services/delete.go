// File: internal/handler/services/delete.go
package services

import (
	"errors"
	"net/http"
	"strconv"

	"services-admin/internal/api"
	"services-admin/internal/cache"
	"services-admin/internal/database"
	"services-admin/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

// DeleteServiceHandler 刪除服務與其圖片檔
// 先嘗試刪檔再刪資料列，兩步驟非交易性；檔案不存在不視為錯誤
// @Summary     Delete a service by ID
// @Description 刪除服務項目並回收對應圖片檔案
// @Tags        services
// @Produce     json
// @Param       service_id path int true "服務 ID"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /services/{service_id} [delete]
func DeleteServiceHandler(db database.DB, rdb cache.Cache, st storage.Storage) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("service_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid service ID"})
		}

		svc, err := getServiceByID(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "service not found"})
			}
			c.Logger().Errorf("get service %d: %v", id, err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to delete service"})
		}

		if svc.ImageURL != nil {
			if rmErr := st.Remove(*svc.ImageURL); rmErr != nil {
				c.Logger().Errorf("remove upload %s: %v", *svc.ImageURL, rmErr)
			}
		}

		if err := deleteService(c.Request().Context(), db, id); err != nil {
			c.Logger().Errorf("delete service %d: %v", id, err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to delete service"})
		}

		invalidateListCache(c.Request().Context(), rdb)

		return c.JSON(http.StatusOK, api.MessageResponse{Message: "service deleted successfully"})
	}
}
