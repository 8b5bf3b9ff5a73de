// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"services-admin/internal/cache"
	"services-admin/internal/database"
	"services-admin/internal/handler"
	"services-admin/internal/handler/auth"
	"services-admin/internal/handler/services"
	"services-admin/internal/middleware"
	"services-admin/internal/storage"
	"services-admin/internal/worker"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, st storage.Storage, wp worker.Pool) {
	api := e.Group("/api")

	// 健康檢查
	api.GET("/ping", handler.PingHandler(db))

	// 管理員登入
	api.POST("/auth/login", auth.LoginHandler(db))

	// 公開讀取
	api.GET("/services", services.ListServicesHandler(db, rdb))
	api.GET("/services/:service_id", services.GetServiceHandler(db))
	api.GET("/services/slug/:slug", services.GetServiceBySlugHandler(db))

	// 管理員專屬寫入
	api.POST("/services", services.CreateServiceHandler(db, rdb, st), middleware.RequireAuth)
	api.PUT("/services/:service_id", services.UpdateServiceHandler(db, rdb, st, wp), middleware.RequireAuth)
	api.DELETE("/services/:service_id", services.DeleteServiceHandler(db, rdb, st), middleware.RequireAuth)

	// 上傳圖片靜態路徑
	e.Static(storage.PublicPrefix, st.Dir())
}
