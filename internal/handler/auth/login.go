// File: internal/handler/auth/login.go
package auth

import (
	"errors"
	"net/http"

	"services-admin/internal/api"
	"services-admin/internal/database"
	"services-admin/internal/service"
	"services-admin/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

var (
	getAdminByEmail   = store.GetAdminByEmail
	authenticateAdmin = service.AuthenticateAdmin
	issueAccessToken  = service.IssueAccessToken
)

// LoginHandler 使用 Email/Password 驗證並回傳 JWT
// 查無帳號與密碼錯誤回傳相同訊息，避免洩漏失敗原因
// @Summary     管理員登入
// @Description 使用 Email 與 Password 進行驗證，回傳存取令牌與管理員摘要
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.LoginRequest true "登入資訊"
// @Success     200 {object} api.LoginResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/login [post]
func LoginHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "email and password required"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "email and password required"})
		}

		admin, err := getAdminByEmail(c.Request().Context(), db, req.Email)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid email or password"})
			}
			// 儲存層本身故障不是憑證問題，不可偽裝成憑證錯誤
			c.Logger().Errorf("get admin by email: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "server error"})
		}

		authAdmin, err := authenticateAdmin(c.Request().Context(), *admin, req.Password)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid email or password"})
		}

		token, err := issueAccessToken(*authAdmin, service.AccessTokenTTL())
		if err != nil {
			c.Logger().Errorf("issue token: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "server error"})
		}

		return c.JSON(http.StatusOK, api.LoginResponse{
			Message: "login successful",
			Token:   token,
			Admin: api.AdminResponse{
				ID:       authAdmin.ID,
				Username: authAdmin.Username,
				Email:    authAdmin.Email,
			},
		})
	}
}
