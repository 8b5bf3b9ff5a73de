// File: internal/service/authentication.go
package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"services-admin/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultAccessTokenTTL 令牌預設有效期限
const DefaultAccessTokenTTL = 24 * time.Hour

// CustomClaims 定義 JWT 負載內容
type CustomClaims struct {
	ID       int    `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// AuthenticateAdmin 根據管理員結構和明文密碼驗證，成功回傳管理員
// 查無帳號與密碼錯誤對外不可區分，一律回傳相同錯誤
func AuthenticateAdmin(ctx context.Context, admin model.Admin, password string) (*model.Admin, error) {
	if err := ComparePassword(admin.PasswordHash, password); err != nil {
		return nil, errors.New("invalid email or password")
	}
	return &admin, nil
}

// AccessTokenTTL 讀取 JWT_EXPIRES_IN（Go duration 格式），未設定則回傳預設一天
func AccessTokenTTL() time.Duration {
	if v := os.Getenv("JWT_EXPIRES_IN"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return DefaultAccessTokenTTL
}

// IssueAccessToken 依據管理員資訊與 TTL 產生 JWT
func IssueAccessToken(admin model.Admin, ttl time.Duration) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", fmt.Errorf("JWT_SECRET not set")
	}

	now := time.Now()
	claims := CustomClaims{
		ID:       admin.ID,
		Email:    admin.Email,
		Username: admin.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(admin.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifyAccessToken 驗證並解析 JWT 令牌
func VerifyAccessToken(tokenString string) (*CustomClaims, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET not set")
	}

	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
