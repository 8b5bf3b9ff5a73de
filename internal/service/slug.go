// File: internal/service/slug.go
package service

import (
	"strings"
	"unicode"
)

// Slugify 由顯示名稱推導 URL-safe 識別字串
// 規則：轉小寫，連續空白以單一連字號取代；結果具冪等性
func Slugify(name string) string {
	lower := strings.ToLower(strings.TrimSpace(name))
	var b strings.Builder
	inSpace := false
	for _, r := range lower {
		if unicode.IsSpace(r) {
			inSpace = true
			continue
		}
		if inSpace {
			b.WriteByte('-')
			inSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
