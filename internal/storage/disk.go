// File: internal/storage/disk.go
package storage

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// nowFn 供測試固定時間戳
var nowFn = time.Now

// DiskStorage 將圖片存放於本機目錄，對應 PublicPrefix 靜態路徑
type DiskStorage struct {
	dir string
}

// NewDiskStorage 建立儲存目錄（含上層）並回傳 DiskStorage
func NewDiskStorage(dir string) (*DiskStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("NewDiskStorage: %w", err)
	}
	return &DiskStorage{dir: dir}, nil
}

// Save 以時間戳前綴產生唯一檔名，寫入檔案後回傳公開路徑
func (s *DiskStorage) Save(src io.Reader, filename string) (string, error) {
	name := fmt.Sprintf("%d-%s", nowFn().UnixNano(), sanitizeFilename(filename))
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("Save: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("Save: %w", err)
	}
	return PublicPrefix + "/" + name, nil
}

// Remove 依公開路徑刪除檔案；檔案不存在視為成功
func (s *DiskStorage) Remove(publicURL string) error {
	if !strings.HasPrefix(publicURL, PublicPrefix+"/") {
		return fmt.Errorf("Remove: unexpected path %q", publicURL)
	}
	p := filepath.Join(s.dir, path.Base(publicURL))
	if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("Remove: %w", err)
	}
	return nil
}

// Dir 回傳儲存目錄，供靜態路由掛載
func (s *DiskStorage) Dir() string {
	return s.dir
}

// sanitizeFilename 去除路徑成分與空白，避免寫出儲存目錄外
// 反斜線一併視為路徑分隔，客戶端作業系統不可信
func sanitizeFilename(filename string) string {
	base := path.Base(strings.ReplaceAll(filename, `\`, "/"))
	if base == "." || base == ".." || base == "/" || base == "" {
		base = "upload"
	}
	return strings.Join(strings.Fields(base), "-")
}
