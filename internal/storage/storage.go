// File: internal/storage/storage.go
package storage

import "io"

// PublicPrefix 資料庫中 image_url 一律以此公開路徑開頭
const PublicPrefix = "/uploads/services"

// Storage 定義圖片檔案存取介面
// Save 回傳儲存後的公開路徑；Remove 對不存在的檔案視為成功
// 測試時可用 FakeStorage 替換
type Storage interface {
	Save(src io.Reader, filename string) (string, error)
	Remove(publicURL string) error
	Dir() string
}

type FakeStorage struct {
	SaveFn   func(src io.Reader, filename string) (string, error)
	RemoveFn func(publicURL string) error
	DirFn    func() string
}

func (f *FakeStorage) Save(src io.Reader, filename string) (string, error) {
	if f.SaveFn != nil {
		return f.SaveFn(src, filename)
	}
	panic("unexpected Save")
}

func (f *FakeStorage) Remove(publicURL string) error {
	if f.RemoveFn != nil {
		return f.RemoveFn(publicURL)
	}
	panic("unexpected Remove")
}

func (f *FakeStorage) Dir() string {
	if f.DirFn != nil {
		return f.DirFn()
	}
	return ""
}
