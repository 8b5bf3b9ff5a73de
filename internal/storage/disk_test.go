package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewDiskStorage(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	s, err := NewDiskStorage(dir)
	require.NoError(t, err)
	require.Equal(t, dir, s.Dir())

	info, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestDiskStorageSaveAndRemove(t *testing.T) {
	t.Cleanup(func() { nowFn = time.Now })
	nowFn = func() time.Time { return time.Unix(0, 42) }

	s, err := NewDiskStorage(t.TempDir())
	require.NoError(t, err)

	url, err := s.Save(strings.NewReader("png bytes"), "my logo.png")
	require.NoError(t, err)
	require.Equal(t, PublicPrefix+"/42-my-logo.png", url)

	data, err := os.ReadFile(filepath.Join(s.Dir(), "42-my-logo.png"))
	require.NoError(t, err)
	require.Equal(t, "png bytes", string(data))

	require.NoError(t, s.Remove(url))
	_, err = os.Stat(filepath.Join(s.Dir(), "42-my-logo.png"))
	require.True(t, os.IsNotExist(err))

	// 重複刪除（檔案不存在）視為成功
	require.NoError(t, s.Remove(url))
}

func TestDiskStorageRemoveRejectsForeignPath(t *testing.T) {
	s, err := NewDiskStorage(t.TempDir())
	require.NoError(t, err)
	require.Error(t, s.Remove("/etc/passwd"))
	require.Error(t, s.Remove("relative/path.png"))
}

func TestSanitizeFilename(t *testing.T) {
	require.Equal(t, "logo.png", sanitizeFilename("../../logo.png"))
	require.Equal(t, "a-b.png", sanitizeFilename("a  b.png"))
	require.Equal(t, "upload", sanitizeFilename(""))
	require.Equal(t, "upload", sanitizeFilename(".."))
	require.Equal(t, "evil.png", sanitizeFilename(`..\evil.png`))
}
