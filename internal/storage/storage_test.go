package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidType(t *testing.T) {
	tests := []struct {
		mimetype string
		valid    bool
	}{
		{"application/pdf", true},
		{"image/jpeg", true},
		{"image/jpg", true},
		{"image/png", true},
		{"image/gif", true},
		{"image/webp", false},
		{"text/html", false},
		{"application/octet-stream", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.mimetype, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidType(tt.mimetype))
		})
	}
}

func TestIsValidSize(t *testing.T) {
	const max = int64(5 << 20)

	assert.True(t, IsValidSize(1, max))
	assert.True(t, IsValidSize(max, max))
	assert.False(t, IsValidSize(max+1, max))
	assert.False(t, IsValidSize(0, max))
	assert.False(t, IsValidSize(-1, max))
}

func TestLocalStore_SaveAndDelete(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir)
	assert.NoError(t, err)

	path, err := store.Save(context.Background(), []byte("slip bytes"), "slip.pdf")
	assert.NoError(t, err)
	assert.Equal(t, "slip.pdf", path)

	data, err := os.ReadFile(filepath.Join(dir, "slip.pdf"))
	assert.NoError(t, err)
	assert.Equal(t, []byte("slip bytes"), data)

	assert.NoError(t, store.Delete(context.Background(), "slip.pdf"))
	_, err = os.Stat(filepath.Join(dir, "slip.pdf"))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalStore_DeleteMissingFile(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	assert.NoError(t, err)

	assert.NoError(t, store.Delete(context.Background(), "never-uploaded.pdf"))
}

func TestLocalStore_RejectsPathEscape(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	assert.NoError(t, err)

	_, err = store.Save(context.Background(), []byte("x"), "../escape.pdf")
	assert.Error(t, err)

	assert.Error(t, store.Delete(context.Background(), "../../etc/passwd"))
}

func TestNewLocalStore_CreatesBaseDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads", "slips")
	_, err := NewLocalStore(dir)
	assert.NoError(t, err)

	info, err := os.Stat(dir)
	assert.NoError(t, err)
	assert.True(t, info.IsDir())
}
