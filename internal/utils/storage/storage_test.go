package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextVersion(t *testing.T) {
	assert.Equal(t, "beef-stew.1.jpg", NextVersion("beef-stew.jpg"))
	assert.Equal(t, "beef-stew.4.jpg", NextVersion("beef-stew.3.jpg"))
	assert.Equal(t, "beef-stew.10.pdf", NextVersion("beef-stew.9.pdf"))
}

func TestVersionOf(t *testing.T) {
	assert.Equal(t, 0, VersionOf("beef-stew.jpg"))
	assert.Equal(t, 3, VersionOf("beef-stew.3.jpg"))
	assert.Equal(t, 0, VersionOf("beef.stew.jpg"))
	assert.Equal(t, 12, VersionOf("beef-stew.12.pdf"))
}

func TestLocalDiskUploadBytes(t *testing.T) {
	dir := t.TempDir()
	disk, err := NewLocalDisk(dir, "http://localhost:3000/")
	require.NoError(t, err)

	key, err := disk.UploadBytes("beef-stew.1.pdf", []byte("%PDF-1.4"), "recipe-pdfs", "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, "recipe-pdfs/beef-stew.1.pdf", key)

	data, err := os.ReadFile(filepath.Join(dir, "recipe-pdfs", "beef-stew.1.pdf"))
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4"), data)
}

func TestLocalDiskPublicLink(t *testing.T) {
	dir := t.TempDir()
	disk, err := NewLocalDisk(dir, "http://localhost:3000")
	require.NoError(t, err)

	link := disk.GetPublicLinkKey("recipe-images/beef-stew.1.jpg")
	assert.Equal(t, "http://localhost:3000/uploads/recipe-images/beef-stew.1.jpg", link)

	assert.Equal(t, "recipe-images/beef-stew.1.jpg", disk.GetObjectKeyFromLink(link))
	assert.Equal(t, "", disk.GetObjectKeyFromLink("http://elsewhere/uploads/x.jpg"))
}
