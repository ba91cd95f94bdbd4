package storage

import (
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strconv"
	"strings"

	"family-foodie/internal/utils"
)

var (
	AllowImage = []string{".jpg", ".jpeg", ".png", ".webp"}
	AllowPdf   = []string{".pdf"}

	ErrExtensionNotAllowed = errors.New("file extension not allowed")
	ErrUnknownBackend      = errors.New("unknown storage backend")
)

type FileStorage interface {
	UploadFile(fileName string, file *multipart.FileHeader, folder string, allowedExt ...string) (string, error)
	UploadBytes(fileName string, data []byte, folder string, contentType string) (string, error)
	DeleteFile(objectKey string) error
	GetPublicLinkKey(objectKey string) string
	GetObjectKeyFromLink(link string) string
}

// NewFileStorage selects the backend from STORAGE_BACKEND ("s3" or "local").
func NewFileStorage() (FileStorage, error) {
	switch utils.GetConfig("STORAGE_BACKEND") {
	case "s3":
		return NewAwsS3(), nil
	case "local", "":
		return NewLocalDisk(utils.GetConfig("STORAGE_LOCAL_DIR"), utils.GetConfig("APP_URL"))
	default:
		return nil, ErrUnknownBackend
	}
}

func extAllowed(ext string, allowedExt []string) bool {
	if len(allowedExt) == 0 {
		return true
	}
	ext = strings.ToLower(ext)
	for _, allowed := range allowedExt {
		if ext == allowed {
			return true
		}
	}
	return false
}

// NextVersion bumps the version segment of a stored filename.
// "beef-stew.jpg" becomes "beef-stew.1.jpg", "beef-stew.3.jpg" becomes
// "beef-stew.4.jpg". A missing or non-numeric segment counts as version 0.
func NextVersion(fileName string) string {
	base, version, ext := splitVersion(fileName)
	return fmt.Sprintf("%s.%d%s", base, version+1, ext)
}

// VersionOf reports the version segment of a stored filename, 0 when absent.
func VersionOf(fileName string) int {
	_, version, _ := splitVersion(fileName)
	return version
}

func splitVersion(fileName string) (string, int, string) {
	ext := filepath.Ext(fileName)
	base := strings.TrimSuffix(fileName, ext)

	if idx := strings.LastIndex(base, "."); idx >= 0 {
		if v, err := strconv.Atoi(base[idx+1:]); err == nil && v >= 0 {
			return base[:idx], v, ext
		}
	}
	return base, 0, ext
}
