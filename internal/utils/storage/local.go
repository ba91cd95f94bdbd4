package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
)

// LocalDisk stores uploads under a base directory and serves them from
// <baseURL>/uploads/<key>. Used for development and single-host deployments.
type LocalDisk struct {
	BaseDir string
	BaseURL string
}

func NewLocalDisk(baseDir, baseURL string) (*LocalDisk, error) {
	if baseDir == "" {
		baseDir = "./uploads"
	}
	if err := os.MkdirAll(baseDir, os.ModePerm); err != nil {
		return nil, err
	}
	return &LocalDisk{
		BaseDir: baseDir,
		BaseURL: strings.TrimSuffix(baseURL, "/"),
	}, nil
}

func (l *LocalDisk) UploadFile(fileName string, file *multipart.FileHeader, folder string, allowedExt ...string) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !extAllowed(ext, allowedExt) {
		return "", ErrExtensionNotAllowed
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	objectKey := fmt.Sprintf("%s/%s", folder, fileName)
	if err := os.MkdirAll(filepath.Join(l.BaseDir, folder), os.ModePerm); err != nil {
		return "", err
	}

	dst, err := os.Create(filepath.Join(l.BaseDir, objectKey))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return objectKey, nil
}

func (l *LocalDisk) UploadBytes(fileName string, data []byte, folder string, contentType string) (string, error) {
	objectKey := fmt.Sprintf("%s/%s", folder, fileName)
	if err := os.MkdirAll(filepath.Join(l.BaseDir, folder), os.ModePerm); err != nil {
		return "", err
	}

	if err := os.WriteFile(filepath.Join(l.BaseDir, objectKey), data, 0o644); err != nil {
		return "", err
	}

	return objectKey, nil
}

func (l *LocalDisk) DeleteFile(objectKey string) error {
	return os.Remove(filepath.Join(l.BaseDir, objectKey))
}

func (l *LocalDisk) GetPublicLinkKey(objectKey string) string {
	return fmt.Sprintf("%s/uploads/%s", l.BaseURL, objectKey)
}

func (l *LocalDisk) GetObjectKeyFromLink(link string) string {
	prefix := fmt.Sprintf("%s/uploads/", l.BaseURL)
	if !strings.HasPrefix(link, prefix) {
		return ""
	}
	return strings.TrimPrefix(link, prefix)
}
