package utils

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"crimedge/config"

	"github.com/google/uuid"
)

// SaveUploadedFile stores an uploaded file under destDir with a uuid name
// and returns the relative path.
func SaveUploadedFile(file *multipart.FileHeader, destDir string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", err
	}

	ext := filepath.Ext(file.Filename)
	newFilename := uuid.NewString() + ext
	filePath := filepath.Join(destDir, newFilename)

	dst, err := os.Create(filePath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return filePath, nil
}

// GetFileURL maps a stored file path to its served URL under /uploads
func GetFileURL(filePath string) string {
	if filePath == "" {
		return ""
	}
	rel, err := filepath.Rel(config.AppConfig.UploadDir, filePath)
	if err != nil {
		rel = filepath.Base(filePath)
	}
	return "/uploads/" + filepath.ToSlash(rel)
}
