package storage

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// 本地磁盘对象存储：文件写入 uploads/{category}/，数据库只保存相对 URL。

var (
	baseDir string
	baseURL string
)

var ErrInvalidObjectURL = errors.New("invalid object url")

func Init(dir string, publicBase string) error {
	if dir == "" {
		return errors.New("storage dir is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create upload dir: %w", err)
	}
	baseDir = dir
	baseURL = strings.TrimSuffix(publicBase, "/")
	if baseURL == "" {
		baseURL = "/uploads"
	}
	return nil
}

// SaveFile 以 uuid 文件名落盘，返回入库用的相对 URL
func SaveFile(category string, data []byte, ext string) (string, error) {
	if baseDir == "" {
		return "", errors.New("storage is not initialized")
	}

	dir := filepath.Join(baseDir, category)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create category dir: %w", err)
	}

	name := uuid.NewString() + ext
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return baseURL + "/" + category + "/" + name, nil
}

// DeleteFile 按相对 URL 删除磁盘文件
func DeleteFile(objectURL string) error {
	if baseDir == "" {
		return errors.New("storage is not initialized")
	}

	rel := strings.TrimPrefix(objectURL, baseURL+"/")
	if rel == objectURL {
		return ErrInvalidObjectURL
	}

	rel = path.Clean(rel)
	if rel == "." || strings.HasPrefix(rel, "..") || path.IsAbs(rel) {
		return ErrInvalidObjectURL
	}

	return os.Remove(filepath.Join(baseDir, filepath.FromSlash(rel)))
}

// PublicURL 相对 URL 即公共访问路径
func PublicURL(objectURL string) string {
	return objectURL
}
