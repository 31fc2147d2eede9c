package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/h2non/filetype"

	"github.com/avasquez/portfolio-backend/errs"
)

// ImageStorage keeps uploaded images on local disk and hands back opaque
// reference paths (under /uploads/) for embedding in the aggregate. The
// binary content itself never enters the content store.
type ImageStorage struct {
	rootPath       string
	maxUploadBytes int64
}

func NewImageStorage(rootPath string, maxUploadMB int64) (*ImageStorage, error) {
	if err := os.MkdirAll(rootPath, 0o755); err != nil {
		return nil, fmt.Errorf("storage: failed to create directory %s: %w", rootPath, err)
	}

	return &ImageStorage{
		rootPath:       rootPath,
		maxUploadBytes: maxUploadMB * 1024 * 1024,
	}, nil
}

// Root returns the directory uploads are written to, for static serving.
func (s *ImageStorage) Root() string {
	return s.rootPath
}

// Save stores one image and returns its public reference path. The content is
// sniffed and rejected unless it is an actual image; size is capped at the
// configured limit.
func (s *ImageStorage) Save(ctx context.Context, kind, originalName string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	head := make([]byte, 261)
	n, err := io.ReadFull(r, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", fmt.Errorf("storage: failed to read upload: %w", err)
	}
	head = head[:n]

	if !filetype.IsImage(head) {
		return "", errs.NewInvalidFieldError("image", "file is not a recognized image format")
	}

	ext := strings.ToLower(filepath.Ext(sanitizeFilename(originalName)))
	if ext == "" {
		if t, err := filetype.Match(head); err == nil && t.Extension != "unknown" {
			ext = "." + t.Extension
		}
	}
	fileName := uuid.NewString() + ext

	kindDir := filepath.Join(s.rootPath, kind)
	if err := os.MkdirAll(kindDir, 0o755); err != nil {
		return "", fmt.Errorf("storage: failed to create directory %s: %w", kindDir, err)
	}

	targetPath := filepath.Join(kindDir, fileName)
	tempPath := targetPath + ".tmp"

	f, err := os.Create(tempPath)
	if err != nil {
		return "", fmt.Errorf("storage: failed to create file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(head); err != nil {
		_ = os.Remove(tempPath)
		return "", fmt.Errorf("storage: failed to write file: %w", err)
	}
	limited := io.LimitedReader{R: r, N: s.maxUploadBytes + 1 - int64(len(head))}
	written, err := io.Copy(f, &limited)
	if err != nil {
		_ = os.Remove(tempPath)
		return "", fmt.Errorf("storage: failed to write file: %w", err)
	}

	if written+int64(len(head)) > s.maxUploadBytes {
		_ = os.Remove(tempPath)
		return "", errs.NewMaxBodySizeExceededError(s.maxUploadBytes)
	}

	if err := f.Close(); err != nil {
		return "", fmt.Errorf("storage: failed to close file: %w", err)
	}

	if err := os.Rename(tempPath, targetPath); err != nil {
		return "", fmt.Errorf("storage: failed to rename file: %w", err)
	}

	return path.Join("/uploads", kind, fileName), nil
}

// Delete removes a previously stored image by its reference path. Missing
// files are not an error.
func (s *ImageStorage) Delete(ctx context.Context, refPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rel := strings.TrimPrefix(refPath, "/uploads/")
	target := filepath.Join(s.rootPath, filepath.FromSlash(rel))
	if err := os.Remove(target); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage: failed to delete file: %w", err)
	}
	return nil
}

// sanitizeFilename strips path separators and control characters from a
// client-supplied name.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	return strings.Map(func(r rune) rune {
		if r < 32 || r == '/' || r == '\\' {
			return -1
		}
		return r
	}, name)
}
