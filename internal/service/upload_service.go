package service

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"sheweds-backend/internal/config"
	"sheweds-backend/pkg/logger"
	"sheweds-backend/pkg/validator"
)

var filenameSanitizer = regexp.MustCompile(`[^a-z0-9]+`)

// UploadService stores media files under the public uploads directory and
// returns the site-relative path to serve them from.
type UploadService struct {
	cfg *config.Config
}

func NewUploadService(cfg *config.Config) (*UploadService, error) {
	if err := os.MkdirAll(cfg.UploadDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &UploadService{cfg: cfg}, nil
}

// SaveImage validates and stores an uploaded image.
func (s *UploadService) SaveImage(file *multipart.FileHeader) (string, error) {
	if file.Size > s.cfg.MaxUploadSize {
		return "", fmt.Errorf("image exceeds maximum size of %d bytes", s.cfg.MaxUploadSize)
	}
	if !validator.ValidateImageExtension(file.Filename) {
		return "", fmt.Errorf("unsupported image type: %s", filepath.Ext(file.Filename))
	}
	if !validator.ValidateImageContentType(file.Header.Get("Content-Type")) {
		return "", fmt.Errorf("unsupported image content type")
	}
	return s.store(file)
}

// SaveVideo validates and stores an uploaded video.
func (s *UploadService) SaveVideo(file *multipart.FileHeader) (string, error) {
	if file.Size > s.cfg.MaxVideoSize {
		return "", fmt.Errorf("video exceeds maximum size of %d bytes", s.cfg.MaxVideoSize)
	}
	if !validator.ValidateVideoExtension(file.Filename) {
		return "", fmt.Errorf("unsupported video type: %s", filepath.Ext(file.Filename))
	}
	if !validator.ValidateVideoContentType(file.Header.Get("Content-Type")) {
		return "", fmt.Errorf("unsupported video content type")
	}
	return s.store(file)
}

// store writes the file under a collision-resistant name derived from the
// original basename, the current time and a random suffix.
func (s *UploadService) store(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	filename := uniqueFilename(file.Filename)
	target := filepath.Join(s.cfg.UploadDir, filename)

	dst, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(target)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	logger.Info("File uploaded", map[string]interface{}{"file": filename, "size": file.Size})
	return "/uploads/" + filename, nil
}

func uniqueFilename(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	base := strings.TrimSuffix(filepath.Base(original), filepath.Ext(original))
	base = strings.Trim(filenameSanitizer.ReplaceAllString(strings.ToLower(base), "-"), "-")
	if base == "" {
		base = "upload"
	}

	suffix := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
	return base + "-" + suffix + ext
}
