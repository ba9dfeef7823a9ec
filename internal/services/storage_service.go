// internal/services/storage_service.go
package services

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/atelier-lumen/jewelry-backend/internal/config"
)

// StorageService stores catalog images in S3 when AWS credentials are
// configured, otherwise on local disk under cfg.Storage.LocalDir.
type StorageService struct {
	s3Client *s3.S3
	cfg      *config.Config
}

type UploadResult struct {
	URL      string `json:"url"`
	Key      string `json:"key"`
	Size     int64  `json:"size"`
	MimeType string `json:"mime_type"`
}

var allowedImageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

const maxImageSize = 10 << 20 // 10 MB

func NewStorageService(cfg *config.Config) (*StorageService, error) {
	if cfg.AWS.AccessKeyID == "" {
		if err := os.MkdirAll(cfg.Storage.LocalDir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create image directory: %w", err)
		}
		return &StorageService{cfg: cfg}, nil
	}

	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(cfg.AWS.Region),
		Credentials: credentials.NewStaticCredentials(
			cfg.AWS.AccessKeyID,
			cfg.AWS.SecretAccessKey,
			"",
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return &StorageService{
		s3Client: s3.New(sess),
		cfg:      cfg,
	}, nil
}

func (s *StorageService) UploadImage(file multipart.File, header *multipart.FileHeader) (*UploadResult, error) {
	if header.Size > maxImageSize {
		return nil, fmt.Errorf("file size %d bytes exceeds maximum of %d bytes", header.Size, maxImageSize)
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	allowed := false
	for _, allowedExt := range allowedImageExtensions {
		if ext == allowedExt {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, fmt.Errorf("file type %s is not allowed", ext)
	}

	key := fmt.Sprintf("products/%s%s", uuid.New().String(), ext)

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}

	if s.s3Client == nil {
		return s.saveLocal(key, data, header)
	}

	_, err = s.s3Client.PutObject(&s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.AWS.S3Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(header.Header.Get("Content-Type")),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload to S3: %w", err)
	}

	return &UploadResult{
		URL:      s.PublicURL(key),
		Key:      key,
		Size:     header.Size,
		MimeType: header.Header.Get("Content-Type"),
	}, nil
}

func (s *StorageService) saveLocal(key string, data []byte, header *multipart.FileHeader) (*UploadResult, error) {
	path := filepath.Join(s.cfg.Storage.LocalDir, filepath.Base(key))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write image file: %w", err)
	}

	return &UploadResult{
		URL:      "/images/" + filepath.Base(key),
		Key:      key,
		Size:     header.Size,
		MimeType: header.Header.Get("Content-Type"),
	}, nil
}

// DeleteFile is best-effort; failures are logged, never surfaced.
func (s *StorageService) DeleteFile(key string) {
	if s.s3Client == nil {
		path := filepath.Join(s.cfg.Storage.LocalDir, filepath.Base(key))
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			logrus.WithError(err).WithField("key", key).Warn("Failed to remove image file")
		}
		return
	}

	_, err := s.s3Client.DeleteObject(&s3.DeleteObjectInput{
		Bucket: aws.String(s.cfg.AWS.S3Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		logrus.WithError(err).WithField("key", key).Warn("Failed to delete S3 object")
	}
}

func (s *StorageService) PublicURL(key string) string {
	if s.s3Client == nil {
		return "/images/" + filepath.Base(key)
	}
	if s.cfg.AWS.CloudFrontURL != "" {
		return fmt.Sprintf("%s/%s", strings.TrimRight(s.cfg.AWS.CloudFrontURL, "/"), key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.cfg.AWS.S3Bucket, s.cfg.AWS.Region, key)
}
