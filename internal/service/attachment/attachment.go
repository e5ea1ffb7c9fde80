// Package attachment stores chat file attachments in S3-compatible
// object storage and hands out short-lived presigned download URLs.
package attachment

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	s3pkg "github.com/bystrodel/backend/pkg/s3"
)

// maxUploadBytes caps a single attachment at 10 MiB, matching the
// upstream proxy limit.
const maxUploadBytes = 10 << 20

var (
	ErrTooLarge      = errors.New("attachment exceeds the size limit")
	ErrInvalidThread = errors.New("thread type must be order or ticket")
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type UploadResult struct {
	Key      string
	FileName string
	Size     int64
	MimeType string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Upload(ctx context.Context, threadType string, threadID uuid.UUID, fh *multipart.FileHeader) (*UploadResult, error)
	DownloadURL(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type attachmentService struct {
	s3 *s3pkg.Client
}

func New(s3Client *s3pkg.Client) Service {
	return &attachmentService{s3: s3Client}
}

func (s *attachmentService) Upload(ctx context.Context, threadType string, threadID uuid.UUID, fh *multipart.FileHeader) (*UploadResult, error) {
	if threadType != "order" && threadType != "ticket" {
		return nil, ErrInvalidThread
	}
	if fh.Size > maxUploadBytes {
		return nil, ErrTooLarge
	}

	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	key := fmt.Sprintf("attachments/%s/%s/%s%s", threadType, threadID, uuid.New(), ext)

	mime := fh.Header.Get("Content-Type")
	if mime == "" {
		mime = "application/octet-stream"
	}

	if err := s.s3.Upload(ctx, key, mime, src, fh.Size); err != nil {
		return nil, fmt.Errorf("s3 upload: %w", err)
	}

	return &UploadResult{
		Key:      key,
		FileName: fh.Filename,
		Size:     fh.Size,
		MimeType: mime,
	}, nil
}

func (s *attachmentService) DownloadURL(ctx context.Context, key string) (string, error) {
	url, err := s.s3.PresignDownload(ctx, key)
	if err != nil {
		return "", fmt.Errorf("presign: %w", err)
	}
	return url, nil
}

func (s *attachmentService) Delete(ctx context.Context, key string) error {
	return s.s3.Delete(ctx, key)
}
