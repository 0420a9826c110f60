package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"

	"github.com/pageza/forkcast/backend/internal/types"
)

const (
	// MaxImageSize is the largest accepted upload.
	MaxImageSize = 10 * 1024 * 1024

	imageFolder = "forkcast/meals"
)

// ObjectStore is the subset of the S3 client used for meal images.
type ObjectStore interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// ImageUpload is an uploaded file as received from the client.
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// ImageService stores meal photos in S3.
type ImageService struct {
	objects ObjectStore
	bucket  string
	baseURL string
	log     *zap.Logger
	now     func() time.Time
}

func NewImageService(objects ObjectStore, bucket, publicBaseURL string, log *zap.Logger) *ImageService {
	return &ImageService{
		objects: objects,
		bucket:  bucket,
		baseURL: strings.TrimRight(publicBaseURL, "/"),
		log:     log.With(zap.String("component", "images")),
		now:     time.Now,
	}
}

// Upload validates an image and stores it under the user's name.
func (s *ImageService) Upload(ctx context.Context, userID string, file *ImageUpload) (*types.UploadResponse, error) {
	if file.Size > MaxImageSize {
		return nil, invalid("file", "File size exceeds 10MB limit")
	}
	if !strings.Contains(file.ContentType, "image") {
		return nil, invalid("file", "Only image files are allowed")
	}

	data, err := io.ReadAll(io.LimitReader(file.Body, MaxImageSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if len(data) > MaxImageSize {
		return nil, invalid("file", "File size exceeds 10MB limit")
	}

	// Formats without a registered decoder are stored with unknown dimensions.
	var width, height int
	format := ""
	if cfg, f, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
		width, height, format = cfg.Width, cfg.Height, f
	}

	publicID := fmt.Sprintf("%s/meal-%s-%d", imageFolder, userID, s.now().UnixMilli())
	key := publicID + extension(file.Filename, format)

	_, err = s.objects.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(file.ContentType),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload to S3: %w", err)
	}

	url := s.baseURL + "/" + key
	s.log.Info("image uploaded", zap.String("user_id", userID), zap.String("key", key), zap.Int("bytes", len(data)))
	return &types.UploadResponse{URL: url, PublicID: publicID, Width: width, Height: height}, nil
}

// Delete removes an image ownerID uploaded. URLs outside the bucket or
// uploaded by someone else are ignored.
func (s *ImageService) Delete(ctx context.Context, ownerID, url string) error {
	key, ok := s.keyFor(url)
	if !ok || !strings.HasPrefix(key, fmt.Sprintf("%s/meal-%s-", imageFolder, ownerID)) {
		return nil
	}

	_, err := s.objects.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete from S3: %w", err)
	}
	s.log.Info("image deleted", zap.String("key", key))
	return nil
}

func (s *ImageService) keyFor(url string) (string, bool) {
	prefix := s.baseURL + "/"
	if s.baseURL == "" || !strings.HasPrefix(url, prefix) {
		return "", false
	}
	return strings.TrimPrefix(url, prefix), true
}

func extension(filename, format string) string {
	switch format {
	case "jpeg":
		return ".jpg"
	case "png", "gif":
		return "." + format
	}
	if ext := strings.ToLower(path.Ext(filename)); ext != "" {
		return ext
	}
	return ".img"
}
