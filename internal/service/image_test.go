package service

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pageza/forkcast/backend/internal/mocks"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func newImageService(objects ObjectStore) *ImageService {
	svc := NewImageService(objects, "forkcast-media", "https://cdn.example.com/", zap.NewNop())
	svc.now = func() time.Time { return time.UnixMilli(1714564800000) }
	return svc
}

func TestUploadImage(t *testing.T) {
	objects := &mocks.MockObjectStore{}
	svc := newImageService(objects)
	data := pngBytes(t, 4, 3)

	objects.On("PutObject", mock.Anything, mock.MatchedBy(func(in *s3.PutObjectInput) bool {
		body, _ := io.ReadAll(in.Body)
		return *in.Bucket == "forkcast-media" &&
			*in.Key == "forkcast/meals/meal-u1-1714564800000.png" &&
			*in.ContentType == "image/png" &&
			bytes.Equal(body, data)
	})).Return(&s3.PutObjectOutput{}, nil).Once()

	resp, err := svc.Upload(context.Background(), "u1", &ImageUpload{
		Filename: "dinner.PNG", ContentType: "image/png", Size: int64(len(data)), Body: bytes.NewReader(data),
	})
	require.NoError(t, err)
	objects.AssertExpectations(t)

	assert.Equal(t, "https://cdn.example.com/forkcast/meals/meal-u1-1714564800000.png", resp.URL)
	assert.Equal(t, "forkcast/meals/meal-u1-1714564800000", resp.PublicID)
	assert.Equal(t, 4, resp.Width)
	assert.Equal(t, 3, resp.Height)
}

func TestUploadUndecodableImageKeepsExtension(t *testing.T) {
	objects := &mocks.MockObjectStore{}
	svc := newImageService(objects)

	objects.On("PutObject", mock.Anything, mock.MatchedBy(func(in *s3.PutObjectInput) bool {
		return strings.HasSuffix(*in.Key, ".webp")
	})).Return(&s3.PutObjectOutput{}, nil).Once()

	resp, err := svc.Upload(context.Background(), "u1", &ImageUpload{
		Filename: "photo.webp", ContentType: "image/webp", Size: 4, Body: strings.NewReader("RIFF"),
	})
	require.NoError(t, err)
	assert.Zero(t, resp.Width)
	objects.AssertExpectations(t)
}

func TestUploadRejects(t *testing.T) {
	objects := &mocks.MockObjectStore{}
	svc := newImageService(objects)
	ctx := context.Background()

	var verr *ValidationError
	_, err := svc.Upload(ctx, "u1", &ImageUpload{ContentType: "application/pdf", Size: 10, Body: strings.NewReader("%PDF")})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Only image files are allowed", verr.Message)

	_, err = svc.Upload(ctx, "u1", &ImageUpload{ContentType: "image/png", Size: MaxImageSize + 1, Body: strings.NewReader("")})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "File size exceeds 10MB limit", verr.Message)

	big := bytes.NewReader(make([]byte, MaxImageSize+1))
	_, err = svc.Upload(ctx, "u1", &ImageUpload{ContentType: "image/png", Size: 0, Body: big})
	require.ErrorAs(t, err, &verr, "declared size is not trusted")

	objects.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything)
}

func TestUploadS3Failure(t *testing.T) {
	objects := &mocks.MockObjectStore{}
	svc := newImageService(objects)
	objects.On("PutObject", mock.Anything, mock.Anything).Return(nil, errors.New("access denied")).Once()

	_, err := svc.Upload(context.Background(), "u1", &ImageUpload{
		Filename: "a.png", ContentType: "image/png", Size: 3, Body: strings.NewReader("abc"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access denied")
}

func TestDeleteImage(t *testing.T) {
	objects := &mocks.MockObjectStore{}
	svc := newImageService(objects)
	ctx := context.Background()

	objects.On("DeleteObject", mock.Anything, mock.MatchedBy(func(in *s3.DeleteObjectInput) bool {
		return *in.Bucket == "forkcast-media" && *in.Key == "forkcast/meals/meal-u1-1.png"
	})).Return(&s3.DeleteObjectOutput{}, nil).Once()

	require.NoError(t, svc.Delete(ctx, "u1", "https://cdn.example.com/forkcast/meals/meal-u1-1.png"))
	require.NoError(t, svc.Delete(ctx, "u2", "https://cdn.example.com/forkcast/meals/meal-u1-1.png"), "not the uploader")
	require.NoError(t, svc.Delete(ctx, "u1", "https://elsewhere.example/forkcast/meals/meal-u1-1.png"), "foreign host")

	objects.AssertExpectations(t)
	objects.AssertNumberOfCalls(t, "DeleteObject", 1)
}
