package storage

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/alshbh/storefront/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func s3Config() *config.StorageConfig {
	return &config.StorageConfig{
		Driver:          "s3",
		Bucket:          "alshbh-images",
		Region:          "eu-central-1",
		Endpoint:        "http://localhost:9000",
		AccessKeyID:     "minio",
		SecretAccessKey: "minio-secret",
		UsePathStyle:    true,
		PresignExpiry:   10 * time.Minute,
	}
}

func TestNewS3Storage_Validation(t *testing.T) {
	ctx := context.Background()

	_, err := NewS3Storage(ctx, nil, zap.NewNop())
	assert.ErrorContains(t, err, "configuration is required")

	cfg := s3Config()
	cfg.Bucket = ""
	_, err = NewS3Storage(ctx, cfg, zap.NewNop())
	assert.ErrorContains(t, err, "bucket is required")

	cfg = s3Config()
	cfg.SecretAccessKey = ""
	_, err = NewS3Storage(ctx, cfg, zap.NewNop())
	assert.ErrorContains(t, err, "must be set together")

	cfg = s3Config()
	cfg.Endpoint = "not a url"
	_, err = NewS3Storage(ctx, cfg, zap.NewNop())
	assert.ErrorContains(t, err, "invalid storage endpoint")
}

func TestS3Storage_PresignPut(t *testing.T) {
	s, err := NewS3Storage(context.Background(), s3Config(), zap.NewNop())
	require.NoError(t, err)

	before := time.Now()
	raw, expiresAt, err := s.PresignPut(context.Background(), "product/2026/10/abc.webp", "image/webp")
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "localhost:9000", u.Host)
	assert.Equal(t, "/alshbh-images/product/2026/10/abc.webp", u.Path)
	assert.Equal(t, "600", u.Query().Get("X-Amz-Expires"))
	assert.Contains(t, u.Query().Get("X-Amz-SignedHeaders"), "content-type")
	assert.WithinDuration(t, before.Add(10*time.Minute), expiresAt, 5*time.Second)

	_, _, err = s.PresignPut(context.Background(), "", "image/webp")
	assert.Error(t, err)
}

func TestS3Storage_PublicURL(t *testing.T) {
	ctx := context.Background()

	s, err := NewS3Storage(ctx, s3Config(), zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000/alshbh-images/ads/1.png", s.PublicURL("ads/1.png"))

	cfg := s3Config()
	cfg.PublicBaseURL = "https://cdn.alshbh.example/"
	s, err = NewS3Storage(ctx, cfg, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.alshbh.example/ads/1.png", s.PublicURL("ads/1.png"))
}

func TestDefaultPublicBase(t *testing.T) {
	assert.Equal(t, "https://b.s3.eu-west-1.amazonaws.com", defaultPublicBase("", "b", "eu-west-1", false))
	assert.Equal(t, "https://b.r2.example.com", defaultPublicBase("https://r2.example.com", "b", "auto", false))
	assert.Equal(t, "http://minio:9000/b", defaultPublicBase("http://minio:9000/", "b", "us-east-1", true))
}
