package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/alshbh/storefront/internal/application/upload"
	infraconfig "github.com/alshbh/storefront/internal/infrastructure/config"
	"github.com/golang-jwt/jwt/v5"
)

var _ upload.Presigner = (*LocalStorage)(nil)

var (
	// ErrInvalidUploadToken is returned for missing, expired or mismatched upload tokens
	ErrInvalidUploadToken = errors.New("invalid upload token")
	// ErrUploadTooLarge is returned when an upload body exceeds the size limit
	ErrUploadTooLarge = errors.New("upload too large")
)

// uploadClaims binds an upload token to one key and content type
type uploadClaims struct {
	jwt.RegisteredClaims
	ContentType string `json:"ct"`
}

// LocalStorage keeps images on disk for deployments without S3. Presigned
// URLs point back at this server and carry a short-lived signed token.
type LocalStorage struct {
	dir        string
	baseURL    string
	signingKey []byte
	expiry     time.Duration
	now        func() time.Time
}

// NewLocalStorage creates the upload directory and a LocalStorage serving it
// under cfg.PublicBaseURL
func NewLocalStorage(cfg *infraconfig.StorageConfig, signingKey string) (*LocalStorage, error) {
	if signingKey == "" {
		return nil, errors.New("local storage needs a signing key")
	}
	if err := os.MkdirAll(cfg.LocalDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	expiry := cfg.PresignExpiry
	if expiry <= 0 {
		expiry = 15 * time.Minute
	}
	return &LocalStorage{
		dir:        cfg.LocalDir,
		baseURL:    strings.TrimRight(cfg.PublicBaseURL, "/"),
		signingKey: []byte(signingKey),
		expiry:     expiry,
		now:        time.Now,
	}, nil
}

// Dir is the directory served at BasePath
func (s *LocalStorage) Dir() string { return s.dir }

// BasePath is the URL path images are served from
func (s *LocalStorage) BasePath() string {
	if u, err := url.Parse(s.baseURL); err == nil && u.Path != "" {
		return u.Path
	}
	return "/uploads"
}

// PresignPut returns {base}/{key}?token=...
func (s *LocalStorage) PresignPut(_ context.Context, key, contentType string) (string, time.Time, error) {
	if key == "" {
		return "", time.Time{}, errors.New("storage key is required")
	}
	now := s.now()
	expiresAt := now.Add(s.expiry)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, uploadClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   key,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		ContentType: contentType,
	}).SignedString(s.signingKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign upload token: %w", err)
	}
	return s.PublicURL(key) + "?token=" + url.QueryEscape(token), expiresAt, nil
}

// PublicURL is where the stored image is served
func (s *LocalStorage) PublicURL(key string) string {
	return s.baseURL + "/" + key
}

// Verify checks that token was issued for key and contentType and is not expired
func (s *LocalStorage) Verify(token, key, contentType string) error {
	var claims uploadClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return s.signingKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidUploadToken, err)
	}
	if claims.Subject != key || !strings.EqualFold(claims.ContentType, contentType) {
		return ErrInvalidUploadToken
	}
	return nil
}

// Save writes r to key, refusing keys that escape the upload directory.
// At most maxBytes are read; a larger body is an error and nothing is kept.
func (s *LocalStorage) Save(key string, r io.Reader, maxBytes int64) error {
	clean := path.Clean("/" + key)[1:]
	if clean == "" || clean != key {
		return fmt.Errorf("invalid storage key %q", key)
	}
	dst := filepath.Join(s.dir, filepath.FromSlash(clean))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(dst), ".upload-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	n, err := io.Copy(tmp, io.LimitReader(r, maxBytes+1))
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}
	if n > maxBytes {
		return fmt.Errorf("%w: more than %d bytes", ErrUploadTooLarge, maxBytes)
	}
	return os.Rename(tmp.Name(), dst)
}
