// Package upload hands out presigned URLs for admin image uploads.
package upload

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/alshbh/storefront/internal/domain/shared"
	"github.com/google/uuid"
)

// Purpose selects the key prefix of an upload
type Purpose string

const (
	PurposeProduct       Purpose = "product"
	PurposeAdvertisement Purpose = "advertisement"
)

// contentTypes maps accepted image types to the extension stored in the key
var contentTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// Presigner issues direct-to-storage upload URLs
type Presigner interface {
	PresignPut(ctx context.Context, key, contentType string) (url string, expiresAt time.Time, err error)
	// PublicURL is where the object is served once uploaded
	PublicURL(key string) string
}

// PresignRequest asks for an upload slot
type PresignRequest struct {
	Purpose     Purpose `json:"purpose" binding:"required,oneof=product advertisement"`
	Filename    string  `json:"filename" binding:"required,max=255"`
	ContentType string  `json:"content_type" binding:"required"`
}

// PresignResponse tells the client where to PUT the file and the URL to
// store on the product or banner afterwards
type PresignResponse struct {
	UploadURL   string    `json:"upload_url"`
	PublicURL   string    `json:"public_url"`
	Key         string    `json:"key"`
	ContentType string    `json:"content_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Service validates upload requests and names the objects
type Service struct {
	presigner Presigner
	now       func() time.Time
}

// NewService creates a new upload Service
func NewService(presigner Presigner) *Service {
	return &Service{presigner: presigner, now: time.Now}
}

// Presign returns a presigned PUT for a new object keyed
// {purpose}/{yyyy}/{mm}/{uuid}{ext}
func (s *Service) Presign(ctx context.Context, req PresignRequest) (*PresignResponse, error) {
	if req.Purpose != PurposeProduct && req.Purpose != PurposeAdvertisement {
		return nil, shared.NewDomainError("INVALID_PURPOSE", "Purpose must be product or advertisement")
	}
	if strings.TrimSpace(req.Filename) == "" {
		return nil, shared.NewDomainError("INVALID_FILENAME", "Filename is required")
	}
	contentType := strings.ToLower(strings.TrimSpace(req.ContentType))
	ext, ok := contentTypes[contentType]
	if !ok {
		return nil, shared.NewDomainError("UNSUPPORTED_CONTENT_TYPE",
			fmt.Sprintf("Content type %q is not an accepted image type", req.ContentType))
	}

	now := s.now().UTC()
	key := path.Join(string(req.Purpose), now.Format("2006"), now.Format("01"), uuid.NewString()+ext)

	url, expiresAt, err := s.presigner.PresignPut(ctx, key, contentType)
	if err != nil {
		return nil, shared.NewDomainError("PRESIGN_FAILED", "Could not prepare the upload").WithCause(err)
	}
	return &PresignResponse{
		UploadURL:   url,
		PublicURL:   s.presigner.PublicURL(key),
		Key:         key,
		ContentType: contentType,
		ExpiresAt:   expiresAt,
	}, nil
}
