package external_services

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"coursehub/internal/domain/apperr"
	"coursehub/internal/domain/contract"
)

// CloudinaryService stores media assets on Cloudinary. Resource type is
// left to auto-detection on upload so the same path serves thumbnails,
// profile photos and lecture videos.
type CloudinaryService struct {
	client *cloudinary.Cloudinary
}

func NewCloudinaryService(cloudinaryURL string) (*CloudinaryService, error) {
	client, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary client: %w", err)
	}
	return &CloudinaryService{client: client}, nil
}

var _ contract.IMediaService = (*CloudinaryService)(nil)

func (cs *CloudinaryService) Upload(ctx context.Context, localPath string) (*contract.UploadResult, error) {
	resp, err := cs.client.Upload.Upload(ctx, localPath, uploader.UploadParams{
		ResourceType: "auto",
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrUpload, err)
	}
	return &contract.UploadResult{
		URL:      resp.SecureURL,
		PublicID: resp.PublicID,
	}, nil
}

func (cs *CloudinaryService) Destroy(ctx context.Context, publicID string) error {
	return cs.destroy(ctx, publicID, "image")
}

func (cs *CloudinaryService) DestroyVideo(ctx context.Context, publicID string) error {
	return cs.destroy(ctx, publicID, "video")
}

func (cs *CloudinaryService) destroy(ctx context.Context, publicID, resourceType string) error {
	_, err := cs.client.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: resourceType,
	})
	if err != nil {
		return fmt.Errorf("failed to destroy %s asset %q: %w", resourceType, publicID, err)
	}
	return nil
}

// PublicIDFromURL extracts the asset identifier from a delivery URL: the
// last path segment minus its extension.
func (cs *CloudinaryService) PublicIDFromURL(rawURL string) string {
	base := path.Base(rawURL)
	return strings.TrimSuffix(base, path.Ext(base))
}
