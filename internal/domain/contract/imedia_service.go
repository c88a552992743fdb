package contract

import (
	"context"
)

// UploadResult is what the media store hands back for a stored asset. The
// public ID is the handle used for later deletion.
type UploadResult struct {
	URL      string
	PublicID string
}

// IMediaService delegates binary assets to the external object store.
type IMediaService interface {
	// Upload stores the file at localPath and returns its durable public URL
	// and asset identifier.
	Upload(ctx context.Context, localPath string) (*UploadResult, error)
	// Destroy removes a previously uploaded asset. Callers treat failures as
	// best-effort: log and move on, never fail the enclosing request.
	Destroy(ctx context.Context, publicID string) error
	// DestroyVideo removes a previously uploaded video asset.
	DestroyVideo(ctx context.Context, publicID string) error
	// PublicIDFromURL derives the asset identifier from a stored asset URL:
	// the last path segment with its extension stripped.
	PublicIDFromURL(rawURL string) string
}
