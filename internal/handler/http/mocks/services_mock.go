package mocks

import (
	"context"
	"time"

	"coursehub/internal/domain/apperr"
	"coursehub/internal/domain/contract"
	"coursehub/internal/usecase"
	usecasecontract "coursehub/internal/usecase/contract"
)

// MockConfig is a fixed-value config provider for handler tests.
type MockConfig struct {
	Production bool
}

var _ usecasecontract.IConfigProvider = (*MockConfig)(nil)

func (m *MockConfig) IsProduction() bool          { return m.Production }
func (m *MockConfig) GetAppBaseURL() string       { return "http://localhost:8080" }
func (m *MockConfig) GetFrontendBaseURL() string  { return "http://localhost:5173" }
func (m *MockConfig) GetCORSOrigins() []string    { return []string{"http://localhost:5173"} }
func (m *MockConfig) GetPasswordResetTokenExpiry() time.Duration {
	return 15 * time.Minute
}

// MockTokenService accepts a single known token and maps it to a fixed user.
type MockTokenService struct {
	ValidToken string
	UserID     string
}

var _ usecase.TokenService = (*MockTokenService)(nil)

func (m *MockTokenService) GenerateSessionToken(userID string) (string, error) {
	return m.ValidToken, nil
}

func (m *MockTokenService) VerifySessionToken(token string) (string, error) {
	if token != m.ValidToken {
		return "", apperr.ErrInvalidToken
	}
	return m.UserID, nil
}

// MockMediaService records uploads and destroys for assertions.
type MockMediaService struct {
	ShouldFailUpload bool
	Destroyed        []string
	DestroyedVideos  []string
}

var _ contract.IMediaService = (*MockMediaService)(nil)

func (m *MockMediaService) Upload(ctx context.Context, localPath string) (*contract.UploadResult, error) {
	if m.ShouldFailUpload {
		return nil, apperr.ErrUpload
	}
	return &contract.UploadResult{
		URL:      "https://media.example.com/assets/mock-asset.mp4",
		PublicID: "mock-asset",
	}, nil
}

func (m *MockMediaService) Destroy(ctx context.Context, publicID string) error {
	m.Destroyed = append(m.Destroyed, publicID)
	return nil
}

func (m *MockMediaService) DestroyVideo(ctx context.Context, publicID string) error {
	m.DestroyedVideos = append(m.DestroyedVideos, publicID)
	return nil
}

func (m *MockMediaService) PublicIDFromURL(rawURL string) string {
	return "mock-asset"
}
