package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Charugundlavipul/medilink/internal/config"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"google.golang.org/api/option"
)

// SecretAccessor reads the latest version of a secret
type SecretAccessor interface {
	AccessSecret(ctx context.Context, secretID string) (string, error)
}

type SecretManagerService interface {
	SecretAccessor
	Close() error
}

type secretManagerService struct {
	client    *secretmanager.Client
	projectID string
}

func NewSecretManagerService(ctx context.Context, cfg *config.Config) (SecretManagerService, error) {
	if cfg.GCPProjectID == "" {
		return nil, fmt.Errorf("GCP_PROJECT_ID is required to read secrets from Secret Manager")
	}

	var opts []option.ClientOption
	if cfg.GoogleCredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.GoogleCredentialsFile))
	}

	client, err := secretmanager.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Secret Manager client: %w", err)
	}

	return &secretManagerService{
		client:    client,
		projectID: cfg.GCPProjectID,
	}, nil
}

// AccessSecret accepts either a bare secret id or a full
// projects/.../secrets/... resource name.
func (s *secretManagerService) AccessSecret(ctx context.Context, secretID string) (string, error) {
	resourceName := secretResourceName(s.projectID, secretID)

	result, err := s.client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{
		Name: resourceName,
	})
	if err != nil {
		return "", fmt.Errorf("failed to access secret version: %w", err)
	}

	return string(result.GetPayload().GetData()), nil
}

func (s *secretManagerService) Close() error {
	return s.client.Close()
}

func secretResourceName(projectID, secretID string) string {
	if strings.HasPrefix(secretID, "projects/") {
		if strings.Contains(secretID, "/versions/") {
			return secretID
		}
		return secretID + "/versions/latest"
	}
	return fmt.Sprintf("projects/%s/secrets/%s/versions/latest", projectID, secretID)
}

// ResolveGeminiAPIKey returns the configured key, or reads it from Secret
// Manager when only a secret id is configured. An empty result is not an
// error: the summary endpoint reports the missing key per request.
func ResolveGeminiAPIKey(ctx context.Context, cfg *config.Config, secrets SecretAccessor) (string, error) {
	if key := strings.TrimSpace(cfg.GeminiAPIKey); key != "" {
		return key, nil
	}
	if cfg.GeminiAPIKeySecret == "" {
		return "", nil
	}
	if secrets == nil {
		return "", fmt.Errorf("secret %q configured but no Secret Manager client available", cfg.GeminiAPIKeySecret)
	}

	key, err := secrets.AccessSecret(ctx, cfg.GeminiAPIKeySecret)
	if err != nil {
		return "", fmt.Errorf("failed to resolve Gemini API key: %w", err)
	}
	return strings.TrimSpace(key), nil
}
