package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// SupabaseStorage uploads objects to a Supabase Storage bucket over its REST
// API and returns the public object URL.
type SupabaseStorage struct {
	endpoint   string
	apiKey     string
	bucket     string
	httpClient *http.Client
}

func NewSupabaseStorage(endpoint, apiKey, bucket string) *SupabaseStorage {
	return &SupabaseStorage{
		endpoint:   strings.TrimRight(endpoint, "/"),
		apiKey:     apiKey,
		bucket:     bucket,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *SupabaseStorage) Save(ctx context.Context, objectPath string, contentType string, r io.Reader) (string, error) {
	uploadURL := fmt.Sprintf("%s/storage/v1/object/%s/%s", s.endpoint, s.bucket, objectPath)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uploadURL, r)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload to bucket %s: %w", s.bucket, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("upload to bucket %s: status %d: %s", s.bucket, resp.StatusCode, string(body))
	}

	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.endpoint, s.bucket, objectPath), nil
}
