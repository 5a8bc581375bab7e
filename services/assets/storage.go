// Package assets talks to the external blob store that hosts product images.
// Uploads and deletes are independent of any database write and may be
// retried on their own.
package assets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Storage is the collaborator contract the controllers depend on.
type Storage interface {
	// Upload stores the blob under the logical folder and returns a
	// durable public URL.
	Upload(ctx context.Context, data []byte, folder, filename string) (string, error)

	// Delete removes the object identified by a previously returned URL.
	Delete(ctx context.Context, assetURL string) error
}

// HTTPStorage is a thin client for an S3-style HTTP blob store.
type HTTPStorage struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewHTTPStorage(baseURL, apiKey string) *HTTPStorage {
	return &HTTPStorage{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *HTTPStorage) Upload(ctx context.Context, data []byte, folder, filename string) (string, error) {
	objectName := ObjectName(folder, filename)

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, s.baseURL+"/"+objectName, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("uploading asset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("asset store returned %d", resp.StatusCode)
	}

	var body struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.URL == "" {
		// stores without a JSON response serve objects at the PUT path
		return s.baseURL + "/" + objectName, nil
	}
	return body.URL, nil
}

func (s *HTTPStorage) Delete(ctx context.Context, assetURL string) error {
	id, err := PublicID(assetURL)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, s.baseURL+"/"+id, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("deleting asset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusNotFound {
		return fmt.Errorf("asset store returned %d", resp.StatusCode)
	}
	return nil
}

// ObjectName builds the stored object path: folder, a random id and the
// original extension.
func ObjectName(folder, filename string) string {
	ext := path.Ext(filename)
	return folder + "/" + uuid.NewString() + ext
}

// PublicID derives the store-side identifier from an asset URL: the last two
// path segments (folder/name) without the extension.
func PublicID(assetURL string) (string, error) {
	u, err := url.Parse(assetURL)
	if err != nil {
		return "", fmt.Errorf("bad asset url %q: %w", assetURL, err)
	}
	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(segments) < 2 || segments[len(segments)-1] == "" {
		return "", fmt.Errorf("bad asset url %q: no object path", assetURL)
	}
	last := segments[len(segments)-1]
	last = strings.TrimSuffix(last, path.Ext(last))
	return segments[len(segments)-2] + "/" + last, nil
}
