package assets

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicID(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{"https://cdn.example.com/products/abc123.jpg", "products/abc123"},
		{"https://cdn.example.com/store/products/abc123.png", "products/abc123"},
		{"https://cdn.example.com/pages/banner.webp", "pages/banner"},
		{"https://cdn.example.com/products/no-extension", "products/no-extension"},
	}
	for _, tc := range cases {
		got, err := PublicID(tc.url)
		require.NoError(t, err, tc.url)
		assert.Equal(t, tc.want, got, tc.url)
	}
}

func TestPublicIDRejectsBareHost(t *testing.T) {
	_, err := PublicID("https://cdn.example.com/")
	assert.Error(t, err)
}

func TestObjectNameKeepsExtension(t *testing.T) {
	name := ObjectName("products", "photo.jpg")
	assert.True(t, strings.HasPrefix(name, "products/"))
	assert.True(t, strings.HasSuffix(name, ".jpg"))
	assert.NotEqual(t, name, ObjectName("products", "photo.jpg"), "object names are randomized")
}

func TestUploadAndDelete(t *testing.T) {
	var gotAuth string
	var deleted string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		switch r.Method {
		case http.MethodPut:
			body, _ := io.ReadAll(r.Body)
			if string(body) != "image-bytes" {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			w.WriteHeader(http.StatusCreated)
		case http.MethodDelete:
			deleted = r.URL.Path
			w.WriteHeader(http.StatusNoContent)
		}
	}))
	defer srv.Close()

	store := NewHTTPStorage(srv.URL, "secret")

	url, err := store.Upload(context.Background(), []byte("image-bytes"), "products", "pump.jpg")
	require.NoError(t, err)
	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Contains(t, url, "/products/")

	require.NoError(t, store.Delete(context.Background(), url))
	assert.True(t, strings.HasPrefix(deleted, "/products/"), "delete uses the derived public id, got %s", deleted)
}
