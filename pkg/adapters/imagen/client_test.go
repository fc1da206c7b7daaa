package imagen_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aretw0/quill/pkg/adapters/imagen"
	"github.com/aretw0/quill/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Generate(t *testing.T) {
	var gotPath, gotQuery, gotKey, gotPrompt string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotKey = r.Header.Get("x-goog-api-key")

		var body struct {
			Instances []struct {
				Prompt string `json:"prompt"`
			} `json:"instances"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		if len(body.Instances) > 0 {
			gotPrompt = body.Instances[0].Prompt
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"predictions":[{"bytesBase64Encoded":"QUJD","mimeType":"image/png"}]}`))
	}))
	defer srv.Close()

	client, err := imagen.New("secret", imagen.WithEndpoint(srv.URL+"/"), imagen.WithModel("test-model"))
	require.NoError(t, err)

	url, err := client.Generate(context.Background(), "a lonely lighthouse")
	require.NoError(t, err)

	assert.Equal(t, "data:image/png;base64,QUJD", url)
	assert.Equal(t, "/models/test-model:predict", gotPath)
	assert.Equal(t, "secret", gotKey)
	assert.Empty(t, gotQuery)
	assert.True(t, strings.HasSuffix(gotPrompt, "a lonely lighthouse"))
}

func TestClient_Errors(t *testing.T) {
	t.Run("Missing Key", func(t *testing.T) {
		_, err := imagen.New("")
		var cfgErr *domain.ConfigurationError
		require.True(t, errors.As(err, &cfgErr))
		assert.Equal(t, "api_key", cfgErr.Setting)
	})

	t.Run("Server Error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "quota exceeded", http.StatusTooManyRequests)
		}))
		defer srv.Close()

		client, err := imagen.New("k", imagen.WithEndpoint(srv.URL))
		require.NoError(t, err)

		_, err = client.Generate(context.Background(), "seed")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "quota exceeded")
	})

	t.Run("Empty Predictions", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"predictions":[]}`))
		}))
		defer srv.Close()

		client, err := imagen.New("k", imagen.WithEndpoint(srv.URL))
		require.NoError(t, err)

		_, err = client.Generate(context.Background(), "seed")
		assert.ErrorIs(t, err, domain.ErrImageUnavailable)
	})

	t.Run("Unreachable Endpoint Hides Key", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		endpoint := srv.URL
		srv.Close()

		client, err := imagen.New("SUPER-SECRET-KEY", imagen.WithEndpoint(endpoint))
		require.NoError(t, err)

		_, err = client.Generate(context.Background(), "seed")
		require.Error(t, err)
		assert.NotContains(t, err.Error(), "SUPER-SECRET-KEY")
	})

	t.Run("Cancelled Context", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))
		defer srv.Close()

		client, err := imagen.New("k", imagen.WithEndpoint(srv.URL))
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err = client.Generate(ctx, "seed")
		assert.Error(t, err)
	})
}
