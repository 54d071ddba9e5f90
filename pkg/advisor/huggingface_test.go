package advisor_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aretw0/fundflow/pkg/advisor"
	"github.com/aretw0/fundflow/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type hfCapture struct {
	method string
	path   string
	auth   string
	body   map[string]any
}

func hfServer(t *testing.T, status int, body string) (*httptest.Server, *hfCapture) {
	t.Helper()
	captured := &hfCapture{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.method = r.Method
		captured.path = r.URL.Path
		captured.auth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&captured.body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, captured
}

func generate(t *testing.T, srv *httptest.Server, prompt string, key string) (string, error) {
	t.Helper()
	gen := advisor.NewHuggingFace(advisor.HuggingFaceConfig{BaseURL: srv.URL, APIKey: key})
	return gen.Generate(context.Background(), advisor.Request{
		Model:  "test/model",
		Prompt: prompt,
		Params: advisor.DefaultParams,
	})
}

func TestHuggingFace_Payloads(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"list", `[{"generated_text":"Save more each month."}]`, "Save more each month."},
		{"object", `{"generated_text":"Cut costs."}`, "Cut costs."},
		{"string", `"Track progress."`, "Track progress."},
		{"prompt echo", `[{"generated_text":"Q: plan? Build a reserve."}]`, "Build a reserve."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := hfServer(t, http.StatusOK, tt.body)
			got, err := generate(t, srv, "Q: plan?", "")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHuggingFace_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		empty  bool
	}{
		{"model loading", http.StatusServiceUnavailable, `{"error":"Model is currently loading"}`, false},
		{"error object", http.StatusOK, `{"error":"rate limited"}`, false},
		{"empty list", http.StatusOK, `[]`, true},
		{"only echo", http.StatusOK, `[{"generated_text":"Q: plan?"}]`, true},
		{"no body", http.StatusOK, ``, true},
		{"number", http.StatusOK, `42`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := hfServer(t, tt.status, tt.body)
			_, err := generate(t, srv, "Q: plan?", "")
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrTransport)

			var te *domain.TransportError
			require.True(t, errors.As(err, &te))
			assert.Equal(t, "huggingface", te.Provider)
			assert.Equal(t, tt.status, te.Status)
			if tt.empty {
				assert.ErrorIs(t, err, advisor.ErrEmptyReply)
			}
		})
	}
}

func TestHuggingFace_RequestShape(t *testing.T) {
	srv, captured := hfServer(t, http.StatusOK, `"ok"`)
	_, err := generate(t, srv, "hello", "secret")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, captured.method)
	assert.Equal(t, "/test/model", captured.path)
	assert.Equal(t, "Bearer secret", captured.auth)
	assert.Equal(t, "hello", captured.body["inputs"])

	params, ok := captured.body["parameters"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 500, params["max_length"])
	assert.Equal(t, 0.7, params["temperature"])
	assert.Equal(t, 0.9, params["top_p"])
	assert.Equal(t, true, params["do_sample"])
}

func TestHuggingFace_Anonymous(t *testing.T) {
	srv, captured := hfServer(t, http.StatusOK, `"ok"`)
	_, err := generate(t, srv, "hello", "")
	require.NoError(t, err)
	assert.Empty(t, captured.auth)
}
