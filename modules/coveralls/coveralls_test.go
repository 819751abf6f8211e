package coveralls

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/matrixci/internal/collab"
	"github.com/vk/matrixci/internal/environ"
)

func TestSubmitPostsJobPayload(t *testing.T) {
	var got payload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	r := New(srv.URL)
	env := environ.New(map[string]string{EnvRepoToken: "tok-123"})
	err := r.Submit(context.Background(), collab.Report{JobID: "job-1", JobName: "python=3.5"}, env)

	require.NoError(t, err)
	assert.Equal(t, "matrixci", got.ServiceName)
	assert.Equal(t, "job-1", got.ServiceJobID)
	assert.Equal(t, "tok-123", got.RepoToken)
}

func TestSubmitReportsHTTPErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	r := New(srv.URL)
	err := r.Submit(context.Background(), collab.Report{JobID: "job-2", JobName: "python=3.6"}, environ.New(nil))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "python=3.6")
}

func TestSubmitHonorsEndpointOverride(t *testing.T) {
	hit := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit = true
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	r := New("http://127.0.0.1:1/unreachable")
	env := environ.New(map[string]string{EnvEndpoint: srv.URL})
	err := r.Submit(context.Background(), collab.Report{JobID: "job-3", JobName: "python=3.7"}, env)

	require.NoError(t, err)
	assert.True(t, hit)
}

func TestNewDefaultsEndpoint(t *testing.T) {
	r := New("")
	assert.Equal(t, DefaultEndpoint, r.endpoint)
}
