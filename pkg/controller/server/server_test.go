package server_test

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/batchtoken/pkg/controller/server"
	"github.com/secmon-lab/batchtoken/pkg/domain/mock"
	"github.com/secmon-lab/batchtoken/pkg/domain/model"
	"github.com/secmon-lab/batchtoken/pkg/domain/types"
)

func signBody(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

func TestRouterSmokeTests(t *testing.T) {
	t.Run("GET /health returns 200", func(t *testing.T) {
		srv := server.New(&mock.UseCaseMock{})

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()

		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, rec.Body.String()).Equal("ok")
	})

	t.Run("unknown path returns 404", func(t *testing.T) {
		srv := server.New(&mock.UseCaseMock{})

		req := httptest.NewRequest(http.MethodGet, "/nothing", nil)
		rec := httptest.NewRecorder()

		srv.Mux().ServeHTTP(rec, req)
		gt.V(t, rec.Code).Equal(http.StatusNotFound)
	})
}

func TestTokenAPI(t *testing.T) {
	baseTime := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)

	t.Run("returns token for known repository", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{
			TokenForRepositoryFunc: func(ctx context.Context, fullName types.RepoFullName) (*model.ScopedToken, error) {
				gt.V(t, fullName).Equal("blue/alpha")
				return &model.ScopedToken{
					InstallID:    100,
					BatchIndex:   2,
					Repositories: []types.RepoFullName{"blue/alpha", "blue/beta"},
					Value:        "ghs_served",
					IssuedAt:     baseTime,
					ExpiresAt:    baseTime.Add(time.Hour),
				}, nil
			},
		}
		srv := server.New(mockUC)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/token/blue/alpha", nil)
		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusOK)

		var resp map[string]any
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		gt.V(t, resp["token"]).Equal("ghs_served")
		gt.V(t, resp["install_id"]).Equal(float64(100))
		gt.V(t, resp["batch_index"]).Equal(float64(2))
		gt.V(t, resp["repo_count"]).Equal(float64(2))
	})

	t.Run("unknown repository returns 404", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{
			TokenForRepositoryFunc: func(ctx context.Context, fullName types.RepoFullName) (*model.ScopedToken, error) {
				return nil, types.ErrRepoNotFound
			},
		}
		srv := server.New(mockUC)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/token/ghost-org/ghost-repo", nil)
		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusNotFound)
	})

	t.Run("provider failure returns 502", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{
			TokenForRepositoryFunc: func(ctx context.Context, fullName types.RepoFullName) (*model.ScopedToken, error) {
				return nil, errors.New("github is down")
			},
		}
		srv := server.New(mockUC)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/token/blue/alpha", nil)
		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusBadGateway)
	})
}

func TestDirectoryRefreshAPI(t *testing.T) {
	t.Run("refresh succeeds", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{
			RefreshDirectoryFunc: func(ctx context.Context) error {
				return nil
			},
		}
		srv := server.New(mockUC)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/directory/refresh", nil)
		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.A(t, mockUC.RefreshDirectoryCalls()).Length(1)
	})

	t.Run("refresh failure returns 502", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{
			RefreshDirectoryFunc: func(ctx context.Context) error {
				return types.ErrGitHubUnavailable
			},
		}
		srv := server.New(mockUC)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/directory/refresh", nil)
		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusBadGateway)
	})
}

func TestGitHubWebhook(t *testing.T) {
	const secret = "test-secret"

	t.Run("invalid signature is rejected", func(t *testing.T) {
		srv := server.New(&mock.UseCaseMock{}, server.WithGitHubSecret(types.GitHubAppSecret(secret)))

		body := []byte(`{"zen":"keep it simple"}`)
		req := httptest.NewRequest(http.MethodPost, "/webhook/github/app", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-GitHub-Event", "ping")
		req.Header.Set("X-Hub-Signature-256", "sha256=deadbeef")
		rec := httptest.NewRecorder()

		srv.Mux().ServeHTTP(rec, req)
		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
	})

	t.Run("ping event requires no action", func(t *testing.T) {
		srv := server.New(&mock.UseCaseMock{}, server.WithGitHubSecret(types.GitHubAppSecret(secret)))

		body := []byte(`{"zen":"keep it simple"}`)
		req := httptest.NewRequest(http.MethodPost, "/webhook/github/app", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-GitHub-Event", "ping")
		req.Header.Set("X-Hub-Signature-256", signBody(secret, body))
		rec := httptest.NewRecorder()

		srv.Mux().ServeHTTP(rec, req)
		gt.V(t, rec.Code).Equal(http.StatusOK)
	})

	t.Run("installation event triggers background refresh", func(t *testing.T) {
		refreshed := make(chan struct{})
		mockUC := &mock.UseCaseMock{
			RefreshDirectoryFunc: func(ctx context.Context) error {
				close(refreshed)
				return nil
			},
		}
		srv := server.New(mockUC, server.WithGitHubSecret(types.GitHubAppSecret(secret)))

		body := []byte(`{"action":"added","installation":{"id":100}}`)
		req := httptest.NewRequest(http.MethodPost, "/webhook/github/app", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-GitHub-Event", "installation_repositories")
		req.Header.Set("X-Hub-Signature-256", signBody(secret, body))
		rec := httptest.NewRecorder()

		srv.Mux().ServeHTTP(rec, req)
		gt.V(t, rec.Code).Equal(http.StatusAccepted)

		select {
		case <-refreshed:
		case <-time.After(time.Second):
			t.Fatal("background refresh was not triggered")
		}
	})

	t.Run("push event warms the token cache", func(t *testing.T) {
		warmed := make(chan types.RepoFullName, 1)
		mockUC := &mock.UseCaseMock{
			TokenForRepositoryFunc: func(ctx context.Context, fullName types.RepoFullName) (*model.ScopedToken, error) {
				warmed <- fullName
				return &model.ScopedToken{Value: "ghs_warm"}, nil
			},
		}
		srv := server.New(mockUC, server.WithGitHubSecret(types.GitHubAppSecret(secret)))

		body := []byte(`{"ref":"refs/heads/main","repository":{"full_name":"blue/alpha"}}`)
		req := httptest.NewRequest(http.MethodPost, "/webhook/github/app", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-GitHub-Event", "push")
		req.Header.Set("X-Hub-Signature-256", signBody(secret, body))
		rec := httptest.NewRecorder()

		srv.Mux().ServeHTTP(rec, req)
		gt.V(t, rec.Code).Equal(http.StatusAccepted)

		select {
		case repo := <-warmed:
			gt.V(t, repo).Equal("blue/alpha")
		case <-time.After(time.Second):
			t.Fatal("token warmup was not triggered")
		}
	})
}
