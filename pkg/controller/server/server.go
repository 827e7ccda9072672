package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/secmon-lab/batchtoken/pkg/domain/interfaces"
	"github.com/secmon-lab/batchtoken/pkg/domain/types"
	"github.com/secmon-lab/batchtoken/pkg/utils/errutil"
	"github.com/secmon-lab/batchtoken/pkg/utils/logging"
)

type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

type config struct {
	ghSecret types.GitHubAppSecret
}

type Option func(*config)

func WithGitHubSecret(secret types.GitHubAppSecret) Option {
	return func(cfg *config) {
		cfg.ghSecret = secret
	}
}

// tokenResponse is the API shape for a scoped token. The raw value is
// returned to the caller; everything else is batch metadata.
type tokenResponse struct {
	Token      string `json:"token"`
	InstallID  int64  `json:"install_id"`
	BatchIndex int    `json:"batch_index"`
	RepoCount  int    `json:"repo_count"`
	ExpiresAt  string `json:"expires_at"`
}

func New(uc interfaces.UseCase, options ...Option) *Server {
	cfg := &config{}
	for _, opt := range options {
		opt(cfg)
	}

	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})

	r.Route("/webhook", func(r chi.Router) {
		r.Route("/github", func(r chi.Router) {
			r.Post("/app", func(w http.ResponseWriter, r *http.Request) {
				result, err := validateGitHubAppEvent(r, cfg.ghSecret)
				if err != nil {
					errutil.HandleError(r.Context(), "fail to validate GitHub App event", err)
					safeWrite(w, http.StatusBadRequest, []byte(err.Error()))
					return
				}

				if result.Action == webhookActionNone {
					safeWrite(w, http.StatusOK, []byte(`{"status":"ok","message":"no action required"}`))
					return
				}

				// The request context dies with the HTTP response; background
				// work needs a detached one.
				bgCtx := DetachContext(r.Context())

				switch result.Action {
				case webhookActionRefreshDirectory:
					go runDirectoryRefresh(bgCtx, uc)
				case webhookActionWarmToken:
					go runTokenWarmup(bgCtx, uc, result.RepoFullName)
				}

				safeWrite(w, http.StatusAccepted, []byte(`{"status":"accepted"}`))
			})
		})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/token/{owner}/{repo}", func(w http.ResponseWriter, r *http.Request) {
			fullName := types.RepoFullName(chi.URLParam(r, "owner") + "/" + chi.URLParam(r, "repo"))

			token, err := uc.TokenForRepository(r.Context(), fullName)
			if err != nil {
				if errors.Is(err, types.ErrRepoNotFound) {
					safeWrite(w, http.StatusNotFound, []byte(`{"error":"repository not found"}`))
					return
				}
				errutil.HandleError(r.Context(), "fail to issue token", err)
				safeWrite(w, http.StatusBadGateway, []byte(`{"error":"token issuance failed"}`))
				return
			}

			body, err := json.Marshal(&tokenResponse{
				Token:      token.Value.Unmask(),
				InstallID:  int64(token.InstallID),
				BatchIndex: token.BatchIndex,
				RepoCount:  len(token.Repositories),
				ExpiresAt:  token.ExpiresAt.Format(time.RFC3339),
			})
			if err != nil {
				errutil.HandleError(r.Context(), "fail to marshal token response", err)
				safeWrite(w, http.StatusInternalServerError, []byte(`{"error":"internal error"}`))
				return
			}

			w.Header().Set("Content-Type", "application/json")
			safeWrite(w, http.StatusOK, body)
		})

		r.Post("/directory/refresh", func(w http.ResponseWriter, r *http.Request) {
			if err := uc.RefreshDirectory(r.Context()); err != nil {
				errutil.HandleError(r.Context(), "fail to refresh directory", err)
				safeWrite(w, http.StatusBadGateway, []byte(`{"error":"directory refresh failed"}`))
				return
			}

			safeWrite(w, http.StatusOK, []byte(`{"status":"ok"}`))
		})
	})

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}
