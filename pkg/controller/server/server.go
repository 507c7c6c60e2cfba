package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/secmon-lab/runboard/pkg/controller/view"
	"github.com/secmon-lab/runboard/pkg/domain/interfaces"
	"github.com/secmon-lab/runboard/pkg/domain/types"
	"github.com/secmon-lab/runboard/pkg/utils/safe"
)

// DefaultRefreshInterval is the seconds between reloads of a page while runs are loading.
const DefaultRefreshInterval = 3

type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	// nosemgrep: go.lang.security.audit.xss.no-direct-write-to-responsewriter.no-direct-write-to-responsewriter
	// Why: The response data is not from user input
	safe.Write(w, body)
}

type config struct {
	ghSecret        types.GitHubAppSecret
	refreshInterval int
}

type Option func(*config)

func WithGitHubSecret(secret types.GitHubAppSecret) Option {
	return func(cfg *config) {
		cfg.ghSecret = secret
	}
}

// WithRefreshInterval sets the seconds between reloads of a loading page.
// Zero disables automatic reload.
func WithRefreshInterval(seconds int) Option {
	return func(cfg *config) {
		cfg.refreshInterval = seconds
	}
}

func New(uc interfaces.UseCase, options ...Option) *Server {
	cfg := &config{
		refreshInterval: DefaultRefreshInterval,
	}
	for _, opt := range options {
		opt(cfg)
	}

	h := &catalogHandler{
		uc:        uc,
		container: view.NewContainer(uc, uc),
		cfg:       cfg,
	}

	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/catalog", http.StatusFound)
	})
	r.Route("/catalog", func(r chi.Router) {
		r.Get("/", h.listEntities)
		r.Route("/{namespace}/{kind}/{name}/ci-cd", func(r chi.Router) {
			r.Get("/", h.showRuns)
			r.Post("/actions/{actionID}", h.triggerAction)
			r.Post("/page", h.changePage)
			r.Get("/{id}", h.showRun)
		})
	})
	r.Route("/webhook", func(r chi.Router) {
		r.Post("/github", handleGitHubEvent(uc, cfg.ghSecret))
	})

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}
