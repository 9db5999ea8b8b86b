package server

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/emiliopalmerini/projectboard/internal/api"
	"github.com/emiliopalmerini/projectboard/internal/board"
	"github.com/emiliopalmerini/projectboard/internal/projectinput"
	"github.com/emiliopalmerini/projectboard/internal/projectlist"
	sharedmw "github.com/emiliopalmerini/projectboard/internal/shared/middleware"
)

//go:embed static/*
var staticFiles embed.FS

// Config holds server-specific configuration.
type Config struct {
	MetricsPath string
}

// Deps are the components the routes are served from.
type Deps struct {
	Input   *projectinput.Handler
	Lists   *projectlist.Handler
	Board   *board.Handler
	API     *api.Handler
	Metrics http.Handler // nil disables the metrics route
	Logger  *zap.Logger
}

// NewRouter builds the chi router with every route and middleware.
func NewRouter(cfg Config, d Deps) http.Handler {
	logger := d.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(sharedmw.HTMX)
	r.Use(sharedmw.Logger(logger))
	r.Use(middleware.Recoverer)

	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to create static filesystem: %v", err))
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if d.Metrics != nil {
		path := cfg.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		r.Method(http.MethodGet, path, d.Metrics)
	}

	board.RegisterRoutes(r, d.Board)
	projectinput.RegisterRoutes(r, d.Input)
	projectlist.RegisterRoutes(r, d.Lists)
	api.RegisterRoutes(r, d.API)

	return r
}

const (
	ReadTimeout  = 15 * time.Second
	WriteTimeout = 15 * time.Second
	IdleTimeout  = 60 * time.Second
)
