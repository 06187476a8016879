package ui

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

//go:embed static
var staticFiles embed.FS

type UIRoutesManager struct {
	logger *gecho.Logger
	assets fs.FS
}

func NewUIRoutesManager(logger *gecho.Logger) *UIRoutesManager {
	assets, err := fs.Sub(staticFiles, "static")
	if err != nil {
		// The embedded directory is fixed at build time
		panic(err)
	}
	return &UIRoutesManager{
		logger: logger,
		assets: assets,
	}
}

func (urm *UIRoutesManager) RegisterRoutes(r chi.Router) {
	r.Get("/", urm.HandleIndex)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(urm.assets))))
}

// HandleIndex serves the single-page quote demo
func (urm *UIRoutesManager) HandleIndex(w http.ResponseWriter, r *http.Request) {
	page, err := fs.ReadFile(urm.assets, "index.html")
	if err != nil {
		urm.logger.Error("Failed to read index page", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.Send())
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(page)
}
