// Package httpapi assembles the public HTTP surface.
package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"retrobooth/internal/http/handlers"
	"retrobooth/internal/middleware"
)

// Options tunes the cross-cutting middleware. Zero values disable CORS and
// upload rate limiting, which is what tests want.
type Options struct {
	AllowedOrigins []string
	// UploadLimit caps album creations per client IP within UploadWindow.
	UploadLimit  int
	UploadWindow time.Duration
}

func NewRouter(app *handlers.App, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(
		chimw.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		chimw.Logger,
	)
	if len(opts.AllowedOrigins) > 0 {
		r.Use(middleware.CORS(opts.AllowedOrigins))
	}

	r.Get("/v1/healthz", app.Health)

	r.Route("/v1/albums", func(r chi.Router) {
		if opts.UploadLimit > 0 {
			window := opts.UploadWindow
			if window <= 0 {
				window = time.Minute
			}
			r.With(middleware.RateLimit(opts.UploadLimit, window)).Post("/", app.CreateAlbum)
		} else {
			r.Post("/", app.CreateAlbum)
		}

		r.Route("/{album_id}", func(r chi.Router) {
			r.Get("/", app.GetAlbum)
			r.Delete("/", app.DeleteAlbum)
			r.Get("/composite", app.DownloadComposite)
			r.Get("/archive", app.DownloadArchive)
			r.Route("/eras/{era}", func(r chi.Router) {
				r.Post("/regenerate", app.RegenerateEra)
				r.Get("/image", app.DownloadEraImage)
			})
		})
	})

	return r
}
