package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"retrobooth/internal/domain"
	"retrobooth/internal/scheduler"
	"retrobooth/pkg/zip"
)

type eraStatusResponse struct {
	Era    string `json:"era"`
	Label  string `json:"label"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

type albumResponse struct {
	AlbumID   string              `json:"album_id"`
	AllDone   bool                `json:"all_done"`
	Eras      []eraStatusResponse `json:"eras"`
	CreatedAt time.Time           `json:"created_at"`
}

// CreateAlbum accepts a multipart photo upload, starts a full generation run
// in the background and responds immediately with the new session's initial
// status map.
func (a *App) CreateAlbum(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, a.MaxUploadBytes)
	if err := r.ParseMultipartForm(a.MaxUploadBytes); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "expected multipart upload with a photo field")
		return
	}
	file, header, err := r.FormFile("photo")
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "photo field is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "failed to read upload")
		return
	}
	if len(data) == 0 {
		a.error(w, http.StatusBadRequest, "bad_request", "uploaded photo is empty")
		return
	}
	mime := http.DetectContentType(data)
	if !strings.HasPrefix(mime, "image/") {
		a.error(w, http.StatusUnsupportedMediaType, "unsupported_media", "upload must be an image")
		return
	}

	source := domain.SourceImage{Data: data, MIME: mime, Filename: header.Filename}
	session := a.startSession(source)

	a.Logger.Info().
		Str("album_id", session.id).
		Str("mime", mime).
		Int("bytes", len(data)).
		Msg("handlers: album session started")

	a.json(w, http.StatusAccepted, a.albumResponse(session))
}

func (a *App) startSession(source domain.SourceImage) *albumSession {
	id := uuid.NewString()
	ctx, cancel := context.WithCancel(context.Background())

	gen := &persistingGenerator{
		inner:   a.Generator,
		store:   a.Store,
		repo:    a.Repo,
		logger:  a.Logger,
		albumID: id,
	}
	session := &albumSession{
		id:        id,
		source:    source,
		sched:     scheduler.New(gen, scheduler.Options{Workers: a.Workers, Logger: a.Logger}),
		ctx:       ctx,
		cancel:    cancel,
		createdAt: time.Now().UTC(),
	}

	a.mu.Lock()
	a.albums[id] = session
	a.mu.Unlock()

	if a.Repo != nil {
		record := domain.AlbumRecord{ID: id, SourceFilename: source.Filename, CreatedAt: session.createdAt}
		if err := a.Repo.CreateAlbum(ctx, record); err != nil {
			a.Logger.Warn().Err(err).Str("album_id", id).Msg("handlers: record album failed")
		}
	}

	go session.sched.RunAll(ctx, source)
	return session
}

// GetAlbum renders the live status map for one session.
func (a *App) GetAlbum(w http.ResponseWriter, r *http.Request) {
	session, ok := a.session(chi.URLParam(r, "album_id"))
	if !ok {
		a.error(w, http.StatusNotFound, "not_found", "album not found")
		return
	}
	a.json(w, http.StatusOK, a.albumResponse(session))
}

// RegenerateEra retries a single era outside the work queue.
func (a *App) RegenerateEra(w http.ResponseWriter, r *http.Request) {
	session, ok := a.session(chi.URLParam(r, "album_id"))
	if !ok {
		a.error(w, http.StatusNotFound, "not_found", "album not found")
		return
	}
	era, err := domain.ParseEra(chi.URLParam(r, "era"))
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "unknown era")
		return
	}

	switch err := session.sched.Regenerate(session.ctx, session.source, era); {
	case err == nil:
		a.json(w, http.StatusAccepted, map[string]string{"album_id": session.id, "era": era.String(), "status": string(domain.StatusPending)})
	case errors.Is(err, domain.ErrAlreadyPending):
		a.error(w, http.StatusConflict, "already_pending", "generation for this era is already running")
	case errors.Is(err, domain.ErrUnknownEra):
		a.error(w, http.StatusBadRequest, "bad_request", "unknown era")
	default:
		a.error(w, http.StatusInternalServerError, "internal", "failed to restart generation")
	}
}

// DownloadEraImage serves one era's restyled JPEG with a deterministic
// filename derived from the era.
func (a *App) DownloadEraImage(w http.ResponseWriter, r *http.Request) {
	session, ok := a.session(chi.URLParam(r, "album_id"))
	if !ok {
		a.error(w, http.StatusNotFound, "not_found", "album not found")
		return
	}
	era, err := domain.ParseEra(chi.URLParam(r, "era"))
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "unknown era")
		return
	}
	status, err := session.sched.Status(era)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "unknown era")
		return
	}
	if status.Kind != domain.StatusDone || status.Image == nil {
		a.error(w, http.StatusConflict, "not_ready", "this era has not finished generating")
		return
	}

	w.Header().Set("Content-Type", status.Image.Format)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fmt.Sprintf("retrobooth-%s.jpg", era)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(status.Image.Data)
}

// DownloadComposite composes the album from the completed set and serves it
// as a single JPEG with a fixed filename. Composition is idempotent, so it is
// recomputed per request rather than cached.
func (a *App) DownloadComposite(w http.ResponseWriter, r *http.Request) {
	session, ok := a.session(chi.URLParam(r, "album_id"))
	if !ok {
		a.error(w, http.StatusNotFound, "not_found", "album not found")
		return
	}

	images, done := session.sched.CompletedImages()
	if !done {
		a.error(w, http.StatusConflict, "incomplete", "wait until all eras are done, then try again")
		return
	}

	data, err := a.Compositor.Compose(r.Context(), images, session.sched.Eras())
	if err != nil {
		// Keep era-level detail in the logs; the user sees one generic failure.
		a.Logger.Error().Err(err).Str("album_id", session.id).Msg("handlers: album composition failed")
		if errors.Is(err, domain.ErrIncompleteSet) {
			a.error(w, http.StatusConflict, "incomplete", "wait until all eras are done, then try again")
			return
		}
		a.error(w, http.StatusInternalServerError, "internal", "failed to assemble the album")
		return
	}

	if savedKey, werr := a.Store.Write(r.Context(), albumStorageKey(session.id), data); werr != nil {
		a.Logger.Warn().Err(werr).Str("album_id", session.id).Msg("handlers: persist album failed")
	} else if a.Repo != nil {
		record := domain.AssetRecord{
			AlbumID:    session.id,
			Kind:       "composite",
			StorageKey: savedKey,
			Format:     "image/jpeg",
			Bytes:      int64(len(data)),
		}
		if rerr := a.Repo.RecordAsset(r.Context(), record); rerr != nil {
			a.Logger.Warn().Err(rerr).Str("album_id", session.id).Msg("handlers: record album asset failed")
		}
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Content-Disposition", `attachment; filename="retrobooth-album.jpg"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// DownloadArchive bundles the six era images plus the composed album into one
// zip. Like the composite, it is available only once every era is done.
func (a *App) DownloadArchive(w http.ResponseWriter, r *http.Request) {
	session, ok := a.session(chi.URLParam(r, "album_id"))
	if !ok {
		a.error(w, http.StatusNotFound, "not_found", "album not found")
		return
	}

	images, done := session.sched.CompletedImages()
	if !done {
		a.error(w, http.StatusConflict, "incomplete", "wait until all eras are done, then try again")
		return
	}

	composite, err := a.Compositor.Compose(r.Context(), images, session.sched.Eras())
	if err != nil {
		a.Logger.Error().Err(err).Str("album_id", session.id).Msg("handlers: album composition failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to assemble the album")
		return
	}

	entries := make([]zip.Entry, 0, len(images)+1)
	for _, era := range session.sched.Eras() {
		entries = append(entries, zip.Entry{
			Filename: fmt.Sprintf("retrobooth-%s.jpg", era),
			Data:     images[era],
		})
	}
	entries = append(entries, zip.Entry{Filename: "retrobooth-album.jpg", Data: composite})

	archive, err := zip.Archive(entries)
	if err != nil {
		a.Logger.Error().Err(err).Str("album_id", session.id).Msg("handlers: album archive failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to build the archive")
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", `attachment; filename="retrobooth-album.zip"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(archive)
}

// DeleteAlbum abandons a session: its run context is cancelled so queued work
// settles immediately, and the session is removed.
func (a *App) DeleteAlbum(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "album_id")

	a.mu.Lock()
	session, ok := a.albums[id]
	if ok {
		delete(a.albums, id)
	}
	a.mu.Unlock()

	if !ok {
		a.error(w, http.StatusNotFound, "not_found", "album not found")
		return
	}
	session.cancel()
	a.Logger.Info().Str("album_id", id).Msg("handlers: album session deleted")
	w.WriteHeader(http.StatusNoContent)
}

// Health reports liveness.
func (a *App) Health(w http.ResponseWriter, _ *http.Request) {
	a.json(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *App) albumResponse(session *albumSession) albumResponse {
	snapshot := session.sched.Snapshot()
	eras := session.sched.Eras()

	out := albumResponse{
		AlbumID:   session.id,
		AllDone:   true,
		Eras:      make([]eraStatusResponse, 0, len(eras)),
		CreatedAt: session.createdAt,
	}
	for _, era := range eras {
		status := snapshot[era]
		entry := eraStatusResponse{
			Era:    era.String(),
			Label:  era.DisplayName(),
			Status: string(status.Kind),
			Error:  status.ErrorMessage,
		}
		if status.Image != nil {
			entry.Width = status.Image.Width
			entry.Height = status.Image.Height
		}
		if status.Kind != domain.StatusDone {
			out.AllDone = false
		}
		out.Eras = append(out.Eras, entry)
	}
	return out
}
