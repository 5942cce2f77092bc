package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"retrobooth/internal/domain"
	"retrobooth/internal/infra"
	"retrobooth/internal/providers/style"
	"retrobooth/internal/scheduler"
	"retrobooth/internal/storage"
)

// App carries the service dependencies and the live album sessions. Each
// upload gets its own scheduler; sessions are addressed by id and live until
// explicitly deleted.
type App struct {
	Logger         infra.Logger
	Generator      style.Generator
	Compositor     Compositor
	Store          *storage.FileStore
	Repo           domain.AlbumRepository
	Workers        int
	MaxUploadBytes int64

	mu     sync.Mutex
	albums map[string]*albumSession
}

// Compositor is the single operation the album assembler exposes.
type Compositor interface {
	Compose(ctx context.Context, images map[domain.Era][]byte, required []domain.Era) ([]byte, error)
}

type albumSession struct {
	id        string
	source    domain.SourceImage
	sched     *scheduler.Scheduler
	ctx       context.Context
	cancel    context.CancelFunc
	createdAt time.Time
}

// Options wires an App.
type Options struct {
	Logger         infra.Logger
	Generator      style.Generator
	Compositor     Compositor
	Store          *storage.FileStore
	Repo           domain.AlbumRepository
	Workers        int
	MaxUploadBytes int64
}

func NewApp(opts Options) *App {
	maxUpload := opts.MaxUploadBytes
	if maxUpload <= 0 {
		maxUpload = 10 * 1024 * 1024
	}
	return &App{
		Logger:         opts.Logger,
		Generator:      opts.Generator,
		Compositor:     opts.Compositor,
		Store:          opts.Store,
		Repo:           opts.Repo,
		Workers:        opts.Workers,
		MaxUploadBytes: maxUpload,
		albums:         make(map[string]*albumSession),
	}
}

func (a *App) session(id string) (*albumSession, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	session, ok := a.albums[id]
	return session, ok
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, slug, message string) {
	a.json(w, code, map[string]any{
		"error": map[string]string{"code": slug, "message": message},
	})
}

// persistingGenerator decorates a Generator with best-effort persistence:
// every settled era image is written to the file store and recorded in the
// repository. Persistence failures are logged and never fail generation.
type persistingGenerator struct {
	inner   style.Generator
	store   *storage.FileStore
	repo    domain.AlbumRepository
	logger  infra.Logger
	albumID string
}

func (g *persistingGenerator) Generate(ctx context.Context, source domain.SourceImage, era domain.Era) (*domain.ImageAsset, error) {
	asset, err := g.inner.Generate(ctx, source, era)
	if err != nil {
		return nil, err
	}

	key := eraStorageKey(g.albumID, era)
	savedKey, werr := g.store.Write(ctx, key, asset.Data)
	if werr != nil {
		g.logger.Warn().Err(werr).Str("album_id", g.albumID).Str("era", era.String()).Msg("handlers: persist era image failed")
		return asset, nil
	}
	if g.repo != nil {
		record := domain.AssetRecord{
			AlbumID:    g.albumID,
			Era:        era,
			Kind:       "era",
			StorageKey: savedKey,
			Format:     asset.Format,
			Bytes:      int64(len(asset.Data)),
			Width:      asset.Width,
			Height:     asset.Height,
		}
		if rerr := g.repo.RecordAsset(ctx, record); rerr != nil {
			g.logger.Warn().Err(rerr).Str("album_id", g.albumID).Str("era", era.String()).Msg("handlers: record era asset failed")
		}
	}
	return asset, nil
}

func eraStorageKey(albumID string, era domain.Era) string {
	return fmt.Sprintf("albums/%s/retrobooth-%s.jpg", albumID, era)
}

func albumStorageKey(albumID string) string {
	return fmt.Sprintf("albums/%s/retrobooth-album.jpg", albumID)
}

var _ style.Generator = (*persistingGenerator)(nil)
