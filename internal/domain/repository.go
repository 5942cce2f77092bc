package domain

import (
	"context"
	"time"
)

// AlbumRecord captures one album session for diagnostics.
type AlbumRecord struct {
	ID             string
	SourceFilename string
	CreatedAt      time.Time
}

// AssetRecord captures one persisted artifact: a restyled era image or the
// composed album itself (Era empty, Kind "composite").
type AssetRecord struct {
	AlbumID    string
	Era        Era
	Kind       string
	StorageKey string
	Format     string
	Bytes      int64
	Width      int
	Height     int
}

// AlbumRepository records album runs and their artifacts. Persistence is an
// observability concern: implementations must never block generation, and the
// service runs fine without one.
type AlbumRepository interface {
	CreateAlbum(ctx context.Context, record AlbumRecord) error
	RecordAsset(ctx context.Context, record AssetRecord) error
}
