package repo

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"retrobooth/internal/domain"
	"retrobooth/internal/sqlinline"
)

// AlbumRepositoryPG implements domain.AlbumRepository on PostgreSQL.
type AlbumRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewAlbumRepository creates a new album repository backed by PostgreSQL.
func NewAlbumRepository(pool *pgxpool.Pool) *AlbumRepositoryPG {
	return &AlbumRepositoryPG{pool: pool}
}

// CreateAlbum inserts a new album session record.
func (r *AlbumRepositoryPG) CreateAlbum(ctx context.Context, record domain.AlbumRecord) error {
	_, err := r.pool.Exec(ctx, sqlinline.QInsertAlbum, record.ID, record.SourceFilename, record.CreatedAt)
	return err
}

// RecordAsset inserts one generated artifact record. Re-generated eras insert
// a fresh row; history is intentionally kept.
func (r *AlbumRepositoryPG) RecordAsset(ctx context.Context, record domain.AssetRecord) error {
	_, err := r.pool.Exec(ctx, sqlinline.QInsertAlbumAsset,
		record.AlbumID,
		record.Era,
		record.Kind,
		record.StorageKey,
		record.Format,
		record.Bytes,
		record.Width,
		record.Height,
	)
	return err
}

var _ domain.AlbumRepository = (*AlbumRepositoryPG)(nil)
