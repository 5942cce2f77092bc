// Package sqlinline holds every SQL statement the service issues, as marked
// constants. The leading `--sql <uuid>` line is an audit marker so statements
// can be traced from server logs back to their source.
package sqlinline

const QInsertAlbum = `--sql 7b1f0a4e-52c3-4d8f-9a11-3e6f2c8d9b05
insert into albums (id, source_filename, created_at)
values ($1::uuid, $2::text, $3::timestamptz);
`

const QInsertAlbumAsset = `--sql e4a9c7d2-0f36-4b81-b5c4-88a1d62f3e77
insert into album_assets (
  album_id,
  era,
  kind,
  storage_key,
  format,
  bytes,
  width,
  height,
  created_at
)
values ($1::uuid, $2::text, $3::text, $4::text, $5::text, $6::bigint, $7::int, $8::int, now());
`
