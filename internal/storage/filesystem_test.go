package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreWriteRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	key, err := store.Write(context.Background(), "albums/abc/retrobooth-1950s.jpg", []byte("jpeg-bytes"))
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if key != "albums/abc/retrobooth-1950s.jpg" {
		t.Fatalf("key = %q", key)
	}

	data, err := os.ReadFile(filepath.Join(store.BasePath(), filepath.FromSlash(key)))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "jpeg-bytes" {
		t.Fatalf("content mismatch: %q", data)
	}
}

func TestFileStoreRejectsTraversal(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	if _, err := store.Write(context.Background(), "../outside.jpg", []byte("x")); err == nil {
		t.Fatal("traversal key should be rejected")
	}
	if _, err := store.Write(context.Background(), "  ", []byte("x")); err == nil {
		t.Fatal("blank key should be rejected")
	}
}

func TestNilFileStoreIsNoOp(t *testing.T) {
	var store *FileStore
	key, err := store.Write(context.Background(), "albums/abc/album.jpg", []byte("x"))
	if err != nil {
		t.Fatalf("nil store Write: %v", err)
	}
	if key != "albums/abc/album.jpg" {
		t.Fatalf("key = %q", key)
	}
	if store.BasePath() != "" {
		t.Fatalf("nil store BasePath = %q", store.BasePath())
	}
}
