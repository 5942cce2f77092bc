// Package zip bundles a finished album's artifacts into a single downloadable
// archive.
package zip

import (
	"archive/zip"
	"bytes"
	"fmt"
)

// Entry is one file inside the archive.
type Entry struct {
	Filename string
	Data     []byte
}

// Archive writes the entries into an in-memory zip, preserving order. Entry
// filenames must be unique; archive/zip would otherwise produce a zip that
// many extractors silently mangle.
func Archive(entries []Entry) ([]byte, error) {
	seen := make(map[string]struct{}, len(entries))
	buf := &bytes.Buffer{}
	zw := zip.NewWriter(buf)

	for _, entry := range entries {
		if entry.Filename == "" {
			return nil, fmt.Errorf("archive entry has no filename")
		}
		if _, dup := seen[entry.Filename]; dup {
			return nil, fmt.Errorf("duplicate archive entry %q", entry.Filename)
		}
		seen[entry.Filename] = struct{}{}

		w, err := zw.Create(entry.Filename)
		if err != nil {
			return nil, fmt.Errorf("create archive entry %q: %w", entry.Filename, err)
		}
		if _, err := w.Write(entry.Data); err != nil {
			return nil, fmt.Errorf("write archive entry %q: %w", entry.Filename, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalize archive: %w", err)
	}
	return buf.Bytes(), nil
}
