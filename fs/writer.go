package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/talmud"
)

// Ensure DataWriter implements talmud.DataWriter at compile time.
var _ talmud.DataWriter = (*DataWriter)(nil)

// DataWriter writes the front-end data document as indented JSON.
// Writes go to a temporary file next to the target, which is then renamed
// over the target, so readers never observe a partial document. A symlinked
// target is followed and the file it points at is replaced, keeping its mode.
type DataWriter struct {
	path string
}

// NewDataWriter creates a new DataWriter that writes to path.
func NewDataWriter(path string) *DataWriter {
	return &DataWriter{path: path}
}

// MarshalData encodes data as JSON indented with two spaces. HTML characters
// are not escaped so citation anchors stay readable in the file.
func MarshalData(data *talmud.Data) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return nil, err
	}
	// Encoder terminates with a newline; keep the document as json.dumps would.
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// WriteData writes data to the target path, replacing any existing file.
func (w *DataWriter) WriteData(ctx context.Context, data *talmud.Data) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	b, err := MarshalData(data)
	if err != nil {
		return fmt.Errorf("failed to encode data: %w", err)
	}

	target, err := resolveTarget(w.path)
	if err != nil {
		return err
	}

	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	mode := os.FileMode(0644)
	if fi, err := os.Stat(target); err == nil {
		mode = fi.Mode().Perm()
	} else if !os.IsNotExist(err) {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(target)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		os.Remove(tmpPath)
		return err
	}

	// Atomically replace the previous document
	if err := os.Rename(tmpPath, target); err != nil {
		os.Remove(tmpPath)
		return err
	}

	return nil
}

// resolveTarget follows symlinks in path. A path that does not exist yet is
// returned unchanged.
func resolveTarget(path string) (string, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if os.IsNotExist(err) {
		return path, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	return resolved, nil
}
