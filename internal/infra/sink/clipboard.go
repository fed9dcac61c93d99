package sink

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"event-sync-service/internal/infra"
	"event-sync-service/internal/usecase/artifact"
)

const clipboardFile = "clipboard.png"

// FileClipboard keeps the last copied image at a fixed path under the
// artifact directory, where kiosk tooling picks it up.
type FileClipboard struct {
	mu      sync.Mutex
	dir     string
	enabled bool
	logger  *slog.Logger
}

func NewFileClipboard(dir string, enabled bool, logger *slog.Logger) *FileClipboard {
	return &FileClipboard{dir: dir, enabled: enabled, logger: logger}
}

func (c *FileClipboard) WritePNG(_ context.Context, data []byte) error {
	if !c.enabled {
		return artifact.ErrClipboardUnsupported
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := filepath.Join(c.dir, clipboardFile)
	tmp := p + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return infra.WrapErr(c.logger, infra.KindSinkFailure, "failed to write clipboard image", err)
	}
	if err := os.Rename(tmp, p); err != nil {
		return infra.WrapErr(c.logger, infra.KindSinkFailure, "failed to replace clipboard image", err)
	}
	return nil
}

func (c *FileClipboard) Path() string {
	return filepath.Join(c.dir, clipboardFile)
}
