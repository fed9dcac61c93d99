// Package sink writes generated artifacts under a public directory served by
// the HTTP router.
package sink

import (
	"context"
	"log/slog"
	"net/url"
	"os"
	"os/exec"
	"path"
	"path/filepath"
	"strings"

	"event-sync-service/internal/infra"
	"event-sync-service/internal/pkg/errs"
	"event-sync-service/internal/usecase/artifact"

	"github.com/google/uuid"
)

const (
	dirDownloads = "downloads"
	dirPrint     = "print"
	dirObjects   = "objects"
)

type Options struct {
	Dir        string
	PublicPath string
	// PrintCommand, when set, is run with the spooled file path appended.
	PrintCommand string
}

type FileSink struct {
	opts   Options
	logger *slog.Logger
}

func NewFileSink(opts Options, logger *slog.Logger) (*FileSink, error) {
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, errs.Wrap(err, "failed to create artifact directory")
	}
	if opts.PublicPath == "" {
		opts.PublicPath = "/artifacts"
	}
	return &FileSink{opts: opts, logger: logger.With("component", "sink")}, nil
}

func (s *FileSink) Dir() string {
	return s.opts.Dir
}

func (s *FileSink) Download(ctx context.Context, blob artifact.Blob) (string, error) {
	_, u, err := s.write(dirDownloads, blob)
	return u, err
}

func (s *FileSink) Print(ctx context.Context, blob artifact.Blob) (string, error) {
	p, u, err := s.write(dirPrint, blob)
	if err != nil {
		return "", err
	}
	if s.opts.PrintCommand == "" {
		return u, nil
	}

	args := strings.Fields(s.opts.PrintCommand)
	cmd := exec.CommandContext(ctx, args[0], append(args[1:], p)...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", infra.WrapErr(s.logger, infra.KindSinkFailure, "print command failed",
			errs.Wrapf(err, "%s", strings.TrimSpace(string(out))))
	}
	s.logger.Info("print job submitted", "file", blob.Name)
	return u, nil
}

func (s *FileSink) ObjectURL(ctx context.Context, blob artifact.Blob) (string, error) {
	_, u, err := s.write(dirObjects, blob)
	return u, err
}

// write stores blob under its own random directory so names never collide,
// and returns the file path and public URL.
func (s *FileSink) write(kind string, blob artifact.Blob) (string, string, error) {
	name := filepath.Base(blob.Name)
	if name == "." || name == string(filepath.Separator) || name == "" {
		return "", "", errs.Newf("invalid artifact name %q", blob.Name)
	}
	token := uuid.NewString()
	dir := filepath.Join(s.opts.Dir, kind, token)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", infra.WrapErr(s.logger, infra.KindSinkFailure, "failed to create artifact directory", err)
	}
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, blob.Data, 0o644); err != nil {
		return "", "", infra.WrapErr(s.logger, infra.KindSinkFailure, "failed to write artifact", err)
	}

	s.logger.Debug("artifact written", "kind", kind, "name", name, "bytes", len(blob.Data))
	return p, path.Join(s.opts.PublicPath, kind, token, url.PathEscape(name)), nil
}
