package fetch

import (
	"io"
	"os"
	"path/filepath"

	"github.com/brightforge/mlcore/internal/errs"
)

// Task is a single URL -> destination-path fetch, per spec.md §4.D.
type Task struct {
	URL  string
	Dest string
}

// File downloads Task.URL to Task.Dest, creating parent directories as
// needed and truncating any existing file. On HTTP or I/O failure it
// returns an error carrying the URL and path; the partial file, if any, is
// left in place — the caller (the concurrent downloader) decides whether
// to retry by re-invoking.
func File(t Task) error {
	if err := os.MkdirAll(filepath.Dir(t.Dest), 0o755); err != nil {
		return errs.Wrap(errs.IoError, "create parent directory", err).WithPath(t.Dest)
	}

	resp, err := Client().Get(t.URL)
	if err != nil {
		return errs.Wrap(errs.HttpError, "request failed", err).WithURL(t.URL)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errs.New(errs.HttpError, "non-2xx response: "+resp.Status).WithURL(t.URL)
	}

	out, err := os.Create(t.Dest)
	if err != nil {
		return errs.Wrap(errs.IoError, "create destination file", err).WithPath(t.Dest)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return errs.Wrap(errs.IoError, "write destination file", err).WithPath(t.Dest)
	}
	return nil
}
