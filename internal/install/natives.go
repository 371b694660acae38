package install

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/brightforge/mlcore/internal/errs"
	"github.com/brightforge/mlcore/internal/version"
)

// ExtractNatives unpacks every resolved library flagged IsNativeLibrary into
// a flat natives directory, honouring each library's extract.exclude prefix
// list (spec.md §4.H / §3 "extract.exclude"). Already-extracted files are
// left alone, matching spec.md's idempotent-install requirement.
func ExtractNatives(libs []version.ResolvedLibrary, libraryRoot func(string) string, nativesDir string) error {
	if err := os.MkdirAll(nativesDir, 0o755); err != nil {
		return errs.Wrap(errs.IoError, "create natives directory", err).WithPath(nativesDir)
	}

	for _, lib := range libs {
		if !lib.IsNativeLibrary {
			continue
		}
		jarPath := libraryRoot(lib.Path)
		if err := extractJar(jarPath, nativesDir, lib.ExtractExclude); err != nil {
			logrus.WithFields(logrus.Fields{"jar": jarPath}).WithError(err).Warn("native extraction failed for library")
		}
	}
	return nil
}

// extractJar copies every file in jarPath into destDir, flattening
// directory structure, skipping any entry whose name has one of the
// exclude prefixes (case-sensitive, matching the original's treatment of
// extract.exclude as a plain string prefix).
func extractJar(jarPath, destDir string, exclude []string) error {
	r, err := zip.OpenReader(jarPath)
	if err != nil {
		return errs.Wrap(errs.IoError, "open native jar", err).WithPath(jarPath)
	}
	defer r.Close()

	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		if excluded(f.Name, exclude) {
			continue
		}

		destPath := filepath.Join(destDir, filepath.Base(f.Name))
		if _, err := os.Stat(destPath); err == nil {
			continue
		}

		if err := copyZipEntry(f, destPath); err != nil {
			logrus.WithFields(logrus.Fields{"entry": f.Name}).WithError(err).Warn("failed to extract native entry")
		}
	}
	return nil
}

func excluded(name string, exclude []string) bool {
	if strings.HasPrefix(name, "META-INF/") {
		return true
	}
	for _, prefix := range exclude {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

func copyZipEntry(f *zip.File, destPath string) error {
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	out, err := os.Create(destPath)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, rc)
	return err
}
