package install

import (
	"os"
	"path/filepath"

	"github.com/mholt/archiver/v3"
	"github.com/sirupsen/logrus"

	"github.com/brightforge/mlcore/internal/errs"
)

// InstallForgeArchive unpacks a downloaded Forge/OptiFine installer jar
// into a scratch directory and copies the version JSON and any profile
// libraries it bundles into the standard versions/ and libraries/ layout,
// so the resolver can consume them exactly like a vanilla or Fabric
// profile (spec.md §1 scope note: post-processor execution is out of
// scope, but the files an installer writes ahead of that step are not).
//
// archivePath is the installer jar the caller already downloaded;
// versionID is the profile id the installer is expected to produce
// (known ahead of time from the Forge/OptiFine version promotion feed).
func (ins *Installer) InstallForgeArchive(archivePath, versionID string) error {
	scratch, err := os.MkdirTemp("", "mlcore-forge-installer-*")
	if err != nil {
		return errs.Wrap(errs.IoError, "create scratch directory", err)
	}
	defer os.RemoveAll(scratch)

	if err := archiver.Unarchive(archivePath, scratch); err != nil {
		return errs.Wrap(errs.IoError, "unpack installer archive", err).WithPath(archivePath)
	}

	versionJSON, err := findVersionJSON(scratch)
	if err != nil {
		return err
	}

	destDir := ins.Folder.VersionRoot(versionID)
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return errs.Wrap(errs.IoError, "create version directory", err).WithPath(destDir)
	}
	data, err := os.ReadFile(versionJSON)
	if err != nil {
		return errs.Wrap(errs.IoError, "read unpacked version json", err).WithPath(versionJSON)
	}
	dest := ins.Folder.VersionJSON(versionID)
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return errs.Wrap(errs.IoError, "write version json", err).WithPath(dest)
	}

	if err := copyBundledMaven(scratch, ins.Folder.Libraries()); err != nil {
		logrus.WithError(err).Warn("could not copy all bundled installer libraries")
	}

	logrus.WithFields(logrus.Fields{"version": versionID, "archive": archivePath}).Info("forge installer archive processed")
	return nil
}

// findVersionJSON walks an unpacked installer tree for the version.json or
// install_profile.json Forge/OptiFine installers embed. version.json is the
// real launch profile and always wins when both are present; the walk order
// (which the filesystem, not this preference, determines) must not decide
// the outcome.
func findVersionJSON(root string) (string, error) {
	found := make([]string, 2) // index 0: version.json, 1: install_profile.json
	candidates := []string{"version.json", "install_profile.json"}
	err := filepath.Walk(root, func(path string, info os.FileInfo, walkErr error) error {
		if walkErr != nil || info.IsDir() {
			return nil
		}
		base := filepath.Base(path)
		for i, c := range candidates {
			if base == c && found[i] == "" {
				found[i] = path
			}
		}
		return nil
	})
	if err != nil {
		return "", errs.Wrap(errs.IoError, "walk unpacked installer", err).WithPath(root)
	}
	for _, path := range found {
		if path != "" {
			return path, nil
		}
	}
	return "", errs.New(errs.BadVersionJson, "installer archive contains no version json").WithPath(root)
}

// copyBundledMaven copies any maven/ directory tree an installer bundles
// (group/artifact/version/*.jar layout) straight into libraries/, matching
// the Maven coordinate paths the resolver's mavenFallback already computes.
func copyBundledMaven(scratch, librariesDir string) error {
	mavenRoot := filepath.Join(scratch, "maven")
	if _, err := os.Stat(mavenRoot); err != nil {
		return nil
	}
	return filepath.Walk(mavenRoot, func(path string, info os.FileInfo, walkErr error) error {
		if walkErr != nil || info.IsDir() {
			return walkErr
		}
		rel, err := filepath.Rel(mavenRoot, path)
		if err != nil {
			return err
		}
		dest := filepath.Join(librariesDir, rel)
		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return os.WriteFile(dest, data, 0o644)
	})
}
