package install

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/brightforge/mlcore/events"
	"github.com/brightforge/mlcore/internal/download"
	"github.com/brightforge/mlcore/internal/errs"
)

// loaderArtifact is one library entry in a Fabric/Quilt loader profile.
type loaderArtifact struct {
	Name      string `json:"name"`
	URL       string `json:"url"`
	Downloads struct {
		Artifact struct {
			Path string `json:"path"`
			URL  string `json:"url"`
			SHA1 string `json:"sha1"`
		} `json:"artifact"`
	} `json:"downloads"`
}

// loaderProfile is the version profile a Fabric/Quilt meta server returns:
// a version JSON whose libraries add the loader and intermediary mappings
// on top of a vanilla inheritsFrom base (spec.md §1 "external collaborator").
type loaderProfile struct {
	ID           string           `json:"id"`
	InheritsFrom string           `json:"inheritsFrom"`
	MainClass    string           `json:"mainClass"`
	Libraries    []loaderArtifact `json:"libraries"`
	Arguments    struct {
		Game []string `json:"game"`
		JVM  []string `json:"jvm"`
	} `json:"arguments"`
}

// LoaderKind distinguishes the Fabric and Quilt meta endpoints, which share
// an identical profile shape.
type LoaderKind string

const (
	Fabric LoaderKind = "fabric"
	Quilt  LoaderKind = "quilt"
)

func (k LoaderKind) metaBaseURL() string {
	switch k {
	case Quilt:
		return "https://meta.quiltmc.org/v3/versions/loader"
	default:
		return "https://meta.fabricmc.net/v2/versions/loader"
	}
}

// InstallLoader installs the vanilla base version, fetches the loader's
// version profile, persists it as a standalone version JSON under
// versions/<profile id>/, and downloads the loader-specific libraries. The
// resulting version id inherits from mcVersion and can be resolved and
// launched exactly like any other version (spec.md §1).
func (ins *Installer) InstallLoader(ctx context.Context, kind LoaderKind, mcVersion, loaderVersion string) (string, error) {
	if _, err := ins.Install(ctx, mcVersion, events.DownloadObserver{}); err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/%s/%s/profile/json", kind.metaBaseURL(), mcVersion, loaderVersion)
	body, err := ins.Manifest.FetchVersionJSON(url)
	if err != nil {
		return "", err
	}

	var profile loaderProfile
	if err := json.Unmarshal(body, &profile); err != nil {
		return "", errs.Wrap(errs.JsonError, "parse loader profile", err).WithURL(url)
	}
	if profile.ID == "" {
		return "", errs.New(errs.BadVersionJson, "loader profile has no id").WithURL(url)
	}

	versionDir := ins.Folder.VersionRoot(profile.ID)
	if err := os.MkdirAll(versionDir, 0o755); err != nil {
		return "", errs.Wrap(errs.IoError, "create loader version directory", err).WithPath(versionDir)
	}
	versionJSONPath := ins.Folder.VersionJSON(profile.ID)
	if err := os.WriteFile(versionJSONPath, body, 0o644); err != nil {
		return "", errs.Wrap(errs.IoError, "write loader version json", err).WithPath(versionJSONPath)
	}

	result := download.Run(ctx, ins.loaderLibraryTasks(profile.Libraries), true, ins.Config.DownloadParallelism, events.DownloadObserver{})
	if result.Failed > 0 {
		logrus.WithFields(logrus.Fields{"loader": kind, "version": profile.ID, "failed": result.Failed}).Warn("some loader libraries failed to download")
	}

	logrus.WithFields(logrus.Fields{"loader": kind, "mcVersion": mcVersion, "loaderVersion": loaderVersion, "id": profile.ID}).Info("loader install complete")
	return profile.ID, nil
}

func (ins *Installer) loaderLibraryTasks(libs []loaderArtifact) []download.Task {
	var tasks []download.Task
	for _, lib := range libs {
		if lib.Downloads.Artifact.URL == "" || lib.Downloads.Artifact.Path == "" {
			continue
		}
		tasks = append(tasks, download.Task{
			URL:  lib.Downloads.Artifact.URL,
			Dest: ins.Folder.LibraryPath(lib.Downloads.Artifact.Path),
			SHA1: lib.Downloads.Artifact.SHA1,
		})
	}
	return tasks
}
