// Package install drives the vanilla installer (spec.md §4.J): combine the
// version parser/resolver and the concurrent downloader to install a
// version from scratch, and house the mod-loader external collaborators
// (Fabric/Quilt/Forge/OptiFine) that feed additional version JSONs back
// into the resolver (spec.md §1: "treated as external collaborators").
package install

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/brightforge/mlcore/events"
	"github.com/brightforge/mlcore/internal/config"
	"github.com/brightforge/mlcore/internal/download"
	"github.com/brightforge/mlcore/internal/errs"
	"github.com/brightforge/mlcore/internal/folder"
	"github.com/brightforge/mlcore/internal/manifest"
	"github.com/brightforge/mlcore/internal/platform"
	"github.com/brightforge/mlcore/internal/version"
)

// Installer wires the manifest client, folder layout, platform probe, and
// deployment configuration together for the vanilla install path.
type Installer struct {
	Folder   folder.Folder
	Platform platform.Platform
	Config   *config.Config
	Manifest *manifest.Client
}

// New builds an Installer from a game root and deployment configuration.
func New(root string, p platform.Platform, cfg *config.Config) *Installer {
	return &Installer{
		Folder:   folder.New(root),
		Platform: p,
		Config:   cfg,
		Manifest: manifest.NewClient(cfg.HTTPRetryMax),
	}
}

// Install drives spec.md §4.J steps 1–6: probe (already done at
// construction), locate the manifest entry, fetch + persist the version
// JSON, resolve it, build the download task list, and run the concurrent
// downloader.
func (ins *Installer) Install(ctx context.Context, versionID string, obs events.DownloadObserver) (*version.Resolved, error) {
	m, err := ins.Manifest.Fetch(ins.Config.ManifestURL)
	if err != nil {
		return nil, err
	}
	entry, err := m.FindVersion(versionID)
	if err != nil {
		return nil, err
	}

	body, err := ins.Manifest.FetchVersionJSON(entry.URL)
	if err != nil {
		return nil, err
	}

	versionJSONPath := ins.Folder.VersionJSON(versionID)
	if err := os.MkdirAll(ins.Folder.VersionRoot(versionID), 0o755); err != nil {
		return nil, errs.Wrap(errs.IoError, "create version directory", err).WithPath(ins.Folder.VersionRoot(versionID))
	}
	// Write version JSON to disk before scheduling any fetch, per spec.md
	// §5 ordering guarantee: a crash here leaves a resumable state.
	if err := os.WriteFile(versionJSONPath, body, 0o644); err != nil {
		return nil, errs.Wrap(errs.IoError, "write version json", err).WithPath(versionJSONPath)
	}

	rv, err := version.Resolve(ins.Folder, versionID, ins.Platform, ins.Config.ForgeMavenURL)
	if err != nil {
		return nil, err
	}

	return rv, ins.InstallDependencies(ctx, rv, obs)
}

// InstallDependencies is spec.md §4.J's "same as above but starting from an
// already-resolved version (skips steps 2–4)": it builds and runs the
// download task list for a version that's already been resolved.
func (ins *Installer) InstallDependencies(ctx context.Context, rv *version.Resolved, obs events.DownloadObserver) error {
	tasks, err := ins.buildTasks(rv)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{"version": rv.ID, "tasks": len(tasks), "size": download.HumanizeBytes(sumSizes(tasks))}).Info("installing dependencies")
	result := download.Run(ctx, tasks, true, ins.Config.DownloadParallelism, obs)
	if result.Failed > 0 {
		logrus.WithFields(logrus.Fields{"version": rv.ID, "failed": result.Failed}).Warn("some download tasks failed")
	}

	nativesDir := ins.Folder.NativesRoot(rv.ID, ins.Platform)
	if err := ExtractNatives(rv.Libraries, ins.Folder.LibraryPath, nativesDir); err != nil {
		return err
	}
	return nil
}

func sumSizes(tasks []download.Task) int64 {
	var n int64
	for _, t := range tasks {
		n += t.Size
	}
	return n
}

func (ins *Installer) buildTasks(rv *version.Resolved) ([]download.Task, error) {
	var tasks []download.Task

	if client, ok := rv.Downloads["client"]; ok {
		tasks = append(tasks, download.Task{
			URL:  client.URL,
			Dest: ins.Folder.VersionJar(rv.ID, ""),
			SHA1: client.SHA1,
			Size: client.Size,
		})
	}

	for _, lib := range rv.Libraries {
		if lib.Path == "" {
			continue
		}
		dest := ins.Folder.LibraryPath(lib.Path)
		tasks = append(tasks, download.Task{URL: lib.URL, Dest: dest, SHA1: lib.SHA1, Size: lib.Size})
	}

	assetIndexDest := ins.Folder.AssetIndex(rv.AssetIndex.ID)
	tasks = append(tasks, download.Task{URL: rv.AssetIndex.URL, Dest: assetIndexDest, SHA1: rv.AssetIndex.SHA1, Size: rv.AssetIndex.Size})

	// The asset index itself must exist before its objects can be enqueued;
	// if it was already downloaded by a prior run, read it straight from
	// disk instead of fetching it twice.
	assetTasks, err := ins.assetObjectTasks(assetIndexDest, rv.AssetIndex.URL, rv.AssetIndex.SHA1)
	if err != nil {
		logrus.WithError(err).Warn("could not enumerate asset objects ahead of download; asset index will still be fetched")
	} else {
		tasks = append(tasks, assetTasks...)
	}

	return tasks, nil
}

// assetObjectTasks downloads (or reuses a cached copy of) the asset index
// so each object inside it can be turned into its own download task.
func (ins *Installer) assetObjectTasks(indexDest, indexURL, indexSHA1 string) ([]download.Task, error) {
	var body []byte
	var err error
	if data, statErr := os.ReadFile(indexDest); statErr == nil {
		body = data
	} else {
		body, err = ins.Manifest.FetchVersionJSON(indexURL)
		if err != nil {
			return nil, err
		}
	}

	idx, err := parseAssetIndex(body)
	if err != nil {
		return nil, errs.Wrap(errs.JsonError, "parse asset index", err).WithURL(indexURL)
	}

	var tasks []download.Task
	for _, obj := range idx.Objects {
		tasks = append(tasks, download.Task{
			URL:  ins.Config.AssetsBaseURL + "/" + obj.Hash[:2] + "/" + obj.Hash,
			Dest: ins.Folder.AssetObject(obj.Hash),
			SHA1: obj.Hash,
			Size: obj.Size,
		})
	}
	return tasks, nil
}
