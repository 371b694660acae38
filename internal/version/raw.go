// Package version deserializes version JSON, walks inheritance chains,
// merges fields, and produces the resolved library/argument lists used by
// the launch-argument assembler. This covers spec.md §4.F (parser) and
// §4.H (library & argument resolver).
package version

import (
	"encoding/json"

	"github.com/brightforge/mlcore/internal/rules"
)

// ArtifactDownload is one concrete downloadable artifact.
type ArtifactDownload struct {
	Path string `json:"path"`
	URL  string `json:"url"`
	SHA1 string `json:"sha1"`
	Size int64  `json:"size"`
}

// LibraryDownloads holds the main artifact plus OS-classifier artifacts.
type LibraryDownloads struct {
	Artifact    ArtifactDownload            `json:"artifact"`
	Classifiers map[string]ArtifactDownload `json:"classifiers,omitempty"`
}

// RawLibrary is a library entry exactly as it appears in a version JSON.
type RawLibrary struct {
	Name      string              `json:"name"`
	URL       string              `json:"url,omitempty"`
	Downloads LibraryDownloads    `json:"downloads,omitempty"`
	Rules     []rules.Rule        `json:"rules,omitempty"`
	Natives   map[string]string   `json:"natives,omitempty"`
	Extract   map[string][]string `json:"extract,omitempty"`
}

// ArgumentEntry is a single templated argument: either a bare string or a
// {value, rules} structured entry, per spec.md §3.
type ArgumentEntry struct {
	IsPlain bool
	Plain   string
	Value   []string
	Rules   []rules.Rule
}

func (a *ArgumentEntry) UnmarshalJSON(data []byte) error {
	var plain string
	if err := json.Unmarshal(data, &plain); err == nil {
		a.IsPlain = true
		a.Plain = plain
		return nil
	}

	var structured struct {
		Value json.RawMessage `json:"value"`
		Rules []rules.Rule    `json:"rules"`
	}
	if err := json.Unmarshal(data, &structured); err != nil {
		return err
	}
	a.Rules = structured.Rules

	var single string
	if err := json.Unmarshal(structured.Value, &single); err == nil {
		a.Value = []string{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(structured.Value, &many); err != nil {
		return err
	}
	a.Value = many
	return nil
}

// Arguments is the structured {game, jvm} argument template.
type Arguments struct {
	Game []ArgumentEntry `json:"game,omitempty"`
	JVM  []ArgumentEntry `json:"jvm,omitempty"`
}

// AssetIndexRef points at the asset index JSON for a version.
type AssetIndexRef struct {
	ID        string `json:"id"`
	SHA1      string `json:"sha1"`
	URL       string `json:"url"`
	Size      int64  `json:"size"`
	TotalSize int64  `json:"totalSize"`
}

// JavaVersion names the required runtime component, defaulting to
// jre-legacy/8 per spec.md §3.
type JavaVersion struct {
	Component string `json:"component"`
	Major     int    `json:"majorVersion"`
}

// DownloadEntry is one named download (client, server, client_mappings, ...).
type DownloadEntry struct {
	SHA1 string `json:"sha1"`
	Size int64  `json:"size"`
	URL  string `json:"url"`
}

// Logging is the optional client logging-config section.
type Logging struct {
	Client *struct {
		Argument string `json:"argument"`
		File     struct {
			ID  string `json:"id"`
			URL string `json:"url"`
		} `json:"file"`
	} `json:"client,omitempty"`
}

// Raw is the direct deserialization of a version JSON (spec.md §3 "Raw
// version record"). All fields are optional for inheritance layering: the
// pointer fields tell "absent" from "present", while for string and int
// fields an empty or zero value counts as absent when merging.
type Raw struct {
	ID                     string            `json:"id"`
	InheritsFrom           string            `json:"inheritsFrom,omitempty"`
	Type                   string            `json:"type,omitempty"`
	Time                   string            `json:"time,omitempty"`
	ReleaseTime            string            `json:"releaseTime,omitempty"`
	MinimumLauncherVersion int               `json:"minimumLauncherVersion,omitempty"`
	MinecraftArguments     string            `json:"minecraftArguments,omitempty"`
	Arguments              *Arguments        `json:"arguments,omitempty"`
	MainClass              string            `json:"mainClass,omitempty"`
	Libraries              []RawLibrary      `json:"libraries,omitempty"`
	AssetIndex             *AssetIndexRef    `json:"assetIndex,omitempty"`
	Assets                 string            `json:"assets,omitempty"`
	Downloads              map[string]DownloadEntry `json:"downloads,omitempty"`
	Logging                *Logging          `json:"logging,omitempty"`
	JavaVersion            *JavaVersion      `json:"javaVersion,omitempty"`
	ClientVersion          string            `json:"clientVersion,omitempty"`
}

// ParseRaw deserializes a single version JSON document.
func ParseRaw(data []byte) (*Raw, error) {
	var r Raw
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	return &r, nil
}
