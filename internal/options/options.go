// Package options is the launch options record (spec.md §3/§4.K): a plain
// data record with caller-supplied parameters and documented defaults. No
// behaviour lives here beyond construction.
package options

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/brightforge/mlcore/internal/errs"
	"github.com/brightforge/mlcore/internal/folder"
	"github.com/brightforge/mlcore/internal/version"
)

type UserType string

const (
	UserMojang UserType = "mojang"
	UserLegacy UserType = "legacy"
)

type ProcessPriority string

const (
	PriorityHigh    ProcessPriority = "high"
	PriorityAbove   ProcessPriority = "above"
	PriorityNormal  ProcessPriority = "normal"
	PriorityBelow   ProcessPriority = "below"
	PriorityLow     ProcessPriority = "low"
)

type GC string

const (
	GCSerial      GC = "serial"
	GCParallel    GC = "parallel"
	GCParallelOld GC = "parallel_old"
	GCG1          GC = "g1"
	GCZ           GC = "z"
)

// GameProfile identifies the player launching the game.
type GameProfile struct {
	Name string
	UUID string
}

// Server is an optional autoconnect target.
type Server struct {
	Host string
	Port int
}

// YggdrasilAgent configures an auth-rewriting Java agent
// (https://github.com/yushijinhun/authlib-injector).
type YggdrasilAgent struct {
	Jar        string
	Server     string
	Prefetched string
}

// Options holds every caller-supplied launch parameter from spec.md §3.
type Options struct {
	Version *version.Raw

	Profile      GameProfile
	AccessToken  string
	UserType     UserType
	Properties   string
	LauncherName string
	LauncherVersion string

	VersionNameOverride string
	VersionTypeOverride string
	GameIconPath        string
	GameDisplayName     string

	GameDir      string
	ResourceDir  string
	JavaBinary   string

	MinMemoryMB int
	MaxMemoryMB int

	Server *Server

	Width      int
	Height     int
	Fullscreen bool

	ExtraJVMArgs []string
	ExtraMCArgs  []string

	IsDemo bool

	NativeDir string

	IgnoreInvalidCerts      bool
	IgnorePatchDiscrepancies bool

	ExtraClasspath []string

	Features map[string]bool

	ProcessPriority ProcessPriority

	YggdrasilAgent *YggdrasilAgent

	GC GC
}

// New constructs Options for versionID rooted at f, applying the defaults
// documented in spec.md §3. Callers mutate the returned value before
// launch to override any default (min/max memory, window size, GC, ...).
// It reads and parses versions/<id>/<id>.json into Version, per spec.md
// §4.K, and fails with errs.CoreError if that file is missing or invalid.
func New(versionID string, f folder.Folder) (Options, error) {
	path := f.VersionJSON(versionID)
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, errs.Wrap(errs.IoError, "read version json", err).WithPath(path).WithVersion(versionID)
	}
	raw, err := version.ParseRaw(data)
	if err != nil {
		return Options{}, errs.Wrap(errs.JsonError, "parse version json", err).WithPath(path).WithVersion(versionID)
	}

	return Options{
		Version: raw,
		Profile: GameProfile{
			Name: "Player",
			UUID: uuid.New().String(),
		},
		AccessToken:     uuid.New().String(),
		UserType:        UserLegacy,
		Properties:      "{}",
		LauncherName:    "mlcore",
		LauncherVersion: "0.0.0",
		GameDisplayName: "Minecraft",
		GameDir:         f.VersionRoot(versionID),
		ResourceDir:     f.Root,
		JavaBinary:      "java",
		MinMemoryMB:     128,
		MaxMemoryMB:     2048,
		Width:           854,
		Height:          480,
		Fullscreen:      false,
		Features:        map[string]bool{},
		ProcessPriority: PriorityNormal,
		GC:              GCG1,
		NativeDir:       filepath.Join(f.VersionRoot(versionID), "natives"),
	}, nil
}
