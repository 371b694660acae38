// Package args assembles the final ordered token vector for the child
// process, per spec.md §4.L.
package args

import (
	"encoding/base64"
	"fmt"
	"os"
	"strconv"

	"github.com/brightforge/mlcore/internal/folder"
	"github.com/brightforge/mlcore/internal/options"
	"github.com/brightforge/mlcore/internal/platform"
	"github.com/brightforge/mlcore/internal/version"
)

// defaultIconAsset is the file name, under assets/, where a missing icon gets
// written — spec.md §4.L step 1.
const defaultIconAsset = "minecraft.icns"

// Build assembles the full JVM + game argument vector that should follow
// the java binary on the command line.
func Build(o options.Options, rv *version.Resolved, p platform.Platform, f folder.Folder) ([]string, error) {
	var tokens []string

	iconPath, err := ensureGameIcon(o, f)
	if err != nil {
		return nil, err
	}

	tokens = append(tokens, "-Dminecraft.client.jar="+f.VersionJar(rv.ID, ""))

	if p.Name == platform.OSX {
		tokens = append(tokens, "-Xdock:name="+o.GameDisplayName, "-Xdock:icon="+iconPath)
	}

	if o.MinMemoryMB > 0 {
		tokens = append(tokens, fmt.Sprintf("-Xms%dM", o.MinMemoryMB))
	}
	if o.MaxMemoryMB > 0 {
		tokens = append(tokens, fmt.Sprintf("-Xmx%dM", o.MaxMemoryMB))
	}

	if o.IgnoreInvalidCerts {
		tokens = append(tokens, "-Dfml.ignoreInvalidMinecraftCertificates=true")
	}
	if o.IgnorePatchDiscrepancies {
		tokens = append(tokens, "-Dfml.ignorePatchDiscrepancies=true")
	}

	tokens = append(tokens, gcFlags(o.GC)...)

	if o.YggdrasilAgent != nil {
		tokens = append(tokens, fmt.Sprintf("-javaagent:%s=%s", o.YggdrasilAgent.Jar, o.YggdrasilAgent.Server))
		tokens = append(tokens, "-Dauthlibinjector.side=client")
		if o.YggdrasilAgent.Prefetched != "" {
			encoded := base64.StdEncoding.EncodeToString([]byte(o.YggdrasilAgent.Prefetched))
			tokens = append(tokens, "-Dauthlibinjector.yggdrasil.prefetched="+encoded)
		}
	}

	tokens = append(tokens, hardeningFlags()...)

	nativeDir := o.NativeDir
	if nativeDir == "" {
		nativeDir = f.NativesRoot(rv.ID, p)
	}
	classpath := BuildClasspath(f, rv.ID, rv.Libraries, p, o.ExtraClasspath)

	jvmRepl := map[string]string{
		"natives_directory": nativeDir,
		"launcher_name":      o.LauncherName,
		"launcher_version":   o.LauncherVersion,
		"classpath":          classpath,
	}

	for _, t := range rv.JvmArgs {
		tokens = append(tokens, Substitute(t, jvmRepl))
	}

	if rv.Logging != nil && rv.Logging.Client != nil {
		logConfigPath := f.LogConfig(rv.Logging.Client.File.ID)
		if _, err := os.Stat(logConfigPath); err == nil {
			tokens = append(tokens, Substitute(rv.Logging.Client.Argument, map[string]string{"path": logConfigPath}))
		}
	}

	tokens = append(tokens, o.ExtraJVMArgs...)
	tokens = append(tokens, rv.MainClass)

	versionName := rv.ID
	if o.VersionNameOverride != "" {
		versionName = o.VersionNameOverride
	}
	versionType := rv.Type
	if o.VersionTypeOverride != "" {
		versionType = o.VersionTypeOverride
	}

	assetsIndexName := rv.Assets
	if assetsIndexName == "" {
		assetsIndexName = rv.AssetIndex.ID
	}

	gameRepl := map[string]string{
		"version_name":       versionName,
		"version_type":       versionType,
		"assets_root":        f.Assets(),
		"game_assets":        f.Assets(),
		"assets_index_name":  assetsIndexName,
		"game_directory":     o.GameDir,
		"auth_player_name":   o.Profile.Name,
		"auth_uuid":          o.Profile.UUID,
		"auth_access_token":  o.AccessToken,
		"user_properties":    o.Properties,
		"user_type":          string(o.UserType),
		"resolution_width":   strconv.Itoa(o.Width),
		"resolution_height":  strconv.Itoa(o.Height),
	}

	hasWidth := false
	for _, t := range rv.GameArgs {
		if t == "--width" {
			hasWidth = true
		}
		tokens = append(tokens, Substitute(t, gameRepl))
	}

	tokens = append(tokens, o.ExtraMCArgs...)

	if o.Server != nil {
		tokens = append(tokens, "--server", o.Server.Host)
		if o.Server.Port != 0 {
			tokens = append(tokens, "--port", strconv.Itoa(o.Server.Port))
		}
	}

	if !hasWidth {
		if o.Fullscreen {
			tokens = append(tokens, "--fullscreen")
		} else {
			tokens = append(tokens, "--width", strconv.Itoa(o.Width), "--height", strconv.Itoa(o.Height))
		}
	}

	return tokens, nil
}

// hardeningFlags is the fixed JVM block from spec.md §4.L step 8.
func hardeningFlags() []string {
	return []string{
		"-Xverify:none",
		"-XX:MaxInlineSize=420",
		"-XX:-UseAdaptiveSizePolicy",
		"-XX:-OmitStackTraceInFastThrow",
		"-XX:-DontCompileHugeMethods",
		"-Xss:1m",
		"-Xmn128m",
		"-Djava.rmi.server.useCodebaseOnly=true",
		"-Dcom.sun.jndi.rmi.object.trustURLCodebase=false",
		"-Dcom.sun.jndi.cosnaming.object.trustURLCodebase=false",
		"-Dlog4j2.formatMsgNoLookups=true",
	}
}

// ensureGameIcon implements spec.md §4.L step 1: write a bundled default
// icon if the caller didn't supply one, returning whatever path should be
// used for -Xdock:icon.
func ensureGameIcon(o options.Options, f folder.Folder) (string, error) {
	if o.GameIconPath != "" {
		return o.GameIconPath, nil
	}
	iconPath := f.Assets() + string(os.PathSeparator) + defaultIconAsset
	if _, err := os.Stat(iconPath); err == nil {
		return iconPath, nil
	}
	if err := os.MkdirAll(f.Assets(), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(iconPath, defaultIconBytes, 0o644); err != nil {
		return "", err
	}
	return iconPath, nil
}
