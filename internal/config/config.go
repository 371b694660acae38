// Package config loads deployment configuration (download base URLs,
// concurrency bound, retry counts, log level) through viper, per
// SPEC_FULL.md §4.N. Precedence, ascending: built-in defaults, a
// mlcore.yaml/.toml file on viper's search path, MLCORE_-prefixed
// environment variables. Load takes no caller-supplied override values.
package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config is the resolved set of deployment knobs the rest of mlcore reads.
type Config struct {
	DownloadBaseURL    string
	AssetsBaseURL      string
	ForgeMavenURL      string
	ManifestURL        string
	DownloadParallelism int
	HTTPRetryMax       int
	LogLevel           string
	LogFormat          string
}

// Load reads configuration from the environment and an optional config
// file named mlcore (yaml/toml/json, viper's usual search). configPaths
// are additional directories to search, most often ".".
func Load(configPaths ...string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("MLCORE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("download.base_url", "https://piston-meta.mojang.com")
	v.SetDefault("download.assets_base_url", "https://resources.download.minecraft.net")
	v.SetDefault("download.forge_maven_url", "https://maven.minecraftforge.net")
	v.SetDefault("download.manifest_url", "https://launchermeta.mojang.com/mc/game/version_manifest.json")
	v.SetDefault("download.parallelism", 16)
	v.SetDefault("http.retry_max", 3)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetConfigName("mlcore")
	for _, p := range configPaths {
		v.AddConfigPath(p)
	}
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	return &Config{
		DownloadBaseURL:     v.GetString("download.base_url"),
		AssetsBaseURL:       v.GetString("download.assets_base_url"),
		ForgeMavenURL:       v.GetString("download.forge_maven_url"),
		ManifestURL:         v.GetString("download.manifest_url"),
		DownloadParallelism: v.GetInt("download.parallelism"),
		HTTPRetryMax:        v.GetInt("http.retry_max"),
		LogLevel:            v.GetString("log.level"),
		LogFormat:           v.GetString("log.format"),
	}, nil
}

// Default loads configuration with a config search path where no file is
// found, so it returns the built-in defaults overlaid with any MLCORE_
// environment variables — useful for tests and as a fallback when Load fails.
func Default() *Config {
	cfg, _ := Load("/nonexistent-path-so-no-file-is-found")
	return cfg
}
