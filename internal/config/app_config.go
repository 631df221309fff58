package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/handsomejack/treetool/internal/utils"
)

const (
	// ConfigFileName is the application configuration file name.
	ConfigFileName = ".treetool.yaml"
	// GlobalConfigDirectoryName is the directory under the user home
	// holding the global configuration file.
	GlobalConfigDirectoryName = ".treetool"
)

// LoadOptions controls how application configuration is discovered.
type LoadOptions struct {
	WorkingDirectory string
	ExplicitFilePath string
}

// ApplicationConfiguration holds invocation defaults read from
// configuration files. Every field is optional; explicit command-line
// flags always win over configured values.
type ApplicationConfiguration struct {
	Style      string   `mapstructure:"style"`
	Color      *bool    `mapstructure:"color"`
	Stats      *bool    `mapstructure:"stats"`
	Alphabetic *bool    `mapstructure:"alphabetic"`
	NoHidden   *bool    `mapstructure:"no_hidden"`
	Presets    []string `mapstructure:"presets"`
	Exclude    []string `mapstructure:"exclude"`
}

// LoadApplicationConfiguration loads configuration from the global file
// under the user home directory and a local file in the working
// directory, merging local values over global ones. Missing files are
// not errors; this is a read-only defaults layer.
func LoadApplicationConfiguration(options LoadOptions) (ApplicationConfiguration, error) {
	workingDirectory := options.WorkingDirectory
	if workingDirectory == "" {
		currentDirectory, workingDirectoryError := os.Getwd()
		if workingDirectoryError != nil {
			return ApplicationConfiguration{}, fmt.Errorf("determine working directory: %w", workingDirectoryError)
		}
		workingDirectory = currentDirectory
	}

	var merged ApplicationConfiguration

	if homeDirectory, homeError := os.UserHomeDir(); homeError == nil && homeDirectory != "" {
		globalPath := filepath.Join(homeDirectory, GlobalConfigDirectoryName, ConfigFileName)
		globalConfig, loadError := loadConfigurationFromPath(globalPath)
		if loadError != nil {
			return ApplicationConfiguration{}, loadError
		}
		merged = merged.Merge(globalConfig)
	}

	localPath := resolveLocalConfigPath(workingDirectory, options.ExplicitFilePath)
	if localPath != "" {
		localConfig, loadError := loadConfigurationFromPath(localPath)
		if loadError != nil {
			return ApplicationConfiguration{}, loadError
		}
		merged = merged.Merge(localConfig)
	}

	merged.Presets = utils.DeduplicatePatterns(merged.Presets)
	merged.Exclude = utils.DeduplicatePatterns(merged.Exclude)

	return merged, nil
}

func resolveLocalConfigPath(workingDirectory, explicitPath string) string {
	if explicitPath != "" {
		if filepath.IsAbs(explicitPath) {
			return explicitPath
		}
		return filepath.Join(workingDirectory, explicitPath)
	}
	return filepath.Join(workingDirectory, ConfigFileName)
}

func loadConfigurationFromPath(path string) (ApplicationConfiguration, error) {
	if path == "" {
		return ApplicationConfiguration{}, nil
	}
	info, statError := os.Stat(path)
	if statError != nil {
		if os.IsNotExist(statError) {
			return ApplicationConfiguration{}, nil
		}
		return ApplicationConfiguration{}, fmt.Errorf("stat configuration %s: %w", path, statError)
	}
	if info.IsDir() {
		return ApplicationConfiguration{}, fmt.Errorf("configuration path %s is a directory", path)
	}

	reader := viper.New()
	reader.SetConfigFile(path)
	if readError := reader.ReadInConfig(); readError != nil {
		return ApplicationConfiguration{}, fmt.Errorf("read configuration from %s: %w", path, readError)
	}
	var configuration ApplicationConfiguration
	if decodeError := reader.Unmarshal(&configuration); decodeError != nil {
		return ApplicationConfiguration{}, fmt.Errorf("decode configuration from %s: %w", path, decodeError)
	}
	return configuration, nil
}

// Merge overlays override onto the receiver returning the combined configuration.
func (configuration ApplicationConfiguration) Merge(override ApplicationConfiguration) ApplicationConfiguration {
	result := configuration
	if override.Style != "" {
		result.Style = override.Style
	}
	if override.Color != nil {
		result.Color = cloneBool(override.Color)
	}
	if override.Stats != nil {
		result.Stats = cloneBool(override.Stats)
	}
	if override.Alphabetic != nil {
		result.Alphabetic = cloneBool(override.Alphabetic)
	}
	if override.NoHidden != nil {
		result.NoHidden = cloneBool(override.NoHidden)
	}
	if len(override.Presets) > 0 {
		result.Presets = append([]string{}, utils.DeduplicatePatterns(override.Presets)...)
	}
	if len(override.Exclude) > 0 {
		result.Exclude = append([]string{}, utils.DeduplicatePatterns(override.Exclude)...)
	}
	return result
}

func cloneBool(value *bool) *bool {
	if value == nil {
		return nil
	}
	cloned := *value
	return &cloned
}
