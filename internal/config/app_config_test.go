package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadApplicationConfigurationMergesSources(t *testing.T) {
	testCases := []struct {
		name          string
		globalContent string
		localContent  string
		explicitPath  string
		expectStyle   string
		expectColor   *bool
		expectStats   *bool
	}{
		{
			name:          "local_overrides_global",
			globalContent: "style: unicode\ncolor: false\nstats: true\n",
			localContent:  "style: bold\ncolor: true\n",
			expectStyle:   "bold",
			expectColor:   boolPointer(true),
			expectStats:   boolPointer(true),
		},
		{
			name:          "global_only",
			globalContent: "style: minimal\n",
			expectStyle:   "minimal",
		},
		{
			name:         "explicit_path_replaces_local_lookup",
			explicitPath: "custom.yaml",
			expectStyle:  "unicode",
		},
		{
			name: "no_configuration_files",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			homeDirectory := t.TempDir()
			workingDirectory := t.TempDir()
			t.Setenv("HOME", homeDirectory)
			t.Setenv("USERPROFILE", homeDirectory)

			if testCase.globalContent != "" {
				globalDirectory := filepath.Join(homeDirectory, GlobalConfigDirectoryName)
				require.NoError(t, os.MkdirAll(globalDirectory, 0o755))
				require.NoError(t, os.WriteFile(filepath.Join(globalDirectory, ConfigFileName), []byte(testCase.globalContent), 0o600))
			}
			if testCase.localContent != "" {
				require.NoError(t, os.WriteFile(filepath.Join(workingDirectory, ConfigFileName), []byte(testCase.localContent), 0o600))
			}
			if testCase.explicitPath != "" {
				require.NoError(t, os.WriteFile(filepath.Join(workingDirectory, testCase.explicitPath), []byte("style: unicode\n"), 0o600))
			}

			loadedConfiguration, loadError := LoadApplicationConfiguration(LoadOptions{
				WorkingDirectory: workingDirectory,
				ExplicitFilePath: testCase.explicitPath,
			})
			require.NoError(t, loadError)
			require.Equal(t, testCase.expectStyle, loadedConfiguration.Style)
			require.Equal(t, testCase.expectColor, loadedConfiguration.Color)
			require.Equal(t, testCase.expectStats, loadedConfiguration.Stats)
		})
	}
}

func TestLoadApplicationConfigurationDeduplicatesPatternLists(t *testing.T) {
	homeDirectory := t.TempDir()
	workingDirectory := t.TempDir()
	t.Setenv("HOME", homeDirectory)
	t.Setenv("USERPROFILE", homeDirectory)

	localContent := "presets:\n  - python\n  - python\nexclude:\n  - '*.log'\n  - '*.log'\n  - vendor/\n"
	require.NoError(t, os.WriteFile(filepath.Join(workingDirectory, ConfigFileName), []byte(localContent), 0o600))

	loadedConfiguration, loadError := LoadApplicationConfiguration(LoadOptions{WorkingDirectory: workingDirectory})
	require.NoError(t, loadError)
	require.Equal(t, []string{"python"}, loadedConfiguration.Presets)
	require.Equal(t, []string{"*.log", "vendor/"}, loadedConfiguration.Exclude)
}

func TestLoadApplicationConfigurationRejectsMalformedFile(t *testing.T) {
	homeDirectory := t.TempDir()
	workingDirectory := t.TempDir()
	t.Setenv("HOME", homeDirectory)
	t.Setenv("USERPROFILE", homeDirectory)

	require.NoError(t, os.WriteFile(filepath.Join(workingDirectory, ConfigFileName), []byte(":\n  - not yaml"), 0o600))

	_, loadError := LoadApplicationConfiguration(LoadOptions{WorkingDirectory: workingDirectory})
	require.Error(t, loadError)
}

func boolPointer(value bool) *bool {
	pointer := value
	return &pointer
}
