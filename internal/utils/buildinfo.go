package utils

import (
	"runtime/debug"
)

const unknownVersion = "unknown"

// GetApplicationVersion determines the application version from Go build info.
// Module-aware builds installed with a version tag report that tag; development
// builds report the VCS revision when stamped, otherwise "unknown".
func GetApplicationVersion() string {
	buildInfo, buildInfoAvailable := debug.ReadBuildInfo()
	if !buildInfoAvailable {
		return unknownVersion
	}
	if buildInfo.Main.Version != "" && buildInfo.Main.Version != "(devel)" {
		return buildInfo.Main.Version
	}
	for _, buildSetting := range buildInfo.Settings {
		if buildSetting.Key == "vcs.revision" && buildSetting.Value != "" {
			return buildSetting.Value
		}
	}
	return unknownVersion
}
