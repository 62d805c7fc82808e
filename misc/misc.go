// Package misc has code which does not fit anywhere else.
package misc

import (
	"runtime/debug"
)

// GetAppName returns program name to be used in logs and messages.
func GetAppName() string {
	return "cmod"
}

// GetVersion returns program version from build info.
func GetVersion() string {
	if bi, ok := debug.ReadBuildInfo(); ok && len(bi.Main.Version) > 0 {
		return bi.Main.Version
	}
	return "(devel)"
}

// GetGitHash returns vcs revision program was built from.
func GetGitHash() string {
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}
