/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package serviceroulette

import (
	"runtime"
	"runtime/debug"
)

// Build metadata. Release builds set these with -ldflags "-X ...";
// anything left empty is filled from the binary's embedded build info.
var (
	Version   = "1.0.0"
	GitCommit = ""
	BuildDate = ""
)

// VersionInfo describes the running binary. It is printed by the -version
// flag of cmd/roulette.
type VersionInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	BuildDate string `json:"buildDate"`
	GoVersion string `json:"goVersion"`
}

// GetVersionInfo returns the version of the running binary.
func GetVersionInfo() VersionInfo {
	info := VersionInfo{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		fillFromBuildSettings(&info, bi.Settings)
	}
	if info.GitCommit == "" {
		info.GitCommit = "unknown"
	}
	if info.BuildDate == "" {
		info.BuildDate = "unknown"
	}
	return info
}

// fillFromBuildSettings uses the VCS stamp the go command embeds when
// building inside a checkout. Values set at link time win.
func fillFromBuildSettings(info *VersionInfo, settings []debug.BuildSetting) {
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			if info.GitCommit == "" {
				info.GitCommit = s.Value
			}
		case "vcs.time":
			if info.BuildDate == "" {
				info.BuildDate = s.Value
			}
		}
	}
}
