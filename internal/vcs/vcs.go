package vcs

import (
	"fmt"
	"runtime/debug"
)

// Version describes the running build: the VCS revision when the binary was
// built from a checkout, otherwise the module version.
func Version() string {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}

	return describe(buildInfo)
}

func describe(info *debug.BuildInfo) string {
	var revision, at string
	var modified bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.time":
			at = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}

	if revision == "" {
		if info.Main.Version == "" {
			return "unknown"
		}
		return info.Main.Version
	}

	if len(revision) > 12 {
		revision = revision[:12]
	}
	if modified {
		revision += "-dirty"
	}
	if at != "" {
		return fmt.Sprintf("%s (%s)", revision, at)
	}

	return revision
}
