package vcs

import (
	"runtime/debug"
)

// Revision returns the VCS revision the binary was built from, with a
// "-dirty" suffix for modified trees. It is empty outside a VCS build.
func Revision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	return revisionFromSettings(info.Settings)
}

func revisionFromSettings(settings []debug.BuildSetting) string {
	var revision string
	var modified bool

	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}

	if revision != "" && modified {
		return revision + "-dirty"
	}
	return revision
}
