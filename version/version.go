package version

import "runtime/debug"

// Version can be set at build time:
// go build -ldflags "-X github.com/rackshelf/rackshelf/version.Version=$(git describe --dirty)"
var Version string

// VersionOrHash returns Version when set, otherwise the short VCS revision
// recorded in the build info, otherwise "unknown".
func VersionOrHash() string {
	if Version != "" {
		return Version
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	var hash string
	modified := false
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			if len(setting.Value) >= 7 {
				hash = setting.Value[:7]
			}
		case "vcs.modified":
			modified = setting.Value == "true"
		}
	}
	if hash == "" {
		return "unknown"
	}
	if modified {
		return hash + "-dirty"
	}
	return hash
}
