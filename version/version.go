package version

import "runtime/debug"

// Version can be set at build time:
// go build -ldflags "-X github.com/vsariola/oido/version.Version=$(git describe --dirty)"
var Version string

// VersionOrHash is Version, or the short VCS revision of the build when
// Version was not set.
var VersionOrHash = func() string {
	if Version != "" {
		return Version
	}
	return revision()
}()

func revision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	var rev string
	dirty := false
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if len(rev) > 7 {
		rev = rev[:7]
	}
	if rev != "" && dirty {
		rev += "-dirty"
	}
	return rev
}
