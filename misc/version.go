// Package misc keeps program identity: name, version and source revision.
package misc

import (
	"runtime/debug"
	"sync"
)

const appName = "epubtoc"

// set with -ldflags "-X github.com/simp-lee/epubtoc/misc.version=..."
var (
	version = ""
	gitHash = ""
)

var buildInfo = sync.OnceValue(func() (info struct{ version, revision string }) {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	if v := bi.Main.Version; v != "" && v != "(devel)" {
		info.version = v
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" {
			info.revision = s.Value
		}
	}
	return
})

func GetAppName() string {
	return appName
}

// GetVersion prefers the linker supplied version, then the module version.
func GetVersion() string {
	if version != "" {
		return version
	}
	if v := buildInfo().version; v != "" {
		return v
	}
	return "dev"
}

func GetGitHash() string {
	if gitHash != "" {
		return gitHash
	}
	if r := buildInfo().revision; r != "" {
		return r
	}
	return "unknown"
}
