// Package version resolves the build's identity for logs, the liveness
// probe and outbound User-Agent headers. Resolution order: -ldflags
// override, then VCS metadata from debug.BuildInfo, then "dev".
package version

import "runtime/debug"

// AppName prefixes version strings and User-Agent headers.
const AppName = "argus"

// gitCommitOverride can be injected with
//
//	-ldflags "-X github.com/argus-soc/argus/pkg/version.gitCommitOverride=<sha>"
//
// for container builds where the .git directory is not part of the build
// context.
var gitCommitOverride string

// GitCommit is the short commit hash this binary was built from, or "dev"
// when no VCS metadata is available (go test, non-git checkouts).
var GitCommit = resolveCommit()

func resolveCommit() string {
	if gitCommitOverride != "" {
		return shorten(gitCommitOverride)
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				return shorten(s.Value)
			}
		}
	}
	return "dev"
}

func shorten(rev string) string {
	if len(rev) > 8 {
		return rev[:8]
	}
	return rev
}

// Full returns "argus/<commit>".
func Full() string {
	return AppName + "/" + GitCommit
}
