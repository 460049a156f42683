// Package misc holds application identity used across the program for
// naming loggers, temporary files and the CLI entry itself.
package misc

const appName = "fig2html"

// Build time variables, expected to be set by the linker.
var (
	appVersion    = "0.0.0-dev"
	lastGitCommit = "unknown"
)

// GetAppName returns the short program name.
func GetAppName() string {
	return appName
}

// GetVersion returns program version as set during the build.
func GetVersion() string {
	return appVersion
}

// GetGitHash returns git commit hash of the source tree used during the build.
func GetGitHash() string {
	return lastGitCommit
}
