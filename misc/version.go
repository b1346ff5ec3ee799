// Package misc keeps build time information about the program.
package misc

// Set with -ldflags "-X flexstyle/misc.version=... -X flexstyle/misc.gitHash=..."
var (
	version = "dev"
	gitHash = "unknown"
)

const appName = "flexstyle"

// GetVersion returns program version.
func GetVersion() string {
	return version
}

// GetGitHash returns commit hash the program was built from.
func GetGitHash() string {
	return gitHash
}

// GetAppName returns program name used for logger names and file names.
func GetAppName() string {
	return appName
}
