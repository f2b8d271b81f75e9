package version

import "runtime/debug"

var (
	// Set at build time with -ldflags "-X github.com/redjax/platinfo/internal/version.Version=..."
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"

	// Change this for new packages
	RepoUser = "redjax"
	RepoName = "platinfo"
	RepoUrl  = "https://github.com/redjax/platinfo"
	Package  = "platinfo"
)

type PackageInfo struct {
	PackageName        string
	RepoUrl            string
	RepoUser           string
	RepoName           string
	PackageVersion     string
	PackageCommit      string
	PackageReleaseDate string
}

// GetPackageInfo returns a struct with information about the current package
func GetPackageInfo() PackageInfo {
	return PackageInfo{
		PackageName:        Package,
		RepoUrl:            RepoUrl,
		RepoUser:           RepoUser,
		RepoName:           RepoName,
		PackageVersion:     resolveVersion(Version, debug.ReadBuildInfo),
		PackageCommit:      Commit,
		PackageReleaseDate: Date,
	}
}

// resolveVersion falls back to the module version recorded by
// `go install module@version` when no version was injected at link time.
func resolveVersion(linked string, readBuildInfo func() (*debug.BuildInfo, bool)) string {
	if linked != "dev" {
		return linked
	}

	info, ok := readBuildInfo()
	if !ok || info == nil {
		return linked
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}

	return linked
}
