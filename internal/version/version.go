package version

// Set at build time with -ldflags "-X github.com/redjax/droidutil/internal/version.Version=..."
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"

	RepoUser = "redjax"
	RepoName = "droidutil"
	RepoUrl  = "https://github.com/redjax/droidutil"
	Package  = "droidutil"
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

// GetPackageInfo returns a struct with information about the current build
func GetPackageInfo() PackageInfo {
	return PackageInfo{
		PackageName:        Package,
		RepoUrl:            RepoUrl,
		RepoUser:           RepoUser,
		RepoName:           RepoName,
		PackageVersion:     Version,
		PackageCommit:      Commit,
		PackageReleaseDate: Date,
	}
}

// String renders the one-line form printed by 'self version'.
func (p PackageInfo) String() string {
	return "package: " + p.PackageName + " version:" + p.PackageVersion +
		" commit:" + p.PackageCommit + " date:" + p.PackageReleaseDate
}
