package version

import (
	"fmt"
	"io"
)

func writePackageInfo(w io.Writer, pkgInfo PackageInfo) error {
	_, err := fmt.Fprintf(w,
		"Program: %s\nOwner: %s\nRepository Name: %s\nRepository URL: %s\nVersion: %s\nCommit: %s\nRelease Date: %s\n",
		pkgInfo.PackageName,
		pkgInfo.RepoUser,
		pkgInfo.RepoName,
		pkgInfo.RepoUrl,
		pkgInfo.PackageVersion,
		pkgInfo.PackageCommit,
		pkgInfo.PackageReleaseDate,
	)
	return err
}
