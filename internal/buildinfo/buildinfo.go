// Package buildinfo reports the version the binary was built with.
//
// The variables are set at link time:
//
//	go build -ldflags "-X github.com/dmitrijs2005/finsync/internal/buildinfo.Version=v1.2.0 \
//	  -X github.com/dmitrijs2005/finsync/internal/buildinfo.Date=2025-01-01 \
//	  -X github.com/dmitrijs2005/finsync/internal/buildinfo.Commit=abc123"
package buildinfo

import (
	"fmt"
	"io"
)

const notAvailable = "N/A"

var (
	Version string
	Date    string
	Commit  string
)

func orNA(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}

// PrintBuildData writes the build version, date and commit to w.
func PrintBuildData(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", orNA(Version))
	fmt.Fprintf(w, "Build date: %s\n", orNA(Date))
	fmt.Fprintf(w, "Build commit: %s\n", orNA(Commit))
}
