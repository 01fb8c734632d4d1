package app

import (
	"fmt"
	"io"
	"runtime"
)

// Version information, set at build time with
// -ldflags "-X github.com/agbru/eztimer/internal/app.Version=v1.2.3".
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// HasVersionFlag reports whether args ask for the version.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "-version", "--version", "-V":
			return true
		}
	}
	return false
}

// PrintVersion writes version details to out.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "eztimer %s\n", Version)
	fmt.Fprintf(out, "Commit: %s\n", Commit)
	fmt.Fprintf(out, "Built: %s\n", BuildDate)
	fmt.Fprintf(out, "Go: %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
