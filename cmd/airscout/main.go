// Command airscout scans for wireless networks visible to the host and
// prints them ranked by signal quality.
package main

import (
	"github.com/airscout/airscout/cmd/cli"
)

// Build information - set by ldflags during build.
var (
	version   = "dev"
	commit    = "none"
	buildTime = "unknown"
)

func main() {
	cli.SetVersion(version, commit, buildTime)
	cli.Execute()
}
