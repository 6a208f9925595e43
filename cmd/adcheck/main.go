// Command adcheck is the offline CLI: compare a fleet CSV against a
// manifest of extracted directives without running the service.
package main

import (
	"fmt"
	"os"

	"adcheck/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
