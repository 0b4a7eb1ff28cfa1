// cmd/metricspanel/main.go
package main

import (
	cmd "github.com/mwiater/metricspanel/internal/cli"
)

// executeCmd is swapped out in tests.
var executeCmd = cmd.Execute

// main starts the metricspanel CLI by delegating to the cobra root command.
// Configuration and logging are set up by the root command's persistent hooks.
func main() {
	executeCmd()
}
