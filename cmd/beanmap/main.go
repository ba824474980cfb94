// Package main provides the CLI entrypoint for beanmap.
//
// beanmap compiles declarative bean-mapping specifications:
//   - Reads YAML or TOML mapping files
//   - Resolves every class name against a type registry or analyzed Go packages
//   - Validates field names, allowed exceptions and converters
//   - Prints the compiled model or a diagnostics report
package main

import (
	"fmt"
	"os"

	"beanmap/internal/cli"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
