// Command vkrustgen translates the Vulkan object schema - Python dataclass
// and enum declarations - into an equivalent Rust module.
package main

import (
	"fmt"
	"os"

	"vkrustgen/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
