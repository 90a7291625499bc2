package main

import (
	"os"

	"github.com/usebeehiiv/beehiiv-mcp/cmd/beehiiv-mcp/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
