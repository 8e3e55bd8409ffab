package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/lazy-scripts/cmd/lazyscripts"
	"github.com/arthur-debert/lazy-scripts/pkg/ui"
)

func main() {
	rootCmd := lazyscripts.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.FormatError(err, ui.DetectFormat(os.Stderr)))
		os.Exit(1)
	}
}
