//go:build !ebiten

package main

import (
	"flag"
	"fmt"
	"os"

	"chipfire/internal/app"
)

func main() {
	cfg, err := app.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if _, err := app.New(cfg, nil, nil); err != nil {
		fmt.Fprintln(os.Stderr, "The chipfire explorer requires the ebiten build tag:", err)
		fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/chipfire` or build with `-tags ebiten`.")
		fmt.Fprintln(os.Stderr, "For a headless export of a plane, use ./cmd/chipgraph.")
	}
	os.Exit(2)
}
