package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"chipfire/internal/core"
	"chipfire/internal/export"
	"chipfire/internal/logging"
)

func main() {
	sigma := flag.Int("sigma", 6, "total chips on the plane to export")
	maxSigma := flag.Int("max-sigma", 1000, "largest sigma accepted (0 = only the plane size limit)")
	format := flag.String("format", "csv", "output format: csv, yaml or mermaid")
	out := flag.String("o", "", "output file (default stdout)")
	logLevel := flag.String("log-level", "warn", "log level: debug, info, warn or error")
	flag.Parse()

	level, err := logging.ParseLevel(*logLevel)
	if err != nil {
		log.Fatal(err)
	}
	logger := logging.New(level)

	f, err := export.ParseFormat(*format)
	if err != nil {
		log.Fatal(err)
	}
	if err := core.CheckSigma(*sigma, *maxSigma); err != nil {
		log.Fatal(err)
	}
	g, err := core.Graph(*sigma)
	if err != nil {
		log.Fatal(err)
	}
	logger.Info("graph built", "sigma", g.Sigma, "nodes", len(g.Nodes), "edges", len(g.Edges), "stable", len(g.StableNodes()))

	if *out == "" {
		if err := write(os.Stdout, g, f); err != nil {
			log.Fatal(err)
		}
		return
	}
	file, err := os.Create(*out)
	if err != nil {
		log.Fatal(err)
	}
	if err := write(file, g, f); err != nil {
		file.Close()
		log.Fatal(err)
	}
	if err := file.Close(); err != nil {
		log.Fatal(fmt.Errorf("close %s: %w", *out, err))
	}
	logger.Info("graph written", "format", f, "path", *out)
}

func write(w io.Writer, g *core.FiringGraph, f export.Format) error {
	bw := bufio.NewWriter(w)
	if err := export.Write(bw, g, f); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}
