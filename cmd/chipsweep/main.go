package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"sort"
	"sync"
	"time"

	"chipfire/internal/core"
	"chipfire/internal/export"
)

type sweepResult struct {
	summary core.Summary
	err     error
}

func main() {
	from := flag.Int("from", 0, "first sigma to summarise")
	to := flag.Int("to", 30, "last sigma to summarise (inclusive)")
	maxSigma := flag.Int("max-sigma", 1000, "largest sigma accepted (0 = only the plane size limit)")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	asCSV := flag.Bool("csv", false, "write results as CSV instead of a table")
	flag.Parse()

	if *to < *from {
		log.Fatalf("invalid sigma range [%d, %d]", *from, *to)
	}
	for _, sigma := range []int{*from, *to} {
		if err := core.CheckSigma(sigma, *maxSigma); err != nil {
			log.Fatal(err)
		}
	}
	if *workers < 1 {
		*workers = 1
	}

	if !*asCSV {
		fmt.Printf("Sweeping sigma %d..%d (%d workers)\n", *from, *to, *workers)
	}

	jobs := make(chan int)
	results := make(chan sweepResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sigma := range jobs {
				g, err := core.Graph(sigma)
				if err != nil {
					results <- sweepResult{err: err}
					continue
				}
				results <- sweepResult{summary: g.Summarize()}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for sigma := *from; sigma <= *to; sigma++ {
			jobs <- sigma
		}
		close(jobs)
	}()

	start := time.Now()
	var all []core.Summary
	for res := range results {
		if res.err != nil {
			log.Fatal(res.err)
		}
		all = append(all, res.summary)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Sigma < all[j].Sigma })

	if *asCSV {
		if err := export.WriteSummaries(os.Stdout, all); err != nil {
			log.Fatal(err)
		}
		return
	}

	fmt.Printf("%6s %8s %8s %7s %8s\n", "sigma", "nodes", "edges", "stable", "maxdeg")
	for _, s := range all {
		fmt.Printf("%6d %8d %8d %7d %8d\n", s.Sigma, s.Nodes, s.Edges, s.Stable, s.MaxOutDegree)
	}
	fmt.Printf("\nDone in %s\n", time.Since(start).Round(time.Millisecond))
}
