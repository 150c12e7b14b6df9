// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heapsort

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"cloudeng.io/heaps/container/pairing"
	"cloudeng.io/logging/ctxlog"
	"github.com/dustin/go-humanize"
)

// Result records the outcome of running a heapsort workload of a given
// size one or more times.
type Result struct {
	N            int
	Distribution Distribution
	Repetitions  int
	Elapsed      time.Duration
	// Violations is the total number of ordering violations detected
	// across all repetitions, it is only computed when Config.Verify
	// is set.
	Violations int
}

// PerElement returns the average time taken per inserted element.
func (r Result) PerElement() time.Duration {
	total := r.N * r.Repetitions
	if total == 0 {
		return 0
	}
	return r.Elapsed / time.Duration(total)
}

// Throughput returns the number of elements inserted and removed per
// second.
func (r Result) Throughput() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.N*r.Repetitions) / r.Elapsed.Seconds()
}

func (r Result) String() string {
	return fmt.Sprintf("%v x %v: %v, %v/element, %selements/s",
		humanize.Comma(int64(r.N)),
		r.Repetitions,
		r.Elapsed,
		r.PerElement(),
		humanize.SIWithDigits(r.Throughput(), 2, ""))
}

// Run runs the heapsort workloads specified by cfg, with defaults applied
// for any unset fields, and logs each result via the logger stored in ctx
// (see cloudeng.io/logging/ctxlog). Every repetition uses a freshly
// created heap which is released once the workload completes. Run
// returns the results obtained so far and ctx.Err() if the context is
// canceled.
func Run(ctx context.Context, cfg Config) ([]Result, error) {
	cfg.setDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger := ctxlog.Logger(ctx)
	var opts []pairing.Option[int]
	if cfg.Pool {
		opts = append(opts, pairing.WithAllocator[int](pairing.NewPool[int]()))
	}
	rnd := rand.New(rand.NewSource(cfg.Seed)) // #nosec: G404
	sizes := cfg.WorkloadSizes()
	results := make([]Result, 0, len(sizes))
	for _, n := range sizes {
		res := Result{N: n, Distribution: cfg.Distribution}
		for rep := range cfg.Repetitions {
			if err := ctx.Err(); err != nil {
				return results, err
			}
			values := Generate(rnd, cfg.Distribution, n, cfg.Range)
			h := pairing.New(opts...)
			start := time.Now()
			violations := Heapsort(h, values, cfg.Verify)
			took := time.Since(start)
			h.Release()
			res.Repetitions++
			res.Elapsed += took
			res.Violations += violations
			logger.Debug("heapsort repetition", "n", n, "repetition", rep, "elapsed", took)
		}
		logger.Info("heapsort",
			"n", n,
			"distribution", cfg.Distribution,
			"repetitions", res.Repetitions,
			"elapsed", res.Elapsed,
			"per_element", res.PerElement(),
			"violations", res.Violations)
		results = append(results, res)
	}
	return results, nil
}

// WriteReport writes a human readable table of results to w.
func WriteReport(w io.Writer, results []Result) error {
	if _, err := fmt.Fprintf(w, "%14v %12v %14v %12v %14v %10v\n",
		"n", "distribution", "elapsed", "per-element", "elements/s", "violations"); err != nil {
		return err
	}
	for _, r := range results {
		if _, err := fmt.Fprintf(w, "%14v %12v %14v %12v %14v %10v\n",
			humanize.Comma(int64(r.N)),
			r.Distribution,
			r.Elapsed.Round(time.Microsecond),
			r.PerElement(),
			humanize.SIWithDigits(r.Throughput(), 2, ""),
			r.Violations); err != nil {
			return err
		}
	}
	return nil
}
