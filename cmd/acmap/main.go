// Command acmap trains an Auto-Contractive Map on a built-in fixture and
// prints the extracted correlation tree. Optionally it writes a Graphviz
// DOT rendering for visual inspection.
//
// Usage:
//
//	acmap [-n 10] [-c 2] [-samples 1000] [-seed 1]
//	      [-fixture correlated|random] [-dot tree.dot]
package main

import (
	"flag"
	"os"

	log "github.com/golang/glog"

	"github.com/katalvlaran/acmap/acm"
	"github.com/katalvlaran/acmap/dataset"
	"github.com/katalvlaran/acmap/report"
)

var (
	dims    = flag.Int("n", 10, "input vector length")
	contr   = flag.Float64("c", 2, "contraction parameter, must be > 1")
	samples = flag.Int("samples", 1000, "number of training samples to generate")
	seed    = flag.Int64("seed", 1, "fixture RNG seed")
	fixture = flag.String("fixture", "correlated", "fixture type: correlated or random")
	dotPath = flag.String("dot", "", "optional path for a Graphviz DOT rendering of the tree")
)

func main() {
	flag.Parse()
	defer log.Flush()

	// Generate the training fixture.
	var (
		ds  *dataset.Dataset
		err error
	)
	switch *fixture {
	case "correlated":
		ds, err = dataset.Correlated(*samples, *dims, dataset.WithSeed(*seed))
	case "random":
		ds, err = dataset.Random(*samples, *dims, dataset.WithSeed(*seed))
	default:
		log.Exitf("unknown fixture %q (want correlated or random)", *fixture)
	}
	if err != nil {
		log.Exitf("fixture generation failed: %v", err)
	}

	// Build the model; log training progress every 100 consumed samples.
	m, err := acm.New(*dims, *contr, acm.WithOnSample(func(run int, sumOut float64) {
		if run%100 == 0 {
			log.Infof("run %5d, sum(out) %g", run, sumOut)
		}
	}))
	if err != nil {
		log.Exitf("model construction failed: %v", err)
	}

	if err = m.Train(ds.Samples); err != nil {
		log.Exitf("training failed: %v", err)
	}

	// Summarize and report.
	conns, err := m.Connections(ds.Labels)
	if err != nil {
		log.Exitf("summarization failed: %v", err)
	}
	if err = report.Write(os.Stdout, m.Runs(), conns); err != nil {
		log.Exitf("report failed: %v", err)
	}

	// Optional DOT rendering.
	if *dotPath != "" {
		f, err := os.Create(*dotPath)
		if err != nil {
			log.Exitf("cannot create %s: %v", *dotPath, err)
		}
		defer f.Close()
		if err = report.DOT(f, conns); err != nil {
			log.Exitf("DOT rendering failed: %v", err)
		}
	}
}
