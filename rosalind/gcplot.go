package main

import (
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"bitbucket.org/Davydov/rosalind/bio"
	"bitbucket.org/Davydov/rosalind/dna"
)

// barWidth is the width of a single bar.
var barWidth = vg.Points(20)

// plotGC creates a bar chart of GC content for every sequence. Image
// format is determined by the file extension.
func plotGC(seqs bio.Sequences, fn string, width, height vg.Length) error {
	if len(seqs) == 0 {
		return dna.ErrEmptyDataset
	}

	gcs := dna.GCContents(seqs)
	values := make(plotter.Values, len(gcs))
	for i, gc := range gcs {
		values[i] = gc.Content
	}

	p := plot.New()
	p.Title.Text = "GC content"
	p.Y.Label.Text = "GC, %"

	bars, err := plotter.NewBarChart(values, barWidth)
	if err != nil {
		return err
	}
	bars.Color = plotutil.Color(0)
	p.Add(bars)
	p.NominalX(seqs.Names()...)
	p.Y.Min = 0
	p.Y.Max = 100

	return p.Save(width, height, fn)
}

// gcPlot reads FASTA from the input and saves GC content plot.
func gcPlot(input, fn string, width, height vg.Length) (string, error) {
	seqs, err := bio.ParseFasta(strings.NewReader(input))
	if err != nil {
		return "", err
	}
	if err := plotGC(seqs, fn, width, height); err != nil {
		return "", err
	}
	log.Noticef("GC content plot of %d sequences saved to %s", len(seqs), fn)
	return "", nil
}
