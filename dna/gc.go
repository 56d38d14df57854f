package dna

import (
	"fmt"
	"io"

	"bitbucket.org/Davydov/rosalind/bio"
)

// GC stores GC content of a named sequence.
type GC struct {
	ID      string
	Content float64
}

func (gc GC) String() string {
	return fmt.Sprintf("%s\n%.6f", gc.ID, gc.Content)
}

// GCContent returns percentage of G and C in a DNA string. Newlines
// are skipped. Empty string has GC content of 0.
func GCContent(dna string) float64 {
	n, gc := 0, 0
	for i := 0; i < len(dna); i++ {
		switch dna[i] {
		case '\n':
			continue
		case 'G', 'C':
			gc++
		}
		n++
	}
	if n == 0 {
		return 0
	}
	return float64(gc) * 100 / float64(n)
}

// GCContents returns GC content of every sequence.
func GCContents(seqs bio.Sequences) []GC {
	res := make([]GC, len(seqs))
	for i, seq := range seqs {
		res[i] = GC{ID: seq.Name, Content: GCContent(seq.Sequence)}
		log.Debugf("%s: GC=%f", res[i].ID, res[i].Content)
	}
	return res
}

// BestGCContent returns the sequence with the highest GC content from
// a FASTA dataset. The first one wins in case of a tie.
func BestGCContent(rd io.Reader) (best GC, err error) {
	seqs, err := bio.ParseFasta(rd)
	if err != nil {
		return best, err
	}
	if len(seqs) == 0 {
		return best, ErrEmptyDataset
	}
	for i, gc := range GCContents(seqs) {
		if i == 0 || gc.Content > best.Content {
			best = gc
		}
	}
	return best, nil
}
