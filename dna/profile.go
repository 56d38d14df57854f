package dna

import (
	"bytes"
	"fmt"
	"strings"
)

// Profile stores number of each nucleotide per position.
type Profile struct {
	A, C, G, T []int
}

// NewProfile computes profile of DNA strings of equal length.
// Trailing newlines are ignored.
func NewProfile(dnas []string) (*Profile, error) {
	if len(dnas) == 0 {
		return nil, ErrEmptyDataset
	}
	n := len(strings.TrimSuffix(dnas[0], "\n"))
	p := &Profile{
		A: make([]int, n),
		C: make([]int, n),
		G: make([]int, n),
		T: make([]int, n),
	}
	for _, dna := range dnas {
		dna = strings.TrimSuffix(dna, "\n")
		if len(dna) != n {
			return nil, ErrLengthMismatch
		}
		for i, l := range dna {
			switch l {
			case 'A':
				p.A[i]++
			case 'C':
				p.C[i]++
			case 'G':
				p.G[i]++
			case 'T':
				p.T[i]++
			default:
				return nil, &UnknownNucleotideError{Nucleotide: l}
			}
		}
	}
	return p, nil
}

// Len returns the profile length.
func (p *Profile) Len() int {
	return len(p.A)
}

// Consensus returns the most common nucleotide for each position.
// Ties are resolved in A, C, G, T order.
func (p *Profile) Consensus() string {
	b := make([]byte, p.Len())
	for i := range b {
		c, max := byte('A'), p.A[i]
		if p.C[i] > max {
			c, max = 'C', p.C[i]
		}
		if p.G[i] > max {
			c, max = 'G', p.G[i]
		}
		if p.T[i] > max {
			c = 'T'
		}
		b[i] = c
	}
	return string(b)
}

func (p *Profile) String() string {
	var b bytes.Buffer
	for _, row := range []struct {
		name  string
		count []int
	}{{"A", p.A}, {"C", p.C}, {"G", p.G}, {"T", p.T}} {
		b.WriteString(row.name + ":")
		for _, c := range row.count {
			fmt.Fprintf(&b, " %d", c)
		}
		if row.name != "T" {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
