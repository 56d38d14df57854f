// Package dna implements simple DNA string operations: nucleotide
// counting, transcription, reverse complement, Hamming distance,
// motif search, GC content and profile/consensus.
package dna

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("dna")

var (
	// ErrLengthMismatch is returned when strings have different lengths.
	ErrLengthMismatch = errors.New("strings have different length")
	// ErrMotifTooLong is returned when motif is longer than the string.
	ErrMotifTooLong = errors.New("motif is longer than the string")
	// ErrEmptyDataset is returned when there are no sequences.
	ErrEmptyDataset = errors.New("empty dataset")
)

// UnknownNucleotideError is returned for a character which is not a
// DNA nucleotide.
type UnknownNucleotideError struct {
	Nucleotide rune
}

func (e *UnknownNucleotideError) Error() string {
	return fmt.Sprintf("unknown nucleotide: %q", e.Nucleotide)
}

// Nucleotides stores number of each nucleotide in DNA.
type Nucleotides struct {
	A, C, G, T int
}

func (n Nucleotides) String() string {
	return fmt.Sprintf("%d %d %d %d", n.A, n.C, n.G, n.T)
}

// CountNucleotides counts nucleotides in a DNA string. Newlines are
// skipped.
func CountNucleotides(dna string) (n Nucleotides, err error) {
	for _, l := range dna {
		switch l {
		case 'A':
			n.A++
		case 'C':
			n.C++
		case 'G':
			n.G++
		case 'T':
			n.T++
		case '\n':
		default:
			return Nucleotides{}, &UnknownNucleotideError{Nucleotide: l}
		}
	}
	return
}

// Transcribe transcribes DNA into RNA (T is replaced by U).
func Transcribe(dna string) (string, error) {
	var b strings.Builder
	b.Grow(len(dna))
	for _, l := range dna {
		switch l {
		case 'A', 'C', 'G':
			b.WriteRune(l)
		case 'T':
			b.WriteByte('U')
		case '\n':
		default:
			return "", &UnknownNucleotideError{Nucleotide: l}
		}
	}
	return b.String(), nil
}

var complement = map[byte]byte{'A': 'T', 'C': 'G', 'G': 'C', 'T': 'A'}

// ReverseComplement returns reverse complement of a DNA string.
func ReverseComplement(dna string) (string, error) {
	rc := make([]byte, 0, len(dna))
	for i := len(dna) - 1; i >= 0; i-- {
		if dna[i] == '\n' {
			continue
		}
		c, ok := complement[dna[i]]
		if !ok {
			r, _ := utf8.DecodeLastRuneInString(dna[:i+1])
			return "", &UnknownNucleotideError{Nucleotide: r}
		}
		rc = append(rc, c)
	}
	return string(rc), nil
}

// HammingDistance returns number of positions where s and t differ.
func HammingDistance(s, t string) (int, error) {
	if len(s) != len(t) {
		return 0, ErrLengthMismatch
	}
	d := 0
	for i := 0; i < len(s); i++ {
		if s[i] != t[i] {
			d++
		}
	}
	return d, nil
}

// MotifLocations returns all (1-based) locations of t in s,
// occurrences may overlap.
func MotifLocations(s, t string) ([]int, error) {
	if len(s) < len(t) {
		return nil, ErrMotifTooLong
	}
	locations := make([]int, 0)
	for i := 0; i <= len(s)-len(t); i++ {
		if strings.HasPrefix(s[i:], t) {
			locations = append(locations, i+1)
		}
	}
	return locations, nil
}
