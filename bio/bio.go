// Package bio provides functions related to the genetic code:
// translation of RNA into protein, the inverse codon lookup and
// protein mass.
package bio

import (
	"unicode/utf8"

	"github.com/op/go-logging"
)

// log is the package logger.
var log = logging.MustGetLogger("bio")

// AminoAcid is one of the 20 standard amino acids or the stop tag.
type AminoAcid uint8

// NAminoAcid is the number of standard amino acids.
const NAminoAcid = 20

// Stop marks a stop codon. It is never a part of a protein string.
const Stop AminoAcid = NAminoAcid

const (
	// aminoAcids lists one-letter codes, index is the AminoAcid value.
	aminoAcids = "ACDEFGHIKLMNPQRSTVWY"
	// stopLetter is used for display only.
	stopLetter = '*'
	// alphabet is the nucleotide order of standardCode.
	alphabet = "UCAG"
	// standardCode is the NCBI standard genetic code (ncbieaa, id=1).
	standardCode = "FFLLSSSSYY**CC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG"
)

var (
	// geneticCode maps a codon (capital letters, RNA alphabet) to
	// an amino acid or Stop.
	geneticCode = make(map[string]AminoAcid, 64)
	// rGeneticCode maps amino acids (and Stop) to their codons.
	rGeneticCode [NAminoAcid + 1][]string
	// rAminoAcids maps one-letter code to AminoAcid.
	rAminoAcids = make(map[rune]AminoAcid, NAminoAcid)
)

func init() {
	for i, l := range aminoAcids {
		rAminoAcids[l] = AminoAcid(i)
	}

	i := 0
	for _, n1 := range alphabet {
		for _, n2 := range alphabet {
			for _, n3 := range alphabet {
				codon := string([]rune{n1, n2, n3})
				aa := Stop
				if l := rune(standardCode[i]); l != stopLetter {
					aa = rAminoAcids[l]
				}
				geneticCode[codon] = aa
				rGeneticCode[aa] = append(rGeneticCode[aa], codon)
				i++
			}
		}
	}
}

// Letter returns the one-letter code of the amino acid, '*' for
// Stop and utf8.RuneError for values outside of the enumeration.
func (aa AminoAcid) Letter() rune {
	switch {
	case aa < NAminoAcid:
		return rune(aminoAcids[aa])
	case aa == Stop:
		return stopLetter
	}
	return utf8.RuneError
}

// IsStop tests if aa is the stop tag.
func (aa AminoAcid) IsStop() bool {
	return aa == Stop
}

func (aa AminoAcid) String() string {
	if aa == Stop {
		return "Stop"
	}
	return string(aa.Letter())
}

// ParseAminoAcid returns amino acid for a one-letter code. Only the
// 20 standard capital letters are accepted.
func ParseAminoAcid(l rune) (AminoAcid, error) {
	aa, ok := rAminoAcids[l]
	if !ok {
		return 0, &UnknownAminoAcidError{AminoAcid: l}
	}
	return aa, nil
}

// CodonToAminoAcid returns the amino acid (or Stop) encoded by the
// codon. Codon has to be in capital letters and RNA alphabet.
func CodonToAminoAcid(codon string) (AminoAcid, error) {
	aa, ok := geneticCode[codon]
	if !ok {
		return 0, &UnknownCodonError{Codon: codon}
	}
	return aa, nil
}

// AminoAcidToCodons returns all the codons encoding aa. For Stop
// these are the three stop codons. The returned slice can be
// modified by the caller.
func AminoAcidToCodons(aa AminoAcid) ([]string, error) {
	if aa > Stop {
		return nil, &UnknownAminoAcidError{AminoAcid: aa.Letter()}
	}
	codons := make([]string, len(rGeneticCode[aa]))
	copy(codons, rGeneticCode[aa])
	return codons, nil
}

// Degeneracy returns number of codons encoding aa.
func Degeneracy(aa AminoAcid) int {
	if aa > Stop {
		return 0
	}
	return len(rGeneticCode[aa])
}
