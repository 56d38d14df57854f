package bio

import (
	"errors"
	"fmt"
)

// ErrCodonParse is returned when sequence length doesn't divide by 3.
var ErrCodonParse = errors.New("sequence length doesn't divide by 3")

// ErrNoFastaLabel is returned when FASTA sequence data precedes the
// first label.
var ErrNoFastaLabel = errors.New("sequence w/o prefix")

// UnknownCodonError is returned when a codon is not in the genetic code.
type UnknownCodonError struct {
	Codon string
}

func (e *UnknownCodonError) Error() string {
	return fmt.Sprintf("unknown codon: %q", e.Codon)
}

// UnknownAminoAcidError is returned for a character which is not an
// amino acid.
type UnknownAminoAcidError struct {
	AminoAcid rune
}

func (e *UnknownAminoAcidError) Error() string {
	return fmt.Sprintf("unknown amino acid: %q", e.AminoAcid)
}
