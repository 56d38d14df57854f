package bio

import (
	"bytes"
	"fmt"
	"math"
	"strings"
)

// Modulo is the modulus of CountSourceRNA result.
const Modulo = 1000000

// monoisotopicMass is indexed by AminoAcid.
var monoisotopicMass = [NAminoAcid]float64{
	71.03711,  // A
	103.00919, // C
	115.02694, // D
	129.04259, // E
	147.06841, // F
	57.02146,  // G
	137.05891, // H
	113.08406, // I
	128.09496, // K
	113.08406, // L
	131.04049, // M
	114.04293, // N
	97.05276,  // P
	128.05858, // Q
	156.10111, // R
	87.03203,  // S
	101.04768, // T
	99.06841,  // V
	186.07931, // W
	163.06333, // Y
}

// MonoisotopicMass returns monoisotopic mass of an amino acid
// residue. ok is false for Stop and invalid values.
func MonoisotopicMass(aa AminoAcid) (mass float64, ok bool) {
	if aa >= NAminoAcid {
		return 0, false
	}
	return monoisotopicMass[aa], true
}

// Translate translates RNA sequence string into the protein string.
// A single trailing newline is ignored. Translation ends at the first
// stop codon. ErrCodonParse is returned if sequence length doesn't
// divide by 3, UnknownCodonError if a codon cannot be decoded.
func Translate(rna string) (string, error) {
	var buffer bytes.Buffer

	n := len(rna)
	if strings.HasSuffix(rna, "\n") {
		n--
	}
	if n%3 != 0 {
		return "", ErrCodonParse
	}

	for i := 0; i < n; i += 3 {
		aa, err := CodonToAminoAcid(rna[i : i+3])
		if err != nil {
			return "", err
		}
		if aa.IsStop() {
			break
		}
		buffer.WriteRune(aa.Letter())
	}
	return buffer.String(), nil
}

// Translate translates every RNA record into a protein record with
// the same name. The error is annotated with the record name.
func (seqs Sequences) Translate() (Sequences, error) {
	prots := make(Sequences, len(seqs))
	for i, seq := range seqs {
		prot, err := Translate(seq.Sequence)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", seq.Name, err)
		}
		prots[i] = Sequence{Name: seq.Name, Sequence: prot}
	}
	return prots, nil
}

// CountSourceRNA returns the number of different mRNA strings (modulo
// Modulo) from which the protein could have been translated. Stop
// codon is accounted for. Newlines are skipped. Empty protein gives 0.
func CountSourceRNA(protein string) (int, error) {
	if len(protein) == 0 {
		return 0, nil
	}

	total := 1
	for _, l := range protein {
		if l == '\n' {
			continue
		}
		aa, err := ParseAminoAcid(l)
		if err != nil {
			return 0, err
		}
		total *= Degeneracy(aa)
		if total > Modulo {
			total %= Modulo
		}
		if total == 0 {
			return 0, nil
		}
	}

	total *= Degeneracy(Stop)
	return total % Modulo, nil
}

// ProteinMass returns monoisotopic mass of the protein rounded to 3
// decimal digits. Newlines weigh nothing.
func ProteinMass(protein string) (float64, error) {
	mass := 0.0
	for _, l := range protein {
		if l == '\n' {
			continue
		}
		aa, err := ParseAminoAcid(l)
		if err != nil {
			return 0, err
		}
		mass += monoisotopicMass[aa]
	}
	return math.Round(mass*1000) / 1000, nil
}
