package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"bitbucket.org/Davydov/rosalind/bio"
	"bitbucket.org/Davydov/rosalind/dna"
	"bitbucket.org/Davydov/rosalind/mendel"
)

// errTwoLines is returned when input doesn't contain two lines.
var errTwoLines = errors.New("expected two lines of input")

// readInput returns file content, "-" is the standard input.
func readInput(fn string) (string, error) {
	if fn == "-" {
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}
	b, err := os.ReadFile(fn)
	return string(b), err
}

// withInput reads the input file and passes it to f.
func withInput(fn string, f func(string) (string, error)) (string, error) {
	input, err := readInput(fn)
	if err != nil {
		return "", err
	}
	log.Debugf("Read %d bytes from %s", len(input), fn)
	return f(input)
}

// twoLines returns first two non-empty lines of the input.
func twoLines(input string) (s, t string, err error) {
	lines := make([]string, 0, 2)
	for _, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
		if len(lines) == 2 {
			return lines[0], lines[1], nil
		}
	}
	return "", "", errTwoLines
}

func translate(input string) (string, error) {
	return bio.Translate(input)
}

func translateFasta(input string) (string, error) {
	seqs, err := bio.ParseFasta(strings.NewReader(input))
	if err != nil {
		return "", err
	}
	prots, err := seqs.Translate()
	if err != nil {
		return "", err
	}
	return prots.String(), nil
}

func countSourceRNA(input string) (string, error) {
	n, err := bio.CountSourceRNA(input)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(n), nil
}

func proteinMass(input string) (string, error) {
	m, err := bio.ProteinMass(input)
	if err != nil {
		return "", err
	}
	return strconv.FormatFloat(m, 'f', 3, 64), nil
}

func countNucleotides(input string) (string, error) {
	n, err := dna.CountNucleotides(input)
	if err != nil {
		return "", err
	}
	return n.String(), nil
}

func transcribe(input string) (string, error) {
	return dna.Transcribe(input)
}

func reverseComplement(input string) (string, error) {
	return dna.ReverseComplement(input)
}

func hammingDistance(input string) (string, error) {
	s, t, err := twoLines(input)
	if err != nil {
		return "", err
	}
	d, err := dna.HammingDistance(s, t)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(d), nil
}

func motifLocations(input string) (string, error) {
	s, t, err := twoLines(input)
	if err != nil {
		return "", err
	}
	locations, err := dna.MotifLocations(s, t)
	if err != nil {
		return "", err
	}
	ls := make([]string, len(locations))
	for i, l := range locations {
		ls[i] = strconv.Itoa(l)
	}
	return strings.Join(ls, " "), nil
}

func bestGCContent(input string) (string, error) {
	gc, err := dna.BestGCContent(strings.NewReader(input))
	if err != nil {
		return "", err
	}
	return gc.String(), nil
}

func consensus(input string) (string, error) {
	seqs, err := bio.ParseFasta(strings.NewReader(input))
	if err != nil {
		return "", err
	}
	p, err := dna.NewProfile(seqs.Strings())
	if err != nil {
		return "", err
	}
	return p.Consensus() + "\n" + p.String(), nil
}

func dominantAllele(k, m, n int) (string, error) {
	p, err := mendel.DominantAllele(k, m, n)
	if err != nil {
		return "", err
	}
	return strconv.FormatFloat(p, 'f', 5, 64), nil
}

func independentAlleles(k, n int) (string, error) {
	p, err := mendel.IndependentAlleles(k, n)
	if err != nil {
		return "", err
	}
	return strconv.FormatFloat(p, 'f', 3, 64), nil
}

func expectedOffspring(couples []int) (string, error) {
	var c [mendel.NCouples]int
	if len(couples) != len(c) {
		return "", fmt.Errorf("expected %d numbers of couples, got %d", len(c), len(couples))
	}
	copy(c[:], couples)
	e, err := mendel.ExpectedOffspring(c)
	if err != nil {
		return "", err
	}
	return strconv.FormatFloat(e, 'f', -1, 64), nil
}

func rabbits(n, k int) (string, error) {
	r, err := mendel.Rabbits(n, k)
	if err != nil {
		return "", err
	}
	return strconv.FormatUint(r, 10), nil
}
