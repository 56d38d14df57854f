package bio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dataset = `>Rosalind_1
    CCTGCGGAAG
    TCCCACTAAT
    >Rosalind_2
    CCATCGGTAG
    ATATCCATTT

    >Rosalind_3
    ccacCCTCGT
    TGGGAACCTG`

func TestParseFasta(t *testing.T) {
	seqs, err := ParseFasta(strings.NewReader(dataset))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"CCTGCGGAAGTCCCACTAAT",
		"CCATCGGTAGATATCCATTT",
		"CCACCCTCGTTGGGAACCTG",
	}, seqs.Strings())
	assert.Equal(t, []string{"Rosalind_1", "Rosalind_2", "Rosalind_3"}, seqs.Names())
}

func TestParseFastaNoLabel(t *testing.T) {
	_, err := ParseFasta(bytes.NewBufferString("ACGT\n>a\nACGT\n"))
	assert.ErrorIs(t, err, ErrNoFastaLabel)
}

func TestFastaString(t *testing.T) {
	long := strings.Repeat("A", 100)
	seqs := Sequences{{"a", long}, {"b", "CG"}}
	s := seqs.String()
	assert.Equal(t, ">a\n"+strings.Repeat("A", LineWidth)+"\n"+strings.Repeat("A", 20)+"\n>b\nCG", s)

	parsed, err := ParseFasta(strings.NewReader(s))
	require.NoError(t, err)
	assert.Equal(t, seqs, parsed)

	assert.Empty(t, Sequences(nil).String())
}

func TestWrap(t *testing.T) {
	assert.Equal(t, "AB\nCD\nE\n", Wrap("ABCDE", 2))
	assert.Equal(t, "AB\nCD\n", Wrap("ABCD", 2))
	assert.Empty(t, Wrap("", 2))
}
