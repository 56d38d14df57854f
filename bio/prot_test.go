package bio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		rna, prot string
	}{
		{"AUGGCCAUGGCGCCCAGAACUGAGAUCAAUAGUACCCGUAUUAACGGGUGA", "MAMAPRTEINSTRING"},
		{"AUGUGA\n", "M"},
		{"", ""},
		{"\n", ""},
		{"UAA", ""},
		{"AUGUUU", "MF"},
		{"AUGUAGZZZ", "M"},
	}
	for _, tc := range tests {
		prot, err := Translate(tc.rna)
		require.NoError(t, err, tc.rna)
		assert.Equal(t, tc.prot, prot, tc.rna)
	}
}

func TestTranslateErrors(t *testing.T) {
	for _, rna := range []string{"Z", "AU", "AUGU", "AUGU\n", "AUG\n\n"} {
		_, err := Translate(rna)
		assert.ErrorIs(t, err, ErrCodonParse, "%q", rna)
	}

	prot, err := Translate("ZZZ")
	var ce *UnknownCodonError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "ZZZ", ce.Codon)
	assert.Empty(t, prot, "partial result returned with an error")

	_, err = Translate("AUGGCCZZZUGA")
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "ZZZ", ce.Codon)
}

func TestTranslateLength(t *testing.T) {
	rna := "AUGGCCAUGGCGCCCAGAACUGAGAUCAAUAGUACCCGUAUUAACGGGUGA"
	for i := 0; i <= len(rna); i += 3 {
		prot, err := Translate(rna[:i])
		require.NoError(t, err)
		assert.LessOrEqual(t, len(prot), i/3)
	}
}

func TestTranslateSequences(t *testing.T) {
	seqs := Sequences{{"a", "AUGGCCUGA"}, {"b", ""}}
	prots, err := seqs.Translate()
	require.NoError(t, err)
	assert.Equal(t, Sequences{{"a", "MA"}, {"b", ""}}, prots)
	assert.Equal(t, ">a\nMA\n>b", prots.String())

	_, err = Sequences{{"a", "AUG"}, {"bad", "ZZZ"}}.Translate()
	var ce *UnknownCodonError
	require.ErrorAs(t, err, &ce)
	assert.Contains(t, err.Error(), "bad")
}

func TestCountSourceRNA(t *testing.T) {
	tests := []struct {
		prot string
		n    int
	}{
		{"MA", 12},
		{"", 0},
		{"\n", 3},
		// newlines are deliberately accepted anywhere, not only at the end
		{"M\nA\n", 12},
		{"W", 3},
		{"LLL", 648},
		// 6^8*3 = 5038848
		{"LLLLLLLL", 38848},
	}
	for _, tc := range tests {
		n, err := CountSourceRNA(tc.prot)
		require.NoError(t, err, "%q", tc.prot)
		assert.Equal(t, tc.n, n, "%q", tc.prot)
	}
}

func TestCountSourceRNAError(t *testing.T) {
	for _, prot := range []string{"B", "MAB", "M*"} {
		_, err := CountSourceRNA(prot)
		var ae *UnknownAminoAcidError
		assert.ErrorAs(t, err, &ae, prot)
	}
	_, err := CountSourceRNA("B")
	var ae *UnknownAminoAcidError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, 'B', ae.AminoAcid)
}

func TestCountSourceRNALong(t *testing.T) {
	prot := strings.Repeat("MAMAPRTEINSTRING", 1000)
	n, err := CountSourceRNA(prot)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, 0)
	assert.Less(t, n, Modulo)

	again, err := CountSourceRNA(prot)
	require.NoError(t, err)
	assert.Equal(t, n, again)
}

func TestProteinMass(t *testing.T) {
	mass, err := ProteinMass("SKADYEK\n")
	require.NoError(t, err)
	assert.Equal(t, 821.392, mass)

	mass, err = ProteinMass("")
	require.NoError(t, err)
	assert.Zero(t, mass)

	// newlines are deliberately accepted anywhere and weigh nothing
	mass, err = ProteinMass("G\nG")
	require.NoError(t, err)
	assert.Equal(t, 114.043, mass)
}

func TestProteinMassError(t *testing.T) {
	_, err := ProteinMass("AB")
	var ae *UnknownAminoAcidError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, 'B', ae.AminoAcid)
}

func TestMonoisotopicMass(t *testing.T) {
	for aa := AminoAcid(0); aa < NAminoAcid; aa++ {
		m, ok := MonoisotopicMass(aa)
		assert.True(t, ok, aa.String())
		assert.Positive(t, m, aa.String())
	}
	_, ok := MonoisotopicMass(Stop)
	assert.False(t, ok, "stop has mass")
}
