// Package mendel computes probabilities of Mendelian inheritance and
// population recurrences.
package mendel

import (
	"errors"
	"math"

	"github.com/gonum/matrix/mat64"

	"bitbucket.org/Davydov/rosalind/dist"
)

var (
	// ErrInvalidParameters is returned when parameters are out of range.
	ErrInvalidParameters = errors.New("invalid input parameters")
	// ErrOverflow is returned when the result doesn't fit into uint64.
	ErrOverflow = errors.New("result overflow")
)

// DominantAllele returns probability that two randomly selected
// organisms produce an offspring with a dominant allele. The
// population has k homozygous dominant, m heterozygous and n
// homozygous recessive organisms.
func DominantAllele(k, m, n int) (float64, error) {
	if k <= 0 || m <= 0 || n <= 0 {
		return 0, ErrInvalidParameters
	}
	fk, fm, fn := float64(k), float64(m), float64(n)
	total := fk + fm + fn

	// probability of a recessive offspring
	rec := fm * fn              // Aa x aa, aa x Aa
	rec += fm * (fm - 1) * 0.25 // Aa x Aa
	rec += fn * (fn - 1)        // aa x aa
	rec /= total * (total - 1)

	return 1 - rec, nil
}

// IndependentAlleles returns probability that at least n of the 2^k
// organisms in generation k are AaBb. Generation 0 is a single AaBb
// organism, every organism mates with AaBb and has two children.
func IndependentAlleles(k, n int) (float64, error) {
	if k < 0 || n < 0 || k > 62 {
		return 0, ErrInvalidParameters
	}
	return dist.BinomialTail(1<<uint(k), 0.25, n), nil
}

// NCouples is the number of genotype pair kinds: AA-AA, AA-Aa, AA-aa,
// Aa-Aa, Aa-aa and aa-aa.
const NCouples = 6

// dominant is probability of a dominant phenotype offspring per
// couple kind.
var dominant = mat64.NewVector(NCouples, []float64{1, 1, 1, 0.75, 0.5, 0})

// ExpectedOffspring returns expected number of offspring with a
// dominant phenotype, every couple has two children.
func ExpectedOffspring(couples [NCouples]int) (float64, error) {
	c := make([]float64, NCouples)
	for i, n := range couples {
		if n < 0 {
			return 0, ErrInvalidParameters
		}
		c[i] = float64(n)
	}
	return 2 * mat64.Dot(mat64.NewVector(NCouples, c), dominant), nil
}

// Rabbits returns number of rabbit pairs after n months, when every
// mature pair produces k new pairs each month, starting from one
// newborn pair.
func Rabbits(n, k int) (uint64, error) {
	if n < 1 || k < 0 {
		return 0, ErrInvalidParameters
	}
	// cur is F(i), prev is F(i-1), F(0)=0
	prev, cur := uint64(0), uint64(1)
	for i := 1; i < n; i++ {
		if prev != 0 && uint64(k) > (math.MaxUint64-cur)/prev {
			return 0, ErrOverflow
		}
		prev, cur = cur, cur+prev*uint64(k)
	}
	return cur, nil
}
