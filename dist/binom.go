// Package dist implements functions for discrete distributions.
package dist

import (
	"github.com/gonum/mathext"
)

// BinomialTail returns Prob{X>=k} where X is binomially distributed
// with n trials and success probability p.
//
// Uses the identity Prob{X>=k} = I_p(k, n-k+1), where I is the
// regularized incomplete beta function.
func BinomialTail(n int, p float64, k int) float64 {
	switch {
	case k <= 0:
		return 1
	case k > n:
		return 0
	case p <= 0:
		return 0
	case p >= 1:
		return 1
	}
	return mathext.RegIncBeta(float64(k), float64(n-k+1), p)
}
