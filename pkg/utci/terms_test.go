package utci

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestTerms_CompleteMonomialBasis(t *testing.T) {
	tt := Terms()
	require.Len(t, tt, NumTerms)

	// 210 = C(6+4, 4): every monomial of degree <= 6 in 4 variables, once.
	seen := make(map[[4]uint8]int, NumTerms)
	for i, tr := range tt {
		require.LessOrEqual(t, tr.Degree(), Degree, "term %d", i)
		key := [4]uint8{tr.Ta, tr.Va, tr.DTmrt, tr.Pa}
		prev, dup := seen[key]
		require.False(t, dup, "term %d repeats monomial of term %d", i, prev)
		seen[key] = i
	}
	assert.Len(t, seen, NumTerms)
}

func TestTerms_CoefficientChecksum(t *testing.T) {
	coefs := make([]float64, 0, NumTerms)
	for _, tr := range Terms() {
		coefs = append(coefs, tr.Coef)
	}
	assert.InDelta(t, 1.39064156557505, floats.Sum(coefs), 1e-12)
	assert.InDelta(t, 5.12733497, floats.Max(coefs), 0)
	assert.InDelta(t, -2.80626406, floats.Min(coefs), 0)
}

func TestTerms_SpotCheck(t *testing.T) {
	tt := Terms()
	cases := []struct {
		idx  int
		want Term
	}{
		{0, Term{6.07562052e-01, 0, 0, 0, 0}},
		{7, Term{-2.25836520e+00, 0, 1, 0, 0}},
		{28, Term{3.98374029e-01, 0, 0, 1, 0}},
		{83, Term{-4.73602469e-12, 0, 0, 6, 0}},
		{84, Term{5.12733497e+00, 0, 0, 0, 1}},
		{140, Term{-2.80626406e+00, 0, 0, 0, 2}},
		{209, Term{1.48348065e-03, 0, 0, 0, 6}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tt[tc.idx], "term %d", tc.idx)
	}
}

func TestTerms_ReturnsCopy(t *testing.T) {
	tt := Terms()
	tt[0].Coef = 42
	assert.Equal(t, 6.07562052e-01, Terms()[0].Coef)
	assert.Equal(t, 0.607562052, Approx(0, 0, 0, 0))
}
