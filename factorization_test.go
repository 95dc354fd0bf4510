package factorial

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFactorization_Terms(t *testing.T) {
	f := Factorization{7: 1, 2: 8, 5: 2, 3: 4}

	assert.Equal(t, []Term{
		{Prime: 2, Exponent: 8},
		{Prime: 3, Exponent: 4},
		{Prime: 5, Exponent: 2},
		{Prime: 7, Exponent: 1},
	}, f.Terms())
	assert.Empty(t, Factorization{}.Terms())
}

func TestFactorization_String(t *testing.T) {
	tests := []struct {
		name     string
		f        Factorization
		expected string
	}{
		{name: "empty", f: Factorization{}, expected: "1"},
		{name: "single prime", f: Factorization{2: 1}, expected: "2"},
		{name: "five factorial", f: Factorization{2: 3, 3: 1, 5: 1}, expected: "2^3 · 3 · 5"},
		{name: "ten factorial", f: Factorization{2: 8, 3: 4, 5: 2, 7: 1}, expected: "2^8 · 3^4 · 5^2 · 7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.f.String())
		})
	}
}

func TestFactorization_Equal(t *testing.T) {
	a := Factorization{2: 3, 3: 1, 5: 1}

	assert.True(t, a.Equal(Factorization{5: 1, 3: 1, 2: 3}))
	assert.False(t, a.Equal(Factorization{2: 3, 3: 1}))
	assert.False(t, a.Equal(Factorization{2: 3, 3: 2, 5: 1}))
	assert.False(t, a.Equal(Factorization{2: 3, 3: 1, 7: 1}))
	assert.True(t, Factorization{}.Equal(nil))
}

func TestFactorization_Product(t *testing.T) {
	assert.Equal(t, "120", Factorization{2: 3, 3: 1, 5: 1}.Product().String())
	assert.Equal(t, "3628800", Factorization{2: 8, 3: 4, 5: 2, 7: 1}.Product().String())
	assert.Equal(t, "1", Factorization{}.Product().String())
}

func TestFactorization_NumDivisors(t *testing.T) {
	// 5! = 120 = 2^3 · 3 · 5 has 4·2·2 divisors.
	assert.Equal(t, "16", Factorization{2: 3, 3: 1, 5: 1}.NumDivisors().String())
	assert.Equal(t, "1", Factorization{}.NumDivisors().String())

	// 10! has 9·5·3·2 divisors.
	assert.Equal(t, "270", New().Factorize(10).NumDivisors().String())
}

func TestFactorial(t *testing.T) {
	assert.Equal(t, "1", Factorial(0).String())
	assert.Equal(t, "1", Factorial(1).String())
	assert.Equal(t, "120", Factorial(5).String())
	assert.Equal(t, "2432902008176640000", Factorial(20).String())
}

func TestFactorial_AboveMaxInt64(t *testing.T) {
	assert.PanicsWithValue(t, "factorial: n exceeds math.MaxInt64", func() {
		Factorial(math.MaxInt64 + 1)
	})
}
