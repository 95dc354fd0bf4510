package factorial

import (
	"math"
	"math/big"
	"sort"
	"strconv"
	"strings"
)

// Factorization maps each prime factor to its exponent. Only primes with a
// non-zero exponent are present. Iteration order is unspecified; use Terms
// for a deterministic order.
type Factorization map[uint64]uint64

// Term is a single prime power in a factorization.
type Term struct {
	Prime    uint64 `json:"prime" yaml:"prime"`
	Exponent uint64 `json:"exponent" yaml:"exponent"`
}

// Terms returns the factorization's prime powers ordered by prime.
func (f Factorization) Terms() []Term {
	terms := make([]Term, 0, len(f))
	for p, e := range f {
		terms = append(terms, Term{Prime: p, Exponent: e})
	}

	sort.Slice(terms, func(i, j int) bool { return terms[i].Prime < terms[j].Prime })
	return terms
}

// String renders the factorization as a product of prime powers, for example
// "2^3 · 3 · 5". The empty factorization renders as "1".
func (f Factorization) String() string {
	if len(f) == 0 {
		return "1"
	}

	parts := make([]string, 0, len(f))
	for _, t := range f.Terms() {
		if t.Exponent == 1 {
			parts = append(parts, strconv.FormatUint(t.Prime, 10))
			continue
		}
		parts = append(parts, strconv.FormatUint(t.Prime, 10)+"^"+strconv.FormatUint(t.Exponent, 10))
	}

	return strings.Join(parts, " · ")
}

// Equal reports whether both factorizations contain the same prime powers.
func (f Factorization) Equal(other Factorization) bool {
	if len(f) != len(other) {
		return false
	}
	for p, e := range f {
		if o, ok := other[p]; !ok || o != e {
			return false
		}
	}
	return true
}

// Product multiplies the prime powers back into an arbitrary-precision
// integer. It exists for verification; Factorize never builds n! itself.
func (f Factorization) Product() *big.Int {
	product := big.NewInt(1)
	power := new(big.Int)
	for _, t := range f.Terms() {
		power.Exp(new(big.Int).SetUint64(t.Prime), new(big.Int).SetUint64(t.Exponent), nil)
		product.Mul(product, power)
	}
	return product
}

// NumDivisors returns the number of positive divisors of the factorized
// integer, the product of (exponent + 1) over all terms.
func (f Factorization) NumDivisors() *big.Int {
	count := big.NewInt(1)
	factor := new(big.Int)
	for _, e := range f {
		factor.SetUint64(e)
		count.Mul(count, factor.Add(factor, big.NewInt(1)))
	}
	return count
}

// Factorial computes n! directly with arbitrary precision. It panics if n
// exceeds math.MaxInt64.
func Factorial(n uint64) *big.Int {
	if n < 2 {
		return big.NewInt(1)
	}
	if n > math.MaxInt64 {
		panic("factorial: n exceeds math.MaxInt64")
	}
	return new(big.Int).MulRange(1, int64(n))
}
