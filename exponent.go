package factorial

import "math/bits"

// Width is the bit width of every integer the engine works with: the
// factorial argument, primes, prime powers and exponents are all uint64.
const Width = 64

// Exponent returns the multiplicity of the prime p in n! using Legendre's
// formula, the sum over k >= 1 of floor(n / p^k).
//
// The running power p^k is advanced with a full-width multiply. When the
// product no longer fits in Width bits it is strictly greater than
// 2^Width-1 >= n, so it and every later term contribute zero and the sum is
// already complete. The loop therefore never overflows and never drops a
// non-zero term for any n representable in Width bits.
//
// p must be prime. Values of p below 2 yield 0.
func Exponent(n, p uint64) uint64 {
	if p < 2 {
		return 0
	}

	var exponent uint64
	for power := p; power <= n; {
		exponent += n / power

		hi, next := bits.Mul64(power, p)
		if hi != 0 {
			break
		}
		power = next
	}

	return exponent
}
