// Package factorial computes the prime factorization of n! without ever
// materializing n! itself.
//
// The exponent of each prime p in n! is derived directly with Legendre's
// formula, floor(n/p) + floor(n/p^2) + ..., so the work is bounded by the
// number of primes <= n rather than by the size of n!, and every quantity
// fits in a native uint64.
//
// # Basic Usage
//
// Create an engine and request a factorization:
//
//	engine := factorial.New()
//	factors := engine.Factorize(10)
//	fmt.Println(factors)    // 2^8 · 3^4 · 5^2 · 7
//	fmt.Println(factors[2]) // 8
//
// 0! and 1! equal 1, which has no prime factors, so Factorize returns an
// empty mapping for n < 2.
//
// # Prime Cache
//
// Each Engine owns an ascending cache of primes built with the Sieve of
// Eratosthenes. The cache is re-sieved only when a request needs a prime
// larger than any it holds, and it never shrinks: a request for a smaller n
// than a previous one is served from the existing cache. The cache can be
// filled up front:
//
//	engine := factorial.New(factorial.WithPresieve(1_000_000))
//
// Stats reports how often the cache was rebuilt versus reused.
//
// # Integer Width
//
// All arithmetic is performed in Width (64) bits. Exponent advances the
// running prime power with a full-width multiply and stops as soon as the
// product would not fit; at that point the power already exceeds every
// representable n, so no non-zero term is ever dropped.
//
// # Verification
//
// Factorization.Product rebuilds the integer with math/big and Factorial
// computes n! directly, which makes it straightforward to check results:
//
//	ok := engine.Factorize(50).Product().Cmp(factorial.Factorial(50)) == 0
//
// # Concurrency
//
// An Engine is not safe for concurrent use. The cache is mutated in place by
// calls that need a larger sieve; share an Engine between goroutines only
// behind external synchronization, or give each goroutine its own.
package factorial
