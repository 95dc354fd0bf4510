// Package primes maintains an ordered cache of prime numbers.
//
// A Cache is a plain, strictly increasing slice of primes. It is owned by
// value by whoever holds it; every operation that could change its contents
// returns a new Cache instead of mutating the receiver. Growth is monotonic:
//
//	c := primes.Sieve(100)
//	c = c.Extend(50)   // unchanged, 100 already covers 50
//	c = c.Extend(1000) // re-sieved up to 1000
package primes
