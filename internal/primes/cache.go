package primes

import (
	"math"
	"sort"
)

// MaxLimit is the largest limit Sieve accepts. The marker array holds
// limit+1 entries, which must be countable in a uint64; real limits are
// bounded far lower by available memory.
const MaxLimit = math.MaxUint64 - 1

// Cache is an ascending list of distinct primes.
type Cache []uint64

// Sieve returns every prime in [2, limit] in ascending order using the
// Sieve of Eratosthenes. Limits below 2 produce an empty cache. Sieve
// allocates one byte per integer up to limit and panics if limit exceeds
// MaxLimit.
func Sieve(limit uint64) Cache {
	if limit < 2 {
		return Cache{}
	}
	if limit > MaxLimit {
		panic("primes: sieve limit exceeds MaxLimit")
	}

	composite := make([]bool, limit+1)
	composite[0] = true
	composite[1] = true

	// p <= limit/p avoids overflowing p*p near the top of the uint64 range.
	for p := uint64(2); p <= limit/p; p++ {
		if composite[p] {
			continue
		}
		for i := p * p; i <= limit; i += p {
			composite[i] = true
			if i > limit-p {
				break
			}
		}
	}

	result := make(Cache, 0, estimateCount(limit))
	for i := uint64(2); i <= limit; i++ {
		if !composite[i] {
			result = append(result, i)
		}
	}

	return result
}

// Max returns the largest cached prime. The boolean is false when the
// cache is empty.
func (c Cache) Max() (uint64, bool) {
	if len(c) == 0 {
		return 0, false
	}
	return c[len(c)-1], true
}

// Covers reports whether the cache holds every prime <= n.
func (c Cache) Covers(n uint64) bool {
	largest, ok := c.Max()
	return ok && largest >= n
}

// Extend returns a cache covering every prime <= limit. When the receiver
// already covers limit it is returned as is; otherwise a fresh sieve up to
// limit is returned. The result is never smaller than the receiver.
func (c Cache) Extend(limit uint64) Cache {
	if c.Covers(limit) {
		return c
	}

	return Sieve(limit)
}

// UpTo returns the prefix of the cache containing primes <= n. The result
// shares the receiver's backing array.
func (c Cache) UpTo(n uint64) Cache {
	idx := sort.Search(len(c), func(i int) bool { return c[i] > n })
	return c[:idx]
}

// Clone returns a copy of the cache that shares no memory with the receiver.
func (c Cache) Clone() Cache {
	out := make(Cache, len(c))
	copy(out, c)
	return out
}

// estimateCount approximates pi(limit) to size the result slice.
func estimateCount(limit uint64) int {
	switch {
	case limit < 100:
		return 25
	case limit > 1<<40:
		return 1 << 20
	}

	// pi(x) < 1.26 x / ln x for x > 1; use the bit length as a cheap log2.
	bits := 0
	for v := limit; v > 0; v >>= 1 {
		bits++
	}
	return int(limit * 2 / uint64(bits))
}
