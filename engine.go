package factorial

import (
	"time"

	"github.com/jmgilman/go/factorial/internal/logging"
	"github.com/jmgilman/go/factorial/internal/primes"
)

// Engine computes prime factorizations of factorials.
//
// An Engine owns a cache of primes that grows monotonically across calls and
// is reused whenever it already covers the requested argument. An Engine is
// not safe for concurrent use; callers sharing one across goroutines must
// synchronize externally.
type Engine struct {
	cache    primes.Cache
	logger   *logging.Logger
	presieve *uint64
	stats    Stats
}

// Stats reports how an Engine's prime cache has been used.
type Stats struct {
	// Factorizations is the number of Factorize calls with n >= 2.
	Factorizations uint64

	// Sieves is the number of times the prime cache was (re)built.
	Sieves uint64

	// CacheHits is the number of factorizations served without re-sieving.
	CacheHits uint64

	// CachedPrimes is the current number of cached primes.
	CachedPrimes int

	// LargestPrime is the largest cached prime, or 0 when the cache is empty.
	LargestPrime uint64
}

// New creates an Engine configured by the given options.
//
// Example:
//
//	engine := factorial.New(factorial.WithPresieve(100))
//	factors := engine.Factorize(50)
//	fmt.Println(factors[2]) // 47
func New(opts ...Option) *Engine {
	e := &Engine{
		cache:  primes.Cache{},
		logger: logging.NewNopLogger(),
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.presieve != nil {
		e.ensure(*e.presieve)
	}

	return e
}

// Factorize returns the prime factorization of n! as a mapping from prime to
// exponent. 0! and 1! have no prime factors and yield an empty mapping.
//
// The prime cache is re-sieved up to n only when its largest prime is below
// n; a smaller n than any previous call reuses the existing cache. Coverage is
// judged by the largest cached prime, not by the limit last sieved to, so an
// engine pre-sieved to 100 (largest prime 97) re-sieves for n = 98.
//
// Sieving allocates one byte per integer up to n. n must be below
// math.MaxUint64, and in practice is bounded by available memory.
func (e *Engine) Factorize(n uint64) Factorization {
	result := make(Factorization)
	if n < 2 {
		return result
	}

	start := time.Now()
	e.stats.Factorizations++

	if e.cache.Covers(n) {
		e.stats.CacheHits++
		largest, _ := e.cache.Max()
		logging.LogCacheHit(e.logger.WithOperation(logging.OpFactorize), n, largest)
	} else {
		e.ensure(n)
	}

	for _, p := range e.cache.UpTo(n) {
		if exp := Exponent(n, p); exp > 0 {
			result[p] = exp
		}
	}

	logging.LogFactorization(e.logger.WithOperation(logging.OpFactorize), n, len(result), time.Since(start))

	return result
}

// Primes returns a copy of the currently cached primes in ascending order.
func (e *Engine) Primes() []uint64 {
	return e.cache.Clone()
}

// Stats returns a snapshot of the engine's cache statistics.
func (e *Engine) Stats() Stats {
	s := e.stats
	s.CachedPrimes = len(e.cache)
	s.LargestPrime, _ = e.cache.Max()
	return s
}

// ensure grows the cache so it covers limit.
func (e *Engine) ensure(limit uint64) {
	if e.cache.Covers(limit) {
		return
	}

	start := time.Now()
	previous := len(e.cache)
	e.cache = e.cache.Extend(limit)
	e.stats.Sieves++

	logging.LogSieve(e.logger.WithOperation(logging.OpSieve), limit, len(e.cache), previous, time.Since(start))
}
