// Package ratelimiter implements token bucket throttling keyed by an
// arbitrary string, with an in-memory store and net/http middleware.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//
//	limiter, err := ratelimiter.NewBucket(store, ratelimiter.Config{
//		Capacity:       5,
//		RefillRate:     1,
//		RefillInterval: time.Minute,
//	})
//
//	r.With(ratelimiter.Middleware(limiter, keyFunc)).Post("/auth/login", login)
//
// A Result with negative Remaining means the call was denied. Denied calls
// still consume from the bucket, so hammering a key keeps it locked out.
package ratelimiter
