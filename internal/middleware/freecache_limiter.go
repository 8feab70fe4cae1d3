package middleware

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/coocood/freecache"
)

const (
	limiterCacheSize    = 1024 * 1024 // 1 MB, plenty for per-IP counters
	limiterWindowSecond = 60
)

// FreecacheLimiter is a fixed-window request counter backed by an in-process
// freecache instance. The entry TTL is the window, so counters expire on
// their own.
type FreecacheLimiter struct {
	mutex         sync.Mutex
	cache         *freecache.Cache
	allowedPerMin int
}

func NewFreecacheLimiter(allowedPerMin int) *FreecacheLimiter {
	return &FreecacheLimiter{
		cache:         freecache.NewCache(limiterCacheSize),
		allowedPerMin: allowedPerMin,
	}
}

func (l *FreecacheLimiter) Allow(_ context.Context, key string) (bool, time.Duration, error) {
	if l.allowedPerMin <= 0 {
		return true, 0, nil
	}

	l.mutex.Lock()
	defer l.mutex.Unlock()

	cacheKey := []byte(key)

	var count int
	if val, err := l.cache.Get(cacheKey); err == nil {
		count, _ = strconv.Atoi(string(val))
	}

	if count >= l.allowedPerMin {
		retryAfter := time.Duration(limiterWindowSecond) * time.Second
		if ttl, err := l.cache.TTL(cacheKey); err == nil {
			retryAfter = time.Duration(ttl) * time.Second
		}
		return false, retryAfter, nil
	}

	// keep the expiry of the current window when incrementing
	expire := limiterWindowSecond
	if ttl, err := l.cache.TTL(cacheKey); err == nil && ttl > 0 {
		expire = int(ttl)
	}

	if err := l.cache.Set(cacheKey, []byte(strconv.Itoa(count+1)), expire); err != nil {
		return false, 0, err
	}

	return true, 0, nil
}
