package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/time/rate"
)

const minLimiterIdle = 10 * time.Minute

type ipLimiter struct {
	lim  *rate.Limiter
	seen time.Time
}

// ipLimiters keeps one bucket per client IP. Buckets idle longer than idle
// are dropped; by then they have refilled to burst, so a fresh one is equal.
type ipLimiters struct {
	mu        sync.Mutex
	limiters  map[string]*ipLimiter
	rps       rate.Limit
	burst     int
	idle      time.Duration
	lastSweep time.Time
	now       func() time.Time
}

func newIPLimiters(rps float64, burst int) *ipLimiters {
	idle := minLimiterIdle
	if rps > 0 {
		if refill := time.Duration(float64(burst) / rps * float64(time.Second)); refill > idle {
			idle = refill
		}
	}
	return &ipLimiters{
		limiters: make(map[string]*ipLimiter),
		rps:      rate.Limit(rps),
		burst:    burst,
		idle:     idle,
		now:      time.Now,
	}
}

func (s *ipLimiters) get(ip string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if now.Sub(s.lastSweep) >= s.idle {
		s.sweepLocked(now)
	}

	l, ok := s.limiters[ip]
	if !ok {
		l = &ipLimiter{lim: rate.NewLimiter(s.rps, s.burst)}
		s.limiters[ip] = l
	}
	l.seen = now
	return l.lim
}

func (s *ipLimiters) sweepLocked(now time.Time) {
	for ip, l := range s.limiters {
		if now.Sub(l.seen) >= s.idle {
			delete(s.limiters, ip)
		}
	}
	s.lastSweep = now
}

func (s *ipLimiters) size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.limiters)
}

// RateLimit applies a token bucket per client IP.
func RateLimit(rps float64, burst int, log logger.Logger) ginext.HandlerFunc {
	store := newIPLimiters(rps, burst)

	return func(c *ginext.Context) {
		ip := c.ClientIP()
		if !store.get(ip).Allow() {
			log.LogAttrs(c.Request.Context(), logger.WarnLevel, "rate limit exceeded",
				logger.String("ip", ip),
				logger.String("path", c.FullPath()),
			)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, ginext.H{"error": "rate limit exceeded"})
			return
		}

		c.Next()
	}
}
