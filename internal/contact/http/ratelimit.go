package http

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	maxTrackedClients = 10000
	clientIdleTTL     = 10 * time.Minute
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ipLimiter hands out one token bucket per client IP.
type ipLimiter struct {
	mu         sync.Mutex
	clients    map[string]*clientLimiter
	maxClients int
	limit      rate.Limit
	burst      int
	now        func() time.Time
}

func newIPLimiter(perMinute, burst int) *ipLimiter {
	if burst <= 0 {
		burst = 1
	}
	return &ipLimiter{
		clients:    make(map[string]*clientLimiter),
		maxClients: maxTrackedClients,
		limit:      rate.Limit(float64(perMinute) / 60),
		burst:      burst,
		now:        time.Now,
	}
}

func (l *ipLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	c, ok := l.clients[ip]
	if !ok {
		if len(l.clients) >= l.maxClients {
			l.evictIdle(now)
		}
		if len(l.clients) >= l.maxClients {
			l.evictOldest()
		}
		c = &clientLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[ip] = c
	}
	c.lastSeen = now
	return c.limiter.AllowN(now, 1)
}

// evictOldest drops the least recently seen client. Must be called with mu held.
func (l *ipLimiter) evictOldest() {
	var (
		oldestIP string
		oldest   time.Time
		found    bool
	)
	for ip, c := range l.clients {
		if !found || c.lastSeen.Before(oldest) {
			oldestIP, oldest, found = ip, c.lastSeen, true
		}
	}
	if found {
		delete(l.clients, oldestIP)
	}
}

// evictIdle must be called with mu held.
func (l *ipLimiter) evictIdle(now time.Time) {
	for ip, c := range l.clients {
		if now.Sub(c.lastSeen) > clientIdleTTL {
			delete(l.clients, ip)
		}
	}
}

// RateLimit rejects clients exceeding perMinute requests with 429.
func RateLimit(perMinute, burst int) gin.HandlerFunc {
	l := newIPLimiter(perMinute, burst)
	return func(c *gin.Context) {
		if !l.allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}
