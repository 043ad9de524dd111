package middleware

import (
	"hash/maphash"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/planning-service/internal/domain/dto"
	"github.com/guttosm/planning-service/internal/i18n"
)

const defaultRateLimitShards = 16

// clientWindow is the request budget of one client in the current window.
type clientWindow struct {
	used  int
	start time.Time
}

type limiterShard struct {
	mu      sync.Mutex
	clients map[string]clientWindow
}

// decision is the outcome of one rate limit check.
type decision struct {
	allowed   bool
	remaining int
	reset     time.Time
}

// RateLimiter is a fixed-window limiter keyed by client. Clients are spread
// over shards so unrelated clients do not contend on one lock.
type RateLimiter struct {
	shards []limiterShard
	seed   maphash.Seed
	rate   int
	window time.Duration
	now    func() time.Time

	stopCh   chan struct{}
	stopOnce sync.Once
}

// RateLimiterOption configures a RateLimiter.
type RateLimiterOption func(*RateLimiter)

// WithShards sets the number of shards. Non-positive values are ignored.
func WithShards(n int) RateLimiterOption {
	return func(rl *RateLimiter) {
		if n > 0 {
			rl.shards = make([]limiterShard, n)
		}
	}
}

// NewRateLimiter allows rate requests per client in every window and starts
// a goroutine that forgets idle clients until Stop is called.
func NewRateLimiter(rate int, every time.Duration, opts ...RateLimiterOption) *RateLimiter {
	rl := &RateLimiter{
		shards: make([]limiterShard, defaultRateLimitShards),
		seed:   maphash.MakeSeed(),
		rate:   rate,
		window: every,
		now:    time.Now,
		stopCh: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(rl)
	}
	for i := range rl.shards {
		rl.shards[i].clients = make(map[string]clientWindow)
	}

	go rl.sweepLoop()
	return rl
}

func (rl *RateLimiter) shard(client string) *limiterShard {
	return &rl.shards[maphash.String(rl.seed, client)%uint64(len(rl.shards))]
}

// take spends one request of client's budget when any is left.
func (rl *RateLimiter) take(client string) decision {
	s := rl.shard(client)
	now := rl.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.clients[client]
	if !ok || now.Sub(w.start) >= rl.window {
		w = clientWindow{start: now}
	}
	reset := w.start.Add(rl.window)
	if w.used >= rl.rate {
		return decision{reset: reset}
	}

	w.used++
	s.clients[client] = w
	return decision{allowed: true, remaining: rl.rate - w.used, reset: reset}
}

// RateLimit limits requests per client IP.
func (rl *RateLimiter) RateLimit() gin.HandlerFunc {
	return rl.middleware(func(c *gin.Context) string {
		return "ip:" + c.ClientIP()
	})
}

// OperatorRateLimit limits requests per operator. Anonymous requests are
// limited per client IP.
func (rl *RateLimiter) OperatorRateLimit() gin.HandlerFunc {
	return rl.middleware(operatorIdentifier)
}

func (rl *RateLimiter) middleware(clientOf func(*gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		d := rl.take(clientOf(c))

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.rate))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(d.remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(d.reset.Unix(), 10))

		if !d.allowed {
			wait := math.Ceil(d.reset.Sub(rl.now()).Seconds())
			c.Header("Retry-After", strconv.Itoa(max(int(wait), 1)))
			message := i18n.GetTranslator().Translate(i18n.ErrKeyRateLimitExceeded, i18n.GetLocale(c))
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				dto.NewError(dto.ErrCodeRateLimit, message).WithRequestID(GetRequestID(c)))
			return
		}

		c.Next()
	}
}

func operatorIdentifier(c *gin.Context) string {
	if operator := GetOperator(c); operator != "" {
		return "operator:" + operator
	}
	return "ip:" + c.ClientIP()
}

func (rl *RateLimiter) sweepLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.sweep()
		case <-rl.stopCh:
			return
		}
	}
}

// sweep forgets clients whose window ended at least one window ago.
func (rl *RateLimiter) sweep() {
	cutoff := rl.now().Add(-2 * rl.window)
	for i := range rl.shards {
		s := &rl.shards[i]
		s.mu.Lock()
		for client, w := range s.clients {
			if !w.start.After(cutoff) {
				delete(s.clients, client)
			}
		}
		s.mu.Unlock()
	}
}

// Stop ends the sweep goroutine. It is safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stopCh) })
}

// Clients returns the number of clients currently tracked.
func (rl *RateLimiter) Clients() int {
	n := 0
	for i := range rl.shards {
		s := &rl.shards[i]
		s.mu.Lock()
		n += len(s.clients)
		s.mu.Unlock()
	}
	return n
}
