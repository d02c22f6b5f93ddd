package middleware

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// client tracks a single caller's token bucket and the last time it was
// used, so idle entries can be reaped.
type client struct {
	bucket   *rate.Limiter
	lastSeen time.Time
}

type throttle struct {
	mu      sync.Mutex
	clients map[string]*client
	rps     rate.Limit
	burst   int
	idleTTL time.Duration
}

// Limit rejects callers exceeding rps (with the given burst) per remote
// IP. Entries idle longer than ttl are reaped once a minute; the reaper
// stops when ctx is cancelled.
func Limit(ctx context.Context, rps, burst int, ttl time.Duration, logger *slog.Logger) func(http.Handler) http.Handler {
	t := &throttle{
		clients: make(map[string]*client),
		rps:     rate.Limit(rps),
		burst:   burst,
		idleTTL: ttl,
	}

	go t.reap(ctx)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				logger.Error("cannot parse remote address", slog.String("addr", r.RemoteAddr), slog.String("error", err.Error()))
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}

			if !t.allow(ip) {
				logger.Warn("rate limit exceeded", slog.String("ip", ip))
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (t *throttle) allow(ip string) bool {
	t.mu.Lock()
	c, ok := t.clients[ip]
	if !ok {
		c = &client{bucket: rate.NewLimiter(t.rps, t.burst)}
		t.clients[ip] = c
	}
	c.lastSeen = time.Now()
	t.mu.Unlock()

	return c.bucket.Allow()
}

func (t *throttle) reap(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.mu.Lock()
			for ip, c := range t.clients {
				if time.Since(c.lastSeen) > t.idleTTL {
					delete(t.clients, ip)
				}
			}
			t.mu.Unlock()
		}
	}
}
