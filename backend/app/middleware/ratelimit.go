package middleware

import (
	"encoding/json"
	"net"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimit caps requests per second per client IP using a redis counter
// with a one-second expiry. A nil client disables limiting.
func RateLimit(rdb *redis.Client, maxRequests int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if rdb == nil || maxRequests <= 0 {
				next.ServeHTTP(w, r)
				return
			}
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}
			key := "ratelimit:" + ip
			count, _ := rdb.Get(r.Context(), key).Int()
			if count >= maxRequests {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "Too many requests"})
				return
			}
			rdb.Incr(r.Context(), key)
			rdb.Expire(r.Context(), key, time.Second)
			next.ServeHTTP(w, r)
		})
	}
}
