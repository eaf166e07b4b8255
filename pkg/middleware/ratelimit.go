package middleware

import (
	"net/http"
	"sync"
	"time"

	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	maxTrackedProfiles = 10000
	limiterIdleTTL     = 10 * time.Minute
)

type trackedLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// limiterSet holds one bucket per profile, at most max of them.
type limiterSet struct {
	mu       sync.Mutex
	limiters map[string]*trackedLimiter
	limit    rate.Limit
	burst    int
	max      int
	idleTTL  time.Duration
	now      func() time.Time
}

func newLimiterSet(config utils.RateLimitConfig) *limiterSet {
	return &limiterSet{
		limiters: make(map[string]*trackedLimiter),
		limit:    rate.Limit(config.RPS),
		burst:    config.Burst,
		max:      maxTrackedProfiles,
		idleTTL:  limiterIdleTTL,
		now:      time.Now,
	}
}

func (s *limiterSet) get(profileID string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if tracked, ok := s.limiters[profileID]; ok {
		tracked.lastSeen = now
		return tracked.limiter
	}

	if len(s.limiters) >= s.max {
		s.evict(now)
	}

	tracked := &trackedLimiter{limiter: rate.NewLimiter(s.limit, s.burst), lastSeen: now}
	s.limiters[profileID] = tracked
	return tracked.limiter
}

// evict drops idle buckets, or the least recently seen one when none is idle.
func (s *limiterSet) evict(now time.Time) {
	var (
		oldestID string
		oldest   time.Time
	)
	for id, tracked := range s.limiters {
		if now.Sub(tracked.lastSeen) > s.idleTTL {
			delete(s.limiters, id)
			continue
		}
		if oldestID == "" || tracked.lastSeen.Before(oldest) {
			oldestID, oldest = id, tracked.lastSeen
		}
	}

	if len(s.limiters) >= s.max && oldestID != "" {
		delete(s.limiters, oldestID)
	}
}

// RateLimit applies a token bucket per profile. It must run after Profile.
func RateLimit(config utils.RateLimitConfig, logger *zap.Logger) func(http.Handler) http.Handler {
	limiters := newLimiterSet(config)

	return func(next http.Handler) http.Handler {
		if config.RPS <= 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			profileID := utils.GetProfileIDFromContext(r.Context())

			if !limiters.get(profileID).Allow() {
				logger.Warn("Rate limit exceeded",
					zap.String("profile_id", profileID),
					zap.String("path", r.URL.Path),
				)
				utils.ResponseTooManyRequests(w, "Too many requests")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
