package controller

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/labstack/echo"
	"golang.org/x/time/rate"

	"renovation-marketplace-api/internal/entity"
	"renovation-marketplace-api/internal/service"
)

const sessionContextKey = "session"

// TokenAuth validates the `Authorization: Token <t>` header the SPA
// sends and stores the resolved actor session in the request context.
func TokenAuth(authService service.Auth) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return c.JSON(http.StatusUnauthorized, errorResponse{"Authorization header required"})
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Token") {
				return c.JSON(http.StatusUnauthorized, errorResponse{"Authorization header format must be Token {token}"})
			}

			session, err := authService.ResolveSession(c.Request().Context(), parts[1])
			if err != nil {
				return c.JSON(http.StatusUnauthorized, errorResponse{"Invalid or expired token"})
			}

			c.Set(sessionContextKey, session)

			return next(c)
		}
	}
}

func sessionFromContext(c echo.Context) *entity.Session {
	session, _ := c.Get(sessionContextKey).(*entity.Session)

	return session
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter throttles the public auth endpoints per client IP.
type RateLimiter struct {
	clients   map[string]*clientLimiter
	mu        sync.Mutex
	perSecond int
	burst     int
}

func NewRateLimiter(perSecond int, burst int) *RateLimiter {
	rl := &RateLimiter{
		clients:   make(map[string]*clientLimiter),
		perSecond: perSecond,
		burst:     burst,
	}
	go rl.cleanupClients()

	return rl
}

func (rl *RateLimiter) getClientLimiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	client, exists := rl.clients[ip]
	if !exists {
		client = &clientLimiter{limiter: rate.NewLimiter(rate.Limit(rl.perSecond), rl.burst)}
		rl.clients[ip] = client
	}
	client.lastSeen = time.Now()

	return client.limiter
}

func (rl *RateLimiter) cleanupClients() {
	for {
		time.Sleep(10 * time.Minute)
		rl.mu.Lock()
		for ip, client := range rl.clients {
			if time.Since(client.lastSeen) > 30*time.Minute {
				delete(rl.clients, ip)
			}
		}
		rl.mu.Unlock()
	}
}

func (rl *RateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !rl.getClientLimiter(c.RealIP()).Allow() {
				return c.JSON(http.StatusTooManyRequests, errorResponse{"Too many requests, slow down"})
			}

			return next(c)
		}
	}
}
