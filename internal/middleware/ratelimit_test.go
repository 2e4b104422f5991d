package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

func setupRateLimitTest(t *testing.T) (*echo.Echo, *miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	e := echo.New()
	return e, mr, rdb
}

func doRequest(t *testing.T, e *echo.Echo, handler echo.HandlerFunc, mw echo.MiddlewareFunc, ip string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/v1/login", nil)
	req.Header.Set("X-Real-Ip", ip)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/login")

	if err := mw(handler)(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestRateLimit_AllowsUnderLimit(t *testing.T) {
	e, _, rdb := setupRateLimitTest(t)

	mw := RateLimit(rdb, 3, time.Minute)
	handler := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	for i := 0; i < 3; i++ {
		rec := doRequest(t, e, handler, mw, "10.0.0.1")
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: expected status 200, got %d", i+1, rec.Code)
		}
	}
}

func TestRateLimit_BlocksOverLimit(t *testing.T) {
	e, _, rdb := setupRateLimitTest(t)

	mw := RateLimit(rdb, 2, time.Minute)
	handler := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	doRequest(t, e, handler, mw, "10.0.0.2")
	doRequest(t, e, handler, mw, "10.0.0.2")

	rec := doRequest(t, e, handler, mw, "10.0.0.2")
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("expected status 429, got %d", rec.Code)
	}
}

func TestRateLimit_SeparateCountersPerIP(t *testing.T) {
	e, _, rdb := setupRateLimitTest(t)

	mw := RateLimit(rdb, 1, time.Minute)
	handler := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	doRequest(t, e, handler, mw, "10.0.0.3")

	rec := doRequest(t, e, handler, mw, "10.0.0.4")
	if rec.Code != http.StatusOK {
		t.Errorf("different IP should not be limited, got %d", rec.Code)
	}
}

func TestRateLimit_ResetsAfterWindow(t *testing.T) {
	e, mr, rdb := setupRateLimitTest(t)

	mw := RateLimit(rdb, 1, time.Minute)
	handler := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	doRequest(t, e, handler, mw, "10.0.0.5")
	rec := doRequest(t, e, handler, mw, "10.0.0.5")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected status 429 before window reset, got %d", rec.Code)
	}

	// Advance miniredis past the window so the key expires.
	mr.FastForward(2 * time.Minute)

	rec = doRequest(t, e, handler, mw, "10.0.0.5")
	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200 after window reset, got %d", rec.Code)
	}
}

func TestRateLimit_AllowsWhenRedisDown(t *testing.T) {
	e, mr, rdb := setupRateLimitTest(t)

	mw := RateLimit(rdb, 1, time.Minute)
	handler := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	mr.Close()

	rec := doRequest(t, e, handler, mw, "10.0.0.6")
	if rec.Code != http.StatusOK {
		t.Errorf("expected request to pass when redis is down, got %d", rec.Code)
	}
}
