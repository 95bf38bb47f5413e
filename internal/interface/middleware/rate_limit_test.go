package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func limiterEngine(t *testing.T, max int, window time.Duration, keyFn KeyFunc, allow AllowFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	e := gin.New()
	e.GET("/ping", RateLimit(rdb, max, window, keyFn, allow), func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return e
}

func ping(e *gin.Engine) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	return w
}

func TestRateLimit_AllowsUnderLimit(t *testing.T) {
	e := limiterEngine(t, 3, time.Minute, KeyByIP(), nil)

	for i := 0; i < 3; i++ {
		w := ping(e)
		require.Equal(t, http.StatusOK, w.Code, "request %d", i+1)
	}
}

func TestRateLimit_BlocksOverLimit(t *testing.T) {
	e := limiterEngine(t, 2, time.Minute, KeyByIP(), nil)

	ping(e)
	ping(e)
	w := ping(e)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "rate limit exceeded")
}

func TestRateLimit_Headers(t *testing.T) {
	e := limiterEngine(t, 5, time.Minute, KeyByIP(), nil)

	w := ping(e)
	assert.Equal(t, "5", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "4", w.Header().Get("X-RateLimit-Remaining"))
}

func TestRateLimit_AllowFuncBypasses(t *testing.T) {
	always := func(c *gin.Context) bool { return true }
	e := limiterEngine(t, 1, time.Minute, KeyByIP(), always)

	for i := 0; i < 5; i++ {
		w := ping(e)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRateLimit_NilRedisFailsOpen(t *testing.T) {
	gin.SetMode(gin.TestMode)
	e := gin.New()
	e.GET("/ping", RateLimit(nil, 1, time.Minute, KeyByIP(), nil), func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	for i := 0; i < 5; i++ {
		w := ping(e)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRateLimit_UnreachableRedisFailsOpen(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	t.Cleanup(func() { _ = rdb.Close() })

	e := gin.New()
	e.GET("/ping", RateLimit(rdb, 1, time.Minute, KeyByIP(), nil), func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	for i := 0; i < 3; i++ {
		w := ping(e)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRateLimit_WindowResets(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	e := gin.New()
	e.GET("/ping", RateLimit(rdb, 1, time.Second, KeyByIP(), nil), func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	require.Equal(t, http.StatusOK, ping(e).Code)
	require.Equal(t, http.StatusTooManyRequests, ping(e).Code)

	mr.FastForward(2 * time.Second)
	assert.Equal(t, http.StatusOK, ping(e).Code)
}

func TestKeyByUserID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	keyFn := KeyByUserID()

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Contains(t, keyFn(c), "anon")

	c.Set("userID", int64(42))
	assert.Equal(t, "rl:user:42", keyFn(c))
}
