// Package tracking holds the pure helpers of the affiliate attribution pipeline:
// visitor session ids and their cookie, referrer and user-agent parsing, and commission math.
package tracking

import (
	"fmt"
	"math/rand/v2"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	// CookieName carries the visitor session id between click and conversion
	CookieName = "ath_session"
	// CookieMaxAge is the lifetime of the session cookie
	CookieMaxAge = 30 * 24 * time.Hour

	sessionSuffixLen = 9
	base36           = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// NewSessionID returns "<unix millis>-<9 base36 chars>". Uniqueness is good enough for
// attribution; it is not a credential.
func NewSessionID() string {
	return newSessionID(time.Now(), rand.IntN)
}

func newSessionID(now time.Time, intn func(int) int) string {
	var b strings.Builder
	b.Grow(sessionSuffixLen)
	for i := 0; i < sessionSuffixLen; i++ {
		b.WriteByte(base36[intn(len(base36))])
	}
	return fmt.Sprintf("%d-%s", now.UnixMilli(), b.String())
}

// SessionFromCookie reads the visitor session id, if the browser sent one
func SessionFromCookie(c *gin.Context) (string, bool) {
	id, err := c.Cookie(CookieName)
	if err != nil || strings.TrimSpace(id) == "" {
		return "", false
	}
	return id, true
}

// SetSessionCookie persists the session id for 30 days. The cookie stays readable by
// client script so the browser side can attach it to conversion calls.
func SetSessionCookie(c *gin.Context, sessionID string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, sessionID, int(CookieMaxAge.Seconds()), "/", "", c.Request.TLS != nil, false)
}

// EnsureSession returns the cookie session, creating and setting one when absent
func EnsureSession(c *gin.Context) (sessionID string, created bool) {
	if id, ok := SessionFromCookie(c); ok {
		return id, false
	}
	id := NewSessionID()
	SetSessionCookie(c, id)
	return id, true
}
