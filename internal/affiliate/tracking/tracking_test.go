package tracking

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func ptr[T any](v T) *T { return &v }

func TestNewSessionID_Format(t *testing.T) {
	id := NewSessionID()
	assert.Regexp(t, regexp.MustCompile(`^\d{13}-[0-9a-z]{9}$`), id)
	assert.NotEqual(t, id, NewSessionID())
}

func TestNewSessionID_Deterministic(t *testing.T) {
	now := time.UnixMilli(1700000000123)
	id := newSessionID(now, func(n int) int { return n - 1 })
	assert.Equal(t, "1700000000123-zzzzzzzzz", id)
}

func TestEnsureSession_CreatesCookie(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/affiliate/click", nil)

	id, created := EnsureSession(c)
	require.True(t, created)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, CookieName, cookie.Name)
	assert.Equal(t, id, cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, 30*24*60*60, cookie.MaxAge)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.False(t, cookie.HttpOnly)
}

func TestEnsureSession_ReusesCookie(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/affiliate/click", nil)
	c.Request.AddCookie(&http.Cookie{Name: CookieName, Value: "1700000000000-abcdefghi"})

	id, created := EnsureSession(c)

	assert.False(t, created)
	assert.Equal(t, "1700000000000-abcdefghi", id)
	assert.Empty(t, w.Result().Cookies())
}

func TestParseUTM(t *testing.T) {
	params := ParseUTM("https://x.test/?utm_source=newsletter&utm_campaign=spring")

	require.NotNil(t, params.Source)
	assert.Equal(t, "newsletter", *params.Source)
	require.NotNil(t, params.Campaign)
	assert.Equal(t, "spring", *params.Campaign)
	assert.Nil(t, params.Medium)
	assert.Nil(t, params.Term)
	assert.Nil(t, params.Content)
}

func TestParseUTM_EmptyAndInvalid(t *testing.T) {
	assert.Equal(t, UTMParams{}, ParseUTM(""))
	assert.Equal(t, UTMParams{}, ParseUTM("://bad url"))
	assert.Equal(t, UTMParams{}, ParseUTM("https://x.test/?utm_source="))
}

func TestParseUserAgent(t *testing.T) {
	tests := []struct {
		name string
		ua   string
		want ClientInfo
	}{
		{
			name: "windows chrome desktop",
			ua:   "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36",
			want: ClientInfo{Device: "desktop", Browser: "chrome", OS: "windows", Country: "unknown"},
		},
		{
			name: "mac firefox",
			ua:   "Mozilla/5.0 (Macintosh; Intel Mac OS X 14.1; rv:121.0) Gecko/20100101 Firefox/121.0",
			want: ClientInfo{Device: "desktop", Browser: "firefox", OS: "macos", Country: "unknown"},
		},
		{
			name: "iphone safari matches Mac before iOS",
			ua:   "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 Version/17.0 Mobile/15E148 Safari/604.1",
			want: ClientInfo{Device: "mobile", Browser: "safari", OS: "macos", Country: "unknown"},
		},
		{
			name: "android chrome matches Linux before Android",
			ua:   "Mozilla/5.0 (Linux; Android 13; Pixel 7) AppleWebKit/537.36 Chrome/120.0 Mobile Safari/537.36",
			want: ClientInfo{Device: "mobile", Browser: "chrome", OS: "linux", Country: "unknown"},
		},
		{
			name: "edge is reported as chrome",
			ua:   "Mozilla/5.0 (Windows NT 10.0) AppleWebKit/537.36 Chrome/120.0 Safari/537.36 Edg/120.0",
			want: ClientInfo{Device: "desktop", Browser: "chrome", OS: "windows", Country: "unknown"},
		},
		{
			name: "unknown agent",
			ua:   "curl/8.4.0",
			want: ClientInfo{Device: "desktop", Browser: "unknown", OS: "unknown", Country: "unknown"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseUserAgent(tt.ua))
		})
	}
}

func TestUserAgent(t *testing.T) {
	h := http.Header{}
	assert.Equal(t, "unknown", UserAgent(h))

	h.Set("User-Agent", "curl/8.0")
	assert.Equal(t, "curl/8.0", UserAgent(h))
}

func TestCalculateCommission(t *testing.T) {
	assert.Equal(t, 20.0, CalculateCommission(ptr(200.0), ptr(10.0)))
	assert.Equal(t, 0.0, CalculateCommission(ptr(200.0), nil))
	assert.Equal(t, 0.0, CalculateCommission(nil, ptr(10.0)))
	assert.Equal(t, 3.33, CalculateCommission(ptr(33.3), ptr(10.0)))
}

func TestBuildAffiliateURL(t *testing.T) {
	utm := UTMParams{Source: ptr("newsletter")}
	got := BuildAffiliateURL("https://tool.test/signup?plan=pro", "tool-1", "sess-1", utm)

	u, err := url.Parse(got)
	require.NoError(t, err)
	q := u.Query()
	assert.Equal(t, "pro", q.Get("plan"))
	assert.Equal(t, AffiliateRef, q.Get("ref"))
	assert.Equal(t, "tool-1", q.Get("tool_id"))
	assert.Equal(t, "sess-1", q.Get("session_id"))
	assert.Equal(t, "newsletter", q.Get("utm_source"))
	assert.False(t, strings.Contains(got, "utm_medium"))
}

func TestBuildAffiliateURL_Unparseable(t *testing.T) {
	assert.Equal(t, "not a url", BuildAffiliateURL("not a url", "tool-1", "", UTMParams{}))
}
