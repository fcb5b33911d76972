package session

import (
	"net/http"
	"strings"
)

const (
	// CookieName is the cookie the web client stores its session key in.
	CookieName = "session_id"

	// HeaderName overrides the cookie when present.
	HeaderName = "X-Session-Id"

	// Sentinel is returned when neither header nor cookie carry a key.
	Sentinel = "no-session"

	// ProPrefix marks paid sessions. Any caller who sets a cookie with this
	// prefix is treated as pro - there is no verification behind it.
	ProPrefix = "pro_"

	// AnonPrefix marks sessions issued to anonymous visitors by the web client.
	AnonPrefix = "anon_"
)

// FromRequest derives the session key for a request. Header wins over
// cookie, cookie wins over the sentinel. Never returns an empty string.
func FromRequest(r *http.Request) string {
	if key := r.Header.Get(HeaderName); key != "" {
		return key
	}

	if cookie, err := r.Cookie(CookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	return Sentinel
}

// IsPro reports whether the key belongs to the pro tier.
func IsPro(key string) bool {
	return strings.HasPrefix(key, ProPrefix)
}

// IsAnon reports whether the key was issued to an anonymous visitor.
func IsAnon(key string) bool {
	return strings.HasPrefix(key, AnonPrefix)
}
