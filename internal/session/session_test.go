package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFromRequest(t *testing.T) {
	tests := []struct {
		name   string
		header string
		cookie string
		want   string
	}{
		{"header wins over cookie", "pro_abc", "anon_xyz", "pro_abc"},
		{"cookie when no header", "", "anon_xyz", "anon_xyz"},
		{"sentinel when nothing set", "", "", "no-session"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/ask", nil)
			if tt.header != "" {
				r.Header.Set(HeaderName, tt.header)
			}
			if tt.cookie != "" {
				r.AddCookie(&http.Cookie{Name: CookieName, Value: tt.cookie})
			}

			if got := FromRequest(r); got != tt.want {
				t.Errorf("FromRequest() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFromRequestIgnoresOtherCookies(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/ask", nil)
	r.AddCookie(&http.Cookie{Name: "theme", Value: "dark"})

	if got := FromRequest(r); got != Sentinel {
		t.Errorf("FromRequest() = %q, want sentinel", got)
	}
}

func TestIsPro(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"pro_12345", true},
		{"pro_", true},
		{"anon_12345", false},
		{"no-session", false},
		{"", false},
		{"PRO_12345", false},
	}

	for _, tt := range tests {
		if got := IsPro(tt.key); got != tt.want {
			t.Errorf("IsPro(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestIsAnon(t *testing.T) {
	if !IsAnon("anon_42") {
		t.Error("IsAnon(anon_42) = false, want true")
	}
	if IsAnon("pro_42") {
		t.Error("IsAnon(pro_42) = true, want false")
	}
}
