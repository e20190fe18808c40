package auth

import (
	"net/http"
	"time"
)

// CookieName is the cookie carrying the session token.
const CookieName = "token"

// SessionCookie builds the HTTP-only cookie for a freshly issued token.
// Production cookies are Secure and cross-site; development cookies are Lax.
func SessionCookie(token string, expiresAt time.Time, production bool) *http.Cookie {
	c := baseCookie(production)
	c.Value = token
	c.Expires = expiresAt
	return c
}

// RevokedCookie clears the session cookie. There is no server-side state to drop.
func RevokedCookie(production bool) *http.Cookie {
	c := baseCookie(production)
	c.MaxAge = -1
	c.Expires = time.Unix(0, 0)
	return c
}

func baseCookie(production bool) *http.Cookie {
	c := &http.Cookie{
		Name:     CookieName,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if production {
		c.Secure = true
		c.SameSite = http.SameSiteNoneMode
	}
	return c
}
