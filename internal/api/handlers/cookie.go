package handlers

import (
	"net/http"

	"github.com/BramsuryaJP/my-portfolio-backend/internal/api/middleware"
	"github.com/BramsuryaJP/my-portfolio-backend/internal/service"
)

// CookieHelper manages the auth token cookie. When cookie transport is
// disabled the helper never sets the cookie, leaving header-only
// clients unaffected; clearing is always allowed.
type CookieHelper struct {
	enabled bool
}

func NewCookieHelper(enabled bool) *CookieHelper {
	return &CookieHelper{enabled: enabled}
}

func (h *CookieHelper) SetAuthCookie(w http.ResponseWriter, token string) {
	if !h.enabled {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.TokenCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(service.TokenTTL.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})
}

func (h *CookieHelper) ClearAuthCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.TokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})
}
