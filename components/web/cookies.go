package web

import (
	"net/http"
	"strings"

	router "github.com/goliatone/go-router"

	admin "github.com/certifurb/go-storefront/components/admin"
)

// sessionToken extracts the console session token from the request's Cookie
// header. The cookie is named after the storage key the console keeps the
// signed-in user under.
func sessionToken(ctx router.Context) string {
	header := ctx.Header("Cookie")
	if header == "" {
		return ""
	}
	for _, part := range strings.Split(header, ";") {
		part = strings.TrimSpace(part)
		if value, ok := strings.CutPrefix(part, admin.SessionKey+"="); ok {
			return value
		}
	}
	return ""
}

func setSessionCookie(ctx router.Context, token string) {
	cookie := &http.Cookie{
		Name:     admin.SessionKey,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	ctx.SetHeader("Set-Cookie", cookie.String())
}

func clearSessionCookie(ctx router.Context) {
	cookie := &http.Cookie{
		Name:     admin.SessionKey,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	ctx.SetHeader("Set-Cookie", cookie.String())
}
