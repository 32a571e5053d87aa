package auth

import (
	"context"
	"net/http"
)

type contextKey string

const OrganizerIDKey contextKey = "organizer_id"

// AuthMiddleware admits organizers by X-API-KEY or session cookie. Browsers
// without a cookie are sent to the Discord login.
func (h *AuthHandler) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 1. Check for API Key Header
		if apiKey := r.Header.Get("X-API-KEY"); apiKey != "" {
			organizerID, err := h.organizerFromAPIKey(apiKey)
			if err != nil {
				http.Error(w, "Unauthorized: Invalid API key", http.StatusUnauthorized)
				return
			}
			ctx := context.WithValue(r.Context(), OrganizerIDKey, organizerID)
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		// 2. Fallback to JWT Cookie
		cookie, err := r.Cookie(CookieName)
		if err != nil {
			http.Redirect(w, r, "/auth/discord/login", http.StatusFound)
			return
		}

		organizerID, remaining, err := h.parseToken(cookie.Value)
		if err != nil {
			http.Error(w, "Unauthorized: Invalid token", http.StatusUnauthorized)
			return
		}

		// Sliding session: refresh token if it's more than halfway through its duration
		if remaining < TokenDuration/2 {
			if newToken, err := h.GenerateToken(organizerID); err == nil {
				http.SetCookie(w, sessionCookie(newToken))
			}
		}

		ctx := context.WithValue(r.Context(), OrganizerIDKey, organizerID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
