package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/saia-da-torre/rsvp/internal/auth"
)

func RegisterRoutes(r *chi.Mux, authHandler *auth.AuthHandler, registrationHandler *RegistrationHandler, apiKeyHandler *APIKeyHandler) {
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Initialize Huma API
	config := huma.DefaultConfig("Saia da Torre RSVP API", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"cookieAuth": {
			Type: "apiKey",
			In:   "cookie",
			Name: auth.CookieName,
		},
		"apiKeyAuth": {
			Type: "apiKey",
			In:   "header",
			Name: "X-API-KEY",
		},
	}
	api := humachi.New(r, config)

	// Public routes
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})
	r.Get("/", registrationHandler.HandleLanding)
	r.Post("/rsvp", registrationHandler.HandleSubmitForm)

	// Auth routes
	r.Get("/auth/discord/login", authHandler.HandleLogin)
	r.Get("/auth/discord/callback", authHandler.HandleCallback)

	// Organizer pages
	r.With(authHandler.AuthMiddleware).Get("/guests", registrationHandler.HandleGuests)

	RegisterAPI(api, authHandler, registrationHandler, apiKeyHandler)
}

// RegisterAPI adds the JSON operations to api.
func RegisterAPI(api huma.API, authHandler *auth.AuthHandler, registrationHandler *RegistrationHandler, apiKeyHandler *APIKeyHandler) {
	secured := func(o *huma.Operation) {
		o.Security = []map[string][]string{{"cookieAuth": {}}, {"apiKeyAuth": {}}}
	}

	huma.Get(api, "/api/event", registrationHandler.HandleEvent)
	huma.Post(api, "/api/mask", registrationHandler.HandleMask)
	huma.Post(api, "/api/rsvp", registrationHandler.HandleRegister, func(o *huma.Operation) {
		o.DefaultStatus = http.StatusCreated
	})

	huma.Get(api, "/me", authHandler.HandleMe, secured)
	huma.Get(api, "/api/invites", registrationHandler.HandleList, secured)
	huma.Post(api, "/api/keys", apiKeyHandler.HandleCreate, secured, func(o *huma.Operation) {
		o.DefaultStatus = http.StatusCreated
	})
	huma.Get(api, "/api/keys", apiKeyHandler.HandleList, secured)
	huma.Delete(api, "/api/keys/{id}", apiKeyHandler.HandleDelete, secured)
}
