package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/saia-da-torre/rsvp/internal/config"
	"github.com/saia-da-torre/rsvp/internal/models"
	"golang.org/x/oauth2"
	"gorm.io/gorm"
)

const (
	DiscordAuthorizeEndpoint = "https://discord.com/api/oauth2/authorize"
	DiscordTokenEndpoint     = "https://discord.com/api/oauth2/token"
	DiscordUserAPI           = "https://discord.com/api/users/@me"
	DiscordUserGuildsAPI     = "https://discord.com/api/users/@me/guilds"

	CookieName    = "auth_token"
	TokenDuration = 24 * time.Hour

	// AfterLoginPath is where organizers land once the callback succeeds.
	AfterLoginPath = "/guests"
)

var (
	errInvalidToken  = errors.New("invalid token")
	errInvalidClaims = errors.New("invalid token claims")
)

type AuthHandler struct {
	oauthConfig *oauth2.Config
	db          *gorm.DB
	cfg         *config.Config
}

func NewAuthHandler(cfg *config.Config, db *gorm.DB) *AuthHandler {
	return &AuthHandler{
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.DiscordClientID,
			ClientSecret: cfg.DiscordClientSecret,
			RedirectURL:  cfg.DiscordRedirectURL,
			Scopes:       []string{"identify", "email", "guilds"},
			Endpoint: oauth2.Endpoint{
				AuthURL:  DiscordAuthorizeEndpoint,
				TokenURL: DiscordTokenEndpoint,
			},
		},
		db:  db,
		cfg: cfg,
	}
}

func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	url := h.oauthConfig.AuthCodeURL("state", oauth2.AccessTypeOnline)
	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

func (h *AuthHandler) HandleCallback(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		http.Error(w, "Code not found", http.StatusBadRequest)
		return
	}

	token, err := h.oauthConfig.Exchange(r.Context(), code)
	if err != nil {
		http.Error(w, "Failed to exchange token", http.StatusInternalServerError)
		return
	}

	client := h.oauthConfig.Client(r.Context(), token)

	// Only members of the organizers' guild may see the guest list.
	if h.cfg.DiscordGuildID != "" {
		isMember, err := h.isGuildMember(client)
		if err != nil {
			http.Error(w, "Failed to get user guilds", http.StatusInternalServerError)
			return
		}
		if !isMember {
			http.Error(w, "Access denied: You are not a member of the required guild.", http.StatusForbidden)
			return
		}
	}

	resp, err := client.Get(DiscordUserAPI)
	if err != nil {
		http.Error(w, "Failed to get user info", http.StatusInternalServerError)
		return
	}
	defer resp.Body.Close()

	var discordUser struct {
		ID       string `json:"id"`
		Username string `json:"username"`
		Email    string `json:"email"`
		Avatar   string `json:"avatar"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&discordUser); err != nil {
		http.Error(w, "Failed to decode user info", http.StatusInternalServerError)
		return
	}

	var organizer models.Organizer
	if err := h.db.FirstOrInit(&organizer, models.Organizer{DiscordID: discordUser.ID}).Error; err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	organizer.Username = discordUser.Username
	organizer.Email = discordUser.Email
	organizer.Avatar = discordUser.Avatar

	if err := h.db.Save(&organizer).Error; err != nil {
		http.Error(w, "Failed to save organizer", http.StatusInternalServerError)
		return
	}

	jwtToken, err := h.GenerateToken(organizer.ID)
	if err != nil {
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, sessionCookie(jwtToken))
	http.Redirect(w, r, AfterLoginPath, http.StatusFound)
}

func (h *AuthHandler) isGuildMember(client *http.Client) (bool, error) {
	resp, err := client.Get(DiscordUserGuildsAPI)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	var guilds []struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&guilds); err != nil {
		return false, err
	}

	for _, g := range guilds {
		if g.ID == h.cfg.DiscordGuildID {
			return true, nil
		}
	}
	return false, nil
}

func (h *AuthHandler) GenerateToken(organizerID uint) (string, error) {
	claims := jwt.MapClaims{
		"organizer_id": organizerID,
		"exp":          time.Now().Add(TokenDuration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.cfg.JWTSecret))
}

// parseToken returns the organizer in tokenString and how long the token
// has left.
func (h *AuthHandler) parseToken(tokenString string) (uint, time.Duration, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(h.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return 0, 0, errInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, 0, errInvalidClaims
	}
	organizerID, ok := claims["organizer_id"].(float64)
	if !ok {
		return 0, 0, errInvalidClaims
	}

	var remaining time.Duration
	if exp, ok := claims["exp"].(float64); ok {
		remaining = time.Until(time.Unix(int64(exp), 0))
	}
	return uint(organizerID), remaining, nil
}

// organizerFromAPIKey resolves an unexpired API key and stamps its last use.
func (h *AuthHandler) organizerFromAPIKey(key string) (uint, error) {
	var keyModel models.APIKey
	if err := h.db.Where("key = ?", key).First(&keyModel).Error; err != nil {
		return 0, err
	}
	if keyModel.ExpiresAt != nil && time.Now().After(*keyModel.ExpiresAt) {
		return 0, errors.New("api key expired")
	}

	h.db.Model(&keyModel).Update("last_used_at", time.Now())
	return keyModel.OrganizerID, nil
}

// AuthInput carries the credentials of a huma operation.
type AuthInput struct {
	Cookie string `header:"Cookie"`
	APIKey string `header:"X-API-KEY"`
}

// Authorize resolves the organizer behind input, preferring the API key.
func (h *AuthHandler) Authorize(ctx context.Context, input AuthInput) (uint, error) {
	if organizerID, ok := ctx.Value(OrganizerIDKey).(uint); ok {
		return organizerID, nil
	}

	if input.APIKey != "" {
		organizerID, err := h.organizerFromAPIKey(input.APIKey)
		if err != nil {
			return 0, huma.Error401Unauthorized("Unauthorized: Invalid API key")
		}
		return organizerID, nil
	}

	req := http.Request{Header: http.Header{"Cookie": []string{input.Cookie}}}
	cookie, err := req.Cookie(CookieName)
	if err != nil {
		return 0, huma.Error401Unauthorized("Unauthorized: No token found")
	}

	organizerID, _, err := h.parseToken(cookie.Value)
	if err != nil {
		return 0, huma.Error401Unauthorized("Unauthorized: Invalid token")
	}
	return organizerID, nil
}

type MeInput struct {
	AuthInput
}

type MeResponse struct {
	Body struct {
		ID        uint   `json:"id"`
		DiscordID string `json:"discord_id"`
		Username  string `json:"username"`
		Email     string `json:"email"`
		Avatar    string `json:"avatar"`
	}
}

func (h *AuthHandler) HandleMe(ctx context.Context, input *MeInput) (*MeResponse, error) {
	organizerID, err := h.Authorize(ctx, input.AuthInput)
	if err != nil {
		return nil, err
	}

	var organizer models.Organizer
	if err := h.db.First(&organizer, organizerID).Error; err != nil {
		return nil, huma.Error404NotFound("Organizer not found")
	}

	res := &MeResponse{}
	res.Body.ID = organizer.ID
	res.Body.DiscordID = organizer.DiscordID
	res.Body.Username = organizer.Username
	res.Body.Email = organizer.Email
	res.Body.Avatar = organizer.Avatar
	return res, nil
}

func sessionCookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Expires:  time.Now().Add(TokenDuration),
		HttpOnly: true,
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
	}
}
