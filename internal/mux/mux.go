package mux

import (
	"context"
	"net/http"
	"strings"
	"time"

	"agurk-server/internal/config"
	"agurk-server/internal/jwt"
	"agurk-server/pkg/room"

	gmux "github.com/gorilla/mux"
)

type ctxKey int

const (
	ctxNameKey ctxKey = iota
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	config  muxConfig
	version string
	lobby   *room.Lobby

	// store for testing purposes
	authRouter *gmux.Router
}

type muxConfig struct {
	// accessToken is the shared secret exchanged for a JWT
	accessToken string

	// tokenTTL is how long a signed JWT is valid
	tokenTTL time.Duration
}

// NewMux returns a new HTTP mux
// The lobby must already be running.
func NewMux(version string, lobby *room.Lobby) *Mux {
	cfg := config.Instance()

	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		lobby:   lobby,
		config: muxConfig{
			accessToken: cfg.Security.AccessToken,
			tokenTTL:    cfg.TokenTTL(),
		},
	}

	this.authRouter = this.Router.NewRoute().Subrouter()
	this.authRouter.Use(this.authMiddleware)

	// unauthorized endpoints
	{
		r := this.Router
		r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
		r.Methods(http.MethodPost).Path("/authenticate").Handler(this.postAuthenticate())
	}

	// requires bearer authorization
	{
		r := this.authRouter
		r.Methods(http.MethodGet).Path("/ws").Handler(this.getWS())
	}

	return this
}

// authMiddleware accepts the JWT as bearer token or as access_token parameter.
// Browsers cannot set headers on websocket upgrades.
func (m *Mux) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.FormValue("access_token")
		if token == "" {
			authHeader := strings.Split(r.Header.Get("Authorization"), " ")
			if len(authHeader) != 2 || strings.ToLower(authHeader[0]) != "bearer" {
				writeJSONError(w, http.StatusUnauthorized, nil)
				return
			}

			token = authHeader[1]
		}

		name, err := jwt.ValidSubject(token)
		if err != nil {
			writeJSONError(w, http.StatusUnauthorized, nil)
			return
		}

		newCtx := context.WithValue(r.Context(), ctxNameKey, name)
		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}
