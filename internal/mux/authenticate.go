package mux

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"

	"agurk-server/internal/jwt"
	"agurk-server/internal/util"

	"github.com/sirupsen/logrus"
)

var errMissingCredentials = errors.New("name and token are required")

type authenticatePayload struct {
	Name  string `json:"name"`
	Token string `json:"token"`
}

type authenticateResponse struct {
	JWT string `json:"jwt"`
}

// postAuthenticate exchanges the shared access token for a JWT.
// The subject is the name with a random suffix, so players with equal names can be told apart.
func (m *Mux) postAuthenticate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload authenticatePayload
		if !decodeRequest(w, r, &payload) {
			return
		}

		name := strings.TrimSpace(payload.Name)
		if name == "" || payload.Token == "" {
			writeJSONError(w, http.StatusBadRequest, errMissingCredentials)
			return
		}

		if m.config.accessToken == "" || subtle.ConstantTimeCompare([]byte(payload.Token), []byte(m.config.accessToken)) != 1 {
			logrus.WithField("remoteAddr", remoteAddr(r)).Info("invalid access token")
			writeJSONError(w, http.StatusUnauthorized, nil)
			return
		}

		signed, err := jwt.Sign(util.GetRandomName(name), m.config.tokenTTL)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusOK, authenticateResponse{JWT: signed})
	}
}
