package mux

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"agurk-server/internal/jwt"

	"github.com/stretchr/testify/assert"
)

func Test_authRouter(t *testing.T) {
	m, ts := newTestMux(t)
	defer ts.Close()

	m.authRouter.Path("/test").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 200, r.Context().Value(ctxNameKey))
	})

	var errObj errorResponse
	assertGet(t, ts, "/test", &errObj, 401)
	assert.Equal(t, "Unauthorized", errObj.Message)

	assertGet(t, ts, "/test", &errObj, 401, "not-a-jwt")

	token, err := jwt.Sign("Alice", time.Minute)
	assert.NoError(t, err)

	// test using auth header
	var str string
	assertGet(t, ts, "/test", &str, 200, token)
	assert.Equal(t, "Alice", str)

	// test using query parameter
	str = ""
	assertGet(t, ts, "/test?access_token="+url.QueryEscape(token), &str, 200)
	assert.Equal(t, "Alice", str)

	expired, _ := jwt.Sign("Alice", -time.Minute)
	assertGet(t, ts, "/test", &errObj, 401, expired)
}
