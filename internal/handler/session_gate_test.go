package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const testAccessSecret = "test-secret"

func newSessionGateRouter(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("ACCESS_SECRET", testAccessSecret)

	gin.SetMode(gin.TestMode)
	h := New(nil)

	r := gin.New()
	r.GET("/", h.rootPage)
	r.GET("/foro", h.sessionGateMiddleware, h.foroPage)
	return r
}

func signedSessionToken(t *testing.T, secret string) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  uuid.NewString(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestSessionGateRedirectsAnonymousVisitor(t *testing.T) {
	r := newSessionGateRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/foro", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/?next=%2Fforo", w.Header().Get("Location"))
}

func TestSessionGateAllowsSessionCookie(t *testing.T) {
	r := newSessionGateRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/foro", nil)
	req.AddCookie(&http.Cookie{Name: accessTokenCookie, Value: signedSessionToken(t, testAccessSecret)})
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
}

func TestSessionGateAllowsBearerToken(t *testing.T) {
	r := newSessionGateRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/foro", nil)
	req.Header.Set("Authorization", "Bearer "+signedSessionToken(t, testAccessSecret))
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
}

func TestSessionGateRejectsForgedToken(t *testing.T) {
	r := newSessionGateRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/foro", nil)
	req.AddCookie(&http.Cookie{Name: accessTokenCookie, Value: signedSessionToken(t, "wrong-secret")})
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/?next=%2Fforo", w.Header().Get("Location"))
}

func TestRootPageRedirectsSignedInUser(t *testing.T) {
	r := newSessionGateRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: accessTokenCookie, Value: signedSessionToken(t, testAccessSecret)})
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/foro", w.Header().Get("Location"))
}

func TestRootPageServesAnonymousVisitor(t *testing.T) {
	r := newSessionGateRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
}
