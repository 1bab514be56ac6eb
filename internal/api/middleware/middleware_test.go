package middleware_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swipto/swipto-api/internal/api/middleware"
	"github.com/swipto/swipto-api/internal/logger"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	gin.SetMode(gin.TestMode)

	os.Exit(m.Run())
}

func generateKeys(t *testing.T) (*rsa.PrivateKey, string) {
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	der, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(t, err)

	return priv, string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}))
}

func signToken(t *testing.T, priv *rsa.PrivateKey, claims jwt.RegisteredClaims) string {
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(priv)
	require.NoError(t, err)
	return token
}

func TestAuthenticate(t *testing.T) {
	priv, publicPEM := generateKeys(t)
	otherPriv, _ := generateKeys(t)
	cfg := middleware.AuthConfig{JWTPublicKey: publicPEM, APIKeys: []string{"", "key-1"}}
	now := time.Now()

	valid := signToken(t, priv, jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	})
	expired := signToken(t, priv, jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
	})
	foreign := signToken(t, otherPriv, jwt.RegisteredClaims{Subject: "user-1"})

	tests := []struct {
		name        string
		header      string
		cfg         middleware.AuthConfig
		wantSuccess bool
		wantType    string
		wantSubject string
	}{
		{name: "jwt", header: "Bearer " + valid, cfg: cfg, wantSuccess: true, wantType: middleware.AuthTypeJWT, wantSubject: "user-1"},
		{name: "jwt lowercase scheme", header: "bearer " + valid, cfg: cfg, wantSuccess: true, wantType: middleware.AuthTypeJWT, wantSubject: "user-1"},
		{name: "expired jwt", header: "Bearer " + expired, cfg: cfg},
		{name: "jwt signed by another key", header: "Bearer " + foreign, cfg: cfg},
		{name: "jwt without configured key", header: "Bearer " + valid, cfg: middleware.AuthConfig{}},
		{name: "api key", header: "ApiKey key-1", cfg: cfg, wantSuccess: true, wantType: middleware.AuthTypeAPIKey},
		{name: "empty api key is never valid", header: "ApiKey ", cfg: cfg},
		{name: "unknown api key", header: "ApiKey key-2", cfg: cfg},
		{name: "missing header", header: "", cfg: cfg},
		{name: "malformed header", header: "Bearer", cfg: cfg},
		{name: "unsupported scheme", header: "Basic dXNlcjpwYXNz", cfg: cfg},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := middleware.Authenticate(tt.header, tt.cfg)

			assert.Equal(t, tt.wantSuccess, result.Success)
			if tt.wantSuccess {
				assert.NoError(t, result.Error)
				assert.Equal(t, tt.wantType, result.AuthType)
				assert.Equal(t, tt.wantSubject, result.AuthSubject)
			} else {
				assert.Error(t, result.Error)
			}
		})
	}
}

func newAuthRouter(cfg middleware.AuthConfig) *gin.Engine {
	router := gin.New()
	router.POST("/swipes", middleware.OptionalAuth(cfg), func(c *gin.Context) {
		authType, subject := middleware.AuthInfo(c)
		c.JSON(http.StatusOK, gin.H{"type": authType, "subject": subject})
	})
	return router
}

func TestOptionalAuth(t *testing.T) {
	priv, publicPEM := generateKeys(t)
	token := signToken(t, priv, jwt.RegisteredClaims{Subject: "user-9"})

	t.Run("anonymous allowed", func(t *testing.T) {
		router := newAuthRouter(middleware.AuthConfig{JWTPublicKey: publicPEM})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/swipes", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"type":"","subject":""}`, w.Body.String())
	})

	t.Run("anonymous rejected when tokens are required", func(t *testing.T) {
		router := newAuthRouter(middleware.AuthConfig{JWTPublicKey: publicPEM, RequireUserToken: true})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/swipes", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"Unauthorized","code":"unauthorized"}`, w.Body.String())
	})

	t.Run("token subject is exposed", func(t *testing.T) {
		router := newAuthRouter(middleware.AuthConfig{JWTPublicKey: publicPEM})

		req := httptest.NewRequest(http.MethodPost, "/swipes", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"type":"jwt","subject":"user-9"}`, w.Body.String())
	})

	t.Run("present but invalid header is rejected", func(t *testing.T) {
		router := newAuthRouter(middleware.AuthConfig{JWTPublicKey: publicPEM})

		req := httptest.NewRequest(http.MethodPost, "/swipes", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestSharedKey(t *testing.T) {
	tests := []struct {
		name       string
		secret     string
		provided   string
		wantStatus int
	}{
		{"match", "s3cret", "s3cret", http.StatusOK},
		{"mismatch", "s3cret", "guess", http.StatusUnauthorized},
		{"missing", "s3cret", "", http.StatusUnauthorized},
		{"unconfigured secret locks the route", "", "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.POST("/admin", middleware.SharedKey(middleware.HeaderAdminKey, tt.secret), func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/admin", nil)
			if tt.provided != "" {
				req.Header.Set(middleware.HeaderAdminKey, tt.provided)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestRequestID(t *testing.T) {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(middleware.REQUEST_ID_KEY))
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	generated := w.Header().Get(middleware.HeaderRequestID)
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(middleware.HeaderRequestID, "req-123")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "req-123", w.Header().Get(middleware.HeaderRequestID))
}

func TestRecovery(t *testing.T) {
	router := gin.New()
	router.Use(middleware.Recovery())
	router.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error","code":"internal_error"}`, w.Body.String())
}
