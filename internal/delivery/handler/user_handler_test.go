package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jachacon12/arquitectura-de-servidores/internal/application/services"
	"github.com/Jachacon12/arquitectura-de-servidores/internal/delivery"
	"github.com/Jachacon12/arquitectura-de-servidores/internal/delivery/handler"
	"github.com/Jachacon12/arquitectura-de-servidores/internal/infrastructure"
	"github.com/Jachacon12/arquitectura-de-servidores/internal/infrastructure/db/inmemory"
	"github.com/Jachacon12/arquitectura-de-servidores/internal/infrastructure/email"
)

var verificationTokenRe = regexp.MustCompile(`verify/([a-zA-Z0-9]+)`)

func newTestRouter(t *testing.T) *mux.Router {
	t.Helper()

	jwtService := infrastructure.NewJWTService("test-secret", time.Hour)

	userService := services.NewUserService(
		inmemory.NewUserRepository(),
		jwtService,
		email.NewLogSender(),
		infrastructure.NewRateLimiter(time.Minute, 100),
		infrastructure.NewRedisService("", "", 0),
		nil,
		24*time.Hour,
		true,
	)
	citationService := services.NewCitationService(inmemory.NewCitationRepository())

	return delivery.NewRouter(
		handler.NewUserHandler(userService),
		handler.NewCitationHandler(citationService),
		jwtService,
		nil,
		nil,
	)
}

func doJSON(router *mux.Router, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Host = "localhost:8080"
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRegister_MissingFields(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(router, http.MethodPost, "/api/users", map[string]string{
		"email": "wrong@example.com",
	}, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Name, email, and password are required", decodeBody(t, rec)["message"])
}

func TestRegister_DuplicateEmail(t *testing.T) {
	router := newTestRouter(t)
	payload := map[string]string{
		"name":     "Jonas Doe",
		"email":    "user@example.com",
		"password": "password123",
	}

	first := doJSON(router, http.MethodPost, "/api/users", payload, nil)
	require.Equal(t, http.StatusOK, first.Code)

	second := doJSON(router, http.MethodPost, "/api/users", payload, nil)
	assert.Equal(t, http.StatusBadRequest, second.Code)
	assert.Equal(t, "User already exists", decodeBody(t, second)["message"])
}

func TestVerify_UnknownToken(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(router, http.MethodGet, "/api/users/verify/deadbeef", nil, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid or expired verification token", decodeBody(t, rec)["message"])
}

// TestAuthFlow_EndToEnd walks the full journey: register, fail to log in
// while unverified, verify via the emailed link, log in, hit a protected
// route with and without the bearer token.
func TestAuthFlow_EndToEnd(t *testing.T) {
	router := newTestRouter(t)

	// register
	rec := doJSON(router, http.MethodPost, "/api/users", map[string]string{
		"name":     "Jonas Doe",
		"email":    "user@example.com",
		"password": "password123",
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	require.NotEmpty(t, body["token"])
	require.NotEmpty(t, body["verificationLink"])

	matches := verificationTokenRe.FindStringSubmatch(body["verificationLink"].(string))
	require.Len(t, matches, 2)
	verificationToken := matches[1]

	// login before verification is rejected
	rec = doJSON(router, http.MethodPost, "/api/login", map[string]string{
		"email":    "user@example.com",
		"password": "password123",
	}, nil)
	require.Equal(t, http.StatusForbidden, rec.Code)

	// verify
	rec = doJSON(router, http.MethodGet, "/api/users/verify/"+verificationToken, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, decodeBody(t, rec)["message"])

	// the same token is spent
	rec = doJSON(router, http.MethodGet, "/api/users/verify/"+verificationToken, nil, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// login
	rec = doJSON(router, http.MethodPost, "/api/login", map[string]string{
		"email":    "user@example.com",
		"password": "password123",
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	accessToken, ok := decodeBody(t, rec)["accessToken"].(string)
	require.True(t, ok)
	require.NotEmpty(t, accessToken)

	// protected route with the token
	rec = doJSON(router, http.MethodGet, "/api/citations", nil, map[string]string{
		"Authorization": "Bearer " + accessToken,
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	// and without it
	rec = doJSON(router, http.MethodGet, "/api/citations", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMe_ReturnsAuthenticatedProfile(t *testing.T) {
	router := newTestRouter(t)
	auth := registerAndLogin(t, router)

	rec := doJSON(router, http.MethodGet, "/api/users/me", nil, auth)
	require.Equal(t, http.StatusOK, rec.Code)

	profile := decodeBody(t, rec)
	assert.Equal(t, "user@example.com", profile["email"])
	assert.Equal(t, true, profile["active"])
	assert.Nil(t, profile["password"])
}

func TestLogin_InvalidCredentials(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(router, http.MethodPost, "/api/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "whatever",
	}, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid Credentials", decodeBody(t, rec)["message"])
}
