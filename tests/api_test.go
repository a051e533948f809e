package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rotrade/internal/adapter/api"
	"rotrade/internal/adapter/api/handler"
	apimiddleware "rotrade/internal/adapter/api/middleware"
	"rotrade/internal/adapter/api/router"
	"rotrade/internal/adapter/repository"
	"rotrade/internal/usecase"
)

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	dir := t.TempDir()

	store, err := repository.NewSnapshotStore(dir)
	require.NoError(t, err)
	sessionStore, err := repository.NewFSSessionStore(dir)
	require.NoError(t, err)

	userRepo := repository.NewSnapshotUserRepository(store)
	listingRepo := repository.NewSnapshotListingRepository(store)
	chatRepo := repository.NewSnapshotChatRepository(store)
	reviewRepo := repository.NewSnapshotReviewRepository(store)

	authUseCase := usecase.NewAuthUseCase(userRepo, sessionStore, "test-secret", 3600)
	listingUseCase := usecase.NewListingUseCase(listingRepo, userRepo)
	chatUseCase := usecase.NewChatUseCase(chatRepo, userRepo)
	reviewUseCase := usecase.NewReviewUseCase(reviewRepo, userRepo)

	handler.Setup(authUseCase, listingUseCase, chatUseCase, reviewUseCase)

	e := echo.New()
	e.Validator = api.NewValidator()
	router.Setup(e, apimiddleware.NewAuthMiddleware("test-secret"))

	return e
}

func doJSON(e *echo.Echo, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func tokenFrom(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var envelope struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotEmpty(t, envelope.Data.Token)
	return envelope.Data.Token
}

func TestHealthCheck(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

func TestRegisterLoginFlow(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/v1/auth/register", "",
		`{"username":"Alice","password":"pw1","confirm":"pw1"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(e, http.MethodPost, "/v1/auth/register", "",
		`{"username":"Alice","password":"pw2","confirm":"pw2"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "CONFLICT")

	rec = doJSON(e, http.MethodPost, "/v1/auth/login", "",
		`{"username":"Alice","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(e, http.MethodPost, "/v1/auth/login", "",
		`{"username":"Alice","password":"pw1"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	token := tokenFrom(t, rec)
	rec = doJSON(e, http.MethodGet, "/v1/users/me", token, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"Alice"`)
	assert.NotContains(t, rec.Body.String(), "pw1")
}

func TestListingFlow(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/v1/auth/register", "",
		`{"username":"Alice","password":"pw1","confirm":"pw1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	token := tokenFrom(t, rec)

	// Unauthenticated create is rejected
	rec = doJSON(e, http.MethodPost, "/v1/listings", "",
		`{"title":"Item","description":"Desc"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(e, http.MethodPost, "/v1/listings", token,
		`{"title":"Valkyrie Helm","description":"Legendary helm","price":"35,000 R$"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(e, http.MethodGet, "/v1/listings?q=valkyrie", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Valkyrie Helm")

	rec = doJSON(e, http.MethodGet, "/v1/listings?q=nothing-matches-this", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "Valkyrie Helm")
}

func TestChatFlow(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/v1/auth/register", "",
		`{"username":"Alice","password":"pw1","confirm":"pw1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	alice := tokenFrom(t, rec)

	rec = doJSON(e, http.MethodPost, "/v1/auth/register", "",
		`{"username":"Bob","password":"pw2","confirm":"pw2"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	bob := tokenFrom(t, rec)

	rec = doJSON(e, http.MethodPost, "/v1/chats", alice, `{"username":"Bob"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var opened struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &opened))
	require.NotEmpty(t, opened.Data.ID)

	rec = doJSON(e, http.MethodPost, "/v1/chats/"+opened.Data.ID+"/messages", alice, `{"text":"hi"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(e, http.MethodGet, "/v1/chats", bob, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"last_message":"hi"`)

	// Blocking turns sends into acknowledged no-ops
	rec = doJSON(e, http.MethodPost, "/v1/chats/"+opened.Data.ID+"/block", bob, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"blocked":true`)

	rec = doJSON(e, http.MethodPost, "/v1/chats/"+opened.Data.ID+"/messages", alice, `{"text":"anyone?"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodGet, "/v1/chats/"+opened.Data.ID+"/messages", alice, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "anyone?")
}

func TestReportFlow(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/v1/auth/register", "",
		`{"username":"Alice","password":"pw1","confirm":"pw1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	alice := tokenFrom(t, rec)

	rec = doJSON(e, http.MethodPost, "/v1/auth/register", "",
		`{"username":"Bob","password":"pw2","confirm":"pw2"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	for i := 0; i < 5; i++ {
		rec = doJSON(e, http.MethodPost, "/v1/users/Bob/report", alice, `{"reason":"spam"}`)
		require.Equal(t, http.StatusOK, rec.Code)
	}
	assert.Contains(t, rec.Body.String(), `"is_blocked":true`)

	rec = doJSON(e, http.MethodPost, "/v1/auth/login", "",
		`{"username":"Bob","password":"pw2"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "BLOCKED")
}
