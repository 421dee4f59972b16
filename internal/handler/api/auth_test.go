//go:build unit

package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"holiday-booker/internal/domain/user"
	"holiday-booker/internal/handler/api"
	resdto "holiday-booker/internal/handler/dto/response"
	"holiday-booker/internal/pkg/errs"
	"holiday-booker/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAuthUseCase scripts each operation's outcome.
type stubAuthUseCase struct {
	registerView *usecase.UserView
	registerErr  error
	loginToken   string
	loginView    *usecase.UserView
	loginErr     error
	currentView  *usecase.UserView
	currentErr   error
}

func (s *stubAuthUseCase) Register(context.Context, usecase.RegisterParams) (*usecase.UserView, error) {
	return s.registerView, s.registerErr
}

func (s *stubAuthUseCase) Login(context.Context, string, string) (string, *usecase.UserView, error) {
	return s.loginToken, s.loginView, s.loginErr
}

func (s *stubAuthUseCase) GetCurrentUser(context.Context, string) (*usecase.UserView, error) {
	return s.currentView, s.currentErr
}

func (s *stubAuthUseCase) ValidateToken(string) (string, user.Role, error) {
	return "", "", errs.New("not used")
}

func janeView() *usecase.UserView {
	return &usecase.UserView{ID: "u1", Name: "Jane Cooper", Email: "jane@example.com", Phone: "+44 20 7946 0002", Role: "user"}
}

func authRouter(stub *stubAuthUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := api.NewAuthHandler(stub)
	router.POST("/api/auth/register", handler.Register)
	router.POST("/api/auth/login", handler.Login)
	router.GET("/api/auth/me", func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", "u1")
		}
		handler.Me(c)
	})
	return router
}

func performJSON(t *testing.T, router *gin.Engine, method, url string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func validRegisterBody() map[string]any {
	return map[string]any{
		"name":     "Jane Cooper",
		"email":    "jane@example.com",
		"phone":    "+44 20 7946 0002",
		"password": "password123",
	}
}

func TestRegisterHandler(t *testing.T) {
	t.Run("200 on success", func(t *testing.T) {
		router := authRouter(&stubAuthUseCase{registerView: janeView()})
		rec := performJSON(t, router, http.MethodPost, "/api/auth/register", validRegisterBody(), nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		var view usecase.UserView
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
		assert.Equal(t, "jane@example.com", view.Email)
		assert.NotContains(t, rec.Body.String(), "password")
	})

	t.Run("400 on duplicate email", func(t *testing.T) {
		router := authRouter(&stubAuthUseCase{registerErr: errs.ErrDuplicateEmail})
		rec := performJSON(t, router, http.MethodPost, "/api/auth/register", validRegisterBody(), nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("400 on malformed body", func(t *testing.T) {
		router := authRouter(&stubAuthUseCase{registerView: janeView()})
		body := validRegisterBody()
		delete(body, "email")
		rec := performJSON(t, router, http.MethodPost, "/api/auth/register", body, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("500 on storage failure", func(t *testing.T) {
		router := authRouter(&stubAuthUseCase{registerErr: errs.ErrStorageUnavailable})
		rec := performJSON(t, router, http.MethodPost, "/api/auth/register", validRegisterBody(), nil)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestLoginHandler(t *testing.T) {
	loginBody := map[string]any{"email": "jane@example.com", "password": "password123"}

	t.Run("200 with token and user", func(t *testing.T) {
		router := authRouter(&stubAuthUseCase{loginToken: "jwt-token", loginView: janeView()})
		rec := performJSON(t, router, http.MethodPost, "/api/auth/login", loginBody, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp resdto.LoginResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "jwt-token", resp.AccessToken)
		assert.Equal(t, "jane@example.com", resp.User.Email)
	})

	t.Run("401 on invalid credentials", func(t *testing.T) {
		router := authRouter(&stubAuthUseCase{loginErr: errs.ErrInvalidCredentials})
		rec := performJSON(t, router, http.MethodPost, "/api/auth/login", loginBody, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("400 on missing fields", func(t *testing.T) {
		router := authRouter(&stubAuthUseCase{})
		rec := performJSON(t, router, http.MethodPost, "/api/auth/login", map[string]any{"email": "jane@example.com"}, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestMeHandler(t *testing.T) {
	t.Run("200 for authenticated user", func(t *testing.T) {
		router := authRouter(&stubAuthUseCase{currentView: janeView()})
		rec := performJSON(t, router, http.MethodGet, "/api/auth/me", nil, map[string]string{"Authorization": "Bearer token"})
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("401 without user context", func(t *testing.T) {
		router := authRouter(&stubAuthUseCase{currentView: janeView()})
		rec := performJSON(t, router, http.MethodGet, "/api/auth/me", nil, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("404 when the user vanished", func(t *testing.T) {
		router := authRouter(&stubAuthUseCase{currentErr: errs.ErrUserNotFound})
		rec := performJSON(t, router, http.MethodGet, "/api/auth/me", nil, map[string]string{"Authorization": "Bearer token"})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
