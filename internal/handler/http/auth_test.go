// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-trips/internal/service"
	"github.com/MKhiriev/go-trips/internal/store"
	"github.com/MKhiriev/go-trips/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decodeBody unmarshals the recorder body into a value of type T.
func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), "body: %s", rec.Body.String())
	return v
}

func assertErrorBody(t *testing.T, rec *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	assert.Equal(t, status, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, message, decodeBody[models.ErrorResponse](t, rec).Error)
}

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, req models.RegisterRequest) (models.User, error) {
			assert.Equal(t, models.RegisterRequest{Name: "Ann", Email: "ann@example.com", Password: "pw"}, req)
			return models.User{UserID: 12, Name: req.Name, Email: req.Email}, nil
		},
	}
	h := newTestHandler(t, &service.Services{AuthService: auth})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
		strings.NewReader(`{"name":"Ann","email":"ann@example.com","password":"pw"}`))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, models.RegisterResponse{Message: "User registered successfully", UserID: 12},
		decodeBody[models.RegisterResponse](t, rec))
}

func TestRegister_Errors(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		serviceErr  error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "malformed JSON",
			body:        `{"name":`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid JSON was passed",
		},
		{
			name:        "missing fields",
			body:        `{"email":"ann@example.com"}`,
			serviceErr:  service.ErrInvalidDataProvided,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "All fields are required",
		},
		{
			name:        "empty body treated as empty object",
			body:        ``,
			serviceErr:  service.ErrInvalidDataProvided,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "All fields are required",
		},
		{
			name:        "email taken",
			body:        `{"name":"Ann","email":"ann@example.com","password":"pw"}`,
			serviceErr:  fmt.Errorf("user creation ended with error: %w", store.ErrEmailAlreadyExists),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Email already registered",
		},
		{
			name:        "unexpected error",
			body:        `{"name":"Ann","email":"ann@example.com","password":"pw"}`,
			serviceErr:  errors.New("db down"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				registerUserFn: func(_ context.Context, _ models.RegisterRequest) (models.User, error) {
					return models.User{}, tt.serviceErr
				},
			}
			h := newTestHandler(t, &service.Services{AuthService: auth})

			rec := httptest.NewRecorder()
			h.register(rec, httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(tt.body)))

			assertErrorBody(t, rec, tt.wantStatus, tt.wantMessage)
			assert.NotContains(t, rec.Body.String(), "db down")
		})
	}
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, req models.LoginRequest) (models.User, error) {
			return models.User{UserID: 5, Email: req.Email}, nil
		},
		createTokenFn: func(_ context.Context, user models.User) (models.Token, error) {
			assert.Equal(t, int64(5), user.UserID)
			return models.Token{SignedString: "signed.jwt.token"}, nil
		},
	}
	h := newTestHandler(t, &service.Services{AuthService: auth})

	rec := httptest.NewRecorder()
	h.login(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"ann@example.com","password":"pw"}`)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "signed.jwt.token", decodeBody[models.LoginResponse](t, rec).Token)
}

func TestLogin_Errors(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		loginErr    error
		tokenErr    error
		wantStatus  int
		wantMessage string
	}{
		{"malformed JSON", `[`, nil, nil, http.StatusBadRequest, "Invalid JSON was passed"},
		{"missing fields", `{"email":"a@b.c"}`, service.ErrInvalidDataProvided, nil, http.StatusBadRequest, "Email and password are required"},
		{"invalid credentials", `{"email":"a@b.c","password":"x"}`, service.ErrInvalidCredentials, nil, http.StatusUnauthorized, "Invalid credentials"},
		{"store failure", `{"email":"a@b.c","password":"x"}`, errors.New("db down"), nil, http.StatusInternalServerError, "Internal server error"},
		{"token failure", `{"email":"a@b.c","password":"x"}`, nil, service.ErrTokenCreationFailed, http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				loginFn: func(_ context.Context, _ models.LoginRequest) (models.User, error) {
					return models.User{UserID: 1}, tt.loginErr
				},
				createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
					return models.Token{}, tt.tokenErr
				},
			}
			h := newTestHandler(t, &service.Services{AuthService: auth})

			rec := httptest.NewRecorder()
			h.login(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(tt.body)))

			assertErrorBody(t, rec, tt.wantStatus, tt.wantMessage)
		})
	}
}

// TestLogin_UniformInvalidCredentials checks that unknown email and wrong
// password produce byte-identical responses.
func TestLogin_UniformInvalidCredentials(t *testing.T) {
	bodies := make([]string, 0, 2)
	for _, email := range []string{"unknown@example.com", "ann@example.com"} {
		auth := &mockAuthService{
			loginFn: func(_ context.Context, _ models.LoginRequest) (models.User, error) {
				return models.User{}, service.ErrInvalidCredentials
			},
		}
		h := newTestHandler(t, &service.Services{AuthService: auth})

		rec := httptest.NewRecorder()
		h.login(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login",
			strings.NewReader(`{"email":"`+email+`","password":"x"}`)))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		bodies = append(bodies, rec.Body.String())
	}

	assert.Equal(t, bodies[0], bodies[1])
}
