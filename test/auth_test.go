//go:build integration_test || all_tests

package test

import (
	"context"
	"net/http"
	"testing"

	"github.com/2beens/gymtracker/internal/users"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestAuth_RegisterLoginLogout() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	registered, password := s.registerUser(ctx)
	assert.NotEmpty(t, registered.User.ID)

	var me users.User
	s.doJSON(ctx, http.MethodGet, "/a/me", registered.Token, nil, http.StatusOK, &me)
	assert.Equal(t, registered.User, me)

	// surrounding whitespace is trimmed from emails
	var loggedIn loginResponse
	s.doJSON(ctx, http.MethodPost, "/a/login", "", map[string]string{
		"email":    "  " + registered.User.Email + " ",
		"password": password,
	}, http.StatusOK, &loggedIn)
	assert.NotEqual(t, registered.Token, loggedIn.Token)
	assert.Equal(t, registered.User.ID, loggedIn.User.ID)

	status, body := s.doRequest(ctx, http.MethodGet, "/a/logout", loggedIn.Token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "logged-out", string(body))

	status, _ = s.doRequest(ctx, http.MethodGet, "/a/me", loggedIn.Token, nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	// the first session is still alive
	status, _ = s.doRequest(ctx, http.MethodGet, "/a/me", registered.Token, nil)
	assert.Equal(t, http.StatusOK, status)
}

func (s *IntegrationTestSuite) TestAuth_Register() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	registered, _ := s.registerUser(ctx)

	cases := map[string]struct {
		form               map[string]string
		expectedStatusCode int
	}{
		"email taken": {
			form: map[string]string{
				"name":            "Someone Else",
				"email":           registered.User.Email,
				"password":        "secret123",
				"confirmPassword": "secret123",
			},
			expectedStatusCode: http.StatusConflict,
		},
		"missing name": {
			form: map[string]string{
				"email":    gofakeit.Email(),
				"password": "secret123",
			},
			expectedStatusCode: http.StatusBadRequest,
		},
		"bad email": {
			form: map[string]string{
				"name":     "Ana",
				"email":    "not-an-email",
				"password": "secret123",
			},
			expectedStatusCode: http.StatusBadRequest,
		},
		"passwords differ": {
			form: map[string]string{
				"name":            "Ana",
				"email":           gofakeit.Email(),
				"password":        "secret123",
				"confirmPassword": "secret124",
			},
			expectedStatusCode: http.StatusBadRequest,
		},
		"short password": {
			form: map[string]string{
				"name":     "Ana",
				"email":    gofakeit.Email(),
				"password": "123",
			},
			expectedStatusCode: http.StatusBadRequest,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			status, body := s.doRequest(ctx, http.MethodPost, "/a/register", "", tc.form)
			assert.Equal(t, tc.expectedStatusCode, status, string(body))
		})
	}
}

func (s *IntegrationTestSuite) TestAuth_DemoLogin() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var demo loginResponse
	s.doJSON(ctx, http.MethodPost, "/a/login", "", map[string]string{
		"email":    gofakeit.Email(),
		"password": "whatever123",
	}, http.StatusOK, &demo)
	require.NotEmpty(t, demo.Token)

	status, _ := s.doRequest(ctx, http.MethodGet, "/exercises", demo.Token, nil)
	assert.Equal(t, http.StatusOK, status)
}

func (s *IntegrationTestSuite) TestAuth_ProtectedRoutes() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	for _, path := range []string{"/exercises", "/workouts", "/stats", "/a/me"} {
		status, _ := s.doRequest(ctx, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, status, path)

		status, _ = s.doRequest(ctx, http.MethodGet, path, "not-a-real-token", nil)
		assert.Equal(t, http.StatusUnauthorized, status, path)
	}

	status, _ := s.doRequest(ctx, http.MethodGet, "/exercises/categories", "", nil)
	assert.Equal(t, http.StatusOK, status)
}
