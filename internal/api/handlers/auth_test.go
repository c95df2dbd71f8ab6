package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teamdebug/quizard/internal/testutil"
)

func postJSON(t *testing.T, url string, body interface{}) *http.Response {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(url, "application/json", bytes.NewBuffer(payload))
	require.NoError(t, err)
	return resp
}

func TestSignupEndpoint(t *testing.T) {
	ts := testutil.NewTestServer(t)

	tests := []struct {
		name        string
		body        map[string]string
		wantStatus  int
		wantSuccess bool
		wantMessage string
	}{
		{
			name:        "valid signup",
			body:        map[string]string{"name": "Ana", "email": "ana@example.com", "password": "secret123"},
			wantStatus:  http.StatusOK,
			wantSuccess: true,
			wantMessage: "Account created successfully",
		},
		{
			name:        "duplicate email",
			body:        map[string]string{"name": "Ana Again", "email": "ana@example.com", "password": "secret123"},
			wantStatus:  http.StatusOK,
			wantSuccess: false,
			wantMessage: "Email already registered",
		},
		{
			name:        "missing fields",
			body:        map[string]string{"email": "incomplete@example.com"},
			wantStatus:  http.StatusOK,
			wantSuccess: false,
			wantMessage: "All fields are required",
		},
		{
			name:        "short password",
			body:        map[string]string{"name": "Bo", "email": "bo@example.com", "password": "12345"},
			wantStatus:  http.StatusOK,
			wantSuccess: false,
			wantMessage: "Password must be at least 6 characters long",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, ts.APIURL("/signup"), tt.body)
			defer resp.Body.Close()

			testutil.AssertStatusCode(t, resp, tt.wantStatus)
			testutil.AssertEnvelope(t, resp, tt.wantSuccess, tt.wantMessage)
		})
	}
}

func TestLoginEndpoint(t *testing.T) {
	ts := testutil.NewTestServer(t)

	user, password := testutil.NewUserBuilder().WithName("Ana").Build(t, ts.DB.DB)
	disabled, disabledPassword := testutil.NewUserBuilder().Disabled().Build(t, ts.DB.DB)

	t.Run("valid credentials return a token", func(t *testing.T) {
		resp := postJSON(t, ts.APIURL("/login"), map[string]string{"email": user.Email, "password": password})
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusOK)
		var loginResp testutil.LoginResponse
		testutil.AssertJSONResponse(t, resp, &loginResp)
		assert.True(t, loginResp.Success)
		assert.NotEmpty(t, loginResp.Token)
		assert.Equal(t, "Ana", loginResp.Name)
		assert.Equal(t, user.Email, loginResp.Email)
		assert.Equal(t, "Login successful", loginResp.Message)
	})

	t.Run("wrong password", func(t *testing.T) {
		resp := postJSON(t, ts.APIURL("/login"), map[string]string{"email": user.Email, "password": "wrongpass"})
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusOK)
		testutil.AssertEnvelope(t, resp, false, "Invalid email or password")
	})

	t.Run("unknown email", func(t *testing.T) {
		resp := postJSON(t, ts.APIURL("/login"), map[string]string{"email": "nobody@example.com", "password": "secret123"})
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusOK)
		testutil.AssertEnvelope(t, resp, false, "Invalid email or password")
	})

	t.Run("disabled account", func(t *testing.T) {
		resp := postJSON(t, ts.APIURL("/login"), map[string]string{"email": disabled.Email, "password": disabledPassword})
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusOK)
		testutil.AssertEnvelope(t, resp, false, "Account is disabled")
	})

	t.Run("missing fields", func(t *testing.T) {
		resp := postJSON(t, ts.APIURL("/login"), map[string]string{"email": user.Email})
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusOK)
		testutil.AssertEnvelope(t, resp, false, "Email and password are required")
	})
}

func TestLogoutEndpoint(t *testing.T) {
	ts := testutil.NewTestServer(t)

	t.Run("succeeds without a token", func(t *testing.T) {
		resp := postJSON(t, ts.APIURL("/logout"), map[string]string{})
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusOK)
		testutil.AssertEnvelope(t, resp, true, "Logged out successfully")
	})

	t.Run("revokes the presented session", func(t *testing.T) {
		_, token := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)

		req := testutil.CreateAuthenticatedRequest(t, http.MethodPost, ts.APIURL("/logout"), nil, token)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusOK)
		testutil.AssertEnvelope(t, resp, true, "Logged out successfully")

		profileReq := testutil.CreateAuthenticatedRequest(t, http.MethodGet, ts.APIURL("/profile"), nil, token)
		profileResp, err := http.DefaultClient.Do(profileReq)
		require.NoError(t, err)
		defer profileResp.Body.Close()

		testutil.AssertStatusCode(t, profileResp, http.StatusUnauthorized)
	})
}

// TestAuthLifecycle walks the full journey: signup, login, an authenticated
// profile read, logout, and a rejected request with the revoked token.
func TestAuthLifecycle(t *testing.T) {
	ts := testutil.NewTestServer(t)

	signupResp := postJSON(t, ts.APIURL("/signup"), map[string]string{
		"name":     "Ana",
		"email":    "ana@example.com",
		"password": "secret123",
	})
	testutil.AssertStatusCode(t, signupResp, http.StatusOK)
	testutil.AssertEnvelope(t, signupResp, true, "Account created successfully")
	signupResp.Body.Close()

	loginResp := postJSON(t, ts.APIURL("/login"), map[string]string{
		"email":    "ana@example.com",
		"password": "secret123",
	})
	testutil.AssertStatusCode(t, loginResp, http.StatusOK)
	var login testutil.LoginResponse
	testutil.AssertJSONResponse(t, loginResp, &login)
	loginResp.Body.Close()
	require.True(t, login.Success)
	require.NotEmpty(t, login.Token)

	profileReq := testutil.CreateAuthenticatedRequest(t, http.MethodGet, ts.APIURL("/profile"), nil, login.Token)
	profileResp, err := http.DefaultClient.Do(profileReq)
	require.NoError(t, err)
	testutil.AssertStatusCode(t, profileResp, http.StatusOK)
	var profile struct {
		Success bool `json:"success"`
		User    struct {
			Name      string  `json:"name"`
			Email     string  `json:"email"`
			LastLogin *string `json:"last_login"`
		} `json:"user"`
	}
	testutil.AssertJSONResponse(t, profileResp, &profile)
	profileResp.Body.Close()
	assert.True(t, profile.Success)
	assert.Equal(t, "Ana", profile.User.Name)
	assert.Equal(t, "ana@example.com", profile.User.Email)
	assert.NotNil(t, profile.User.LastLogin, "login sets the last-login timestamp")

	logoutReq := testutil.CreateAuthenticatedRequest(t, http.MethodPost, ts.APIURL("/logout"), nil, login.Token)
	logoutResp, err := http.DefaultClient.Do(logoutReq)
	require.NoError(t, err)
	testutil.AssertStatusCode(t, logoutResp, http.StatusOK)
	logoutResp.Body.Close()

	retryReq := testutil.CreateAuthenticatedRequest(t, http.MethodGet, ts.APIURL("/profile"), nil, login.Token)
	retryResp, err := http.DefaultClient.Do(retryReq)
	require.NoError(t, err)
	defer retryResp.Body.Close()
	testutil.AssertStatusCode(t, retryResp, http.StatusUnauthorized)
	testutil.AssertEnvelope(t, retryResp, false, "Invalid or expired token")
}
