package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teamdebug/quizard/internal/testutil"
)

func TestUsersListEndpoint(t *testing.T) {
	ts := testutil.NewTestServer(t)

	active, _ := testutil.NewUserBuilder().WithName("Visible").Build(t, ts.DB.DB)
	disabled, _ := testutil.NewUserBuilder().WithName("Hidden").Disabled().Build(t, ts.DB.DB)

	resp, err := http.Get(ts.APIURL("/users"))
	require.NoError(t, err)
	defer resp.Body.Close()

	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var users []struct {
		ID        string `json:"id"`
		Name      string `json:"name"`
		Email     string `json:"email"`
		CreatedAt string `json:"created_at"`
	}
	testutil.AssertJSONResponse(t, resp, &users)

	ids := make([]string, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
		assert.NotEmpty(t, u.CreatedAt)
	}
	assert.Contains(t, ids, active.ID.String())
	assert.NotContains(t, ids, disabled.ID.String(), "disabled users stay out of the public list")
}

func TestProfileEndpoint(t *testing.T) {
	ts := testutil.NewTestServer(t)

	t.Run("requires a token", func(t *testing.T) {
		resp, err := http.Get(ts.APIURL("/profile"))
		require.NoError(t, err)
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusUnauthorized)
		testutil.AssertEnvelope(t, resp, false, "Access token required")
	})

	t.Run("rejects a malformed authorization header", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, ts.APIURL("/profile"), nil)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Token abc123")

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusUnauthorized)
		testutil.AssertEnvelope(t, resp, false, "Access token required")
	})

	t.Run("returns the authenticated user", func(t *testing.T) {
		user, token := testutil.NewUserBuilder().WithName("Ana").BuildAndAuthenticate(t, ts)

		req := testutil.CreateAuthenticatedRequest(t, http.MethodGet, ts.APIURL("/profile"), nil, token)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusOK)
		var body struct {
			Success bool `json:"success"`
			User    struct {
				ID        string  `json:"id"`
				Name      string  `json:"name"`
				Email     string  `json:"email"`
				LastLogin *string `json:"last_login"`
			} `json:"user"`
		}
		testutil.AssertJSONResponse(t, resp, &body)
		assert.True(t, body.Success)
		assert.Equal(t, user.ID.String(), body.User.ID)
		assert.Equal(t, "Ana", body.User.Name)
		assert.Equal(t, user.Email, body.User.Email)
		assert.NotNil(t, body.User.LastLogin)
	})
}
