package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/BramsuryaJP/my-portfolio-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, url string, payload any) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	resp, err := http.Post(url, "application/json", bytes.NewBuffer(body))
	require.NoError(t, err)
	return resp
}

func TestAuthHandler_Register(t *testing.T) {
	ts := testutil.NewTestServer(t)

	tests := []struct {
		name           string
		request        map[string]string
		setup          func()
		expectedStatus int
		checkResponse  func(*testing.T, *http.Response)
	}{
		{
			name: "successful registration",
			request: map[string]string{
				"email":    "a@x.com",
				"username": "alice",
				"password": "p@ss",
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp *http.Response) {
				testutil.AssertBodyContains(t, resp, "User registered successfully")
			},
		},
		{
			name: "missing username",
			request: map[string]string{
				"email":    "a@x.com",
				"password": "p@ss",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "missing password",
			request: map[string]string{
				"email":    "a@x.com",
				"username": "alice",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "duplicate username with different email",
			request: map[string]string{
				"email":    "different@x.com",
				"username": "existinguser",
				"password": "p@ss",
			},
			setup: func() {
				testutil.NewUserBuilder().
					WithUsername("existinguser").
					WithEmail("first@x.com").
					Build(t, ts.DB.DB)
			},
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, resp *http.Response) {
				var payload struct {
					Message string `json:"message"`
				}
				testutil.AssertJSONResponse(t, resp, &payload)
				assert.Equal(t, "Username already exists", payload.Message)
			},
		},
		{
			name:           "empty request body",
			request:        map[string]string{},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts.DB.Truncate(t)

			if tt.setup != nil {
				tt.setup()
			}

			resp := postJSON(t, ts.APIURL("/auth/register"), tt.request)
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.checkResponse != nil {
				tt.checkResponse(t, resp)
			}
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	ts := testutil.NewTestServer(t)

	user, rawPassword := testutil.NewUserBuilder().
		WithUsername("loginuser").
		WithEmail("login@x.com").
		WithPassword("correctpassword").
		Build(t, ts.DB.DB)

	tests := []struct {
		name           string
		request        map[string]string
		expectedStatus int
		checkResponse  func(*testing.T, *http.Response)
	}{
		{
			name: "successful login by username",
			request: map[string]string{
				"usernameOrEmail": user.Username,
				"password":        rawPassword,
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp *http.Response) {
				var result testutil.LoginResponse
				testutil.AssertJSONResponse(t, resp, &result)
				assert.Equal(t, "Login successful", result.Message)
				assert.Equal(t, user.Username, result.Username)
				assert.Equal(t, user.Email, result.Email)
				assert.NotEmpty(t, result.Token)

				cookie := findCookie(t, resp, "token")
				require.NotNil(t, cookie, "login should set the token cookie")
				assert.Equal(t, result.Token, cookie.Value)
				assert.True(t, cookie.HttpOnly)
				assert.True(t, cookie.Secure)
				assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
				assert.Equal(t, 24*60*60, cookie.MaxAge)
			},
		},
		{
			name: "successful login by email",
			request: map[string]string{
				"usernameOrEmail": user.Email,
				"password":        rawPassword,
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "wrong password gives generic message",
			request: map[string]string{
				"usernameOrEmail": user.Username,
				"password":        "wrongpassword",
			},
			expectedStatus: http.StatusUnauthorized,
			checkResponse: func(t *testing.T, resp *http.Response) {
				var payload struct {
					Message string `json:"message"`
				}
				testutil.AssertJSONResponse(t, resp, &payload)
				assert.Equal(t, "Invalid username/email or password", payload.Message)
			},
		},
		{
			name: "unknown user gives the same generic message",
			request: map[string]string{
				"usernameOrEmail": "nonexistent",
				"password":        "anypassword",
			},
			expectedStatus: http.StatusUnauthorized,
			checkResponse: func(t *testing.T, resp *http.Response) {
				var payload struct {
					Message string `json:"message"`
				}
				testutil.AssertJSONResponse(t, resp, &payload)
				assert.Equal(t, "Invalid username/email or password", payload.Message)
			},
		},
		{
			name: "missing password",
			request: map[string]string{
				"usernameOrEmail": user.Username,
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, ts.APIURL("/auth/login"), tt.request)
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.checkResponse != nil {
				tt.checkResponse(t, resp)
			}
		})
	}
}

func TestAuthHandler_Me(t *testing.T) {
	ts := testutil.NewTestServer(t)

	user, token := testutil.NewUserBuilder().
		WithUsername("alice").
		WithEmail("a@x.com").
		WithPassword("p@ss").
		BuildAndLogin(t, ts)

	t.Run("with bearer header", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, ts.APIURL("/auth/me"), nil)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var me struct {
			Email    string
			Username string
		}
		testutil.AssertJSONResponse(t, resp, &me)
		assert.Equal(t, "a@x.com", me.Email)
		assert.Equal(t, "alice", me.Username)
	})

	t.Run("with cookie only", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, ts.APIURL("/auth/me"), nil)
		req.AddCookie(&http.Cookie{Name: "token", Value: token})

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var me struct {
			Email    string
			Username string
		}
		testutil.AssertJSONResponse(t, resp, &me)
		assert.Equal(t, "a@x.com", me.Email)
		assert.Equal(t, "alice", me.Username)
	})

	t.Run("without token", func(t *testing.T) {
		resp, err := http.Get(ts.APIURL("/auth/me"))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		testutil.AssertBodyContains(t, resp, "Invalid token")
	})

	t.Run("deleted user with valid token", func(t *testing.T) {
		require.NoError(t, ts.DB.DB.Delete(user).Error)

		req, _ := http.NewRequest(http.MethodGet, ts.APIURL("/auth/me"), nil)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		testutil.AssertBodyContains(t, resp, "User not found")
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp, err := http.Post(ts.APIURL("/auth/logout"), "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	testutil.AssertMessageResponse(t, resp, http.StatusOK, "Logged out successfully")

	cookie := findCookie(t, resp, "token")
	require.NotNil(t, cookie, "logout should clear the token cookie")
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

// TestAuthFlow covers register → login → /me end to end.
func TestAuthFlow(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp := postJSON(t, ts.APIURL("/auth/register"), map[string]string{
		"email":    "a@x.com",
		"username": "alice",
		"password": "p@ss",
	})
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = postJSON(t, ts.APIURL("/auth/login"), map[string]string{
		"usernameOrEmail": "alice",
		"password":        "p@ss",
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var login testutil.LoginResponse
	testutil.AssertJSONResponse(t, resp, &login)
	require.NotEmpty(t, login.Token)

	req, _ := http.NewRequest(http.MethodGet, ts.APIURL("/auth/me"), nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)

	meResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer meResp.Body.Close()

	require.Equal(t, http.StatusOK, meResp.StatusCode)

	var me struct {
		Email    string
		Username string
	}
	testutil.AssertJSONResponse(t, meResp, &me)
	assert.Equal(t, "a@x.com", me.Email)
	assert.Equal(t, "alice", me.Username)
}

func findCookie(t *testing.T, resp *http.Response, name string) *http.Cookie {
	t.Helper()
	for _, cookie := range resp.Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}
