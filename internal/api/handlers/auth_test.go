package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/javi102/league-companion/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, url string, body interface{}) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewBuffer(raw))
	require.NoError(t, err)
	return resp
}

func TestAuthHandler_Register(t *testing.T) {
	ts := testutil.NewTestServer(t)

	tests := []struct {
		name            string
		request         map[string]string
		setup           func()
		expectedStatus  int
		expectedMessage string
	}{
		{
			name: "successful registration",
			request: map[string]string{
				"username": "ana",
				"email":    "a@x.com",
				"password": "p",
			},
			expectedStatus:  http.StatusCreated,
			expectedMessage: "Usuario registrado exitosamente",
		},
		{
			name: "duplicate username",
			request: map[string]string{
				"username": "ana",
				"email":    "other@x.com",
				"password": "q",
			},
			setup: func() {
				testutil.NewUserBuilder().WithUsername("ana").Build(t, ts.DB.DB)
			},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "El usuario ya existe",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts.DB.Truncate(t)

			if tt.setup != nil {
				tt.setup()
			}

			resp := postJSON(t, ts.URL("/register"), tt.request)
			defer resp.Body.Close()

			testutil.AssertMessageResponse(t, resp, tt.expectedStatus, tt.expectedMessage)
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	ts := testutil.NewTestServer(t)

	user, rawPassword := testutil.NewUserBuilder().
		WithUsername("loginuser").
		WithPassword("correctpassword").
		Build(t, ts.DB.DB)

	tests := []struct {
		name           string
		request        map[string]string
		expectedStatus int
		checkResponse  func(*testing.T, *http.Response)
	}{
		{
			name: "successful login",
			request: map[string]string{
				"username": user.Username,
				"password": rawPassword,
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp *http.Response) {
				var body struct {
					Message string `json:"message"`
					User    struct {
						ID       uint   `json:"id"`
						Username string `json:"username"`
						Email    string `json:"email"`
					} `json:"user"`
				}
				testutil.AssertJSONResponse(t, resp, &body)
				assert.Equal(t, "Inicio de sesión exitoso", body.Message)
				assert.Equal(t, user.ID, body.User.ID)
				assert.Equal(t, user.Username, body.User.Username)
			},
		},
		{
			name: "wrong password",
			request: map[string]string{
				"username": user.Username,
				"password": "wrong",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "unknown user",
			request: map[string]string{
				"username": "ghost",
				"password": "whatever",
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, ts.URL("/login"), tt.request)
			defer resp.Body.Close()

			testutil.AssertStatusCode(t, resp, tt.expectedStatus)

			if tt.checkResponse != nil {
				tt.checkResponse(t, resp)
			}
		})
	}
}

func TestAuthHandler_PasswordNotExposed(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp := postJSON(t, ts.URL("/register"), map[string]string{
		"username": "secretive",
		"email":    "s@x.com",
		"password": "hunter2",
	})
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = postJSON(t, ts.URL("/login"), map[string]string{
		"username": "secretive",
		"password": "hunter2",
	})
	defer resp.Body.Close()

	var body map[string]interface{}
	testutil.AssertJSONResponse(t, resp, &body)
	user, ok := body["user"].(map[string]interface{})
	require.True(t, ok)
	assert.NotContains(t, user, "password")
	assert.NotContains(t, user, "passwordHash")
}
