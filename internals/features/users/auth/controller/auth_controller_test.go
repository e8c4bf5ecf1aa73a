package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pustakaku_backend/internals/testutil"
)

func TestObtainAuthTokenReturnsRegistrationToken(t *testing.T) {
	app, _ := testutil.NewTestApp(t)
	_, regToken := testutil.RegisterUser(t, app, "A", "a@x.com", "secret-pass")

	resp := testutil.DoJSON(t, app, http.MethodPost, "/api-token-auth/", "", map[string]any{
		"email":    "a@x.com",
		"password": "secret-pass",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := testutil.DecodeBody(t, resp)
	assert.Equal(t, regToken, body["token"], "get-or-create must hand back the existing credential")

	// a second login still yields the same opaque key
	resp = testutil.DoJSON(t, app, http.MethodPost, "/api-token-auth/", "", map[string]any{
		"email":    "a@x.com",
		"password": "secret-pass",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, regToken, testutil.DecodeBody(t, resp)["token"])
}

func TestObtainAuthTokenBadCredentials(t *testing.T) {
	app, _ := testutil.NewTestApp(t)
	testutil.RegisterUser(t, app, "A", "a@x.com", "secret-pass")

	cases := []map[string]any{
		{"email": "a@x.com", "password": "wrong"},
		{"email": "nobody@x.com", "password": "secret-pass"},
	}
	for _, body := range cases {
		resp := testutil.DoJSON(t, app, http.MethodPost, "/api-token-auth/", "", body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		got := testutil.DecodeBody(t, resp)
		assert.Equal(t, "Unable to log in with provided credentials.", got["message"])
	}

	// missing fields
	resp := testutil.DoJSON(t, app, http.MethodPost, "/api-token-auth/", "", map[string]any{"email": "a@x.com"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGuardedEndpointsRejectBadCredentials(t *testing.T) {
	app, _ := testutil.NewTestApp(t)
	_, token := testutil.RegisterUser(t, app, "A", "a@x.com", "p")

	// no header at all
	resp := testutil.DoJSON(t, app, http.MethodGet, "/books/list/", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	got := testutil.DecodeBody(t, resp)
	assert.Equal(t, "Authentication credentials were not provided.", got["message"])

	// unknown key
	resp = testutil.DoJSON(t, app, http.MethodGet, "/books/list/", "deadbeef", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	got = testutil.DecodeBody(t, resp)
	assert.Equal(t, "Invalid token.", got["message"])

	// wrong scheme
	req := httptest.NewRequest(http.MethodGet, "/users/list/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	raw, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, raw.StatusCode)
	_ = raw.Body.Close()

	// the valid credential passes the guard
	resp = testutil.DoJSON(t, app, http.MethodGet, "/users/list/", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	_ = testutil.DecodeBody(t, resp)
}

func TestInactiveUserIsRejected(t *testing.T) {
	app, db := testutil.NewTestApp(t)
	id, token := testutil.RegisterUser(t, app, "A", "a@x.com", "p")

	require.NoError(t, db.Table("users").Where("user_id = ?", id).Update("is_active", false).Error)

	resp := testutil.DoJSON(t, app, http.MethodGet, "/users/list/", token, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	got := testutil.DecodeBody(t, resp)
	assert.Equal(t, "User inactive or deleted.", got["message"])
}

func TestRootRedirectsToUserList(t *testing.T) {
	app, _ := testutil.NewTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/users/list/", resp.Header.Get("Location"))
}
