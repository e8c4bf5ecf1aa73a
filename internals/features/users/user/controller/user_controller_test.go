package controller_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userController "pustakaku_backend/internals/features/users/user/controller"
	userModel "pustakaku_backend/internals/features/users/user/model"
	"pustakaku_backend/internals/testutil"
)

func TestRegisterIssuesTokenAndPersists(t *testing.T) {
	app, db := testutil.NewTestApp(t)

	resp := testutil.DoJSON(t, app, http.MethodPost, "/users/create/", "", map[string]any{
		"name":     "John Thapa",
		"email":    "john@Example.COM",
		"password": "secure_password",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	data := testutil.Data(t, testutil.DecodeBody(t, resp))
	assert.Equal(t, "John Thapa", data["name"])
	assert.Equal(t, "john@example.com", data["email"], "domain half must be lower-cased")
	assert.NotEmpty(t, data["token"])
	assert.NotEmpty(t, data["membership_date"])

	token := data["token"].(string)
	id := int(data["userID"].(float64))

	// fetch by the returned id with the returned credential
	resp = testutil.DoJSON(t, app, http.MethodGet, fmt.Sprintf("/users/%d/", id), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := testutil.Data(t, testutil.DecodeBody(t, resp))
	assert.Equal(t, "John Thapa", got["name"])
	assert.Equal(t, "john@example.com", got["email"])

	// registration policy: staff yes, superuser no
	var stored userModel.UserModel
	require.NoError(t, db.First(&stored, "user_id = ?", id).Error)
	assert.True(t, stored.IsStaff)
	assert.False(t, stored.IsSuperuser)
	assert.True(t, stored.IsActive)
	assert.NotEqual(t, "secure_password", stored.Password, "password must be hashed")
}

func TestRegisterMissingFields(t *testing.T) {
	app, _ := testutil.NewTestApp(t)

	for _, body := range []map[string]any{
		{"email": "a@x.com", "password": "p"},
		{"name": "A", "password": "p"},
		{"name": "A", "email": "a@x.com"},
		{},
	} {
		resp := testutil.DoJSON(t, app, http.MethodPost, "/users/create/", "", body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		got := testutil.DecodeBody(t, resp)
		assert.Equal(t, "name, email and password are required in the request data.", got["message"])
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	app, db := testutil.NewTestApp(t)

	testutil.RegisterUser(t, app, "A", "a@x.com", "p")

	resp := testutil.DoJSON(t, app, http.MethodPost, "/users/create/", "", map[string]any{
		"name": "B", "email": "a@x.com", "password": "q",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	got := testutil.DecodeBody(t, resp)
	assert.Equal(t, "Email address must be unique.", got["message"])

	var count int64
	require.NoError(t, db.Model(&userModel.UserModel{}).Where("email = ?", "a@x.com").Count(&count).Error)
	assert.Equal(t, int64(1), count, "never a second row with that email")
}

func TestListUsersNewestFirstAndPaginated(t *testing.T) {
	app, _ := testutil.NewTestApp(t)

	_, token := testutil.RegisterUser(t, app, "First", "first@x.com", "p")
	for i := 0; i < 11; i++ {
		testutil.RegisterUser(t, app, "U", fmt.Sprintf("u%d@x.com", i), "p")
	}

	resp := testutil.DoJSON(t, app, http.MethodGet, "/users/list/", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := testutil.DecodeBody(t, resp)

	data := body["data"].([]any)
	assert.Len(t, data, 10, "fixed page size")

	first := data[0].(map[string]any)
	assert.Equal(t, "u10@x.com", first["email"], "newest id first")

	pg := body["pagination"].(map[string]any)
	assert.Equal(t, float64(1), pg["page"])
	assert.Equal(t, float64(12), pg["total"])
	assert.Equal(t, float64(2), pg["total_pages"])
	assert.Equal(t, true, pg["has_next"])
	assert.Equal(t, false, pg["has_prev"])

	resp = testutil.DoJSON(t, app, http.MethodGet, "/users/list/?page=2", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body = testutil.DecodeBody(t, resp)
	assert.Len(t, body["data"].([]any), 2)
	last := body["data"].([]any)[1].(map[string]any)
	assert.Equal(t, "first@x.com", last["email"])
}

func TestListUsersEmptyIs404(t *testing.T) {
	// An authenticated request implies at least one user exists, so the
	// empty-collection contract is exercised on the handler directly.
	db := testutil.NewTestDB(t)
	app := fiber.New()
	app.Get("/users/list/", userController.NewUserController(db).List)

	resp := testutil.DoJSON(t, app, http.MethodGet, "/users/list/", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	got := testutil.DecodeBody(t, resp)
	assert.Equal(t, "No users found.", got["message"])
}

func TestGetUserNotFound(t *testing.T) {
	app, _ := testutil.NewTestApp(t)
	_, token := testutil.RegisterUser(t, app, "A", "a@x.com", "p")

	resp := testutil.DoJSON(t, app, http.MethodGet, "/users/999/", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	got := testutil.DecodeBody(t, resp)
	assert.Equal(t, "Sorry, the user with ID 999 does not exist.", got["message"])
}

func TestUpdateUserPatchSemantics(t *testing.T) {
	app, _ := testutil.NewTestApp(t)
	id, token := testutil.RegisterUser(t, app, "A", "a@x.com", "p")
	otherID, _ := testutil.RegisterUser(t, app, "B", "b@x.com", "p")

	// name only; email untouched
	resp := testutil.DoJSON(t, app, http.MethodPut, fmt.Sprintf("/users/update/%d/", id), token, map[string]any{
		"name": "Renamed",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := testutil.Data(t, testutil.DecodeBody(t, resp))
	assert.Equal(t, "Renamed", data["name"])
	assert.Equal(t, "a@x.com", data["email"])

	// own email again: uniqueness excludes self
	resp = testutil.DoJSON(t, app, http.MethodPut, fmt.Sprintf("/users/update/%d/", id), token, map[string]any{
		"email": "a@x.com",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	_ = testutil.DecodeBody(t, resp)

	// someone else's email: rejected
	resp = testutil.DoJSON(t, app, http.MethodPut, fmt.Sprintf("/users/update/%d/", otherID), token, map[string]any{
		"email": "a@x.com",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	got := testutil.DecodeBody(t, resp)
	assert.Equal(t, "Email address must be unique.", got["message"])

	// absent user
	resp = testutil.DoJSON(t, app, http.MethodPut, "/users/update/999/", token, map[string]any{
		"name": "X",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteUser(t *testing.T) {
	app, _ := testutil.NewTestApp(t)
	_, token := testutil.RegisterUser(t, app, "Keeper", "keep@x.com", "p")
	victimID, _ := testutil.RegisterUser(t, app, "Victim", "victim@x.com", "p")

	resp := testutil.DoJSON(t, app, http.MethodDelete, fmt.Sprintf("/users/delete/%d/", victimID), token, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = testutil.DoJSON(t, app, http.MethodGet, fmt.Sprintf("/users/%d/", victimID), token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = testutil.DoJSON(t, app, http.MethodDelete, fmt.Sprintf("/users/delete/%d/", victimID), token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
