package database_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tokenModel "pustakaku_backend/internals/features/users/auth/model"
	userModel "pustakaku_backend/internals/features/users/user/model"
	"pustakaku_backend/internals/testutil"
)

func TestMigrateForeignKeyDirection(t *testing.T) {
	db := testutil.NewTestDB(t)

	var usersDDL, tokensDDL string
	require.NoError(t, db.Raw(
		"SELECT sql FROM sqlite_master WHERE type = 'table' AND name = ?", "users",
	).Scan(&usersDDL).Error)
	require.NoError(t, db.Raw(
		"SELECT sql FROM sqlite_master WHERE type = 'table' AND name = ?", "auth_tokens",
	).Scan(&tokensDDL).Error)

	// parent table carries no FK; the child references the parent
	assert.NotContains(t, usersDDL, "REFERENCES")
	assert.Contains(t, tokensDDL, `REFERENCES`)
	assert.Contains(t, tokensDDL, "users")

	var booksDDL, detailsDDL, borrowsDDL string
	require.NoError(t, db.Raw(
		"SELECT sql FROM sqlite_master WHERE type = 'table' AND name = ?", "books",
	).Scan(&booksDDL).Error)
	require.NoError(t, db.Raw(
		"SELECT sql FROM sqlite_master WHERE type = 'table' AND name = ?", "book_details",
	).Scan(&detailsDDL).Error)
	require.NoError(t, db.Raw(
		"SELECT sql FROM sqlite_master WHERE type = 'table' AND name = ?", "borrowed_books",
	).Scan(&borrowsDDL).Error)

	assert.NotContains(t, booksDDL, "REFERENCES")
	assert.Contains(t, detailsDDL, "REFERENCES")
	assert.Contains(t, borrowsDDL, "REFERENCES")
}

func TestMigrateAllowsPlainInserts(t *testing.T) {
	db := testutil.NewTestDB(t)

	// a user row on a fresh schema must not trip any constraint
	user := userModel.UserModel{Name: "A", Email: "a@x.com", Password: "hash"}
	require.NoError(t, db.Create(&user).Error)

	token := tokenModel.AuthTokenModel{Key: "k1", UserID: user.UserID}
	require.NoError(t, db.Create(&token).Error)

	// the cascade runs user -> token, never the other way
	require.NoError(t, db.Delete(&user).Error)

	var left int64
	require.NoError(t, db.Model(&tokenModel.AuthTokenModel{}).
		Where("user_id = ?", user.UserID).Count(&left).Error)
	assert.Zero(t, left)

	var users int64
	require.NoError(t, db.Model(&userModel.UserModel{}).Count(&users).Error)
	assert.Zero(t, users)
}
