package users

import (
	"testing"

	"mundebate-backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}))
	return db
}

func TestCreateHashesPassword(t *testing.T) {
	db := setupDB(t)

	user, err := Create(db, "mesa1", "secreta", models.RoleMesa)
	require.NoError(t, err)

	assert.True(t, user.IsActive)
	assert.NotEqual(t, "secreta", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secreta")))
}

func TestCreateRejectsMissingFields(t *testing.T) {
	db := setupDB(t)

	_, err := Create(db, "", "secreta", models.RoleMesa)
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = Create(db, "mesa1", "", models.RoleMesa)
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestCreateRejectsInvalidRole(t *testing.T) {
	db := setupDB(t)

	_, err := Create(db, "mesa1", "secreta", models.UserRole("presidente"))
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestCreateRejectsDuplicateUsername(t *testing.T) {
	db := setupDB(t)

	_, err := Create(db, "mesa1", "secreta", models.RoleMesa)
	require.NoError(t, err)

	_, err = Create(db, "mesa1", "otra", models.RoleSupervisor)
	assert.ErrorIs(t, err, ErrDuplicateUsername)
}

func TestUpdatePartial(t *testing.T) {
	db := setupDB(t)

	user, err := Create(db, "mesa1", "secreta", models.RoleMesa)
	require.NoError(t, err)

	role := models.RoleSupervisor
	inactive := false
	updated, err := Update(db, user.ID, UpdateInput{Role: &role, IsActive: &inactive})
	require.NoError(t, err)

	assert.Equal(t, models.RoleSupervisor, updated.Role)
	assert.False(t, updated.IsActive)
	// Sin contraseña nueva, el hash no cambia.
	assert.Equal(t, user.PasswordHash, updated.PasswordHash)
	assert.Equal(t, "mesa1", updated.Username)
}

func TestUpdateRehashesPassword(t *testing.T) {
	db := setupDB(t)

	user, err := Create(db, "mesa1", "secreta", models.RoleMesa)
	require.NoError(t, err)

	newPass := "nueva"
	updated, err := Update(db, user.ID, UpdateInput{Password: &newPass})
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("nueva")))
}

func TestUpdateRejectsDuplicateUsername(t *testing.T) {
	db := setupDB(t)

	_, err := Create(db, "mesa1", "secreta", models.RoleMesa)
	require.NoError(t, err)
	other, err := Create(db, "mesa2", "secreta", models.RoleMesa)
	require.NoError(t, err)

	taken := "mesa1"
	_, err = Update(db, other.ID, UpdateInput{Username: &taken})
	assert.ErrorIs(t, err, ErrDuplicateUsername)
}

func TestUpdateRejectsInvalidRole(t *testing.T) {
	db := setupDB(t)

	user, err := Create(db, "mesa1", "secreta", models.RoleMesa)
	require.NoError(t, err)

	bad := models.UserRole("presidente")
	_, err = Update(db, user.ID, UpdateInput{Role: &bad})
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestUpdateNotFound(t *testing.T) {
	db := setupDB(t)

	_, err := Update(db, 999, UpdateInput{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteProtectsAdminAccount(t *testing.T) {
	db := setupDB(t)

	admin, err := Create(db, "admin", "secreta", models.RoleAdmin)
	require.NoError(t, err)

	assert.ErrorIs(t, Delete(db, admin.ID), ErrProtectedUser)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestDeleteRemovesUser(t *testing.T) {
	db := setupDB(t)

	user, err := Create(db, "mesa1", "secreta", models.RoleMesa)
	require.NoError(t, err)
	require.NoError(t, Delete(db, user.ID))

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestDeleteNotFound(t *testing.T) {
	db := setupDB(t)
	assert.ErrorIs(t, Delete(db, 999), ErrNotFound)
}
