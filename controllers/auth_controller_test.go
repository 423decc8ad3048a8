package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardly-app/cardly-backend/models"
)

func TestRegisterDuplicateEmail(t *testing.T) {
	router, db := setupRouter(t)

	payload := map[string]string{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "secret123",
	}

	w := performRequest(router, "POST", "/auth/register", payload)
	assert.Equal(t, http.StatusCreated, w.Code)

	// Same email again: rejected and no second row created.
	w = performRequest(router, "POST", "/auth/register", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("email = ?", "alice@example.com").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRegisterMissingFields(t *testing.T) {
	router, _ := setupRouter(t)

	w := performRequest(router, "POST", "/auth/register", map[string]string{"email": "bob@example.com"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginRequiresVerifiedEmail(t *testing.T) {
	router, db := setupRouter(t)

	w := performRequest(router, "POST", "/auth/register", map[string]string{
		"name":     "Bob",
		"email":    "bob@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	login := map[string]string{"email": "bob@example.com", "password": "secret123"}

	// Correct password but unverified account.
	w = performRequest(router, "POST", "/auth/login", login)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var user models.User
	require.NoError(t, db.Where("email = ?", "bob@example.com").First(&user).Error)
	require.NotNil(t, user.VerificationToken)

	w = performRequest(router, "GET", "/auth/verify-email?token="+*user.VerificationToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Token is single-use: cleared after verification.
	require.NoError(t, db.Where("email = ?", "bob@example.com").First(&user).Error)
	assert.True(t, user.IsVerified)
	assert.Nil(t, user.VerificationToken)

	w = performRequest(router, "POST", "/auth/login", login)
	assert.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	userBody, ok := body["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "bob@example.com", userBody["email"])
	assert.NotContains(t, userBody, "password")
}

func TestLoginWrongPassword(t *testing.T) {
	router, db := setupRouter(t)

	w := performRequest(router, "POST", "/auth/register", map[string]string{
		"name":     "Carol",
		"email":    "carol@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var user models.User
	require.NoError(t, db.Where("email = ?", "carol@example.com").First(&user).Error)
	performRequest(router, "GET", "/auth/verify-email?token="+*user.VerificationToken, nil)

	w = performRequest(router, "POST", "/auth/login", map[string]string{
		"email":    "carol@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = performRequest(router, "POST", "/auth/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestVerifyEmailBadToken(t *testing.T) {
	router, _ := setupRouter(t)

	w := performRequest(router, "GET", "/auth/verify-email", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performRequest(router, "GET", "/auth/verify-email?token=not-a-real-token", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
