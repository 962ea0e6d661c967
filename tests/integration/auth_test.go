package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weekupAPI/handlers"
	"weekupAPI/internal/supabase"
	"weekupAPI/services"
	"weekupAPI/tests/helpers"
)

func TestMe_LazyProfileProvision(t *testing.T) {
	pool := helpers.SetupTestDB(t)
	defer helpers.CleanupTestDB(t, pool)

	authSrv := helpers.NewMockAuthServer(t)
	defer authSrv.Close()

	client, err := supabase.NewClient(authSrv.URL, "test-anon-key")
	require.NoError(t, err)

	profileService := services.NewProfileService(pool)
	handler := handlers.NewAuthHandler(client, profileService)

	userID := helpers.TestUserID()
	token, err := helpers.GenerateMockAccessToken(userID, "test-lazy@example.com")
	require.NoError(t, err)

	// First authenticated call provisions the profile.
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()

	handler.Me(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var identity supabase.User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &identity))
	assert.Equal(t, userID, identity.ID)
	assert.Equal(t, "test-lazy@example.com", identity.Email)

	ctx := context.Background()
	p, err := profileService.GetProfile(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "UTC", p.Timezone)
	assert.Equal(t, 9, p.ReminderH)
	assert.Equal(t, 0, p.ReminderM)
	assert.False(t, p.PdfOn)

	// Second call must not create a duplicate row.
	rr2 := httptest.NewRecorder()
	handler.Me(rr2, req)
	assert.Equal(t, http.StatusOK, rr2.Code)

	var count int
	err = pool.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE user_id = $1`, userID).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMe_ExpiredToken(t *testing.T) {
	pool := helpers.SetupTestDB(t)
	defer helpers.CleanupTestDB(t, pool)

	authSrv := helpers.NewMockAuthServer(t)
	defer authSrv.Close()

	client, err := supabase.NewClient(authSrv.URL, "test-anon-key")
	require.NoError(t, err)

	handler := handlers.NewAuthHandler(client, services.NewProfileService(pool))

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer not.a.jwt")
	rr := httptest.NewRecorder()

	handler.Me(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
