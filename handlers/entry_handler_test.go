package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Validation paths below never reach a service, so the handler is wired with
// none. Store-backed behavior lives in tests/integration.

func TestCreateEntry_InvalidBody(t *testing.T) {
	handler := NewEntryHandler(nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/entries/", strings.NewReader(`{not json`))
	rr := httptest.NewRecorder()

	handler.CreateEntry(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCreateEntry_MissingFields(t *testing.T) {
	handler := NewEntryHandler(nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/entries/", strings.NewReader(`{"user_id": "u1", "date": "2024-06-03"}`))
	rr := httptest.NewRecorder()

	handler.CreateEntry(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var response map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Contains(t, response["error"], "required")
}

func TestCreateEntry_BadDateFormat(t *testing.T) {
	handler := NewEntryHandler(nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/entries/", strings.NewReader(`{"user_id": "u1", "date": "03/06/2024", "text": "Did X"}`))
	rr := httptest.NewRecorder()

	handler.CreateEntry(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestListEntries_MissingUserID(t *testing.T) {
	handler := NewEntryHandler(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/entries/", nil)
	rr := httptest.NewRecorder()

	handler.ListEntries(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUpdateEntry_MissingEntryID(t *testing.T) {
	handler := NewEntryHandler(nil, nil)

	req := httptest.NewRequest(http.MethodPut, "/entries/", strings.NewReader(`{"text": "new text"}`))
	rr := httptest.NewRecorder()

	handler.UpdateEntry(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUpdateSettings_EmptyBody(t *testing.T) {
	handler := NewEntryHandler(nil, nil)

	req := httptest.NewRequest(http.MethodPut, "/entries/settings/u1", strings.NewReader(`{}`))
	req = mux.SetURLVars(req, map[string]string{"user_id": "u1"})
	rr := httptest.NewRecorder()

	handler.UpdateSettings(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var response map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, "No fields to update", response["error"])
}

func TestGetWeeklyEntries_BadFormat(t *testing.T) {
	handler := NewEntryHandler(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/entries/weekly/u1?week_start=June-3rd", nil)
	req = mux.SetURLVars(req, map[string]string{"user_id": "u1"})
	rr := httptest.NewRecorder()

	handler.GetWeeklyEntries(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetWeeklyEntries_NotAMonday(t *testing.T) {
	handler := NewEntryHandler(nil, nil)

	// 2024-06-04 is a Tuesday
	req := httptest.NewRequest(http.MethodGet, "/entries/weekly/u1?week_start=2024-06-04", nil)
	req = mux.SetURLVars(req, map[string]string{"user_id": "u1"})
	rr := httptest.NewRecorder()

	handler.GetWeeklyEntries(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var response map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Contains(t, response["error"], "Monday")
}
