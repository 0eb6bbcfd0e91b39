package response

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestSuccess(t *testing.T) {
	rec := httptest.NewRecorder()

	Success(rec, map[string]string{"id": "u1"})

	assert.Equal(t, 200, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	resp := decode(t, rec)
	assert.True(t, resp.Success)
	assert.Nil(t, resp.Error)
}

func TestCreated(t *testing.T) {
	rec := httptest.NewRecorder()

	Created(rec, "User registered successfully", nil)

	assert.Equal(t, 201, rec.Code)
	resp := decode(t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, "User registered successfully", resp.Message)
}

func TestValidationError(t *testing.T) {
	rec := httptest.NewRecorder()

	ValidationError(rec, map[string]string{"email": "email is required"})

	assert.Equal(t, 422, rec.Code)
	resp := decode(t, rec)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Equal(t, "email is required", resp.Error.Details["email"])
}

func TestConflict(t *testing.T) {
	rec := httptest.NewRecorder()

	Conflict(rec, "Email already registered")

	assert.Equal(t, 409, rec.Code)
	resp := decode(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "CONFLICT", resp.Error.Code)
	assert.Empty(t, resp.Error.Details)
}
