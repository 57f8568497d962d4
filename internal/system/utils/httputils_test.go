package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "github.com/hirewise/recruiting-data-service/internal/system/errors"
)

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var envelope Envelope
	require.NoError(t, json.NewDecoder(w.Body).Decode(&envelope))
	return envelope
}

func TestWriteSuccess(t *testing.T) {
	w := httptest.NewRecorder()

	WriteSuccess(w, http.StatusCreated, map[string]string{"event_id": "e-1"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	envelope := decodeEnvelope(t, w)
	assert.True(t, envelope.Success)
	assert.Nil(t, envelope.Error)
}

func TestHandleErrorClientErrorKeepsStatusAndDescription(t *testing.T) {
	w := httptest.NewRecorder()
	err := apierrors.NewClientError(apierrors.ErrorMessage{
		Code:        "RDS-11002",
		Message:     "Analytics event not found.",
		Description: "Event with ID e-404 not found",
	}, http.StatusNotFound)

	HandleError(w, err)

	assert.Equal(t, http.StatusNotFound, w.Code)
	envelope := decodeEnvelope(t, w)
	assert.False(t, envelope.Success)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "RDS-11002", envelope.Error.Code)
	assert.Equal(t, "Event with ID e-404 not found", envelope.Error.Description)
}

func TestHandleErrorServerErrorStripsDescription(t *testing.T) {
	w := httptest.NewRecorder()
	err := apierrors.NewServerError(apierrors.ErrorMessage{
		Code:        "RDS-15001",
		Message:     "Error while persisting analytics event.",
		Description: "connection refused on 10.0.0.5:5432",
	}, errors.New("connection refused"))

	HandleError(w, err)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	envelope := decodeEnvelope(t, w)
	assert.False(t, envelope.Success)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "RDS-15001", envelope.Error.Code)
	assert.Empty(t, envelope.Error.Description, "internal detail must not leak")
}

func TestHandleErrorUnknownErrorFallsBack(t *testing.T) {
	w := httptest.NewRecorder()

	HandleError(w, errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	envelope := decodeEnvelope(t, w)
	assert.False(t, envelope.Success)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "RDS-15000", envelope.Error.Code)
}
