package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var body ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestHandleAppErrorStatusMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{NewValidationError("mauvaise requête"), http.StatusBadRequest},
		{NewNotFoundError("introuvable"), http.StatusNotFound},
		{NewConflictError("conflit"), http.StatusConflict},
		{NewAuthError("non autorisé"), http.StatusUnauthorized},
		{NewInternalError("erreur interne", errors.New("boom")), http.StatusInternalServerError},
	}

	for _, c := range cases {
		rec := httptest.NewRecorder()
		HandleAppError(rec, c.err)
		require.Equal(t, c.status, rec.Code)
	}
}

func TestHandleAppErrorUnknownErrorIs500(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleAppError(rec, errors.New("plain error"))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, "Erreur interne du serveur", decodeError(t, rec).Error)
}

func TestRespondErrorHidesDetailsBelow500(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondError(rec, http.StatusBadRequest, "mauvaise requête", errors.New("internal detail"))

	body := decodeError(t, rec)
	require.Equal(t, "mauvaise requête", body.Error)
	require.Empty(t, body.Details)
}

func TestRespondErrorEchoesDetailsFor500(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondError(rec, http.StatusInternalServerError, "erreur interne", errors.New("pgx: broken"))

	body := decodeError(t, rec)
	require.Equal(t, "erreur interne", body.Error)
	require.Equal(t, "pgx: broken", body.Details)
}

func TestAppErrorUnwrap(t *testing.T) {
	inner := errors.New("inner")
	err := NewInternalError("wrapped", inner)
	require.ErrorIs(t, err, inner)
}
