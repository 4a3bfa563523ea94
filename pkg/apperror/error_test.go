package apperror

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorError(t *testing.T) {
	assert.Equal(t, "bad_request: Invalid request", ErrBadRequest.Error())

	withInternal := ErrInternal.WithInternal(errors.New("boom"))
	assert.Equal(t, "internal_error: An internal error occurred (boom)", withInternal.Error())
}

func TestErrorCopiesDoNotMutateBase(t *testing.T) {
	custom := ErrBadRequest.WithMessage("status is required")

	assert.Equal(t, "status is required", custom.Message)
	assert.Equal(t, "Invalid request", ErrBadRequest.Message)
	assert.Equal(t, http.StatusBadRequest, custom.HTTPStatus)
}

func TestErrorUnwrap(t *testing.T) {
	inner := errors.New("inner")
	err := NewInternal("render failed", inner)

	assert.ErrorIs(t, err, inner)
}

func TestNewValidation(t *testing.T) {
	err := NewValidation("status", "unknown connection status")

	assert.Equal(t, http.StatusUnprocessableEntity, err.HTTPStatus)
	assert.Equal(t, "validation_error", err.Code)
	assert.Equal(t, map[string]any{"field": "status"}, err.Details)
}

func TestToHTTPError(t *testing.T) {
	t.Run("app error", func(t *testing.T) {
		code, body := ToHTTPError(NewValidation("status", "bad"))
		assert.Equal(t, http.StatusUnprocessableEntity, code)

		errBody := body["error"].(map[string]any)
		assert.Equal(t, "validation_error", errBody["code"])
		assert.Equal(t, "bad", errBody["message"])
		assert.Equal(t, map[string]any{"field": "status"}, errBody["details"])
	})

	t.Run("wrapped app error", func(t *testing.T) {
		code, _ := ToHTTPError(fmt.Errorf("decode: %w", ErrUnsupportedMedia))
		assert.Equal(t, http.StatusUnsupportedMediaType, code)
	})

	t.Run("plain error", func(t *testing.T) {
		code, body := ToHTTPError(errors.New("unexpected"))
		assert.Equal(t, http.StatusInternalServerError, code)
		assert.Equal(t, "internal_error", body["error"].(map[string]any)["code"])
	})
}

func TestWrite(t *testing.T) {
	log := slog.Default()

	t.Run("writes json body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/wallet/status", nil)
		rec := httptest.NewRecorder()

		Write(rec, req, log, NewBadRequest("missing status"))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var resp map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		errObj := resp["error"].(map[string]any)
		assert.Equal(t, "bad_request", errObj["code"])
		assert.Equal(t, "missing status", errObj["message"])
	})

	t.Run("head request has no body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodHead, "/navbar/menu", nil)
		rec := httptest.NewRecorder()

		Write(rec, req, log, ErrNotFound)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Zero(t, rec.Body.Len())
	})
}
