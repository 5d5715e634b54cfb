package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"go-notes-api/internal/model"
	"go-notes-api/pkg/apierror"
)

func writeSuccess(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(model.APIResponse{
		Success: true,
		Data:    data,
	})
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	body := &model.APIError{
		Code:    "INTERNAL_ERROR",
		Message: "Unexpected server error",
	}

	var apiErr *apierror.APIError
	if errors.As(err, &apiErr) {
		status = apiErr.HTTPStatus
		body.Code = apiErr.Code
		body.Message = apiErr.Message
		body.Details = apiErr.Details
	} else if errors.Is(err, model.ErrInvalidCredentials) || errors.Is(err, model.ErrUnauthorized) {
		// One message for bad password, unknown user, and inactive
		// account, so the API does not leak which one it was.
		status = http.StatusUnauthorized
		body.Code = "UNAUTHORIZED"
		body.Message = "Unauthorized"
	} else if errors.Is(err, model.ErrSessionInvalid) || errors.Is(err, model.ErrForbidden) {
		status = http.StatusForbidden
		body.Code = "FORBIDDEN"
		body.Message = "Forbidden"
	} else if errors.Is(err, model.ErrDuplicateUsername) {
		status = http.StatusConflict
		body.Code = "CONFLICT"
		body.Message = "Duplicate username"
	} else if errors.Is(err, model.ErrDuplicateTitle) {
		status = http.StatusConflict
		body.Code = "CONFLICT"
		body.Message = "Duplicate note title"
	} else if errors.Is(err, model.ErrUserNotFound) {
		status = http.StatusBadRequest
		body.Code = "BAD_REQUEST"
		body.Message = "User not found"
	} else if errors.Is(err, model.ErrNoteNotFound) {
		status = http.StatusBadRequest
		body.Code = "BAD_REQUEST"
		body.Message = "Note not found"
	} else if errors.Is(err, model.ErrNoUsers) {
		status = http.StatusBadRequest
		body.Code = "BAD_REQUEST"
		body.Message = "No users found"
	} else if errors.Is(err, model.ErrNoNotes) {
		status = http.StatusBadRequest
		body.Code = "BAD_REQUEST"
		body.Message = "No notes found"
	} else if errors.Is(err, model.ErrUserHasNotes) {
		status = http.StatusBadRequest
		body.Code = "BAD_REQUEST"
		body.Message = "User has assigned notes"
	} else {
		// Log unclassified errors so they are visible in container logs.
		slog.Error("unhandled error in writeError", "error", err.Error())
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(model.APIResponse{
		Success: false,
		Error:   body,
	})
}
