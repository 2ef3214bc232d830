package server

import (
	"encoding/json"
	"net/http"

	"mergington-activities/internal/common/errors"
)

// messageResponse is the success body: a confirmation mentioning both
// the email and the activity.
type messageResponse struct {
	Message string `json:"message"`
}

// detailResponse is the error body, matching the API's original shape.
type detailResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeMessage(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, messageResponse{Message: message})
}

func writeError(w http.ResponseWriter, err error) {
	if stdErr, ok := errors.AsStandardError(err); ok {
		writeJSON(w, errors.HTTPStatus(stdErr.Code), detailResponse{Detail: stdErr.Message})
		return
	}
	writeJSON(w, http.StatusInternalServerError, detailResponse{Detail: "internal server error"})
}
