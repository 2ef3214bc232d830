package server

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"mergington-activities/internal/common/errors"
	"mergington-activities/internal/common/observability"
	"mergington-activities/internal/enrollment"
)

// activityParam extracts the activity name path segment. Names may
// contain spaces ("Chess Club"), so the raw segment is unescaped before
// the exact-match lookup.
func activityParam(r *http.Request) string {
	name := chi.URLParam(r, "activity")
	if unescaped, err := url.PathUnescape(name); err == nil {
		return unescaped
	}
	return name
}

type Handler struct {
	service *enrollment.Service
	obs     *observability.Observability
}

func NewHandler(service *enrollment.Service, obs *observability.Observability) *Handler {
	return &Handler{service: service, obs: obs}
}

func (h *Handler) listActivities(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer func() { h.obs.RecordRequestDuration(r.Context(), time.Since(start), "list") }()

	catalog := h.service.List(r.Context())
	h.obs.RecordRequest(r.Context(), "list", "ok")
	writeJSON(w, http.StatusOK, catalog)
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer func() { h.obs.RecordRequestDuration(r.Context(), time.Since(start), "register") }()

	activityName := activityParam(r)
	email := strings.TrimSpace(r.URL.Query().Get("email"))
	if email == "" {
		h.obs.RecordRequest(r.Context(), "register", "rejected")
		writeError(w, errors.NewInvalidInputError("email query parameter is required"))
		return
	}

	message, err := h.service.Register(r.Context(), activityName, email)
	if err != nil {
		h.obs.RecordRequest(r.Context(), "register", "rejected")
		writeError(w, err)
		return
	}

	h.obs.RecordRequest(r.Context(), "register", "ok")
	writeMessage(w, message)
}

func (h *Handler) unregister(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer func() { h.obs.RecordRequestDuration(r.Context(), time.Since(start), "unregister") }()

	activityName := activityParam(r)
	email := strings.TrimSpace(r.URL.Query().Get("email"))
	if email == "" {
		h.obs.RecordRequest(r.Context(), "unregister", "rejected")
		writeError(w, errors.NewInvalidInputError("email query parameter is required"))
		return
	}

	message, err := h.service.Unregister(r.Context(), activityName, email)
	if err != nil {
		h.obs.RecordRequest(r.Context(), "unregister", "rejected")
		writeError(w, err)
		return
	}

	h.obs.RecordRequest(r.Context(), "unregister", "ok")
	writeMessage(w, message)
}
