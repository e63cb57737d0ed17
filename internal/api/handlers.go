// Package api exposes the dev host's activity endpoints.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/vcrobe/activities/internal/activities"
	"github.com/vcrobe/activities/internal/catalog"
	"github.com/vcrobe/activities/internal/observability"
)

// Handler coordinates HTTP requests with the in-memory catalog.
type Handler struct {
	store *catalog.Store
}

// NewHandler builds a Handler.
func NewHandler(store *catalog.Store) *Handler {
	return &Handler{store: store}
}

// RegisterRoutes wires endpoints to the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/activities", h.activities)
	mux.HandleFunc("/activities/{name}/signup", h.signup)
	mux.HandleFunc("/activities/{name}/participants", h.participants)
	mux.HandleFunc("/healthz", healthz)
}

// healthz reports a simple OK status for health checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) activities(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}

	observability.RecordList()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := activities.EncodeCatalog(w, h.store.List()); err != nil {
		log.Printf("encode catalog: %v", err)
	}
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}

	name := r.PathValue("name")
	email := r.URL.Query().Get("email")
	if email == "" {
		observability.RecordSignup(observability.OutcomeInvalid)
		writeError(w, http.StatusUnprocessableEntity, "validation_failed", "Missing email parameter")
		return
	}

	if err := h.store.Signup(name, email); err != nil {
		status, detail := storeErrorStatus(err)
		observability.RecordSignup(outcomeFor(status))
		writeError(w, status, errorCode(status), detail)
		return
	}

	observability.RecordSignup(observability.OutcomeOK)
	writeJSON(w, http.StatusOK, MessageResponse{Message: fmt.Sprintf("Signed up %s for %s", email, name)})
}

func (h *Handler) participants(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}

	name := r.PathValue("name")
	email := r.URL.Query().Get("email")
	if email == "" {
		observability.RecordUnregister(observability.OutcomeInvalid)
		writeError(w, http.StatusUnprocessableEntity, "validation_failed", "Missing email parameter")
		return
	}

	if err := h.store.Unregister(name, email); err != nil {
		status, detail := storeErrorStatus(err)
		observability.RecordUnregister(outcomeFor(status))
		writeError(w, status, errorCode(status), detail)
		return
	}

	observability.RecordUnregister(observability.OutcomeOK)
	writeJSON(w, http.StatusOK, MessageResponse{Message: fmt.Sprintf("Unregistered %s from %s", email, name)})
}

// storeErrorStatus maps catalog errors to the status and detail the page shows.
func storeErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, catalog.ErrActivityNotFound):
		return http.StatusNotFound, "Activity not found"
	case errors.Is(err, catalog.ErrAlreadySignedUp):
		return http.StatusBadRequest, "Student is already signed up"
	case errors.Is(err, catalog.ErrActivityFull):
		return http.StatusBadRequest, "Activity is full"
	case errors.Is(err, catalog.ErrParticipantNotFound):
		return http.StatusNotFound, "Student is not signed up for this activity"
	default:
		return http.StatusInternalServerError, err.Error()
	}
}

func outcomeFor(status int) string {
	if status == http.StatusNotFound {
		return observability.OutcomeNotFound
	}
	return observability.OutcomeRejected
}

func errorCode(status int) string {
	switch status {
	case http.StatusNotFound:
		return "not_found"
	case http.StatusBadRequest:
		return "rejected"
	default:
		return "server_error"
	}
}

func writeError(w http.ResponseWriter, status int, code, detail string) {
	payload := map[string]string{
		"type":   code,
		"detail": detail,
	}
	writeJSON(w, status, payload)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
