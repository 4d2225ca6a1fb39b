package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"market-master/service"
)

type FormHandler struct {
	forms *service.FormService
}

func NewFormHandler(forms *service.FormService) *FormHandler {
	return &FormHandler{forms: forms}
}

// Validate checks a url-encoded submission. Invalid submissions answer 422
// with the per-field messages.
func (h *FormHandler) Validate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid form body")
		return
	}

	result, err := h.forms.Validate(chi.URLParam(r, "form"), r.PostForm)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	status := http.StatusOK
	if !result.Valid {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, APIResponse{Success: result.Valid, Data: result})
}
