package http

import (
	"net/http"

	"market-master/service"
)

const clientIDHeader = "X-Client-ID"

type PreferenceHandler struct {
	fontSize *service.FontSizeService
}

func NewPreferenceHandler(fontSize *service.FontSizeService) *PreferenceHandler {
	return &PreferenceHandler{fontSize: fontSize}
}

func clientID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := r.Header.Get(clientIDHeader)
	if id == "" {
		writeError(w, http.StatusBadRequest, clientIDHeader+" header is required")
		return "", false
	}
	return id, true
}

func (h *PreferenceHandler) FontSize(w http.ResponseWriter, r *http.Request) {
	id, ok := clientID(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: h.fontSize.Current(r.Context(), id)})
}

func (h *PreferenceHandler) ToggleFontSize(w http.ResponseWriter, r *http.Request) {
	id, ok := clientID(w, r)
	if !ok {
		return
	}
	pref, err := h.fontSize.Toggle(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: pref})
}
