package http

import (
	"encoding/json"
	"net/http"

	"market-master/domain"
	"market-master/service"
)

type MortgageHandler struct {
	sessions *service.SessionService
}

func NewMortgageHandler(sessions *service.SessionService) *MortgageHandler {
	return &MortgageHandler{sessions: sessions}
}

// CalculateRequest carries a full set of inputs and which down payment view
// the user edited last ("percent" or "amount").
type CalculateRequest struct {
	Inputs  domain.MortgageInputs `json:"inputs"`
	Changed string                `json:"changed"`
}

func (h *MortgageHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	in := service.Resolve(service.Bound(req.Inputs), service.SyncSource(req.Changed))
	if in.LoanTermYears == 0 {
		in.LoanTermYears = h.sessions.Defaults().LoanTermYears
	}

	calc, err := service.NewCalculator(in, h.sessions.Terms())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: calc.Snapshot()})
}

func (h *MortgageHandler) Terms(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data: map[string]interface{}{
			"terms":    h.sessions.Terms(),
			"default":  h.sessions.Defaults().LoanTermYears,
			"triggers": service.Triggers(),
		},
	})
}
