package http

import (
	"net/http"

	"bloodbank-backend/internal/domain"
	"bloodbank-backend/internal/eligibility"
	"bloodbank-backend/internal/service"
)

type DonorHandler struct {
	registry service.RegistryService
}

func NewDonorHandler(registry service.RegistryService) *DonorHandler {
	return &DonorHandler{registry: registry}
}

type searchResponse struct {
	Donor   *domain.Donor           `json:"donor"`
	History []domain.DonationRecord `json:"history"`
	Verdict eligibility.Verdict     `json:"verdict"`
}

// Search looks up a donor by a single identifier string: 10 characters is
// a mobile number, 12 a national ID, anything else a validation error.
// The verdict here is advisory for the operator; the save path runs its
// own authoritative check.
func (h *DonorHandler) Search(w http.ResponseWriter, r *http.Request) {
	identifier := r.URL.Query().Get("identifier")

	donor, history, verdict, err := h.registry.Search(r.Context(), identifier)
	if err != nil {
		writeError(w, err)
		return
	}
	if history == nil {
		history = []domain.DonationRecord{}
	}
	writeJSON(w, http.StatusOK, searchResponse{Donor: donor, History: history, Verdict: verdict})
}
