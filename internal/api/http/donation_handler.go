package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"bloodbank-backend/internal/domain"
	"bloodbank-backend/internal/eligibility"
	"bloodbank-backend/internal/service"

	"github.com/gorilla/mux"
)

type DonationHandler struct {
	donations service.DonationService
}

func NewDonationHandler(donations service.DonationService) *DonationHandler {
	return &DonationHandler{donations: donations}
}

type saveDonationRequest struct {
	Mobile       string `json:"mobile" validate:"required,len=10"`
	NationalID   string `json:"national_id" validate:"omitempty,len=12"`
	Name         string `json:"name"`
	FatherName   string `json:"father_name"`
	Gender       string `json:"gender" validate:"required,oneof=Male Female"`
	Age          int32  `json:"age" validate:"gte=0,lte=120"`
	BloodGroup   string `json:"blood_group"`
	Address      string `json:"address"`
	DonationDate string `json:"donation_date" validate:"required,datetime=2006-01-02"`
	BagNumber    string `json:"bag_number"`
	BagType      string `json:"bag_type"`
	DonationType string `json:"donation_type"`
	HIV          string `json:"hiv" validate:"omitempty,oneof=Reactive Non-Reactive"`
	HBsAg        string `json:"hbsag" validate:"omitempty,oneof=Reactive Non-Reactive"`
	HCV          string `json:"hcv" validate:"omitempty,oneof=Reactive Non-Reactive"`
	Syphilis     string `json:"syphilis" validate:"omitempty,oneof=Reactive Non-Reactive"`
	Malaria      string `json:"malaria" validate:"omitempty,oneof=Reactive Non-Reactive"`
	Remark       string `json:"remark"`
}

type saveDonationResponse struct {
	Donor    *domain.Donor          `json:"donor"`
	Donation *domain.DonationRecord `json:"donation,omitempty"`
	Verdict  eligibility.Verdict    `json:"verdict"`
}

func (h *DonationHandler) Save(w http.ResponseWriter, r *http.Request) {
	actor, err := ActorFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	var req saveDonationRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}
	donationDate, err := time.Parse("2006-01-02", req.DonationDate)
	if err != nil {
		writeError(w, fmt.Errorf("%w: invalid donation date", domain.ErrValidation))
		return
	}

	donor, rec, verdict, err := h.donations.Save(r.Context(), service.SaveDonationInput{
		Identifier: domain.DonorIdentifier{Mobile: req.Mobile, NationalID: req.NationalID},
		Attributes: domain.DonorAttributes{
			Name:       req.Name,
			FatherName: req.FatherName,
			Gender:     domain.Gender(req.Gender),
			Age:        req.Age,
			BloodGroup: req.BloodGroup,
			Address:    req.Address,
		},
		Record: domain.DonationRecord{
			DonationDate: donationDate,
			BagNumber:    req.BagNumber,
			BagType:      req.BagType,
			DonationType: req.DonationType,
			HIV:          req.HIV,
			HBsAg:        req.HBsAg,
			HCV:          req.HCV,
			Syphilis:     req.Syphilis,
			Malaria:      req.Malaria,
			Remark:       req.Remark,
		},
		EnteredBy: actor.Username,
	})
	if errors.Is(err, domain.ErrBlocked) {
		// The verdict carries the operator-facing message; nothing was
		// persisted.
		writeJSON(w, http.StatusConflict, saveDonationResponse{Donor: donor, Verdict: verdict})
		return
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, saveDonationResponse{Donor: donor, Donation: rec, Verdict: verdict})
}

type donationWithDonor struct {
	Donation domain.DonationRecord `json:"donation"`
	Donor    domain.Donor          `json:"donor"`
}

func (h *DonationHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	recs, donors, err := h.donations.ListAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	rows := make([]donationWithDonor, 0, len(recs))
	for i := range recs {
		rows = append(rows, donationWithDonor{Donation: recs[i], Donor: donors[i]})
	}
	writeJSON(w, http.StatusOK, rows)
}

type updateDonationRequest struct {
	NationalID   string `json:"national_id" validate:"omitempty,len=12"`
	Name         string `json:"name"`
	FatherName   string `json:"father_name"`
	Gender       string `json:"gender" validate:"required,oneof=Male Female"`
	Age          int32  `json:"age" validate:"gte=0,lte=120"`
	BloodGroup   string `json:"blood_group"`
	Address      string `json:"address"`
	BagNumber    string `json:"bag_number"`
	BagType      string `json:"bag_type"`
	DonationType string `json:"donation_type"`
	HIV          string `json:"hiv" validate:"omitempty,oneof=Reactive Non-Reactive"`
	HBsAg        string `json:"hbsag" validate:"omitempty,oneof=Reactive Non-Reactive"`
	HCV          string `json:"hcv" validate:"omitempty,oneof=Reactive Non-Reactive"`
	Syphilis     string `json:"syphilis" validate:"omitempty,oneof=Reactive Non-Reactive"`
	Malaria      string `json:"malaria" validate:"omitempty,oneof=Reactive Non-Reactive"`
	Remark       string `json:"remark"`
}

func (h *DonationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req updateDonationRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	err = h.donations.UpdateRecord(r.Context(), id,
		domain.DonorAttributes{
			Name:       req.Name,
			FatherName: req.FatherName,
			Gender:     domain.Gender(req.Gender),
			Age:        req.Age,
			BloodGroup: req.BloodGroup,
			Address:    req.Address,
		},
		req.NationalID,
		domain.DonationRecord{
			BagNumber:    req.BagNumber,
			BagType:      req.BagType,
			DonationType: req.DonationType,
			HIV:          req.HIV,
			HBsAg:        req.HBsAg,
			HCV:          req.HCV,
			Syphilis:     req.Syphilis,
			Malaria:      req.Malaria,
			Remark:       req.Remark,
		})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}

func (h *DonationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.donations.DeleteRecord(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func pathID(r *http.Request) (int32, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid id %q", domain.ErrValidation, raw)
	}
	return int32(id), nil
}
