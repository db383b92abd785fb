package domain

import "time"

// Qualitative screening results recorded per donation.
const (
	ResultReactive    = "Reactive"
	ResultNonReactive = "Non-Reactive"
)

// EnteredByBulkImport marks records created by the CSV backfill path
// rather than an interactive staff session.
const EnteredByBulkImport = "Bulk Import"

// DonationRecord is one donation event belonging to exactly one donor.
type DonationRecord struct {
	ID           int32     `json:"id"`
	DonorID      int32     `json:"donor_id"`
	DonationDate time.Time `json:"donation_date"`
	BagNumber    string    `json:"bag_number"`
	BagType      string    `json:"bag_type"`
	DonationType string    `json:"donation_type"`
	HIV          string    `json:"hiv"`
	HBsAg        string    `json:"hbsag"`
	HCV          string    `json:"hcv"`
	Syphilis     string    `json:"syphilis"`
	Malaria      string    `json:"malaria"`
	Remark       string    `json:"remark"`
	EnteredBy    string    `json:"entered_by"`
	CreatedOn    string    `json:"created_on"`
}

// HasReactiveTTI reports whether any transfusion-transmissible-infection
// marker on this record is Reactive. Malaria is excluded: it defers
// temporarily, not permanently.
func (d *DonationRecord) HasReactiveTTI() bool {
	return d.HIV == ResultReactive ||
		d.HBsAg == ResultReactive ||
		d.HCV == ResultReactive ||
		d.Syphilis == ResultReactive
}
