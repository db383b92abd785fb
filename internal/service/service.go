package service

import (
	"context"

	"bloodbank-backend/internal/domain"
	"bloodbank-backend/internal/eligibility"
)

type AuthService interface {
	// Signup self-registers an unverified Staff account.
	Signup(ctx context.Context, username, password string) (*domain.StaffAccount, error)
	// Login checks credentials and returns an access token. Unverified
	// Staff accounts are rejected with ErrForbidden.
	Login(ctx context.Context, username, password string) (string, *domain.StaffAccount, error)
	// BootstrapAdmin creates the default Admin account if no Admin exists.
	BootstrapAdmin(ctx context.Context, username, password string) error
}

type RegistryService interface {
	// Resolve finds a donor by mobile and/or national ID without creating
	// or mutating anything. Returns nil when no donor matches, ErrConflict
	// when the two identifiers match different donors.
	Resolve(ctx context.Context, ident domain.DonorIdentifier) (*domain.Donor, error)
	// ResolveOrCreate resolves a donor, creating one when no match exists.
	// On a match it refreshes age, applies a newly supplied national ID,
	// and leaves all other identity fields untouched.
	ResolveOrCreate(ctx context.Context, ident domain.DonorIdentifier, attrs domain.DonorAttributes) (*domain.Donor, bool, error)
	// Search classifies a raw identifier (10 chars mobile, 12 chars
	// national ID) and returns the donor, history (date-descending) and a
	// read-only eligibility verdict as of now.
	Search(ctx context.Context, identifier string) (*domain.Donor, []domain.DonationRecord, eligibility.Verdict, error)
}

// SaveDonationInput is everything the interactive save path captures.
type SaveDonationInput struct {
	Identifier domain.DonorIdentifier
	Attributes domain.DonorAttributes
	Record     domain.DonationRecord // DonorID is ignored; set after resolve
	EnteredBy  string
}

type DonationService interface {
	// Save re-runs the eligibility engine against the proposed donation
	// date and persists the donation only when not blocked. The verdict is
	// returned either way; a blocked verdict comes with ErrBlocked.
	Save(ctx context.Context, in SaveDonationInput) (*domain.Donor, *domain.DonationRecord, eligibility.Verdict, error)
	ListAll(ctx context.Context) ([]domain.DonationRecord, []domain.Donor, error)
	// UpdateRecord is the explicit admin edit path: the one place donor
	// identity fields may change.
	UpdateRecord(ctx context.Context, donationID int32, attrs domain.DonorAttributes, nationalID string, rec domain.DonationRecord) error
	DeleteRecord(ctx context.Context, donationID int32) error
}

// Overview is the admin dashboard snapshot.
type Overview struct {
	PendingStaff   []domain.StaffAccount `json:"pending_staff"`
	AllStaff       []domain.StaffAccount `json:"all_staff"`
	TotalDonors    int32                 `json:"total_donors"`
	TotalDonations int32                 `json:"total_donations"`
}

type AdminService interface {
	GetOverview(ctx context.Context) (*Overview, error)
	VerifyStaff(ctx context.Context, staffID int32) error
	// DeleteStaff removes a staff account; an actor never deletes itself.
	DeleteStaff(ctx context.Context, actorID, staffID int32) error
}

// RowReader yields one string-keyed row per call and io.EOF when the
// source is exhausted. The CSV plumbing lives at the HTTP boundary; the
// import service only sees rows.
type RowReader interface {
	Read() (map[string]string, error)
}

// ImportSummary is the only error report the bulk path produces.
type ImportSummary struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

type ImportService interface {
	// Run consumes the row source fully and in order. Every per-row
	// failure is a skip; a single bad row never aborts the batch.
	Run(ctx context.Context, rows RowReader) (ImportSummary, error)
}
