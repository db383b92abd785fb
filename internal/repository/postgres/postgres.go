package postgres

import (
	"database/sql"
	"errors"

	"bloodbank-backend/internal/domain"
	"bloodbank-backend/internal/repository"

	"github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.DonorRepository
	repository.DonationRepository
	repository.StaffRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                 db,
		DonorRepository:    NewDonorRepository(db),
		DonationRepository: NewDonationRepository(db),
		StaffRepository:    NewStaffRepository(db),
	}
}

// translateErr maps driver errors onto the domain taxonomy. Uniqueness is
// enforced by the store, not by application check-then-act, so code 23505
// is the authoritative signal for a duplicate mobile/national-ID/username.
func translateErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return domain.ErrConflict
	}
	return err
}
