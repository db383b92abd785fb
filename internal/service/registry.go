package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"bloodbank-backend/internal/domain"
	"bloodbank-backend/internal/eligibility"
	"bloodbank-backend/internal/metrics"
	"bloodbank-backend/internal/repository"
)

// Identifier lengths accepted at the search boundary.
const (
	mobileLength     = 10
	nationalIDLength = 12
)

type registryService struct {
	donorRepo    repository.DonorRepository
	donationRepo repository.DonationRepository
	metrics      *metrics.Metrics
	now          func() time.Time
}

func NewRegistryService(donorRepo repository.DonorRepository, donationRepo repository.DonationRepository, m *metrics.Metrics) RegistryService {
	return &registryService{
		donorRepo:    donorRepo,
		donationRepo: donationRepo,
		metrics:      m,
		now:          time.Now,
	}
}

func (s *registryService) Resolve(ctx context.Context, ident domain.DonorIdentifier) (*domain.Donor, error) {
	mobile := strings.TrimSpace(ident.Mobile)
	nationalID := strings.TrimSpace(ident.NationalID)

	var byMobile, byNationalID *domain.Donor
	if mobile != "" {
		d, err := s.donorRepo.GetByMobile(ctx, mobile)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		byMobile = d
	}
	if nationalID != "" {
		d, err := s.donorRepo.GetByNationalID(ctx, nationalID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		byNationalID = d
	}

	// Both identifiers supplied and matching two different stored donors:
	// refuse rather than silently pick one. Merging medical histories
	// cannot be done safely here.
	if byMobile != nil && byNationalID != nil && byMobile.ID != byNationalID.ID {
		return nil, fmt.Errorf("%w: mobile matches donor %d but national ID matches donor %d",
			domain.ErrConflict, byMobile.ID, byNationalID.ID)
	}
	if byMobile != nil {
		return byMobile, nil
	}
	return byNationalID, nil
}

func (s *registryService) ResolveOrCreate(ctx context.Context, ident domain.DonorIdentifier, attrs domain.DonorAttributes) (*domain.Donor, bool, error) {
	donor, err := s.Resolve(ctx, ident)
	if err != nil {
		return nil, false, err
	}

	mobile := strings.TrimSpace(ident.Mobile)
	nationalID := strings.TrimSpace(ident.NationalID)

	if donor == nil {
		if mobile == "" {
			return nil, false, fmt.Errorf("%w: mobile number is required", domain.ErrValidation)
		}
		donor = &domain.Donor{
			MobileNumber: mobile,
			NationalID:   nationalID,
			Name:         strings.TrimSpace(attrs.Name),
			FatherName:   strings.TrimSpace(attrs.FatherName),
			Gender:       attrs.Gender,
			Age:          attrs.Age,
			BloodGroup:   strings.TrimSpace(attrs.BloodGroup),
			Address:      strings.TrimSpace(attrs.Address),
		}
		if err := s.donorRepo.Create(ctx, donor); err != nil {
			return nil, false, err
		}
		s.metrics.DonorsCreated.Inc()
		return donor, true, nil
	}

	// Age drifts every visit, so it is always refreshed. A newly supplied
	// national ID is captured. All other identity fields are authoritative
	// from first capture and change only on the explicit admin edit path.
	donor.Age = attrs.Age
	if nationalID != "" {
		donor.NationalID = nationalID
	}
	if err := s.donorRepo.Update(ctx, donor); err != nil {
		return nil, false, err
	}
	return donor, false, nil
}

func (s *registryService) Search(ctx context.Context, identifier string) (*domain.Donor, []domain.DonationRecord, eligibility.Verdict, error) {
	identifier = strings.TrimSpace(identifier)

	var ident domain.DonorIdentifier
	switch len(identifier) {
	case mobileLength:
		ident.Mobile = identifier
	case nationalIDLength:
		ident.NationalID = identifier
	default:
		return nil, nil, eligibility.Verdict{}, fmt.Errorf(
			"%w: identifier must be a 10-digit mobile number or a 12-digit national ID", domain.ErrValidation)
	}

	donor, err := s.Resolve(ctx, ident)
	if err != nil {
		return nil, nil, eligibility.Verdict{}, err
	}
	if donor == nil {
		return nil, nil, eligibility.Verdict{}, nil
	}

	history, err := s.donationRepo.ListByDonor(ctx, donor.ID)
	if err != nil {
		return nil, nil, eligibility.Verdict{}, err
	}

	// Read-only verdict for the operator. The save path re-evaluates
	// authoritatively; this one is never cached or trusted later.
	verdict := eligibility.Evaluate(donor, history, s.now())
	s.metrics.RecordVerdict(verdict.Rule)
	return donor, history, verdict, nil
}
