package service

import (
	"context"
	"fmt"

	"bloodbank-backend/internal/domain"
	"bloodbank-backend/internal/eligibility"
	"bloodbank-backend/internal/logger"
	"bloodbank-backend/internal/metrics"
	"bloodbank-backend/internal/repository"
)

type donationService struct {
	registry     RegistryService
	donorRepo    repository.DonorRepository
	donationRepo repository.DonationRepository
	metrics      *metrics.Metrics
}

func NewDonationService(registry RegistryService, donorRepo repository.DonorRepository, donationRepo repository.DonationRepository, m *metrics.Metrics) DonationService {
	return &donationService{
		registry:     registry,
		donorRepo:    donorRepo,
		donationRepo: donationRepo,
		metrics:      m,
	}
}

func (s *donationService) Save(ctx context.Context, in SaveDonationInput) (*domain.Donor, *domain.DonationRecord, eligibility.Verdict, error) {
	if in.Record.DonationDate.IsZero() {
		return nil, nil, eligibility.Verdict{}, fmt.Errorf("%w: donation date is required", domain.ErrValidation)
	}

	// The eligibility check runs against current history at save time, with
	// the proposed donation date as the as-of date. A verdict computed
	// earlier at search time is never trusted here: time passes and history
	// changes between the two calls.
	existing, err := s.registry.Resolve(ctx, in.Identifier)
	if err != nil {
		return nil, nil, eligibility.Verdict{}, err
	}

	var verdict eligibility.Verdict
	if existing != nil {
		history, err := s.donationRepo.ListByDonor(ctx, existing.ID)
		if err != nil {
			return nil, nil, eligibility.Verdict{}, err
		}
		verdict = eligibility.Evaluate(existing, history, in.Record.DonationDate)
		s.metrics.RecordVerdict(verdict.Rule)
		if verdict.Blocked {
			logger.Warn("donation rejected by eligibility rules",
				"donor_id", existing.ID, "rule", verdict.Rule)
			return existing, nil, verdict, fmt.Errorf("%w: %s", domain.ErrBlocked, verdict.Message)
		}
	}

	donor, created, err := s.registry.ResolveOrCreate(ctx, in.Identifier, in.Attributes)
	if err != nil {
		return nil, nil, eligibility.Verdict{}, err
	}

	rec := in.Record
	rec.DonorID = donor.ID
	rec.EnteredBy = in.EnteredBy
	defaultResults(&rec)
	if err := s.donationRepo.Create(ctx, &rec); err != nil {
		return nil, nil, eligibility.Verdict{}, err
	}
	s.metrics.DonationsSaved.Inc()
	logger.Info("donation saved",
		"donor_id", donor.ID, "donation_id", rec.ID, "new_donor", created, "entered_by", in.EnteredBy)
	return donor, &rec, verdict, nil
}

func (s *donationService) ListAll(ctx context.Context) ([]domain.DonationRecord, []domain.Donor, error) {
	return s.donationRepo.ListAllWithDonors(ctx)
}

func (s *donationService) UpdateRecord(ctx context.Context, donationID int32, attrs domain.DonorAttributes, nationalID string, rec domain.DonationRecord) error {
	stored, err := s.donationRepo.GetByID(ctx, donationID)
	if err != nil {
		return err
	}
	donor, err := s.donorRepo.GetByID(ctx, stored.DonorID)
	if err != nil {
		return err
	}

	// This is the explicit edit path, so donor identity fields are fair
	// game here, unlike the resolve path.
	donor.Name = attrs.Name
	donor.FatherName = attrs.FatherName
	donor.Gender = attrs.Gender
	donor.Age = attrs.Age
	donor.BloodGroup = attrs.BloodGroup
	donor.Address = attrs.Address
	if nationalID != "" {
		donor.NationalID = nationalID
	}
	if err := s.donorRepo.Update(ctx, donor); err != nil {
		return err
	}

	stored.BagNumber = rec.BagNumber
	stored.BagType = rec.BagType
	stored.DonationType = rec.DonationType
	stored.HIV = rec.HIV
	stored.HBsAg = rec.HBsAg
	stored.HCV = rec.HCV
	stored.Syphilis = rec.Syphilis
	stored.Malaria = rec.Malaria
	stored.Remark = rec.Remark
	defaultResults(stored)
	return s.donationRepo.Update(ctx, stored)
}

func (s *donationService) DeleteRecord(ctx context.Context, donationID int32) error {
	return s.donationRepo.Delete(ctx, donationID)
}

// defaultResults fills unset screening fields with Non-Reactive so a blank
// form field is never stored as an empty result.
func defaultResults(rec *domain.DonationRecord) {
	if rec.HIV == "" {
		rec.HIV = domain.ResultNonReactive
	}
	if rec.HBsAg == "" {
		rec.HBsAg = domain.ResultNonReactive
	}
	if rec.HCV == "" {
		rec.HCV = domain.ResultNonReactive
	}
	if rec.Syphilis == "" {
		rec.Syphilis = domain.ResultNonReactive
	}
	if rec.Malaria == "" {
		rec.Malaria = domain.ResultNonReactive
	}
}
