package service

import (
	"context"
	"fmt"

	"bloodbank-backend/internal/domain"
	"bloodbank-backend/internal/logger"
	"bloodbank-backend/internal/repository"
)

type adminService struct {
	staffRepo    repository.StaffRepository
	donorRepo    repository.DonorRepository
	donationRepo repository.DonationRepository
}

func NewAdminService(staffRepo repository.StaffRepository, donorRepo repository.DonorRepository, donationRepo repository.DonationRepository) AdminService {
	return &adminService{
		staffRepo:    staffRepo,
		donorRepo:    donorRepo,
		donationRepo: donationRepo,
	}
}

func (s *adminService) GetOverview(ctx context.Context) (*Overview, error) {
	pending, err := s.staffRepo.ListPendingStaff(ctx)
	if err != nil {
		return nil, err
	}
	all, err := s.staffRepo.ListStaff(ctx)
	if err != nil {
		return nil, err
	}
	donors, err := s.donorRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	donations, err := s.donationRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &Overview{
		PendingStaff:   pending,
		AllStaff:       all,
		TotalDonors:    donors,
		TotalDonations: donations,
	}, nil
}

func (s *adminService) VerifyStaff(ctx context.Context, staffID int32) error {
	if err := s.staffRepo.SetVerified(ctx, staffID); err != nil {
		return err
	}
	logger.Info("staff account verified", "staff_id", staffID)
	return nil
}

func (s *adminService) DeleteStaff(ctx context.Context, actorID, staffID int32) error {
	if actorID == staffID {
		return fmt.Errorf("%w: an account cannot delete itself", domain.ErrValidation)
	}
	if err := s.staffRepo.Delete(ctx, staffID); err != nil {
		return err
	}
	logger.Info("staff account deleted", "staff_id", staffID, "deleted_by", actorID)
	return nil
}
