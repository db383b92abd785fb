package repository

import (
	"context"

	"bloodbank-backend/internal/domain"
)

type DonorRepository interface {
	Create(ctx context.Context, donor *domain.Donor) error
	GetByID(ctx context.Context, id int32) (*domain.Donor, error)
	GetByMobile(ctx context.Context, mobile string) (*domain.Donor, error)
	GetByNationalID(ctx context.Context, nationalID string) (*domain.Donor, error)
	Update(ctx context.Context, donor *domain.Donor) error
	Count(ctx context.Context) (int32, error)
}

type DonationRepository interface {
	Create(ctx context.Context, rec *domain.DonationRecord) error
	GetByID(ctx context.Context, id int32) (*domain.DonationRecord, error)
	ListByDonor(ctx context.Context, donorID int32) ([]domain.DonationRecord, error)
	ListAllWithDonors(ctx context.Context) ([]domain.DonationRecord, []domain.Donor, error)
	Update(ctx context.Context, rec *domain.DonationRecord) error
	Delete(ctx context.Context, id int32) error
	Count(ctx context.Context) (int32, error)
}

type StaffRepository interface {
	Create(ctx context.Context, acct *domain.StaffAccount) error
	GetByID(ctx context.Context, id int32) (*domain.StaffAccount, error)
	GetByUsername(ctx context.Context, username string) (*domain.StaffAccount, error)
	ListStaff(ctx context.Context) ([]domain.StaffAccount, error)
	ListPendingStaff(ctx context.Context) ([]domain.StaffAccount, error)
	SetVerified(ctx context.Context, id int32) error
	Delete(ctx context.Context, id int32) error
	CountAdmins(ctx context.Context) (int32, error)
}
