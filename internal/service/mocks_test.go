package service_test

import (
	"context"
	"time"

	"bloodbank-backend/internal/domain"
	"bloodbank-backend/internal/eligibility"

	"github.com/stretchr/testify/mock"
)

func mustDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// MockDonorRepo
type MockDonorRepo struct {
	mock.Mock
}

func (m *MockDonorRepo) Create(ctx context.Context, donor *domain.Donor) error {
	args := m.Called(ctx, donor)
	return args.Error(0)
}
func (m *MockDonorRepo) GetByID(ctx context.Context, id int32) (*domain.Donor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Donor), args.Error(1)
}
func (m *MockDonorRepo) GetByMobile(ctx context.Context, mobile string) (*domain.Donor, error) {
	args := m.Called(ctx, mobile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Donor), args.Error(1)
}
func (m *MockDonorRepo) GetByNationalID(ctx context.Context, nationalID string) (*domain.Donor, error) {
	args := m.Called(ctx, nationalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Donor), args.Error(1)
}
func (m *MockDonorRepo) Update(ctx context.Context, donor *domain.Donor) error {
	args := m.Called(ctx, donor)
	return args.Error(0)
}
func (m *MockDonorRepo) Count(ctx context.Context) (int32, error) {
	args := m.Called(ctx)
	return args.Get(0).(int32), args.Error(1)
}

// MockDonationRepo
type MockDonationRepo struct {
	mock.Mock
}

func (m *MockDonationRepo) Create(ctx context.Context, rec *domain.DonationRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}
func (m *MockDonationRepo) GetByID(ctx context.Context, id int32) (*domain.DonationRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DonationRecord), args.Error(1)
}
func (m *MockDonationRepo) ListByDonor(ctx context.Context, donorID int32) ([]domain.DonationRecord, error) {
	args := m.Called(ctx, donorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DonationRecord), args.Error(1)
}
func (m *MockDonationRepo) ListAllWithDonors(ctx context.Context) ([]domain.DonationRecord, []domain.Donor, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.DonationRecord), args.Get(1).([]domain.Donor), args.Error(2)
}
func (m *MockDonationRepo) Update(ctx context.Context, rec *domain.DonationRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}
func (m *MockDonationRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockDonationRepo) Count(ctx context.Context) (int32, error) {
	args := m.Called(ctx)
	return args.Get(0).(int32), args.Error(1)
}

// MockStaffRepo
type MockStaffRepo struct {
	mock.Mock
}

func (m *MockStaffRepo) Create(ctx context.Context, acct *domain.StaffAccount) error {
	args := m.Called(ctx, acct)
	return args.Error(0)
}
func (m *MockStaffRepo) GetByID(ctx context.Context, id int32) (*domain.StaffAccount, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StaffAccount), args.Error(1)
}
func (m *MockStaffRepo) GetByUsername(ctx context.Context, username string) (*domain.StaffAccount, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StaffAccount), args.Error(1)
}
func (m *MockStaffRepo) ListStaff(ctx context.Context) ([]domain.StaffAccount, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.StaffAccount), args.Error(1)
}
func (m *MockStaffRepo) ListPendingStaff(ctx context.Context) ([]domain.StaffAccount, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.StaffAccount), args.Error(1)
}
func (m *MockStaffRepo) SetVerified(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockStaffRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockStaffRepo) CountAdmins(ctx context.Context) (int32, error) {
	args := m.Called(ctx)
	return args.Get(0).(int32), args.Error(1)
}

// MockRegistry
type MockRegistry struct {
	mock.Mock
}

func (m *MockRegistry) Resolve(ctx context.Context, ident domain.DonorIdentifier) (*domain.Donor, error) {
	args := m.Called(ctx, ident)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Donor), args.Error(1)
}
func (m *MockRegistry) ResolveOrCreate(ctx context.Context, ident domain.DonorIdentifier, attrs domain.DonorAttributes) (*domain.Donor, bool, error) {
	args := m.Called(ctx, ident, attrs)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.Donor), args.Bool(1), args.Error(2)
}
func (m *MockRegistry) Search(ctx context.Context, identifier string) (*domain.Donor, []domain.DonationRecord, eligibility.Verdict, error) {
	args := m.Called(ctx, identifier)
	donor, _ := args.Get(0).(*domain.Donor)
	history, _ := args.Get(1).([]domain.DonationRecord)
	return donor, history, args.Get(2).(eligibility.Verdict), args.Error(3)
}
