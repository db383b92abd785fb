package http_test

import (
	"context"

	"bloodbank-backend/internal/domain"
	"bloodbank-backend/internal/eligibility"
	"bloodbank-backend/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockAuthService struct{ mock.Mock }

func (m *MockAuthService) Signup(ctx context.Context, username, password string) (*domain.StaffAccount, error) {
	args := m.Called(ctx, username, password)
	if acct := args.Get(0); acct != nil {
		return acct.(*domain.StaffAccount), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (string, *domain.StaffAccount, error) {
	args := m.Called(ctx, username, password)
	var acct *domain.StaffAccount
	if a := args.Get(1); a != nil {
		acct = a.(*domain.StaffAccount)
	}
	return args.String(0), acct, args.Error(2)
}

func (m *MockAuthService) BootstrapAdmin(ctx context.Context, username, password string) error {
	args := m.Called(ctx, username, password)
	return args.Error(0)
}

type MockRegistryService struct{ mock.Mock }

func (m *MockRegistryService) Resolve(ctx context.Context, ident domain.DonorIdentifier) (*domain.Donor, error) {
	args := m.Called(ctx, ident)
	if d := args.Get(0); d != nil {
		return d.(*domain.Donor), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRegistryService) ResolveOrCreate(ctx context.Context, ident domain.DonorIdentifier, attrs domain.DonorAttributes) (*domain.Donor, bool, error) {
	args := m.Called(ctx, ident, attrs)
	if d := args.Get(0); d != nil {
		return d.(*domain.Donor), args.Bool(1), args.Error(2)
	}
	return nil, args.Bool(1), args.Error(2)
}

func (m *MockRegistryService) Search(ctx context.Context, identifier string) (*domain.Donor, []domain.DonationRecord, eligibility.Verdict, error) {
	args := m.Called(ctx, identifier)
	var donor *domain.Donor
	if d := args.Get(0); d != nil {
		donor = d.(*domain.Donor)
	}
	var history []domain.DonationRecord
	if h := args.Get(1); h != nil {
		history = h.([]domain.DonationRecord)
	}
	return donor, history, args.Get(2).(eligibility.Verdict), args.Error(3)
}

type MockDonationService struct{ mock.Mock }

func (m *MockDonationService) Save(ctx context.Context, in service.SaveDonationInput) (*domain.Donor, *domain.DonationRecord, eligibility.Verdict, error) {
	args := m.Called(ctx, in)
	var donor *domain.Donor
	if d := args.Get(0); d != nil {
		donor = d.(*domain.Donor)
	}
	var rec *domain.DonationRecord
	if r := args.Get(1); r != nil {
		rec = r.(*domain.DonationRecord)
	}
	return donor, rec, args.Get(2).(eligibility.Verdict), args.Error(3)
}

func (m *MockDonationService) ListAll(ctx context.Context) ([]domain.DonationRecord, []domain.Donor, error) {
	args := m.Called(ctx)
	var recs []domain.DonationRecord
	if r := args.Get(0); r != nil {
		recs = r.([]domain.DonationRecord)
	}
	var donors []domain.Donor
	if d := args.Get(1); d != nil {
		donors = d.([]domain.Donor)
	}
	return recs, donors, args.Error(2)
}

func (m *MockDonationService) UpdateRecord(ctx context.Context, donationID int32, attrs domain.DonorAttributes, nationalID string, rec domain.DonationRecord) error {
	args := m.Called(ctx, donationID, attrs, nationalID, rec)
	return args.Error(0)
}

func (m *MockDonationService) DeleteRecord(ctx context.Context, donationID int32) error {
	args := m.Called(ctx, donationID)
	return args.Error(0)
}

type MockAdminService struct{ mock.Mock }

func (m *MockAdminService) GetOverview(ctx context.Context) (*service.Overview, error) {
	args := m.Called(ctx)
	if ov := args.Get(0); ov != nil {
		return ov.(*service.Overview), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAdminService) VerifyStaff(ctx context.Context, staffID int32) error {
	args := m.Called(ctx, staffID)
	return args.Error(0)
}

func (m *MockAdminService) DeleteStaff(ctx context.Context, actorID, staffID int32) error {
	args := m.Called(ctx, actorID, staffID)
	return args.Error(0)
}

type MockImportService struct{ mock.Mock }

func (m *MockImportService) Run(ctx context.Context, rows service.RowReader) (service.ImportSummary, error) {
	args := m.Called(ctx, rows)
	return args.Get(0).(service.ImportSummary), args.Error(1)
}
